package acquire

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// NormalizedTransaction is the one shape every acquisition path produces,
// whether it came over the banking protocol, the browser bridge or a file
// upload.
type NormalizedTransaction struct {
	BookingDate time.Time
	ValueDate   time.Time
	PayerName   string
	PayerIBAN   string
	Description string
	Amount      decimal.Decimal
	Currency    string
}

// Window is the half-open interval [From, To) a pass acquires.
type Window struct {
	From time.Time
	To   time.Time
}

// Credentials is the decrypted login material handed to an adapter for one
// fetch. It never leaves the process.
type Credentials struct {
	BankCode      string
	LoginID       string
	Secret        string
	Endpoint      string
	AccountNumber string
}

// Adapter acquires the raw transaction stream for a window. Implementations
// own their session handling, including any second-factor wait.
type Adapter interface {
	Fetch(ctx context.Context, creds Credentials, window Window) ([]NormalizedTransaction, error)
}

const (
	AdapterGateway = "gateway"
	AdapterBrowser = "browser"
)
