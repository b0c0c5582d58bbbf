package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionSource string

const (
	SourceSync   = TransactionSource("sync")
	SourceUpload = TransactionSource("upload")
	SourceManual = TransactionSource("manual")
)

type IBANStatus string

const (
	IBANBlacklisted = IBANStatus("blacklisted")
	IBANTrusted     = IBANStatus("trusted")
)

type WarningKind string

const (
	WarningNoMatchingFee = WarningKind("no_matching_fee")
	WarningShortPayment  = WarningKind("short_payment")
)

// BankTransaction is one incoming payment record. It is created exactly once
// by a sync pass or an upload and never deleted afterwards; only its match
// state and visibility evolve.
type BankTransaction struct {
	ID          string `gorm:"primaryKey"`
	BookingDate time.Time
	ValueDate   time.Time
	PayerName   string
	PayerIBAN   string
	Description string
	Amount      decimal.Decimal
	Currency    string

	DedupKey string `gorm:"uniqueIndex:idx_bank_transactions_dedup_key"`
	Source   TransactionSource

	MatchState    MatchState
	MatchedFeeID  *string
	MatchedAmount *decimal.Decimal
	Hidden        bool

	ImportedAt time.Time
	Version    int64
}

// Matchable reports whether the transaction may take part in reconciliation
// at all. Outgoing money never does.
func (t *BankTransaction) Matchable() bool {
	return t.Amount.IsPositive()
}

// MatchCandidate is one suggestion produced for a transaction that could not
// be resolved unambiguously. The set is replaced on every matcher run.
type MatchCandidate struct {
	ID            string `gorm:"primaryKey"`
	TransactionID string `gorm:"index"`
	ChildID       string
	FeeID         *string
	Stage         string
	Similarity    float64
	CreatedAt     time.Time
}

// KnownIBAN binds a payer account to a fixed decision: blacklisted accounts
// are dropped before deduplication, trusted accounts pre-resolve the child.
type KnownIBAN struct {
	IBAN      string `gorm:"primaryKey"`
	Status    IBANStatus
	ChildID   *string
	CreatedAt time.Time
}

// TransactionWarning is an anomaly raised for human review. Warnings are
// resolved or dismissed, never deleted; Dismissed records which of the two
// closed the warning.
type TransactionWarning struct {
	ID            string `gorm:"primaryKey"`
	TransactionID string `gorm:"index"`
	Kind          WarningKind
	Message       string
	ChildID       *string
	CreatedAt     time.Time
	ResolvedAt    *time.Time
	Dismissed     bool
}

func (w *TransactionWarning) Open() bool {
	return w.ResolvedAt == nil
}

// BankingConfig holds the operator-managed credentials and checkpoint for one
// bank connection. The secret is stored encrypted; see pkg/secrets.
type BankingConfig struct {
	ID            string `gorm:"primaryKey"`
	BankCode      string
	LoginID       string
	SecretEnc     []byte
	Endpoint      string
	AccountNumber string
	Adapter       string
	SyncEnabled   bool
	LastSyncAt    *time.Time
	UpdatedAt     time.Time
}

// SyncLock is the single-flight guard for one banking configuration. A row
// counts as held only while LockedAt is fresh, so a crashed pass cannot keep
// the lock forever.
type SyncLock struct {
	ConfigID string `gorm:"primaryKey"`
	Token    string
	LockedAt time.Time
}

// SyncRun is the durable receipt of one completed sync pass, kept so
// operators can review the sync history next to the upload history.
type SyncRun struct {
	ID          string `gorm:"primaryKey"`
	ConfigID    string `gorm:"index"`
	WindowFrom  time.Time
	WindowTo    time.Time
	Fetched     int
	Imported    int
	Duplicates  int
	Outgoing    int
	Blacklisted int
	Warnings    int
	Errors      int
	CompletedAt time.Time
}

// ImportBatch is the receipt returned for one manual statement upload.
type ImportBatch struct {
	ID          string `gorm:"primaryKey"`
	FileName    string
	TotalRows   int
	Imported    int
	Skipped     int
	Warnings    int
	Blacklisted int
	CreatedAt   time.Time
}

// Allocation splits one transaction across several fees. The sum of all
// allocations of a transaction equals its amount; pkg/reconcile enforces it.
type Allocation struct {
	ID            string `gorm:"primaryKey"`
	TransactionID string `gorm:"index"`
	FeeID         string
	Amount        decimal.Decimal
	CreatedAt     time.Time
}

// Child, Guardian and Fee are read models owned by the CRUD side of the
// system. Reconciliation reads them and flips the fee paid flag, nothing
// else.
type Child struct {
	ID        string `gorm:"primaryKey"`
	FirstName string
	LastName  string
	MemberNo  string
}

func (c *Child) FullName() string {
	return c.FirstName + " " + c.LastName
}

type Guardian struct {
	ID       string `gorm:"primaryKey"`
	ChildID  string `gorm:"index"`
	FullName string
}

type Fee struct {
	ID      string `gorm:"primaryKey"`
	ChildID string `gorm:"index"`
	Kind    string
	Amount  decimal.Decimal
	LateFee decimal.Decimal
	DueDate time.Time

	Paid                bool
	PaidByTransactionID *string
	Version             int64
}

// TotalDue is the base amount plus any late surcharge accrued on the fee.
func (f *Fee) TotalDue() decimal.Decimal {
	return f.Amount.Add(f.LateFee)
}
