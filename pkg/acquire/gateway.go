package acquire

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/shopspring/decimal"
)

// GatewayClient talks to the bank through a FinTS gateway that exposes the
// account statement as JSON. One Fetch is one authenticated statement call.
type GatewayClient struct {
	cl *req.Client
}

func NewGatewayClient(
	client *req.Client,
) *GatewayClient {
	return &GatewayClient{
		cl: client,
	}
}

type gatewayStatementRequest struct {
	BankCode string `json:"bankCode"`
	LoginID  string `json:"loginId"`
	Pin      string `json:"pin"`
	Account  string `json:"account"`
	From     string `json:"from"`
	To       string `json:"to"`
}

type gatewayStatementResponse struct {
	Transactions []gatewayTransaction `json:"transactions"`
}

type gatewayTransaction struct {
	BookingDate string          `json:"bookingDate"`
	ValueDate   string          `json:"valueDate"`
	Name        string          `json:"name"`
	IBAN        string          `json:"iban"`
	Purpose     string          `json:"purpose"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

func (g *GatewayClient) Fetch(
	ctx context.Context,
	creds Credentials,
	window Window,
) ([]NormalizedTransaction, error) {
	var result gatewayStatementResponse

	resp, err := g.cl.R().
		SetContext(ctx).
		SetBody(gatewayStatementRequest{
			BankCode: creds.BankCode,
			LoginID:  creds.LoginID,
			Pin:      creds.Secret,
			Account:  creds.AccountNumber,
			From:     window.From.Format(time.DateOnly),
			To:       window.To.Format(time.DateOnly),
		}).
		SetSuccessResult(&result).
		Post(creds.Endpoint + "/statement")
	if err != nil {
		return nil, errors.Wrap(err, "gateway request failed")
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("gateway returned %v: %s", resp.StatusCode, resp.String())
	}

	transactions := make([]NormalizedTransaction, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		normalized, mapErr := tx.normalize()
		if mapErr != nil {
			return nil, mapErr
		}

		transactions = append(transactions, normalized)
	}

	return transactions, nil
}

func (t gatewayTransaction) normalize() (NormalizedTransaction, error) {
	bookingDate, err := time.Parse(time.DateOnly, t.BookingDate)
	if err != nil {
		return NormalizedTransaction{}, errors.Newf("failed to parse booking date %q", t.BookingDate)
	}

	valueDate := bookingDate
	if t.ValueDate != "" {
		valueDate, err = time.Parse(time.DateOnly, t.ValueDate)
		if err != nil {
			return NormalizedTransaction{}, errors.Newf("failed to parse value date %q", t.ValueDate)
		}
	}

	return NormalizedTransaction{
		BookingDate: bookingDate,
		ValueDate:   valueDate,
		PayerName:   t.Name,
		PayerIBAN:   t.IBAN,
		Description: t.Purpose,
		Amount:      t.Amount,
		Currency:    t.Currency,
	}, nil
}
