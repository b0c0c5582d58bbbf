package acquire

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
)

// BrowserBridge drives the browser-automation sidecar used when the bank
// offers no usable protocol endpoint. The sidecar logs in, walks the online
// banking UI and exports the statement through its local API; its whole
// recovery state machine, second-factor wait included, lives on its side of
// that API. From here a fetch is a job submit plus polling.
type BrowserBridge struct {
	cl           *req.Client
	bridgeURL    string
	pollInterval time.Duration
	timeout      time.Duration
}

func NewBrowserBridge(
	client *req.Client,
	bridgeURL string,
) *BrowserBridge {
	return &BrowserBridge{
		cl:           client,
		bridgeURL:    bridgeURL,
		pollInterval: 5 * time.Second,
		timeout:      10 * time.Minute,
	}
}

type bridgeJobRequest struct {
	BankCode string `json:"bankCode"`
	LoginID  string `json:"loginId"`
	Pin      string `json:"pin"`
	Account  string `json:"account"`
	From     string `json:"from"`
	To       string `json:"to"`
}

type bridgeJobResponse struct {
	JobID string `json:"jobId"`
}

type bridgeJobStatus struct {
	State        string               `json:"state"`
	Error        string               `json:"error"`
	Transactions []gatewayTransaction `json:"transactions"`
}

func (b *BrowserBridge) Fetch(
	ctx context.Context,
	creds Credentials,
	window Window,
) ([]NormalizedTransaction, error) {
	var job bridgeJobResponse

	resp, err := b.cl.R().
		SetContext(ctx).
		SetBody(bridgeJobRequest{
			BankCode: creds.BankCode,
			LoginID:  creds.LoginID,
			Pin:      creds.Secret,
			Account:  creds.AccountNumber,
			From:     window.From.Format(time.DateOnly),
			To:       window.To.Format(time.DateOnly),
		}).
		SetSuccessResult(&job).
		Post(b.bridgeURL + "/jobs")
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit bridge job")
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("bridge returned %v: %s", resp.StatusCode, resp.String())
	}

	return b.await(ctx, job.JobID)
}

func (b *BrowserBridge) await(ctx context.Context, jobID string) ([]NormalizedTransaction, error) {
	deadline := time.Now().Add(b.timeout)

	for {
		if time.Now().After(deadline) {
			return nil, errors.Newf("bridge job %s did not finish within %s", jobID, b.timeout)
		}

		status, err := b.poll(ctx, jobID)
		if err != nil {
			return nil, err
		}

		switch status.State {
		case "success":
			transactions := make([]NormalizedTransaction, 0, len(status.Transactions))
			for _, tx := range status.Transactions {
				normalized, mapErr := tx.normalize()
				if mapErr != nil {
					return nil, mapErr
				}

				transactions = append(transactions, normalized)
			}

			return transactions, nil
		case "error":
			return nil, errors.Newf("bridge job %s failed: %s", jobID, status.Error)
		case "awaiting_second_factor":
			zerolog.Ctx(ctx).Info().Str("job_id", jobID).
				Msg("bridge is waiting for second factor approval")
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(b.pollInterval):
		}
	}
}

func (b *BrowserBridge) poll(ctx context.Context, jobID string) (*bridgeJobStatus, error) {
	var status bridgeJobStatus

	resp, err := b.cl.R().
		SetContext(ctx).
		SetSuccessResult(&status).
		Get(b.bridgeURL + "/jobs/" + jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to poll bridge job")
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("bridge returned %v: %s", resp.StatusCode, resp.String())
	}

	return &status, nil
}
