package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openkita/finance/pkg/acquire"
	"github.com/openkita/finance/pkg/database"
	"github.com/openkita/finance/pkg/dedup"
	"github.com/openkita/finance/pkg/knowniban"
)

type Status string

const (
	StatusImported           = Status("imported")
	StatusSkippedDuplicate   = Status("skipped_duplicate")
	StatusSkippedOutgoing    = Status("skipped_outgoing")
	StatusSkippedBlacklisted = Status("skipped_blacklisted")
)

// Outcome describes what happened to one incoming record.
type Outcome struct {
	Status        Status
	TransactionID string
	MatchState    database.MatchState
	WarningRaised bool
}

// Pipeline is the per-record ingestion path shared by sync passes and manual
// uploads: filter, dedup-insert, match, warn.
type Pipeline struct {
	repo    Repo
	matcher Matcher
}

func NewPipeline(
	repo Repo,
	matcherSvc Matcher,
) *Pipeline {
	return &Pipeline{
		repo:    repo,
		matcher: matcherSvc,
	}
}

func (p *Pipeline) Ingest(
	ctx context.Context,
	registry RegistryView,
	record acquire.NormalizedTransaction,
	source database.TransactionSource,
) (*Outcome, error) {
	if !record.Amount.IsPositive() {
		return &Outcome{Status: StatusSkippedOutgoing}, nil
	}

	if record.PayerIBAN != "" && registry.IsBlacklisted(record.PayerIBAN) {
		return &Outcome{Status: StatusSkippedBlacklisted}, nil
	}

	tx := &database.BankTransaction{
		ID:          uuid.NewString(),
		BookingDate: record.BookingDate,
		ValueDate:   record.ValueDate,
		PayerName:   record.PayerName,
		PayerIBAN:   knowniban.Normalize(record.PayerIBAN),
		Description: record.Description,
		Amount:      record.Amount,
		Currency:    record.Currency,
		DedupKey: dedup.Key(record.BookingDate, record.PayerIBAN,
			record.Amount, record.Currency, record.Description),
		Source:     source,
		MatchState: database.MatchStateUnmatched,
		ImportedAt: time.Now().UTC(),
	}

	inserted, err := p.repo.InsertTransactionUnlessDup(ctx, tx)
	if err != nil {
		return nil, err
	}

	if !inserted {
		return &Outcome{Status: StatusSkippedDuplicate}, nil
	}

	outcome := &Outcome{
		Status:        StatusImported,
		TransactionID: tx.ID,
		MatchState:    database.MatchStateUnmatched,
	}

	matchResult, err := p.matcher.Process(ctx, registry, tx)
	if err != nil {
		// The row is in; a matching failure leaves it unmatched for a
		// later rescan instead of failing the record.
		zerolog.Ctx(ctx).Error().Err(err).Str("transaction_id", tx.ID).
			Msg("matching failed for imported transaction")

		return outcome, nil
	}

	outcome.MatchState = matchResult.State
	outcome.WarningRaised = matchResult.WarningRaised

	return outcome, nil
}
