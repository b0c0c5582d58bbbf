package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openkita/finance/pkg/acquire"
	"github.com/openkita/finance/pkg/common"
	"github.com/openkita/finance/pkg/database"
	"github.com/openkita/finance/pkg/ingest"
)

const (
	// Overlap absorbs transactions the bank books onto a day after it was
	// already synced.
	windowOverlap    = 24 * time.Hour
	firstRunLookback = 90 * 24 * time.Hour

	// A crashed pass frees its lock after this; a healthy pass is expected
	// to finish well within it.
	lockTTL = 30 * time.Minute

	defaultPoolSize = 4
)

// Syncer drives one reconciliation pass per banking configuration:
// acquire, filter, dedup, persist, match, warn, checkpoint.
type Syncer struct {
	repo     Repo
	registry Registry
	pipeline Pipeline
	cipher   Cipher
	adapters map[string]acquire.Adapter
	notifier Notifier
	poolSize int
}

func NewSyncer(
	repo Repo,
	registry Registry,
	pipeline Pipeline,
	cipher Cipher,
	adapters map[string]acquire.Adapter,
	notifier Notifier,
) *Syncer {
	return &Syncer{
		repo:     repo,
		registry: registry,
		pipeline: pipeline,
		cipher:   cipher,
		adapters: adapters,
		notifier: notifier,
		poolSize: defaultPoolSize,
	}
}

// Result aggregates one pass. Per-item failures end up in Errors and never
// abort the pass.
type Result struct {
	ConfigID    string
	From        time.Time
	To          time.Time
	Fetched     int
	Imported    int
	Duplicates  int
	Outgoing    int
	Blacklisted int
	Warnings    int
	Errors      []string
	CompletedAt time.Time
}

func (r *Result) record() *database.SyncRun {
	return &database.SyncRun{
		ID:          uuid.NewString(),
		ConfigID:    r.ConfigID,
		WindowFrom:  r.From,
		WindowTo:    r.To,
		Fetched:     r.Fetched,
		Imported:    r.Imported,
		Duplicates:  r.Duplicates,
		Outgoing:    r.Outgoing,
		Blacklisted: r.Blacklisted,
		Warnings:    r.Warnings,
		Errors:      len(r.Errors),
		CompletedAt: r.CompletedAt,
	}
}

// Summary renders the pass for operators.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"sync %s [%s .. %s): fetched=%d imported=%d duplicates=%d outgoing=%d blacklisted=%d warnings=%d errors=%d",
		r.ConfigID,
		r.From.Format(time.DateOnly), r.To.Format(time.DateOnly),
		r.Fetched, r.Imported, r.Duplicates, r.Outgoing, r.Blacklisted,
		r.Warnings, len(r.Errors))
}

// Run executes one pass. At most one pass runs per configuration; a second
// trigger fails fast with ErrSyncInProgress. The checkpoint moves only when
// the pass ran to completion, partial per-item errors included.
func (s *Syncer) Run(ctx context.Context, configID string) (*Result, error) {
	token, err := s.repo.AcquireSyncLock(ctx, configID, lockTTL)
	if err != nil {
		return nil, err
	}

	defer func() {
		if releaseErr := s.repo.ReleaseSyncLock(ctx, configID, token); releaseErr != nil {
			zerolog.Ctx(ctx).Error().Err(releaseErr).Str("config_id", configID).
				Msg("failed to release sync lock")
		}
	}()

	return s.run(ctx, configID)
}

// Start acquires the single-flight lock synchronously, so a concurrent
// trigger gets ErrSyncInProgress right away, and runs the pass itself in the
// background. The pass outlives the triggering request on purpose.
func (s *Syncer) Start(ctx context.Context, configID string) error {
	token, err := s.repo.AcquireSyncLock(ctx, configID, lockTTL)
	if err != nil {
		return err
	}

	background := zerolog.Ctx(ctx).With().Str("config_id", configID).Logger().
		WithContext(context.Background())

	go func() {
		defer func() {
			if releaseErr := s.repo.ReleaseSyncLock(background, configID, token); releaseErr != nil {
				zerolog.Ctx(background).Error().Err(releaseErr).
					Msg("failed to release sync lock")
			}
		}()

		if _, runErr := s.run(background, configID); runErr != nil {
			zerolog.Ctx(background).Error().Err(runErr).Msg("sync pass failed")
		}
	}()

	return nil
}

func (s *Syncer) run(ctx context.Context, configID string) (*Result, error) {
	log := zerolog.Ctx(ctx)

	cfg, err := s.repo.GetBankingConfig(ctx, configID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotConfigured
		}

		return nil, err
	}

	if !cfg.SyncEnabled {
		return nil, common.ErrSyncDisabled
	}

	secret, err := s.cipher.Decrypt(cfg.SecretEnc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt banking secret")
	}

	adapterName := cfg.Adapter
	if adapterName == "" {
		adapterName = acquire.AdapterGateway
	}

	adapter, ok := s.adapters[adapterName]
	if !ok {
		return nil, errors.Newf("no acquisition adapter registered as %q", adapterName)
	}

	window := s.window(cfg, time.Now().UTC())
	result := &Result{
		ConfigID: configID,
		From:     window.From,
		To:       window.To,
	}

	log.Info().
		Str("config_id", configID).
		Str("adapter", adapterName).
		Time("from", window.From).
		Time("to", window.To).
		Msg("starting sync pass")

	records, err := adapter.Fetch(ctx, acquire.Credentials{
		BankCode:      cfg.BankCode,
		LoginID:       cfg.LoginID,
		Secret:        string(secret),
		Endpoint:      cfg.Endpoint,
		AccountNumber: cfg.AccountNumber,
	}, window)
	if err != nil {
		return nil, errors.Wrap(err, "acquisition failed")
	}

	result.Fetched = len(records)

	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.ingestAll(ctx, snapshot, records, result)

	if ctx.Err() != nil {
		// Whatever was committed stays committed, but an aborted pass does
		// not advance the checkpoint.
		return result, ctx.Err()
	}

	if err = s.repo.UpdateLastSync(ctx, configID, window.To); err != nil {
		return result, errors.Wrap(err, "failed to advance sync checkpoint")
	}

	result.CompletedAt = time.Now().UTC()

	// The run receipt is history, not state: losing one does not lose any
	// transaction, so a failed save never fails the pass.
	if err = s.repo.SaveSyncRun(ctx, result.record()); err != nil {
		log.Error().Err(err).Str("config_id", configID).Msg("failed to record sync run")
	}

	log.Info().Str("summary", result.Summary()).Msg("sync pass finished")

	if s.notifier != nil {
		s.notifier.SyncCompleted(ctx, result)
	}

	return result, nil
}

// History lists the most recent completed passes of one configuration.
func (s *Syncer) History(ctx context.Context, configID string) ([]*database.SyncRun, error) {
	return s.repo.ListSyncRuns(ctx, configID, 0)
}

func (s *Syncer) ingestAll(
	ctx context.Context,
	snapshot ingest.RegistryView,
	records []acquire.NormalizedTransaction,
	result *Result,
) {
	pool := workerpool.New(s.poolSize)

	var mu sync.Mutex

	for _, record := range records {
		if ctx.Err() != nil {
			break
		}

		recordCopy := record

		pool.Submit(func() {
			outcome, err := s.pipeline.Ingest(ctx, snapshot, recordCopy, database.SourceSync)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				zerolog.Ctx(ctx).Error().Err(err).
					Time("booking_date", recordCopy.BookingDate).
					Str("amount", recordCopy.Amount.String()).
					Msg("failed to ingest transaction")

				result.Errors = append(result.Errors, err.Error())

				return
			}

			switch outcome.Status {
			case ingest.StatusImported:
				result.Imported++
			case ingest.StatusSkippedDuplicate:
				result.Duplicates++
			case ingest.StatusSkippedOutgoing:
				result.Outgoing++
			case ingest.StatusSkippedBlacklisted:
				result.Blacklisted++
			}

			if outcome.WarningRaised {
				result.Warnings++
			}
		})
	}

	pool.StopWait()
}

func (s *Syncer) window(cfg *database.BankingConfig, now time.Time) acquire.Window {
	if cfg.LastSyncAt == nil {
		return acquire.Window{From: now.Add(-firstRunLookback), To: now}
	}

	return acquire.Window{From: cfg.LastSyncAt.Add(-windowOverlap), To: now}
}
