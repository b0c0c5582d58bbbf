package repo

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openkita/finance/pkg/common"
	"github.com/openkita/finance/pkg/database"
)

func (p *Postgres) GetKnownIBAN(ctx context.Context, iban string) (*database.KnownIBAN, error) {
	var entry database.KnownIBAN

	err := p.db.WithContext(ctx).First(&entry, "iban = ?", iban).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load known iban")
	}

	return &entry, nil
}

func (p *Postgres) ListKnownIBANs(
	ctx context.Context,
	status database.IBANStatus,
) ([]*database.KnownIBAN, error) {
	var entries []*database.KnownIBAN

	err := p.db.WithContext(ctx).
		Where("status = ?", status).
		Order("iban").
		Find(&entries).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list known ibans")
	}

	return entries, nil
}

func (p *Postgres) SaveKnownIBAN(ctx context.Context, entry *database.KnownIBAN) error {
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(entry).Error

	return errors.Wrap(err, "failed to save known iban")
}

func (p *Postgres) DeleteKnownIBAN(ctx context.Context, iban string) error {
	err := p.db.WithContext(ctx).
		Delete(&database.KnownIBAN{}, "iban = ?", iban).Error

	return errors.Wrap(err, "failed to delete known iban")
}

func (p *Postgres) GetOpenWarning(
	ctx context.Context,
	transactionID string,
	kind database.WarningKind,
) (*database.TransactionWarning, error) {
	var warning database.TransactionWarning

	err := p.db.WithContext(ctx).
		First(&warning, "transaction_id = ? and kind = ? and resolved_at is null",
			transactionID, kind).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load open warning")
	}

	return &warning, nil
}

func (p *Postgres) GetWarning(ctx context.Context, id string) (*database.TransactionWarning, error) {
	var warning database.TransactionWarning

	err := p.db.WithContext(ctx).First(&warning, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load warning")
	}

	return &warning, nil
}

func (p *Postgres) SaveWarning(ctx context.Context, warning *database.TransactionWarning) error {
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(warning).Error

	return errors.Wrap(err, "failed to save warning")
}

func (p *Postgres) ListOpenWarnings(ctx context.Context) ([]*database.TransactionWarning, error) {
	var warnings []*database.TransactionWarning

	err := p.db.WithContext(ctx).
		Where("resolved_at is null").
		Order("created_at desc").
		Find(&warnings).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open warnings")
	}

	return warnings, nil
}

func (p *Postgres) GetBankingConfig(ctx context.Context, configID string) (*database.BankingConfig, error) {
	var cfg database.BankingConfig

	err := p.db.WithContext(ctx).First(&cfg, "id = ?", configID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load banking config")
	}

	return &cfg, nil
}

func (p *Postgres) SaveBankingConfig(ctx context.Context, cfg *database.BankingConfig) error {
	cfg.UpdatedAt = time.Now().UTC()

	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(cfg).Error

	return errors.Wrap(err, "failed to save banking config")
}

func (p *Postgres) UpdateLastSync(ctx context.Context, configID string, at time.Time) error {
	result := p.db.WithContext(ctx).
		Model(&database.BankingConfig{}).
		Where("id = ?", configID).
		Updates(map[string]interface{}{
			"last_sync_at": at,
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update sync checkpoint")
	}

	if result.RowsAffected == 0 {
		return common.ErrNotFound
	}

	return nil
}

// AcquireSyncLock takes the single-flight lock for one configuration. A lock
// whose holder crashed is taken over once it is older than the ttl, so a
// dead pass cannot block syncing forever.
func (p *Postgres) AcquireSyncLock(
	ctx context.Context,
	configID string,
	ttl time.Duration,
) (string, error) {
	token := uuid.NewString()
	now := time.Now().UTC()

	result := p.db.WithContext(ctx).Exec(`insert into sync_locks (config_id, token, locked_at)
values (?, ?, ?)
on conflict (config_id) do update set token = excluded.token, locked_at = excluded.locked_at
where sync_locks.locked_at < ?`,
		configID, token, now, now.Add(-ttl))
	if result.Error != nil {
		return "", errors.Wrap(result.Error, "failed to acquire sync lock")
	}

	if result.RowsAffected == 0 {
		return "", common.ErrSyncInProgress
	}

	return token, nil
}

func (p *Postgres) ReleaseSyncLock(ctx context.Context, configID string, token string) error {
	err := p.db.WithContext(ctx).
		Delete(&database.SyncLock{}, "config_id = ? and token = ?", configID, token).Error

	return errors.Wrap(err, "failed to release sync lock")
}

func (p *Postgres) SaveSyncRun(ctx context.Context, run *database.SyncRun) error {
	err := p.db.WithContext(ctx).Create(run).Error

	return errors.Wrap(err, "failed to save sync run")
}

func (p *Postgres) ListSyncRuns(
	ctx context.Context,
	configID string,
	limit int,
) ([]*database.SyncRun, error) {
	if limit <= 0 {
		limit = 50
	}

	var runs []*database.SyncRun

	err := p.db.WithContext(ctx).
		Where("config_id = ?", configID).
		Order("completed_at desc").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sync runs")
	}

	return runs, nil
}

func (p *Postgres) SaveImportBatch(ctx context.Context, batch *database.ImportBatch) error {
	err := p.db.WithContext(ctx).Create(batch).Error

	return errors.Wrap(err, "failed to save import batch")
}

func (p *Postgres) ListImportBatches(ctx context.Context, limit int) ([]*database.ImportBatch, error) {
	if limit <= 0 {
		limit = 50
	}

	var batches []*database.ImportBatch

	err := p.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&batches).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list import batches")
	}

	return batches, nil
}
