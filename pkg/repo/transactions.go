package repo

import (
	"context"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openkita/finance/pkg/common"
	"github.com/openkita/finance/pkg/database"
	"github.com/openkita/finance/pkg/reconcile"
)

// InsertTransactionUnlessDup persists the transaction unless a row with the
// same dedup key exists. The unique constraint makes the check-and-insert a
// single atomic statement, so a sync pass and a concurrent upload cannot
// both import the same payment.
func (p *Postgres) InsertTransactionUnlessDup(
	ctx context.Context,
	tx *database.BankTransaction,
) (bool, error) {
	result := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dedup_key"}},
			DoNothing: true,
		}).
		Create(tx)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to insert transaction")
	}

	return result.RowsAffected == 1, nil
}

func (p *Postgres) GetTransaction(ctx context.Context, id string) (*database.BankTransaction, error) {
	var tx database.BankTransaction

	err := p.db.WithContext(ctx).First(&tx, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load transaction")
	}

	return &tx, nil
}

// UpdateTransaction writes the row back guarded by its version. A stale
// version means another staff member or pass got there first.
func (p *Postgres) UpdateTransaction(ctx context.Context, tx *database.BankTransaction) error {
	currentVersion := tx.Version
	tx.Version++

	result := p.db.WithContext(ctx).
		Model(&database.BankTransaction{}).
		Where("id = ? and version = ?", tx.ID, currentVersion).
		Updates(map[string]interface{}{
			"match_state":    tx.MatchState,
			"matched_fee_id": tx.MatchedFeeID,
			"matched_amount": tx.MatchedAmount,
			"hidden":         tx.Hidden,
			"version":        tx.Version,
		})
	if result.Error != nil {
		tx.Version = currentVersion
		return errors.Wrap(result.Error, "failed to update transaction")
	}

	if result.RowsAffected == 0 {
		tx.Version = currentVersion
		return common.ErrConflict
	}

	return nil
}

func (p *Postgres) ListTransactions(
	ctx context.Context,
	filter reconcile.ListFilter,
) ([]*database.BankTransaction, error) {
	query := p.db.WithContext(ctx).
		Where("amount > 0").
		Order("booking_date desc, imported_at desc")

	if len(filter.States) > 0 {
		query = query.Where("match_state in ?", filter.States)
	}

	if !filter.IncludeHidden {
		query = query.Where("hidden = false")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var transactions []*database.BankTransaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

func (p *Postgres) ReplaceCandidates(
	ctx context.Context,
	transactionID string,
	candidates []*database.MatchCandidate,
) error {
	return p.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		err := db.Where("transaction_id = ?", transactionID).
			Delete(&database.MatchCandidate{}).Error
		if err != nil {
			return errors.Wrap(err, "failed to clear candidates")
		}

		if len(candidates) == 0 {
			return nil
		}

		return errors.Wrap(db.Create(candidates).Error, "failed to save candidates")
	})
}

func (p *Postgres) ListCandidates(
	ctx context.Context,
	transactionID string,
) ([]*database.MatchCandidate, error) {
	var candidates []*database.MatchCandidate

	err := p.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("similarity desc").
		Find(&candidates).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list candidates")
	}

	return candidates, nil
}

func (p *Postgres) ListCandidateTransactionsForChild(
	ctx context.Context,
	childID string,
) ([]*database.BankTransaction, error) {
	var transactions []*database.BankTransaction

	err := p.db.WithContext(ctx).
		Joins("join match_candidates on match_candidates.transaction_id = bank_transactions.id").
		Where("match_candidates.child_id = ?", childID).
		Where("bank_transactions.match_state in ?", []database.MatchState{
			database.MatchStateUnmatched, database.MatchStateSuggested,
		}).
		Where("bank_transactions.hidden = false").
		Order("bank_transactions.booking_date desc").
		Find(&transactions).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list candidate transactions")
	}

	return transactions, nil
}

func (p *Postgres) ReplaceAllocations(
	ctx context.Context,
	transactionID string,
	allocations []*database.Allocation,
) error {
	return p.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		err := db.Where("transaction_id = ?", transactionID).
			Delete(&database.Allocation{}).Error
		if err != nil {
			return errors.Wrap(err, "failed to clear allocations")
		}

		if len(allocations) == 0 {
			return nil
		}

		return errors.Wrap(db.Create(allocations).Error, "failed to save allocations")
	})
}

func (p *Postgres) ListAllocations(
	ctx context.Context,
	transactionID string,
) ([]*database.Allocation, error) {
	var allocations []*database.Allocation

	err := p.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at").
		Find(&allocations).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list allocations")
	}

	return allocations, nil
}
