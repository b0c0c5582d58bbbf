package repo

import (
	"context"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/openkita/finance/pkg/common"
	"github.com/openkita/finance/pkg/database"
)

func (p *Postgres) GetFee(ctx context.Context, id string) (*database.Fee, error) {
	var fee database.Fee

	err := p.db.WithContext(ctx).First(&fee, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load fee")
	}

	return &fee, nil
}

func (p *Postgres) ListOpenFees(ctx context.Context, childID string) ([]*database.Fee, error) {
	var fees []*database.Fee

	err := p.db.WithContext(ctx).
		Where("child_id = ? and paid = false", childID).
		Order("due_date").
		Find(&fees).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open fees")
	}

	return fees, nil
}

func (p *Postgres) ListFeesPaidBy(ctx context.Context, transactionID string) ([]*database.Fee, error) {
	var fees []*database.Fee

	err := p.db.WithContext(ctx).
		Where("paid_by_transaction_id = ? and paid = true", transactionID).
		Find(&fees).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fees paid by transaction")
	}

	return fees, nil
}

// MarkFeePaid flips the paid flag guarded by the fee's version, so two staff
// members or two concurrent matcher runs cannot both consume the same fee.
func (p *Postgres) MarkFeePaid(
	ctx context.Context,
	fee *database.Fee,
	transactionID string,
) error {
	currentVersion := fee.Version

	result := p.db.WithContext(ctx).
		Model(&database.Fee{}).
		Where("id = ? and version = ? and paid = false", fee.ID, currentVersion).
		Updates(map[string]interface{}{
			"paid":                   true,
			"paid_by_transaction_id": transactionID,
			"version":                currentVersion + 1,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark fee paid")
	}

	if result.RowsAffected == 0 {
		return common.ErrConflict
	}

	fee.Paid = true
	fee.PaidByTransactionID = &transactionID
	fee.Version = currentVersion + 1

	return nil
}

func (p *Postgres) MarkFeeUnpaid(ctx context.Context, fee *database.Fee) error {
	currentVersion := fee.Version

	result := p.db.WithContext(ctx).
		Model(&database.Fee{}).
		Where("id = ? and version = ? and paid = true", fee.ID, currentVersion).
		Updates(map[string]interface{}{
			"paid":                   false,
			"paid_by_transaction_id": nil,
			"version":                currentVersion + 1,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark fee unpaid")
	}

	if result.RowsAffected == 0 {
		return common.ErrConflict
	}

	fee.Paid = false
	fee.PaidByTransactionID = nil
	fee.Version = currentVersion + 1

	return nil
}

func (p *Postgres) FindChildByMemberNo(ctx context.Context, memberNo string) (*database.Child, error) {
	var child database.Child

	err := p.db.WithContext(ctx).First(&child, "member_no = ?", memberNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find child by member number")
	}

	return &child, nil
}

func (p *Postgres) ListGuardiansOfChildrenWithOpenFees(ctx context.Context) ([]*database.Guardian, error) {
	var guardians []*database.Guardian

	err := p.db.WithContext(ctx).
		Distinct("guardians.*").
		Joins("join fees on fees.child_id = guardians.child_id and fees.paid = false").
		Find(&guardians).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guardians with open fees")
	}

	return guardians, nil
}
