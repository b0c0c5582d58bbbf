package warning

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/openkita/finance/pkg/common"
	"github.com/openkita/finance/pkg/database"
)

// Generator owns the reviewable-warning lifecycle. Warnings accumulate an
// audit trail: they are closed by setting ResolvedAt, never removed.
type Generator struct {
	repo Repo
}

func NewGenerator(
	repo Repo,
) *Generator {
	return &Generator{
		repo: repo,
	}
}

// EnsureOpen raises a warning unless an open one of the same kind already
// exists for the transaction, which keeps repeated sync passes from piling
// up duplicates. Reports whether a new warning was created.
func (g *Generator) EnsureOpen(
	ctx context.Context,
	transactionID string,
	kind database.WarningKind,
	childID *string,
	message string,
) (bool, error) {
	existing, err := g.repo.GetOpenWarning(ctx, transactionID, kind)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return false, err
	}

	if existing != nil {
		return false, nil
	}

	err = g.repo.SaveWarning(ctx, &database.TransactionWarning{
		ID:            uuid.NewString(),
		TransactionID: transactionID,
		Kind:          kind,
		Message:       message,
		ChildID:       childID,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// Resolve closes a warning as handled. Closing an already closed warning is
// rejected so two staff members cannot both believe they handled it.
func (g *Generator) Resolve(ctx context.Context, warningID string) error {
	return g.close(ctx, warningID, false)
}

// Dismiss closes a warning as not actionable. The audit trail keeps the two
// outcomes apart: a resolved warning was handled, a dismissed one was waved
// through.
func (g *Generator) Dismiss(ctx context.Context, warningID string) error {
	return g.close(ctx, warningID, true)
}

func (g *Generator) close(ctx context.Context, warningID string, dismissed bool) error {
	warning, err := g.repo.GetWarning(ctx, warningID)
	if err != nil {
		return err
	}

	if !warning.Open() {
		return common.NewValidationError("warning is already closed")
	}

	now := time.Now().UTC()
	warning.ResolvedAt = &now
	warning.Dismissed = dismissed

	return g.repo.SaveWarning(ctx, warning)
}

func (g *Generator) ListOpen(ctx context.Context) ([]*database.TransactionWarning, error) {
	return g.repo.ListOpenWarnings(ctx)
}
