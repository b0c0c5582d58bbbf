package matcher

import (
	"context"

	"github.com/openkita/finance/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package matcher_test -source=interfaces.go

type Repo interface {
	FindChildByMemberNo(ctx context.Context, memberNo string) (*database.Child, error)
	ListOpenFees(ctx context.Context, childID string) ([]*database.Fee, error)
	ListGuardiansOfChildrenWithOpenFees(ctx context.Context) ([]*database.Guardian, error)
	MarkFeePaid(ctx context.Context, fee *database.Fee, transactionID string) error
	UpdateTransaction(ctx context.Context, tx *database.BankTransaction) error
	ReplaceCandidates(ctx context.Context, transactionID string, candidates []*database.MatchCandidate) error
}

// TrustedLookup resolves a payer account to the child it is bound to.
// During a sync pass this is a registry snapshot, elsewhere the live registry.
type TrustedLookup interface {
	LookupTrusted(iban string) (string, bool)
}

type Warnings interface {
	EnsureOpen(
		ctx context.Context,
		transactionID string,
		kind database.WarningKind,
		childID *string,
		message string,
	) (bool, error)
}
