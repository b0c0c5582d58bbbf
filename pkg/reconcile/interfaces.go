package reconcile

import (
	"context"

	"github.com/openkita/finance/pkg/database"
	"github.com/openkita/finance/pkg/knowniban"
	"github.com/openkita/finance/pkg/matcher"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package reconcile_test -source=interfaces.go

type Repo interface {
	GetTransaction(ctx context.Context, id string) (*database.BankTransaction, error)
	UpdateTransaction(ctx context.Context, tx *database.BankTransaction) error
	ListTransactions(ctx context.Context, filter ListFilter) ([]*database.BankTransaction, error)

	GetFee(ctx context.Context, id string) (*database.Fee, error)
	MarkFeePaid(ctx context.Context, fee *database.Fee, transactionID string) error
	MarkFeeUnpaid(ctx context.Context, fee *database.Fee) error
	ListFeesPaidBy(ctx context.Context, transactionID string) ([]*database.Fee, error)

	ListCandidates(ctx context.Context, transactionID string) ([]*database.MatchCandidate, error)
	ListCandidateTransactionsForChild(ctx context.Context, childID string) ([]*database.BankTransaction, error)
	ReplaceCandidates(ctx context.Context, transactionID string, candidates []*database.MatchCandidate) error

	ReplaceAllocations(ctx context.Context, transactionID string, allocations []*database.Allocation) error
	ListAllocations(ctx context.Context, transactionID string) ([]*database.Allocation, error)
}

type Matcher interface {
	Process(
		ctx context.Context,
		trusted matcher.TrustedLookup,
		tx *database.BankTransaction,
	) (*matcher.Result, error)
}

type Registry interface {
	Snapshot(ctx context.Context) (*knowniban.Snapshot, error)
}

type Warnings interface {
	Resolve(ctx context.Context, warningID string) error
	Dismiss(ctx context.Context, warningID string) error
	ListOpen(ctx context.Context) ([]*database.TransactionWarning, error)
}

// ListFilter selects reconciliation views. Outgoing and hidden transactions
// never show up unless IncludeHidden is set.
type ListFilter struct {
	States        []database.MatchState
	IncludeHidden bool
	Limit         int
}
