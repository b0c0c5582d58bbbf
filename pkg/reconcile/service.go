package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/openkita/finance/pkg/common"
	"github.com/openkita/finance/pkg/database"
)

// Service is the operation layer staff use to finish what the matching
// engine could not decide alone. Every mutation validates the transaction's
// current state first and fails without side effects.
type Service struct {
	repo     Repo
	matcher  Matcher
	registry Registry
	warnings Warnings
}

func NewService(
	repo Repo,
	matcherSvc Matcher,
	registry Registry,
	warnings Warnings,
) *Service {
	return &Service{
		repo:     repo,
		matcher:  matcherSvc,
		registry: registry,
		warnings: warnings,
	}
}

// ManualMatch forces a transaction onto one fee. A transaction that already
// pays a fee set must be unmatched first; otherwise one payment could end up
// counted against two fee sets.
func (s *Service) ManualMatch(ctx context.Context, transactionID, feeID string) error {
	tx, err := s.loadMatchable(ctx, transactionID)
	if err != nil {
		return err
	}

	if err = s.requireUnresolved(tx, "match"); err != nil {
		return err
	}

	fee, err := s.repo.GetFee(ctx, feeID)
	if err != nil {
		return err
	}

	if fee.Paid {
		return common.NewValidationError("fee is already marked paid")
	}

	if err = tx.Transition(database.MatchStateMatched); err != nil {
		return err
	}

	tx.MatchedFeeID = &fee.ID
	amount := tx.Amount
	tx.MatchedAmount = &amount

	if err = s.repo.UpdateTransaction(ctx, tx); err != nil {
		return err
	}

	if err = s.repo.ReplaceCandidates(ctx, tx.ID, nil); err != nil {
		return err
	}

	// The fee flip commits last: if it conflicts, the transaction is matched
	// with no fee consumed, a state Unmatch reverts cleanly. The reverse
	// order would strand a paid fee on an unmatched transaction.
	return s.repo.MarkFeePaid(ctx, fee, tx.ID)
}

// Unmatch reverts a matched or allocated transaction. Fees are un-marked
// only when this transaction was what paid them.
func (s *Service) Unmatch(ctx context.Context, transactionID string) error {
	tx, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return err
	}

	switch tx.MatchState {
	case database.MatchStateMatched, database.MatchStateAllocated:
	default:
		return common.NewValidationError(
			fmt.Sprintf("cannot unmatch a transaction in state %s", tx.MatchState))
	}

	paidFees, err := s.repo.ListFeesPaidBy(ctx, tx.ID)
	if err != nil {
		return err
	}

	for _, fee := range paidFees {
		if err = s.repo.MarkFeeUnpaid(ctx, fee); err != nil {
			return err
		}
	}

	if err = s.repo.ReplaceAllocations(ctx, tx.ID, nil); err != nil {
		return err
	}

	if err = tx.Transition(database.MatchStateUnmatched); err != nil {
		return err
	}

	tx.MatchedFeeID = nil
	tx.MatchedAmount = nil

	return s.repo.UpdateTransaction(ctx, tx)
}

// AllocationRequest is one slice of a split payment.
type AllocationRequest struct {
	FeeID  string
	Amount decimal.Decimal
}

// Allocate splits one transaction across several fees. The slices must sum
// to the transaction amount exactly; anything else is rejected with no state
// change.
func (s *Service) Allocate(
	ctx context.Context,
	transactionID string,
	requests []AllocationRequest,
) error {
	if len(requests) == 0 {
		return common.NewValidationError("at least one allocation is required")
	}

	tx, err := s.loadMatchable(ctx, transactionID)
	if err != nil {
		return err
	}

	if err = s.requireUnresolved(tx, "allocate"); err != nil {
		return err
	}

	sum := decimal.Zero
	fees := make([]*database.Fee, 0, len(requests))
	seen := map[string]struct{}{}

	for _, request := range requests {
		if !request.Amount.IsPositive() {
			return common.NewValidationError("allocation amounts must be positive")
		}

		if _, ok := seen[request.FeeID]; ok {
			return common.NewValidationError("duplicate fee in allocation: " + request.FeeID)
		}
		seen[request.FeeID] = struct{}{}

		fee, feeErr := s.repo.GetFee(ctx, request.FeeID)
		if feeErr != nil {
			return feeErr
		}

		if fee.Paid {
			return common.NewValidationError("fee " + fee.ID + " is already marked paid")
		}

		fees = append(fees, fee)
		sum = sum.Add(request.Amount)
	}

	if !sum.Equal(tx.Amount) {
		return common.NewValidationError(fmt.Sprintf(
			"allocation sum %s does not equal transaction amount %s",
			sum.String(), tx.Amount.String()))
	}

	if err = tx.Transition(database.MatchStateAllocated); err != nil {
		return err
	}

	amount := tx.Amount
	tx.MatchedAmount = &amount
	tx.MatchedFeeID = nil

	if err = s.repo.UpdateTransaction(ctx, tx); err != nil {
		return err
	}

	allocations := make([]*database.Allocation, 0, len(requests))
	for _, request := range requests {
		allocations = append(allocations, &database.Allocation{
			ID:            uuid.NewString(),
			TransactionID: tx.ID,
			FeeID:         request.FeeID,
			Amount:        request.Amount,
			CreatedAt:     time.Now().UTC(),
		})
	}

	if err = s.repo.ReplaceAllocations(ctx, tx.ID, allocations); err != nil {
		return err
	}

	if err = s.repo.ReplaceCandidates(ctx, tx.ID, nil); err != nil {
		return err
	}

	// Fee flips commit last: a conflict partway leaves an allocated
	// transaction whose fees Unmatch releases by paid-by lookup, never a
	// consumed fee on an unresolved transaction.
	for idx := range requests {
		if err = s.repo.MarkFeePaid(ctx, fees[idx], tx.ID); err != nil {
			return err
		}
	}

	return nil
}

// Dismiss takes a transaction out of reconciliation for good.
func (s *Service) Dismiss(ctx context.Context, transactionID string) error {
	tx, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return err
	}

	if !database.CanTransition(tx.MatchState, database.MatchStateDismissed) {
		return common.NewValidationError(
			fmt.Sprintf("cannot dismiss a transaction in state %s", tx.MatchState))
	}

	if err = tx.Transition(database.MatchStateDismissed); err != nil {
		return err
	}

	return s.repo.UpdateTransaction(ctx, tx)
}

// SetHidden flips the visibility flag. It is orthogonal to match state and
// always reversible.
func (s *Service) SetHidden(ctx context.Context, transactionID string, hidden bool) error {
	tx, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return err
	}

	if tx.Hidden == hidden {
		return nil
	}

	tx.Hidden = hidden

	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) ResolveWarning(ctx context.Context, warningID string) error {
	return s.warnings.Resolve(ctx, warningID)
}

func (s *Service) DismissWarning(ctx context.Context, warningID string) error {
	return s.warnings.Dismiss(ctx, warningID)
}

func (s *Service) OpenWarnings(ctx context.Context) ([]*database.TransactionWarning, error) {
	return s.warnings.ListOpen(ctx)
}

func (s *Service) Unmatched(ctx context.Context) ([]*database.BankTransaction, error) {
	return s.repo.ListTransactions(ctx, ListFilter{
		States: []database.MatchState{database.MatchStateUnmatched, database.MatchStateSuggested},
	})
}

func (s *Service) Matched(ctx context.Context) ([]*database.BankTransaction, error) {
	return s.repo.ListTransactions(ctx, ListFilter{
		States: []database.MatchState{database.MatchStateMatched, database.MatchStateAllocated},
	})
}

func (s *Service) Suggestions(ctx context.Context, transactionID string) ([]*database.MatchCandidate, error) {
	return s.repo.ListCandidates(ctx, transactionID)
}

// SuggestionsForChild lists unresolved transactions the matcher considered
// plausible for one child.
func (s *Service) SuggestionsForChild(ctx context.Context, childID string) ([]*database.BankTransaction, error) {
	return s.repo.ListCandidateTransactionsForChild(ctx, childID)
}

func (s *Service) Allocations(ctx context.Context, transactionID string) ([]*database.Allocation, error) {
	return s.repo.ListAllocations(ctx, transactionID)
}

// Rescan re-runs the matching engine over everything still unresolved, e.g.
// after fees were added or an IBAN was newly trusted.
func (s *Service) Rescan(ctx context.Context) (int, error) {
	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	unresolved, err := s.repo.ListTransactions(ctx, ListFilter{
		States: []database.MatchState{database.MatchStateUnmatched, database.MatchStateSuggested},
	})
	if err != nil {
		return 0, err
	}

	resolved := 0
	for _, tx := range unresolved {
		result, matchErr := s.matcher.Process(ctx, snapshot, tx)
		if matchErr != nil {
			zerolog.Ctx(ctx).Error().Err(matchErr).Str("transaction_id", tx.ID).
				Msg("rescan failed for transaction")

			continue
		}

		if result.State == database.MatchStateMatched {
			resolved++
		}
	}

	return resolved, nil
}

// requireUnresolved rejects mutations on transactions that already pay a fee
// set. matched and allocated are reachable transition targets from themselves,
// but re-linking without an explicit Unmatch would double-count the payment.
func (s *Service) requireUnresolved(tx *database.BankTransaction, verb string) error {
	switch tx.MatchState {
	case database.MatchStateUnmatched, database.MatchStateSuggested:
		return nil
	case database.MatchStateMatched, database.MatchStateAllocated:
		return common.NewValidationError(
			fmt.Sprintf("cannot %s a transaction in state %s: unmatch it first", verb, tx.MatchState))
	default:
		return common.NewValidationError(
			fmt.Sprintf("cannot %s a transaction in state %s", verb, tx.MatchState))
	}
}

func (s *Service) loadMatchable(ctx context.Context, transactionID string) (*database.BankTransaction, error) {
	tx, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}

		return nil, errors.Wrapf(err, "failed to load transaction %s", transactionID)
	}

	if !tx.Matchable() {
		return nil, common.NewValidationError("outgoing transactions cannot be reconciled")
	}

	return tx, nil
}
