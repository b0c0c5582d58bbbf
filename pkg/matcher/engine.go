package matcher

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/openkita/finance/pkg/common"
	"github.com/openkita/finance/pkg/database"
)

const (
	StageTrustedIBAN = "trusted_iban"
	StageMemberNo    = "member_no"
	StageFuzzyName   = "fuzzy_name"
)

// DefaultMemberIDPattern recognizes the member number guardians are asked to
// put into the transfer purpose, e.g. "KND-10234".
const DefaultMemberIDPattern = `(?i)\bKND[-\s]?(\d{3,6})\b`

const DefaultNameSimilarity = 0.84

type Config struct {
	// MemberIDPattern must contain exactly one capture group holding the
	// member number.
	MemberIDPattern string
	NameSimilarity  float64
}

// Engine resolves an incoming transaction to a child and an open fee. It
// decides alone only when the outcome is unambiguous; everything else ends up
// as a suggestion or a warning for staff.
type Engine struct {
	repo     Repo
	warnings Warnings

	memberRegex   *regexp.Regexp
	minSimilarity float64
}

func NewEngine(
	repo Repo,
	warnings Warnings,
	cfg Config,
) (*Engine, error) {
	pattern := cfg.MemberIDPattern
	if pattern == "" {
		pattern = DefaultMemberIDPattern
	}

	memberRegex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid member id pattern %q", pattern)
	}

	if memberRegex.NumSubexp() != 1 {
		return nil, errors.Newf("member id pattern %q must have exactly one capture group", pattern)
	}

	minSimilarity := cfg.NameSimilarity
	if minSimilarity <= 0 {
		minSimilarity = DefaultNameSimilarity
	}

	return &Engine{
		repo:          repo,
		warnings:      warnings,
		memberRegex:   memberRegex,
		minSimilarity: minSimilarity,
	}, nil
}

// Result reports what one matcher run decided for a transaction.
type Result struct {
	State          database.MatchState
	MatchedFeeID   string
	CandidateCount int
	WarningRaised  bool
}

type candidate struct {
	childID    string
	stage      string
	similarity float64
}

// Process runs the staged heuristic over one persisted transaction and
// applies the outcome. Re-running over an already suggested or unmatched
// transaction is safe; finalized transactions are left alone.
func (e *Engine) Process(
	ctx context.Context,
	trusted TrustedLookup,
	tx *database.BankTransaction,
) (*Result, error) {
	if !tx.Matchable() {
		return nil, errors.Newf("transaction %s is not matchable", tx.ID)
	}

	switch tx.MatchState {
	case database.MatchStateUnmatched, database.MatchStateSuggested:
	default:
		return &Result{State: tx.MatchState}, nil
	}

	candidates, trustedChild := e.resolveCandidates(ctx, trusted, tx)

	equalFees, openFeeCount, err := e.collectFees(ctx, tx, candidates)
	if err != nil {
		return nil, err
	}

	if len(equalFees) == 1 {
		return e.applyMatch(ctx, tx, equalFees[0])
	}

	result := &Result{}

	if trustedChild != nil && len(equalFees) == 0 {
		created, warnErr := e.warnings.EnsureOpen(ctx, tx.ID, database.WarningNoMatchingFee,
			trustedChild,
			fmt.Sprintf("payment of %s %s from a trusted account has no matching open fee",
				tx.Amount.String(), tx.Currency))
		if warnErr != nil {
			return nil, warnErr
		}

		result.WarningRaised = created
	}

	// More than one equal fee, or plausible children without an exact fee:
	// surface as suggestions, never pick one.
	if openFeeCount > 0 || len(equalFees) > 1 {
		if err = e.applySuggestions(ctx, tx, candidates); err != nil {
			return nil, err
		}

		result.State = tx.MatchState
		result.CandidateCount = len(candidates)

		return result, nil
	}

	if err = e.applyUnmatched(ctx, tx); err != nil {
		return nil, err
	}

	result.State = tx.MatchState

	return result, nil
}

func (e *Engine) resolveCandidates(
	ctx context.Context,
	trusted TrustedLookup,
	tx *database.BankTransaction,
) ([]candidate, *string) {
	if tx.PayerIBAN != "" {
		if childID, ok := trusted.LookupTrusted(tx.PayerIBAN); ok {
			return []candidate{{childID: childID, stage: StageTrustedIBAN, similarity: 1}}, &childID
		}
	}

	if matches := e.memberRegex.FindStringSubmatch(tx.Description); len(matches) == 2 {
		child, err := e.repo.FindChildByMemberNo(ctx, matches[1])
		switch {
		case err == nil && child != nil:
			return []candidate{{childID: child.ID, stage: StageMemberNo, similarity: 1}}, nil
		case err != nil && !errors.Is(err, common.ErrNotFound):
			zerolog.Ctx(ctx).Error().Err(err).Msg("member number lookup failed")
		default:
			zerolog.Ctx(ctx).Debug().Str("member_no", matches[1]).
				Msg("member number in purpose did not resolve to a child")
		}
	}

	return e.fuzzyCandidates(ctx, tx), nil
}

func (e *Engine) fuzzyCandidates(
	ctx context.Context,
	tx *database.BankTransaction,
) []candidate {
	if tx.PayerName == "" {
		return nil
	}

	guardians, err := e.repo.ListGuardiansOfChildrenWithOpenFees(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list guardians for fuzzy matching")
		return nil
	}

	// One child may have several guardians above the threshold; keep the
	// best score per child.
	bestByChild := map[string]float64{}
	for _, guardian := range guardians {
		similarity := Similarity(tx.PayerName, guardian.FullName)
		if similarity < e.minSimilarity {
			continue
		}

		if similarity > bestByChild[guardian.ChildID] {
			bestByChild[guardian.ChildID] = similarity
		}
	}

	childIDs := lo.Keys(bestByChild)
	sort.Strings(childIDs)

	candidates := make([]candidate, 0, len(childIDs))
	for _, childID := range childIDs {
		candidates = append(candidates, candidate{
			childID:    childID,
			stage:      StageFuzzyName,
			similarity: bestByChild[childID],
		})
	}

	return candidates
}

func (e *Engine) collectFees(
	ctx context.Context,
	tx *database.BankTransaction,
	candidates []candidate,
) ([]*database.Fee, int, error) {
	var equalFees []*database.Fee
	openFeeCount := 0

	for _, cand := range candidates {
		fees, err := e.repo.ListOpenFees(ctx, cand.childID)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "failed to list open fees for child %s", cand.childID)
		}

		openFeeCount += len(fees)

		for _, fee := range fees {
			if fee.Amount.Equal(tx.Amount) {
				equalFees = append(equalFees, fee)
			}
		}
	}

	return equalFees, openFeeCount, nil
}

func (e *Engine) applyMatch(
	ctx context.Context,
	tx *database.BankTransaction,
	fee *database.Fee,
) (*Result, error) {
	if err := tx.Transition(database.MatchStateMatched); err != nil {
		return nil, err
	}

	tx.MatchedFeeID = &fee.ID
	amount := tx.Amount
	tx.MatchedAmount = &amount

	if err := e.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if err := e.repo.ReplaceCandidates(ctx, tx.ID, nil); err != nil {
		return nil, err
	}

	// Fee flip last: on a conflict the transaction is matched with no fee
	// consumed, which a manual unmatch reverts.
	if err := e.repo.MarkFeePaid(ctx, fee, tx.ID); err != nil {
		return nil, err
	}

	result := &Result{
		State:        database.MatchStateMatched,
		MatchedFeeID: fee.ID,
	}

	// Paid in full against the base amount but short of the accrued late
	// surcharge: keep the match, let staff decide about the difference.
	if fee.LateFee.IsPositive() {
		missing := fee.TotalDue().Sub(tx.Amount)
		if missing.IsPositive() {
			created, err := e.warnings.EnsureOpen(ctx, tx.ID, database.WarningShortPayment,
				&fee.ChildID,
				fmt.Sprintf("payment covers the fee but is %s %s short of the late surcharge",
					missing.String(), tx.Currency))
			if err != nil {
				return nil, err
			}

			result.WarningRaised = created
		}
	}

	return result, nil
}

func (e *Engine) applySuggestions(
	ctx context.Context,
	tx *database.BankTransaction,
	candidates []candidate,
) error {
	if err := tx.Transition(database.MatchStateSuggested); err != nil {
		return err
	}

	rows := make([]*database.MatchCandidate, 0, len(candidates))
	for _, cand := range candidates {
		rows = append(rows, &database.MatchCandidate{
			ID:            uuid.NewString(),
			TransactionID: tx.ID,
			ChildID:       cand.childID,
			Stage:         cand.stage,
			Similarity:    cand.similarity,
			CreatedAt:     time.Now().UTC(),
		})
	}

	if err := e.repo.ReplaceCandidates(ctx, tx.ID, rows); err != nil {
		return err
	}

	return e.repo.UpdateTransaction(ctx, tx)
}

func (e *Engine) applyUnmatched(
	ctx context.Context,
	tx *database.BankTransaction,
) error {
	if err := tx.Transition(database.MatchStateUnmatched); err != nil {
		return err
	}

	if err := e.repo.ReplaceCandidates(ctx, tx.ID, nil); err != nil {
		return err
	}

	return e.repo.UpdateTransaction(ctx, tx)
}
