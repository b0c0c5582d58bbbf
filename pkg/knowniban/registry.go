package knowniban

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/openkita/finance/pkg/common"
	"github.com/openkita/finance/pkg/database"
)

// Registry answers blacklist and trusted lookups for payer accounts and
// enforces the write-time shape of entries: trusted entries carry a child,
// blacklisted entries never do.
type Registry struct {
	repo Repo
}

func NewRegistry(
	repo Repo,
) *Registry {
	return &Registry{
		repo: repo,
	}
}

func Normalize(iban string) string {
	return strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
}

func (r *Registry) IsBlacklisted(ctx context.Context, iban string) (bool, error) {
	entry, err := r.lookup(ctx, iban)
	if err != nil {
		return false, err
	}

	return entry != nil && entry.Status == database.IBANBlacklisted, nil
}

// LookupTrusted returns the child bound to a trusted account, or nil.
func (r *Registry) LookupTrusted(ctx context.Context, iban string) (*string, error) {
	entry, err := r.lookup(ctx, iban)
	if err != nil {
		return nil, err
	}

	if entry == nil || entry.Status != database.IBANTrusted {
		return nil, nil
	}

	return entry.ChildID, nil
}

func (r *Registry) Add(
	ctx context.Context,
	iban string,
	status database.IBANStatus,
	childID *string,
) error {
	iban = Normalize(iban)
	if iban == "" {
		return common.NewValidationError("iban must not be empty")
	}

	switch status {
	case database.IBANTrusted:
		if childID == nil || *childID == "" {
			return common.NewValidationError("a trusted iban must be linked to a child")
		}
	case database.IBANBlacklisted:
		if childID != nil {
			return common.NewValidationError("a blacklisted iban must not be linked to a child")
		}
	default:
		return common.NewValidationError("unknown iban status")
	}

	return r.repo.SaveKnownIBAN(ctx, &database.KnownIBAN{
		IBAN:      iban,
		Status:    status,
		ChildID:   childID,
		CreatedAt: time.Now().UTC(),
	})
}

// Remove drops an entry. Open warnings that referenced the account keep
// their snapshot; removal is not retroactive.
func (r *Registry) Remove(ctx context.Context, iban string) error {
	return r.repo.DeleteKnownIBAN(ctx, Normalize(iban))
}

func (r *Registry) List(ctx context.Context, status database.IBANStatus) ([]*database.KnownIBAN, error) {
	return r.repo.ListKnownIBANs(ctx, status)
}

// Snapshot loads the whole registry into an immutable pass-scoped view so a
// sync pass sees one consistent blacklist instead of a drifting one.
func (r *Registry) Snapshot(ctx context.Context) (*Snapshot, error) {
	blacklisted, err := r.repo.ListKnownIBANs(ctx, database.IBANBlacklisted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load blacklist")
	}

	trusted, err := r.repo.ListKnownIBANs(ctx, database.IBANTrusted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load trusted ibans")
	}

	trustedByIBAN := map[string]string{}
	for _, entry := range trusted {
		if entry.ChildID != nil {
			trustedByIBAN[entry.IBAN] = *entry.ChildID
		}
	}

	blacklistedIBANs := make([]string, 0, len(blacklisted))
	for _, entry := range blacklisted {
		blacklistedIBANs = append(blacklistedIBANs, entry.IBAN)
	}

	return NewSnapshot(blacklistedIBANs, trustedByIBAN), nil
}

// NewSnapshot builds a registry view from raw entries.
func NewSnapshot(blacklisted []string, trusted map[string]string) *Snapshot {
	s := &Snapshot{
		blacklisted: map[string]struct{}{},
		trusted:     map[string]string{},
	}

	for _, iban := range blacklisted {
		s.blacklisted[Normalize(iban)] = struct{}{}
	}
	for iban, childID := range trusted {
		s.trusted[Normalize(iban)] = childID
	}

	return s
}

func (r *Registry) lookup(ctx context.Context, iban string) (*database.KnownIBAN, error) {
	iban = Normalize(iban)
	if iban == "" {
		return nil, nil
	}

	entry, err := r.repo.GetKnownIBAN(ctx, iban)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return entry, nil
}

// Snapshot is a read-only registry view taken at the start of a sync pass.
type Snapshot struct {
	blacklisted map[string]struct{}
	trusted     map[string]string
}

func (s *Snapshot) IsBlacklisted(iban string) bool {
	_, ok := s.blacklisted[Normalize(iban)]
	return ok
}

func (s *Snapshot) LookupTrusted(iban string) (string, bool) {
	childID, ok := s.trusted[Normalize(iban)]
	return childID, ok
}
