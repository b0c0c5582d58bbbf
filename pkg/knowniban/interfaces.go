package knowniban

import (
	"context"

	"github.com/openkita/finance/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package knowniban_test -source=interfaces.go

type Repo interface {
	GetKnownIBAN(ctx context.Context, iban string) (*database.KnownIBAN, error)
	ListKnownIBANs(ctx context.Context, status database.IBANStatus) ([]*database.KnownIBAN, error)
	SaveKnownIBAN(ctx context.Context, entry *database.KnownIBAN) error
	DeleteKnownIBAN(ctx context.Context, iban string) error
}
