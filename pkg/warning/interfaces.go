package warning

import (
	"context"

	"github.com/openkita/finance/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package warning_test -source=interfaces.go

type Repo interface {
	GetOpenWarning(ctx context.Context, transactionID string, kind database.WarningKind) (*database.TransactionWarning, error)
	GetWarning(ctx context.Context, id string) (*database.TransactionWarning, error)
	SaveWarning(ctx context.Context, warning *database.TransactionWarning) error
	ListOpenWarnings(ctx context.Context) ([]*database.TransactionWarning, error)
}
