package syncer

import (
	"context"
	"time"

	"github.com/openkita/finance/pkg/acquire"
	"github.com/openkita/finance/pkg/database"
	"github.com/openkita/finance/pkg/ingest"
	"github.com/openkita/finance/pkg/knowniban"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package syncer_test -source=interfaces.go

type Repo interface {
	GetBankingConfig(ctx context.Context, configID string) (*database.BankingConfig, error)
	UpdateLastSync(ctx context.Context, configID string, at time.Time) error
	AcquireSyncLock(ctx context.Context, configID string, ttl time.Duration) (string, error)
	ReleaseSyncLock(ctx context.Context, configID string, token string) error
	SaveSyncRun(ctx context.Context, run *database.SyncRun) error
	ListSyncRuns(ctx context.Context, configID string, limit int) ([]*database.SyncRun, error)
}

type Registry interface {
	Snapshot(ctx context.Context) (*knowniban.Snapshot, error)
}

type Pipeline interface {
	Ingest(
		ctx context.Context,
		registry ingest.RegistryView,
		record acquire.NormalizedTransaction,
		source database.TransactionSource,
	) (*ingest.Outcome, error)
}

type Cipher interface {
	Decrypt(ciphertext []byte) ([]byte, error)
}

type Notifier interface {
	SyncCompleted(ctx context.Context, result *Result)
}
