package upload

import (
	"context"

	"github.com/openkita/finance/pkg/acquire"
	"github.com/openkita/finance/pkg/database"
	"github.com/openkita/finance/pkg/ingest"
	"github.com/openkita/finance/pkg/knowniban"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package upload_test -source=interfaces.go

type Repo interface {
	SaveImportBatch(ctx context.Context, batch *database.ImportBatch) error
	ListImportBatches(ctx context.Context, limit int) ([]*database.ImportBatch, error)
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
