package ingest

import (
	"context"

	"github.com/openkita/finance/pkg/database"
	"github.com/openkita/finance/pkg/matcher"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package ingest_test -source=interfaces.go

type Repo interface {
	// InsertTransactionUnlessDup persists the transaction unless its dedup
	// key already exists. The decision is made by the storage layer in one
	// statement, so concurrent ingestion paths cannot double-import.
	InsertTransactionUnlessDup(ctx context.Context, tx *database.BankTransaction) (bool, error)
}

type Matcher interface {
	Process(
		ctx context.Context,
		trusted matcher.TrustedLookup,
		tx *database.BankTransaction,
	) (*matcher.Result, error)
}

// RegistryView is the pass-scoped known-IBAN view used while ingesting.
type RegistryView interface {
	IsBlacklisted(iban string) bool
	LookupTrusted(iban string) (string, bool)
}
