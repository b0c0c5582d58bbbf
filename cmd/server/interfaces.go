package main

import (
	"context"

	"github.com/openkita/finance/pkg/database"
	"github.com/openkita/finance/pkg/reconcile"
)

type ReconcileService interface {
	ManualMatch(ctx context.Context, transactionID, feeID string) error
	Unmatch(ctx context.Context, transactionID string) error
	Allocate(ctx context.Context, transactionID string, requests []reconcile.AllocationRequest) error
	Dismiss(ctx context.Context, transactionID string) error
	SetHidden(ctx context.Context, transactionID string, hidden bool) error
	ResolveWarning(ctx context.Context, warningID string) error
	DismissWarning(ctx context.Context, warningID string) error
	OpenWarnings(ctx context.Context) ([]*database.TransactionWarning, error)
	Unmatched(ctx context.Context) ([]*database.BankTransaction, error)
	Matched(ctx context.Context) ([]*database.BankTransaction, error)
	Suggestions(ctx context.Context, transactionID string) ([]*database.MatchCandidate, error)
	SuggestionsForChild(ctx context.Context, childID string) ([]*database.BankTransaction, error)
	Rescan(ctx context.Context) (int, error)
}

type IBANRegistry interface {
	Add(ctx context.Context, iban string, status database.IBANStatus, childID *string) error
	Remove(ctx context.Context, iban string) error
	List(ctx context.Context, status database.IBANStatus) ([]*database.KnownIBAN, error)
}

type SyncService interface {
	Start(ctx context.Context, configID string) error
	History(ctx context.Context, configID string) ([]*database.SyncRun, error)
}

type UploadService interface {
	ImportFile(ctx context.Context, fileName, formatName string, data []byte) (*database.ImportBatch, error)
	History(ctx context.Context, limit int) ([]*database.ImportBatch, error)
}
