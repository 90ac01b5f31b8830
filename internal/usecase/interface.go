package usecase

import (
	"context"

	"inventory-transfers/internal/domain"
)

// SnapshotRepository loads an inventory snapshot file.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type SnapshotRepository interface {
	GetSnapshot(ctx context.Context, path string) (*domain.Snapshot, error)
}

// ReportExporter writes rendered tables into dir and returns the written paths.
type ReportExporter interface {
	Export(ctx context.Context, dir string, tables []domain.Table) ([]string, error)
}
