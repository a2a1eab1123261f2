package storage

import (
	"context"

	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/model"
)

// Storage defines the persistence layer for synthesis history.
type Storage interface {
	// RecordSynth persists a single synthesis run.
	RecordSynth(ctx context.Context, record *model.SynthRecord) error

	// ListSynths returns runs matching the filter, newest first.
	ListSynths(ctx context.Context, filter model.HistoryFilter) ([]model.SynthRecord, error)

	// LatestSynth returns the most recent run for a stack in an account and
	// region, or nil if there is none.
	LatestSynth(ctx context.Context, stack, account, region string) (*model.SynthRecord, error)

	// Close releases resources.
	Close() error
}
