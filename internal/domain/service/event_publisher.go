package service

import (
	"context"

	"fitsync/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSyncRunEvent publishes the outcome of a sync run for async consumers
	PublishSyncRunEvent(ctx context.Context, event *entity.SyncRunEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
