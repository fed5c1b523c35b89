package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// StorageChecker checks attachment object storage availability.
type StorageChecker interface {
	HealthCheck(ctx context.Context) error
}
