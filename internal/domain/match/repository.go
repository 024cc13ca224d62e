package match

import "context"

// Repository describes match reads needed by the query side.
type Repository interface {
	ListSummaries(ctx context.Context, filter DetailsFilter) ([]Summary, error)
	GetSummary(ctx context.Context, matchID string) (Summary, bool, error)
	ListDeliveries(ctx context.Context, filter DeliveryFilter) ([]Delivery, error)
	BattingStats(ctx context.Context, filter PerformanceFilter) (BattingStats, error)
	BowlingStats(ctx context.Context, filter PerformanceFilter) (BowlingStats, error)
	FieldingStats(ctx context.Context, filter PerformanceFilter) (FieldingStats, error)
	PlayerExists(ctx context.Context, name string) (bool, error)
}

// Writer persists a full match record in one transaction. Writing the same
// match twice replaces its innings and deliveries wholesale.
type Writer interface {
	Write(ctx context.Context, record *Record) error
}
