package player

import "context"

// Repository describes player reads needed by the query side.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Summary, error)
}
