package team

import "context"

// Repository describes team reads needed by the query side.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Summary, error)
}
