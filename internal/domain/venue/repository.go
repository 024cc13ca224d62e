package venue

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Summary, error)
}
