package official

import "context"

type Repository interface {
	ListAssignments(ctx context.Context, filter Filter) ([]Assignment, error)
}
