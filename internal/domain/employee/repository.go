package employee

import "context"

// Repository - read-only collaborator; employee records are managed outside
// this service.
type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
}
