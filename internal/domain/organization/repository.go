package organization

import "context"

// Repository - read-only collaborator; organization management lives outside
// this service.
type Repository interface {
	GetByID(ctx context.Context, id string) (Organization, error)
}
