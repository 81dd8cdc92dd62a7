package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehub/leave-backend-go/internal/domain/user"
)

// actorFromRequest builds the acting identity from verified token claims.
func actorFromRequest(r *http.Request) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Actor{}, user.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Actor{}, user.ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return user.Actor{}, user.ErrInvalidToken
	}

	actor := user.Actor{
		UserID: userID,
		Role:   user.Role(roleStr),
	}
	if orgID, ok := claims["organization_id"].(string); ok && orgID != "" {
		actor.OrganizationID = &orgID
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		actor.EmployeeID = &employeeID
	}

	return actor, nil
}
