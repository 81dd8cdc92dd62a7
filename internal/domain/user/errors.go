package user

import "errors"

var (
	ErrInvalidToken         = errors.New("invalid or missing token")
	ErrPermissionRequired   = errors.New("insufficient permissions")
	ErrOrganizationRequired = errors.New("actor has no organization")
)
