package policy

import "errors"

var (
	ErrPolicyNotFound    = errors.New("leave policy not found")
	ErrPolicyExists      = errors.New("leave policy already exists for this organization, name and type")
	ErrInvalidPolicyType = errors.New("invalid policy type")
	ErrSnapshotConflict  = errors.New("concurrent policy change, snapshot version conflict")
)
