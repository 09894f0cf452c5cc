package entity

import "errors"

// Repository sentinels. Use cases translate them into apperr kinds.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicate    = errors.New("duplicate record")
	ErrStaleVersion = errors.New("record was modified concurrently")
)

// UserID identifies an account. Ownership checks compare UserIDs, never raw strings.
type UserID string

func (id UserID) Equal(other UserID) bool {
	return id != "" && id == other
}

func (id UserID) String() string {
	return string(id)
}
