// internal/model/identity.go
package model

import "github.com/google/uuid"

// Identity is the authenticated caller for a single request. It is issued by
// the auth middleware from a verified token and is never persisted.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
