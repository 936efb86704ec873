package domain

import (
	"errors"
	"time"
)

// ErrInvalidLead marks a lead rejected by validation before it reaches
// storage.
var ErrInvalidLead = errors.New("invalid lead")

// Lead is a contact captured by one of the site forms, persisted locally and
// forwarded to the CRM sync queue.
type Lead struct {
	ID         int64
	Name       string
	Email      string
	Phone      *string
	Company    *string
	Message    *string
	PersonaID  *PersonaID
	SourcePath string
	CreatedAt  time.Time
}
