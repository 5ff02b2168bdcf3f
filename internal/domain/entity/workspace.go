// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is the tenant every engine call is scoped to. Workspaces are
// created and managed by the external onboarding service; this service only
// reads them (the owner contact is needed for notifications).
type Workspace struct {
	ID         uuid.UUID
	Name       string
	OwnerName  string
	OwnerEmail string
	CreatedAt  time.Time
}
