// Package ident provides identifier generation for lists and tasks.
package ident

import (
	"github.com/google/uuid"

	"github.com/mtoledo/credtrack/internal/domain"
)

// UUIDGenerator produces random 128-bit identifiers. Collision
// probability is negligible at the scale of a single project document.
type UUIDGenerator struct{}

// NewID returns a fresh random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Ensure UUIDGenerator implements IDGenerator.
var _ domain.IDGenerator = UUIDGenerator{}
