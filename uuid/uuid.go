// Package uuid provides identifier generation backed by google/uuid.
package uuid

import (
	"github.com/google/uuid"

	"github.com/voyagecli/voyage"
)

// Interface compliance check.
var _ voyage.IDGenerator = Generator{}

// Generator produces random UUIDv4 identifiers.
type Generator struct{}

// NewID returns a fresh random identifier.
func (Generator) NewID() string {
	return uuid.NewString()
}
