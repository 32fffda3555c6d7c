package utils

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces record identifiers of the form "<prefix>-<uuid>".
type IDGenerator struct {
	prefix string
}

// NewIDGenerator returns a generator for ids carrying prefix. An empty prefix
// produces bare UUIDs.
func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: strings.TrimSuffix(prefix, "-")}
}

// Generate returns a new UUIDv7-based id, falling back to a random v4 UUID.
func (g *IDGenerator) Generate() string {
	id := uuid.NewString()
	if v7, err := uuid.NewV7(); err == nil {
		id = v7.String()
	}

	if g.prefix == "" {
		return id
	}
	return g.prefix + "-" + id
}
