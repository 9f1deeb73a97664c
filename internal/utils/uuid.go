package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers. The relay uses them for
// trace ids and the client for record keys it has to invent.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7 string, or a random v4 if the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
