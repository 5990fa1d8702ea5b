package usecase

import (
	"github.com/google/uuid"

	"clarity/internal/ports"
)

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

// NewUUIDGenerator returns the production session id generator.
func NewUUIDGenerator() ports.IDGenerator { return uuidGenerator{} }
