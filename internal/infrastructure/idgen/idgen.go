package idgen

import (
	"fmt"
	"sync/atomic"

	"atelier-admin-core/internal/ports"

	"github.com/google/uuid"
)

// UUIDSource generates random UUIDs for local-only entities.
type UUIDSource struct{}

var _ ports.IDSource = UUIDSource{}

func (UUIDSource) NewID() string {
	return uuid.NewString()
}

// SequenceSource generates deterministic prefixed ids for tests.
type SequenceSource struct {
	Prefix string
	n      atomic.Int64
}

var _ ports.IDSource = (*SequenceSource)(nil)

func (s *SequenceSource) NewID() string {
	return fmt.Sprintf("%s%d", s.Prefix, s.n.Add(1))
}
