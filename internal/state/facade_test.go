package state

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZeroValueFacadePanics(t *testing.T) {
	var f Facade
	assert.Panics(t, func() { f.Categories() })
	assert.Panics(t, func() { f.UnreadCount() })
}

func TestFacadeDelegatesToStore(t *testing.T) {
	s := New(zerolog.Nop())
	f := s.Facade()

	assert.Equal(t, s.Categories(), f.Categories())
	assert.Equal(t, s.Products(), f.Products())
	assert.Equal(t, s.UnreadCount(), f.UnreadCount())
	assert.Equal(t, s.Profile(), f.Profile())
}
