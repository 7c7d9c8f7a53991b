package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetByIDInvalidHex(t *testing.T) {
	// Syntactically invalid ids short-circuit before any query runs, so a
	// store with no collection behind it is enough to exercise the contract.
	s := &PostStore{}

	tests := []string{
		"",
		"not-an-object-id",
		"zzzzzzzzzzzzzzzzzzzzzzzz",
		"abc123",                     // too short
		"68b1c2d3e4f5a6b7c8d9e0f1a2", // too long
	}

	for _, id := range tests {
		post, err := s.GetByID(context.Background(), id)
		assert.Nil(t, post, "id %q", id)
		assert.ErrorIs(t, err, ErrNotFound, "id %q", id)
	}
}
