package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	type record struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	err := s.Put(ctx, "clinic:test", []record{{Name: "Ravi", Age: 30}})
	require.NoError(t, err)

	var got []record
	err = s.Get(ctx, "clinic:test", &got)
	require.NoError(t, err)
	assert.Equal(t, []record{{Name: "Ravi", Age: 30}}, got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()

	var got []string
	err := s.Get(context.Background(), "clinic:missing", &got)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStoreLastWriterWins(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "clinic:test", []string{"a", "b"}))
	require.NoError(t, s.Put(ctx, "clinic:test", []string{"c"}))

	var got []string
	require.NoError(t, s.Get(ctx, "clinic:test", &got))
	assert.Equal(t, []string{"c"}, got)
}
