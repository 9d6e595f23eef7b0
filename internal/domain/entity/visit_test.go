package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewVisitID(t *testing.T) {
	now := time.UnixMilli(1736412345678)
	id := NewVisitID(now)

	assert.Equal(t, "P345678", id)
	assert.Len(t, id, 7)
}

func TestVisitStatusTransitions(t *testing.T) {
	v := Visit{ID: "P123456", Status: VisitStatusWaiting}
	assert.True(t, v.IsWaiting())

	v.BeginConsultation()
	assert.True(t, v.IsConsulting())
	assert.False(t, v.IsWaiting())

	v.Release()
	assert.True(t, v.IsWaiting())

	v.BeginConsultation()
	v.Complete()
	assert.True(t, v.IsCompleted())
}
