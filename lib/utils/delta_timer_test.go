package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeltaTimer(t *testing.T) {
	var d DeltaTimer
	start := time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)

	assert.Zero(t, d.NextAt(start))
	assert.Equal(t, 16*time.Millisecond, d.NextAt(start.Add(16*time.Millisecond)))
	assert.Equal(t, 17*time.Millisecond, d.NextAt(start.Add(33*time.Millisecond)))
}
