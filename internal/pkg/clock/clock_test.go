//go:build unit

package clock_test

import (
	"testing"
	"time"

	"airvoucher-admin/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	now := clock.NewRealClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestMockClock(t *testing.T) {
	sast := time.FixedZone("SAST", 2*60*60)
	start := time.Date(2025, 6, 1, 11, 30, 0, 0, sast)
	clk := clock.NewMockClock(start)

	assert.Equal(t, time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), clk.Now())

	clk.Add(24 * time.Hour)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), clk.Now())

	clk.Set(time.Date(2026, 1, 1, 2, 0, 0, 0, sast))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), clk.Now())
}
