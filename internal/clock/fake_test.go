package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeAdvanceFiresInDeadlineOrder(t *testing.T) {
	clk := NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	var fired []string
	clk.AfterFunc(2*time.Hour, func() { fired = append(fired, "later") })
	clk.AfterFunc(time.Hour, func() { fired = append(fired, "sooner") })

	clk.Advance(30 * time.Minute)
	assert.Empty(t, fired)

	clk.Advance(2 * time.Hour)
	assert.Equal(t, []string{"sooner", "later"}, fired)
}

func TestFakeTimerStop(t *testing.T) {
	clk := NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	fired := false
	timer := clk.AfterFunc(time.Hour, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop()) // already stopped

	clk.Advance(2 * time.Hour)
	assert.False(t, fired)
}

func TestFakeCallbackMaySchedule(t *testing.T) {
	clk := NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	var fired []string
	clk.AfterFunc(time.Hour, func() {
		fired = append(fired, "first")
		clk.AfterFunc(time.Hour, func() { fired = append(fired, "chained") })
	})

	clk.Advance(time.Hour)
	assert.Equal(t, []string{"first"}, fired)

	clk.Advance(time.Hour)
	assert.Equal(t, []string{"first", "chained"}, fired)
}
