package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	clock := NewFakeScheduler(16 * time.Millisecond)
	d := &Debouncer{Key: KeySearch, Delay: 300 * time.Millisecond}

	for i := 0; i < 5; i++ {
		d.Trigger(clock)
		clock.Advance(100 * time.Millisecond)
	}

	var fired int
	for _, f := range clock.Advance(time.Second) {
		if f.Key == KeySearch && d.Fire(f.Gen) {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, clock.Pending())
}

func TestDebouncer_QuietPeriodFires(t *testing.T) {
	clock := NewFakeScheduler(0)
	d := &Debouncer{Key: KeyResize, Delay: 100 * time.Millisecond}
	d.Trigger(clock)

	assert.Empty(t, clock.Advance(99*time.Millisecond))
	due := clock.Advance(time.Millisecond)
	require.Len(t, due, 1)
	assert.True(t, d.Fire(due[0].Gen))
	assert.False(t, d.Fire(due[0].Gen+1))
}

func TestDebouncer_Cancel(t *testing.T) {
	clock := NewFakeScheduler(0)
	d := &Debouncer{Key: KeySearch, Delay: 10 * time.Millisecond}
	d.Trigger(clock)
	d.Cancel()

	due := clock.Advance(time.Second)
	require.Len(t, due, 1)
	assert.False(t, d.Fire(due[0].Gen))
}

func TestFrameLimiter_OnePerFrame(t *testing.T) {
	clock := NewFakeScheduler(16 * time.Millisecond)
	f := &FrameLimiter{Key: KeyScroll}

	assert.True(t, f.Request(clock))
	for i := 0; i < 10; i++ {
		assert.False(t, f.Request(clock))
	}
	assert.True(t, f.Pending())
	assert.Equal(t, 1, clock.Pending())

	due := clock.Advance(16 * time.Millisecond)
	require.Len(t, due, 1)
	assert.True(t, f.Fire(due[0].Gen))
	assert.False(t, f.Fire(due[0].Gen))
	assert.False(t, f.Pending())

	assert.True(t, f.Request(clock))
}

func TestFakeScheduler_FrameBoundary(t *testing.T) {
	clock := NewFakeScheduler(16 * time.Millisecond)
	clock.Advance(20 * time.Millisecond)
	clock.BeforeNextFrame(KeyScroll, 1)
	clock.AfterDelay(5*time.Millisecond, KeySearch, 1)

	due := clock.Advance(5 * time.Millisecond)
	assert.Equal(t, []Fired{{Key: KeySearch, Gen: 1}}, due)
	due = clock.Advance(7 * time.Millisecond)
	assert.Equal(t, []Fired{{Key: KeyScroll, Gen: 1}}, due)
	assert.Equal(t, 32*time.Millisecond, clock.Now())
}

func TestFrameLimiter_Cancel(t *testing.T) {
	clock := NewFakeScheduler(16 * time.Millisecond)
	f := &FrameLimiter{Key: KeyScroll}
	f.Request(clock)
	f.Cancel()

	due := clock.Advance(16 * time.Millisecond)
	require.Len(t, due, 1)
	assert.False(t, f.Fire(due[0].Gen))
	assert.True(t, f.Request(clock))
}
