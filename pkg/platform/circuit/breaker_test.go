package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBreaker(t *testing.T) {
	b := New("kafka")
	assert.Equal(t, "kafka", b.Name())
	assert.Equal(t, StateClosed, b.State())
	assert.False(t, b.IsOpen())
	assert.Equal(t, 5, b.failureThreshold)
	assert.Equal(t, 3, b.successThreshold)

	b = New("kafka", WithFailureThreshold(0), WithSuccessThreshold(-1))
	assert.Equal(t, 5, b.failureThreshold, "non-positive thresholds are ignored")
	assert.Equal(t, 3, b.successThreshold)
}

// outcome is one recorded call: true for success.
type outcome bool

const (
	ok   outcome = true
	fail outcome = false
)

func TestBreakerTransitions(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		successes int
		calls     []outcome
		wantOpen  bool
	}{
		{name: "stays closed below threshold", failures: 3, successes: 2, calls: []outcome{fail, fail}, wantOpen: false},
		{name: "opens at threshold", failures: 3, successes: 2, calls: []outcome{fail, fail, fail}, wantOpen: true},
		{name: "success resets failure streak", failures: 3, successes: 2, calls: []outcome{fail, fail, ok, fail, fail}, wantOpen: false},
		{name: "one success is not enough to close", failures: 1, successes: 2, calls: []outcome{fail, ok}, wantOpen: true},
		{name: "closes after success streak", failures: 1, successes: 2, calls: []outcome{fail, ok, ok}, wantOpen: false},
		{name: "failure resets success streak", failures: 1, successes: 3, calls: []outcome{fail, ok, ok, fail, ok, ok}, wantOpen: true},
		{name: "reclosed after full streak", failures: 1, successes: 3, calls: []outcome{fail, ok, ok, fail, ok, ok, ok}, wantOpen: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("test", WithFailureThreshold(tt.failures), WithSuccessThreshold(tt.successes))
			for _, c := range tt.calls {
				if c {
					b.RecordSuccess()
				} else {
					b.RecordFailure()
				}
			}
			assert.Equal(t, tt.wantOpen, b.IsOpen())
		})
	}
}

func TestBreakerReportsChanges(t *testing.T) {
	b := New("test", WithFailureThreshold(2), WithSuccessThreshold(1))

	useFallback, change := b.RecordFailure()
	assert.False(t, useFallback)
	assert.Equal(t, StateChange{}, change)

	useFallback, change = b.RecordFailure()
	assert.True(t, useFallback)
	assert.True(t, change.Opened)

	useFallback, change = b.RecordFailure()
	assert.True(t, useFallback)
	assert.False(t, change.Opened, "already open")

	usePrimary, change := b.RecordSuccess()
	assert.True(t, usePrimary)
	assert.True(t, change.Closed)

	usePrimary, change = b.RecordSuccess()
	assert.True(t, usePrimary)
	assert.Equal(t, StateChange{}, change)
}

func TestBreakerReset(t *testing.T) {
	b := New("test", WithFailureThreshold(1))
	b.RecordFailure()
	assert.True(t, b.IsOpen())

	b.Reset()
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, "closed", b.State().String())
	b.RecordSuccess()
	assert.False(t, b.IsOpen())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "open", StateOpen.String())
}
