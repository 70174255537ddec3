package retry_test

import (
	"errors"
	"testing"
	"time"

	"codeberg.org/mutker/co2mon/internal/retry"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func TestDoSucceedsFirstAttempt(t *testing.T) {
	policy := retry.NewPolicy(3, time.Second).WithSleep(func(time.Duration) {
		t.Fatal("sleep should not be called when the first attempt succeeds")
	})

	outcome := policy.Do(func() error { return nil })

	assert.True(t, outcome.Success)
	assert.Equal(t, 1, outcome.AttemptsUsed)
	assert.NoError(t, outcome.Err)
}

func TestDoSucceedsThirdAttempt(t *testing.T) {
	var slept []time.Duration
	policy := retry.NewPolicy(3, 500*time.Millisecond).WithSleep(func(d time.Duration) {
		slept = append(slept, d)
	})

	calls := 0
	outcome := policy.Do(func() error {
		calls++
		if calls < 3 {
			return errBoom
		}
		return nil
	})

	assert.True(t, outcome.Success)
	assert.Equal(t, 3, outcome.AttemptsUsed)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 500 * time.Millisecond}, slept)
}

func TestDoExhaustsAttempts(t *testing.T) {
	sleeps := 0
	policy := retry.NewPolicy(3, time.Second).WithSleep(func(time.Duration) { sleeps++ })

	calls := 0
	outcome := policy.Do(func() error {
		calls++
		return errBoom
	})

	assert.False(t, outcome.Success)
	assert.Equal(t, 3, outcome.AttemptsUsed)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, outcome.Err, errBoom)
	// No pause after the final attempt
	assert.Equal(t, 2, sleeps)
}

func TestNewPolicyClampsArguments(t *testing.T) {
	policy := retry.NewPolicy(0, -time.Second)

	assert.Equal(t, 1, policy.MaxAttempts())
	assert.Equal(t, time.Duration(0), policy.Delay())

	calls := 0
	outcome := policy.Do(func() error {
		calls++
		return errBoom
	})

	assert.False(t, outcome.Success)
	assert.Equal(t, 1, calls)
}
