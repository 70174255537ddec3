// Package retry provides a bounded-attempt operation wrapper with a fixed
// delay between attempts. Callers branch on the returned outcome rather
// than an error: exhaustion is an expected result, not an exception.
package retry

import "time"

// Outcome reports the result of running an operation under a Policy.
type Outcome struct {
	Success      bool
	AttemptsUsed int
	Err          error // last error observed; nil when Success is true
}

// Policy runs an operation up to MaxAttempts times, pausing Delay between
// attempts. The zero value is not usable; construct with NewPolicy.
type Policy struct {
	maxAttempts int
	delay       time.Duration
	sleep       func(time.Duration)
}

// NewPolicy creates a Policy. maxAttempts below 1 is clamped to 1 and a
// negative delay is clamped to zero.
func NewPolicy(maxAttempts int, delay time.Duration) Policy {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if delay < 0 {
		delay = 0
	}

	return Policy{
		maxAttempts: maxAttempts,
		delay:       delay,
		sleep:       time.Sleep,
	}
}

// WithSleep returns a copy of the policy using the given sleep function.
// Tests use this to run without real delays.
func (p Policy) WithSleep(sleep func(time.Duration)) Policy {
	p.sleep = sleep
	return p
}

// MaxAttempts returns the configured attempt ceiling.
func (p Policy) MaxAttempts() int {
	return p.maxAttempts
}

// Delay returns the configured inter-attempt delay.
func (p Policy) Delay() time.Duration {
	return p.delay
}

// Do invokes op until it succeeds or the attempt ceiling is reached.
// The pause between attempts blocks the calling goroutine; no pause
// follows the final attempt.
func (p Policy) Do(op func() error) Outcome {
	var lastErr error

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		err := op()
		if err == nil {
			return Outcome{
				Success:      true,
				AttemptsUsed: attempt,
			}
		}
		lastErr = err

		if attempt < p.maxAttempts && p.delay > 0 {
			p.sleep(p.delay)
		}
	}

	return Outcome{
		Success:      false,
		AttemptsUsed: p.maxAttempts,
		Err:          lastErr,
	}
}
