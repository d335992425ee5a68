package test

import (
	"sync/atomic"
)

// RandomStub always draws Value, or fails with Err.
type RandomStub struct {
	Value int64
	Err   error
	calls atomic.Int64
}

// Draw counts the call and returns the configured result.
func (s *RandomStub) Draw(low, highInclusive int64) (int64, error) {
	s.calls.Add(1)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Value, nil
}

// Calls reports how many times Draw was invoked.
func (s *RandomStub) Calls() int64 {
	return s.calls.Load()
}
