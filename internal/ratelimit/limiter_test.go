package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func TestWindowBudget(t *testing.T) {
	l := New(Config{MaxCalls: 3, Window: 60 * time.Second})

	now := time.Now()
	l.SetClock(func() time.Time { return now })

	for i := 0; i < 3; i++ {
		if !l.IsAllowed("s") {
			t.Fatalf("call %d rejected, want allowed", i+1)
		}
	}
	if l.IsAllowed("s") {
		t.Fatal("4th call allowed, want rejected")
	}

	// After the window passes, the budget frees up again.
	now = now.Add(61 * time.Second)
	if !l.IsAllowed("s") {
		t.Fatal("call after window elapsed rejected, want allowed")
	}
}

func TestRejectedCallNotRecorded(t *testing.T) {
	l := New(Config{MaxCalls: 1, Window: 60 * time.Second})

	now := time.Now()
	l.SetClock(func() time.Time { return now })

	if !l.IsAllowed("s") {
		t.Fatal("first call rejected")
	}
	// Hammering a throttled session must not extend the lockout.
	for i := 0; i < 5; i++ {
		if l.IsAllowed("s") {
			t.Fatal("throttled call allowed")
		}
	}
	now = now.Add(61 * time.Second)
	if !l.IsAllowed("s") {
		t.Fatal("call after window rejected; rejected calls were recorded")
	}
}

func TestSessionsIndependent(t *testing.T) {
	l := New(Config{MaxCalls: 1, Window: 60 * time.Second})

	if !l.IsAllowed("a") {
		t.Fatal("session a first call rejected")
	}
	if l.IsAllowed("a") {
		t.Fatal("session a second call allowed")
	}
	if !l.IsAllowed("b") {
		t.Fatal("session b must not be affected by session a")
	}
}

func TestConcurrentSessions(t *testing.T) {
	l := New(DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id byte) {
			defer wg.Done()
			session := string([]byte{'s', id})
			for j := 0; j < 20; j++ {
				l.IsAllowed(session)
			}
		}(byte('0' + i))
	}
	wg.Wait()

	// Each session saw 20 calls against a budget of 10.
	if l.IsAllowed("s0") {
		t.Fatal("session s0 should be exhausted")
	}
}
