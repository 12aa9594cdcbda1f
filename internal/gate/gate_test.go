package gate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedsReVerification(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no timestamp", func(t *testing.T) {
		assert.True(t, Registration{}.NeedsReVerification(base))
		assert.True(t, Registration{Email: "a@b.com"}.NeedsReVerification(base))
	})

	t.Run("fresh registration", func(t *testing.T) {
		reg := NewRegistration("a@b.com", base)
		assert.False(t, reg.NeedsReVerification(base))
		assert.False(t, reg.NeedsReVerification(base.Add(time.Minute)))
	})

	t.Run("seven day boundary is exclusive", func(t *testing.T) {
		reg := NewRegistration("a@b.com", base)
		assert.False(t, reg.NeedsReVerification(base.Add(ReVerifyAfter-time.Millisecond)))
		assert.False(t, reg.NeedsReVerification(base.Add(ReVerifyAfter)))
		assert.True(t, reg.NeedsReVerification(base.Add(ReVerifyAfter+time.Millisecond)))
	})
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusUnauthorized, Registration{}.Evaluate(now))
	// A timestamp without an email is not enough.
	assert.Equal(t, StatusUnauthorized, Registration{RegisteredAt: now}.Evaluate(now))

	reg := NewRegistration("a@b.com", now)
	assert.Equal(t, StatusAuthorized, reg.Evaluate(now))
	assert.Equal(t, StatusUnauthorized, reg.Evaluate(now.Add(ReVerifyAfter+time.Second)))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "checking", StatusChecking.String())
	assert.Equal(t, "authorized", StatusAuthorized.String())
	assert.Equal(t, "unauthorized", StatusUnauthorized.String())
}

func TestRegistryObserveAndGet(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Hour)
	r.SetClock(func() time.Time { return now })

	assert.Equal(t, StatusChecking, r.Get("sess-1"))

	r.Observe("sess-1", Registration{})
	assert.Equal(t, StatusUnauthorized, r.Get("sess-1"))

	r.Observe("sess-1", NewRegistration("a@b.com", now))
	assert.Equal(t, StatusAuthorized, r.Get("sess-1"))

	// Clock advancing past the window expires the entry on read.
	now = now.Add(ReVerifyAfter + time.Millisecond)
	assert.Equal(t, StatusUnauthorized, r.Get("sess-1"))
}

func TestRegistrySubscribeSeesTransition(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Hour)
	r.SetClock(func() time.Time { return now })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := r.Subscribe(ctx, "sess-1")
	require.Equal(t, StatusUnauthorized, <-ch)

	// Another tab on the same session verifies.
	r.Observe("sess-1", NewRegistration("a@b.com", now))

	select {
	case got := <-ch:
		assert.Equal(t, StatusAuthorized, got)
	case <-time.After(time.Second):
		t.Fatal("expected authorized transition")
	}

	// Re-observing the same state publishes nothing.
	r.Observe("sess-1", NewRegistration("a@b.com", now))
	select {
	case got := <-ch:
		t.Fatalf("unexpected publish %v", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLateSubscriberDoesNotHideExpiryFromEarlierTabs(t *testing.T) {
	var (
		clockMu sync.Mutex
		now     = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	)

	r := NewRegistry(5 * time.Millisecond)
	r.SetClock(func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return now
	})
	r.Start()
	defer r.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.Observe("sess-1", NewRegistration("a@b.com", now))
	first := r.Subscribe(ctx, "sess-1")
	require.Equal(t, StatusAuthorized, <-first)

	// The window lapses, and a second tab attaches before the next poll
	// tick sees the change.
	clockMu.Lock()
	now = now.Add(ReVerifyAfter + time.Minute)
	clockMu.Unlock()

	second := r.Subscribe(ctx, "sess-1")
	require.Equal(t, StatusUnauthorized, <-second)

	// The first tab must still learn about the expiry.
	select {
	case got := <-first:
		assert.Equal(t, StatusUnauthorized, got)
	case <-time.After(time.Second):
		t.Fatal("first subscriber never saw the expiry transition")
	}
}

func TestRegistryPollFlipsExpiredSubscriber(t *testing.T) {
	var (
		clockMu sync.Mutex
		now     = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	)

	r := NewRegistry(5 * time.Millisecond)
	r.SetClock(func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return now
	})
	r.Start()
	defer r.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.Observe("sess-1", NewRegistration("a@b.com", now))
	ch := r.Subscribe(ctx, "sess-1")
	require.Equal(t, StatusAuthorized, <-ch)

	// Advance the clock past the window; the poll loop must notice.
	clockMu.Lock()
	now = now.Add(ReVerifyAfter + time.Minute)
	clockMu.Unlock()

	select {
	case got := <-ch:
		assert.Equal(t, StatusUnauthorized, got)
	case <-time.After(time.Second):
		t.Fatal("poll loop did not publish expiry")
	}
}
