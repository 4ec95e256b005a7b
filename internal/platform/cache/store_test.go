package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute, clock.NewMock())
	var calls atomic.Int32
	release := make(chan struct{})

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "value", nil
	}

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			v, err := store.GetOrLoad(context.Background(), "team:KC", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_EntriesExpireWithClock(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	store := NewStore(time.Minute, clk)
	ctx := context.Background()

	store.Set(ctx, "team:KC", "Kansas City Chiefs")
	if _, ok := store.Get(ctx, "team:KC"); !ok {
		t.Fatalf("expected fresh entry to be cached")
	}

	clk.Add(61 * time.Second)
	if _, ok := store.Get(ctx, "team:KC"); ok {
		t.Fatalf("expected entry to expire after ttl")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0, clock.NewMock())
	ctx := context.Background()
	store.Set(ctx, "team:KC", 1)
	store.Set(ctx, "team:BUF", 2)
	store.Set(ctx, "player:1", 3)

	store.DeletePrefix(ctx, "team:")

	if _, ok := store.Get(ctx, "team:KC"); ok {
		t.Fatalf("expected team:KC to be removed")
	}
	if _, ok := store.Get(ctx, "player:1"); !ok {
		t.Fatalf("expected player:1 to survive prefix delete")
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute, clock.NewMock())
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return nil, errUnexpectedValue
	}

	for i := 0; i < 2; i++ {
		if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, errUnexpectedValue) {
			t.Fatalf("expected loader error, got %v", err)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
