package embedding

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type staticBackend struct {
	vec []float32
}

func (s staticBackend) Available() bool { return true }

func (s staticBackend) Embed(context.Context, string) ([]float32, error) {
	return s.vec, nil
}

func TestLazy_LoadsOnce(t *testing.T) {
	calls := 0
	l := NewLazy(func(context.Context) (Backend, error) {
		calls++
		return staticBackend{vec: []float32{1}}, nil
	}, nil)

	for i := 0; i < 3; i++ {
		if !l.Available() {
			t.Fatalf("expected backend available")
		}
	}
	if _, err := l.Embed(context.Background(), "text"); err != nil {
		t.Fatalf("unexpected embed error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("load should run exactly once, ran %d times", calls)
	}
}

func TestLazy_FailedLoadStaysUnavailable(t *testing.T) {
	calls := 0
	l := NewLazy(func(context.Context) (Backend, error) {
		calls++
		return nil, errors.New("no model")
	}, nil)

	if l.Available() {
		t.Fatalf("failed load must report unavailable")
	}
	// No retry on subsequent calls: a restart is required to re-attempt.
	if l.Available() {
		t.Fatalf("failed load must stay unavailable")
	}
	if calls != 1 {
		t.Fatalf("failed load should not be retried, ran %d times", calls)
	}

	if _, err := l.Embed(context.Background(), "text"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestLazy_NilLoaderUnavailable(t *testing.T) {
	l := NewLazy(nil, nil)
	if l.Available() {
		t.Fatalf("nil loader must be unavailable")
	}
	if _, err := l.Embed(context.Background(), "text"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestLazy_ConcurrentFirstUse(t *testing.T) {
	calls := 0
	l := NewLazy(func(context.Context) (Backend, error) {
		calls++
		return staticBackend{vec: []float32{1, 2}}, nil
	}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Available()
			_, _ = l.Embed(context.Background(), "text")
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Fatalf("concurrent first use must load once, ran %d times", calls)
	}
}
