package srv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingService struct {
	name    string
	mu      *sync.Mutex
	order   *[]string
	started chan struct{}
	ctxErr  error
}

func (r *recordingService) Start(ctx context.Context) error {
	close(r.started)
	return nil
}

func (r *recordingService) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.order = append(*r.order, r.name)
	r.ctxErr = ctx.Err()
	return nil
}

func TestServices_StartAndShutdownOrder(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	a := &recordingService{name: "a", mu: &mu, order: &order, started: make(chan struct{})}
	b := &recordingService{name: "b", mu: &mu, order: &order, started: make(chan struct{})}
	services := []Service{a, b}

	ctx, cancel := context.WithCancel(context.Background())
	StartServices(ctx, services)

	for _, s := range []*recordingService{a, b} {
		select {
		case <-s.started:
		case <-time.After(time.Second):
			t.Fatalf("service %s did not start", s.name)
		}
	}

	cancel()
	ShutdownServices(ctx, services)

	assert.Equal(t, []string{"b", "a"}, order)
	assert.NoError(t, a.ctxErr, "shutdown context must not be cancelled")
}

func TestNewCleanup(t *testing.T) {
	called := false
	svc := NewCleanup(func() error {
		called = true
		return errors.New("closed")
	})

	assert.NoError(t, svc.Start(context.Background()))
	assert.EqualError(t, svc.Shutdown(context.Background()), "closed")
	assert.True(t, called)

	assert.NoError(t, NewCleanup(nil).Shutdown(context.Background()))
}

func TestStopOnExit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := StopOnExit(NewCleanup(nil), cancel)
	assert.NoError(t, svc.Start(ctx))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.NoError(t, svc.Shutdown(context.Background()))
}
