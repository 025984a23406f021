package srv

import "context"

// cleanupService runs a function on shutdown and does nothing on start.
type cleanupService struct {
	cleanup func() error
}

func (c *cleanupService) Start(ctx context.Context) error {
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup != nil {
		return c.cleanup()
	}
	return nil
}

func NewCleanup(fn func() error) Service {
	return &cleanupService{cleanup: fn}
}

// stopOnExit cancels the process context when a foreground service returns.
type stopOnExit struct {
	Service
	stop func()
}

func (s *stopOnExit) Start(ctx context.Context) error {
	defer s.stop()
	return s.Service.Start(ctx)
}

func StopOnExit(svc Service, stop func()) Service {
	return &stopOnExit{Service: svc, stop: stop}
}
