package mock

import (
	"context"

	"github.com/fwojciec/linkex"
)

var _ linkex.RunService = (*RunService)(nil)

// RunService is a mock implementation of linkex.RunService.
type RunService struct {
	CreateRunFn     func(ctx context.Context, run *linkex.Run) error
	FindLatestRunFn func(ctx context.Context, sourceURL string) (*linkex.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *linkex.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindLatestRun(ctx context.Context, sourceURL string) (*linkex.Run, error) {
	return s.FindLatestRunFn(ctx, sourceURL)
}
