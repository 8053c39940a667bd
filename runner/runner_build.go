package runner

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrBuildFailed = errors.New("failed to build program")
)

func (r *runner) Build(ctx context.Context) error {
	if err := r.toolchain.Build(ctx, r.options.BuildDir); err != nil {
		return ErrBuildFailed
	}

	return nil
}
