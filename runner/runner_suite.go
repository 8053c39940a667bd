package runner

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/xlab/suplog"
)

var (
	ErrTestsFailed = errors.New("test suite failed")
)

// Test invokes the external test command against staged artifacts. The
// toolchain's own build phase is always skipped, since the cycle either
// already built the program or was told not to.
func (r *runner) Test(ctx context.Context) error {
	if err := r.toolchain.Test(ctx, r.options.TestDir, true); err != nil {
		log.WithError(err).Errorln("test suite failed")
		return ErrTestsFailed
	}

	return nil
}
