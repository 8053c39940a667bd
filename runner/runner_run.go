package runner

import (
	"context"

	log "github.com/xlab/suplog"
)

// Run executes the full build/test cycle: conditional build, artifact
// staging, then the test suite. Only the test step's failure aborts the
// cycle by default; a failed build logs a warning and the cycle continues
// against whatever artifacts are already present, unless FailFast is set.
func (r *runner) Run(ctx context.Context) error {
	if r.options.SkipBuild {
		log.Infoln("skipping build step")
	} else if err := r.Build(ctx); err != nil {
		if r.options.FailFast {
			return err
		}

		log.WithError(err).Warningln("build step failed, continuing with existing artifacts")
	}

	if _, err := r.Stage(ctx); err != nil {
		return err
	}

	err := r.Test(ctx)
	if !r.options.NoManifest {
		r.stampLastRun(err == nil)
	}

	return err
}

func (r *runner) stampLastRun(testsPassed bool) {
	err := NewManifest(r.options.DeployDir).StampRun(RunStamp{
		SkipBuild:   r.options.SkipBuild,
		TestsPassed: testsPassed,
	})
	if err != nil {
		log.WithField("deploy_dir", r.options.DeployDir).WithError(err).Warningln("failed to stamp run outcome into manifest")
	}
}
