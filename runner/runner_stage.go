package runner

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/xlab/suplog"

	"github.com/solkit/anchorman/staging"
)

var (
	ErrStagingFailed = errors.New("failed to stage program artifacts")
)

func (r *runner) Stage(_ context.Context) ([]string, error) {
	if err := staging.EnsureDir(r.options.DeployDir); err != nil {
		log.WithField("deploy_dir", r.options.DeployDir).WithError(err).Errorln("failed to prepare deploy dir")
		return nil, ErrStagingFailed
	}

	ts := time.Now()

	staged, err := staging.CopyTree(r.options.ArtifactsDir, r.options.DeployDir)
	if err != nil {
		log.WithFields(log.Fields{
			"artifacts_dir": r.options.ArtifactsDir,
			"deploy_dir":    r.options.DeployDir,
		}).WithError(err).Errorln("failed to copy program artifacts")

		return nil, ErrStagingFailed
	}

	log.Debugln("staged", len(staged), "artifacts in", time.Since(ts))

	if !r.options.NoManifest {
		manifestLog := log.WithField("deploy_dir", r.options.DeployDir)
		if err := NewManifest(r.options.DeployDir).Store(staged); err != nil {
			manifestLog.WithError(err).Warningln("failed to write staged artifact manifest")
		}
	}

	return staged, nil
}
