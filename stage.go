package main

import (
	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"

	"github.com/solkit/anchorman/runner"
	"github.com/solkit/anchorman/staging"
)

// onStage works with the staging layer directly, no toolchain lookup is
// needed for a copy-only invocation.
func onStage(cmd *cli.Cmd) {
	cmd.Action = func() {
		if err := staging.EnsureDir(*deployDir); err != nil {
			log.Fatalln(err)
		}

		staged, err := staging.CopyTree(*artifactsDir, *deployDir)
		if err != nil {
			log.Fatalln(err)
		}

		log.Infoln("staged", len(staged), "artifacts into", *deployDir)

		if !*noManifest {
			if err := runner.NewManifest(*deployDir).Store(staged); err != nil {
				log.WithError(err).Warningln("failed to write staged artifact manifest")
			}
		}
	}
}
