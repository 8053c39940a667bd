package main

import (
	"context"
	"os"

	log "github.com/xlab/suplog"

	"github.com/solkit/anchorman/runner"
)

func runCycle() {
	r, err := runner.New(
		runner.OptionSkipBuild(*skipBuild),
		runner.OptionFailFast(*failFast),
		runner.OptionNoManifest(*noManifest),
		runner.OptionBuildDir(*buildDir),
		runner.OptionTestDir(*testDir),
		runner.OptionArtifactsDir(*artifactsDir),
		runner.OptionDeployDir(*deployDir),
		runner.OptionAnchorPath(*anchorPath),
	)
	if err != nil {
		log.WithError(err).Fatalln("failed to init runner")
	}

	if err := r.Run(context.Background()); err != nil {
		if err == runner.ErrTestsFailed {
			os.Exit(1)
		}

		log.Fatalln(err)
	}
}
