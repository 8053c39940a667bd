package main

import (
	"context"

	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"

	"github.com/solkit/anchorman/runner"
)

func onBuild(cmd *cli.Cmd) {
	cmd.Action = func() {
		r, err := runner.New(
			// only options applicable to build
			runner.OptionBuildDir(*buildDir),
			runner.OptionAnchorPath(*anchorPath),
		)
		if err != nil {
			log.WithError(err).Fatalln("failed to init runner")
		}

		if err := r.Build(context.Background()); err != nil {
			log.Fatalln(err)
		}
	}
}
