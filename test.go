package main

import (
	"context"
	"os"

	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"

	"github.com/solkit/anchorman/runner"
)

func onTest(cmd *cli.Cmd) {
	cmd.Action = func() {
		r, err := runner.New(
			// only options applicable to test
			runner.OptionTestDir(*testDir),
			runner.OptionAnchorPath(*anchorPath),
		)
		if err != nil {
			log.WithError(err).Fatalln("failed to init runner")
		}

		if err := r.Test(context.Background()); err != nil {
			os.Exit(1)
		}
	}
}
