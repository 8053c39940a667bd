package main

import (
	"os"

	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"
)

var app = cli.App("anchor-test-runner", "Builds a Solana program, stages compiled artifacts into the local deploy dir and runs the test suite against them. Requires anchor CLI.")

func main() {
	app.Action = runCycle

	app.Command("build", "Builds the program via the external toolchain. Optional step.", onBuild)
	app.Command("stage", "Copies compiled artifacts into the local deploy dir.", onStage)
	app.Command("test", "Runs the test suite against staged artifacts, skipping the toolchain's own build.", onTest)
	app.Command("manifest", "Prints the staged artifact manifest, optionally filtered with a jq expression.", onManifest)

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
