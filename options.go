package main

import (
	cli "github.com/jawher/mow.cli"
)

var (
	skipBuild = app.Bool(cli.BoolOpt{
		Name:   "skip-build",
		Desc:   "Skip the build step and run against existing artifacts.",
		EnvVar: "RUNNER_SKIP_BUILD",
		Value:  false,
	})

	failFast = app.Bool(cli.BoolOpt{
		Name:   "fail-fast",
		Desc:   "Abort the cycle immediately when the build step fails.",
		EnvVar: "RUNNER_FAIL_FAST",
		Value:  false,
	})

	buildDir = app.String(cli.StringOpt{
		Name:   "B build-dir",
		Desc:   "Set the directory the build command runs in.",
		EnvVar: "RUNNER_BUILD_DIR",
		Value:  "..",
	})

	testDir = app.String(cli.StringOpt{
		Name:   "T test-dir",
		Desc:   "Set the directory the test command runs in.",
		EnvVar: "RUNNER_TEST_DIR",
		Value:  ".",
	})

	artifactsDir = app.String(cli.StringOpt{
		Name:   "S artifacts-dir",
		Desc:   "Set the workspace build-output directory to stage from.",
		EnvVar: "RUNNER_ARTIFACTS_DIR",
		Value:  "../target/deploy",
	})

	deployDir = app.String(cli.StringOpt{
		Name:   "D deploy-dir",
		Desc:   "Set the local deploy directory to stage into.",
		EnvVar: "RUNNER_DEPLOY_DIR",
		Value:  "target/deploy",
	})

	anchorPathSet bool
	anchorPath    = app.String(cli.StringOpt{
		Name:      "anchor-path",
		Desc:      "Set path to anchor executable. Found using 'which' otherwise",
		EnvVar:    "RUNNER_ANCHOR_PATH",
		Value:     "",
		SetByUser: &anchorPathSet,
	})

	noManifest = app.Bool(cli.BoolOpt{
		Name:   "no-manifest",
		Desc:   "Disables writing the staged artifact manifest.",
		EnvVar: "RUNNER_DISABLE_MANIFEST",
		Value:  false,
	})
)
