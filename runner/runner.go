package runner

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/xlab/suplog"

	"github.com/solkit/anchorman/anchor"
)

var (
	ErrToolchainNotFound = errors.New("unable to locate anchor toolchain")
)

type option func(o *options) error

func New(opts ...option) (Runner, error) {
	r := &runner{
		options: defaultOptions(),
	}

	for _, o := range opts {
		if err := o(r.options); err != nil {
			err = errors.Wrap(err, "error in runner option")
			return nil, err
		}
	}

	if r.options.Toolchain != nil {
		// injected toolchain, e.g. a fake in tests
		r.toolchain = r.options.Toolchain
		return r, nil
	}

	if r.options.AnchorPathSet {
		tc, err := anchor.NewAnchorCLI(r.options.AnchorPath)
		if err != nil {
			log.WithField("path", r.options.AnchorPath).WithError(err).Errorln("failed to find anchor toolchain at path")
			return nil, ErrToolchainNotFound
		}

		r.toolchain = tc
	} else {
		anchorPathFound, err := anchor.WhichAnchor()
		if err != nil {
			log.WithError(err).Errorln("failed to find anchor toolchain")
			return nil, ErrToolchainNotFound
		}

		tc, err := anchor.NewAnchorCLI(anchorPathFound)
		if err != nil {
			log.WithField("path", anchorPathFound).WithError(err).Errorln("failed to find anchor toolchain at path")
			return nil, ErrToolchainNotFound
		}

		r.toolchain = tc
	}

	return r, nil
}

type Runner interface {
	// Run executes the full cycle: conditional build, staging, test.
	Run(ctx context.Context) error

	Build(ctx context.Context) error

	Stage(ctx context.Context) (staged []string, err error)

	Test(ctx context.Context) error
}

type runner struct {
	options   *options
	toolchain anchor.Toolchain
}

type options struct {
	SkipBuild  bool
	FailFast   bool
	NoManifest bool

	BuildDir     string
	TestDir      string
	ArtifactsDir string
	DeployDir    string

	AnchorPath    string
	AnchorPathSet bool
	Toolchain     anchor.Toolchain
}

func defaultOptions() *options {
	return &options{
		SkipBuild:  false,
		FailFast:   false,
		NoManifest: false,

		BuildDir:     "..",
		TestDir:      ".",
		ArtifactsDir: "../target/deploy",
		DeployDir:    "target/deploy",
	}
}

func OptionSkipBuild(skipBuild bool) option {
	return func(o *options) error {
		o.SkipBuild = skipBuild
		return nil
	}
}

func OptionFailFast(failFast bool) option {
	return func(o *options) error {
		o.FailFast = failFast
		return nil
	}
}

func OptionNoManifest(noManifest bool) option {
	return func(o *options) error {
		o.NoManifest = noManifest
		return nil
	}
}

func OptionBuildDir(dir string) option {
	return func(o *options) error {
		if len(dir) == 0 {
			return errors.New("empty build dir provided")
		}

		o.BuildDir = dir
		return nil
	}
}

func OptionTestDir(dir string) option {
	return func(o *options) error {
		if len(dir) == 0 {
			return errors.New("empty test dir provided")
		}

		o.TestDir = dir
		return nil
	}
}

func OptionArtifactsDir(dir string) option {
	return func(o *options) error {
		if len(dir) == 0 {
			return errors.New("empty artifacts dir provided")
		}

		o.ArtifactsDir = dir
		return nil
	}
}

func OptionDeployDir(dir string) option {
	return func(o *options) error {
		if len(dir) == 0 {
			return errors.New("empty deploy dir provided")
		}

		o.DeployDir = dir
		return nil
	}
}

func OptionAnchorPath(path string) option {
	return func(o *options) error {
		if len(path) == 0 {
			o.AnchorPathSet = false
		} else {
			o.AnchorPathSet = true
		}

		o.AnchorPath = path
		return nil
	}
}

func OptionToolchain(tc anchor.Toolchain) option {
	return func(o *options) error {
		o.Toolchain = tc
		return nil
	}
}
