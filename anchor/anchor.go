// Package anchor provides a convenient interface for calling the 'anchor' toolchain CLI from Go.
package anchor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	log "github.com/xlab/suplog"
)

// Toolchain abstracts the external build/test tool behind exit-status
// semantics, so the run pipeline can be exercised with fakes.
type Toolchain interface {
	Build(ctx context.Context, dir string) error
	Test(ctx context.Context, dir string, skipBuild bool) error
}

func NewAnchorCLI(anchorPath string) (Toolchain, error) {
	a := &anchorCLI{
		anchorPath: anchorPath,
	}
	if err := a.verify(); err != nil {
		return nil, err
	}
	return a, nil
}

type anchorCLI struct {
	anchorPath string
}

func (a *anchorCLI) verify() error {
	out, err := exec.Command(a.anchorPath, "--version").CombinedOutput()
	if err != nil {
		err = fmt.Errorf("anchor verify: failed to exec anchor: %v", err)
		return err
	}
	hasPrefix := strings.HasPrefix(string(out), "anchor-cli")
	if !hasPrefix {
		err := fmt.Errorf("anchor verify: executable output was unexpected (output: %s)", out)
		return err
	}
	return nil
}

func (a *anchorCLI) Build(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, a.anchorPath, "build")
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Infoln("Running anchor build:", cmd.String())

	if err := cmd.Run(); err != nil {
		err = fmt.Errorf("anchor: failed to build program: %v", err)
		return err
	}

	return nil
}

func (a *anchorCLI) Test(ctx context.Context, dir string, skipBuild bool) error {
	args := []string{"test"}
	if skipBuild {
		args = append(args, "--skip-build")
	}

	cmd := exec.CommandContext(ctx, a.anchorPath, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Infoln("Running anchor test:", cmd.String())

	if err := cmd.Run(); err != nil {
		err = fmt.Errorf("anchor: test suite exited with error: %v", err)
		return err
	}

	return nil
}

func WhichAnchor() (string, error) {
	out, err := exec.Command("which", "anchor").Output()
	if err != nil {
		return "", errors.New("anchor executable file not found in $PATH")
	}
	return string(bytes.TrimSpace(out)), nil
}
