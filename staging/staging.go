// Package staging copies compiled program artifacts into a local deploy
// directory before tests run against them.
package staging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// EnsureDir creates dir and any missing parents. Existing dirs are fine.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		err = errors.Wrap(err, "failed to prepare deploy dir")
		return err
	}

	return nil
}

// CopyTree recursively copies the contents of srcDir into dstDir,
// overwriting conflicting paths and preserving directory structure and file
// modes. Returns the relative paths of all files copied. Any filesystem
// error aborts the copy immediately.
func CopyTree(srcDir, dstDir string) ([]string, error) {
	srcInfo, err := os.Stat(srcDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat artifacts dir")
	} else if !srcInfo.IsDir() {
		return nil, errors.Errorf("artifacts path is not a directory: %s", srcDir)
	}

	var staged []string

	err = filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		} else if path == srcDir {
			return nil
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		dstPath := filepath.Join(dstDir, relPath)

		if info.IsDir() {
			if err := os.MkdirAll(dstPath, info.Mode().Perm()); err != nil {
				return err
			}

			return nil
		}

		if err := copyFile(path, dstPath, info.Mode().Perm()); err != nil {
			return err
		}

		staged = append(staged, relPath)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy artifacts tree")
	}

	return staged, nil
}

// Verify checks that every file under srcDir exists byte-identical under
// dstDir. All discrepancies are collected before returning.
func Verify(srcDir, dstDir string) error {
	var verifyErr error

	err := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		} else if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		srcContents, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		dstContents, err := os.ReadFile(filepath.Join(dstDir, relPath))
		if err != nil {
			if os.IsNotExist(err) {
				verifyErr = multierror.Append(verifyErr, errors.Errorf("artifact missing from deploy dir: %s", relPath))
				return nil
			}

			return err
		}

		if !bytes.Equal(srcContents, dstContents) {
			verifyErr = multierror.Append(verifyErr, errors.Errorf("staged artifact differs from source: %s", relPath))
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to verify staged artifacts")
	}

	return verifyErr
}

func copyFile(srcPath, dstPath string, mode os.FileMode) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}

	return dst.Close()
}
