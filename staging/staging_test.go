package staging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureDirCreatesMissing(t *testing.T) {
	assert := assert.New(t)

	dir := filepath.Join(t.TempDir(), "target", "deploy")
	assert.NoError(EnsureDir(dir))

	info, err := os.Stat(dir)
	assert.NoError(err)
	assert.True(info.IsDir())

	// second call on an existing dir is a no-op
	assert.NoError(EnsureDir(dir))
}

func TestCopyTreeStagesEverything(t *testing.T) {
	assert := assert.New(t)

	srcDir := t.TempDir()
	prepareTree(srcDir, map[string]string{
		"clearing_house.so":           "\x7fELF-program",
		"clearing_house-keypair.json": `[1,2,3]`,
		"idl/clearing_house.json":     `{"name":"clearing_house"}`,
	})

	dstDir := filepath.Join(t.TempDir(), "target", "deploy")
	assert.NoError(EnsureDir(dstDir))

	staged, err := CopyTree(srcDir, dstDir)
	if !assert.NoError(err) {
		t.FailNow()
	}

	assert.Len(staged, 3)
	assert.NoError(Verify(srcDir, dstDir))
}

func TestCopyTreeOverwritesConflicts(t *testing.T) {
	assert := assert.New(t)

	srcDir := t.TempDir()
	prepareTree(srcDir, map[string]string{
		"clearing_house.so": "new program bytes",
	})

	dstDir := t.TempDir()
	prepareTree(dstDir, map[string]string{
		"clearing_house.so": "stale program bytes",
	})

	_, err := CopyTree(srcDir, dstDir)
	if !assert.NoError(err) {
		t.FailNow()
	}

	contents, err := os.ReadFile(filepath.Join(dstDir, "clearing_house.so"))
	assert.NoError(err)
	assert.Equal("new program bytes", string(contents))
}

func TestCopyTreeMissingSource(t *testing.T) {
	assert := assert.New(t)

	_, err := CopyTree(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	assert.Error(err)
}

func TestVerifyCollectsAllDiscrepancies(t *testing.T) {
	assert := assert.New(t)

	srcDir := t.TempDir()
	prepareTree(srcDir, map[string]string{
		"a.so": "aaa",
		"b.so": "bbb",
		"c.so": "ccc",
	})

	dstDir := t.TempDir()
	prepareTree(dstDir, map[string]string{
		"a.so": "aaa",
		"b.so": "not bbb",
	})

	err := Verify(srcDir, dstDir)
	if !assert.Error(err) {
		t.FailNow()
	}

	assert.Contains(err.Error(), "b.so")
	assert.Contains(err.Error(), "c.so")
	assert.NotContains(err.Error(), "a.so")
}

func prepareTree(dir string, files map[string]string) {
	for relPath, contents := range files {
		path := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			panic(err)
		}

		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			panic(err)
		}
	}
}
