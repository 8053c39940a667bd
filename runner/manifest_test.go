package runner

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

func prepareManifest(t *testing.T) (Manifest, string) {
	t.Helper()

	deployDir := t.TempDir()
	err := os.WriteFile(filepath.Join(deployDir, "clearing_house.so"), []byte("program bytes"), 0644)
	if err != nil {
		panic(err)
	}

	m := NewManifest(deployDir)
	if err := m.Store([]string{"clearing_house.so"}); err != nil {
		panic(err)
	}

	return m, deployDir
}

func TestManifestStoreAndLoad(t *testing.T) {
	assert := assert.New(t)

	m, _ := prepareManifest(t)

	file, err := m.Load()
	if !assert.NoError(err) {
		t.FailNow()
	}

	assert.False(file.Timestamp.IsZero())
	assert.Nil(file.LastRun)

	if !assert.Len(file.Artifacts, 1) {
		t.FailNow()
	}

	entry := file.Artifacts[0]
	assert.Equal("clearing_house.so", entry.Path)
	assert.Equal(int64(len("program bytes")), entry.Size)

	expectedHash := hex.EncodeToString(crypto.Keccak256([]byte("program bytes")))
	assert.Equal(expectedHash, entry.CodeHash)
}

func TestManifestLoadMissing(t *testing.T) {
	assert := assert.New(t)

	m := NewManifest(t.TempDir())
	_, err := m.Load()
	assert.Equal(ErrNoManifest, err)
}

func TestManifestStampRun(t *testing.T) {
	assert := assert.New(t)

	m, _ := prepareManifest(t)

	err := m.StampRun(RunStamp{
		SkipBuild:   true,
		TestsPassed: false,
	})
	if !assert.NoError(err) {
		t.FailNow()
	}

	file, err := m.Load()
	if !assert.NoError(err) {
		t.FailNow()
	}

	// artifact entries survive the in-place patch
	assert.Len(file.Artifacts, 1)

	if assert.NotNil(file.LastRun) {
		assert.True(file.LastRun.SkipBuild)
		assert.False(file.LastRun.TestsPassed)
		assert.False(file.LastRun.Timestamp.IsZero())
	}
}

func TestManifestQuery(t *testing.T) {
	assert := assert.New(t)

	m, _ := prepareManifest(t)

	results, err := m.Query(".artifacts[].path")
	if !assert.NoError(err) {
		t.FailNow()
	}

	assert.Equal([]interface{}{"clearing_house.so"}, results)
}

func TestManifestQueryBadExpression(t *testing.T) {
	assert := assert.New(t)

	m, _ := prepareManifest(t)

	_, err := m.Query(".artifacts[")
	assert.Error(err)
}
