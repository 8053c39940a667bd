package runner

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/itchyny/gojq"
	"github.com/pkg/errors"
	"github.com/tidwall/sjson"
)

var ErrNoManifest = errors.New("no staged artifact manifest")

const manifestFileName = "staged_artifacts.json"

// Manifest records what was staged into the deploy dir and the outcome of
// the last run against it.
type Manifest interface {
	Store(staged []string) error
	Load() (*ManifestFile, error)
	StampRun(stamp RunStamp) error
	Query(expr string) ([]interface{}, error)
}

type ManifestFile struct {
	Timestamp time.Time       `json:"timestamp"`
	Artifacts []ManifestEntry `json:"artifacts"`
	LastRun   *RunStamp       `json:"lastRun,omitempty"`
}

type ManifestEntry struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	CodeHash string `json:"codeHash"`
}

type RunStamp struct {
	Timestamp   time.Time `json:"timestamp"`
	SkipBuild   bool      `json:"skipBuild"`
	TestsPassed bool      `json:"testsPassed"`
}

func NewManifest(deployDir string) Manifest {
	return &manifest{
		deployDir: deployDir,
	}
}

type manifest struct {
	deployDir string
}

func (m *manifest) Store(staged []string) error {
	entries := make([]ManifestEntry, 0, len(staged))
	for _, relPath := range staged {
		path := filepath.Join(m.deployDir, relPath)

		info, err := os.Stat(path)
		if err != nil {
			err = errors.Wrap(err, "failed to stat staged artifact")
			return err
		}

		hash, err := sha3file(path)
		if err != nil {
			err = errors.Wrap(err, "failed to hash staged artifact")
			return err
		}

		entries = append(entries, ManifestEntry{
			Path:     relPath,
			Size:     info.Size(),
			CodeHash: hash,
		})
	}

	file := &ManifestFile{
		Timestamp: time.Now().UTC(),
		Artifacts: entries,
	}

	contents, _ := json.MarshalIndent(file, "", "\t")

	err := os.WriteFile(m.path(), contents, 0644)
	if err != nil {
		err = errors.Wrap(err, "failed to write manifest file")
		return err
	}

	return nil
}

func (m *manifest) Load() (*ManifestFile, error) {
	contents, err := m.read()
	if err != nil {
		return nil, err
	}

	var file ManifestFile
	if err := json.Unmarshal(contents, &file); err != nil {
		err = errors.Wrap(err, "failed to unmarshal manifest file")
		return nil, err
	}

	return &file, nil
}

// StampRun patches the last run outcome into the manifest in place, leaving
// the artifact entries untouched.
func (m *manifest) StampRun(stamp RunStamp) error {
	contents, err := m.read()
	if err != nil {
		return err
	}

	if stamp.Timestamp.IsZero() {
		stamp.Timestamp = time.Now().UTC()
	}

	contents, err = sjson.SetBytes(contents, "lastRun", stamp)
	if err != nil {
		err = errors.Wrap(err, "failed to patch manifest with run outcome")
		return err
	}

	err = os.WriteFile(m.path(), contents, 0644)
	if err != nil {
		err = errors.Wrap(err, "failed to write manifest file")
		return err
	}

	return nil
}

// Query evaluates a jq expression against the manifest and collects the
// resulting values.
func (m *manifest) Query(expr string) ([]interface{}, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		err = errors.Wrap(err, "failed to parse jq expression")
		return nil, err
	}

	contents, err := m.read()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(contents, &doc); err != nil {
		err = errors.Wrap(err, "failed to unmarshal manifest file")
		return nil, err
	}

	var results []interface{}

	iter := query.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := v.(error); isErr {
			return nil, errors.Wrap(err, "jq expression failed on manifest")
		}

		results = append(results, v)
	}

	return results, nil
}

func (m *manifest) path() string {
	return filepath.Join(m.deployDir, manifestFileName)
}

func (m *manifest) read() ([]byte, error) {
	contents, err := os.ReadFile(m.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoManifest
		}

		err = errors.Wrap(err, "failed to read manifest file")
		return nil, err
	}

	return contents, nil
}

func sha3file(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(err, "failed to read artifact file")
		return "", err
	}

	hashBytes := crypto.Keccak256(contents)
	return hex.EncodeToString(hashBytes), nil
}
