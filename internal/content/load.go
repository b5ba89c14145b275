package content

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Base names of the three content files. Each may be .json, .yaml or .yml.
const (
	ProfileFile  = "profile"
	ResumeFile   = "resume"
	ProjectsFile = "projects"
)

var extensions = []string{".json", ".yaml", ".yml"}

// LoadDir reads profile, resume and projects from dir. It does not validate;
// pass the result to NewStore.
func LoadDir(dir string) (c Content, err error) {
	if err = loadFile(dir, ProfileFile, &c.Profile); err != nil {
		return c, err
	}
	if err = loadFile(dir, ResumeFile, &c.Resume); err != nil {
		return c, err
	}
	if err = loadFile(dir, ProjectsFile, &c.Projects); err != nil {
		return c, err
	}
	return c, nil
}

// Load reads and validates dir in one step.
func Load(dir string) (*Store, error) {
	c, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return NewStore(c)
}

func loadFile(dir, name string, target any) error {
	path, err := findFile(dir, name)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read content file: %s", path)
	}
	if err := decode(path, data, target); err != nil {
		return errors.Wrapf(err, "failed to parse content file: %s", path)
	}
	return nil
}

func findFile(dir, name string) (string, error) {
	for _, ext := range extensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.Errorf("no %s file (.json, .yaml or .yml) in %s", name, dir)
}

func decode(path string, data []byte, target any) error {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(target)
	default:
		return json.Unmarshal(data, target)
	}
}
