package production

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// JSONPersister is a stdlib-only file-based persister for Reports, using
// JSON serialization.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ddsv/production: mkdir %s: %w", dir, err)
	}
	return &JSONPersister{dir: dir}, nil
}

// Save writes report to "{modelName}.json" under the persister's directory.
func (p *JSONPersister) Save(modelName string, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("ddsv/production: json marshal: %w", err)
	}

	fn := filepath.Join(p.dir, modelName+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("ddsv/production: write %s: %w", fn, err)
	}
	return nil
}

// Load reads back the report previously saved for modelName.
func (p *JSONPersister) Load(modelName string) (Report, error) {
	fn := filepath.Join(p.dir, modelName+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Report{}, fmt.Errorf("ddsv/production: report %q: %w", modelName, os.ErrNotExist)
		}
		return Report{}, fmt.Errorf("ddsv/production: read %s: %w", fn, err)
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("ddsv/production: json unmarshal: %w", err)
	}
	return report, nil
}

// YAMLPersister is a file-based persister for Reports using YAML
// serialization.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ddsv/production: mkdir %s: %w", dir, err)
	}
	return &YAMLPersister{dir: dir}, nil
}

// Save writes report to "{modelName}.yaml" under the persister's directory.
func (p *YAMLPersister) Save(modelName string, report Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("ddsv/production: yaml marshal: %w", err)
	}

	fn := filepath.Join(p.dir, modelName+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("ddsv/production: write %s: %w", fn, err)
	}
	return nil
}

// Load reads back the report previously saved for modelName.
func (p *YAMLPersister) Load(modelName string) (Report, error) {
	fn := filepath.Join(p.dir, modelName+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Report{}, fmt.Errorf("ddsv/production: report %q: %w", modelName, os.ErrNotExist)
		}
		return Report{}, fmt.Errorf("ddsv/production: read %s: %w", fn, err)
	}

	var report Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("ddsv/production: yaml unmarshal: %w", err)
	}
	return report, nil
}
