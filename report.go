package ddsv

import (
	"time"

	"github.com/comalice/ddsv/internal/production"
)

// Report is a persisted summary of one Compose run.
type Report = production.Report

// JSONPersister persists Reports as JSON files.
type JSONPersister = production.JSONPersister

// YAMLPersister persists Reports as YAML files.
type YAMLPersister = production.YAMLPersister

// NewReport summarizes an explored LTS under the given model name.
func NewReport[T Shared](modelName string, lts *LTS[T], generatedAt time.Time) Report {
	return production.NewReport(modelName, lts, generatedAt)
}

// NewJSONPersister creates a JSONPersister rooted at dir.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	return production.NewJSONPersister(dir)
}

// NewYAMLPersister creates a YAMLPersister rooted at dir.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	return production.NewYAMLPersister(dir)
}
