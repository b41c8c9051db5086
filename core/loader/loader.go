// Package loader - Package record input
// Reads package specification files in JSON or YAML. Any structured file
// carrying the package fields is acceptable; the format is chosen by
// extension.
package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"package-audit/core/types"
	"package-audit/internal/errors"
	"package-audit/internal/logging"
)

// File is the on-disk shape of a package data file
type File struct {
	Packages []*types.Package `json:"packages"`
}

// Load reads a package data file, dispatching on extension
func Load(path string) ([]*types.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "failed to read package file", err)
	}

	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		// Decimal amounts only unmarshal from JSON, so YAML documents are
		// normalized through JSON rather than decoded directly.
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(errors.TypeParsing, "failed to parse YAML package file", err)
		}
		normalized, err := json.Marshal(raw)
		if err != nil {
			return nil, errors.Wrap(errors.TypeParsing, "failed to normalize YAML package file", err)
		}
		if err := json.Unmarshal(normalized, &file); err != nil {
			return nil, errors.Wrap(errors.TypeParsing, "failed to decode YAML package file", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(errors.TypeParsing, "failed to parse JSON package file", err)
		}
	default:
		return nil, errors.Newf(errors.TypeInput, "unsupported package file format: %s", filepath.Ext(path))
	}

	if len(file.Packages) == 0 {
		return nil, errors.Input("package file contains no packages")
	}

	for i, pkg := range file.Packages {
		if pkg.ID == "" {
			return nil, errors.Newf(errors.TypeInput, "package at index %d has no id", i)
		}
	}

	logging.Debug("loaded packages",
		zap.String("path", path),
		zap.Int("count", len(file.Packages)))

	return file.Packages, nil
}
