package mdffi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// configNames are the file names DiscoverOptions looks for, in order.
var configNames = []string{"mdffi.yaml", "mdffi.yml", "mdffi.json"}

// LoadOptionsFromFile parses a YAML or JSON options file. Fields missing from
// the file keep their defaults; unknown fields are rejected.
func LoadOptionsFromFile(path string) (*Options, error) {
	if path == "" {
		return nil, newValidationError("options path cannot be empty", nil)
	}

	// #nosec G304 -- the caller chooses which options file to load
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newIOError("failed to read options file", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseOptionsJSON(data)
	}
	return ParseOptionsYAML(data)
}

// ParseOptionsJSON decodes options from a JSON document.
func ParseOptionsJSON(data []byte) (*Options, error) {
	o := NewOptions()
	if len(bytes.TrimSpace(data)) == 0 {
		return o, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(o); err != nil {
		return nil, newParsingError("failed to decode options JSON", err)
	}
	return o, nil
}

// ParseOptionsYAML decodes options from a YAML document. JSON is valid YAML,
// so this also accepts JSON input.
func ParseOptionsYAML(data []byte) (*Options, error) {
	o := NewOptions()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(o); err != nil && !errors.Is(err, io.EOF) {
		return nil, newParsingError("failed to decode options YAML", err)
	}
	return o, nil
}

// JSON returns the options as a JSON document.
func (o *Options) JSON() ([]byte, error) {
	data, err := json.Marshal(orDefaults(o))
	if err != nil {
		return nil, newSerializationError("failed to encode options", err)
	}
	return data, nil
}

// DiscoverOptions searches the working directory and its parents for an
// options file and loads the first one found.
// Returns nil without error if no options file is found.
func DiscoverOptions() (*Options, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return nil, newIOError("failed to get current directory", err)
	}
	return discoverOptionsFrom(currentDir)
}

func discoverOptionsFrom(dir string) (*Options, error) {
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				Logger().Debug("discovered options file", zap.String("path", path))
				return LoadOptionsFromFile(path)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}
