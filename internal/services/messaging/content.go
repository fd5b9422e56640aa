package messaging

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadContent reads the YAML content file at path. A missing file yields
// empty content so the built-in defaults apply.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warningf("content file %s not found, using defaults", path)
			return &Content{}, nil
		}
		return nil, fmt.Errorf("read content file: %w", err)
	}

	return ParseContent(data)
}

// ParseContent decodes a content document. Preset names are upper-cased.
func ParseContent(data []byte) (*Content, error) {
	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("parse content file: %w", err)
	}

	presets := make(map[string]*Preset, len(content.Presets))
	for name, preset := range content.Presets {
		if preset == nil {
			continue
		}
		presets[strings.ToUpper(strings.TrimSpace(name))] = preset
	}
	content.Presets = presets

	return &content, nil
}
