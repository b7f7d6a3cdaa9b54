package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overrides holds parameter overrides per component kind, keyed by
// parameter name (e.g. "rot_angle_1").
type Overrides struct {
	Detector map[string]interface{} `yaml:"detector,omitempty"`
	Dust     map[string]interface{} `yaml:"dust,omitempty"`
	Source   map[string]interface{} `yaml:"source,omitempty"`
}

// LoadOverrides reads an overrides YAML file
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading overrides file: %w", err)
	}

	var o Overrides
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		return nil, fmt.Errorf("error parsing overrides file: %w", err)
	}

	return &o, nil
}

// ApplyOverrides sets the named parameters on dst, a pointer to a parameter
// struct with yaml tags. Parameters not named keep their value; unknown
// names and mistyped values are errors.
func ApplyOverrides(dst interface{}, overrides map[string]interface{}) error {
	if len(overrides) == 0 {
		return nil
	}

	data, err := yaml.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("error marshaling overrides: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid parameter override: %w", err)
	}

	return nil
}

// ParseSetFlags parses "key=value" pairs. Values are typed like YAML
// scalars, so "1e-6" is a number, "[1,0,0]" a list and "true" a bool.
func ParseSetFlags(pairs []string) (map[string]interface{}, error) {
	result := make(map[string]interface{}, len(pairs))

	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q, expected key=value", pair)
		}

		var value interface{}
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		result[key] = value
	}

	return result, nil
}
