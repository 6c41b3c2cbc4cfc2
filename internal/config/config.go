// Package config parses the bundled configuration resource.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for config operations.
var (
	ErrConfigParse     = errors.New("failed to parse config")
	ErrMissingGreeting = errors.New("config has no greeting")
)

// GreetingKey is the only key the program reads.
const GreetingKey = "greeting"

// Config is the parsed configuration: string keys mapped to arbitrary values.
// Nothing beyond the top-level shape is validated.
type Config map[string]any

// Parse decodes data as a JSON object.
// Returns ErrConfigParse for empty or malformed input, and for documents
// whose top level is not an object. Duplicate keys keep the last value.
func Parse(data []byte) (Config, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrConfigParse)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %T, want an object", ErrConfigParse, doc)
	}
	return Config(m), nil
}

// Greeting returns the greeting value.
// Returns ErrMissingGreeting if the key is absent or not a string.
func (c Config) Greeting() (string, error) {
	v, ok := c[GreetingKey]
	if !ok {
		return "", fmt.Errorf("%w: key %q is absent", ErrMissingGreeting, GreetingKey)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: key %q is %T, want string", ErrMissingGreeting, GreetingKey, v)
	}
	return s, nil
}

// Keys returns the top-level keys in sorted order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
