package convergence

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyConfig is the on-disk form of a Policy. Zero fields fall back to
// the defaults, so a file may set only what it changes:
//
//	tolerance: 1e-10
//	max_iterations: 50
//	strict_limit: true
type PolicyConfig struct {
	Tolerance     float64 `json:"tolerance" yaml:"tolerance"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations"`
	StrictLimit   bool    `json:"strict_limit" yaml:"strict_limit"`
}

// Policy converts the config into a validated Policy.
func (c PolicyConfig) Policy() (Policy, error) {
	p := DefaultPolicy()
	if c.Tolerance != 0 {
		p.tolerance = c.Tolerance
	}
	if c.MaxIterations != 0 {
		p.maxIterations = c.MaxIterations
	}
	p.strictLimit = c.StrictLimit
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}

// Config returns the serialisable form of p.
func (p Policy) Config() PolicyConfig {
	return PolicyConfig{
		Tolerance:     p.tolerance,
		MaxIterations: p.maxIterations,
		StrictLimit:   p.strictLimit,
	}
}

// DecodePolicy reads a YAML policy document from r. Unknown keys are
// rejected; an empty document yields DefaultPolicy.
func DecodePolicy(r io.Reader) (Policy, error) {
	var cfg PolicyConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, fmt.Errorf("decode policy: %w", err)
	}

	return cfg.Policy()
}

// ParsePolicy is DecodePolicy over an in-memory document.
func ParsePolicy(data []byte) (Policy, error) {
	return DecodePolicy(bytes.NewReader(data))
}

// LoadPolicy reads a YAML policy file from path.
func LoadPolicy(path string) (Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return Policy{}, fmt.Errorf("load policy: %w", err)
	}
	defer f.Close()

	p, err := DecodePolicy(f)
	if err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// MarshalYAML lets a Policy be written back out with yaml.Marshal.
func (p Policy) MarshalYAML() (interface{}, error) {
	return p.Config(), nil
}
