// Package config: document model, strict parsing, pipeline build.
package config

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/featpipe/featgraph"
	"github.com/katalvlaran/featpipe/pipeline"
	"github.com/katalvlaran/featpipe/transform"
)

// TransformSpec declares one transform instance: its stage name, catalog
// class, and optional class-specific config value.
type TransformSpec struct {
	Name   string         `yaml:"name"`
	Class  string         `yaml:"class"`
	Config map[string]any `yaml:"config,omitempty"`
}

// StageSpec declares one pipeline entry: a stage name and its ordered inputs.
type StageSpec struct {
	Name   string   `yaml:"name"`
	Inputs []string `yaml:"inputs"`
}

// Config is the full pipeline configuration document.
type Config struct {
	Version    string          `yaml:"version"`
	Transforms []TransformSpec `yaml:"transforms"`
	Pipeline   []StageSpec     `yaml:"pipeline"`
}

// Parse decodes a configuration document strictly: unknown fields fail with
// ErrBadConfig rather than being dropped silently.
func Parse(raw []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(ErrBadConfig, "decode: %v", err)
	}
	return &cfg, nil
}

// Entries converts the pipeline list into binder entries.
func (c *Config) Entries() []featgraph.Entry {
	entries := make([]featgraph.Entry, 0, len(c.Pipeline))
	for _, s := range c.Pipeline {
		entries = append(entries, featgraph.Entry{Name: s.Name, Inputs: s.Inputs})
	}
	return entries
}

// Build validates the document, instantiates every transform through catalog
// (with no resource source; a configuration build is always unprimed), binds
// the graph, and wraps it into an unprimed pipeline.
//
// Errors: any Validate error; transform.ErrUnknownClass or a factory error,
// wrapped with the stage name; any featgraph.Bind error, unchanged.
func Build(ctx transform.Context, catalog transform.Catalog, c *Config) (*pipeline.Pipeline, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	reg := transform.NewRegistry()
	for _, spec := range c.Transforms {
		t, err := catalog.New(spec.Class, ctx, nil, spec.Config)
		if err != nil {
			return nil, errors.Wrapf(err, "config: building stage %q", spec.Name)
		}
		if err = reg.Register(spec.Name, t); err != nil {
			return nil, err
		}
	}

	g, err := featgraph.Bind(ctx, reg, c.Entries())
	if err != nil {
		return nil, err
	}
	return pipeline.New(ctx, g), nil
}
