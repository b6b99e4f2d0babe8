// Package config: document validation.
//
// Validate catches every defect expressible without instantiating transforms;
// class resolution and graph structure stay with Build and the binder.
package config

import (
	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/featpipe/featgraph"
)

// Validate checks the document against the reserved-name and cross-reference
// rules.
//
// Rules, in evaluation order:
//  1. version must parse as a semantic version (ErrBadConfig);
//  2. every transform needs a non-empty name and class; names must be unique
//     and must not shadow "$document"/"$output" (ErrBadConfig /
//     ErrDuplicateName / ErrReservedName);
//  3. pipeline entry names must be unique, never "$document", and include
//     "$output" exactly once (ErrDuplicateName / ErrReservedName /
//     ErrMissingOutput);
//  4. transform and pipeline lists must cover each other: every declared
//     transform has an entry and every non-sink entry has a transform
//     (ErrUnmatchedStage).
func (c *Config) Validate() error {
	if _, err := semver.NewVersion(c.Version); err != nil {
		return errors.Wrapf(ErrBadConfig, "version %q: %v", c.Version, err)
	}

	declared := make(map[string]bool, len(c.Transforms))
	for _, t := range c.Transforms {
		if t.Name == "" || t.Class == "" {
			return errors.Wrapf(ErrBadConfig, "transform %+v needs name and class", t)
		}
		if t.Name == featgraph.DocumentStage || t.Name == featgraph.OutputStage {
			return errors.Wrapf(ErrReservedName, "transform %q", t.Name)
		}
		if declared[t.Name] {
			return errors.Wrapf(ErrDuplicateName, "transform %q", t.Name)
		}
		declared[t.Name] = true
	}

	seen := make(map[string]bool, len(c.Pipeline))
	hasOutput := false
	for _, s := range c.Pipeline {
		if s.Name == "" {
			return errors.Wrap(ErrBadConfig, "pipeline entry with empty name")
		}
		if s.Name == featgraph.DocumentStage {
			return errors.Wrapf(ErrReservedName, "entry %q", s.Name)
		}
		if seen[s.Name] {
			return errors.Wrapf(ErrDuplicateName, "entry %q", s.Name)
		}
		seen[s.Name] = true

		if s.Name == featgraph.OutputStage {
			hasOutput = true
			continue
		}
		if !declared[s.Name] {
			return errors.Wrapf(ErrUnmatchedStage, "entry %q has no transform declaration", s.Name)
		}
	}
	if !hasOutput {
		return ErrMissingOutput
	}

	for name := range declared {
		if !seen[name] {
			return errors.Wrapf(ErrUnmatchedStage, "transform %q has no pipeline entry", name)
		}
	}
	return nil
}
