// Package persist: the pipeline save/load codec.
package persist

import (
	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/featpipe/featgraph"
	"github.com/katalvlaran/featpipe/pipeline"
	"github.com/katalvlaran/featpipe/transform"
)

// FormatVersion is the semantic version of the artifact format. Load accepts
// artifacts sharing its major version.
const FormatVersion = "1.0.0"

// manifestName is the pipeline-level structured config inside the store.
const manifestName = "pipeline.yaml"

// stageScope prefixes per-stage resource sub-stores, keeping them clear of the
// manifest.
const stageScope = "stages"

// transformSpec is one (name, class, config?) triple; config is omitted when
// the transform's Save returned nil.
type transformSpec struct {
	Name   string         `yaml:"name"`
	Class  string         `yaml:"class"`
	Config map[string]any `yaml:"config,omitempty"`
}

// entrySpec mirrors one pipeline edge declaration.
type entrySpec struct {
	Name   string   `yaml:"name"`
	Inputs []string `yaml:"inputs"`
}

// featureMeta carries the frozen dimension facts that are not implicit in
// transform state: the total, and the observed dimensions of plain (non
// terminable) output stages.
type featureMeta struct {
	TotalDimensions int            `yaml:"total_dimensions"`
	Observed        map[string]int `yaml:"observed_dimensions,omitempty"`
}

// manifest is the root structured config of an artifact.
type manifest struct {
	Version     string          `yaml:"version"`
	ArtifactID  string          `yaml:"artifact_id"`
	FeatureMeta featureMeta     `yaml:"feature_meta"`
	Transforms  []transformSpec `yaml:"transforms"`
	Pipeline    []entrySpec     `yaml:"pipeline"`
}

// Save serializes a frozen pipeline into store: the manifest as structured
// config, plus each persistable transform's binary resources under
// stages/<stage name>.
//
// Errors:
//   - pipeline.ErrNotPrimed when p is unprimed (an unprimed pipeline has no
//     frozen dimensions to persist).
//   - any transform Save or store error, wrapped with the stage name.
func Save(ctx transform.Context, p *pipeline.Pipeline, store *Store) error {
	if !p.Frozen() {
		return pipeline.ErrNotPrimed
	}
	g := p.Graph()

	m := manifest{
		Version:    FormatVersion,
		ArtifactID: uuid.NewString(),
		FeatureMeta: featureMeta{
			Observed: make(map[string]int),
		},
	}
	m.FeatureMeta.TotalDimensions, _ = p.TotalDimensions()

	for _, r := range p.Ranges() {
		t, _ := g.Stage(r.Stage)
		if _, ok := t.(transform.Terminable); !ok {
			m.FeatureMeta.Observed[r.Stage] = r.Len
		}
	}
	if len(m.FeatureMeta.Observed) == 0 {
		m.FeatureMeta.Observed = nil
	}

	for _, e := range g.Entries() {
		if e.Name == featgraph.OutputStage {
			m.Pipeline = append(m.Pipeline, entrySpec{Name: e.Name, Inputs: e.Inputs})
			continue
		}
		t, _ := g.Stage(e.Name)
		spec := transformSpec{Name: e.Name, Class: t.Class()}
		if pers, ok := t.(transform.Persistable); ok {
			cfg, err := pers.Save(store.Sub(stageScope).Sub(e.Name))
			if err != nil {
				return errors.Wrapf(err, "persist: saving stage %q", e.Name)
			}
			spec.Config = cfg
		}
		m.Transforms = append(m.Transforms, spec)
		m.Pipeline = append(m.Pipeline, entrySpec{Name: e.Name, Inputs: e.Inputs})
	}

	raw, err := yaml.Marshal(&m)
	if err != nil {
		return errors.Wrap(err, "persist: marshal manifest")
	}
	wc, err := store.Create(manifestName)
	if err != nil {
		return err
	}
	if _, err = wc.Write(raw); err != nil {
		_ = wc.Close()
		return errors.Wrap(err, "persist: write manifest")
	}
	if err = wc.Close(); err != nil {
		return errors.Wrap(err, "persist: close manifest")
	}

	ctx.Log().Named("persist").Debugw("pipeline saved",
		"artifact_id", m.ArtifactID, "dimensions", m.FeatureMeta.TotalDimensions,
		"transforms", len(m.Transforms))
	return nil
}

// Load restores a pipeline from store, already frozen: the manifest's version
// is semver-checked against FormatVersion, every transform class is
// instantiated through catalog with its scoped resource source and config
// value, and the graph is rebound from the stored edge list.
//
// Errors:
//   - ErrMissingResource when the manifest is absent.
//   - ErrBadArtifact on an unreadable manifest.
//   - ErrUnsupportedVersion on a major-version mismatch (declared vs
//     supported in the wrap).
//   - transform.ErrUnknownClass for an unregistered class identifier.
//   - any bind or restore error, unchanged.
func Load(ctx transform.Context, catalog transform.Catalog, store *Store) (*pipeline.Pipeline, error) {
	rc, err := store.Open(manifestName)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var m manifest
	if err = yaml.NewDecoder(rc).Decode(&m); err != nil {
		return nil, errors.Wrapf(ErrBadArtifact, "decode manifest: %v", err)
	}
	if err = checkVersion(m.Version); err != nil {
		return nil, err
	}

	reg := transform.NewRegistry()
	for _, spec := range m.Transforms {
		t, newErr := catalog.New(spec.Class, ctx, store.Sub(stageScope).Sub(spec.Name), spec.Config)
		if newErr != nil {
			return nil, errors.Wrapf(newErr, "persist: restoring stage %q", spec.Name)
		}
		if regErr := reg.Register(spec.Name, t); regErr != nil {
			return nil, regErr
		}
	}

	entries := make([]featgraph.Entry, 0, len(m.Pipeline))
	for _, e := range m.Pipeline {
		entries = append(entries, featgraph.Entry{Name: e.Name, Inputs: e.Inputs})
	}
	g, err := featgraph.Bind(ctx, reg, entries)
	if err != nil {
		return nil, err
	}

	p, err := pipeline.Restore(ctx, g, m.FeatureMeta.Observed)
	if err != nil {
		return nil, err
	}

	ctx.Log().Named("persist").Debugw("pipeline loaded",
		"artifact_id", m.ArtifactID, "version", m.Version)
	return p, nil
}

// checkVersion parses the declared artifact version and requires the major to
// match FormatVersion's.
func checkVersion(declared string) error {
	supported := semver.MustParse(FormatVersion)
	got, err := semver.NewVersion(declared)
	if err != nil {
		return errors.Wrapf(ErrUnsupportedVersion, "declared %q, supported %q: %v", declared, FormatVersion, err)
	}
	if got.Major() != supported.Major() {
		return errors.Wrapf(ErrUnsupportedVersion, "declared %q, supported %q", declared, FormatVersion)
	}
	return nil
}
