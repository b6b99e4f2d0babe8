// catalog.go — builtin factories and config-value helpers.
//
// BuiltinCatalog is the explicit registration table for the stock transforms;
// callers merge their own classes on top (Catalog.Merge) before config build or
// persistence load. Config values arrive as yaml-decoded map[string]any, so the
// helpers below tolerate the numeric types yaml.v3 actually produces.
package transform

import "github.com/cockroachdb/errors"

// BuiltinCatalog returns a fresh Catalog of the stock transform classes.
func BuiltinCatalog() Catalog {
	return Catalog{
		ClassTokenize: func(_ Context, _ ResourceSource, cfg map[string]any) (Transform, error) {
			field, err := cfgString(cfg, "field")
			if err != nil {
				return nil, err
			}
			return NewTokenize(field), nil
		},
		ClassStripPunct: func(Context, ResourceSource, map[string]any) (Transform, error) {
			return StripPunct{}, nil
		},
		ClassNGram: func(_ Context, _ ResourceSource, cfg map[string]any) (Transform, error) {
			n, err := cfgInt(cfg, "n")
			if err != nil {
				return nil, err
			}
			return NewNGram(n)
		},
		ClassDictVectorizer: func(_ Context, src ResourceSource, _ map[string]any) (Transform, error) {
			return loadDictVectorizer(src)
		},
		ClassNumberField: func(_ Context, _ ResourceSource, cfg map[string]any) (Transform, error) {
			field, err := cfgString(cfg, "field")
			if err != nil {
				return nil, err
			}
			return NewNumberField(field), nil
		},
		ClassScale: func(_ Context, _ ResourceSource, cfg map[string]any) (Transform, error) {
			factor, err := cfgFloat(cfg, "factor")
			if err != nil {
				return nil, err
			}
			return NewScale(factor), nil
		},
		ClassConcat: func(Context, ResourceSource, map[string]any) (Transform, error) {
			return Concat{}, nil
		},
	}
}

// cfgString extracts a required string key from a config value.
func cfgString(cfg map[string]any, key string) (string, error) {
	raw, ok := cfg[key]
	if !ok {
		return "", errors.Wrapf(ErrBadConfig, "missing key %q", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", errors.Wrapf(ErrBadConfig, "key %q: want string, got %T", key, raw)
	}
	return s, nil
}

// cfgInt extracts a required integer key. yaml.v3 decodes integers as int,
// but a round trip through other encoders may widen them.
func cfgInt(cfg map[string]any, key string) (int, error) {
	raw, ok := cfg[key]
	if !ok {
		return 0, errors.Wrapf(ErrBadConfig, "missing key %q", key)
	}
	switch n := raw.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, errors.Wrapf(ErrBadConfig, "key %q: want integer, got %T", key, raw)
	}
}

// cfgFloat extracts a required numeric key.
func cfgFloat(cfg map[string]any, key string) (float64, error) {
	raw, ok := cfg[key]
	if !ok {
		return 0, errors.Wrapf(ErrBadConfig, "missing key %q", key)
	}
	switch n := raw.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, errors.Wrapf(ErrBadConfig, "key %q: want number, got %T", key, raw)
	}
}
