// Package transform: value coercion helpers shared by the stock transforms.
package transform

import "github.com/cockroachdb/errors"

// AsDocument coerces a stage input to a Document.
func AsDocument(v Value) (Document, error) {
	switch d := v.(type) {
	case Document:
		return d, nil
	case map[string]any:
		return Document(d), nil
	default:
		return nil, errors.Wrapf(ErrBadInput, "want document, got %T", v)
	}
}

// AsTokens coerces a stage input to a token slice.
func AsTokens(v Value) ([]string, error) {
	tokens, ok := v.([]string)
	if !ok {
		return nil, errors.Wrapf(ErrBadInput, "want tokens, got %T", v)
	}
	return tokens, nil
}

// AsVector coerces a stage input to a Vector. Plain []float64 is accepted.
func AsVector(v Value) (Vector, error) {
	switch vec := v.(type) {
	case Vector:
		return vec, nil
	case []float64:
		return Vector(vec), nil
	default:
		return nil, errors.Wrapf(ErrBadInput, "want vector, got %T", v)
	}
}

// AsScalar coerces a stage input to a float64. Integer document values are
// widened; everything else is rejected.
func AsScalar(v Value) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, errors.Wrapf(ErrBadInput, "want scalar, got %T", v)
	}
}
