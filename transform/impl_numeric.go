// impl_numeric.go — NumberField, Scale, Concat: the numeric side of the stock
// path (metadata extraction, rescaling, vector assembly).
package transform

import "github.com/cockroachdb/errors"

// ClassNumberField is the catalog identifier of NumberField.
const ClassNumberField = "number_field"

// ClassScale is the catalog identifier of Scale.
const ClassScale = "scale"

// ClassConcat is the catalog identifier of Concat.
const ClassConcat = "concat"

// NumberField lifts one numeric document field into a 1-dimensional vector.
// A missing field reads as zero. Fixed arity 1 (the document), vector out.
type NumberField struct {
	// Field is the document key holding the numeric value.
	Field string
}

// NewNumberField returns a NumberField over the given document field.
func NewNumberField(field string) *NumberField { return &NumberField{Field: field} }

// Class implements Transform.
func (n *NumberField) Class() string { return ClassNumberField }

// Signature implements Transform: fixed arity 1, vector output.
func (n *NumberField) Signature() Signature {
	return Signature{Kind: Fixed, Arity: 1, Output: KindVector}
}

// Apply implements Transform.
func (n *NumberField) Apply(inputs []Value) (Value, error) {
	doc, err := AsDocument(inputs[0])
	if err != nil {
		return nil, err
	}
	raw, ok := doc[n.Field]
	if !ok {
		return Vector{0}, nil
	}
	v, err := AsScalar(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "field %q", n.Field)
	}
	return Vector{v}, nil
}

// Save implements Persistable; NumberField has no binary state, only config.
func (n *NumberField) Save(ResourceSink) (map[string]any, error) {
	return map[string]any{"field": n.Field}, nil
}

// Scale multiplies every component of a vector by a constant factor.
// Fixed arity 1, vector in, vector out.
type Scale struct {
	// Factor is the multiplier applied to every component.
	Factor float64
}

// NewScale returns a Scale with the given factor.
func NewScale(factor float64) *Scale { return &Scale{Factor: factor} }

// Class implements Transform.
func (s *Scale) Class() string { return ClassScale }

// Signature implements Transform: fixed arity 1, vector output.
func (s *Scale) Signature() Signature {
	return Signature{Kind: Fixed, Arity: 1, Output: KindVector}
}

// Apply implements Transform. The input vector is not mutated.
func (s *Scale) Apply(inputs []Value) (Value, error) {
	vec, err := AsVector(inputs[0])
	if err != nil {
		return nil, err
	}
	out := make(Vector, len(vec))
	for i, v := range vec {
		out[i] = v * s.Factor
	}
	return out, nil
}

// Save implements Persistable; Scale has no binary state, only config.
func (s *Scale) Save(ResourceSink) (map[string]any, error) {
	return map[string]any{"factor": s.Factor}, nil
}

// Concat joins any number of vectors end to end in input order.
// Variadic with minimum 1, vectors in, vector out.
type Concat struct{}

// Class implements Transform.
func (Concat) Class() string { return ClassConcat }

// Signature implements Transform: variadic >= 1, vector output.
func (Concat) Signature() Signature {
	return Signature{Kind: Variadic, MinInputs: 1, Output: KindVector}
}

// Apply implements Transform. Complexity: O(total components).
func (Concat) Apply(inputs []Value) (Value, error) {
	total := 0
	vecs := make([]Vector, len(inputs))
	for i, in := range inputs {
		vec, err := AsVector(in)
		if err != nil {
			return nil, errors.Wrapf(err, "input %d", i)
		}
		vecs[i] = vec
		total += len(vec)
	}
	out := make(Vector, 0, total)
	for _, vec := range vecs {
		out = append(out, vec...)
	}
	return out, nil
}
