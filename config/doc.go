// Package config parses and validates the declarative pipeline configuration
// and builds an unprimed pipeline from it.
//
// # Configuration document
//
// The configuration is YAML with three fields:
//
//	version: "1.0.0"              # semantic version of the pipeline format
//	transforms:                   # ordered {name, class, config?} list
//	  - name: tokenizer
//	    class: tokenize
//	    config: {field: text}
//	  - name: wordVectors
//	    class: dict_vectorizer
//	pipeline:                     # ordered {name, inputs} entry list
//	  - name: tokenizer
//	    inputs: [$document]
//	  - name: wordVectors
//	    inputs: [tokenizer]
//	  - name: $output
//	    inputs: [wordVectors]
//
// Reserved stage names: "$document" is the sole external input and may only be
// referenced, never declared; "$output" must be declared exactly once and its
// inputs list is the ordered final feature-vector composition.
//
// Parse is strict (unknown fields are rejected); Validate checks the document
// against the reserved-name and cross-reference rules before any transform is
// instantiated; Build resolves classes through an explicit Catalog and binds
// the graph.
package config
