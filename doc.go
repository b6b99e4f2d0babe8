// Package featpipe turns raw structured documents into fixed-dimension
// numeric vectors by compiling and executing a validated, dependency-ordered
// graph of named transform stages.
//
// 🚀 What is featpipe?
//
//	A feature-compilation graph engine that brings together:
//		• Declarative stage graphs: name your transforms, wire their inputs,
//		  let the engine level, validate, and execute them
//		• A two-phase lifecycle: prime once over a corpus to learn dimensions,
//		  then apply frozen pipelines to any number of documents
//		• Irreversible dimension pruning with global→local index remapping
//		• Reverse lookup from any global index back to its feature identifier
//		• A self-describing, versioned artifact format that round-trips the
//		  whole pipeline, learned indices included
//
// Everything is organized under small topical subpackages:
//
//	transform/ — transform capability model, registries, stock transforms
//	toposort/  — layered topological ordering of stage entries
//	featgraph/ — graph binding (validation) and per-document evaluation
//	pipeline/  — priming, freezing, application, lookup, pruning
//	persist/   — artifact save/load and the hierarchical resource store
//	record/    — the shared binary record codec (varints + fixed doubles)
//	config/    — the YAML pipeline configuration surface
//
// Quick ASCII example — a two-branch review pipeline:
//
//	$document ──► tokenizer ──► stripPunct ──► wordVectors ─┐
//	     │                                                  ├──► $output
//	     └────────────────────► metadata ───────────────────┘
//
// Dive into the package docs for lifecycle rules, the error taxonomy, and the
// caller-side concurrency contract.
package featpipe
