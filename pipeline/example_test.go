package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/featpipe/featgraph"
	"github.com/katalvlaran/featpipe/pipeline"
	"github.com/katalvlaran/featpipe/transform"
)

// ExamplePipeline_Apply walks the full lifecycle: bind a two-branch review
// pipeline, prime it over a tiny corpus, apply a fresh document, and resolve a
// learned dimension back to its feature identifier.
func ExamplePipeline_Apply() {
	reg := transform.NewRegistry().
		MustRegister("tokenizer", transform.NewTokenize("text")).
		MustRegister("wordVectors", transform.NewDictVectorizer()).
		MustRegister("metadata", transform.NewNumberField("stars"))

	entries := []featgraph.Entry{
		{Name: "tokenizer", Inputs: []string{featgraph.DocumentStage}},
		{Name: "wordVectors", Inputs: []string{"tokenizer"}},
		{Name: "metadata", Inputs: []string{featgraph.DocumentStage}},
		{Name: featgraph.OutputStage, Inputs: []string{"wordVectors", "metadata"}},
	}

	g, err := featgraph.Bind(transform.Context{}, reg, entries)
	if err != nil {
		fmt.Println("bind:", err)
		return
	}

	frozen, err := pipeline.New(transform.Context{}, g).Prime([]transform.Document{
		{"text": "good movie", "stars": 4.0},
		{"text": "bad movie", "stars": 1.0},
	})
	if err != nil {
		fmt.Println("prime:", err)
		return
	}

	vec, err := frozen.Apply(transform.Document{"text": "good good movie", "stars": 5.0})
	if err != nil {
		fmt.Println("apply:", err)
		return
	}
	fmt.Println("vector:", vec)

	id, ok, _ := frozen.FeatureByIndex(2)
	fmt.Println("feature 2:", id, ok)

	// Output:
	// vector: [2 1 0 5]
	// feature 2: bad true
}
