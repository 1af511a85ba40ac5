package svgheadergen_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	svgheadergen "github.com/ryugen-io/svgheadergen"
)

// fixedEngine returns a canned banner instead of shelling out, so the
// examples stay deterministic on machines without toilet or figlet.
type fixedEngine struct {
	output string
}

func (e fixedEngine) Name() string    { return "fixed" }
func (e fixedEngine) Available() bool { return true }

func (e fixedEngine) RenderGrid(_ context.Context, _, _ string) (string, error) {
	return e.output, nil
}

// Example demonstrates the pixel pipeline end to end: a character grid is
// turned into one square subpath per filled cell, wrapped in a document
// whose gradient spans the full banner width.
func Example() {
	engine := fixedEngine{output: "##\n #\n"}

	gen := svgheadergen.New(svgheadergen.WithGridEngine(engine))
	doc, err := gen.Generate(context.Background(), svgheadergen.Request{
		Text:  "Hi",
		Scale: 10,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("subpaths:", strings.Count(doc, "Z"))
	fmt.Println("viewBox:", strings.Contains(doc, `viewBox="0 0 20 20"`))
	// Output:
	// subpaths: 3
	// viewBox: true
}
