// Command ggr2glsl converts GIMP gradient files into shader source blocks.
//
// With file arguments each gradient is converted independently and printed
// to stdout; with no arguments one gradient is read from stdin.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"ggrgen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ggr2glsl: ")

	reverse := flag.Bool("reverse", false, "generate the gradient read right-to-left")
	strict := flag.Bool("strict-blend", false, "fail on non-linear blend modes")
	lint := flag.Bool("lint", false, "report validation issues on stderr")
	flag.Parse()

	gopt := &ggrgen.GenerateOptions{Reverse: *reverse, StrictBlend: *strict}

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
		if err := convert(data, "stdin", gopt, *lint); err != nil {
			log.Fatal(err)
		}
		return
	}

	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		if err := convert(data, path, gopt, *lint); err != nil {
			log.Fatalf("%s: %v", path, err)
		}
	}
}

// convert runs one gradient through parse, optional lint, generate and print.
func convert(data []byte, name string, gopt *ggrgen.GenerateOptions, lint bool) error {
	g, err := ggrgen.Parse(data, nil)
	if err != nil {
		return err
	}

	if lint {
		for _, issue := range ggrgen.Validate(g, nil) {
			if issue.Path != "" {
				log.Printf("%s: %s: %s: %s", name, issue.Level, issue.Path, issue.Message)
				continue
			}
			log.Printf("%s: %s: %s", name, issue.Level, issue.Message)
		}
	}

	gc, err := ggrgen.Generate(g, gopt)
	if err != nil {
		return err
	}

	return ggrgen.Render(os.Stdout, gc, nil)
}
