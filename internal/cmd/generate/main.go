// Command generate writes temporal/errors_gen.go. It is run through go generate.
package main

import (
	"flag"
	"log"

	"github.com/damedic/xpath-temporal/internal/generate"
)

func main() {
	out := flag.String("out", "errors_gen.go", "output file")
	pkg := flag.String("pkg", "temporal", "package name of the output file")
	flag.Parse()

	log.Printf("generating %d error kinds...", len(generate.ErrorKinds))
	f := generate.GenerateFile(*pkg,
		generate.ErrorKindGenerator{Kinds: generate.ErrorKinds},
		generate.SentinelGenerator{Kinds: generate.ErrorKinds},
	)

	log.Println("writing", *out)
	if err := f.Save(*out); err != nil {
		log.Fatal(err)
	}
}
