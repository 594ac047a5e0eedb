// Package generate emits the generated sources of the temporal package.
package generate

import (
	. "github.com/dave/jennifer/jen"
)

// GeneratedHeader marks files written by this package.
const GeneratedHeader = "Code generated by internal/cmd/generate. DO NOT EDIT."

// Generator contributes declarations to a generated file.
type Generator interface {
	Generate(f *File)
}

// GenerateFile returns a file of package pkgName with all generators applied in order.
func GenerateFile(pkgName string, generators ...Generator) *File {
	f := NewFile(pkgName)
	f.HeaderComment(GeneratedHeader)
	for _, g := range generators {
		g.Generate(f)
	}
	return f
}
