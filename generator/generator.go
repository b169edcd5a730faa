// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package generator emits the macro definitions of every legal
// combination of a micro-operation table.
package generator

import (
	"bufio"
	"io"
	"iter"
	"log"
	"slices"

	"github.com/ezrec/regext/internal"
	"github.com/ezrec/regext/micro"
)

const (
	FORMAT_TEXT = "text" // Header and macro lines.
	FORMAT_YAML = "yaml" // Listing of every group.
)

// FORMATS lists the supported output formats.
var FORMATS = []string{FORMAT_TEXT, FORMAT_YAML}

// Generator drives the enumeration of a table.
type Generator struct {
	Verbose bool         // If set, logs every emitted group.
	Table   *micro.Table // Table to enumerate.
}

// NewGenerator creates a generator for tbl, or for micro.Default if tbl is nil.
func NewGenerator(tbl *micro.Table) (gen *Generator) {
	if tbl == nil {
		tbl = micro.Default
	}

	gen = &Generator{
		Table: tbl,
	}

	return
}

// Groups yields every non-empty combination group, smallest first.
func (gen *Generator) Groups() iter.Seq2[int, []micro.Op] {
	return func(yield func(int, []micro.Op) bool) {
		for size, ops := range gen.Table.Closure() {
			if gen.Verbose {
				log.Printf("generator: size %d: %d combinations", size, len(ops))
			}
			if !yield(size, ops) {
				return
			}
		}
	}
}

// Lines yields the header followed by one macro line per combination.
func (gen *Generator) Lines() iter.Seq[string] {
	return internal.IterSeqConcat(
		slices.Values(gen.Header()),
		internal.IterSeqMap(internal.IterSeqFlatten(gen.Groups()), gen.Table.Line),
	)
}

// WriteText writes the header and every macro line to w.
func (gen *Generator) WriteText(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)

	for line := range gen.Lines() {
		_, err = bw.WriteString(line + "\n")
		if err != nil {
			return
		}
	}

	return bw.Flush()
}

// Write renders the enumeration to w in format.
func (gen *Generator) Write(w io.Writer, format string) (err error) {
	switch format {
	case FORMAT_TEXT:
		err = gen.WriteText(w)
	case FORMAT_YAML:
		err = gen.WriteYAML(w)
	default:
		err = ErrFormat(format)
	}

	return
}
