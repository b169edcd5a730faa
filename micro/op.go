// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package micro

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// Names is a sorted set of mnemonics.
//
// A Names value is never modified in place once built, so aggregates may
// share it freely.
type Names []string

// NewNames builds a set from the given mnemonics.
func NewNames(names ...string) Names {
	set := slices.Clone(names)
	slices.Sort(set)
	return Names(slices.Compact(set))
}

// Has returns true if name is in the set.
func (names Names) Has(name string) bool {
	_, found := slices.BinarySearch(names, name)
	return found
}

// HasAll returns true if every one of want is in the set.
func (names Names) HasAll(want ...string) bool {
	for _, name := range want {
		if !names.Has(name) {
			return false
		}
	}
	return true
}

// Union returns a new set holding the members of both sets.
func (names Names) Union(other Names) Names {
	union := make([]string, 0, len(names)+len(other))
	union = append(union, names...)
	union = append(union, other...)
	return NewNames(union...)
}

// Replace returns a new set with every one of sources removed and result added.
func (names Names) Replace(result string, sources ...string) Names {
	kept := make([]string, 0, len(names)+1)
	for _, name := range names {
		if !slices.Contains(sources, name) {
			kept = append(kept, name)
		}
	}
	kept = append(kept, result)
	return NewNames(kept...)
}

// String returns the set as "A|B|C".
func (names Names) String() string {
	return strings.Join(names, "|")
}

const (
	USAGE_J_LIMIT  = 1 // Sequencing J line, once per combination.
	USAGE_K_LIMIT  = 1 // Sequencing K line, once per combination.
	USAGE_LD_LIMIT = 1 // Accumulator load.
	USAGE_Z_LIMIT  = 1 // Zero flag test.
	USAGE_S_LIMIT  = 2 // Skip conditions.
	USAGE_PC_SKIP  = 2 // Program counter slots available to a double skip.
)

// Usage counts the control lines driven by an aggregate.
type Usage struct {
	Inc int // Increment.
	Ld  int // Load.
	Clr int // Clear.
	J   int // Sequencing J.
	K   int // Sequencing K.
	Pc  int // Program counter update.
	S   int // Skip condition.
	Z   int // Zero flag.
}

// Add returns the field-wise sum of two usages.
func (u Usage) Add(o Usage) Usage {
	return Usage{
		Inc: u.Inc + o.Inc,
		Ld:  u.Ld + o.Ld,
		Clr: u.Clr + o.Clr,
		J:   u.J + o.J,
		K:   u.K + o.K,
		Pc:  u.Pc + o.Pc,
		S:   u.S + o.S,
		Z:   u.Z + o.Z,
	}
}

// Normalize masks the lines cancelled by a load or clear.
// Clear wins over load, and either wins over increment.
func (u Usage) Normalize() Usage {
	if u.Clr > 0 || u.Ld > 0 {
		u.Inc = 0
	}
	if u.Clr > 0 {
		u.Ld = 0
	}
	return u
}

// Negative returns true if any counter is below zero.
func (u Usage) Negative() bool {
	return u.Inc < 0 || u.Ld < 0 || u.Clr < 0 || u.J < 0 || u.K < 0 || u.Pc < 0 || u.S < 0 || u.Z < 0
}

// SideEffects returns true if the usage drives a sequencing line.
func (u Usage) SideEffects() bool {
	return u.J+u.K != 0
}

// Op is a primitive micro-operation, or a legal merge of several.
type Op struct {
	Names Names  // Active primitives.
	Code  uint32 // Opcode bits, one per active primitive.
	Usage
}

// Primitive creates a single micro-operation owning opcode bit.
// A bit outside 0..WIDTH_MAX-1 yields an empty code, which Validate
// rejects with ErrBitCount.
func Primitive(name string, bit int, usage Usage) (op Op) {
	op = Op{
		Names: NewNames(name),
		Usage: usage,
	}
	if bit >= 0 && bit < WIDTH_MAX {
		op.Code = uint32(1) << bit
	}
	return
}

// Size returns the number of primitives merged into the operation.
func (op Op) Size() int {
	return bits.OnesCount32(op.Code)
}

// String returns a debugging representation of the operation.
func (op Op) String() string {
	return fmt.Sprintf("%v %#x %+v", op.Names, op.Code, op.Usage)
}
