// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package micro

import (
	"fmt"
	"math/bits"
)

const (
	WIDTH_MAX = 32 // Widest opcode word an Op can carry.
)

// Exclusion is a pair of mnemonics the hardware can never drive together.
type Exclusion [2]string

// Rule replaces all of Sources with Result when every source is present.
type Rule struct {
	Result  string
	Sources []string
}

// Table is the fixed description an enumeration runs against.
type Table struct {
	Width      int         // Opcode width, in bits.
	Macro      string      // Macro invoked for every generated line.
	Primitives []Op        // Base set, in enumeration order.
	Exclusions []Exclusion // Named mutual exclusions.
	Rules      []Rule      // Simplification rules, in priority order.
}

// Default is the register-reference extension of the processor.
var Default = mustTable(&Table{
	Width: 12,
	Macro: "ASM_REG_EXT_INSTR",
	Primitives: []Op{
		Primitive("CLA", 11, Usage{Clr: 1}),
		Primitive("CLE", 10, Usage{K: 1}),
		Primitive("CMA", 9, Usage{Ld: 1}),
		Primitive("CME", 8, Usage{J: 1, K: 1}),
		Primitive("CIR", 7, Usage{Ld: 1, J: 1, K: 1}),
		Primitive("CIL", 6, Usage{Ld: 1, J: 1, K: 1}),
		Primitive("INC", 5, Usage{Inc: 1}),
		Primitive("SPA", 4, Usage{Pc: 1, S: 1, Z: 1}),
		Primitive("SNA", 3, Usage{Pc: 1, S: 1}),
		Primitive("SZA", 2, Usage{Pc: 1, Z: 1}),
		Primitive("SZE", 1, Usage{Pc: 1}),
	},
	Exclusions: []Exclusion{
		{"CLA", "CMA"},
		{"CIL", "INC"},
		{"CIR", "INC"},
	},
	Rules: []Rule{
		{"SKP", []string{"SPA", "SNA"}},
		{"SAE", []string{"SZA", "SZE"}},
		{"SNE", []string{"SNA", "SZE"}},
		{"SPE", []string{"SPA", "SZE"}},
		{"SQA", []string{"SNA", "SZA"}},
		{"SQE", []string{"SNA", "SAE"}},
		{"CLR", []string{"CLA", "CLE"}},
		{"CER", []string{"CLA", "CIR"}},
		{"CEL", []string{"CLA", "CIL"}},
		{"CCA", []string{"CLE", "CMA"}},
		{"CCE", []string{"CLA", "CME"}},
		{"CMP", []string{"CMA", "CME"}},
		{"CLI", []string{"INC", "CLE"}},
		{"CMI", []string{"INC", "CME"}},
	},
})

// mustTable panics if a compiled-in table is inconsistent.
func mustTable(tbl *Table) *Table {
	if err := tbl.Validate(); err != nil {
		panic(err)
	}
	return tbl
}

// Primitive returns the base operation for name.
func (tbl *Table) Primitive(name string) (op Op, ok bool) {
	for _, op = range tbl.Primitives {
		if op.Names.Has(name) {
			ok = true
			return
		}
	}

	op = Op{}
	return
}

// Validate checks the table invariants.
func (tbl *Table) Validate() (err error) {
	if tbl.Width <= 0 || tbl.Width > WIDTH_MAX {
		return ErrTable{Item: "width", Err: ErrWidth}
	}

	if len(tbl.Macro) == 0 {
		return ErrTable{Item: "macro", Err: ErrMacroMissing}
	}

	known := map[string]bool{}
	var used uint32

	for n, op := range tbl.Primitives {
		item := fmt.Sprintf("primitive %d", n)
		if len(op.Names) == 1 && len(op.Names[0]) != 0 {
			item = fmt.Sprintf("primitive %v", op.Names[0])
		}

		switch {
		case len(op.Names) != 1, len(op.Names[0]) == 0:
			err = ErrMnemonicMissing
		case known[op.Names[0]]:
			err = ErrMnemonicDuplicate
		case bits.OnesCount32(op.Code) != 1:
			err = ErrBitCount
		case bits.Len32(op.Code) > tbl.Width:
			err = ErrBitRange
		case op.Code&used != 0:
			err = ErrBitDuplicate
		case op.Usage.Negative():
			err = ErrUsageNegative
		}
		if err != nil {
			return ErrTable{Item: item, Err: err}
		}

		known[op.Names[0]] = true
		used |= op.Code
	}

	for _, ex := range tbl.Exclusions {
		if ex[0] == ex[1] {
			return ErrTable{Item: fmt.Sprintf("exclusion %v", ex[0]), Err: ErrExclusionSelf}
		}
		for _, name := range ex {
			if !known[name] {
				return ErrTable{Item: fmt.Sprintf("exclusion %v", name), Err: ErrMnemonicUnknown}
			}
		}
	}

	// Rules may consume the results of earlier rules.
	for _, rule := range tbl.Rules {
		item := fmt.Sprintf("rule %v", rule.Result)
		if len(rule.Result) == 0 {
			return ErrTable{Item: item, Err: ErrMnemonicMissing}
		}
		if len(rule.Sources) == 0 {
			return ErrTable{Item: item, Err: ErrRuleEmpty}
		}
		for _, name := range rule.Sources {
			if !known[name] {
				return ErrTable{Item: fmt.Sprintf("%v source %v", item, name), Err: ErrMnemonicUnknown}
			}
		}
		known[rule.Result] = true
	}

	return
}
