// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package micro

import (
	"fmt"
	"strings"
)

const (
	SKIP_PREFIX        = "S"   // Skip conditions.
	ACTION_PREFIX      = "C"   // Accumulator and link actions.
	INCREMENT          = "INC" // Increment, the only action without ACTION_PREFIX.
	INCREMENT_FRAGMENT = "IN"  // Action fragment of INCREMENT.
	FALLBACK_PREFIX    = "X"   // Names that are not a skip-action pair.
)

// Simplify applies every rule once, in table order.
//
// Rules are not iterated to a fixpoint: a rule sees only the
// results of the rules before it.
func (tbl *Table) Simplify(names Names) Names {
	for _, rule := range tbl.Rules {
		if names.HasAll(rule.Sources...) {
			names = names.Replace(rule.Result, rule.Sources...)
		}
	}
	return names
}

// Name returns the canonical mnemonic of op.
func (tbl *Table) Name(op Op) string {
	names := tbl.Simplify(op.Names)

	skip, hasSkip := names.fragment(SKIP_PREFIX)
	action, hasAction := names.fragment(ACTION_PREFIX)
	if !hasAction && names.Has(INCREMENT) {
		action, hasAction = INCREMENT_FRAGMENT, true
	}

	if hasSkip && hasAction {
		return skip + action
	}

	return FALLBACK_PREFIX + strings.Join(names, "")
}

// Literal returns the opcode as a sized binary literal, ie 12'b000000000010.
func (tbl *Table) Literal(code uint32) string {
	return fmt.Sprintf("%d'b%0*b", tbl.Width, tbl.Width, code)
}

// Line returns the macro invocation defining op. It invokes tbl.Macro,
// the macro the generated header defines; older generated sources spelled
// the invocation ASM_REG_EXT_INST.
func (tbl *Table) Line(op Op) string {
	return fmt.Sprintf("`%v(%v, %v)", tbl.Macro, tbl.Name(op), tbl.Literal(op.Code))
}

// fragment returns the first member starting with prefix, without it.
// An empty remainder counts as no match.
func (names Names) fragment(prefix string) (fragment string, ok bool) {
	for _, name := range names {
		if rest, found := strings.CutPrefix(name, prefix); found {
			return rest, len(rest) != 0
		}
	}
	return "", false
}
