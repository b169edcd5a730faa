package micro

import (
	"fmt"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Table descriptions are Starlark programs. They declare:
//
//	width = 12                       # optional, defaults to Default.Width
//	macro = "ASM_REG_EXT_INSTR"      # optional, defaults to Default.Macro
//	primitives = [primitive("CLA", 11, clr = 1), ...]
//	exclusive = [("CLA", "CMA"), ...]   # optional
//	rules = [rule("CLR", "CLA", "CLE"), ...] # optional
//
// primitive() accepts the usage counters inc, ld, clr, j, k, pc, s and z
// as keyword arguments.

// starPrimitive is the Starlark value returned by primitive().
type starPrimitive struct {
	op Op
}

var _ starlark.Value = (*starPrimitive)(nil)

func (sp *starPrimitive) String() string        { return fmt.Sprintf("primitive(%v)", sp.op.Names) }
func (sp *starPrimitive) Type() string          { return "primitive" }
func (sp *starPrimitive) Freeze()               {}
func (sp *starPrimitive) Truth() starlark.Bool  { return starlark.True }
func (sp *starPrimitive) Hash() (uint32, error) { return sp.op.Code, nil }

// starRule is the Starlark value returned by rule().
type starRule struct {
	rule Rule
}

var _ starlark.Value = (*starRule)(nil)

func (sr *starRule) String() string        { return fmt.Sprintf("rule(%v)", sr.rule.Result) }
func (sr *starRule) Type() string          { return "rule" }
func (sr *starRule) Freeze()               {}
func (sr *starRule) Truth() starlark.Bool  { return starlark.True }
func (sr *starRule) Hash() (uint32, error) { return starlark.String(sr.rule.Result).Hash() }

func builtinPrimitive(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	var bit int
	var usage Usage

	err = starlark.UnpackArgs(fn.Name(), args, kwargs,
		"name", &name, "bit", &bit,
		"inc?", &usage.Inc, "ld?", &usage.Ld, "clr?", &usage.Clr,
		"j?", &usage.J, "k?", &usage.K,
		"pc?", &usage.Pc, "s?", &usage.S, "z?", &usage.Z)
	if err != nil {
		return
	}

	if bit < 0 || bit >= WIDTH_MAX {
		err = fmt.Errorf("%v: %v %d", fn.Name(), ErrBitRange, bit)
		return
	}

	value = &starPrimitive{op: Primitive(name, bit, usage)}
	return
}

func builtinRule(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	if len(kwargs) != 0 {
		err = fmt.Errorf("%v: unexpected keyword arguments", fn.Name())
		return
	}

	var words []string
	for _, arg := range args {
		word, ok := starlark.AsString(arg)
		if !ok {
			err = fmt.Errorf("%v: got %v, want string", fn.Name(), arg.Type())
			return
		}
		words = append(words, word)
	}

	if len(words) < 2 {
		err = fmt.Errorf("%v: %v", fn.Name(), ErrRuleEmpty)
		return
	}

	value = &starRule{rule: Rule{Result: words[0], Sources: words[1:]}}
	return
}

// LoadFile loads and validates a table description file.
func LoadFile(filename string) (tbl *Table, err error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return
	}

	return Load(filename, src)
}

// Load evaluates a table description and validates the result.
// src may be a string, []byte or io.Reader.
func Load(filename string, src any) (tbl *Table, err error) {
	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"primitive": starlark.NewBuiltin("primitive", builtinPrimitive),
		"rule":      starlark.NewBuiltin("rule", builtinRule),
	}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	tbl = &Table{
		Width: Default.Width,
		Macro: Default.Macro,
	}

	if value, ok := globals["width"]; ok {
		tbl.Width, err = starlark.AsInt32(value)
		if err != nil {
			err = ErrLoad{Global: "width", Err: err}
			return nil, err
		}
	}

	if value, ok := globals["macro"]; ok {
		macro, ok := starlark.AsString(value)
		if !ok {
			return nil, ErrLoad{Global: "macro", Err: ErrLoadType}
		}
		tbl.Macro = macro
	}

	value, ok := globals["primitives"]
	if !ok {
		return nil, ErrLoad{Global: "primitives", Err: ErrLoadMissing}
	}
	err = eachOf(value, func(n int, item starlark.Value) error {
		sp, ok := item.(*starPrimitive)
		if !ok {
			return ErrLoad{Global: fmt.Sprintf("primitives[%d]", n), Err: ErrLoadType}
		}
		tbl.Primitives = append(tbl.Primitives, sp.op)
		return nil
	})
	if err != nil {
		return nil, ErrLoad{Global: "primitives", Err: err}
	}

	if value, ok := globals["exclusive"]; ok {
		err = eachOf(value, func(n int, item starlark.Value) (err error) {
			var ex Exclusion
			err = eachOf(item, func(m int, word starlark.Value) error {
				name, ok := starlark.AsString(word)
				if !ok || m >= len(ex) {
					return ErrLoadType
				}
				ex[m] = name
				return nil
			})
			if err != nil {
				return ErrLoad{Global: fmt.Sprintf("exclusive[%d]", n), Err: err}
			}
			tbl.Exclusions = append(tbl.Exclusions, ex)
			return
		})
		if err != nil {
			return nil, ErrLoad{Global: "exclusive", Err: err}
		}
	}

	if value, ok := globals["rules"]; ok {
		err = eachOf(value, func(n int, item starlark.Value) error {
			sr, ok := item.(*starRule)
			if !ok {
				return ErrLoad{Global: fmt.Sprintf("rules[%d]", n), Err: ErrLoadType}
			}
			tbl.Rules = append(tbl.Rules, sr.rule)
			return nil
		})
		if err != nil {
			return nil, ErrLoad{Global: "rules", Err: err}
		}
	}

	err = tbl.Validate()
	if err != nil {
		return nil, err
	}

	return
}

// eachOf calls fn on every element of a Starlark list or tuple.
func eachOf(value starlark.Value, fn func(n int, item starlark.Value) error) (err error) {
	seq, ok := value.(starlark.Indexable)
	if !ok {
		return ErrLoadType
	}

	for n := range seq.Len() {
		err = fn(n, seq.Index(n))
		if err != nil {
			return
		}
	}

	return
}
