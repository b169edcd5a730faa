package micro

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	tbl, err := LoadFile("testdata/regext.star")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(Default, tbl)
}

func TestLoadFile_Missing(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadFile("testdata/missing.star")
	assert.Error(err)
}

func TestLoad_Tiny(t *testing.T) {
	assert := assert.New(t)

	tbl, err := LoadFile("testdata/tiny.star")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(4, tbl.Width)
	assert.Equal("TINY", tbl.Macro)
	assert.Empty(tbl.Exclusions)

	var lines []string
	for size, ops := range tbl.Closure() {
		assert.Equal(2, size)
		for _, op := range ops {
			lines = append(lines, tbl.Line(op))
		}
	}

	assert.Equal([]string{
		"`TINY(XCLZ, 4'b1010)",
		"`TINY(XLDASKZ, 4'b0110)",
		"`TINY(KZIN, 4'b0011)",
	}, lines)
}

func TestLoad_Defaults(t *testing.T) {
	assert := assert.New(t)

	tbl, err := Load("defaults.star", `primitives = [primitive("A", 0), primitive("B", 1, pc = 1)]`)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(Default.Width, tbl.Width)
	assert.Equal(Default.Macro, tbl.Macro)
	assert.Equal([]Op{
		Primitive("A", 0, Usage{}),
		Primitive("B", 1, Usage{Pc: 1}),
	}, tbl.Primitives)
	assert.Empty(tbl.Rules)
}

func TestLoad_Reader(t *testing.T) {
	assert := assert.New(t)

	tbl, err := Load("reader.star", strings.NewReader(`
primitives = [primitive("A", 0), primitive("B", 1)]
rules = [rule("AB", "A", "B")]
`))
	assert.NoError(err)
	if assert.NotNil(tbl) {
		assert.Equal([]Rule{{"AB", []string{"A", "B"}}}, tbl.Rules)
	}
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		src    string
		global string
		want   error
	}{
		{`width = 4`, "primitives", ErrLoadMissing},
		{`primitives = 3`, "primitives", ErrLoadType},
		{`primitives = ["A"]`, "primitives[0]", ErrLoadType},
		{`width = "wide"
primitives = []`, "width", nil},
		{`macro = 3
primitives = []`, "macro", ErrLoadType},
		{`primitives = [primitive("A", 0)]
exclusive = [(1, 2)]`, "exclusive[0]", ErrLoadType},
		{`primitives = [primitive("A", 0)]
exclusive = [("A", "A", "A")]`, "exclusive[0]", ErrLoadType},
		{`primitives = [primitive("A", 0)]
rules = [("AB", "A", "B")]`, "rules[0]", ErrLoadType},
	}

	for _, test := range tests {
		_, err := Load("errors.star", test.src)
		if !assert.Error(err, "%v", test.src) {
			continue
		}

		var el ErrLoad
		if assert.True(errors.As(err, &el), "%v: %v", test.src, err) {
			if !strings.HasPrefix(el.Global, test.global) {
				// Outer wrappers name the list; dig for the element.
				var inner ErrLoad
				if errors.As(el.Err, &inner) {
					el = inner
				}
			}
			assert.Equal(test.global, el.Global, "%v", test.src)
		}
		if test.want != nil {
			assert.ErrorIs(err, test.want, "%v", test.src)
		}
	}
}

func TestLoad_Builtins(t *testing.T) {
	assert := assert.New(t)

	tests := []string{
		`primitives = [primitive("A", 40)]`,
		`primitives = [primitive("A", -1)]`,
		`primitives = [primitive("A")]`,
		`primitives = [primitive("A", 0, q = 1)]`,
		`rules = [rule("AB")]`,
		`rules = [rule("AB", 3)]`,
		`rules = [rule("AB", "A", x = "B")]`,
		`primitives = [`,
	}

	for _, src := range tests {
		_, err := Load("builtins.star", src)
		assert.Error(err, "%v", src)
	}
}

func TestLoad_Validate(t *testing.T) {
	assert := assert.New(t)

	_, err := Load("validate.star", `primitives = [primitive("A", 0), primitive("B", 0)]`)
	assert.ErrorIs(err, ErrBitDuplicate)

	_, err = Load("validate.star", `
width = 2
primitives = [primitive("A", 0), primitive("B", 2)]
`)
	assert.ErrorIs(err, ErrBitRange)

	_, err = Load("validate.star", `
primitives = [primitive("A", 0, pc = -1)]
`)
	assert.ErrorIs(err, ErrUsageNegative)

	_, err = Load("validate.star", `primitives = [primitive("", 0)]`)
	assert.ErrorIs(err, ErrMnemonicMissing)

	_, err = Load("validate.star", `
primitives = [primitive("A", 0), primitive("B", 1)]
exclusive = [("B", "B")]
`)
	assert.ErrorIs(err, ErrExclusionSelf)
}
