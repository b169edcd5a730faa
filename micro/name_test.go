package micro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func compose(t *testing.T, names ...string) (op Op) {
	t.Helper()

	op = base(t, names[0])
	for _, name := range names[1:] {
		var ok bool
		op, ok = Default.Compose(op, base(t, name))
		if !ok {
			t.Fatalf("cannot compose %v", names)
		}
	}
	return
}

func TestSimplify(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		in   []string
		want Names
	}{
		{[]string{"SPA", "SNA"}, Names{"SKP"}},
		{[]string{"SZA", "SZE"}, Names{"SAE"}},
		{[]string{"SNA", "SZA", "SZE"}, Names{"SQE"}},
		{[]string{"SPA", "SNA", "SZE"}, Names{"SKP", "SZE"}},
		{[]string{"CLA", "CLE"}, Names{"CLR"}},
		{[]string{"CLA", "CLE", "CME"}, Names{"CLR", "CME"}},
		{[]string{"CLA", "CME"}, Names{"CCE"}},
		{[]string{"INC", "CLE"}, Names{"CLI"}},
		{[]string{"INC", "CME", "CLE"}, Names{"CLI", "CME"}},
		{[]string{"CLA"}, Names{"CLA"}},
	}

	for _, test := range tests {
		assert.Equal(test.want, Default.Simplify(NewNames(test.in...)), "%v", test.in)
	}
}

func TestSimplify_Primitives(t *testing.T) {
	assert := assert.New(t)

	for n, op := range Default.Primitives {
		assert.Equal(op.Names, Default.Simplify(op.Names))
		assert.Equal(uint32(1)<<(11-n), op.Code, "%v", op)
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	assert := assert.New(t)

	for _, op := range allOps(Default) {
		once := Default.Simplify(op.Names)
		assert.Equal(once, Default.Simplify(once), "%v", op)
	}
}

func TestSimplify_SinglePass(t *testing.T) {
	assert := assert.New(t)

	// A later rule producing an earlier rule's source does not re-run it.
	tbl := &Table{Rules: []Rule{
		{"AB", []string{"A", "B"}},
		{"A", []string{"C", "D"}},
	}}
	assert.Equal(Names{"A", "B"}, tbl.Simplify(NewNames("B", "C", "D")))
}

func TestName(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		names []string
		want  string
	}{
		{[]string{"CLA", "CLE"}, "XCLR"},
		{[]string{"SPA", "SNA"}, "XSKP"},
		{[]string{"CLA", "SPA"}, "PALA"},
		{[]string{"INC", "SPA"}, "PAIN"},
		{[]string{"CLA", "CLE", "SPA"}, "PALR"},
		{[]string{"INC", "SZA", "SZE"}, "AEIN"},
		{[]string{"CLA", "SNA", "SZA", "SZE"}, "QELA"},
		{[]string{"CME", "INC", "SPA", "SNA"}, "KPMI"},
		{[]string{"CLA"}, "XCLA"},
	}

	for _, test := range tests {
		assert.Equal(test.want, Default.Name(compose(t, test.names...)), "%v", test.names)
	}
}

func TestLine(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("`ASM_REG_EXT_INSTR(XCLR, 12'b110000000000)", Default.Line(compose(t, "CLA", "CLE")))
	assert.Equal("`ASM_REG_EXT_INSTR(ZEIR, 12'b000010000010)", Default.Line(compose(t, "CIR", "SZE")))

	// A lone primitive is never a skip-action pair.
	for _, op := range Default.Primitives {
		want := "`ASM_REG_EXT_INSTR(X" + op.Names[0] + ", " + Default.Literal(op.Code) + ")"
		assert.Equal(want, Default.Line(op))
	}
}

func TestLiteral(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("12'b000000000010", Default.Literal(2))
	assert.Equal("12'b100000000000", Default.Literal(1<<11))
	assert.Equal("4'b0011", (&Table{Width: 4}).Literal(3))
}

func TestNames_Fragment(t *testing.T) {
	assert := assert.New(t)

	fragment, ok := NewNames("CLR").fragment(SKIP_PREFIX)
	assert.False(ok)
	assert.Equal("", fragment)

	fragment, ok = NewNames("CLR", "SKP", "SZE").fragment(SKIP_PREFIX)
	assert.True(ok)
	assert.Equal("KP", fragment)

	// Only the first match counts, even when empty.
	fragment, ok = NewNames("S", "SKP").fragment(SKIP_PREFIX)
	assert.False(ok)
	assert.Equal("", fragment)
}

func TestName_Fallback(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		names []string
		want  string
	}{
		// No skip: fallback form.
		{[]string{"CLA", "CLE"}, "XCLR"},
		{[]string{"CMA", "CME"}, "XCMP"},
		// No action: fallback form.
		{[]string{"SPA", "SNA"}, "XSKP"},
		{[]string{"SNA", "SZA"}, "XSQA"},
		// Increment is the action when nothing else is.
		{[]string{"INC", "SPA"}, "PAIN"},
		{[]string{"INC", "SZE"}, "ZEIN"},
	}

	for _, test := range tests {
		assert.Equal(test.want, Default.Name(compose(t, test.names...)), "%v", test.names)
	}

	// Fallback joins the simplified set in sorted order.
	tbl := &Table{}
	assert.Equal("XCLAINC", tbl.Name(Op{Names: NewNames("INC", "CLA")}))
	assert.Equal("XINC", tbl.Name(Op{Names: NewNames("INC")}))
}
