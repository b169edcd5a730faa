package generator

import (
	"fmt"
	"strings"
)

// headerFormat documents the generated macro. Arguments: macro, width, width.
const headerFormat = `/**
* Define a extended register instruction with given name and operand. The
* resulting expression would have an opcode of 7, an addressing mode of 0, and
* the given operand. The macro ` + "`" + `ASM_<name>` + "`" + ` would insert this instruction at
* the current address.
*
* @param __ASM_NAME__ - name of instruction. It should be a valid identifier.
* @param __ASM_OPR__ - operand. It should be a %[2]d bit integer expression.
*/
` + "`" + `define %[1]v(__ASM_NAME__, __ASM_OPR__) \
` + "`" + `define ASM_` + "``" + `__ASM_NAME__                       \ \
    ` + "`" + `ASM_DATA({4'o07, %[3]d'(__ASM_OPR__)}, 1)

// Register-reference Extension
`

// Header returns the comment block and macro definition preceding the
// generated lines, one string per line.
func (gen *Generator) Header() []string {
	text := fmt.Sprintf(headerFormat, gen.Table.Macro, gen.Table.Width, gen.Table.Width)
	return strings.Split(text, "\n")
}
