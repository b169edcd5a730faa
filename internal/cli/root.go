// Package cli implements the regext command line.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ezrec/regext/generator"
	"github.com/ezrec/regext/micro"
)

// RootOptions holds the flags of the root command.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "yaml"
	Table   string // Starlark table description, empty for the built-in table.
	Output  string // Output file, "-" or empty for stdout.
}

// NewRootCommand creates the regext command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "regext",
		Short: "Generate the register-reference extension macros",
		Long: `Enumerate every legal combination of the extended register
micro-operations and print one macro definition per combination.

The built-in table may be replaced with a Starlark description (see
--table); the output is the header block followed by the macro lines.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(generator.FORMATS, opts.Format) {
				return generator.ErrFormat(opts.Format)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(opts, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output on stderr")
	cmd.Flags().StringVar(&opts.Format, "format", generator.FORMAT_TEXT, fmt.Sprintf("output format %v", generator.FORMATS))
	cmd.Flags().StringVarP(&opts.Table, "table", "t", "", "Starlark table description")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "-", "output file")

	return cmd
}

func runRoot(opts *RootOptions, cmd *cobra.Command) (err error) {
	if opts.Verbose {
		log.SetOutput(cmd.ErrOrStderr())
	}

	tbl := micro.Default
	if len(opts.Table) != 0 {
		tbl, err = micro.LoadFile(opts.Table)
		if err != nil {
			return fmt.Errorf("%v: %w", opts.Table, err)
		}
		if opts.Verbose {
			log.Printf("regext: %v: %d primitives, %d rules", opts.Table, len(tbl.Primitives), len(tbl.Rules))
		}
	}

	gen := generator.NewGenerator(tbl)
	gen.Verbose = opts.Verbose

	var w io.Writer = cmd.OutOrStdout()
	if len(opts.Output) != 0 && opts.Output != "-" {
		ouf, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer ouf.Close()
		w = ouf
	}

	return gen.Write(w, opts.Format)
}
