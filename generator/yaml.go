package generator

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Entry is one combination in a Listing.
type Entry struct {
	Name      string   `yaml:"name"`
	Code      string   `yaml:"code"`
	Mnemonics []string `yaml:"mnemonics,flow"`
}

// Group holds the combinations of one size.
type Group struct {
	Size    int     `yaml:"size"`
	Entries []Entry `yaml:"entries"`
}

// Listing is the machine-readable form of an enumeration.
type Listing struct {
	Macro  string  `yaml:"macro"`
	Width  int     `yaml:"width"`
	Groups []Group `yaml:"groups"`
}

// Listing collects every group of the enumeration.
func (gen *Generator) Listing() (listing Listing) {
	tbl := gen.Table

	listing.Macro = tbl.Macro
	listing.Width = tbl.Width

	for size, ops := range gen.Groups() {
		group := Group{Size: size}
		for _, op := range ops {
			group.Entries = append(group.Entries, Entry{
				Name:      tbl.Name(op),
				Code:      tbl.Literal(op.Code),
				Mnemonics: op.Names,
			})
		}
		listing.Groups = append(listing.Groups, group)
	}

	return
}

// WriteYAML writes the Listing to w.
func (gen *Generator) WriteYAML(w io.Writer) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err = enc.Encode(gen.Listing())
	if err != nil {
		return
	}

	return enc.Close()
}
