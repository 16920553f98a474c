package config

import (
	"fmt"
	"io"
)

// RenderHelp writes the overview of all options of one category to the
// diagnostics stream, in registration order, preceded by the synthetic help
// entry.
func (c *Config) RenderHelp(kind Kind) {
	renderHelp(c.diag, c.reg, kind)
}

func renderHelp(w io.Writer, reg *registry, kind Kind) {
	fmt.Fprintf(w, "Available %s options overview:\n\n== help ==\nshows this message\n", kind)
	for _, d := range reg.describe(kind) {
		fmt.Fprintf(w, "\n== %s ==\n%s\n", d.name, d.help)
	}
}
