package app

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Catalog writes every known template and its properties to w.
func (a *App) Catalog(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEMPLATE\tPROPERTY\tKIND\tTYPE\tDEFAULT")
	for _, n := range a.library.Schema().Nodes() {
		props := n.Properties()
		if len(props) == 0 {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\n", n.ID())
			continue
		}
		for _, p := range props {
			dataType, def := "-", "-"
			if dt, ok := p.DataType(); ok {
				dataType = dt.String()
			}
			if v, ok := p.Default(); ok {
				def = v.String()
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", n.ID(), p.ID(), p.Kind(), dataType, def)
		}
	}
	return tw.Flush()
}
