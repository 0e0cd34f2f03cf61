package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/shortpath/cmd/shortpath/app/options"
	"github.com/katalvlaran/shortpath/navigator"
)

func writeRoute(w io.Writer, format string, r *navigator.Route) error {
	switch format {
	case options.OutputJSON:
		return writeJSON(w, r)
	case options.OutputYAML:
		return writeYAML(w, r)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tDISTANCE\tHOPS\tPATH")
	fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Algorithm.DisplayName(), r.Distance, len(r.Path)-1, strings.Join(r.Path, " -> "))

	return tw.Flush()
}

func writeTable(w io.Writer, format string, t *navigator.Table) error {
	switch format {
	case options.OutputJSON:
		return writeJSON(w, t)
	case options.OutputYAML:
		return writeYAML(w, t)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(t.Names, "\t"))
	for i, row := range t.Dist {
		cells := make([]string, len(row))
		for j, d := range row {
			cells[j] = d.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", t.Names[i], strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(t.NegativeCycle) > 0 {
		fmt.Fprintf(w, "negative cycle through: %s\n", strings.Join(t.NegativeCycle, ", "))
	}

	return nil
}

func writeReach(w io.Writer, format string, reached []navigator.Reach) error {
	switch format {
	case options.OutputJSON:
		return writeJSON(w, reached)
	case options.OutputYAML:
		return writeYAML(w, reached)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCATION\tHOPS\tVIA")
	for _, r := range reached {
		via := r.Via
		if via == "" {
			via = "-"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Location, r.Hops, via)
	}

	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(out)

	return err
}
