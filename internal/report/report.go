// Package report renders human-readable network summaries.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/born-ml/densenet/internal/nn"
)

// PrintLayers writes a table with one row per layer.
//
// The first column is the layer type, followed by every Info key reported by
// any layer in sorted order. Cells a layer does not report are left blank.
func PrintLayers(w io.Writer, layers []nn.Layer) error {
	infos := nn.Summarize(layers)
	columns := Columns(infos)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t")+"\t")
	for _, info := range infos {
		cells := make([]string, len(columns))
		for i, col := range columns {
			if v, ok := info[col]; ok {
				cells[i] = fmt.Sprint(v)
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	return tw.Flush()
}

// Columns returns "type" followed by the union of the other keys, sorted.
func Columns(infos []nn.Info) []string {
	seen := map[string]bool{"type": true}
	var rest []string
	for _, info := range infos {
		for _, k := range info.Keys() {
			if !seen[k] {
				seen[k] = true
				rest = append(rest, k)
			}
		}
	}
	sort.Strings(rest)
	return append([]string{"type"}, rest...)
}
