package epochlog

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
)

// Records returns the table as strings, header first. Null cells are "-".
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, Columns())
	for _, row := range t.Rows {
		record := []string{strconv.Itoa(row.Epoch)}
		for _, v := range row.values() {
			record = append(record, formatCell(v))
		}
		records = append(records, record)
	}
	return records
}

func formatCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 4, 64)
}

func (t *Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, record := range t.Records() {
		if _, err := fmt.Fprintln(tw, strings.Join(record, "\t")+"\t"); err != nil {
			return errors.Wrap(err, "write table")
		}
	}
	return errors.Wrap(tw.Flush(), "flush table")
}

func (t *Table) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(t), "encode table")
}
