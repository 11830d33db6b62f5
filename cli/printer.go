package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/view"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
)

// absent is shown in place of optional values that are not set.
const absent = "---"

var listColumns = []asset.Field{
	asset.FieldID,
	asset.FieldName,
	asset.FieldState,
	asset.FieldBorrower,
	asset.FieldEmail,
	asset.FieldRequested,
	asset.FieldDue,
	asset.FieldStorageLocation,
	asset.FieldPurchaseDate,
	asset.FieldDescription,
}

type rowJSON struct {
	asset.Record
	State asset.State `json:"state"`
}

func printRows(w io.Writer, rows []view.Row, output string) error {
	if output == "json" {
		out := make([]rowJSON, 0, len(rows))
		for _, r := range rows {
			out = append(out, rowJSON{Record: r.Record, State: r.Presented})
		}
		return printJSON(w, out)
	}

	report := [][]string{header(listColumns)}
	for _, r := range rows {
		report = append(report, cells(r))
	}
	printer.Table(w, report)
	return nil
}

func header(fields []asset.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, strings.ToUpper(strings.ReplaceAll(f.String(), "_", " ")))
	}
	return out
}

func cells(r view.Row) []string {
	out := make([]string, 0, len(listColumns))
	for _, f := range listColumns {
		if f == asset.FieldState {
			out = append(out, colorState(r.Presented))
			continue
		}
		v, ok := r.Record.Value(f)
		if !ok || v == "" {
			v = absent
		}
		out = append(out, v)
	}
	return out
}

func colorState(s asset.State) string {
	switch s {
	case asset.StateAvailable:
		return term.Green(s.String())
	case asset.StateOverdue:
		return term.Red(s.String())
	case asset.StateCart:
		return term.Cyan(s.String())
	}
	return term.Yellow(s.String())
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
