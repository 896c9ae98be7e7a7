package cli

import (
	"encoding/json"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newTablesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List configured tables",
		Long: `List every table in the configuration file with its dialect, schema,
and column count.`,
		Example: `  # List tables
  tablekit tables

  # List tables as JSON
  tablekit tables --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := openRegistry()
			if err != nil {
				return err
			}

			type row struct {
				Name    string `json:"name"`
				Dialect string `json:"dialect"`
				Schema  string `json:"schema"`
				Columns int    `json:"columns"`
			}

			var rows []row
			for _, name := range reg.List() {
				t, err := reg.Get(name)
				if err != nil {
					return err
				}
				schema := ""
				if parts := strings.SplitN(t.QualifiedName(), ".", 2); len(parts) == 2 {
					schema = parts[0]
				}
				rows = append(rows, row{
					Name:    name,
					Dialect: string(t.Dialect()),
					Schema:  schema,
					Columns: len(t.Columns()),
				})
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			w := table.NewWriter()
			w.SetOutputMirror(cmd.OutOrStdout())
			w.SetStyle(table.StyleLight)
			w.AppendHeader(table.Row{"Table", "Dialect", "Schema", "Columns"})
			for _, r := range rows {
				w.AppendRow(table.Row{r.Name, r.Dialect, r.Schema, r.Columns})
			}
			w.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format (text|json)")

	return cmd
}
