package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tablekit/tablekit/pkg/table"
)

func newRenderCommand() *cobra.Command {
	var ops []string

	cmd := &cobra.Command{
		Use:   "render <table>",
		Short: "Render SQL statements for a table",
		Long: `Render generic SQL statements for one configured table in its dialect.

Supported operations: create, indexes, drop, truncate, select, insert,
update, delete.`,
		Example: `  # Render CREATE TABLE plus indexes (the default)
  tablekit render users

  # Render specific operations
  tablekit render users --op create --op insert`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openRegistry()
			if err != nil {
				return err
			}
			t, err := reg.Get(args[0])
			if err != nil {
				return err
			}

			if len(ops) == 0 {
				ops = []string{"create", "indexes"}
			}
			for _, op := range ops {
				stmts, err := renderOp(t, op)
				if err != nil {
					return err
				}
				for _, s := range stmts {
					fmt.Fprintln(cmd.OutOrStdout(), s.SQL()+";")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&ops, "op", nil, "Operation to render (repeatable)")

	return cmd
}

func renderOp(t table.SQLTable, op string) ([]table.Statement, error) {
	switch strings.ToLower(op) {
	case "create":
		s, err := t.Create()
		if err != nil {
			return nil, err
		}
		return []table.Statement{s}, nil
	case "indexes":
		return t.CreateIndexes(), nil
	case "drop":
		return []table.Statement{t.Drop()}, nil
	case "truncate":
		return []table.Statement{t.Truncate()}, nil
	case "select":
		s, err := t.Select()
		if err != nil {
			return nil, err
		}
		return []table.Statement{s}, nil
	case "insert":
		s, err := t.Insert()
		if err != nil {
			return nil, err
		}
		return []table.Statement{s}, nil
	case "update":
		s, err := t.Update()
		if err != nil {
			return nil, err
		}
		return []table.Statement{s}, nil
	case "delete":
		s, err := t.Delete()
		if err != nil {
			return nil, err
		}
		return []table.Statement{s}, nil
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}
