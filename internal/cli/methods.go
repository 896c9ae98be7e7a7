package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tablekit/tablekit/pkg/config"
)

func newMethodsCommand() *cobra.Command {
	var vars map[string]string

	cmd := &cobra.Command{
		Use:   "methods <table> [method]",
		Short: "Show resolved dialect method configuration",
		Long: `Methods shows the stored per-method parameter bags of a table, with
template variables expanded when --var is given. With a method name it
prints just that method's bag.`,
		Example: `  # Show all method configuration for a table
  tablekit methods events

  # Show one method, expanded
  tablekit methods events copy_from_s3 --var date=2024-01-15`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			tableName := args[0]
			tcfg, err := doc.Table(tableName)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 2 {
				method := args[1]
				bag, ok, err := doc.MethodConfig(tableName, method, vars)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("table %q has no configuration for method %q", tableName, method)
				}
				return yaml.NewEncoder(out).Encode(map[string]any{method: map[string]any(bag)})
			}

			if len(tcfg.DialectMethods) == 0 {
				fmt.Fprintf(out, "table %q has no dialect method configuration\n", tableName)
				return nil
			}
			rendered := make(map[string]any, len(tcfg.DialectMethods))
			for method := range tcfg.DialectMethods {
				bag, _, err := doc.MethodConfig(tableName, method, vars)
				if err != nil {
					return err
				}
				rendered[method] = map[string]any(bag)
			}
			return yaml.NewEncoder(out).Encode(rendered)
		},
	}

	cmd.Flags().StringToStringVar(&vars, "var", nil, "Template variable (repeatable, name=value)")

	return cmd
}
