package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablekit/tablekit/pkg/config"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the table configuration file",
		Long: `Validate loads the configuration file, runs schema validation and the
defaulting cascade, and reports the result. A non-zero exit status
means the document is invalid.`,
		Example: `  # Validate the default tables.yaml
  tablekit validate

  # Validate a specific file
  tablekit validate -c configs/warehouse.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			names := doc.TableNames()
			for _, name := range names {
				if _, err := doc.Table(name); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d tables)\n", cfgFile, len(names))
			return nil
		},
	}
}
