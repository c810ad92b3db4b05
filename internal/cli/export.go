package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [flags]",
	Short: "Export the catalog as a JSON document",
	Long: `Export the whole catalog as a pretty-printed JSON array, suitable for
re-importing with "scm import" on another machine.

Examples:
  # Write the catalog to a file
  scm export -o marketplace.json

  # Write the catalog to stdout
  scm export`,
	Args: cobra.NoArgs,
	RunE: exportCatalog,
}

// exportCatalog serializes the catalog to the output file or stdout.
func exportCatalog(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	data, xerr := store.Export(ctx)
	if xerr != nil {
		return xerr
	}

	if output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	if !jsonOutput {
		okLabel.Printf("✓ ")
		fmt.Printf("Exported %s\n", output)
	} else {
		printJSON(map[string]string{"exported": output})
	}
	return nil
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Path of the export file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
