package cli

import (
	"fmt"
	"os"

	"github.com/h2non/filetype"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import -f FILENAME",
	Short: "Replace the catalog with an imported JSON document",
	Long: `Replace the whole catalog with the contents of a JSON file, as produced
by "scm export". The document must be a top-level JSON array; on any failure
the existing catalog is left untouched.

Examples:
  # Import a catalog exported elsewhere
  scm import -f marketplace.json`,
	RunE: importCatalog,
}

// importCatalog reads the document and hands it to the store.
func importCatalog(cmd *cobra.Command, args []string) error {
	filename, err := cmd.Flags().GetString("filename")
	if err != nil {
		return err
	}
	if filename == "" {
		return fmt.Errorf("filename is required")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	// Catch binaries handed over by mistake before parsing; JSON does not
	// match any known file signature.
	if kind, _ := filetype.Match(data); kind != filetype.Unknown {
		return fmt.Errorf("%s looks like a %s file, not JSON", filename, kind.Extension)
	}

	ctx := cmd.Context()
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if ierr := store.ImportAll(ctx, data); ierr != nil {
		return fmt.Errorf("import failed: %s", ierr.ErrorAll())
	}

	count := len(store.Listings())
	if jsonOutput {
		printJSON(map[string]any{"imported": count})
	} else {
		okLabel.Printf("✓ ")
		fmt.Printf("Imported %d listings\n", count)
	}
	return nil
}

func init() {
	importCmd.Flags().StringP("filename", "f", "", "Path to the JSON document to import")
	rootCmd.AddCommand(importCmd)
}
