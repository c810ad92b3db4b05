package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset [flags]",
	Short: "Discard local data and reload the seed catalog",
	Long: `Discard the persisted catalog and reload the built-in seed dataset.
This cannot be undone; export first if the current catalog matters.

Examples:
  # Reset after confirming interactively
  scm reset

  # Reset without a prompt
  scm reset --yes`,
	Args: cobra.NoArgs,
	RunE: resetCatalog,
}

// resetCatalog confirms with the user and resets the store to seed data.
func resetCatalog(cmd *cobra.Command, args []string) error {
	if !resetYes {
		fmt.Print("Clear local data and reload seed? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx := cmd.Context()
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if rerr := store.ResetToSeed(ctx); rerr != nil {
		return rerr
	}

	if jsonOutput {
		printJSON(map[string]any{"reset": true, "count": len(store.Listings())})
	} else {
		okLabel.Printf("✓ ")
		fmt.Printf("Catalog reset to %d seed listings\n", len(store.Listings()))
	}
	return nil
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
