package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// rateCmd represents the rate command
var rateCmd = &cobra.Command{
	Use:   "rate ID VALUE",
	Short: "Rate a catalog entry",
	Long: `Submit a rating from 1 to 5 for a catalog entry. Ratings are anonymous
and permanent; each submission is folded into the listing's running average.

Examples:
  # Rate a listing 5 stars
  scm rate 0198f2a4-7e11-7c3a-b1de-3f6a2c9d4e10 5`,
	Args: cobra.ExactArgs(2),
	RunE: rateListing,
}

// rateListing folds the submitted value into the listing's rating.
func rateListing(cmd *cobra.Command, args []string) error {
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("rating must be an integer between 1 and 5")
	}

	ctx := cmd.Context()
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.ApplyRating(ctx, args[0], value); err != nil {
		return err
	}

	listing, gerr := store.Get(args[0])
	if gerr != nil {
		// unknown id is a silent no-op in the store; tell the user here
		return gerr
	}

	if jsonOutput {
		printJSON(map[string]any{
			"id":    listing.ID,
			"avg":   listing.Rating.Avg,
			"count": listing.Rating.Count,
		})
	} else {
		okLabel.Printf("✓ ")
		fmt.Printf("Rated %s: now %.2f from %d ratings\n", listing.Name, listing.Rating.Avg, listing.Rating.Count)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(rateCmd)
}
