package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seismiclabs/marketplace/internal/marketplace/catalog"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show the details of a catalog entry",
	Long: `Show the details of a catalog entry: description, author, contract
address, all released versions newest-first, and rating.

Examples:
  # Show a listing
  scm show 0198f2a4-7e11-7c3a-b1de-3f6a2c9d4e10

  # Show a listing as JSON
  scm show 0198f2a4-7e11-7c3a-b1de-3f6a2c9d4e10 -j`,
	Args: cobra.ExactArgs(1),
	RunE: showListing,
}

// showListing renders the full detail view of one listing.
func showListing(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	listing, gerr := store.Get(args[0])
	if gerr != nil {
		return gerr
	}

	if jsonOutput {
		printJSON(listing)
		return nil
	}

	okLabel.Printf("%s\n", listing.Name)
	author := listing.Author
	if author == "" {
		author = "Unknown author"
	}
	fmt.Printf("%s", author)
	if listing.Website != "" {
		fmt.Printf(" · %s", listing.Website)
	}
	fmt.Println()
	fmt.Printf("[%s · %s", listing.Fee.Label(), listing.License)
	if listing.Verified {
		fmt.Printf(" · Verified")
	}
	fmt.Println("]")

	if listing.Description != "" {
		fmt.Printf("\n%s\n", listing.Description)
	}
	if listing.Address != "" {
		fmt.Printf("\nContract: %s\n", listing.Address)
	}

	latest := listing.Latest()
	fmt.Println("\nVersions:")
	for _, v := range catalog.SortDesc(listing.Versions) {
		line := "  " + v.Version
		if v.URL != "" {
			line += "  " + v.URL
		}
		if v.Checksum != "" {
			line += " · " + v.Checksum
		}
		if latest != nil && latest.Version == v.Version {
			line += " (latest)"
		}
		fmt.Println(line)
	}

	fmt.Printf("\nRating: %.2f · %d\n", listing.Rating.Avg, listing.Rating.Count)
	if len(listing.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(listing.Tags, ", "))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
