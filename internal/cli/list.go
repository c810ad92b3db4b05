package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/seismiclabs/marketplace/internal/marketplace/catalog"
)

var (
	// List command flags
	listSearch  string
	listLicense string
	listFee     string
	listSort    string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [flags]",
	Short: "List catalog entries",
	Long: `List catalog entries, filtered and sorted. All filters combine; an empty
filter matches everything.

Sort modes: trending (default), rating, newest, name.

Examples:
  # Everything, trending first
  scm list

  # Free DeFi tooling
  scm list -s defi --fee free

  # Apache-licensed listings by rating
  scm list --license Apache-2.0 --sort rating

  # Machine-readable output
  scm list -j`,
	Args: cobra.NoArgs,
	RunE: listListings,
}

// listListings queries the catalog with the current filter flags and
// renders the result.
func listListings(cmd *cobra.Command, args []string) error {
	sortMode, err := catalog.ParseSortMode(listSort)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	filter := catalog.Filter{
		Text:    listSearch,
		License: listLicense,
		FeeType: listFee,
		Sort:    sortMode,
	}
	results := newRanker().Query(store.Listings(), filter, time.Now())

	if jsonOutput {
		printJSON(results)
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No listings match.")
		return nil
	}

	for i := range results {
		printListingLine(&results[i])
	}
	return nil
}

// printListingLine renders one listing as a compact card line.
func printListingLine(l *catalog.Listing) {
	badges := []string{l.Fee.Label()}
	if l.License != "" {
		badges = append(badges, l.License)
	}
	if l.Verified {
		badges = append(badges, "Verified")
	}

	version := ""
	if latest := l.Latest(); latest != nil {
		version = " v" + latest.Version
	}

	okLabel.Printf("%s%s", l.Name, version)
	fmt.Printf("  [%s]\n", strings.Join(badges, " · "))
	if l.Description != "" {
		fmt.Printf("    %s\n", l.Description)
	}
	fmt.Printf("    %.2f · %d ratings · %s · id %s\n", l.Rating.Avg, l.Rating.Count, l.Author, l.ID)
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Free-text search over name, description, category, author, and tags")
	listCmd.Flags().StringVarP(&listLicense, "license", "", "", "Exact license filter (e.g. MIT)")
	listCmd.Flags().StringVarP(&listFee, "fee", "", "", "Fee type filter: free, one_time, subscription, rev_share")
	listCmd.Flags().StringVarP(&listSort, "sort", "", "", "Sort mode: trending, rating, newest, name")
	rootCmd.AddCommand(listCmd)
}
