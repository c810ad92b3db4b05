package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/seismiclabs/marketplace/internal/marketplace/catalog"
)

var ignoreErrors bool

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish -f FILENAME [flags]",
	Short: "Publish listings from a file",
	Long: `Publish one or more listings from a YAML or JSON file. A YAML file may
contain multiple documents separated by ---; each document is one listing
submission. Values may reference environment variables with {{ .ENV.NAME }},
resolved from the shell or a .env file in the working directory.

A submission must carry name, author, license, a download url, and a version
in MAJOR.MINOR.PATCH form.

Example listing file:

  name: Walnut Vault
  author: Walnut Labs
  license: MIT
  version: 1.0.0
  url: https://example.org/walnut/v1.0.0
  feeType: free
  tags: [storage, privacy]

Examples:
  # Publish a single listing
  scm publish -f listing.yaml

  # Publish several listings, continuing past failures
  scm publish -f listings.yaml --ignore-errors`,
	RunE: publishListings,
}

// publishListings reads the submissions from the file and publishes each in
// document order.
func publishListings(cmd *cobra.Command, args []string) error {
	filename, err := cmd.Flags().GetString("filename")
	if err != nil {
		return err
	}
	if filename == "" {
		return fmt.Errorf("filename is required")
	}

	docs, err := ParseMultiYAML(filename)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no listings found in %s", filename)
	}

	ctx := cmd.Context()
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	var statusValues []map[string]any
	failed := false
	for _, doc := range docs {
		req, err := decodePublishRequest(doc)
		if err != nil {
			failed = true
			statusValues = append(statusValues, map[string]any{"published": false, "error": err.Error()})
			if !ignoreErrors {
				break
			}
			continue
		}

		listing, perr := store.Publish(ctx, req)
		if perr != nil {
			failed = true
			statusValues = append(statusValues, map[string]any{
				"published": false,
				"name":      req.Name,
				"error":     perr.ErrorAll(),
			})
			if !ignoreErrors {
				break
			}
			continue
		}
		statusValues = append(statusValues, map[string]any{
			"published": true,
			"name":      listing.Name,
			"id":        listing.ID,
		})
	}

	if jsonOutput {
		printJSON(statusValues)
	} else {
		for _, status := range statusValues {
			if status["published"].(bool) {
				okLabel.Fprintf(os.Stdout, "[OK] ")
				fmt.Fprintf(os.Stdout, "Published: %s (%s)\n", status["name"], status["id"])
			} else {
				errorLabel.Fprintf(os.Stderr, "[ERROR] ")
				fmt.Fprintf(os.Stderr, "%v\n", status["error"])
			}
		}
	}

	if failed {
		return ErrAlreadyHandled
	}
	return nil
}

// decodePublishRequest converts one parsed YAML document into a publish
// submission.
func decodePublishRequest(doc map[string]any) (*catalog.PublishRequest, error) {
	yamlBytes, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize listing: %w", err)
	}
	jsonBytes, err := yaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return nil, fmt.Errorf("unable to convert listing to JSON: %w", err)
	}
	var req catalog.PublishRequest
	if err := json.Unmarshal(jsonBytes, &req); err != nil {
		return nil, fmt.Errorf("unable to parse listing: %w", err)
	}
	return &req, nil
}

func init() {
	publishCmd.Flags().StringP("filename", "f", "", "Path to the listing file (YAML or JSON)")
	publishCmd.Flags().BoolVarP(&ignoreErrors, "ignore-errors", "", false, "Continue publishing remaining documents after a failure")
	rootCmd.AddCommand(publishCmd)
}
