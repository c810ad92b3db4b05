// Package cli implements the marketplace command line interface. It is the
// presentation layer of the application: commands collect the user's filter
// state and form input, call into the catalog store and query engine, and
// render the results.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seismiclabs/marketplace/internal/common/logtrace"
	"github.com/seismiclabs/marketplace/internal/marketplace/config"
)

var (
	// Global flags
	jsonOutput bool
	configFile string
)

var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scm [command] [flags]",
	Short: "Seismic contract marketplace - a local catalog of published contracts",
	Long: `scm is a local catalog of published contract listings. It stores the
catalog in a single-file local database and lets you search, filter, sort,
publish new listings, rate existing ones, and move the whole dataset between
machines as JSON.

Examples:
  # Browse the catalog, trending first
  scm list

  # Search listings matching "oracle" with an MIT license
  scm list -s oracle --license MIT

  # Publish a listing from a file
  scm publish -f listing.yaml

  # Rate a listing
  scm rate 0198f2a4-7e11-7c3a-b1de-3f6a2c9d4e10 5

  # Move the catalog between machines
  scm export -o marketplace.json
  scm import -f marketplace.json`,
	PersistentPreRun: preRunHandlePersistents,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	// Set up persistent flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Path to configuration file to override default")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")

	// Add commands
	rootCmd.AddCommand(newVersionCmd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error

	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, ErrAlreadyHandled) {
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(map[string]string{"error": err.Error()})
		} else {
			errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// preRunHandlePersistents loads configuration and applies the configured
// log level before any command runs.
func preRunHandlePersistents(cmd *cobra.Command, args []string) {
	if err := config.LoadConfig(configFile); err != nil {
		errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logtrace.SetLevel(config.Config().LogLevel)
}

// newVersionCmd creates and returns a new version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of the marketplace CLI",
		Run: func(cmd *cobra.Command, args []string) {
			configPath, err := config.DefaultConfigPath()
			if err != nil {
				configPath = "unknown"
			}

			if jsonOutput {
				printJSON(map[string]string{
					"version":     getCLIVersion(),
					"config_file": configPath,
				})
			} else {
				cmd.Printf("scm %s\n", getCLIVersion())
				cmd.Printf("Config file: %s\n", configPath)
			}
		},
	}
}

// printJSON prints the given value as JSON to stdout
func printJSON(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}

// getCLIVersion returns the current CLI version
func getCLIVersion() string {
	return "v0.1.0"
}
