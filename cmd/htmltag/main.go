package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/htmltag-dev/htmltag/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬ ┬┌┬┐┌┬┐┬  ┌┬┐┌─┐┌─┐
  ├─┤ │ ││││   │ ├─┤│ ┬
  ┴ ┴ ┴ ┴ ┴┴─┘ ┴ ┴ ┴└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "htmltag",
		Short: "The chainable HTML builder for Go",
		Long: `htmltag builds HTML as typed Go values.

Compose pages from chainable tags on the server and render them
to clean HTML strings. Features include:

  • Chainable element and attribute builders
  • Ordered attributes with deduplicated classes
  • Compact or pretty rendering, escaped or verbatim
  • Live fragments pushed over WebSocket
  • Static export to a directory or S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands
	rootCmd.AddCommand(
		initCmd(),
		serveCmd(),
		exportCmd(),
		inspectCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the htmltag ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
