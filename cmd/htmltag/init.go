package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/htmltag-dev/htmltag/internal/config"
	"github.com/htmltag-dev/htmltag/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		name  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an htmltag.json in the current directory",
		Long: `Create a default htmltag.json configuration file.

The generated file covers the fragment server, HTML rendering,
static export, and logging sections with their defaults filled in.

Examples:
  htmltag init
  htmltag init --name=my-site`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(name, force)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing htmltag.json")

	return cmd
}

func runInit(name string, force bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	if config.Exists(wd) && !force {
		return errors.Newf(errors.CategoryCLI, "htmltag.json already exists").
			WithSuggestion("Use --force to overwrite it")
	}

	if name == "" {
		name = filepath.Base(wd)
	}

	cfg := config.New()
	cfg.Name = name

	path := filepath.Join(wd, config.ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		return err
	}

	success("Created %s", config.ConfigFileName)
	fmt.Println()
	fmt.Println("  To get started:")
	fmt.Println()
	fmt.Println("    htmltag serve")
	fmt.Println()
	fmt.Printf("  The gallery will be running at %s\n", cfg.URL())
	fmt.Println()

	return nil
}
