package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/htmltag-dev/htmltag/internal/errors"
	"github.com/htmltag-dev/htmltag/internal/gallery"
	"github.com/htmltag-dev/htmltag/pkg/dump"
	"github.com/htmltag-dev/htmltag/pkg/fragment"
	"github.com/htmltag-dev/htmltag/pkg/render"
)

func inspectCmd() *cobra.Command {
	var (
		params   []string
		showHTML bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [fragment]",
		Short: "Print the tag tree of a fragment",
		Long: `Produce a registered fragment and print its tag tree.

Without an argument, lists the registered fragments. Params are
passed to the producer the same way query parameters are.

Examples:
  htmltag inspect
  htmltag inspect clock
  htmltag inspect greeting --param who=ada
  htmltag inspect items --param n=2 --html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runInspect(name, params, showHTML)
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "P", nil, "Fragment param as key=value (repeatable)")
	cmd.Flags().BoolVar(&showHTML, "html", false, "Also print the rendered HTML")

	return cmd
}

func runInspect(name string, rawParams []string, showHTML bool) error {
	reg := fragment.NewRegistry()
	if err := gallery.Register(reg); err != nil {
		return err
	}

	if name == "" {
		fmt.Println("  Registered fragments:")
		fmt.Println()
		for _, n := range reg.Names() {
			info(n)
		}
		fmt.Println()
		return nil
	}

	params := fragment.Params{}
	for _, kv := range rawParams {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return errors.Newf(errors.CategoryCLI, "invalid param %q", kv).
				WithSuggestion("Pass params as --param key=value")
		}
		params[k] = v
	}

	t, err := reg.Produce(context.Background(), name, params)
	if err != nil {
		if fragment.IsNotFound(err) {
			return errors.New("E161").
				WithDetail("No fragment named '" + name + "' is registered").
				WithSuggestion("Run 'htmltag inspect' to list registered fragments")
		}
		return err
	}
	if t == nil {
		info("fragment %q produced no output", name)
		return nil
	}

	fmt.Print(dump.Tree(t))
	nodes, depth := dump.Stats(t)
	fmt.Printf("  %d nodes, depth %d\n", nodes, depth)

	if showHTML {
		renderer := render.NewRenderer(render.Config{Pretty: true})
		html, err := renderer.RenderToString(t)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(html)
	}

	return nil
}
