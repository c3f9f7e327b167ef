package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/htmltag-dev/htmltag/internal/config"
	"github.com/htmltag-dev/htmltag/internal/errors"
	"github.com/htmltag-dev/htmltag/internal/gallery"
	"github.com/htmltag-dev/htmltag/pkg/publish"
	"github.com/htmltag-dev/htmltag/pkg/render"
)

func exportCmd() *cobra.Command {
	var (
		output      string
		bucket      string
		prefix      string
		region      string
		fingerprint bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the gallery as static files",
		Long: `Render every gallery page and write the result as static files.

Pages go to the output directory by default. When a bucket is
configured the pages are uploaded to S3 instead, with content
types and cache headers set per object. Assets are fingerprinted
and listed in a manifest.json unless --fingerprint=false.

Examples:
  htmltag export
  htmltag export --output=dist
  htmltag export --bucket=my-site --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(output, bucket, prefix, region, fingerprint)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from htmltag.json)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket to upload to (default from htmltag.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix (default from htmltag.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from htmltag.json)")
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", true, "Fingerprint assets and write a manifest")

	return cmd
}

func runExport(output, bucket, prefix, region string, fingerprint bool) error {
	// Load config
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if output != "" {
		cfg.Export.Output = output
	}
	if bucket != "" {
		cfg.Export.Bucket = bucket
	}
	if prefix != "" {
		cfg.Export.Prefix = prefix
	}
	if region != "" {
		cfg.Export.Region = region
	}

	logger := cfg.Logger()
	renderer := render.NewRenderer(cfg.RendererConfig())
	exporter := publish.NewExporter(renderer, logger)

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	var (
		dst      publish.Destination
		dest     string
		failCode string
	)
	if cfg.Export.Bucket != "" {
		opts := []func(*awsconfig.LoadOptions) error{}
		if cfg.Export.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Export.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return errors.New("E122").
				WithDetail("Could not load AWS credentials").
				Wrap(err)
		}
		dst = publish.NewBucket(s3.NewFromConfig(awsCfg), cfg.Export.Bucket, cfg.Export.Prefix)
		dest = "s3://" + cfg.Export.Bucket + "/" + cfg.Export.Prefix
		failCode = "E122"
	} else {
		dst = publish.NewDir(cfg.OutputPath())
		dest = cfg.Export.Output
		failCode = "E121"
	}

	fmt.Println("  Exporting gallery...")
	fmt.Println()

	// Store the style sheet first so pages can link its published name.
	var (
		paths    []string
		resolver publish.Resolver
	)
	man := publish.NewManifest()
	if fingerprint {
		fp, err := exporter.ExportAsset(ctx, dst, gallery.SheetPath, []byte(gallery.Sheet().String()), man)
		if err != nil {
			return errors.New(failCode).Wrap(err)
		}
		resolver = publish.NewResolver(man, "/")
		paths = append(paths, fp)
	} else {
		if err := exporter.ExportSheet(ctx, dst, gallery.SheetPath, gallery.Sheet()); err != nil {
			return errors.New(failCode).Wrap(err)
		}
		resolver = publish.NewPassthroughResolver("/")
		paths = append(paths, gallery.SheetPath)
	}

	pages := gallery.Pages(resolver)
	if err := exporter.Export(ctx, dst, pages); err != nil {
		return errors.New(failCode).Wrap(err)
	}
	for p := range pages {
		paths = append(paths, p)
	}

	if fingerprint {
		if err := exporter.ExportManifest(ctx, dst, man); err != nil {
			return errors.New(failCode).Wrap(err)
		}
		paths = append(paths, publish.ManifestPath)
	}

	// Print results
	sort.Strings(paths)
	fmt.Println()
	success("Exported %d files to %s", len(paths), dest)
	fmt.Println()
	fmt.Println("  Output:")
	fmt.Printf("    %s/\n", dest)
	for i, p := range paths {
		connector := "├──"
		if i == len(paths)-1 {
			connector = "└──"
		}
		fmt.Printf("    %s %s\n", connector, p)
	}
	fmt.Println()

	return nil
}
