package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cpcf/iconforge/assets"
	"github.com/cpcf/iconforge/config"
	"github.com/cpcf/iconforge/engine"
	"github.com/cpcf/iconforge/processors"
	"github.com/cpcf/iconforge/write"
)

type rootOptions struct {
	configPath string
	verbose    bool
	dryRun     bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "iconforge",
		Short: "Generate Vue icon components",
		Long: `iconforge turns an icon catalog into Vue components.

For every icon it writes an ES module under <output>/esm and a CommonJS
module under <output>, each with a TypeScript declaration, plus index
modules re-exporting all icons. Without flags the built-in catalog and
template are used and the tree is written to ./dist.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every artifact")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "list the artifacts without writing them")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, opts rootOptions) error {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger := newLogger(stderr, opts.verbose)

	var writer write.Writer = write.NewDiskWriter()
	memory := write.NewMemoryWriter()
	if opts.dryRun {
		writer = memory
	}

	engineOpts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithOutputRoot(cfg.Output),
		engine.WithConcurrency(cfg.Concurrency),
		engine.WithWriter(writer),
	}
	if cfg.Banner != "" {
		engineOpts = append(engineOpts, engine.WithPostProcessor(processors.NewBanner(cfg.Banner)))
	}

	src := engine.Source{
		CatalogFS:  assets.FS,
		Catalog:    assets.CatalogPath,
		TemplateFS: assets.FS,
		Template:   assets.TemplatePath,
	}
	if cfg.Catalog != "" {
		src.CatalogFS, src.Catalog = fileSource(cfg.Catalog)
	}
	if cfg.Template != "" {
		src.TemplateFS, src.Template = fileSource(cfg.Template)
	}

	fmt.Fprintln(stdout, "Building...")

	report, err := engine.New(engineOpts...).Generate(ctx, src, cfg.ModuleFormats()...)
	if err != nil {
		return err
	}

	if opts.dryRun {
		for _, change := range memory.Changes() {
			fmt.Fprintf(stdout, "%s (%d bytes)\n", change.Path, change.Size)
		}
	}

	logger.Debug("build report", "run", report.RunID, "icons", report.Icons, "duration", report.Duration)
	fmt.Fprintln(stdout, "Finished.")
	return nil
}

// fileSource exposes a single host file as an fs.FS rooted at its directory.
func fileSource(path string) (fs.FS, string) {
	return os.DirFS(filepath.Dir(path)), filepath.Base(path)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		Prefix:          "iconforge",
	})
	return slog.New(handler)
}
