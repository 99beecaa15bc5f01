// Package engine drives an icon catalog through synthesis for each module
// format and writes every resulting artifact.
package engine

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cpcf/iconforge/barrel"
	"github.com/cpcf/iconforge/catalog"
	"github.com/cpcf/iconforge/format"
	"github.com/cpcf/iconforge/postprocess"
	"github.com/cpcf/iconforge/synth"
	"github.com/cpcf/iconforge/template"
	"github.com/cpcf/iconforge/write"
)

type Engine struct {
	logger         *slog.Logger
	outputRoot     string
	concurrency    int
	writer         write.Writer
	writeOptions   write.Options
	postprocessors *postprocess.Chain
}

func New(opts ...Option) *Engine {
	e := &Engine{
		logger:         slog.Default(),
		outputRoot:     "dist",
		concurrency:    runtime.NumCPU(),
		writer:         write.NewDiskWriter(),
		writeOptions:   write.DefaultOptions,
		postprocessors: postprocess.NewChain(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Artifact is one generated file.
type Artifact struct {
	Path    string
	Content string
}

// Report summarizes a build.
type Report struct {
	RunID     string
	Icons     int
	Artifacts map[format.Format]int
	Duration  time.Duration
}

// Source locates the inputs of a build.
type Source struct {
	CatalogFS  fs.FS
	Catalog    string
	TemplateFS fs.FS
	Template   string
}

// Root returns the directory artifacts of format f are written to.
func (e *Engine) Root(f format.Format) string {
	return filepath.Join(e.outputRoot, f.Dir())
}

// Generate loads the template and the catalog from src and builds them. Both
// inputs are fully validated before the first artifact is written.
func (e *Engine) Generate(ctx context.Context, src Source, formats ...format.Format) (*Report, error) {
	tpl, err := template.Load(src.TemplateFS, src.Template)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("loaded template", "path", src.Template)

	cat, err := catalog.Load(src.CatalogFS, src.Catalog)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("loaded catalog", "path", src.Catalog, "icons", cat.Len())

	return e.Build(ctx, cat, tpl, formats...)
}

// Build writes the components, declarations and barrels of cat for every
// format in formats (all formats when none are given). Formats are built
// concurrently and independently; within a format the first failure stops the
// remaining writes. Files written before a failure are left in place.
func (e *Engine) Build(ctx context.Context, cat catalog.Catalog, tpl *template.Template, formats ...format.Format) (*Report, error) {
	if len(formats) == 0 {
		formats = format.All
	}
	if err := checkFormats(formats); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Icons:     cat.Len(),
		Artifacts: make(map[format.Format]int, len(formats)),
	}
	logger := e.logger.With("run", report.RunID)
	start := time.Now()

	logger.Info("build started", "icons", cat.Len(), "formats", len(formats), "output", e.outputRoot)

	syn := synth.New(tpl)
	w := write.NewOnceWriter(e.writer)
	counts := make([]int, len(formats))

	var g errgroup.Group
	for i, f := range formats {
		g.Go(func() error {
			n, err := e.buildFormat(ctx, logger.With("format", f.String()), w, syn, cat, f)
			counts[i] = n
			return err
		})
	}
	err := g.Wait()

	for i, f := range formats {
		report.Artifacts[f] = counts[i]
	}
	report.Duration = time.Since(start)

	if err != nil {
		logger.Error("build failed", "error", err, "duration", report.Duration)
		return report, err
	}

	logger.Info("build finished", "duration", report.Duration)
	return report, nil
}

func (e *Engine) buildFormat(ctx context.Context, logger *slog.Logger, w write.Writer, syn *synth.Synthesizer, cat catalog.Catalog, f format.Format) (int, error) {
	root := e.Root(f)
	logger.Debug("building format", "root", root)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	var written atomic.Int64
	emit := func(a Artifact) error {
		if err := e.emit(gctx, logger, w, f, a); err != nil {
			return err
		}
		written.Add(1)
		return nil
	}

	for i := range cat.Len() {
		icon := cat.At(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			src, err := syn.Component(icon, f)
			if err != nil {
				return err
			}
			if err := emit(Artifact{Path: filepath.Join(root, icon.Name+format.SourceExt), Content: src}); err != nil {
				return err
			}
			return emit(Artifact{Path: filepath.Join(root, icon.Name+format.DeclarationExt), Content: syn.Declaration(icon)})
		})
	}

	// Barrels depend only on the catalog, not on the component files.
	g.Go(func() error {
		return emit(Artifact{Path: filepath.Join(root, "index"+format.SourceExt), Content: barrel.Build(cat, f, true)})
	})
	g.Go(func() error {
		return emit(Artifact{Path: filepath.Join(root, "index"+format.DeclarationExt), Content: barrel.Declarations(cat)})
	})

	if err := g.Wait(); err != nil {
		return int(written.Load()), err
	}

	logger.Info("format built", "root", root, "artifacts", written.Load())
	return int(written.Load()), nil
}

func (e *Engine) emit(ctx context.Context, logger *slog.Logger, w write.Writer, f format.Format, a Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := []byte(a.Content)
	if e.postprocessors.Len() > 0 {
		processed, err := e.postprocessors.Process(a.Path, content)
		if err != nil {
			logger.Warn("post-processing failed", "path", a.Path, "error", err)
			// Continue with unprocessed content rather than failing
		} else {
			content = processed
		}
	}

	if err := w.Write(a.Path, content, e.writeOptions); err != nil {
		return newArtifactError(a.Path, f, err)
	}

	logger.Debug("wrote artifact", "path", a.Path, "bytes", len(content))
	return nil
}

func checkFormats(formats []format.Format) error {
	seen := make(map[format.Format]bool, len(formats))
	for _, f := range formats {
		if !f.Valid() {
			return fmt.Errorf("unsupported module format %v", f)
		}
		if seen[f] {
			return fmt.Errorf("module format %s requested more than once", f)
		}
		seen[f] = true
	}
	return nil
}
