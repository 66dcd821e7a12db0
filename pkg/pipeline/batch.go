package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/spanwrap/pkg/config"
	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/logging"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of rendering one file.
type Result struct {
	Path     string
	OutPath  string // empty when no output directory was given
	Document *Document
}

// OutputPath returns where the rendering of path goes inside outDir.
func (p *Pipeline) OutputPath(path, outDir string) string {
	ext := ".html"
	if p.cfg.Output.Format == config.FormatXHTML {
		ext = ".xhtml"
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(outDir, base+ext)
}

// RenderFiles renders paths concurrently, at most render.concurrency at a
// time. Each file gets its own tree. With a non-empty outDir every output is
// written there as <name>.html (or .xhtml). Results keep the order of paths.
// The first failure cancels the remaining files and is returned.
func (p *Pipeline) RenderFiles(ctx context.Context, paths []string, outDir string) ([]Result, error) {
	logger := logging.GetLogger("pipeline.batch")
	done := logging.LogOperationStart(logger, "render files")
	defer done()

	results := make([]Result, len(paths))
	for i, path := range paths {
		results[i].Path = path
	}
	if outDir != "" {
		seen := make(map[string]string, len(paths))
		for i, path := range paths {
			out := p.OutputPath(path, outDir)
			if prev, ok := seen[out]; ok {
				return nil, errors.Newf(errors.ErrAlreadyExists, "%s and %s both render to %s", prev, path, out).
					WithDetail("path", out)
			}
			seen[out] = path
			results[i].OutPath = out
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", outDir)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Render.Concurrency)

	for i, path := range paths {
		i, path := i, path
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Wrap(err, errors.ErrCancelled, "render cancelled").WithDetail("source", path)
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).WithDetail("source", path)
			}

			doc, err := p.Render(gctx, Source{Name: path, Content: content})
			if err != nil {
				return err
			}

			results[i].Document = doc
			if out := results[i].OutPath; out != "" {
				if err := os.WriteFile(out, doc.Output, 0644); err != nil {
					return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", out).WithDetail("path", out)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, errors.Wrap(err, errors.ErrCancelled, "render cancelled")
	}

	logger.Info().Int("files", len(paths)).Str("out_dir", outDir).Msg("Rendered files")
	return results, nil
}
