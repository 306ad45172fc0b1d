// Package runner drives the per-file pipeline: load, parse, enrich,
// serialize, write. Directory-level failures abort a run before any write;
// per-file failures are isolated into the summary and the run continues.
package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jamalhansen/quill/internal/atomicfile"
	"github.com/jamalhansen/quill/internal/enrich"
	"github.com/jamalhansen/quill/internal/frontmatter"
	"github.com/jamalhansen/quill/internal/generate"
	"github.com/jamalhansen/quill/internal/notes"
	"github.com/jamalhansen/quill/internal/source"
)

// WriteError marks a failure while rewriting a file, after enrichment
// itself succeeded.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Options configures a run.
type Options struct {
	Dir       string
	Pattern   string
	Workers   int
	DryRun    bool
	Describer generate.Describer
}

// FileResult is the outcome for one file. Changed means the serialized
// text differed from the input (in a dry run, that it would have been
// rewritten).
type FileResult struct {
	Path    string
	Changed bool
	Err     error
}

// Summary aggregates per-file results in enumeration order.
type Summary struct {
	Results []FileResult
}

// Changed counts files that were (or would be) rewritten.
func (s *Summary) Changed() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil && r.Changed {
			n++
		}
	}
	return n
}

// Failed counts files whose processing errored.
func (s *Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Run enumerates the target directory and processes each note file.
// With Workers > 1 files are processed through a bounded pool; each file's
// read-enrich-write sequence stays independent, and results keep
// enumeration order either way.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Describer == nil {
		return nil, fmt.Errorf("no describer configured")
	}

	paths, err := notes.List(opts.Dir, opts.Pattern)
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, len(paths))

	workers := opts.Workers
	if workers <= 1 {
		for i, path := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = processFile(ctx, path, opts)
		}
		return &Summary{Results: results}, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = FileResult{Path: path, Err: err}
				return nil
			}
			results[i] = processFile(gctx, path, opts)
			return nil
		})
	}
	_ = g.Wait() // per-file errors live in results
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Summary{Results: results}, nil
}

// processFile runs the full sequence for one file. The file is rewritten
// only after enrichment fully succeeded, and only when the text changed.
func processFile(ctx context.Context, path string, opts Options) FileResult {
	res := FileResult{Path: path}

	src, err := source.Load(path)
	if err != nil {
		res.Err = err
		return res
	}

	n := frontmatter.Parse(src.Text)
	if err := enrich.Enrich(ctx, n, src, opts.Describer); err != nil {
		res.Err = err
		return res
	}

	out, err := frontmatter.Serialize(n)
	if err != nil {
		res.Err = fmt.Errorf("serialize %s: %w", path, err)
		return res
	}

	if out == src.Text {
		return res
	}
	res.Changed = true

	if opts.DryRun {
		return res
	}
	if err := atomicfile.Write(path, []byte(out)); err != nil {
		res.Err = &WriteError{Path: path, Err: err}
		res.Changed = false
	}
	return res
}
