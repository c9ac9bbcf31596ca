// Package walk lints a directory tree of SVG files.
//
// The walker visits entries depth-first in directory order, validates every
// file whose extension is watched and prints one diagnostic line per
// failing file as soon as it is found. A failure never stops the walk: the
// tree's result is the AND of every file beneath it, so one bad file fails
// the run while its siblings are still checked and reported.
package walk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/jpl-au/svglint/internal/glob"
	"github.com/jpl-au/svglint/internal/svg"
	"github.com/jpl-au/svglint/internal/validate"
)

// ErrAccess wraps filesystem errors for entries that could not be read.
var ErrAccess = errors.New("cannot access")

// DefaultIgnore returns the directory names skipped when Options.Ignore is nil.
func DefaultIgnore() []string {
	return []string{".git", "node_modules"}
}

// Progress receives walk activity. Pause is called before a diagnostic is
// printed so a terminal indicator can clear its line first.
type Progress interface {
	Tick()
	Pause()
}

// Options configures a walk.
type Options struct {
	Rules      *validate.Rules // nil uses validate.DefaultRules()
	Extensions []string        // nil uses Rules.Extensions; empty watches nothing
	Ignore     []string        // nil uses DefaultIgnore(); empty ignores nothing
	Progress   Progress        // optional
}

// Result is the outcome of a walk.
type Result struct {
	Valid       bool         `json:"valid"`
	Files       int          `json:"files"`   // watched files checked
	Invalid     int          `json:"invalid"` // entries that produced a diagnostic
	Diagnostics []Diagnostic `json:"diagnostics"`
}

type walker struct {
	ctx       context.Context
	out       io.Writer
	rules     *validate.Rules
	ignore    []string
	progress  Progress
	ancestors []fs.FileInfo
	res       Result
}

// Walk lints the tree at root, printing diagnostics to w, and reports
// whether every watched file is valid.
func Walk(w io.Writer, root string, opts Options) bool {
	res, _ := Run(context.Background(), w, root, opts)
	return res.Valid
}

// Run lints the tree at root and returns every diagnostic alongside the
// overall result. Diagnostics are also printed to w unless w is nil.
// The returned error is non-nil only when ctx is cancelled mid-walk.
func Run(ctx context.Context, w io.Writer, root string, opts Options) (Result, error) {
	wk := newWalker(ctx, w, opts)

	info, err := os.Stat(root)
	if err != nil {
		wk.report(KindAccess, root, fmt.Errorf("%w: %w", ErrAccess, err))
		return wk.res, nil
	}

	wk.res.Valid = wk.visit(root, ".", info)
	if err := ctx.Err(); err != nil {
		wk.res.Valid = false
		return wk.res, err
	}
	return wk.res, nil
}

func newWalker(ctx context.Context, w io.Writer, opts Options) *walker {
	rules := opts.Rules
	if rules == nil {
		rules = validate.DefaultRules()
	}
	if opts.Extensions != nil {
		// Copy rather than modify the caller's tables.
		r := *rules
		r.Extensions = opts.Extensions
		rules = &r
	}
	ignore := opts.Ignore
	if ignore == nil {
		ignore = DefaultIgnore()
	}
	return &walker{
		ctx:      ctx,
		out:      w,
		rules:    rules,
		ignore:   ignore,
		progress: opts.Progress,
		res:      Result{Diagnostics: []Diagnostic{}},
	}
}

// visit dispatches on entry kind. Anything that is neither a directory nor
// a regular file is skipped.
func (w *walker) visit(p, rel string, info fs.FileInfo) bool {
	switch {
	case info.IsDir():
		return w.dir(p, rel, info)
	case info.Mode().IsRegular():
		return w.file(p)
	default:
		return true
	}
}

func (w *walker) dir(p, rel string, info fs.FileInfo) bool {
	// A symlink back to an ancestor would recurse forever.
	for _, a := range w.ancestors {
		if os.SameFile(a, info) {
			return true
		}
	}
	w.ancestors = append(w.ancestors, info)
	defer func() { w.ancestors = w.ancestors[:len(w.ancestors)-1] }()

	valid := true

	// ReadDir returns the entries it managed to read alongside the error.
	entries, err := os.ReadDir(p)
	if err != nil {
		w.report(KindAccess, p, fmt.Errorf("%w: %w", ErrAccess, err))
		valid = false
	}

	for _, e := range entries {
		if w.ctx.Err() != nil {
			return false
		}

		child := filepath.Join(p, e.Name())
		childRel := e.Name()
		if rel != "." {
			childRel = path.Join(rel, e.Name())
		}

		// Stat follows symlinks so linked files and directories are linted.
		ci, err := os.Stat(child)
		if err != nil {
			w.report(KindAccess, child, fmt.Errorf("%w: %w", ErrAccess, err))
			valid = false
			continue
		}
		if ci.IsDir() && glob.Any(w.ignore, childRel) {
			continue
		}
		if !w.visit(child, childRel, ci) {
			valid = false
		}
	}
	return valid
}

func (w *walker) file(p string) bool {
	if !w.rules.Watches(filepath.Ext(p)) {
		return true
	}
	w.res.Files++
	if w.progress != nil {
		w.progress.Tick()
	}

	doc, err := svg.ParseFile(p)
	if err != nil {
		if errors.Is(err, svg.ErrParse) {
			w.report(KindParse, p, err)
		} else {
			w.report(KindAccess, p, fmt.Errorf("%w: %w", ErrAccess, err))
		}
		return false
	}

	if err := validate.Document(doc, w.rules); err != nil {
		w.report(KindViolation, p, err)
		return false
	}
	return true
}

func (w *walker) report(kind Kind, p string, err error) {
	d := Diagnostic{
		Path:    p,
		File:    filepath.Base(p),
		Kind:    kind,
		Message: err.Error(),
		Err:     err,
	}
	w.res.Invalid++
	w.res.Diagnostics = append(w.res.Diagnostics, d)

	if w.out == nil {
		return
	}
	if w.progress != nil {
		w.progress.Pause()
	}
	fmt.Fprintln(w.out, d.String())
}
