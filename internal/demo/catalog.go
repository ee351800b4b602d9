// SPDX-License-Identifier: MIT

package demo

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Demo is one self-contained console program.
type Demo struct {
	Name    string
	Summary string
	Run     func(w io.Writer, in Input) error
}

// Catalog is a registry of demos keyed by name. It is not safe for
// concurrent registration.
type Catalog struct {
	demos  map[string]Demo
	logger *zap.Logger
}

// NewCatalog returns an empty catalog. A nil logger disables logging.
func NewCatalog(logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Catalog{
		demos:  make(map[string]Demo),
		logger: logger,
	}
}

// Register adds d to the catalog.
// Errors: ErrInvalidDemo, ErrDuplicateDemo.
func (c *Catalog) Register(d Demo) error {
	if strings.TrimSpace(d.Name) == "" || d.Run == nil {
		return fmt.Errorf("Register(%q): %w", d.Name, ErrInvalidDemo)
	}
	if _, ok := c.demos[d.Name]; ok {
		return fmt.Errorf("Register(%q): %w", d.Name, ErrDuplicateDemo)
	}
	c.demos[d.Name] = d

	return nil
}

// Lookup returns the demo registered under name or ErrUnknownDemo.
func (c *Catalog) Lookup(name string) (Demo, error) {
	d, ok := c.demos[name]
	if !ok {
		return Demo{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownDemo)
	}

	return d, nil
}

// List returns every registered demo sorted by name.
func (c *Catalog) List() []Demo {
	out := make([]Demo, 0, len(c.demos))
	for _, d := range c.demos {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Demo) int { return strings.Compare(a.Name, b.Name) })

	return out
}

// Run executes the named demos in the given order. All names are resolved
// before anything runs, so an unknown name produces no output.
// Each demo receives its own copy of in.
func (c *Catalog) Run(w io.Writer, in Input, names ...string) error {
	selected := make([]Demo, 0, len(names))
	for _, name := range names {
		d, err := c.Lookup(name)
		if err != nil {
			return err
		}
		selected = append(selected, d)
	}

	p := newPrinter(w)
	for i, d := range selected {
		if i > 0 {
			p.println()
		}
		p.printf("##### %s #####\n", d.Name)
		if p.err != nil {
			return p.err
		}

		start := time.Now()
		c.logger.Debug("demo started", zap.String("demo", d.Name))
		if err := d.Run(w, in.clone()); err != nil {
			c.logger.Error("demo failed", zap.String("demo", d.Name), zap.Error(err))
			return fmt.Errorf("demo %q: %w", d.Name, err)
		}
		c.logger.Debug("demo finished",
			zap.String("demo", d.Name),
			zap.Duration("elapsed", time.Since(start)))
	}

	return p.err
}

// RunAll executes every registered demo in name order.
func (c *Catalog) RunAll(w io.Writer, in Input) error {
	list := c.List()
	names := make([]string, len(list))
	for i, d := range list {
		names[i] = d.Name
	}

	return c.Run(w, in, names...)
}

// Default returns a catalog holding every built-in demo.
func Default(logger *zap.Logger) *Catalog {
	c := NewCatalog(logger)
	for _, d := range builtins() {
		// Built-in names are unique and non-empty.
		_ = c.Register(d)
	}

	return c
}

func builtins() []Demo {
	return []Demo{
		{Name: "sorting", Summary: "bubble, selection, insertion, quick and merge sort with counters and timings", Run: runSorting},
		{Name: "duplicates", Summary: "values occurring more than once, hash vs brute force", Run: runDuplicates},
		{Name: "unique", Summary: "values occurring exactly once", Run: runUnique},
		{Name: "common", Summary: "common elements of two arrays, nested loop vs hash map", Run: runCommon},
		{Name: "matrix", Summary: "min, max, transpose and symmetry of a 2D array", Run: runMatrix},
		{Name: "swap", Summary: "swapping two variables: temporary, arithmetic, XOR", Run: runSwap},
		{Name: "loops", Summary: "nested loop patterns: pyramids, diamond, traversal", Run: runLoops},
		{Name: "errors", Summary: "recovering runtime panics and deferred cleanup", Run: runErrors},
		{Name: "collections", Summary: "slices, sets and maps", Run: runCollections},
		{Name: "strings", Summary: "string operations and immutability", Run: runStrings},
		{Name: "pipeline", Summary: "filter, map and count over a list of names", Run: runPipeline},
		{Name: "types", Summary: "structs, embedding, interfaces and constructors", Run: runTypes},
		{Name: "time", Summary: "date arithmetic and formatting", Run: runTime},
	}
}
