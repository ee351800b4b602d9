package demo_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/katalvlaran/drills/internal/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func noop(io.Writer, demo.Input) error { return nil }

// TestCatalog_Register covers the validation and duplicate errors.
func TestCatalog_Register(t *testing.T) {
	c := demo.NewCatalog(nil)

	require.NoError(t, c.Register(demo.Demo{Name: "a", Run: noop}))
	assert.ErrorIs(t, c.Register(demo.Demo{Name: "a", Run: noop}), demo.ErrDuplicateDemo)
	assert.ErrorIs(t, c.Register(demo.Demo{Name: " ", Run: noop}), demo.ErrInvalidDemo)
	assert.ErrorIs(t, c.Register(demo.Demo{Name: "b"}), demo.ErrInvalidDemo)

	_, err := c.Lookup("missing")
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
	d, err := c.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "a", d.Name)
}

// TestCatalog_List returns demos sorted by name.
func TestCatalog_List(t *testing.T) {
	c := demo.NewCatalog(zap.NewNop())
	for _, n := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, c.Register(demo.Demo{Name: n, Run: noop}))
	}
	var names []string
	for _, d := range c.List() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

// TestCatalog_RunUnknownWritesNothing resolves every name before running any.
func TestCatalog_RunUnknownWritesNothing(t *testing.T) {
	c := demo.Default(nil)
	var buf bytes.Buffer
	err := c.Run(&buf, demo.DefaultInput(), "swap", "nope")
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
	assert.Empty(t, buf.String())
}

// TestCatalog_RunPropagatesDemoError wraps the failing demo's error and logs it.
func TestCatalog_RunPropagatesDemoError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := demo.NewCatalog(zap.New(core))
	boom := errors.New("boom")
	require.NoError(t, c.Register(demo.Demo{Name: "bad", Run: func(io.Writer, demo.Input) error { return boom }}))

	err := c.Run(io.Discard, demo.DefaultInput(), "bad")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, logs.FilterMessage("demo failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("demo started").Len())
}

// TestCatalog_RunIsolatesInput gives every demo its own copy of the input.
func TestCatalog_RunIsolatesInput(t *testing.T) {
	c := demo.NewCatalog(nil)
	mutate := func(_ io.Writer, in demo.Input) error {
		in.Sort[0] = 999
		in.Matrix[0][0] = 999
		return nil
	}
	require.NoError(t, c.Register(demo.Demo{Name: "mutate", Run: mutate}))

	in := demo.DefaultInput()
	require.NoError(t, c.Run(io.Discard, in, "mutate"))
	assert.Equal(t, 5, in.Sort[0])
	assert.Equal(t, 5, in.Matrix[0][0])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

// TestCatalog_WriteError surfaces the first write failure.
func TestCatalog_WriteError(t *testing.T) {
	err := demo.Default(nil).Run(failingWriter{}, demo.DefaultInput(), "loops")
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

// TestDefault_RunAll runs every built-in demo and logs start/finish for each.
func TestDefault_RunAll(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := demo.Default(zap.New(core))
	require.Len(t, c.List(), 13)

	var buf bytes.Buffer
	require.NoError(t, c.RunAll(&buf, demo.DefaultInput()))
	for _, d := range c.List() {
		assert.Contains(t, buf.String(), "##### "+d.Name+" #####")
		assert.NotEmpty(t, d.Summary, d.Name)
	}
	assert.Equal(t, 13, logs.FilterMessage("demo finished").Len())
}

// fakeClock advances by step per call.
func fakeClock(step time.Duration) func() time.Time {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0

	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * step)
	}
}
