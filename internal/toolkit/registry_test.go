package toolkit

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) []byte { return []byte(s) }

func TestRegistry_Register_Dispatch(t *testing.T) {
	type args struct {
		X int `json:"x"`
	}
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{"x": map[string]any{"type": "integer"}},
		"required":   []any{"x"},
	}
	tool, err := New("double", "Double x", schema, func(_ context.Context, a args) (string, error) {
		return "doubled to " + strconv.Itoa(a.X*2), nil
	})
	require.NoError(t, err)

	reg := NewRegistry()
	reg.Register(tool)
	res := reg.Dispatch(context.Background(), "double", raw(`{"x": 7}`))
	assert.False(t, res.IsError)
	assert.Equal(t, "doubled to 14", res.Text)
}

func TestRegistry_Dispatch_UnknownTool(t *testing.T) {
	reg := NewRegistry()
	res := reg.Dispatch(context.Background(), "__nonexistent__", raw("{}"))
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: Unknown tool: __nonexistent__", res.Text)
}

func TestRegistry_Dispatch_HandlerError(t *testing.T) {
	tool, err := New("boom", "Always fails", emptyObjectSchema(),
		func(_ context.Context, _ struct{}) (string, error) {
			return "", &ClientError{Reason: "bad input shape"}
		})
	require.NoError(t, err)
	reg := NewRegistry()
	reg.Register(tool)
	res := reg.Dispatch(context.Background(), "boom", raw("{}"))
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: bad input shape", res.Text)
}

func TestRegistry_Dispatch_PanicRecovery(t *testing.T) {
	tool, err := New("panic", "Panics", emptyObjectSchema(),
		func(_ context.Context, _ struct{}) (string, error) {
			panic("oops")
		})
	require.NoError(t, err)
	reg := NewRegistry(WithRecoverPanics(true))
	reg.Register(tool)
	res := reg.Dispatch(context.Background(), "panic", raw("{}"))
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, "Error:")
	assert.Contains(t, res.Text, "panic: oops")
}

func TestRegistry_Tools_SortedStable(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"zebra", "alpha", "middle"} {
		tool, err := New(name, name, emptyObjectSchema(),
			func(_ context.Context, _ struct{}) (string, error) { return "", nil })
		require.NoError(t, err)
		reg.Register(tool)
	}
	first := reg.Tools()
	second := reg.Tools()
	require.Len(t, first, 3)
	assert.Equal(t, "alpha", first[0].Name())
	assert.Equal(t, "middle", first[1].Name())
	assert.Equal(t, "zebra", first[2].Name())
	for i := range first {
		assert.Equal(t, first[i].Name(), second[i].Name())
	}
}

func TestRegistry_Register_Replaces(t *testing.T) {
	a, err := New("dup", "first", emptyObjectSchema(),
		func(_ context.Context, _ struct{}) (string, error) { return "first", nil })
	require.NoError(t, err)
	b, err := New("dup", "second", emptyObjectSchema(),
		func(_ context.Context, _ struct{}) (string, error) { return "second", nil })
	require.NoError(t, err)

	reg := NewRegistry()
	reg.Register(a)
	reg.Register(b)
	require.Len(t, reg.Tools(), 1)
	res := reg.Dispatch(context.Background(), "dup", raw("{}"))
	assert.Equal(t, "second", res.Text)
}

func TestRegistry_Use_RewrapsExistingTools(t *testing.T) {
	tool, err := New("greet", "Greets", emptyObjectSchema(),
		func(_ context.Context, _ struct{}) (string, error) { return "hello", nil })
	require.NoError(t, err)

	var order []string
	mark := func(tag string) Middleware {
		return func(next Tool) Tool {
			return &markTool{toolBase: toolBase{next: next}, tag: tag, order: &order}
		}
	}

	reg := NewRegistry()
	reg.Register(tool)
	reg.Use(mark("outer"), mark("inner"))
	// Replace the chain: rewrapping must start from the raw tool.
	reg.Use(mark("only"))

	res := reg.Dispatch(context.Background(), "greet", raw("{}"))
	assert.Equal(t, "hello", res.Text)
	assert.Equal(t, []string{"only"}, order)
}

type markTool struct {
	toolBase
	tag   string
	order *[]string
}

func (m *markTool) Call(ctx context.Context, args []byte) (string, error) {
	*m.order = append(*m.order, m.tag)
	return m.next.Call(ctx, args)
}

func TestRegistry_OnAfterDispatchHook(t *testing.T) {
	tool, err := New("ok", "ok", emptyObjectSchema(),
		func(_ context.Context, _ struct{}) (string, error) { return "done", nil })
	require.NoError(t, err)

	var gotName string
	var gotErr error
	var gotDur time.Duration
	reg := NewRegistry(WithOnAfterDispatch(func(_ context.Context, name string, err error, dur time.Duration) {
		gotName, gotErr, gotDur = name, err, dur
	}))
	reg.Register(tool)
	reg.Dispatch(context.Background(), "ok", raw("{}"))
	assert.Equal(t, "ok", gotName)
	assert.NoError(t, gotErr)
	assert.GreaterOrEqual(t, gotDur, time.Duration(0))
}

func TestRegistry_OnAfterDispatchHook_UnknownTool(t *testing.T) {
	var gotErr error
	reg := NewRegistry(WithOnAfterDispatch(func(_ context.Context, _ string, err error, _ time.Duration) {
		gotErr = err
	}))
	res := reg.Dispatch(context.Background(), "ghost", raw("{}"))
	assert.True(t, res.IsError)
	assert.ErrorIs(t, gotErr, ErrUnknownTool)
}

func emptyObjectSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
		"required":   []any{},
	}
}
