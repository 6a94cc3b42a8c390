package toolkit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// tool is the internal implementation of Tool built by New.
type tool[T any] struct {
	name        string
	description string
	schema      map[string]any
	resolved    *jsonschema.Resolved
	fn          func(ctx context.Context, args T) (string, error)
}

// New builds a Tool from a hand-authored JSON Schema map and a typed handler.
// Call unmarshals the argument object, fills omitted arguments from the
// schema's defaults, validates the result against the compiled schema, decodes
// it into T, and invokes fn. Validation and parse failures are ClientError.
//
// Optional arguments should be pointer fields on T: a nil field means the
// caller omitted the argument, which downstream builders treat differently
// from a present zero value.
func New[T any](
	name, description string,
	schemaMap map[string]any,
	fn func(ctx context.Context, args T) (string, error),
) (Tool, error) {
	if schemaMap == nil {
		return nil, fmt.Errorf("tool %q: schema map must not be nil", name)
	}
	if fn == nil {
		return nil, fmt.Errorf("tool %q: handler must not be nil", name)
	}
	schema, err := copySchema(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("tool %q: copy schema: %w", name, err)
	}
	stripSchemaIDs(schema)
	resolved, err := compileSchema(schema)
	if err != nil {
		return nil, fmt.Errorf("tool %q: compile schema: %w", name, err)
	}
	return &tool[T]{
		name:        name,
		description: description,
		schema:      schema,
		resolved:    resolved,
		fn:          fn,
	}, nil
}

func (t *tool[T]) Name() string        { return t.name }
func (t *tool[T]) Description() string { return t.description }

// InputSchema returns a deep copy of the JSON Schema map.
func (t *tool[T]) InputSchema() map[string]any {
	out, err := copySchema(t.schema)
	if err != nil {
		// The schema round-tripped through JSON at build time; it cannot fail here.
		panic(err)
	}
	return out
}

func (t *tool[T]) Call(ctx context.Context, argsJSON []byte) (string, error) {
	raw := make(map[string]any)
	if len(argsJSON) > 0 {
		if err := json.Unmarshal(argsJSON, &raw); err != nil {
			return "", wrapJSONParseError(err)
		}
		if raw == nil {
			raw = make(map[string]any)
		}
	}
	applyDefaults(t.schema, raw)
	if err := validateAgainstSchema(t.resolved, raw); err != nil {
		return "", err
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return "", &SystemError{Err: err}
	}
	var args T
	if err := json.Unmarshal(data, &args); err != nil {
		return "", wrapJSONParseError(err)
	}
	return t.fn(ctx, args)
}

var _ Tool = (*tool[struct{}])(nil)
