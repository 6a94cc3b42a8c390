package cyrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// command runs one Cytoscape command through the commands endpoint and returns
// its data payload. A command may span several path words ("protein query").
func (c *Client) command(ctx context.Context, namespace, command string, args map[string]any) (gjson.Result, error) {
	path := "/v1/commands/" + url.PathEscape(namespace)
	for _, word := range strings.Fields(command) {
		path += "/" + url.PathEscape(word)
	}
	if args == nil {
		args = map[string]any{}
	}
	res, err := c.do(ctx, http.MethodPost, path, nil, args)
	if err != nil {
		return gjson.Result{}, err
	}
	if errs := res.Get("errors").Array(); len(errs) > 0 {
		msg := errs[0].Get("message").String()
		if msg == "" {
			msg = errs[0].String()
		}
		return gjson.Result{}, fmt.Errorf("command %s %s: %s", namespace, command, msg)
	}
	return res.Get("data"), nil
}

// RunCommand executes a raw Cytoscape command string, e.g.
//
//	layout force-directed defaultNodeMass=3
//
// The first word is the namespace, the following words up to the first
// key=value pair form the command, and the rest are arguments. Values may be
// double-quoted to include spaces.
func (c *Client) RunCommand(ctx context.Context, cmd string) (json.RawMessage, error) {
	namespace, command, args, err := splitCommandString(cmd)
	if err != nil {
		return nil, err
	}
	data, err := c.command(ctx, namespace, command, args)
	if err != nil {
		return nil, err
	}
	return rawOrEmpty(data.Raw), nil
}

// StringProteinQuery loads a protein interaction network from the STRING
// database via the stringApp command interface.
func (c *Client) StringProteinQuery(ctx context.Context, query string, species int64, confidenceScore float64, networkType string) (json.RawMessage, error) {
	data, err := c.command(ctx, "string", "protein query", map[string]any{
		"query":       query,
		"species":     species,
		"cutoff":      confidenceScore,
		"networkType": networkType,
	})
	if err != nil {
		return nil, err
	}
	return rawOrEmpty(data.Raw), nil
}

// splitCommandString tokenizes a command string into namespace, command words,
// and key=value arguments. Double quotes group values with spaces.
func splitCommandString(cmd string) (namespace, command string, args map[string]any, err error) {
	tokens, err := tokenizeCommand(cmd)
	if err != nil {
		return "", "", nil, err
	}
	if len(tokens) == 0 {
		return "", "", nil, fmt.Errorf("empty command string")
	}
	namespace = tokens[0]
	rest := tokens[1:]
	var words []string
	args = map[string]any{}
	for i, tok := range rest {
		key, value, found := strings.Cut(tok, "=")
		if !found {
			if len(args) > 0 {
				return "", "", nil, fmt.Errorf("unexpected bare word %q after arguments", tok)
			}
			words = append(words, tok)
			continue
		}
		if key == "" {
			return "", "", nil, fmt.Errorf("argument %d has an empty name", i+1)
		}
		args[key] = value
	}
	if len(words) == 0 {
		return "", "", nil, fmt.Errorf("command string %q has no command after the namespace", cmd)
	}
	return namespace, strings.Join(words, " "), args, nil
}

func tokenizeCommand(cmd string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inQuotes := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range cmd {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("unterminated quote in command string")
	}
	flush()
	return tokens, nil
}
