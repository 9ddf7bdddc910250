// Package jsonpath queries rendered dotconf documents.
//
// Two expression styles are accepted. Expressions starting with '$' use
// JSONPath member notation ($.log.file.dir, $['log']['file.name']) and may
// address keys containing any character. Everything else is passed to gjson
// unchanged, so gjson modifiers and wildcards work:
//
//	jsonpath.Query(doc, "log.file.dir")
//	jsonpath.Query(doc, "log|@keys")
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Query evaluates expr against a JSON document and returns the value as
// text. Strings are returned unquoted; objects and arrays as raw JSON.
func Query(doc []byte, expr string) (string, error) {
	if len(doc) == 0 {
		return "", fmt.Errorf("empty JSON document")
	}
	if expr == "" {
		return "", fmt.Errorf("empty query expression")
	}

	path, err := toGjsonPath(expr)
	if err != nil {
		return "", err
	}

	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", expr)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// QueryAll evaluates each expression and returns the values in order.
// Failed expressions are reported together after all have been tried.
func QueryAll(doc []byte, exprs []string) ([]string, error) {
	if len(exprs) == 0 {
		return nil, fmt.Errorf("no query expressions provided")
	}

	results := make([]string, len(exprs))
	var errors []string
	for i, expr := range exprs {
		value, err := Query(doc, expr)
		if err != nil {
			errors = append(errors, err.Error())
			continue
		}
		results[i] = value
	}

	if len(errors) > 0 {
		return results, fmt.Errorf("query errors: %s", strings.Join(errors, "; "))
	}
	return results, nil
}

// toGjsonPath converts a JSONPath member expression into a gjson path with
// every key escaped. Non-JSONPath expressions are returned as is.
func toGjsonPath(expr string) (string, error) {
	if !strings.HasPrefix(expr, "$") {
		return expr, nil
	}

	rest := expr[1:]
	if rest == "" {
		return "@this", nil
	}

	var segments []string
	for len(rest) > 0 {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}
			if end == 0 {
				return "", fmt.Errorf("invalid expression %q: empty member name", expr)
			}
			segments = append(segments, gjson.Escape(rest[:end]))
			rest = rest[end:]
		case '[':
			segment, n, err := bracketSegment(rest)
			if err != nil {
				return "", fmt.Errorf("invalid expression %q: %w", expr, err)
			}
			segments = append(segments, gjson.Escape(segment))
			rest = rest[n:]
		default:
			return "", fmt.Errorf("invalid expression %q: unexpected %q", expr, rest[0])
		}
	}

	return strings.Join(segments, "."), nil
}

// bracketSegment parses ['key'], ["key"] or [n] at the start of s and
// returns the member name and the number of bytes consumed.
func bracketSegment(s string) (string, int, error) {
	if len(s) > 1 && (s[1] == '\'' || s[1] == '"') {
		quote := s[1]
		closing := strings.IndexByte(s[2:], quote)
		if closing < 0 || len(s) < closing+4 || s[closing+3] != ']' {
			return "", 0, fmt.Errorf("unterminated bracket member")
		}
		return s[2 : closing+2], closing + 4, nil
	}

	end := strings.IndexByte(s, ']')
	if end < 0 {
		return "", 0, fmt.Errorf("unterminated bracket index")
	}
	return s[1:end], end + 1, nil
}
