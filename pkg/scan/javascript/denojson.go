package javascript

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/depscout/pkg/scan"
)

// DenoJSON parses deno.json and deno.jsonc config files, reading package
// names out of npm: and jsr: specifiers in the imports map. Comments in
// .jsonc files are stripped before decoding.
// https://docs.deno.com/runtime/fundamentals/configuration/
type DenoJSON struct{}

func (d *DenoJSON) Kind() scan.Kind { return scan.KindDenoJSON }

func (d *DenoJSON) Supports(name string) bool {
	return strings.EqualFold(name, "deno.json") || strings.EqualFold(name, "deno.jsonc")
}

func (d *DenoJSON) Extract(path string, content []byte) (*scan.Extraction, error) {
	if strings.HasSuffix(strings.ToLower(path), ".jsonc") {
		content = stripComments(content)
	}

	var cfg struct {
		Imports map[string]string `json:"imports"`
	}
	if err := json.Unmarshal(content, &cfg); err != nil {
		return nil, err
	}

	c := newCollector()
	for _, specifier := range cfg.Imports {
		if name, ok := specifierName(specifier); ok {
			c.add(name)
		}
	}
	return &scan.Extraction{Names: c.names}, nil
}

// specifierName extracts the package name from an npm: or jsr: import
// specifier, handling scoped names and trailing version or path segments.
// "npm:react@18" yields "react"; "jsr:@std/path@^1/join" yields "@std/path".
func specifierName(specifier string) (string, bool) {
	rest, ok := strings.CutPrefix(specifier, "npm:")
	if !ok {
		rest, ok = strings.CutPrefix(specifier, "jsr:")
	}
	if !ok {
		return "", false
	}
	rest = strings.TrimPrefix(rest, "/")

	var scope string
	if strings.HasPrefix(rest, "@") {
		slash := strings.IndexByte(rest, '/')
		if slash < 0 {
			return "", false
		}
		scope = rest[:slash+1]
		rest = rest[slash+1:]
	}
	if i := strings.IndexAny(rest, "@/"); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", false
	}
	return scope + rest, true
}

// stripComments removes // and /* */ comments from JSONC input, preserving
// string contents.
func stripComments(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch {
		case c == '"':
			inString = true
			out = append(out, c)
		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			for i < len(data) && data[i] != '\n' {
				i++
			}
			if i < len(data) {
				out = append(out, '\n')
			}
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			i += 2
			for i+1 < len(data) && !(data[i] == '*' && data[i+1] == '/') {
				i++
			}
			i++
		default:
			out = append(out, c)
		}
	}
	return out
}
