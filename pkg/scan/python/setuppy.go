package python

import (
	"strings"

	"github.com/matzehuels/depscout/pkg/scan"
)

// SetupPy reads dependency names out of a setup.py build script with a
// tolerant structural scan. Only the install_requires and extras_require
// keyword arguments are inspected, and only literal strings inside literal
// list/dict values are read; the script is never executed, and computed
// values yield nothing and mark the extraction partial.
type SetupPy struct{}

func (s *SetupPy) Kind() scan.Kind           { return scan.KindSetupPy }
func (s *SetupPy) Supports(name string) bool { return name == "setup.py" }

func (s *SetupPy) Extract(path string, content []byte) (*scan.Extraction, error) {
	src := string(content)
	out := &scan.Extraction{}

	if open, found := kwargValue(src, "install_requires"); found {
		if open < len(src) && src[open] == '[' {
			if end := matchDelim(src, open, '[', ']'); end > 0 {
				names, missed := listNames(src, open, end)
				out.Names = append(out.Names, names...)
				out.Partial = out.Partial || missed
			} else {
				out.Partial = true
			}
		} else {
			out.Partial = true
		}
	}

	if open, found := kwargValue(src, "extras_require"); found {
		if open < len(src) && src[open] == '{' {
			if end := matchDelim(src, open, '{', '}'); end > 0 {
				names, missed := dictListNames(src, open, end)
				out.Names = append(out.Names, names...)
				out.Partial = out.Partial || missed
			} else {
				out.Partial = true
			}
		} else {
			out.Partial = true
		}
	}

	return out, nil
}

// kwargValue locates the value of a keyword argument, returning the index of
// its first non-whitespace character after "=".
func kwargValue(src, kwarg string) (open int, found bool) {
	i := strings.Index(src, kwarg)
	if i < 0 {
		return 0, false
	}
	i += len(kwarg)
	for i < len(src) && src[i] != '=' {
		i++
	}
	i++
	for i < len(src) && isPySpace(src[i]) {
		i++
	}
	return i, true
}

// matchDelim returns the index of the delimiter closing src[open], skipping
// string literals and comments, or -1 if unbalanced.
func matchDelim(src string, open int, oc, cc byte) int {
	depth := 0
	i := open
	for i < len(src) {
		switch src[i] {
		case '\'', '"':
			_, i = readPyString(src, i, len(src))
			continue
		case '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			continue
		case oc:
			depth++
		case cc:
			depth--
			if depth == 0 {
				return i
			}
		}
		i++
	}
	return -1
}

// listNames reads the string literals of a literal list region as dependency
// specifiers. Anything else in the region sets missed.
func listNames(src string, open, close int) (names []string, missed bool) {
	i := open + 1
	for i < close {
		c := src[i]
		switch {
		case c == '\'' || c == '"':
			var lit string
			lit, i = readPyString(src, i, close)
			if name, ok := depName(lit); ok {
				names = append(names, name)
			} else {
				missed = true
			}
		case c == '#':
			for i < close && src[i] != '\n' {
				i++
			}
		case isPySpace(c) || c == ',':
			i++
		default:
			missed = true
			i++
		}
	}
	return names, missed
}

// dictListNames reads string literals inside the list values of a literal
// dict region (extras_require style), skipping the key strings.
func dictListNames(src string, open, close int) (names []string, missed bool) {
	depth := 0 // nesting inside list values; 0 means dict key position
	i := open + 1
	for i < close {
		c := src[i]
		switch {
		case c == '\'' || c == '"':
			var lit string
			lit, i = readPyString(src, i, close)
			if depth == 0 {
				continue // extras group name
			}
			if name, ok := depName(lit); ok {
				names = append(names, name)
			} else {
				missed = true
			}
		case c == '[':
			depth++
			i++
		case c == ']':
			if depth > 0 {
				depth--
			}
			i++
		case c == '#':
			for i < close && src[i] != '\n' {
				i++
			}
		case isPySpace(c) || c == ',' || c == ':':
			i++
		default:
			missed = true
			i++
		}
	}
	return names, missed
}

// readPyString consumes a quoted literal starting at src[i], honoring
// backslash escapes, and returns its content plus the index after the
// closing quote. Unterminated literals run to limit.
func readPyString(src string, i, limit int) (string, int) {
	quote := src[i]
	i++
	start := i
	escaped := false
	for i < limit {
		c := src[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == quote:
			return src[start:i], i + 1
		}
		i++
	}
	return src[start:i], i
}

func isPySpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
