package python

import (
	"bufio"
	"bytes"
	"regexp"
	"slices"
	"strings"

	"github.com/matzehuels/depscout/pkg/scan"
)

// pipRefRE matches a pip include directive: "-r other-requirements.txt".
// https://pip.pypa.io/en/stable/reference/requirements-file-format/
var pipRefRE = regexp.MustCompile(`^-r\s+(\S+\.txt)$`)

// Requirements parses pip requirements files line by line. Include directives
// become references for the scanner to follow.
type Requirements struct {
	// Names are additional file names to treat as requirements files
	// (the --pip-req override). The requirements*.txt pattern always matches.
	Names []string
}

func (r *Requirements) Kind() scan.Kind { return scan.KindRequirements }

func (r *Requirements) Supports(name string) bool {
	name = strings.ToLower(name)
	if strings.HasPrefix(name, "requirements") && strings.HasSuffix(name, ".txt") {
		return true
	}
	return slices.ContainsFunc(r.Names, func(n string) bool {
		return strings.ToLower(n) == name
	})
}

func (r *Requirements) Extract(path string, content []byte) (*scan.Extraction, error) {
	out := &scan.Extraction{}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.Contains(line, "://") || strings.HasPrefix(line, "git+") {
			continue
		}
		if m := pipRefRE.FindStringSubmatch(line); m != nil {
			out.Refs = append(out.Refs, scan.Reference{From: path, Target: m[1]})
			continue
		}
		if line[0] == '-' {
			// Other pip options (-e, --index-url, ...) declare no dependency.
			continue
		}
		if name, ok := depName(line); ok {
			out.Names = append(out.Names, name)
		}
	}

	return out, scanner.Err()
}
