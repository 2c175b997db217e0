package python

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depscout/pkg/scan"
)

// Script reads PEP 723 inline metadata from Python script files: a
// "# /// script" comment block whose body is TOML with a dependencies list.
// Scripts without a metadata block carry no manifest content and yield a nil
// extraction, so ordinary source files are not counted as parsed manifests.
// https://packaging.python.org/en/latest/specifications/inline-script-metadata/
type Script struct{}

func (s *Script) Kind() scan.Kind { return scan.KindScript }

func (s *Script) Supports(name string) bool {
	name = strings.ToLower(name)
	return strings.HasSuffix(name, ".py") && name != "setup.py"
}

func (s *Script) Extract(path string, content []byte) (*scan.Extraction, error) {
	block, ok := metadataBlock(content)
	if !ok {
		return nil, nil
	}

	var meta struct {
		Dependencies []string `toml:"dependencies"`
	}
	if err := toml.Unmarshal([]byte(block), &meta); err != nil {
		return nil, err
	}
	return &scan.Extraction{Names: specNames(meta.Dependencies)}, nil
}

// metadataBlock returns the TOML body between "# /// script" and the closing
// "# ///" line, with the comment prefix stripped from each line.
func metadataBlock(content []byte) (string, bool) {
	var body []string
	inBlock := false

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if !inBlock {
			if line == "# /// script" {
				inBlock = true
			}
			continue
		}
		if line == "# ///" {
			return strings.Join(body, "\n"), true
		}
		switch {
		case strings.HasPrefix(line, "# "):
			body = append(body, line[2:])
		case line == "#":
			body = append(body, "")
		default:
			// Not a comment line: the block was never closed.
			return "", false
		}
	}
	return "", false
}
