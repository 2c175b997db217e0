package python

import (
	"strings"

	"gopkg.in/ini.v1"

	"github.com/matzehuels/depscout/pkg/scan"
)

// SetupCfg parses setuptools declarative config files, reading the
// [options] install_requires list.
// https://setuptools.pypa.io/en/latest/userguide/declarative_config.html
type SetupCfg struct{}

func (s *SetupCfg) Kind() scan.Kind           { return scan.KindSetupCfg }
func (s *SetupCfg) Supports(name string) bool { return name == "setup.cfg" }

func (s *SetupCfg) Extract(path string, content []byte) (*scan.Extraction, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		IgnoreInlineComment:        true,
	}, content)
	if err != nil {
		return nil, err
	}

	section, err := file.GetSection("options")
	if err != nil {
		return &scan.Extraction{}, nil
	}
	if !section.HasKey("install_requires") {
		return &scan.Extraction{}, nil
	}

	specs := strings.Split(section.Key("install_requires").String(), "\n")
	return &scan.Extraction{Names: specNames(specs)}, nil
}
