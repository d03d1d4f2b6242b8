package generate

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// manifestDoc is the subset of plugin.yml the pipeline cares about: the
// plugin identity fields that must agree with every other generated file.
type manifestDoc struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Main    string `yaml:"main"`
}

// checkManifest parses a plugin.yml body and verifies its identity fields
// against the request and the qualified main class. A disagreement makes
// the whole artifact unusable, so it is rejected here rather than patched.
func checkManifest(raw, name, version, main string) error {
	var doc manifestDoc
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return fmt.Errorf("manifest is not valid YAML: %w", err)
	}
	if got := strings.TrimSpace(doc.Name); got != name {
		return fmt.Errorf("manifest name %q does not match plugin name %q", got, name)
	}
	if got := strings.TrimSpace(doc.Version); got != version {
		return fmt.Errorf("manifest version %q does not match requested version %q", got, version)
	}
	if got := strings.TrimSpace(doc.Main); got != main {
		return fmt.Errorf("manifest main %q does not match entry class %q", got, main)
	}
	return nil
}
