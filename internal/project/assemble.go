package project

import (
	"fmt"

	"github.com/Menach0/ai-spigot-gen/internal/descriptor"
	"github.com/Menach0/ai-spigot-gen/internal/generate"
	"github.com/Menach0/ai-spigot-gen/internal/identifier"
)

// Fixed file names mandated by Maven and the Spigot host.
const (
	DescriptorPath = "pom.xml"
	ManifestPath   = "src/main/resources/plugin.yml"
	ReadmePath     = "README.md"
)

// SourcePath returns the canonical path of the plugin main class: the
// package path segment equals the package name with dots replaced by
// slashes, and the file name is the class name exactly.
func SourcePath(className identifier.ClassName, packageName identifier.PackageName) string {
	return "src/main/java/" + packageName.Path() + "/" + string(className) + ".java"
}

// Assemble maps the four textual artifacts onto the canonical layout. The
// artifact's identifiers are authoritative; nothing is re-derived here. Any
// malformed path aborts assembly instead of writing a broken layout.
func Assemble(pluginName, version string, art *generate.GeneratedArtifact, descriptorText string) (*Layout, error) {
	if art == nil {
		return nil, fmt.Errorf("project: artifact is nil")
	}

	readme, err := renderReadme(pluginName, version, art.ClassName, art.PackageName, descriptor.JavaRelease)
	if err != nil {
		return nil, err
	}

	l := newLayout()
	if err := l.add(DescriptorPath, []byte(descriptorText)); err != nil {
		return nil, err
	}
	if err := l.add(SourcePath(art.ClassName, art.PackageName), []byte(art.Source)); err != nil {
		return nil, err
	}
	if err := l.add(ManifestPath, []byte(art.Manifest)); err != nil {
		return nil, err
	}
	if err := l.add(ReadmePath, []byte(readme)); err != nil {
		return nil, err
	}
	return l, nil
}
