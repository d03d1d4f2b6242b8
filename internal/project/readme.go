package project

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Menach0/ai-spigot-gen/internal/identifier"
)

const readmeTemplate = `# {{.PluginName}}

A Spigot server plugin generated from a natural-language description.

## Project layout

- ` + "`pom.xml`" + ` — Maven build descriptor
- ` + "`src/main/java/{{.PackagePath}}/{{.ClassName}}.java`" + ` — plugin main class
- ` + "`src/main/resources/plugin.yml`" + ` — plugin manifest

## Building

Requires JDK {{.JavaRelease}} and Maven.

` + "```" + `
mvn package
` + "```" + `

The assembled plugin jar is written to ` + "`target/{{.JarName}}`" + `.

## Installing

Copy ` + "`{{.JarName}}`" + ` into your server's ` + "`plugins/`" + ` directory and
restart the server. The plugin registers itself as **{{.PluginName}}**
version {{.Version}}.
`

var readmeTmpl = template.Must(template.New("readme").Parse(readmeTemplate))

type readmeData struct {
	PluginName  string
	Version     string
	ClassName   string
	PackagePath string
	JarName     string
	JavaRelease string
}

// renderReadme is a pure function of (pluginName, version, className,
// packageName); repeated calls produce byte-identical output.
func renderReadme(pluginName, version string, className identifier.ClassName, packageName identifier.PackageName, javaRelease string) (string, error) {
	var buf bytes.Buffer
	err := readmeTmpl.Execute(&buf, readmeData{
		PluginName:  pluginName,
		Version:     version,
		ClassName:   string(className),
		PackagePath: packageName.Path(),
		JarName:     identifier.JarName(className.ArtifactID(), version),
		JavaRelease: javaRelease,
	})
	if err != nil {
		return "", fmt.Errorf("project: render readme: %w", err)
	}
	return buf.String(), nil
}
