// Package descriptor synthesizes the Maven pom.xml for a generated plugin
// project. Synthesis is a pure function of its inputs: identical inputs
// produce byte-identical output.
package descriptor

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Menach0/ai-spigot-gen/internal/identifier"
)

// Fixed build baseline and host API pin. The version string from the
// request is never normalized.
const (
	JavaRelease      = "17"
	SpigotAPIVersion = "1.20.4-R0.1-SNAPSHOT"
)

const pomTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
    <modelVersion>4.0.0</modelVersion>

    <groupId>{{.GroupID}}</groupId>
    <artifactId>{{.ArtifactID}}</artifactId>
    <version>{{.Version}}</version>
    <packaging>jar</packaging>

    <name>{{.PluginName}}</name>

    <properties>
        <java.version>{{.JavaRelease}}</java.version>
        <project.build.sourceEncoding>UTF-8</project.build.sourceEncoding>
    </properties>

    <repositories>
        <repository>
            <id>spigotmc-repo</id>
            <url>https://hub.spigotmc.org/nexus/content/repositories/snapshots/</url>
        </repository>
    </repositories>

    <dependencies>
        <dependency>
            <groupId>org.spigotmc</groupId>
            <artifactId>spigot-api</artifactId>
            <version>{{.SpigotAPIVersion}}</version>
            <scope>provided</scope>
        </dependency>
    </dependencies>

    <build>
        <resources>
            <resource>
                <directory>src/main/resources</directory>
                <filtering>true</filtering>
            </resource>
        </resources>
        <plugins>
            <plugin>
                <groupId>org.apache.maven.plugins</groupId>
                <artifactId>maven-compiler-plugin</artifactId>
                <version>3.11.0</version>
                <configuration>
                    <source>{{.JavaRelease}}</source>
                    <target>{{.JavaRelease}}</target>
                </configuration>
            </plugin>
            <plugin>
                <groupId>org.apache.maven.plugins</groupId>
                <artifactId>maven-shade-plugin</artifactId>
                <version>3.5.1</version>
                <executions>
                    <execution>
                        <phase>package</phase>
                        <goals>
                            <goal>shade</goal>
                        </goals>
                    </execution>
                </executions>
            </plugin>
        </plugins>
    </build>
</project>
`

var pomTmpl = template.Must(template.New("pom").Parse(pomTemplate))

type pomData struct {
	GroupID          string
	ArtifactID       string
	Version          string
	PluginName       string
	JavaRelease      string
	SpigotAPIVersion string
}

// Synthesize builds the pom.xml text. It refuses identifiers that fail the
// validity predicate instead of emitting an inconsistent descriptor.
func Synthesize(pluginName, version string, className identifier.ClassName, packageName identifier.PackageName) (string, error) {
	if !className.Valid() {
		return "", fmt.Errorf("descriptor: invalid class name %q", string(className))
	}
	if !packageName.Valid() {
		return "", fmt.Errorf("descriptor: invalid package name %q", string(packageName))
	}

	var buf bytes.Buffer
	err := pomTmpl.Execute(&buf, pomData{
		GroupID:          string(packageName),
		ArtifactID:       className.ArtifactID(),
		Version:          version,
		PluginName:       pluginName,
		JavaRelease:      JavaRelease,
		SpigotAPIVersion: SpigotAPIVersion,
	})
	if err != nil {
		return "", fmt.Errorf("descriptor: render pom: %w", err)
	}
	return buf.String(), nil
}
