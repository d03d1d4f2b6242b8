package descriptor

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Menach0/ai-spigot-gen/internal/identifier"
)

func mustIdentifiers(t *testing.T) (identifier.ClassName, identifier.PackageName) {
	t.Helper()
	class, err := identifier.ParseClassName("LightningWand")
	require.NoError(t, err)
	pkg, err := identifier.ParsePackageName("com.example.lightningwand")
	require.NoError(t, err)
	return class, pkg
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	class, pkg := mustIdentifiers(t)
	first, err := Synthesize("LightningWand", "1.0.0", class, pkg)
	require.NoError(t, err)
	second, err := Synthesize("LightningWand", "1.0.0", class, pkg)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical inputs must produce byte-identical output")
}

func TestSynthesizeCoordinates(t *testing.T) {
	class, pkg := mustIdentifiers(t)
	out, err := Synthesize("LightningWand", "1.0.0-beta+42", class, pkg)
	require.NoError(t, err)

	assert.Contains(t, out, "<groupId>com.example.lightningwand</groupId>")
	assert.Contains(t, out, "<artifactId>lightningwand</artifactId>")
	// Version is emitted verbatim, with no normalization.
	assert.Contains(t, out, "<version>1.0.0-beta+42</version>")
	assert.Contains(t, out, "<packaging>jar</packaging>")
}

func TestSynthesizeDeclaresBuildSteps(t *testing.T) {
	class, pkg := mustIdentifiers(t)
	out, err := Synthesize("LightningWand", "1.0.0", class, pkg)
	require.NoError(t, err)

	assert.Contains(t, out, "maven-compiler-plugin")
	assert.Contains(t, out, "<source>17</source>")
	assert.Contains(t, out, "<target>17</target>")
	assert.Contains(t, out, "maven-shade-plugin")
	assert.Contains(t, out, "<filtering>true</filtering>")
	assert.Contains(t, out, "<directory>src/main/resources</directory>")
}

func TestSynthesizeDeclaresProvidedHostDependency(t *testing.T) {
	class, pkg := mustIdentifiers(t)
	out, err := Synthesize("LightningWand", "1.0.0", class, pkg)
	require.NoError(t, err)

	assert.Contains(t, out, "<groupId>org.spigotmc</groupId>")
	assert.Contains(t, out, "<artifactId>spigot-api</artifactId>")
	assert.Contains(t, out, "<version>"+SpigotAPIVersion+"</version>")
	assert.Contains(t, out, "<scope>provided</scope>")
}

func TestSynthesizeRefusesInvalidIdentifiers(t *testing.T) {
	_, pkg := mustIdentifiers(t)
	_, err := Synthesize("X", "1.0.0", identifier.ClassName("has space"), pkg)
	assert.Error(t, err)

	class, _ := mustIdentifiers(t)
	_, err = Synthesize("X", "1.0.0", class, identifier.PackageName("com..broken"))
	assert.Error(t, err)

	_, err = Synthesize("X", "1.0.0", identifier.ClassName(""), identifier.PackageName(""))
	assert.Error(t, err)
}

func TestSynthesizeSnapshot(t *testing.T) {
	class, pkg := mustIdentifiers(t)
	out, err := Synthesize("LightningWand", "1.0.0", class, pkg)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}
