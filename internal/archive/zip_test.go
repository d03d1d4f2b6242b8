package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Menach0/ai-spigot-gen/internal/descriptor"
	"github.com/Menach0/ai-spigot-gen/internal/generate"
	"github.com/Menach0/ai-spigot-gen/internal/identifier"
	"github.com/Menach0/ai-spigot-gen/internal/project"
)

func buildTestLayout(t *testing.T) *project.Layout {
	t.Helper()
	class, err := identifier.ParseClassName("LightningWand")
	require.NoError(t, err)
	pkg, err := identifier.ParsePackageName("com.example.lightningwand")
	require.NoError(t, err)
	art := &generate.GeneratedArtifact{
		Source:      "public class LightningWand {}\n",
		Manifest:    "name: LightningWand\nversion: 1.0.0\nmain: com.example.lightningwand.LightningWand\n",
		ClassName:   class,
		PackageName: pkg,
	}
	pom, err := descriptor.Synthesize("LightningWand", "1.0.0", class, pkg)
	require.NoError(t, err)
	l, err := project.Assemble("LightningWand", "1.0.0", art, pom)
	require.NoError(t, err)
	return l
}

func TestBuildRoundTrip(t *testing.T) {
	l := buildTestLayout(t)
	blob, err := Build(l)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	require.NoError(t, err)
	require.Len(t, zr.File, 4)

	contents := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		contents[f.Name] = string(data)
	}

	assert.Contains(t, contents, "pom.xml")
	assert.Contains(t, contents, "src/main/java/com/example/lightningwand/LightningWand.java")
	assert.Contains(t, contents, "src/main/resources/plugin.yml")
	assert.Contains(t, contents, "README.md")
	assert.Contains(t, contents["pom.xml"], "<artifactId>lightningwand</artifactId>")
	assert.Contains(t, contents["README.md"], "lightningwand-1.0.0.jar")
}

func TestBuildIsByteStable(t *testing.T) {
	l := buildTestLayout(t)
	first, err := Build(l)
	require.NoError(t, err)
	second, err := Build(l)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildRejectsEmptyLayout(t *testing.T) {
	_, err := Build(nil)
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "LightningWand-plugin-project.zip", FileName("LightningWand"))
}
