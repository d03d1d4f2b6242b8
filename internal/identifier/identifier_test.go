package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassName(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"simple", "LightningWand", false},
		{"leading underscore", "_Wand", false},
		{"digits after first", "Wand2", false},
		{"surrounding space trimmed", "  Wand  ", false},
		{"empty", "", true},
		{"inner space", "Lightning Wand", true},
		{"leading digit", "2Wand", true},
		{"hyphen", "lightning-wand", true},
		{"reserved word", "class", true},
		{"reserved literal", "null", true},
		{"dotted", "com.Wand", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseClassName(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Valid())
		})
	}
}

func TestParsePackageName(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"simple", "com.example.lightningwand", false},
		{"single segment", "wand", false},
		{"underscored segment", "com.my_plugin", false},
		{"empty", "", true},
		{"uppercase segment", "com.Example.wand", true},
		{"consecutive dots", "com..wand", true},
		{"leading dot", ".com.wand", true},
		{"trailing dot", "com.wand.", true},
		{"reserved segment", "com.int.wand", true},
		{"digit-leading segment", "com.2wand", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePackageName(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Valid())
		})
	}
}

func TestArtifactIDLowercases(t *testing.T) {
	c, err := ParseClassName("LightningWand")
	require.NoError(t, err)
	assert.Equal(t, "lightningwand", c.ArtifactID())
	assert.Equal(t, "lightningwand-1.0.0.jar", JarName(c.ArtifactID(), "1.0.0"))
}

func TestPackagePath(t *testing.T) {
	p, err := ParsePackageName("com.example.lightningwand")
	require.NoError(t, err)
	assert.Equal(t, "com/example/lightningwand", p.Path())
	assert.False(t, HasEmptySegments(p.Path()))
	assert.Equal(t, "com.example.lightningwand.LightningWand", p.Qualify("LightningWand"))
}

func TestPackagePathPassesMalformedInputThrough(t *testing.T) {
	// Consecutive or boundary dots are not repaired; the resulting empty
	// segments are detectable downstream.
	assert.Equal(t, "com//wand", PackagePath("com..wand"))
	assert.True(t, HasEmptySegments(PackagePath("com..wand")))
	assert.True(t, HasEmptySegments(PackagePath(".com.wand")))
	assert.True(t, HasEmptySegments(PackagePath("com.wand.")))
	assert.True(t, HasEmptySegments(""))
	assert.False(t, HasEmptySegments(PackagePath("com.example")))
}

func TestForgedValuesFailValid(t *testing.T) {
	assert.False(t, ClassName("has space").Valid())
	assert.False(t, ClassName("").Valid())
	assert.False(t, PackageName("com..wand").Valid())
	assert.False(t, PackageName("Com.wand").Valid())
}
