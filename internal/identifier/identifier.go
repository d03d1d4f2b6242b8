// Package identifier holds the validated identifier types shared by the
// generation pipeline. A ClassName or PackageName only exists after a checked
// parse, so downstream components can assume validity instead of re-checking.
package identifier

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	classNameRe      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	packageSegmentRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
)

// javaReserved lists keywords and literals that cannot be used as a Java
// class name or package segment. A generated name that collides with one of
// these is a validation failure, never repaired.
var javaReserved = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "class": {}, "const": {},
	"continue": {}, "default": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "extends": {}, "final": {}, "finally": {}, "float": {},
	"for": {}, "goto": {}, "if": {}, "implements": {}, "import": {},
	"instanceof": {}, "int": {}, "interface": {}, "long": {}, "native": {},
	"new": {}, "package": {}, "private": {}, "protected": {}, "public": {},
	"return": {}, "short": {}, "static": {}, "strictfp": {}, "super": {},
	"switch": {}, "synchronized": {}, "this": {}, "throw": {}, "throws": {},
	"transient": {}, "try": {}, "void": {}, "volatile": {}, "while": {},
	"true": {}, "false": {}, "null": {},
}

// ClassName is a validated Java class name.
type ClassName string

// PackageName is a validated dot-separated Java package name with
// lowercase segments.
type PackageName string

// ParseClassName validates raw as a Java class name.
func ParseClassName(raw string) (ClassName, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("identifier: class name is empty")
	}
	if !classNameRe.MatchString(name) {
		return "", fmt.Errorf("identifier: invalid class name %q", name)
	}
	if _, ok := javaReserved[name]; ok {
		return "", fmt.Errorf("identifier: class name %q is a Java reserved word", name)
	}
	return ClassName(name), nil
}

// ParsePackageName validates raw as a dot-separated package name.
// Uppercase segments, empty segments and reserved words are rejected.
func ParsePackageName(raw string) (PackageName, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("identifier: package name is empty")
	}
	for _, seg := range strings.Split(name, ".") {
		if seg == "" {
			return "", fmt.Errorf("identifier: package name %q has an empty segment", name)
		}
		if !packageSegmentRe.MatchString(seg) {
			return "", fmt.Errorf("identifier: invalid package segment %q in %q", seg, name)
		}
		if _, ok := javaReserved[seg]; ok {
			return "", fmt.Errorf("identifier: package segment %q in %q is a Java reserved word", seg, name)
		}
	}
	return PackageName(name), nil
}

// Valid reports whether c would pass ParseClassName. A zero value or a value
// forged by casting fails.
func (c ClassName) Valid() bool {
	_, err := ParseClassName(string(c))
	return err == nil
}

// ArtifactID is the lower-cased class name, used as the Maven artifact id
// and the jar base name.
func (c ClassName) ArtifactID() string { return strings.ToLower(string(c)) }

// Valid reports whether p would pass ParsePackageName.
func (p PackageName) Valid() bool {
	_, err := ParsePackageName(string(p))
	return err == nil
}

// Path returns the package name with dots replaced by slashes, for use in
// source tree paths.
func (p PackageName) Path() string { return PackagePath(string(p)) }

// Qualify returns the fully qualified name "package.Class".
func (p PackageName) Qualify(c ClassName) string { return string(p) + "." + string(c) }

// PackagePath converts a raw package name to a slash-separated path. It is a
// pure character substitution: malformed input (consecutive or leading dots)
// passes through unchanged so the declared package and the physical layout
// never diverge silently. Callers use HasEmptySegments to detect the
// malformed case.
func PackagePath(raw string) string { return strings.ReplaceAll(raw, ".", "/") }

// HasEmptySegments reports whether a slash-separated path contains an empty
// segment.
func HasEmptySegments(path string) bool {
	if path == "" {
		return true
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			return true
		}
	}
	return false
}

// JarName returns the assembled jar file name for an artifact id and version.
func JarName(artifactID, version string) string {
	return artifactID + "-" + version + ".jar"
}
