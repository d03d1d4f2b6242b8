// Package generate turns a plugin request into a GeneratedArtifact by
// calling the generative model and validating everything it returns before
// exposing it downstream.
package generate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Menach0/ai-spigot-gen/internal/identifier"
)

// ErrValidation marks missing-input failures. They are detected before any
// remote call is attempted.
var ErrValidation = errors.New("invalid request")

// PluginRequest is the user's input. All three fields are required.
type PluginRequest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Validate checks that every required field is present. The version string
// is passed through verbatim; only non-emptiness is checked.
func (r PluginRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(r.Version) == "" {
		return fmt.Errorf("%w: version is required", ErrValidation)
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	return nil
}

// GeneratedArtifact is the validated output of one generation call.
// ClassName and PackageName are authoritative: downstream files reference
// exactly these values and never re-derive their own.
type GeneratedArtifact struct {
	Source      string                 `json:"source"`
	Manifest    string                 `json:"manifest"`
	ClassName   identifier.ClassName   `json:"class_name"`
	PackageName identifier.PackageName `json:"package_name"`
}
