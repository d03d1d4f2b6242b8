package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Menach0/ai-spigot-gen/internal/identifier"
	llmclient "github.com/Menach0/ai-spigot-gen/internal/llmclient"
)

// Requestor performs one generation call and validates the result. It has
// no retry policy of its own; wrap the client with llm.Retry if the caller
// wants one.
type Requestor struct {
	cli llmclient.LLMClient
}

func NewRequestor(cli llmclient.LLMClient) *Requestor {
	return &Requestor{cli: cli}
}

// modelPayload is the raw response shape before validation.
type modelPayload struct {
	Source      string `json:"source"`
	Manifest    string `json:"manifest"`
	ClassName   string `json:"class_name"`
	PackageName string `json:"package_name"`
}

// Generate validates req, issues a single model call and returns a fully
// validated artifact. On any failure no partial artifact is exposed.
func (q *Requestor) Generate(ctx context.Context, req PluginRequest) (*GeneratedArtifact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := q.cli.GenerateJSON(ctx, buildPrompt(req), req)
	if err != nil {
		return nil, fmt.Errorf("generate: model call failed: %w", err)
	}

	var payload modelPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("generate: malformed model response: %w", err)
	}
	if strings.TrimSpace(payload.Source) == "" {
		return nil, fmt.Errorf("generate: model returned empty source")
	}
	if strings.TrimSpace(payload.Manifest) == "" {
		return nil, fmt.Errorf("generate: model returned empty manifest")
	}

	className, err := identifier.ParseClassName(payload.ClassName)
	if err != nil {
		return nil, fmt.Errorf("generate: model returned invalid class name: %w", err)
	}
	packageName, err := identifier.ParsePackageName(payload.PackageName)
	if err != nil {
		return nil, fmt.Errorf("generate: model returned invalid package name: %w", err)
	}

	if err := checkManifest(payload.Manifest, req.Name, req.Version, packageName.Qualify(className)); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return &GeneratedArtifact{
		Source:      payload.Source,
		Manifest:    payload.Manifest,
		ClassName:   className,
		PackageName: packageName,
	}, nil
}
