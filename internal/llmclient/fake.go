package llmclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FakeClient returns a deterministic, fully valid plugin payload for
// offline/testing. The class name is derived from the request's name field
// so the whole pipeline can run without network access.
type FakeClient struct{}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	var req struct {
		Name        string `json:"name"`
		Version     string `json:"version"`
		Description string `json:"description"`
	}
	b, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, err
	}

	className := fakeClassName(req.Name)
	packageName := "com.example." + strings.ToLower(className)

	source := fmt.Sprintf(`package %s;

import org.bukkit.plugin.java.JavaPlugin;

public class %s extends JavaPlugin {

    @Override
    public void onEnable() {
        getLogger().info("%s enabled");
    }

    @Override
    public void onDisable() {
        getLogger().info("%s disabled");
    }
}
`, packageName, className, req.Name, req.Name)

	manifest := fmt.Sprintf(`name: %s
version: %s
main: %s.%s
api-version: "1.20"
description: %s
`, req.Name, req.Version, packageName, className, strconv.Quote(req.Description))

	out := map[string]string{
		"source":       source,
		"manifest":     manifest,
		"class_name":   className,
		"package_name": packageName,
	}
	raw, _ := json.Marshal(out)
	return json.RawMessage(raw), nil
}

// fakeClassName keeps letters and digits from name, upper-casing word
// starts. Falls back to "GeneratedPlugin" when nothing usable remains.
func fakeClassName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if upper {
				b.WriteRune(unicode.ToUpper(r))
				upper = false
			} else {
				b.WriteRune(r)
			}
		case unicode.IsDigit(r) && b.Len() > 0:
			b.WriteRune(r)
			upper = true
		default:
			upper = true
		}
	}
	out := b.String()
	if out == "" {
		return "GeneratedPlugin"
	}
	return out
}
