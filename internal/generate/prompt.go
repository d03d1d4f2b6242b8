package generate

import (
	"bytes"
	"fmt"
	"strings"
)

// promptField describes a single output field in the response schema.
type promptField struct {
	Name        string
	Type        string
	Required    bool
	Description string
}

var outputFields = []promptField{
	{Name: "source", Type: "string", Required: true, Description: "Complete Java source of the plugin main class, extending org.bukkit.plugin.java.JavaPlugin."},
	{Name: "manifest", Type: "string", Required: true, Description: "Complete plugin.yml content (YAML) with name, version, main, api-version and description fields."},
	{Name: "class_name", Type: "string", Required: true, Description: "Java class name of the main class. Must match [A-Za-z_][A-Za-z0-9_]* and must not be a Java reserved word."},
	{Name: "package_name", Type: "string", Required: true, Description: "Dot-separated Java package with lowercase segments, e.g. com.example.myplugin."},
}

// buildPrompt renders the structured generation prompt. The request itself
// travels separately as the [INPUT JSON] block the client appends.
func buildPrompt(req PluginRequest) string {
	var buf bytes.Buffer
	writeSection(&buf, "PURPOSE",
		"Generate a complete, compilable Spigot (Bukkit) server plugin from the user's plugin name, version and behavior description.")
	writeSection(&buf, "BACKGROUND",
		"The output is dropped into a Maven project unchanged. The source file's package statement, the class name and plugin.yml's main entry must all agree, or the project will not build.")
	writeSection(&buf, "OUTPUT", formatFields(outputFields))
	writeSection(&buf, "CONSTRAINTS", formatList([]string{
		"The source declares exactly the package given in package_name and exactly one public class named class_name.",
		fmt.Sprintf("plugin.yml's name field is %q and its version field is %q, verbatim.", req.Name, req.Version),
		"plugin.yml's main field is package_name + \".\" + class_name.",
		"Use only the Spigot API; no external libraries.",
		"Implement the described behavior in onEnable/onDisable and event listeners or commands as appropriate.",
	}))
	writeSection(&buf, "OUTPUT_FORMAT",
		"JSON object with exactly the fields listed under OUTPUT. No markdown, no code fences.")
	return strings.TrimSpace(buf.String()) + "\n"
}

func formatFields(fields []promptField) string {
	var b strings.Builder
	for _, f := range fields {
		req := "optional"
		if f.Required {
			req = "required"
		}
		fmt.Fprintf(&b, "- %s (%s, %s): %s\n", f.Name, f.Type, req, f.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeSection(buf *bytes.Buffer, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	buf.WriteString("[")
	buf.WriteString(title)
	buf.WriteString("]\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}
