package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/Menach0/ai-spigot-gen/internal/archive"
	"github.com/Menach0/ai-spigot-gen/internal/descriptor"
	"github.com/Menach0/ai-spigot-gen/internal/generate"
	"github.com/Menach0/ai-spigot-gen/internal/llm"
	llmclient "github.com/Menach0/ai-spigot-gen/internal/llmclient"
	"github.com/Menach0/ai-spigot-gen/internal/project"
)

func main() {
	name := flag.String("name", "", "plugin name")
	version := flag.String("version", "1.0.0", "plugin version")
	desc := flag.String("desc", "", "plugin behavior description")
	model := flag.String("model", "gemini-2.5-flash", "Gemini model id")
	out := flag.String("out", ".", "output directory")
	fake := flag.Bool("fake", false, "use the offline fake LLM client")
	unzip := flag.Bool("unzip", false, "write the project tree instead of a zip")
	flag.Parse()
	if *name == "" {
		log.Fatal("-name is required")
	}
	if *desc == "" {
		log.Fatal("-desc is required")
	}

	_ = godotenv.Load()

	ctx := context.Background()
	var base llmclient.LLMClient
	if *fake {
		base = llmclient.NewFakeClient()
	} else {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is not set (or pass -fake)")
		}
		var err error
		base, err = llmclient.NewGeminiClient(ctx, apiKey, *model)
		if err != nil {
			log.Fatal(err)
		}
	}
	defer base.Close()
	cli := llm.Wrap(base, llm.WithLogging(nil), llm.Retry(3, 0))

	req := generate.PluginRequest{Name: *name, Version: *version, Description: *desc}
	art, err := generate.NewRequestor(cli).Generate(llm.WithStage(ctx, "generate"), req)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("generated %s (%s)", art.ClassName, art.PackageName)

	pom, err := descriptor.Synthesize(req.Name, req.Version, art.ClassName, art.PackageName)
	if err != nil {
		log.Fatal(err)
	}
	layout, err := project.Assemble(req.Name, req.Version, art, pom)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	if *unzip {
		for _, f := range layout.Files() {
			dst := filepath.Join(*out, filepath.FromSlash(f.Path))
			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				log.Fatal(err)
			}
			if err := os.WriteFile(dst, f.Content, 0o644); err != nil {
				log.Fatal(err)
			}
			log.Printf("wrote %s", dst)
		}
		return
	}

	blob, err := archive.Build(layout)
	if err != nil {
		log.Fatal(err)
	}
	dst := filepath.Join(*out, archive.FileName(string(art.ClassName)))
	if err := os.WriteFile(dst, blob, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%d bytes)", dst, len(blob))
}
