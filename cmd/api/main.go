package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Menach0/ai-spigot-gen/internal/config"
	"github.com/Menach0/ai-spigot-gen/internal/generate"
	"github.com/Menach0/ai-spigot-gen/internal/llm"
	llmclient "github.com/Menach0/ai-spigot-gen/internal/llmclient"
	"github.com/Menach0/ai-spigot-gen/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	var base llmclient.LLMClient
	if cfg.LLM.UseFake {
		log.Printf("using fake LLM client")
		base = llmclient.NewFakeClient()
	} else {
		base, err = llmclient.NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			log.Fatal(err)
		}
	}
	defer base.Close()

	cli := llm.Wrap(base, llm.WithLogging(nil), llm.Retry(3, 0))

	sessions, err := session.NewStore(cfg.Session.MaxEntries, cfg.Session.TTL)
	if err != nil {
		log.Fatal(err)
	}

	s := newAPIServer(generate.NewRequestor(cli), sessions)
	h := withCORS(buildMux(s))

	log.Printf("Starting API server on %s (env=%s, model=%s)", cfg.Port, cfg.Env, base.Name())
	log.Fatal(http.ListenAndServe(cfg.Port, h2c.NewHandler(h, &http2.Server{})))
}

// withCORS is a simple CORS middleware for the browser shell.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Vary", "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}
