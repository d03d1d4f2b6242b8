package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Menach0/ai-spigot-gen/internal/archive"
	"github.com/Menach0/ai-spigot-gen/internal/descriptor"
	"github.com/Menach0/ai-spigot-gen/internal/generate"
	"github.com/Menach0/ai-spigot-gen/internal/identifier"
	"github.com/Menach0/ai-spigot-gen/internal/llm"
	"github.com/Menach0/ai-spigot-gen/internal/project"
	"github.com/Menach0/ai-spigot-gen/internal/session"
)

// apiServer wires the generation pipeline behind two JSON endpoints and the
// zip download.
type apiServer struct {
	requestor *generate.Requestor
	sessions  *session.Store
}

func newAPIServer(requestor *generate.Requestor, sessions *session.Store) *apiServer {
	return &apiServer{requestor: requestor, sessions: sessions}
}

func buildMux(s *apiServer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/download", s.handleDownload)
	return mux
}

func (s *apiServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

type generateResponse struct {
	ID          string `json:"id"`
	ClassName   string `json:"class_name"`
	PackageName string `json:"package_name"`
	Source      string `json:"source"`
	Manifest    string `json:"manifest"`
	ArchiveName string `json:"archive_name"`
}

func (s *apiServer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req generate.PluginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	ctx := llm.WithStage(r.Context(), "generate")
	art, err := s.requestor.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, generate.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// Generation failure: report the cause verbatim, expose nothing
		// partial.
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	id, err := s.sessions.Put(req, art)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		ID:          id,
		ClassName:   string(art.ClassName),
		PackageName: string(art.PackageName),
		Source:      art.Source,
		Manifest:    art.Manifest,
		ArchiveName: archive.FileName(string(art.ClassName)),
	})
}

// downloadRequest is the stateless POST body: the client hands back the
// artifact it received from /api/generate.
type downloadRequest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Source      string `json:"source"`
	Manifest    string `json:"manifest"`
	ClassName   string `json:"class_name"`
	PackageName string `json:"package_name"`
}

func (s *apiServer) handleDownload(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		id := strings.TrimSpace(r.URL.Query().Get("id"))
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		ent, ok := s.sessions.Get(id)
		if !ok {
			http.Error(w, "unknown or expired id", http.StatusNotFound)
			return
		}
		s.serveArchive(w, ent.Request, ent.Artifact)
	case http.MethodPost:
		var in downloadRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		art, req, err := artifactFromDownloadRequest(in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.serveArchive(w, req, art)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// artifactFromDownloadRequest re-runs the checked parse so a stateless
// client cannot smuggle unvalidated identifiers into the assembler.
func artifactFromDownloadRequest(in downloadRequest) (*generate.GeneratedArtifact, generate.PluginRequest, error) {
	req := generate.PluginRequest{Name: in.Name, Version: in.Version, Description: "-"}
	if err := req.Validate(); err != nil {
		return nil, generate.PluginRequest{}, err
	}
	className, err := identifier.ParseClassName(in.ClassName)
	if err != nil {
		return nil, generate.PluginRequest{}, err
	}
	packageName, err := identifier.ParsePackageName(in.PackageName)
	if err != nil {
		return nil, generate.PluginRequest{}, err
	}
	if strings.TrimSpace(in.Source) == "" || strings.TrimSpace(in.Manifest) == "" {
		return nil, generate.PluginRequest{}, errors.New("source and manifest are required")
	}
	return &generate.GeneratedArtifact{
		Source:      in.Source,
		Manifest:    in.Manifest,
		ClassName:   className,
		PackageName: packageName,
	}, req, nil
}

// serveArchive recomputes descriptor, README and layout from the stored
// inputs and streams the zip. Nothing is cached between downloads.
func (s *apiServer) serveArchive(w http.ResponseWriter, req generate.PluginRequest, art *generate.GeneratedArtifact) {
	pom, err := descriptor.Synthesize(req.Name, req.Version, art.ClassName, art.PackageName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	layout, err := project.Assemble(req.Name, req.Version, art, pom)
	if err != nil {
		var ae *project.AssemblyError
		if errors.As(err, &ae) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	blob, err := archive.Build(layout)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	name := archive.FileName(string(art.ClassName))
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename=`+strconv.Quote(name))
	w.Header().Set("Content-Length", strconv.Itoa(len(blob)))
	if _, err := w.Write(blob); err != nil {
		log.Printf("download write failed: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
