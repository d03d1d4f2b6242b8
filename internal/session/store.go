// Package session holds generated artifacts between the generate call and
// the download action. Entries live in a bounded in-process LRU with a TTL;
// nothing survives a restart.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Menach0/ai-spigot-gen/internal/generate"
)

// Entry pairs an artifact with the request that produced it, so a download
// can re-synthesize the descriptor and README from the original inputs.
type Entry struct {
	Request  generate.PluginRequest
	Artifact *generate.GeneratedArtifact

	expiresAt time.Time
}

type Store struct {
	cache *lru.Cache[string, Entry]
	ttl   time.Duration
	now   func() time.Time
}

func NewStore(maxEntries int, ttl time.Duration) (*Store, error) {
	if maxEntries <= 0 {
		maxEntries = 128
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	cache, err := lru.New[string, Entry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("session: init cache: %w", err)
	}
	return &Store{cache: cache, ttl: ttl, now: time.Now}, nil
}

// Put stores the entry under a fresh id and returns the id.
func (s *Store) Put(req generate.PluginRequest, art *generate.GeneratedArtifact) (string, error) {
	if art == nil {
		return "", fmt.Errorf("session: artifact is nil")
	}
	id, err := newID(art.ClassName.ArtifactID())
	if err != nil {
		return "", err
	}
	s.cache.Add(id, Entry{
		Request:   req,
		Artifact:  art,
		expiresAt: s.now().Add(s.ttl),
	})
	return id, nil
}

// Get returns the entry for id. Expired entries are evicted and reported as
// missing.
func (s *Store) Get(id string) (Entry, bool) {
	ent, ok := s.cache.Get(id)
	if !ok {
		return Entry{}, false
	}
	if s.now().After(ent.expiresAt) {
		s.cache.Remove(id)
		return Entry{}, false
	}
	return ent, true
}

// Len returns the number of live and expired-but-unevicted entries.
func (s *Store) Len() int { return s.cache.Len() }

// newID shapes ids as "<slug>-<hex>" so logs stay readable.
func newID(slug string) (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("session: generate id: %w", err)
	}
	if slug == "" {
		slug = "artifact"
	}
	return slug + "-" + hex.EncodeToString(b[:]), nil
}
