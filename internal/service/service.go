package service

import (
	"errors"
	"time"

	"github.com/frankasd12/NibbleCheck/internal/catalog"
)

const (
	// CandidateLimit is how many catalog candidates each token considers.
	CandidateLimit = 5
	// DefaultSearchLimit and MaxSearchLimit bound direct lookups.
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50

	DefaultFloor        = 0.30
	defaultQueryTimeout = 2 * time.Second
	defaultConcurrency  = 4
)

// ErrInvalidInput marks requests rejected before touching the catalog.
var ErrInvalidInput = errors.New("invalid input")

// Config tunes matching. The same Floor must be given to the catalog so its
// own pruning agrees with the filtering done here.
type Config struct {
	Floor        float64
	QueryTimeout time.Duration
	Concurrency  int
}

// Service holds all dependencies for the resolver.
type Service struct {
	catalog catalog.Catalog
	cfg     Config
}

// New creates a new Service. Zero QueryTimeout and Concurrency take defaults.
func New(cat catalog.Catalog, cfg Config) *Service {
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = defaultQueryTimeout
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	return &Service{catalog: cat, cfg: cfg}
}

// Floor returns the similarity floor in effect.
func (s *Service) Floor() float64 {
	return s.cfg.Floor
}
