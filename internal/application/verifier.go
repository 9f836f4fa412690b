package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
	"golang.org/x/sync/errgroup"
)

// Verifier fingerprints discovered paths and asks the catalog which build
// each one is. By default a single path is in flight at a time.
type Verifier struct {
	fingerprints ports.Fingerprinter
	catalog      ports.Catalog
	logger       *slog.Logger
	concurrency  int
}

type VerifierOption func(*Verifier)

func WithConcurrency(limit int) VerifierOption {
	return func(v *Verifier) {
		if limit > 0 {
			v.concurrency = limit
		}
	}
}

func NewVerifier(fingerprints ports.Fingerprinter, catalog ports.Catalog, logger *slog.Logger, opts ...VerifierOption) *Verifier {
	v := &Verifier{
		fingerprints: fingerprints,
		catalog:      catalog,
		logger:       loggerOrDiscard(logger),
		concurrency:  1,
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// VerificationSession holds the results of one Verify call, keyed by path.
type VerificationSession struct {
	mu      sync.RWMutex
	order   []string
	results map[string]domain.PathCheckResult
}

func (s *VerificationSession) Result(path string) (domain.PathCheckResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[path]
	return result, ok
}

// Results returns every result in the order the paths were submitted.
func (s *VerificationSession) Results() []domain.PathCheckResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]domain.PathCheckResult, 0, len(s.order))
	for _, path := range s.order {
		results = append(results, s.results[path])
	}

	return results
}

func (s *VerificationSession) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := 0
	for _, result := range s.results {
		if result.IsChecking {
			pending++
		}
	}

	return pending
}

func (s *VerificationSession) resolve(result domain.PathCheckResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.results[result.Path]
	if !ok || !current.IsChecking {
		return false
	}
	s.results[result.Path] = result

	return true
}

// Verify checks every distinct path once. publish observes each path's
// initial checking result and then its resolution as soon as it is known;
// calls to publish are never concurrent.
func (v *Verifier) Verify(ctx context.Context, paths []string, publish func(domain.PathCheckResult)) *VerificationSession {
	session := &VerificationSession{results: map[string]domain.PathCheckResult{}}
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if _, seen := session.results[path]; seen {
			continue
		}
		session.order = append(session.order, path)
		session.results[path] = domain.CheckingResult(path)
	}

	var publishMu sync.Mutex
	emit := func(result domain.PathCheckResult) {
		if publish == nil {
			return
		}
		publishMu.Lock()
		defer publishMu.Unlock()
		publish(result)
	}

	for _, path := range session.order {
		emit(domain.CheckingResult(path))
	}

	var group errgroup.Group
	group.SetLimit(v.concurrency)
	for _, path := range session.order {
		group.Go(func() error {
			result := v.check(ctx, path)
			if session.resolve(result) {
				emit(result)
			}
			return nil
		})
	}
	_ = group.Wait()

	return session
}

func (v *Verifier) check(ctx context.Context, path string) domain.PathCheckResult {
	pending := domain.CheckingResult(path)
	if err := ctx.Err(); err != nil {
		return pending.Resolve("", nil)
	}

	fingerprint, err := v.fingerprints.GetGameMD5(ctx, path)
	if err != nil || strings.TrimSpace(fingerprint) == "" {
		v.logger.Warn("fingerprint failed", "path", path, "err", err)
		return pending.Resolve("", nil)
	}

	outcome, err := v.catalog.FindPatch(ctx, fingerprint)
	if err != nil {
		v.logger.Warn("catalog lookup failed", "path", path, "md5", fingerprint, "err", err)
		outcome = domain.NetworkErrorOutcome()
	}

	return pending.Resolve(fingerprint, &outcome)
}
