package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cskr/pubsub"
)

const topicSnapshot = "config.snapshot"

// Subscription delivers Snapshot values published by the store.
type Subscription chan interface{}

// Store owns the canonical configuration document and the load/save status
// the settings page renders from. All mutations publish a fresh Snapshot.
type Store struct {
	backend Backend
	logger  *slog.Logger
	now     func() time.Time

	mu   sync.Mutex
	snap Snapshot
	ps   *pubsub.PubSub

	// saveGen advances whenever a save starts or commits. A load that
	// began under an older generation must not replace the document.
	saveGen uint64
	saving  int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store over backend. Nothing is loaded until Start or Load.
func New(backend Backend, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store{
		backend: backend,
		logger:  logger,
		now:     time.Now,
		ps:      pubsub.New(16),
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the backend the store persists to.
func (s *Store) Backend() Backend {
	return s.backend
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Subscribe returns a channel receiving every published Snapshot.
func (s *Store) Subscribe() Subscription {
	return s.ps.Sub(topicSnapshot)
}

// Unsubscribe stops delivery to sub and closes it.
func (s *Store) Unsubscribe(sub Subscription) {
	s.ps.Unsub(sub, topicSnapshot)
}

// Start performs the initial load and then follows backend change
// notifications until Close or until ctx ends.
func (s *Store) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.ctx, cancel)

	if err := s.Load(ctx); err != nil {
		s.logger.Warn("initial config load failed", "backend", s.backend.Name(), "error", err)
	}

	changes, err := s.backend.Watch(ctx)
	if err != nil {
		stop()
		cancel()
		return fmt.Errorf("watch %s: %w", s.backend.Name(), err)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer stop()
		defer cancel()
		for range changes {
			if err := s.Load(ctx); err != nil {
				s.logger.Debug("config reload failed", "error", err)
			}
		}
	}()
	return nil
}

// Load reads the configuration from the backend. The current *Document is
// kept when the text is unchanged. A read that overlaps a save is dropped,
// since it may predate what the save stored.
func (s *Store) Load(ctx context.Context) error {
	var gen uint64
	s.update(func(snap *Snapshot) {
		snap.Loading = true
		gen = s.saveGen
	})

	data, err := s.backend.Read(ctx)
	if err != nil {
		s.update(func(snap *Snapshot) {
			snap.Loading = false
			if s.stale(gen) {
				return
			}
			snap.LastError = err
			snap.Blocked = errors.Is(err, ErrBlocked)
		})
		return err
	}

	text := string(data)
	s.update(func(snap *Snapshot) {
		snap.Loading = false
		if s.stale(gen) {
			s.logger.Debug("dropping reload that overlapped a save")
			return
		}
		snap.LastError = nil
		snap.Blocked = false
		if snap.Document == nil || snap.Document.Text != text {
			snap.Document = &Document{Text: text, LoadedAt: s.now()}
		}
	})
	return nil
}

// Save submits text for persistence without waiting. The outcome shows up
// in SaveLastSuccess or SaveLastError of a later Snapshot.
func (s *Store) Save(text string) {
	s.wg.Add(1)
	s.beginSave()
	go func() {
		defer s.wg.Done()
		if err := s.persist(s.ctx, text); err != nil {
			s.logger.Error("config save failed", "backend", s.backend.Name(), "error", err)
		}
	}()
}

// SaveSync persists text and returns the backend error, if any.
func (s *Store) SaveSync(ctx context.Context, text string) error {
	s.beginSave()
	return s.persist(ctx, text)
}

func (s *Store) beginSave() {
	s.update(func(snap *Snapshot) {
		s.saveGen++
		s.saving++
		snap.Saving = true
	})
}

// endSave must run under s.mu.
func (s *Store) endSave(snap *Snapshot) {
	s.saveGen++
	s.saving--
	snap.Saving = s.saving > 0
}

// stale must run under s.mu.
func (s *Store) stale(gen uint64) bool {
	return s.saving > 0 || s.saveGen != gen
}

// persist requires a matching beginSave.
func (s *Store) persist(ctx context.Context, text string) error {
	if err := s.backend.Write(ctx, []byte(text)); err != nil {
		s.update(func(snap *Snapshot) {
			s.endSave(snap)
			snap.SaveLastError = s.now()
		})
		return err
	}

	// Re-read so the document reflects what the backend actually stored.
	stored := text
	if data, err := s.backend.Read(ctx); err == nil {
		stored = string(data)
	} else {
		s.logger.Warn("reload after save failed", "error", err)
	}

	s.update(func(snap *Snapshot) {
		s.endSave(snap)
		snap.SaveLastSuccess = s.now()
		snap.LastError = nil
		if snap.Document == nil || snap.Document.Text != stored {
			snap.Document = &Document{Text: stored, LoadedAt: s.now()}
		}
	})
	s.logger.Info("config saved", "backend", s.backend.Name(), "bytes", len(stored))
	return nil
}

// update mutates the snapshot and publishes the result while holding the
// lock so subscribers observe snapshots in mutation order.
func (s *Store) update(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.snap)
	s.ps.Pub(s.snap, topicSnapshot)
}

// Close stops watching, cancels in-flight saves and waits for them.
func (s *Store) Close() {
	s.cancel()
	s.wg.Wait()
	s.ps.Shutdown()
}
