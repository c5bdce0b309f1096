package settings

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nodeconf/nodeconf-cli/pkg/store"
)

// Saver submits a candidate configuration. It must not block; the outcome
// is reported through later store snapshots.
type Saver interface {
	Save(text string)
}

// SaverFunc adapts a plain function to the Saver interface.
type SaverFunc func(text string)

func (f SaverFunc) Save(text string) {
	f(text)
}

// PendingKind tells the host what a scheduled callback is for.
type PendingKind int

const (
	// PendingReset clears the form back to the stored document once the
	// success window has elapsed.
	PendingReset PendingKind = iota
	// PendingExpire only needs a re-render so the failure flag can drop.
	PendingExpire
)

// Pending is delayed work requested by the session. The host must call
// Fire(ID) after Delay.
type Pending struct {
	ID    uint64
	Kind  PendingKind
	Delay time.Duration
}

// State is the editable part of a settings session.
type State struct {
	HasErrors          bool
	HasLocalChanges    bool
	HasExternalChanges bool
	Draft              string
	RemountToken       string
	LanguageModalOpen  bool
}

// Session tracks one open settings page: the draft the user is editing and
// how it relates to the store's document. It is not safe for concurrent
// use; hosts drive it from a single event loop.
type Session struct {
	state  State
	snap   store.Snapshot
	saver  Saver
	now    func() time.Time
	window time.Duration
	token  func() string
	logger *slog.Logger

	nextID  uint64
	pending map[uint64]PendingKind
	closed  bool
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithWindow replaces PauseAfterSave.
func WithWindow(window time.Duration) Option {
	return func(s *Session) {
		s.window = window
	}
}

// WithTokenSource replaces the remount token generator.
func WithTokenSource(token func() string) Option {
	return func(s *Session) {
		s.token = token
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession opens a session seeded with whatever the store currently holds.
func NewSession(initial store.Snapshot, saver Saver, opts ...Option) *Session {
	s := &Session{
		snap:    initial,
		saver:   saver,
		now:     time.Now,
		window:  PauseAfterSave,
		token:   uuid.NewString,
		logger:  slog.New(slog.DiscardHandler),
		pending: make(map[uint64]PendingKind),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.Draft = initial.Text()
	s.state.RemountToken = s.token()
	return s
}

// State returns a copy of the session state.
func (s *Session) State() State {
	return s.state
}

// Snapshot returns the last store snapshot the session observed.
func (s *Session) Snapshot() store.Snapshot {
	return s.snap
}

// Window returns the save feedback window.
func (s *Session) Window() time.Duration {
	return s.window
}

// OnChange records an edit of the draft.
func (s *Session) OnChange(text string) {
	s.state.HasErrors = !IsValid(text)
	s.state.HasLocalChanges = s.snap.Document == nil || s.snap.Document.Text != text
	s.state.Draft = text
}

// OnReset discards the draft and all change flags, and asks the editor
// widget to start over.
func (s *Session) OnReset() {
	s.state.HasErrors = false
	s.state.HasLocalChanges = false
	s.state.HasExternalChanges = false
	s.state.Draft = s.snap.Text()
	s.state.RemountToken = s.token()
	s.logger.Debug("settings reset", "token", s.state.RemountToken)
}

// OnSave hands the draft to the saver unchanged.
func (s *Session) OnSave() {
	if s.closed || s.saver == nil {
		return
	}
	s.logger.Info("settings save requested", "bytes", len(s.state.Draft))
	s.saver.Save(s.state.Draft)
}

// Observe applies a new store snapshot and returns any delayed work the
// transition requires.
func (s *Session) Observe(next store.Snapshot) []Pending {
	if s.closed {
		return nil
	}
	prev := s.snap
	s.snap = next

	var out []Pending
	if !next.SaveLastSuccess.Equal(prev.SaveLastSuccess) && !next.SaveLastSuccess.IsZero() {
		out = append(out, s.schedule(PendingReset))
	}
	if !next.SaveLastError.Equal(prev.SaveLastError) && !next.SaveLastError.IsZero() {
		out = append(out, s.schedule(PendingExpire))
	}
	if prev.Document != next.Document {
		s.onExternalUpdate(prev.Document, next)
	}
	return out
}

func (s *Session) onExternalUpdate(prev *store.Document, next store.Snapshot) {
	// First document, or the change is our own save landing.
	if prev == nil || IsRecent(next.SaveLastSuccess, s.now(), s.window) {
		s.state.Draft = next.Text()
		s.state.RemountToken = s.token()
		return
	}
	if next.Text() != s.state.Draft {
		s.logger.Info("configuration changed outside this session")
		s.state.HasExternalChanges = true
	}
}

func (s *Session) schedule(kind PendingKind) Pending {
	s.nextID++
	s.pending[s.nextID] = kind
	return Pending{ID: s.nextID, Kind: kind, Delay: s.window}
}

// Fire runs the pending work with the given id. It reports false when the
// id is unknown or the session is closed.
func (s *Session) Fire(id uint64) bool {
	if s.closed {
		return false
	}
	kind, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	if kind == PendingReset {
		s.OnReset()
	}
	return true
}

// PendingCount returns the number of scheduled callbacks not yet fired.
func (s *Session) PendingCount() int {
	return len(s.pending)
}

// OpenLanguageModal shows the language selection overlay.
func (s *Session) OpenLanguageModal() {
	s.state.LanguageModalOpen = true
}

// CloseLanguageModal hides the language selection overlay.
func (s *Session) CloseLanguageModal() {
	s.state.LanguageModalOpen = false
}

// Close ends the session. Pending work is dropped and later events are
// ignored.
func (s *Session) Close() {
	s.closed = true
	s.pending = make(map[uint64]PendingKind)
}

// Closed reports whether Close was called.
func (s *Session) Closed() bool {
	return s.closed
}

// Props derives everything the view needs at time now.
func (s *Session) Props(now time.Time) Props {
	return Props{
		Blocked:            s.snap.Blocked,
		Loading:            s.snap.Loading || (s.state.Draft == "" && s.snap.LastError == nil),
		Saving:             s.snap.Saving,
		HasSaveSucceeded:   IsRecent(s.snap.SaveLastSuccess, now, s.window),
		HasSaveFailed:      IsRecent(s.snap.SaveLastError, now, s.window),
		HasErrors:          s.state.HasErrors,
		HasLocalChanges:    s.state.HasLocalChanges,
		HasExternalChanges: s.state.HasExternalChanges,
		HasConfig:          s.snap.Document != nil || s.state.Draft != "",
		Config:             s.state.Draft,
		RemountToken:       s.state.RemountToken,
		LanguageModalOpen:  s.state.LanguageModalOpen,
	}
}

// Phase reports where the session is in its lifecycle at time now.
func (s *Session) Phase(now time.Time) Phase {
	return s.Props(now).Phase()
}
