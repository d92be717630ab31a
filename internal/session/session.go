// Package session owns the active dataset state of one loaded file and
// its undo/redo history.
package session

import (
	"sync"
	"time"

	"gocsvlab/domain/core"
	"gocsvlab/domain/dataset"
	"gocsvlab/domain/snapshot"
	"gocsvlab/internal"
	"gocsvlab/internal/history"
	"gocsvlab/internal/metrics"
	"gocsvlab/internal/transform"
	"gocsvlab/ports"
)

// LoadedAction labels the first history entry of every dataset
const LoadedAction = "File uploaded"

// Session applies operators to the current dataset state and records each
// result in history. Every change replaces the state; none mutate it.
type Session struct {
	mu       sync.Mutex
	id       core.SessionID
	profiler ports.ProfilerPort
	history  *history.Manager
	current  *snapshot.DatasetState
	format   string
	logger   *internal.Logger
	metrics  *metrics.Metrics
	clock    core.Clock

	createdAt time.Time
	updatedAt time.Time
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(l *internal.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithMetrics records operator and history metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithClock overrides the time source for history timestamps
func WithClock(c core.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// New creates an empty session
func New(profiler ports.ProfilerPort, opts ...Option) *Session {
	s := &Session{
		id:       core.NewSessionID(),
		profiler: profiler,
		logger:   internal.DefaultLogger,
		clock:    core.SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.history = history.NewManagerWithClock(s.clock)
	s.createdAt = s.clock()
	s.updatedAt = s.createdAt
	return s
}

// ID returns the session identifier
func (s *Session) ID() core.SessionID {
	return s.id
}

// Initialize builds the first state from records and restarts history.
// Columns are the keys of the first record.
func (s *Session) Initialize(records []dataset.Record, fileName string) *snapshot.DatasetState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.profile(dataset.FromRecords(records), fileName)
	s.history.Reset()
	s.history.Push(state, LoadedAction)
	s.current = state
	s.updatedAt = s.clock()

	s.logger.Info("[Session] %s loaded %s: %d rows, %d columns", s.id, fileName, state.NumRows(), len(state.Columns()))
	s.metrics.ObserveDatasetLoaded(s.format)
	return state
}

// Load initializes the session from a loader result
func (s *Session) Load(result *ports.LoadResult) *snapshot.DatasetState {
	s.mu.Lock()
	s.format = result.Format
	s.mu.Unlock()
	return s.Initialize(result.Records, result.FileName)
}

// Apply runs op against the current state. On success the new state is
// pushed to history and returned as the new current entry; on failure the
// state and history are left as they were.
func (s *Session) Apply(op transform.Operator) (snapshot.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return snapshot.HistoryEntry{}, core.ErrNoDataset
	}

	start := time.Now()
	result, err := op.Apply(s.current.Data, s.current.Types)
	if err != nil {
		s.logger.Warn("[Session] %s %s failed: %v", s.id, op.Name(), err)
		s.metrics.ObserveTransformation(op.Name(), time.Since(start), err)
		return snapshot.HistoryEntry{}, err
	}

	state := s.profile(result.Data, s.current.FileName)
	entry := s.history.Push(state, result.Label)
	s.current = state
	s.updatedAt = s.clock()

	s.metrics.ObserveTransformation(op.Name(), time.Since(start), nil)
	s.logger.Debug("[Session] %s applied %s: %s", s.id, op.Name(), result.Label)
	return entry, nil
}

// Undo moves back one history entry. It returns the entry that is now
// current and the action label of the step that was reverted.
func (s *Session) Undo() (snapshot.HistoryEntry, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reverted, _ := s.history.Current()
	entry, err := s.history.Undo()
	s.metrics.ObserveHistoryMove("undo", err)
	if err != nil {
		return snapshot.HistoryEntry{}, "", err
	}
	s.current = entry.State
	s.updatedAt = s.clock()
	s.logger.Debug("[Session] %s undid: %s", s.id, reverted.Action)
	return entry, reverted.Action, nil
}

// Redo moves forward one history entry and returns it
func (s *Session) Redo() (snapshot.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.history.Redo()
	s.metrics.ObserveHistoryMove("redo", err)
	if err != nil {
		return snapshot.HistoryEntry{}, err
	}
	s.current = entry.State
	s.updatedAt = s.clock()
	s.logger.Debug("[Session] %s redid: %s", s.id, entry.Action)
	return entry, nil
}

// Format returns the source format of the loaded file, "" for records
func (s *Session) Format() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.format
}

// Current returns the active state, nil before Initialize
func (s *Session) Current() *snapshot.DatasetState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// History returns the entries in push order and the cursor
func (s *Session) History() ([]snapshot.HistoryEntry, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries(), s.history.Cursor()
}

// CanUndo reports whether Undo would succeed
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would succeed
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// UpdatedAt returns the time of the last state change
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// CreatedAt returns the creation time
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// profile re-infers types from scratch and recomputes statistics
func (s *Session) profile(ds *dataset.Dataset, fileName string) *snapshot.DatasetState {
	types := s.profiler.InferTypes(ds)
	stats := s.profiler.ComputeStatistics(ds, types)
	return snapshot.NewDatasetState(ds, fileName, types, stats)
}
