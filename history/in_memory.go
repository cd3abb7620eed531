package history

import (
	"sync"

	"github.com/hupe1980/gridmesh/core"
	"github.com/hupe1980/gridmesh/engine"
)

// Record is the stored trace of one run: the events in emission order and,
// once the run finished, its terminal report.
type Record struct {
	RunID  string
	Events []core.Event
	Report *engine.Report
}

// clone returns a deep copy safe to hand out.
func (r *Record) clone() *Record {
	out := &Record{
		RunID:  r.RunID,
		Events: append([]core.Event(nil), r.Events...),
	}
	if r.Report != nil {
		rep := *r.Report
		rep.FinalPositions = make(map[int]core.Position, len(r.Report.FinalPositions))
		for id, p := range r.Report.FinalPositions {
			rep.FinalPositions[id] = p
		}
		out.Report = &rep
	}
	return out
}

// InMemoryStore is a volatile run store keeping events and reports in a
// process local map keyed by run id. It is safe for concurrent access, so a
// single store can back every run of a RunBatch. Each returned record is
// cloned to prevent external mutation of internal state.
type InMemoryStore struct {
	mu   sync.RWMutex
	runs map[string]*Record
}

// NewInMemoryStore constructs an empty in-memory run store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{runs: make(map[string]*Record)}
}

// AppendEvent adds an event to an existing or newly created record.
func (s *InMemoryStore) AppendEvent(e core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.runs[e.RunID]
	if !ok {
		rec = &Record{RunID: e.RunID}
		s.runs[e.RunID] = rec
	}
	rec.Events = append(rec.Events, e)
}

// SaveReport attaches the terminal report to the run's record, creating the
// record when the run emitted no events.
func (s *InMemoryStore) SaveReport(report *engine.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.runs[report.RunID]
	if !ok {
		rec = &Record{RunID: report.RunID}
		s.runs[report.RunID] = rec
	}
	rec.Report = report
}

// Get returns a clone of the record for runID.
func (s *InMemoryStore) Get(runID string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.runs[runID]
	if !ok {
		return nil, false
	}
	return rec.clone(), true
}

// Len returns the number of stored runs.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

// Sink returns an EventSink that appends into the store, for wiring into
// the coordinator options.
func (s *InMemoryStore) Sink() core.EventSink {
	return func(e core.Event) {
		s.AppendEvent(e)
	}
}
