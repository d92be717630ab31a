package snapshot

import (
	"gocsvlab/domain/core"
	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
)

// DatasetState is an immutable view of one loaded dataset at one point in
// its transformation history. A new state replaces the old one on every
// change; maps and rows must not be modified after construction.
type DatasetState struct {
	Data       *dataset.Dataset        `json:"-"`
	FileName   string                  `json:"file_name"`
	Types      profiling.TypeMap       `json:"types"`
	Statistics profiling.StatisticsMap `json:"statistics"`
}

// NewDatasetState assembles a state from a dataset and its profile
func NewDatasetState(data *dataset.Dataset, fileName string, types profiling.TypeMap, stats profiling.StatisticsMap) *DatasetState {
	if data == nil {
		data = dataset.Empty()
	}
	return &DatasetState{
		Data:       data,
		FileName:   fileName,
		Types:      types,
		Statistics: stats,
	}
}

// Columns returns the column list in display order
func (s *DatasetState) Columns() []string {
	return s.Data.Columns()
}

// NumRows returns the row count
func (s *DatasetState) NumRows() int {
	return s.Data.NumRows()
}

// Overview summarizes the state's shape and quality
func (s *DatasetState) Overview() profiling.Overview {
	return profiling.NewOverview(s.Data.NumRows(), s.Data.Columns(), s.Types, s.Statistics)
}

// HistoryEntry is one immutable step of the undo/redo history
type HistoryEntry struct {
	ID        core.EntryID   `json:"id"`
	State     *DatasetState  `json:"-"`
	Timestamp core.Timestamp `json:"timestamp"`
	Action    string         `json:"action"`
}

// NewHistoryEntry stamps state with an action label
func NewHistoryEntry(state *DatasetState, action string, at core.Timestamp) HistoryEntry {
	return HistoryEntry{
		ID:        core.NewEntryID(),
		State:     state,
		Timestamp: at,
		Action:    action,
	}
}
