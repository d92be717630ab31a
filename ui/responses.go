package ui

import (
	"gocsvlab/domain/core"
	"gocsvlab/domain/dataset"
	"gocsvlab/domain/profiling"
	"gocsvlab/domain/snapshot"
	"gocsvlab/internal/session"
)

// StateResponse summarizes a session's current state
type StateResponse struct {
	SessionID  core.SessionID          `json:"session_id"`
	FileName   string                  `json:"file_name"`
	Format     string                  `json:"format,omitempty"`
	Columns    []string                `json:"columns"`
	Rows       int                     `json:"rows"`
	Types      profiling.TypeMap       `json:"types"`
	Statistics profiling.StatisticsMap `json:"statistics"`
	Overview   profiling.Overview      `json:"overview"`
	Cursor     int                     `json:"cursor"`
	CanUndo    bool                    `json:"can_undo"`
	CanRedo    bool                    `json:"can_redo"`
}

func newStateResponse(sess *session.Session) StateResponse {
	state := sess.Current()
	_, cursor := sess.History()
	return StateResponse{
		SessionID:  sess.ID(),
		FileName:   state.FileName,
		Format:     sess.Format(),
		Columns:    state.Columns(),
		Rows:       state.NumRows(),
		Types:      state.Types,
		Statistics: state.Statistics,
		Overview:   state.Overview(),
		Cursor:     cursor,
		CanUndo:    sess.CanUndo(),
		CanRedo:    sess.CanRedo(),
	}
}

// RowsResponse is one page of rows
type RowsResponse struct {
	Total   int              `json:"total"`
	Offset  int              `json:"offset"`
	Limit   int              `json:"limit"`
	Columns []string         `json:"columns"`
	Rows    []dataset.Record `json:"rows"`
}

// TransformationRequest names an operator and its parameters
type TransformationRequest struct {
	Operator string                 `json:"operator" binding:"required"`
	Params   map[string]interface{} `json:"params"`
}

// HistoryMoveResponse reports an applied, undone or redone step
type HistoryMoveResponse struct {
	Action string                `json:"action"`
	Entry  snapshot.HistoryEntry `json:"entry"`
	State  StateResponse         `json:"state"`
}

// HistoryResponse lists the history entries
type HistoryResponse struct {
	Entries []snapshot.HistoryEntry `json:"entries"`
	Cursor  int                     `json:"cursor"`
}
