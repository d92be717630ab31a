package ui

import (
	"fmt"
	"net/http"

	"gocsvlab/domain/dataset"
	"gocsvlab/internal/transform"
	"gocsvlab/ui/middleware"

	"github.com/gin-gonic/gin"
)

// handleApplyTransformation parses {"operator", "params"} and applies it.
// A failed operator leaves the session unchanged.
func (s *Server) handleApplyTransformation(c *gin.Context) {
	var req TransformationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, invalidBody(err))
		return
	}

	op, err := transform.Parse(req.Operator, stringParams(req.Params))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	sess := middleware.CurrentSession(c)
	entry, err := sess.Apply(op)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, HistoryMoveResponse{Action: entry.Action, Entry: entry, State: newStateResponse(sess)})
}

func (s *Server) handleUndo(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	entry, undone, err := sess.Undo()
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, HistoryMoveResponse{Action: undone, Entry: entry, State: newStateResponse(sess)})
}

func (s *Server) handleRedo(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	entry, err := sess.Redo()
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, HistoryMoveResponse{Action: entry.Action, Entry: entry, State: newStateResponse(sess)})
}

func (s *Server) handleHistory(c *gin.Context) {
	entries, cursor := middleware.CurrentSession(c).History()
	c.JSON(http.StatusOK, HistoryResponse{Entries: entries, Cursor: cursor})
}

// stringParams flattens JSON parameter values into operator parameters
func stringParams(in map[string]interface{}) transform.Params {
	out := make(transform.Params, len(in))
	for k, v := range in {
		switch t := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = t
		case float64:
			out[k] = dataset.FormatNumber(t)
		default:
			out[k] = fmt.Sprint(t)
		}
	}
	return out
}
