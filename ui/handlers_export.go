package ui

import (
	"bytes"
	"fmt"
	"net/http"

	"gocsvlab/domain/core"
	"gocsvlab/internal/series"
	"gocsvlab/ui/middleware"

	"github.com/gin-gonic/gin"
)

// handleExport serves the current state in the requested format as a download
func (s *Server) handleExport(c *gin.Context) {
	exp, err := s.exporters.Get(c.Param("format"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	state := middleware.CurrentSession(c).Current()
	var buf bytes.Buffer
	if err := exp.Export(c.Request.Context(), &buf, state); err != nil {
		s.logger.Error("[Server] %s export of %s failed: %v", exp.Format(), state.FileName, err)
		middleware.AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.FileName(state.FileName)))
	c.Data(http.StatusOK, exp.ContentType(), buf.Bytes())
}

// handleChart builds chart data from ?kind&x&y&group_by&agg
func (s *Server) handleChart(c *gin.Context) {
	kind, err := series.ParseKind(c.Query("kind"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	agg, err := series.ParseAggregation(c.Query("agg"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	chart, err := series.Build(middleware.CurrentSession(c).Current(), series.Request{
		Kind:    kind,
		X:       c.Query("x"),
		Y:       c.Query("y"),
		GroupBy: c.Query("group_by"),
		Agg:     agg,
	})
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (s *Server) handleRecommendations(c *gin.Context) {
	recs := series.Recommend(middleware.CurrentSession(c).Current())
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (s *Server) handleCorrelations(c *gin.Context) {
	state := middleware.CurrentSession(c).Current()
	c.JSON(http.StatusOK, gin.H{"correlations": s.profiler.Correlations(state.Data, state.Types)})
}

func invalidBody(err error) error {
	return core.NewInvalidParamsError("body", err.Error())
}
