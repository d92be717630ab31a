package ui

import (
	"errors"
	"net/http"
	"strconv"

	"gocsvlab/domain/core"
	"gocsvlab/domain/dataset"
	"gocsvlab/internal/session"
	"gocsvlab/internal/transform"
	"gocsvlab/ui/middleware"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000
)

// handleCreateSession loads the multipart "file" field into a new session
func (s *Server) handleCreateSession(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)

	header, err := c.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			middleware.AbortWithError(c, err)
			return
		}
		middleware.AbortWithError(c, core.NewInvalidParamsError("file", "is required"))
		return
	}
	file, err := header.Open()
	if err != nil {
		middleware.AbortWithError(c, core.NewParseError(header.Filename, err))
		return
	}
	defer file.Close()

	result, err := s.loader.Load(c.Request.Context(), header.Filename, file)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	sess := session.New(s.profiler, session.WithLogger(s.logger), session.WithMetrics(s.metrics))
	sess.Load(result)
	s.store.Put(sess)

	s.logger.Info("[Server] session %s loaded %s (%d rows)", sess.ID(), result.FileName, len(result.Records))
	c.JSON(http.StatusCreated, newStateResponse(sess))
}

func (s *Server) handleGetSession(c *gin.Context) {
	c.JSON(http.StatusOK, newStateResponse(middleware.CurrentSession(c)))
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := s.store.Delete(sess.ID()); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handleRows pages through the current rows without touching the state
func (s *Server) handleRows(c *gin.Context) {
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	limit, err := queryInt(c, "limit", defaultPageSize)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	if limit < 1 || limit > maxPageSize {
		middleware.AbortWithError(c, core.NewInvalidParamsError("limit", "must be between 1 and "+strconv.Itoa(maxPageSize)))
		return
	}

	ds := middleware.CurrentSession(c).Current().Data
	total := ds.NumRows()
	end := offset + limit
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	resp := RowsResponse{Total: total, Offset: offset, Limit: limit, Columns: ds.Columns()}
	for i := offset; i < end; i++ {
		resp.Rows = append(resp.Rows, ds.Record(i))
	}
	if resp.Rows == nil {
		resp.Rows = []dataset.Record{}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleListOperators(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"operators": transform.Names()})
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, core.NewInvalidParamsError(key, "must be a non-negative integer")
	}
	return n, nil
}

func isTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}
