package middleware

import (
	stderrors "errors"
	"net/http"

	apperrors "gocsvlab/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// AbortWithError classifies err and writes it with the matching status
func AbortWithError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: "upload exceeds the size limit",
			Code:  apperrors.CodeInvalidParams,
		})
		return
	}

	appErr := apperrors.FromDomain(err)
	c.AbortWithStatusJSON(apperrors.HTTPStatus(appErr.Code), ErrorResponse{
		Error: appErr.Message,
		Code:  appErr.Code,
	})
}
