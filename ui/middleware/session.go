package middleware

import (
	"gocsvlab/domain/core"
	"gocsvlab/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionKey = "gocsvlab.session"

// LoadSession resolves the :id route parameter against store and makes the
// session available through CurrentSession. Unknown or malformed IDs
// abort with 404.
func LoadSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("id")
		id, err := core.ParseSessionID(raw)
		if err != nil {
			AbortWithError(c, core.NewNotFoundError("session", raw))
			return
		}

		sess, err := store.Get(id)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session loaded by LoadSession
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
