package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// adminUsers is the observer polling endpoint: the full presence
// snapshot joined with account and profile data.
func (s *Server) adminUsers(c *gin.Context) {
	users, err := s.store.FullSnapshot()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
