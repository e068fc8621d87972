package rest

import (
	"net/http"

	"github.com/dmitrijs2005/friendsdir/internal/server/services"
	"github.com/gin-gonic/gin"
)

func (s *Server) signup(c *gin.Context) {
	var in services.SignupInput
	if !bindJSON(c, &in) {
		return
	}

	user, err := s.auth.Signup(c.Request.Context(), in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) signin(c *gin.Context) {
	var in services.SigninInput
	if !bindJSON(c, &in) {
		return
	}

	token, err := s.auth.Signin(c.Request.Context(), in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

type verifyRequest struct {
	Token string `json:"token"`
}

// verify answers 401 {"verify":false} for every failure, including a
// malformed body, so clients only ever branch on the status.
func (s *Server) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"verify": false})
		return
	}

	user, err := s.auth.Verify(c.Request.Context(), req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"verify": false})
		return
	}
	c.JSON(http.StatusOK, user)
}
