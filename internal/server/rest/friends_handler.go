package rest

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/friendsdir/internal/server/services"
	"github.com/gin-gonic/gin"
)

// listFriends serves GET /friends?id=<owner>. Without id the caller's own
// friends are listed.
func (s *Server) listFriends(c *gin.Context) {
	var owner int64
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"id": "Invalid id"})
			return
		}
		owner = id
	}

	list, err := s.friends.List(c.Request.Context(), caller(c), owner)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) createFriend(c *gin.Context) {
	var in services.FriendInput
	if !bindJSON(c, &in) {
		return
	}

	f, err := s.friends.Create(c.Request.Context(), caller(c), in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (s *Server) updateFriend(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var p services.FriendPatch
	if !bindJSON(c, &p) {
		return
	}

	f, err := s.friends.Update(c.Request.Context(), caller(c), id, p)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (s *Server) deleteFriend(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.friends.Delete(c.Request.Context(), caller(c), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
