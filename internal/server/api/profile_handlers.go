package api

import (
	"github.com/dmitrijs2005/adminpanel/internal/server/services"
	"github.com/gin-gonic/gin"
)

type passwordRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (s *HTTPServer) profileGet(c *gin.Context) {
	p, err := s.services.Profile.Get(c.Request.Context(), currentSession(c).UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, p)
}

func (s *HTTPServer) profileUpdate(c *gin.Context) {
	var in services.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	p, err := s.services.Profile.Update(c.Request.Context(), currentSession(c).UserID, in)
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, p)
}

func (s *HTTPServer) profilePassword(c *gin.Context) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	err := s.services.Auth.ChangePassword(c.Request.Context(), currentSession(c).UserID, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, nil)
}

func (s *HTTPServer) profileAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		badRequest(c, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c, err)
		return
	}
	defer f.Close()

	url, err := s.services.Profile.UploadAvatar(c.Request.Context(), currentSession(c).UserID, fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, gin.H{"avatar_url": url})
}
