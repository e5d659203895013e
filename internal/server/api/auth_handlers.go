package api

import (
	"github.com/dmitrijs2005/adminpanel/internal/server/navigation"
	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (s *HTTPServer) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := s.services.Auth.SignUp(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.logger.Info(c.Request.Context(), "Registered", "user_id", user.ID)
	created(c, gin.H{"id": user.ID, "email": user.Email})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	pair, err := s.services.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, pair)
}

func (s *HTTPServer) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	pair, err := s.services.Auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, pair)
}

func (s *HTTPServer) logout(c *gin.Context) {
	if err := s.services.Auth.SignOut(c.Request.Context(), currentSession(c).UserID); err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, nil)
}

func (s *HTTPServer) sessionInfo(c *gin.Context) {
	ok(c, currentSession(c))
}

func (s *HTTPServer) resolveRoute(c *gin.Context) {
	ok(c, navigation.Resolve(c.Query("path"), currentSession(c)))
}

func (s *HTTPServer) sidebar(c *gin.Context) {
	sb, err := s.services.Menu.Sidebar(c.Request.Context(), currentSession(c), c.Query("path"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, sb)
}

func (s *HTTPServer) dashboard(c *gin.Context) {
	stats, err := s.services.Dashboard.Stats(c.Request.Context(), currentSession(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, stats)
}
