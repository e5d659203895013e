package api

import (
	"strconv"

	"github.com/dmitrijs2005/adminpanel/internal/server/services"
	"github.com/gin-gonic/gin"
)

func confirmed(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.Query("confirm"))
	return err == nil && v
}

// --- employees ---

func (s *HTTPServer) employeeList(c *gin.Context) {
	list, err := s.services.Employees.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, list)
}

func (s *HTTPServer) employeeCreate(c *gin.Context) {
	var in services.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	e, err := s.services.Employees.Create(c.Request.Context(), in)
	if err != nil {
		s.respondError(c, err)
		return
	}
	created(c, e)
}

func (s *HTTPServer) employeeUpdate(c *gin.Context) {
	var in services.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	e, err := s.services.Employees.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, e)
}

func (s *HTTPServer) employeeDelete(c *gin.Context) {
	if err := s.services.Employees.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, nil)
}

// --- users ---

type activeRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type roleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (s *HTTPServer) userList(c *gin.Context) {
	list, err := s.services.Users.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, list)
}

func (s *HTTPServer) userCreate(c *gin.Context) {
	var in services.AccountInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	u, err := s.services.Users.CreateAccount(c.Request.Context(), in)
	if err != nil {
		s.respondError(c, err)
		return
	}
	created(c, u)
}

func (s *HTTPServer) userSetActive(c *gin.Context) {
	var req activeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := s.services.Users.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive); err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, nil)
}

func (s *HTTPServer) userSetRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := s.services.Users.UpdateRole(c.Request.Context(), c.Param("id"), req.Role); err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, nil)
}

// --- menu items ---

func (s *HTTPServer) menuList(c *gin.Context) {
	items, err := s.services.Menu.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, items)
}

func (s *HTTPServer) menuCreate(c *gin.Context) {
	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	m, err := s.services.Menu.Create(c.Request.Context(), in)
	if err != nil {
		s.respondError(c, err)
		return
	}
	created(c, m)
}

func (s *HTTPServer) menuUpdate(c *gin.Context) {
	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	m, err := s.services.Menu.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, m)
}

func (s *HTTPServer) menuDelete(c *gin.Context) {
	if err := s.services.Menu.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, nil)
}
