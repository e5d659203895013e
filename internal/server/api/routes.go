package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) routes() *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = maxUploadMemory
	r.Use(s.requestLogger(), s.recovery())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api")
	api.POST("/auth/signup", s.signUp)
	api.POST("/auth/login", s.login)
	api.POST("/auth/refresh", s.refresh)
	api.GET("/navigation/resolve", s.optionalAuth(), s.resolveRoute)

	byID := s.requireUUID("id")

	authed := api.Group("", s.requireAuth())
	authed.POST("/auth/logout", s.logout)
	authed.GET("/session", s.sessionInfo)
	authed.GET("/navigation", s.sidebar)
	authed.GET("/dashboard", s.dashboard)

	authed.GET("/tables/:entity", s.tablePage)
	authed.POST("/tables/:entity", s.tableCreate)
	authed.PUT("/tables/:entity/:id", byID, s.tableUpdate)
	authed.DELETE("/tables/:entity/:id", byID, s.tableDelete)
	authed.GET("/tables/:entity/export.xlsx", s.tableExportWorkbook)
	authed.GET("/tables/:entity/export.pdf", s.tableExportDocument)
	authed.POST("/tables/:entity/import", s.tableImport)

	authed.GET("/profile", s.profileGet)
	authed.PUT("/profile", s.profileUpdate)
	authed.PUT("/profile/password", s.profilePassword)
	authed.POST("/profile/avatar", s.profileAvatar)

	admin := authed.Group("", s.requireAdmin())
	admin.GET("/employees", s.employeeList)
	admin.POST("/employees", s.employeeCreate)
	admin.PUT("/employees/:id", byID, s.employeeUpdate)
	admin.DELETE("/employees/:id", byID, s.employeeDelete)

	admin.GET("/users", s.userList)
	admin.POST("/users", s.userCreate)
	admin.PATCH("/users/:id/active", byID, s.userSetActive)
	admin.PUT("/users/:id/role", byID, s.userSetRole)

	admin.GET("/menu-items", s.menuList)
	admin.POST("/menu-items", s.menuCreate)
	admin.PUT("/menu-items/:id", byID, s.menuUpdate)
	admin.DELETE("/menu-items/:id", byID, s.menuDelete)

	r.NoRoute(func(c *gin.Context) { fail(c, http.StatusNotFound, "not found", nil) })
	return r
}
