package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func pageParam(c *gin.Context) (int, error) {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("page must be a number")
	}
	return page, nil
}

func (s *HTTPServer) tablePage(c *gin.Context) {
	page, err := pageParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	p, err := s.services.Tables.Page(c.Request.Context(), c.Param("entity"), page)
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, p)
}

func (s *HTTPServer) tableCreate(c *gin.Context) {
	var values map[string]any
	if err := c.ShouldBindJSON(&values); err != nil {
		badRequest(c, err)
		return
	}
	rec, err := s.services.Tables.Create(c.Request.Context(), c.Param("entity"), values)
	if err != nil {
		s.respondError(c, err)
		return
	}
	created(c, rec)
}

func (s *HTTPServer) tableUpdate(c *gin.Context) {
	var values map[string]any
	if err := c.ShouldBindJSON(&values); err != nil {
		badRequest(c, err)
		return
	}
	rec, err := s.services.Tables.Update(c.Request.Context(), c.Param("entity"), c.Param("id"), values)
	if err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, rec)
}

func (s *HTTPServer) tableDelete(c *gin.Context) {
	if err := s.services.Tables.Delete(c.Request.Context(), c.Param("entity"), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	ok(c, nil)
}

func (s *HTTPServer) tableExportWorkbook(c *gin.Context) {
	page, err := pageParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	f, err := s.services.Tables.ExportWorkbook(c.Request.Context(), c.Param("entity"), page)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.FileName))
	c.Data(http.StatusOK, f.ContentType, f.Data)
}

func (s *HTTPServer) tableExportDocument(c *gin.Context) {
	page, err := pageParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	f, err := s.services.Tables.ExportDocument(c.Request.Context(), c.Param("entity"), page)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.FileName))
	c.Data(http.StatusOK, f.ContentType, f.Data)
}

func (s *HTTPServer) tableImport(c *gin.Context) {
	fh, err := c.FormFile("file")
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

	n, err := s.services.Tables.Import(c.Request.Context(), c.Param("entity"), f)
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.logger.Info(c.Request.Context(), "Imported rows", "entity", c.Param("entity"), "count", n)
	ok(c, gin.H{"imported": n})
}
