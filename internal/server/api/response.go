package api

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/server/schema"
	"github.com/gin-gonic/gin"
)

// Response is the envelope of every JSON reply. Code is 0 on success and the
// HTTP status otherwise.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: 0, Message: "success", Data: data})
}

func fail(c *gin.Context, status int, message string, data any) {
	c.AbortWithStatusJSON(status, Response{Code: status, Message: message, Data: data})
}

func badRequest(c *gin.Context, err error) {
	fail(c, http.StatusBadRequest, "invalid request: "+err.Error(), nil)
}

// statusOf maps a service error to an HTTP status and the message shown to
// the user.
func statusOf(err error) (int, string, any) {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, verr.Error(), gin.H{"fields": verr.Map()}
	case errors.Is(err, common.ErrorEmptyImport):
		return http.StatusUnprocessableEntity, err.Error(), nil
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, "invalid email or password", nil
	case errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return http.StatusUnauthorized, err.Error(), nil
	case errors.Is(err, common.ErrorInactiveAccount),
		errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden, err.Error(), nil
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorUnknownEntity):
		return http.StatusNotFound, err.Error(), nil
	case errors.Is(err, common.ErrorConfirmationRequired):
		return http.StatusConflict, "deletion must be confirmed", nil
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, err.Error(), nil
	}
	return http.StatusInternalServerError, err.Error(), nil
}

func (s *HTTPServer) respondError(c *gin.Context, err error) {
	status, msg, data := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
	}
	fail(c, status, msg, data)
}
