// Package api exposes the admin panel over HTTP with gin.
package api

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/adminpanel/internal/logging"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/navigation"
	"github.com/dmitrijs2005/adminpanel/internal/server/services"
	"github.com/dmitrijs2005/adminpanel/internal/server/session"
	"github.com/gin-gonic/gin"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
	maxUploadMemory   = 8 << 20
)

type AuthService interface {
	SignUp(ctx context.Context, email, password, fullName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	SignOut(ctx context.Context, userID string) error
	ChangePassword(ctx context.Context, userID, newPassword, confirm string) error
	Authenticate(accessToken string) (*session.Session, error)
}

type TableService interface {
	Page(ctx context.Context, name string, page int) (*services.TablePage, error)
	Create(ctx context.Context, name string, values map[string]any) (models.Record, error)
	Update(ctx context.Context, name, id string, values map[string]any) (models.Record, error)
	Delete(ctx context.Context, name, id string) error
	ExportWorkbook(ctx context.Context, name string, page int) (*services.ExportFile, error)
	ExportDocument(ctx context.Context, name string, page int) (*services.ExportFile, error)
	Import(ctx context.Context, name string, r io.Reader) (int64, error)
}

type EmployeeService interface {
	List(ctx context.Context, search string) ([]*models.Employee, error)
	Create(ctx context.Context, in services.EmployeeInput) (*models.Employee, error)
	Update(ctx context.Context, id string, in services.EmployeeInput) (*models.Employee, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type UserService interface {
	List(ctx context.Context, search string) ([]*models.UserWithRole, error)
	SetActive(ctx context.Context, id string, active bool) error
	UpdateRole(ctx context.Context, id, role string) error
	CreateAccount(ctx context.Context, in services.AccountInput) (*models.UserWithRole, error)
}

type MenuService interface {
	List(ctx context.Context) ([]*models.MenuItem, error)
	Create(ctx context.Context, in services.MenuItemInput) (*models.MenuItem, error)
	Update(ctx context.Context, id string, in services.MenuItemInput) (*models.MenuItem, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	Sidebar(ctx context.Context, sess *session.Session, currentPath string) (*navigation.Sidebar, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, in services.ProfileInput) (*models.Profile, error)
	UploadAvatar(ctx context.Context, userID, fileName, contentType string, body io.Reader) (string, error)
}

type DashboardService interface {
	Stats(ctx context.Context, sess *session.Session) (*models.DashboardStats, error)
}

// Services groups the business logic the handlers call into.
type Services struct {
	Auth      AuthService
	Tables    TableService
	Employees EmployeeService
	Users     UserService
	Menu      MenuService
	Profile   ProfileService
	Dashboard DashboardService
}

// HTTPServer serves the JSON API.
type HTTPServer struct {
	address  string
	logger   logging.Logger
	services Services
	engine   *gin.Engine
}

func NewHTTPServer(address string, l logging.Logger, svc Services) *HTTPServer {
	s := &HTTPServer{
		address:  address,
		logger:   l.With("module", "http_server"),
		services: svc,
	}
	s.engine = s.routes()
	return s
}

// Handler returns the configured gin engine.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.engine, ReadHeaderTimeout: readHeaderTimeout}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-stopped
	return nil
}
