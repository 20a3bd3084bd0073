// Package httpapi exposes the directory service over HTTP with gin.
//
//	GET /user/getall               all users, passwords stripped
//	GET /login/:email/:password    200 + user, 401 on bad credentials
//	GET /ping                      {"status":"OK"}
//
// Path parameters may be percent-encoded; %2F is decoded inside a segment.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/artmarket/internal/logging"
	"github.com/dmitrijs2005/artmarket/internal/models"
)

const shutdownTimeout = 5 * time.Second

// UserService is what the handlers need from the users service.
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
}

type HTTPServer struct {
	address    string
	corsOrigin string
	users      UserService
	logger     logging.Logger
}

func NewHTTPServer(address, corsOrigin string, l logging.Logger, us UserService) *HTTPServer {
	return &HTTPServer{
		address:    address,
		corsOrigin: corsOrigin,
		users:      us,
		logger:     l.With("module", "http_server"),
	}
}

// Handler builds the gin engine with middleware and routes.
func (s *HTTPServer) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.UseRawPath = true
	r.UnescapePathValues = true

	r.Use(gin.Recovery(), s.requestLogger())
	r.Use(cors.New(s.corsConfig()))

	r.GET("/ping", s.ping)
	r.GET("/user/getall", s.getAllUsers)
	r.GET("/login/:email/:password", s.login)

	return r
}

func (s *HTTPServer) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if s.corsOrigin == "" || s.corsOrigin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{s.corsOrigin}
	}
	return cfg
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
