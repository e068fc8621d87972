// Package rest exposes the friendsdir services over HTTP/JSON with gin.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/friendsdir/internal/logging"
	"github.com/dmitrijs2005/friendsdir/internal/server/models"
	"github.com/dmitrijs2005/friendsdir/internal/server/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type AuthService interface {
	Signup(ctx context.Context, in services.SignupInput) (*models.User, error)
	Signin(ctx context.Context, in services.SigninInput) (string, error)
	Verify(ctx context.Context, token string) (*models.User, error)
}

type UserService interface {
	List(ctx context.Context, caller *models.User) ([]models.UserSummary, error)
	Total(ctx context.Context, caller *models.User) (int64, error)
	Get(ctx context.Context, caller *models.User, id int64) (*models.User, error)
	Create(ctx context.Context, caller *models.User, in services.CreateUserInput) (*models.User, error)
	Update(ctx context.Context, caller *models.User, id int64, in services.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, caller *models.User, id int64) error
	ResetPassword(ctx context.Context, caller *models.User, id int64) (*services.PasswordReset, error)
}

type FriendService interface {
	List(ctx context.Context, caller *models.User, ownerID int64) ([]models.Friend, error)
	Create(ctx context.Context, caller *models.User, in services.FriendInput) (*models.Friend, error)
	Update(ctx context.Context, caller *models.User, id int64, p services.FriendPatch) (*models.Friend, error)
	Delete(ctx context.Context, caller *models.User, id int64) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger

	auth    AuthService
	users   UserService
	friends FriendService
	db      Pinger

	registry *prometheus.Registry
	metrics  *metrics
	engine   *gin.Engine
}

func NewServer(address string, shutdownTimeout time.Duration, l logging.Logger,
	as AuthService, us UserService, fs FriendService, db Pinger) *Server {

	reg := prometheus.NewRegistry()
	s := &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "rest"),
		auth:            as,
		users:           us,
		friends:         fs,
		db:              db,
		registry:        reg,
		metrics:         newMetrics(reg),
	}
	s.engine = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	g := gin.New()
	g.Use(
		s.requestID(),
		s.accessLog(),
		s.instrument(),
		gin.CustomRecovery(s.recover),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:   []string{requestIDHeader},
			MaxAge:          12 * time.Hour,
		}),
	)

	g.GET("/healthz", s.health)
	g.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	g.POST("/signup", s.signup)
	g.POST("/signin", s.signin)
	g.POST("/verify", s.verify)

	users := g.Group("/users", s.authenticate())
	{
		users.GET("", s.listUsers)
		users.GET("/total", s.totalUsers)
		users.POST("/user", s.createUser)
		users.GET("/user/:id", s.getUser)
		users.PUT("/user/:id", s.updateUser)
		users.DELETE("/user/:id", s.deleteUser)
		users.PUT("/user/:id/resetpassword", s.resetPassword)
	}

	friends := g.Group("/friends", s.authenticate())
	{
		friends.GET("", s.listFriends)
		friends.POST("/friend", s.createFriend)
		friends.PUT("/friend/:id", s.updateFriend)
		friends.DELETE("/friend/:id", s.deleteFriend)
	}

	g.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return g
}

func (s *Server) health(c *gin.Context) {
	if err := s.db.Ping(c.Request.Context()); err != nil {
		s.logger.Warn(c.Request.Context(), "health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
