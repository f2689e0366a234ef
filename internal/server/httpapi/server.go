// Package httpapi exposes the user service as a JSON REST API on fiber.
package httpapi

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/dmitrijs2005/avarich/internal/logging"
	"github.com/dmitrijs2005/avarich/internal/server/auth"
	"github.com/dmitrijs2005/avarich/internal/server/models"
	"github.com/dmitrijs2005/avarich/internal/server/services"
)

// UserService is the subset of services.UserService used by the handlers.
type UserService interface {
	Signup(ctx context.Context, email, password string) (*services.AuthResult, error)
	Signin(ctx context.Context, email, password string) (*services.AuthResult, error)
	Authenticate(token string) (*auth.Claims, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	SetUserType(ctx context.Context, userID string, userType models.UserType) (models.UserType, error)
	SetPersonalInformation(ctx context.Context, userID string, info *models.PersonalInformation) error
	SetIncome(ctx context.Context, userID string, income *models.Income) error
}

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address string
	users   UserService
	logger  logging.Logger
	app     *fiber.App
}

func NewHTTPServer(address string, l logging.Logger, us UserService, corsOrigin string) *HTTPServer {
	s := &HTTPServer{
		address: address,
		users:   us,
		logger:  l.With("module", "http_server"),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "avarich",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	}))
	s.app.Use(s.requestLogger)

	s.registerRoutes()
	return s
}

func (s *HTTPServer) registerRoutes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	s.app.Post("/signup", s.signup)
	s.app.Post("/signin", s.signin)

	s.app.Get("/user", s.authenticate, s.getUser)
	s.app.Post("/user-type", s.authenticate, s.setUserType)
	s.app.Post("/personal-information", s.authenticate, s.setPersonalInformation)
	s.app.Post("/income", s.authenticate, s.setIncome)
}

// App exposes the underlying fiber application, mainly for tests.
func (s *HTTPServer) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
		errCh <- s.app.Listener(listen)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return err
	}
	return <-errCh
}

// errorHandler renders errors that escaped a handler. Handlers answer
// expected failures themselves, so anything reaching here is either a
// fiber routing error or a bug.
func (s *HTTPServer) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		s.logger.Error(c.UserContext(), "unhandled error", "error", err, "path", c.Path())
	}

	return c.Status(code).JSON(fiber.Map{"message": message})
}

func (s *HTTPServer) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}

	s.logger.Info(c.UserContext(), "request",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"latency", time.Since(start).String(),
	)
	return err
}
