package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"salesrep-roster/backend/services"
	"salesrep-roster/backend/system"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	DB        *gorm.DB
	Countries *services.CountryService
	Metrics   *services.Metrics

	// MetricsHandler serves /metrics when set
	MetricsHandler http.Handler

	jwtSecret []byte
	started   time.Time
}

func NewHandler(db *gorm.DB, metrics *services.Metrics, jwtSecret string) *Handler {
	return &Handler{
		DB:        db,
		Countries: services.NewCountryService(db),
		Metrics:   metrics,
		jwtSecret: []byte(jwtSecret),
		started:   time.Now(),
	}
}

// ApiError is the JSON body of every failed public request
type ApiError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// ErrorHandler logs the failure and answers with an ApiError. Internal errors
// never leak their message to the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	message := err.Error()
	if code == fiber.StatusInternalServerError || message == "" {
		message = "Internal Server Error"
	}

	system.WithFields(log.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"status": code,
		"err":    err,
	}).Error("request failed")
	if services.IsDomainError(err) {
		AddEvent("error", "Roster calculation failed: "+err.Error())
	}

	return c.Status(code).JSON(ApiError{Message: message, StatusCode: code})
}

// NotFound handles every route nothing else matched
func NotFound(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, "Requested URL Is Not Found")
}

// NewApp builds the fiber application with all routes. Requests are logged to
// requestLog when it is not nil.
func NewApp(h *Handler, requestLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})

	if requestLog != nil {
		app.Use(logger.New(logger.Config{
			Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
			Output:     requestLog,
		}))
	}
	app.Use(cors.New())

	SetupRoutes(app, h)
	return app
}

// SetupRoutes registers the public roster endpoints and the protected admin API
func SetupRoutes(app *fiber.App, h *Handler) {
	app.Get("/country", h.GetCountries)
	app.Get("/salesrep", h.GetSalesReps)
	app.Get("/optimal", h.GetOptimalRoster)
	app.Get("/status", h.GetStatus)
	if h.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(h.MetricsHandler))
	}

	api := app.Group("/api")
	api.Post("/login", h.Login)

	protected := api.Group("", h.JWTAuthMiddleware())

	protected.Put("/auth/password", h.ChangePassword)

	// Countries
	protected.Get("/countries", h.GetCountryRecords)
	protected.Post("/countries", h.CreateCountry)
	protected.Put("/countries/:id", h.UpdateCountry)
	protected.Delete("/countries/:id", h.DeleteCountry)

	// Events
	protected.Get("/events", h.GetEvents)

	// User Management
	protected.Get("/users", h.GetUsers)
	protected.Post("/users", h.CreateUser)
	protected.Delete("/users/:id", h.DeleteUser)

	// Backup & Restore
	protected.Get("/backup/export", h.ExportConfig)
	protected.Post("/backup/import", h.ImportConfig)

	app.All("*", NotFound)
}
