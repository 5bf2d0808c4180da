package server

import (
	"strconv"
	"strings"
	"time"

	"github.com/LerianStudio/lib-license/license/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
)

const (
	// HeaderID is the correlation id header propagated on every request.
	HeaderID = "X-Request-Id"

	headerUserAgent = "User-Agent"
)

// RequestInfo stores http access log data for a single request.
type RequestInfo struct {
	Method        string
	URI           string
	Referer       string
	RemoteAddress string
	Status        int
	Date          time.Time
	Duration      time.Duration
	UserAgent     string
	RequestID     string
	Protocol      string
	Size          int
}

// NewRequestInfo creates an instance of RequestInfo from the inbound request.
func NewRequestInfo(c *fiber.Ctx) *RequestInfo {
	referer := "-"
	if c.Get("Referer") != "" {
		referer = c.Get("Referer")
	}

	return &RequestInfo{
		RequestID:     c.Get(HeaderID),
		Method:        c.Method(),
		URI:           c.OriginalURL(),
		Referer:       referer,
		UserAgent:     c.Get(headerUserAgent),
		RemoteAddress: c.IP(),
		Protocol:      c.Protocol(),
		Date:          time.Now().UTC(),
	}
}

// CLFString produces a log entry format similar to Common Log Format (CLF)
// Ref: https://httpd.apache.org/docs/trunk/logs.html#common
func (r *RequestInfo) CLFString() string {
	return strings.Join([]string{
		r.RemoteAddress,
		"-",
		r.Protocol,
		r.Date.Format("[02/Jan/2006:15:04:05 -0700]"),
		`"` + r.Method + " " + r.URI + `"`,
		strconv.Itoa(r.Status),
		strconv.Itoa(r.Size),
		r.Referer,
		r.UserAgent,
	}, " ")
}

// String implements fmt.Stringer using CLFString.
func (r *RequestInfo) String() string {
	return r.CLFString()
}

// finish records the final status, size, and duration of the request.
func (r *RequestInfo) finish(c *fiber.Ctx) {
	r.Duration = time.Now().UTC().Sub(r.Date)
	r.Status = c.Response().StatusCode()
	r.Size = len(c.Response().Body())
}

// WithHeaderID ensures every request carries a correlation id, generating a
// UUID when the client did not send one. The id is echoed on the response.
func WithHeaderID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		headerID := c.Get(HeaderID)
		if strings.TrimSpace(headerID) == "" {
			headerID = uuid.New().String()
			c.Request().Header.Set(HeaderID, headerID)
		}

		c.Set(HeaderID, headerID)

		return c.Next()
	}
}

// WithHTTPLogging is a middleware to log access to the http server.
// It logs access according to Apache Standard Logs which uses Common Log
// Format (CLF). Health checks are not logged.
func WithHTTPLogging(logger log.Logger) fiber.Handler {
	if logger == nil {
		logger = log.NewNop()
	}

	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}

		info := NewRequestInfo(c)

		reqLogger := logger.With(log.String(HeaderID, c.Get(HeaderID)))

		err := c.Next()

		info.finish(c)

		reqLogger.Log(c.UserContext(), log.LevelInfo, info.CLFString())

		return err
	}
}

// WithCORS is a middleware that enables CORS, configurable via environment.
func WithCORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: GetenvOrDefault("ACCESS_CONTROL_ALLOW_ORIGIN", "*"),
		AllowMethods: GetenvOrDefault("ACCESS_CONTROL_ALLOW_METHODS", "GET, OPTIONS"),
		AllowHeaders: GetenvOrDefault("ACCESS_CONTROL_ALLOW_HEADERS", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization"),
	})
}
