package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/signup/internal/controller"
	"github.com/deppfellow/signup/internal/errs"
	"github.com/deppfellow/signup/internal/middleware"
	"github.com/deppfellow/signup/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler holds the shared application dependencies of concrete handlers.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandleController adapts a transport-agnostic controller to echo.
//
// The pipeline decodes the JSON body into the controller's field bag, runs
// Handle with the request context, and writes Response.Body as JSON with
// Response.StatusCode. Each phase is timed, logged and reported to New
// Relic. A body that is not a JSON object never reaches the controller; it
// is returned as a 400 for the global error handler to render.
func HandleController(h Handler, ctrl controller.Controller) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		route := c.Path()

		txn := newrelic.FromContext(c.Request().Context())
		if txn != nil {
			txn.AddAttribute("handler.name", route)
		}

		logger := middleware.GetLogger(c).With().
			Str("operation", "controller").
			Str("method", c.Request().Method).
			Str("route", route).
			Logger()

		logger.Info().Msg("handling request")

		// Decode phase
		decodeStart := time.Now()

		var body map[string]any
		if err := c.Bind(&body); err != nil {
			decodeDuration := time.Since(decodeStart)

			logger.Error().
				Err(err).
				Dur("decode_duration", decodeDuration).
				Msg("request decoding failed")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				txn.AddAttribute("decode.status", "failed")
				txn.AddAttribute("decode.duration_ms", decodeDuration.Milliseconds())
			}

			return errs.NewBadRequestError("Request body must be a JSON object", false, nil, nil, nil)
		}

		decodeDuration := time.Since(decodeStart)
		if txn != nil {
			txn.AddAttribute("decode.status", "success")
			txn.AddAttribute("decode.duration_ms", decodeDuration.Milliseconds())
		}

		// Controller phase
		controllerStart := time.Now()
		resp := ctrl.Handle(c.Request().Context(), controller.Request{Body: body})
		controllerDuration := time.Since(controllerStart)
		totalDuration := time.Since(start)

		if txn != nil {
			txn.AddAttribute("controller.status_code", resp.StatusCode)
			txn.AddAttribute("controller.duration_ms", controllerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}

		event := logger.Info()
		msg := "request completed successfully"
		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			event = logger.Error()
			msg = "request failed"
		case resp.StatusCode >= http.StatusBadRequest:
			event = logger.Warn()
			msg = "request rejected"
		}

		if httpErr, ok := resp.Body.(*errs.HTTPError); ok {
			event = event.Str("error_code", httpErr.Code)
			if field := httpErr.Field(); field != "" {
				event = event.Str("field", field)
			}
		}

		event.
			Int("status", resp.StatusCode).
			Dur("decode_duration", decodeDuration).
			Dur("controller_duration", controllerDuration).
			Dur("total_duration", totalDuration).
			Msg(msg)

		return c.JSON(resp.StatusCode, resp.Body)
	}
}
