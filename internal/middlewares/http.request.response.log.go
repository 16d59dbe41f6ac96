package middlewares

import (
	"log/slog"

	"github.com/gofiber/fiber/v3/client"
)

func NewHTTPClientLogHook(logger *slog.Logger) client.ResponseHook {
	if logger == nil {
		logger = slog.Default()
	}

	return func(_ *client.Client, resp *client.Response, req *client.Request) error {
		statusCode := resp.StatusCode()
		attrs := []any{
			"method", req.Method(),
			"url", req.URL(),
			"status", statusCode,
		}

		if statusCode >= 400 {
			logger.Warn("http_request", attrs...)
			return nil
		}

		logger.Debug("http_request", attrs...)
		return nil
	}
}
