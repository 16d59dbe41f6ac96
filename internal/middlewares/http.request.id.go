package middlewares

import (
	"github.com/gofiber/fiber/v3/client"

	"github.com/joshuarp/dataunion-withdraw/internal/shared/uid"
)

const RequestIDHeader = "X-Request-ID"

// NewHTTPClientRequestIDHook tags every outbound request with the run id
// carried by the request context.
func NewHTTPClientRequestIDHook() client.RequestHook {
	return func(_ *client.Client, req *client.Request) error {
		if runID := uid.RunIDFromContext(req.Context()); runID != "" {
			req.SetHeader(RequestIDHeader, runID)
		}
		return nil
	}
}
