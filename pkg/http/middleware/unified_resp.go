package middleware

import (
	"github.com/gofiber/fiber/v2"

	httpx "github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
)

// Locals keys consumed by the unified response middleware.
const (
	// DETAIL carries response data, e.g. query results.
	// e.g: c.Locals(DETAIL, value)
	DETAIL = "detail"

	// OPERATION marks a mutation that returns no data, only the result.
	// e.g: c.Locals(OPERATION, "")
	OPERATION = "operation"
)

// UnifiedResponseMiddleware writes the success envelope for handlers that set
// DETAIL or OPERATION locals. Redirects and bodies already written by error
// helpers pass through untouched.
func UnifiedResponseMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status >= fiber.StatusOK && status < fiber.StatusMultipleChoices {
			if detail := c.Locals(DETAIL); detail != nil {
				return httpx.WithRepJSON(c, detail)
			}

			if c.Locals(OPERATION) != nil {
				return httpx.WithRepNotDetail(c)
			}
		}

		return nil
	}
}
