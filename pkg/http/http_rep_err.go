package http

import (
	"github.com/gofiber/fiber/v2"
)

type ResponseErr struct {
	ErrCode int    `json:"code"`
	ErrMsg  any    `json:"errMsg"`
	Path    string `json:"path,omitempty"`
}

// WithRepErr writes a catalogued failure, the HTTP status comes from the catalogue entry.
func WithRepErr(c *fiber.Ctx, resp *Response, path string) error {
	return c.Status(resp.Status).JSON(ResponseErr{
		ErrCode: resp.Code,
		ErrMsg:  resp.Msg,
		Path:    path,
	})
}

// WithRepErrMsg writes a failure with an explicit status and passthrough message.
func WithRepErrMsg(c *fiber.Ctx, status, code int, errMsg, path string) error {
	return c.Status(status).JSON(ResponseErr{
		ErrCode: code,
		ErrMsg:  errMsg,
		Path:    path,
	})
}
