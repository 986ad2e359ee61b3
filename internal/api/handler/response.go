package handler

import "github.com/labstack/echo/v4"

// Response is the uniform envelope every JSON endpoint renders, success and
// failure alike.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// OK renders a success envelope with the given status code.
func OK(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// Fail renders a failure envelope with the given status code.
func Fail(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Success: false, Message: message, Data: data})
}
