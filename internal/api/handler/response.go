package handler

import "github.com/labstack/echo/v4"

// apiResponse is the success envelope shared by all endpoints. The failure
// counterpart lives in the central error handler so both shapes stay stable.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, apiResponse{Success: true, Message: message, Data: data})
}
