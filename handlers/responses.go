package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse mirrors the error body the frontend already understands.
type ErrorResponse struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
	Message       string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		StatusCode:    http.StatusInternalServerError,
		StatusMessage: err.Error(),
		Message:       err.Error(),
	}
}

func ResponseSuccess(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, data)
}

// ResponseFailure reports every error as a 500, whatever its cause.
func ResponseFailure(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
}
