package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgShopcartNotFound   = "Shopcart not found"
	msgItemNotFound       = "Item not found"
	msgInvalidQuery       = "Invalid query parameters"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
		_ = ctx.Error(err)
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// handleError maps model errors onto HTTP statuses.
func handleError(ctx *gin.Context, err error, message string) {
	var validationErr *models.DataValidationError
	switch {
	case errors.As(err, &validationErr):
		respondWithError(ctx, http.StatusBadRequest, msgInvalidRequestBody, validationErr)
	case errors.Is(err, models.ErrShopcartNotFound):
		respondWithError(ctx, http.StatusNotFound, msgShopcartNotFound, err)
	case errors.Is(err, models.ErrItemNotFound):
		respondWithError(ctx, http.StatusNotFound, msgItemNotFound, err)
	default:
		log.Error().Err(err).Str("request_id", ctx.GetString("requestId")).Msg(message)
		respondWithError(ctx, http.StatusInternalServerError, message, err)
	}
}

func dbFrom(ctx *gin.Context) *gorm.DB {
	return initializers.DB.WithContext(ctx.Request.Context())
}

// pathID parses a numeric path parameter. Non-numeric ids cannot name a
// record, so they answer 404.
func pathID(ctx *gin.Context, name, message string) (uint, bool) {
	id, err := parseUintParam(ctx, name)
	if err != nil {
		respondWithError(ctx, http.StatusNotFound, message, err)
		return 0, false
	}
	return id, true
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, ctx.Param(name))
	}
	return uint(id), nil
}

// bindObject decodes the request body into a JSON object. Numbers are kept
// as json.Number so integer coercion sees the literal.
func bindObject(ctx *gin.Context, entity string) (map[string]any, error) {
	var data map[string]any
	if err := ctx.ShouldBindJSON(&data); err != nil {
		return nil, models.BadBody(entity, err)
	}
	return data, nil
}
