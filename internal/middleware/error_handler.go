package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/creator-fee-engine/internal/pricing"
	"github.com/anyulbade/creator-fee-engine/internal/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MapError translates pricing, validation and database errors into an HTTP
// status and body. Anything unrecognized is logged and reported as a 500.
func MapError(err error) (int, ErrorResponse) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: verr.Error()}
	case errors.Is(err, pricing.ErrInvalidAmount),
		errors.Is(err, pricing.ErrInvalidPurpose),
		errors.Is(err, pricing.ErrInvalidSubscriberCount):
		return http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()}
	case errors.Is(err, pricing.ErrUnknownCountry):
		return http.StatusNotFound, ErrorResponse{Error: "country not supported", Details: err.Error()}
	case errors.Is(err, pricing.ErrUnprofitableConfiguration):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "fees exceed platform rate", Details: err.Error()}
	}
	return MapDBError(err)
}

func MapDBError(err error) (int, ErrorResponse) {
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, ErrorResponse{
				Error:   "resource already exists",
				Details: pgErr.Detail,
			}
		case "23503": // foreign_key_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "referenced resource does not exist",
				Details: pgErr.Detail,
			}
		case "23514": // check_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "constraint violation",
				Details: pgErr.Detail,
			}
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

// ErrorHandler writes the response for the last error a handler attached
// with c.Error, unless the handler already wrote one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
