package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gratia-labs/patron-ledger/internal/domain"
	"github.com/gratia-labs/patron-ledger/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest     ErrorCode = "bad_request"
	errCodeNotFound       ErrorCode = "not_found"
	errCodeInvalidPayment ErrorCode = "invalid_payment"
	errCodeBadData        ErrorCode = "bad_data"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeUpstreamError ErrorCode = "upstream_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondDomainError maps a domain error onto the HTTP taxonomy:
// not-found sentinels map to 404, invalid payments and bad data to 422,
// upstream failures to 502 and anything else to 500
func respondDomainError(c *gin.Context, err error) {
	var invalidPayment *domain.InvalidPaymentError
	var badData *domain.BadDataError
	var upstream *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrWalletNotFound),
		errors.Is(err, domain.ErrSurveyorNotFound),
		errors.Is(err, domain.ErrPledgeNotFound):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, err.Error())
	case errors.As(err, &invalidPayment):
		respondWithError(c, http.StatusUnprocessableEntity, errCodeInvalidPayment, "Payment was not accepted", invalidPayment.Status)
	case errors.As(err, &badData):
		respondWithError(c, http.StatusUnprocessableEntity, errCodeBadData, "Request data failed verification", badData.Reason)
	case errors.As(err, &upstream):
		logger.Error(err, zap.String("provider", upstream.Provider))
		respondWithError(c, http.StatusBadGateway, errCodeUpstreamError, "Upstream provider unavailable")
	default:
		logger.Error(err)
		respondWithError(c, http.StatusInternalServerError, errCodeInternalError, "Internal server error")
	}
}
