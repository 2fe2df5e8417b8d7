package httpapi

import (
	"net/http"

	"github.com/alexanderramin/degreeplan/internal/contract"
	"github.com/gin-gonic/gin"
)

// statusFor maps a contract error code to its HTTP status.
func statusFor(code contract.ErrorCode) int {
	switch code {
	case contract.CodeInvalidInput:
		return http.StatusBadRequest
	case contract.CodeUnsatisfiable:
		return http.StatusUnprocessableEntity
	case contract.CodeNotFound:
		return http.StatusNotFound
	case contract.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the {error, code} payload for err with the matching
// status.
func RespondError(c *gin.Context, err error) {
	resp := contract.NewErrorResponse(err)
	c.AbortWithStatusJSON(statusFor(resp.Code), resp)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
