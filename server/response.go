package server

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/handsoncoder/employee-producer/errors"
)

// RespondWithError writes err as a JSON error body. AppErrors keep their
// status and code; any other error becomes a 500 INTERNAL_ERROR.
func RespondWithError(c *gin.Context, err error) {
	appErr := apperrors.Wrap(err)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
