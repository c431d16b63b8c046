package httpx

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/pos-service/internal/apperr"
)

// ErrorBody is the failure envelope.
// swagger:model ErrorBody
type ErrorBody struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"   example:"product not found"`
}

// MessageBody is returned by operations without a payload.
// swagger:model MessageBody
type MessageBody struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Product deleted successfully"`
}

// Error writes the failure envelope with the status for err's kind. Internal
// errors are logged and answered with a generic message.
func Error(c *gin.Context, err error) {
	c.JSON(statusFor(c, err))
}

// Abort is Error plus c.Abort, for middleware.
func Abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(c, err))
}

// BadRequest reports a malformed body or query.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: msg})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageBody{Success: true, Message: msg})
}

func statusFor(c *gin.Context, err error) (int, ErrorBody) {
	code := apperr.Status(err)
	if code == http.StatusInternalServerError {
		rid, _ := c.Get(KeyRequestID)
		log.Printf("[http] rid=%v internal error: %v", rid, err)
		return code, ErrorBody{Error: "internal server error"}
	}
	return code, ErrorBody{Error: err.Error()}
}
