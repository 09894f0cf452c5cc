// Package response writes the uniform {statusCode, data, message, success} envelope.
package response

import (
	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

func New(status int, data interface{}, message string) Envelope {
	return Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	}
}

// JSON writes a successful envelope.
func JSON(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, New(status, data, message))
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, New(status, nil, message))
}

// Error translates err into an envelope. Internal failures are logged with their
// stack and surface only a generic message.
func Error(c *gin.Context, log *logger.Logger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal && log != nil {
		log.Error("%s %s failed: %+v", c.Request.Method, c.FullPath(), err)
	}
	Abort(c, kind.HTTPStatus(), apperr.PublicMessage(err))
}
