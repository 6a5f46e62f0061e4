package httperr

import (
	"net/http"

	"do-coupon-system/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is what the error middleware replays. Each endpoint keeps its own
// body shape so the front-end can read role, status or couponStatus as before.
type Response struct {
	Status int
	Body   any
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, body any) {
	if err == nil {
		err = errs.New(http.StatusText(status))
	}

	resp := Response{Status: status, Body: body}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, body)
}

func Message(msg string) gin.H {
	return gin.H{"message": msg}
}
