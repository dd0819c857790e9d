package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"photoboard/src/app/http/response"
	"photoboard/src/app/middleware"
)

// bindJSON runs the endpoint's validation schema against the body.
// On failure it renders the 400 itself and the handler must return
// without touching storage.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BadRequest(c, bindMessage(err))
		return false
	}
	return true
}

// bindMessage describes the first violated constraint without echoing
// the submitted value back.
func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("field %q failed validation rule %q", fe.Field(), fe.Tag())
	}
	return "invalid request payload"
}

// currentUser returns the authenticated user id, rejecting the request
// if the auth middleware did not run.
func currentUser(c *gin.Context) (string, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authorization required")
	}
	return id, ok
}
