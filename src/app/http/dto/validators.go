package dto

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding rules on gin's
// validator engine. Call once during server construction.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("urlscheme", urlWithScheme)
}

// urlWithScheme accepts a string only if it parses as an absolute URL
// with an explicit scheme and a host. A plain type check is not enough:
// "example.com/a.png" parses but names no scheme.
func urlWithScheme(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	return err == nil && u.Scheme != "" && u.Host != ""
}
