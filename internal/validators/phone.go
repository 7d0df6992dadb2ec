package validators

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

var registerOnce sync.Once

// IsPhone accepts 7 to 15 digits with an optional leading "+".
func IsPhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// RegisterBindings adds the custom tags used in request structs to gin's
// validator. Safe to call more than once.
func RegisterBindings() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			value, ok := fl.Field().Interface().(string)
			if !ok {
				return false
			}
			return IsPhone(value)
		})
	})
}
