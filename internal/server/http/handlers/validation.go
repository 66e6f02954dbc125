package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/customersystem/internal/server/http/dto"
)

const invalidBodyMessage = "invalid request body"

var registerValidation sync.Once

// registerValidators teaches gin's validator the calendardate tag and makes
// validation errors report json field names.
func registerValidators() {
	registerValidation.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
			_, err := dto.ParseDate(fl.Field().String())
			return err == nil
		})
	})
}

// validationMessage turns a binding error into a client facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return invalidBodyMessage
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "calendardate":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD)", fe.Field())
	default:
		return invalidBodyMessage
	}
}
