package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("contactnumber", contactNumberValidator)
		if err != nil {
			log.Fatal("register contactnumber validator failed")
		}
	}
}

// Philippine numbers: 09XXXXXXXXX or +639XXXXXXXXX.
var contactNumberValidator validator.Func = func(fl validator.FieldLevel) bool {
	number := fl.Field().String()
	pattern := `^(09|\+639)\d{9}$`
	matched, err := regexp.MatchString(pattern, number)
	if err != nil {
		return false
	}
	return matched
}
