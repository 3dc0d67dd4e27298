package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func errorResponse(c *gin.Context, code ErrorCode) {
	c.AbortWithStatusJSON(http.StatusBadRequest, getErrorStruct(code))
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response := ValidationErrorStruct{
			ErrorCode:    6000,
			ErrorMessage: "Validation error",
		}
		response.Errors = out
		c.JSON(http.StatusBadRequest, response)
		return
	}

	c.AbortWithStatus(http.StatusBadRequest)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email address"
	case "number":
		return "This field must be a number"
	case "min":
		return fmt.Sprintf("Minimum number of characters in this field is %v", value)
	case "max":
		return fmt.Sprintf("Maximum number of characters in this field is %v", value)
	case "oneof":
		return fmt.Sprintf("This field must be one of: %v", value)
	case "len":
		return fmt.Sprintf("This field must be exactly %v characters long", value)
	case "gt":
		return fmt.Sprintf("This field must be greater than %v", value)
	case "contactnumber":
		return "Contact number must start with 09 or +639 and contain 11 digits"
	}
	return tag
}
