package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"marketplace/entity"
	"marketplace/pkg/apperr"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID validates a hex id; field names the input for the error message.
func ParseObjectID(field, hex string) (primitive.ObjectID, error) {
	if hex == "" {
		return primitive.NilObjectID, apperr.MissingField(field)
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperr.InvalidField(field)
	}
	return id, nil
}

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator
// and makes error messages use json field names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			return primitive.IsValidObjectID(fl.Field().String())
		})
		_ = v.RegisterValidation("pricerange", func(fl validator.FieldLevel) bool {
			return entity.PriceRange(fl.Field().String()).Valid()
		})
	})
}

// BindError turns a ShouldBindJSON failure into an apperr kind.
func BindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return apperr.MissingField(fe.Field())
		}
		return apperr.InvalidField(fe.Field())
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperr.InvalidField(typeErr.Field)
	}
	if errors.Is(err, io.EOF) {
		return apperr.Custom(http.StatusBadRequest, "Request body is required")
	}
	return apperr.Custom(http.StatusBadRequest, "Malformed request body")
}
