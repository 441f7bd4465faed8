package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

var (
	validate *validator.Validate
	slugRe   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Tell the validator to use the JSON tag as the “field name”
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// nil IDs validate as empty strings, so `required` rejects them
	validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		id, ok := v.Interface().(uuid.UUID)
		if !ok || id.IsNil() {
			return ""
		}
		return id.String()
	}, uuid.UUID{})

	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("review_status", func(fl validator.FieldLevel) bool {
		switch model.CertificationStatus(fl.Field().String()) {
		case model.CertificationStatusApproved, model.CertificationStatusRejected:
			return true
		}
		return false
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ErrorsToMap maps each failing field (JSON name) to the failing tag.
// Errors that are not validation errors map under "_".
func ErrorsToMap(err error) map[string]string {
	errsMap := make(map[string]string)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errsMap["_"] = err.Error()
		return errsMap
	}
	for _, fieldErr := range fieldErrs {
		errsMap[fieldErr.Field()] = fieldErr.Tag()
	}
	return errsMap
}
