// Package validation validates request structs with go-playground/validator
// and reports failures as serrors field details keyed by JSON field paths.
//
// Besides the built-in rules it registers:
//   - imagedata: a "data:image/<type>;base64,<payload>" URI whose payload decodes
//     to bytes recognised as an image.
//   - username: letters, digits and the characters . @ + - _ only.
package validation

import (
	"encoding/base64"
	"errors"
	"fmt"
	"foodgram/pkg/serrors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	imageDataRe = regexp.MustCompile(`^data:image/[a-zA-Z0-9.+-]+;base64,(.+)$`)
	usernameRe  = regexp.MustCompile(`^[\w.@+-]+$`)
)

// MsgRequired is reported for missing fields.
const MsgRequired = "this field is required"

// GetValidator returns the process wide validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonName)
		for tag, fn := range map[string]validator.Func{
			"imagedata": isImageData,
			"username":  isUsername,
		} {
			if err := validate.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("could not register %s validation: %v", tag, err))
			}
		}
	})

	return validate
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// IsImageData reports whether s is a base64 encoded image data URI. The
// declared subtype is not compared with the detected one.
func IsImageData(s string) bool {
	m := imageDataRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	payload, err := base64.StdEncoding.DecodeString(m[1])
	if err != nil {
		return false
	}

	return strings.HasPrefix(mimetype.Detect(payload).String(), "image/")
}

func isImageData(fl validator.FieldLevel) bool {
	return IsImageData(fl.Field().String())
}

func isUsername(fl validator.FieldLevel) bool {
	return usernameRe.MatchString(fl.Field().String())
}

// Struct validates s. It returns nil or a serrors.ErrBadRequest error whose
// fields name the failing JSON paths, e.g. "ingredients[1].amount".
func Struct(s any) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return serrors.Wrap(serrors.ErrInternal, err, "could not validate request")
	}

	fields := serrors.Fields{}
	for _, fe := range validationErrs {
		fields.Add(fieldPath(fe), translateError(fe))
	}

	return serrors.Invalid(fields)
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}

	return path
}

var errorMessageTemplates = map[string]string{
	"required":  MsgRequired,
	"email":     "enter a valid email address",
	"hexcolor":  "enter a valid hex color, e.g. #49B64E",
	"imagedata": "expected a base64 encoded image data URI",
	"unique":    "values must not repeat",
	"uuid":      "enter a valid id",
	"username":  "letters, digits and @/./+/-/_ only",
}

var errorMessageWithParam = map[string]string{
	"oneof": "must be one of: %s",
	"gte":   "must be greater than or equal to %s",
	"lte":   "must be less than or equal to %s",
	"gt":    "must be greater than %s",
	"lt":    "must be less than %s",
}

func translateError(fe validator.FieldError) string {
	tag := fe.Tag()
	if tmpl, ok := errorMessageTemplates[tag]; ok {
		return tmpl
	}
	if tmpl, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(tmpl, fe.Param())
	}

	return translateMinMax(fe)
}

func translateMinMax(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		switch fe.Tag() {
		case "min":
			return fmt.Sprintf("ensure this field has at least %s characters", fe.Param())
		case "max":
			return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
		}
	case reflect.Slice, reflect.Array, reflect.Map:
		switch fe.Tag() {
		case "min":
			return fmt.Sprintf("ensure this list has at least %s items", fe.Param())
		case "max":
			return fmt.Sprintf("ensure this list has no more than %s items", fe.Param())
		}
	default:
		switch fe.Tag() {
		case "min":
			return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
		case "max":
			return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
		}
	}

	return fmt.Sprintf("failed %s validation", fe.Tag())
}
