package catalog

import (
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var listingValidator *validator.Validate

// V returns the shared validator instance for publish input.
func V() *validator.Validate {
	if listingValidator == nil {
		listingValidator = validator.New(validator.WithRequiredStructEnabled())
	}
	return listingValidator
}

// feeTypeValidator checks that the value is a recognized fee type.
func feeTypeValidator(fl validator.FieldLevel) bool {
	return slices.Contains(KnownFeeTypes, FeeType(fl.Field().String()))
}

// semverTripleValidator checks the publish-time version format.
func semverTripleValidator(fl validator.FieldLevel) bool {
	return IsTriple(fl.Field().String())
}

func init() {
	V().RegisterValidation("feeTypeValidator", feeTypeValidator)
	V().RegisterValidation("semverTriple", semverTripleValidator)
}

// PublishRequest carries the field values of a publish submission. Required
// fields follow the publish contract: name, author, license, a version in
// triple form, and a download URL.
type PublishRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Author      string   `json:"author" validate:"required"`
	Website     string   `json:"website" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
	License     string   `json:"license" validate:"required"`
	FeeType     string   `json:"feeType" validate:"omitempty,feeTypeValidator"`
	FeeAmount   float64  `json:"feeAmount"`
	Address     string   `json:"address"`
	Verified    bool     `json:"verified"`
	Version     string   `json:"version" validate:"required,semverTriple"`
	URL         string   `json:"url" validate:"required,url"`
}

// Validate performs field validation and translates validator failures into
// per-field validation errors keyed by JSON field name.
func (r *PublishRequest) Validate() ValidationErrors {
	var validationErrors ValidationErrors

	err := V().Struct(r)
	if err == nil {
		return nil
	}

	validatorErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(validationErrors, errValidationFailed(""))
	}

	typeOfRequest := reflect.TypeOf(*r)
	for _, e := range validatorErrors {
		jsonFieldName := jsonFieldName(typeOfRequest, e.StructField())

		switch e.Tag() {
		case "required":
			validationErrors = append(validationErrors, errMissingRequiredAttribute(jsonFieldName))
		case "semverTriple":
			val, _ := e.Value().(string)
			validationErrors = append(validationErrors, errInvalidVersionFormat(jsonFieldName, val))
		case "feeTypeValidator":
			val, _ := e.Value().(string)
			validationErrors = append(validationErrors, errInvalidFeeType(jsonFieldName, val))
		case "url":
			validationErrors = append(validationErrors, errInvalidURL(jsonFieldName))
		default:
			validationErrors = append(validationErrors, errValidationFailed(jsonFieldName))
		}
	}

	return validationErrors
}

// jsonFieldName maps a struct field name to its JSON tag, falling back to
// the Go field name when no tag is set.
func jsonFieldName(t reflect.Type, fieldName string) string {
	field, ok := t.FieldByName(fieldName)
	if !ok {
		return fieldName
	}
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return fieldName
	}
	return strings.Split(tag, ",")[0]
}
