package config

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("password_complexity", validatePasswordComplexity)
	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("priority", validatePriority)
	_ = v.RegisterValidation("region", validateRegion)
	_ = v.RegisterValidation("category_filter", validateCategoryFilter)
	_ = v.RegisterValidation("status_filter", validateStatusFilter)
	return v
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validatePasswordComplexity(fl validator.FieldLevel) bool {
	return helper.HasPasswordComplexity(fl.Field().String())
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

func validateCategory(fl validator.FieldLevel) bool {
	return constant.IsCategory(fl.Field().String())
}

func validatePriority(fl validator.FieldLevel) bool {
	return constant.IsPriority(fl.Field().String())
}

func validateRegion(fl validator.FieldLevel) bool {
	return constant.IsRegion(fl.Field().String())
}

func validateCategoryFilter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "all" || constant.IsCategory(value)
}

func validateStatusFilter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "all" || constant.IsStatus(value)
}
