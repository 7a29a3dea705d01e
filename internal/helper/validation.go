package helper

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/model"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	TitleMinLength       = 10
	TitleMaxLength       = 200
	DescriptionMinLength = 20
	DescriptionMaxLength = 2000
	LocationMinLength    = 3
	PasswordMinLength    = 6
	UsernameMinLength    = 3
	UsernameMaxLength    = 20
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailValidator  = validator.New()
)

type ValidationResult struct {
	OK      bool   `json:"ok"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

// ValidationResults maps a field name to its first failing message.
type ValidationResults map[string]string

func (v ValidationResults) Add(result ValidationResult) {
	if result.OK {
		return
	}
	if _, exists := v[result.Field]; !exists {
		v[result.Field] = result.Message
	}
}

func (v ValidationResults) OK() bool {
	return len(v) == 0
}

// Error converts failed results into a validation AppError, or nil.
func (v ValidationResults) Error(locale string) *AppError {
	if v.OK() {
		return nil
	}
	return NewValidationError(Message(locale, constant.MsgFieldInvalid), v)
}

func pass() ValidationResult {
	return ValidationResult{OK: true}
}

func fail(locale, field string, key constant.MessageKey) ValidationResult {
	return ValidationResult{Field: field, Message: Message(locale, key)}
}

func ValidateTitle(locale, title string) ValidationResult {
	n := utf8.RuneCountInString(title)
	switch {
	case n < TitleMinLength:
		return fail(locale, "title", constant.MsgTitleMin)
	case n > TitleMaxLength:
		return fail(locale, "title", constant.MsgTitleMax)
	}
	return pass()
}

func ValidateDescription(locale, description string) ValidationResult {
	n := utf8.RuneCountInString(description)
	switch {
	case n < DescriptionMinLength:
		return fail(locale, "description", constant.MsgDescriptionMin)
	case n > DescriptionMaxLength:
		return fail(locale, "description", constant.MsgDescriptionMax)
	}
	return pass()
}

func ValidateCategory(locale, category string) ValidationResult {
	if category == "" {
		return fail(locale, "category", constant.MsgCategoryRequired)
	}
	if !constant.IsCategory(category) {
		return fail(locale, "category", constant.MsgCategoryInvalid)
	}
	return pass()
}

func ValidateLocation(locale, location string) ValidationResult {
	if utf8.RuneCountInString(location) < LocationMinLength {
		return fail(locale, "location", constant.MsgLocationMin)
	}
	return pass()
}

func ValidateRegion(locale, region string) ValidationResult {
	if !constant.IsRegion(region) {
		return fail(locale, "region", constant.MsgRegionInvalid)
	}
	return pass()
}

func ValidatePriority(locale, priority string) ValidationResult {
	if !constant.IsPriority(priority) {
		return fail(locale, "priority", constant.MsgPriorityInvalid)
	}
	return pass()
}

func ValidateLoginEmail(locale, email string) ValidationResult {
	if strings.TrimSpace(email) == "" {
		return fail(locale, "email", constant.MsgEmailRequired)
	}
	if err := emailValidator.Var(email, "email"); err != nil {
		return fail(locale, "email", constant.MsgEmailInvalid)
	}
	return pass()
}

func ValidatePassword(locale, password string) ValidationResult {
	if utf8.RuneCountInString(password) < PasswordMinLength {
		return fail(locale, "password", constant.MsgPasswordMin)
	}
	return pass()
}

func ValidateSignupPassword(locale, password string) ValidationResult {
	if result := ValidatePassword(locale, password); !result.OK {
		return result
	}
	if !HasPasswordComplexity(password) {
		return fail(locale, "password", constant.MsgPasswordComplexity)
	}
	return pass()
}

// HasPasswordComplexity reports whether password has a lowercase letter, an uppercase letter and a digit.
func HasPasswordComplexity(password string) bool {
	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

func ValidateConfirmation(locale, password, confirmation string) ValidationResult {
	if password != confirmation {
		return fail(locale, "confirm_password", constant.MsgPasswordMismatch)
	}
	return pass()
}

func ValidateUsername(locale, username string) ValidationResult {
	n := utf8.RuneCountInString(username)
	switch {
	case n < UsernameMinLength:
		return fail(locale, "username", constant.MsgUsernameMin)
	case n > UsernameMaxLength:
		return fail(locale, "username", constant.MsgUsernameMax)
	case !usernamePattern.MatchString(username):
		return fail(locale, "username", constant.MsgUsernamePattern)
	}
	return pass()
}

func ValidateLogin(locale string, req model.SignInRequest) ValidationResults {
	results := ValidationResults{}
	results.Add(ValidateLoginEmail(locale, req.Email))
	results.Add(ValidatePassword(locale, req.Password))
	return results
}

// ValidateSignup checks a sign-up form. The username is optional and only checked when present.
func ValidateSignup(locale string, req model.SignUpRequest) ValidationResults {
	results := ValidationResults{}
	results.Add(ValidateLoginEmail(locale, req.Email))
	results.Add(ValidateSignupPassword(locale, req.Password))
	results.Add(ValidateConfirmation(locale, req.Password, req.ConfirmPassword))
	if req.Username != "" {
		results.Add(ValidateUsername(locale, req.Username))
	}
	return results
}

type ReportInput struct {
	Title       string
	Description string
	Category    string
	Location    string
	Region      string
	Priority    string
}

// ValidateReport checks a full report. A named region may stand in for the location text.
func ValidateReport(locale string, input ReportInput) ValidationResults {
	results := ValidationResults{}
	results.Add(ValidateTitle(locale, input.Title))
	results.Add(ValidateDescription(locale, input.Description))
	results.Add(ValidateCategory(locale, input.Category))

	switch {
	case input.Location != "":
		results.Add(ValidateLocation(locale, input.Location))
	case input.Region == "":
		results.Add(ValidateLocation(locale, input.Location))
	}
	if input.Region != "" {
		results.Add(ValidateRegion(locale, input.Region))
	}
	if input.Priority != "" {
		results.Add(ValidatePriority(locale, input.Priority))
	}
	return results
}

var validationTagMessages = map[string]constant.MessageKey{
	"email":               constant.MsgEmailInvalid,
	"password_complexity": constant.MsgPasswordComplexity,
	"eqfield":             constant.MsgPasswordMismatch,
	"username":            constant.MsgUsernamePattern,
	"category":            constant.MsgCategoryInvalid,
	"priority":            constant.MsgPriorityInvalid,
	"region":              constant.MsgRegionInvalid,
	"latitude":            constant.MsgCoordinatesInvalid,
	"longitude":           constant.MsgCoordinatesInvalid,
}

// TranslateValidationErrors turns validator/v10 errors into field-scoped localized messages.
func TranslateValidationErrors(locale string, err error) ValidationResults {
	results := ValidationResults{}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		results["_"] = Message(locale, constant.MsgFieldInvalid)
		return results
	}

	for _, fe := range fieldErrors {
		key, known := validationTagMessages[fe.Tag()]
		if !known {
			key = constant.MsgFieldInvalid
		}
		results.Add(fail(locale, fe.Field(), key))
	}
	return results
}
