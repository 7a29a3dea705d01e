package helper

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/model"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	for n := 0; n <= 205; n++ {
		result := ValidateTitle("en", strings.Repeat("a", n))
		assert.Equal(t, n >= 10 && n <= 200, result.OK, "length %d", n)
	}

	t.Run("Counts Characters Not Bytes", func(t *testing.T) {
		assert.True(t, ValidateTitle("ar", strings.Repeat("ب", 10)).OK)
		assert.False(t, ValidateTitle("ar", strings.Repeat("ب", 201)).OK)
	})

	t.Run("Localized Message", func(t *testing.T) {
		result := ValidateTitle("en", "short")
		assert.Equal(t, "title", result.Field)
		assert.Equal(t, constant.Messages["en"][constant.MsgTitleMin], result.Message)

		result = ValidateTitle("ar", "short")
		assert.Equal(t, constant.Messages["ar"][constant.MsgTitleMin], result.Message)
	})
}

func TestValidateDescription(t *testing.T) {
	for _, n := range []int{0, 19, 20, 21, 1000, 1999, 2000, 2001, 3000} {
		result := ValidateDescription("en", strings.Repeat("d", n))
		assert.Equal(t, n >= 20 && n <= 2000, result.OK, "length %d", n)
	}
}

func TestValidateCategoryAndLocation(t *testing.T) {
	assert.False(t, ValidateCategory("en", "").OK)
	assert.False(t, ValidateCategory("en", "weather").OK)
	assert.True(t, ValidateCategory("en", "road").OK)

	assert.False(t, ValidateLocation("en", "ab").OK)
	assert.True(t, ValidateLocation("en", "abc").OK)
}

func TestValidateCredentials(t *testing.T) {
	t.Run("Login Email", func(t *testing.T) {
		assert.Equal(t, constant.Messages["en"][constant.MsgEmailRequired], ValidateLoginEmail("en", "").Message)
		assert.False(t, ValidateLoginEmail("en", "not-an-email").OK)
		assert.True(t, ValidateLoginEmail("en", "user@example.com").OK)
	})

	t.Run("Password", func(t *testing.T) {
		assert.False(t, ValidatePassword("en", "12345").OK)
		assert.True(t, ValidatePassword("en", "123456").OK)
	})

	t.Run("Signup Password Complexity", func(t *testing.T) {
		assert.False(t, ValidateSignupPassword("en", "abcdef").OK)
		assert.False(t, ValidateSignupPassword("en", "Abcdef").OK)
		assert.False(t, ValidateSignupPassword("en", "ABC123").OK)
		assert.False(t, ValidateSignupPassword("en", "Ab1").OK)
		assert.True(t, ValidateSignupPassword("en", "Abc123").OK)
	})

	t.Run("Confirmation", func(t *testing.T) {
		assert.False(t, ValidateConfirmation("en", "Abc123", "Abc124").OK)
		assert.True(t, ValidateConfirmation("en", "Abc123", "Abc123").OK)
	})

	t.Run("Username", func(t *testing.T) {
		assert.False(t, ValidateUsername("en", "ab").OK)
		assert.False(t, ValidateUsername("en", strings.Repeat("a", 21)).OK)
		assert.False(t, ValidateUsername("en", "bad name").OK)
		assert.False(t, ValidateUsername("en", "bad-name").OK)
		assert.True(t, ValidateUsername("en", "good_name_1").OK)
	})
}

func TestValidateAggregates(t *testing.T) {
	t.Run("Login", func(t *testing.T) {
		results := ValidateLogin("en", model.SignInRequest{Email: "bad", Password: "1"})
		assert.False(t, results.OK())
		assert.Contains(t, results, "email")
		assert.Contains(t, results, "password")

		assert.True(t, ValidateLogin("en", model.SignInRequest{Email: "a@b.dz", Password: "secret"}).OK())
	})

	t.Run("Signup", func(t *testing.T) {
		results := ValidateSignup("en", model.SignUpRequest{
			Email:           "a@b.dz",
			Password:        "Abc123",
			ConfirmPassword: "Abc12",
			Username:        "x",
		})
		assert.Len(t, results, 2)
		assert.Contains(t, results, "confirm_password")
		assert.Contains(t, results, "username")
	})

	t.Run("Report Accepts Region Instead Of Location", func(t *testing.T) {
		results := ValidateReport("en", ReportInput{
			Title:       "Broken traffic light",
			Description: "The light at the main junction is off since yesterday",
			Category:    "traffic",
			Region:      "Oran",
		})
		assert.True(t, results.OK())
	})

	t.Run("Report Requires Location Or Region", func(t *testing.T) {
		results := ValidateReport("en", ReportInput{
			Title:       "Broken traffic light",
			Description: "The light at the main junction is off since yesterday",
			Category:    "traffic",
		})
		assert.Contains(t, results, "location")
	})

	t.Run("Error Wraps Fields", func(t *testing.T) {
		results := ValidateLogin("en", model.SignInRequest{})
		appErr := results.Error("en")
		if assert.NotNil(t, appErr) {
			assert.Equal(t, KindValidation, appErr.Kind)
			assert.Equal(t, map[string]string(results), appErr.Fields)
		}
		assert.Nil(t, ValidationResults{}.Error("en"))
	})
}

func TestTranslateValidationErrors(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	err := validator.New().Struct(payload{Email: "nope"})
	results := TranslateValidationErrors("en", err)
	assert.Equal(t, constant.Messages["en"][constant.MsgEmailInvalid], results["Email"])
}
