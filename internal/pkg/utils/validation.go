package utils

import (
	"medibook-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("date_yyyymmdd", validateDateYYYYMMDD)
	validate.RegisterValidation("time_hhmm", validateTimeHHMM)
	validate.RegisterValidation("not_past_date", validateNotPastDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateDateYYYYMMDD(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(fl.Field().String())
}

func validateTimeHHMM(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexTimeHHMM).MatchString(fl.Field().String())
}

// validateNotPastDate relies on the fixed YYYY-MM-DD format, so plain string
// comparison orders dates correctly.
func validateNotPastDate(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	if !regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(date) {
		return false
	}
	today := time.Now().Format("2006-01-02")
	return date >= today
}

func ValidateEmailFormat(email string) bool {
	return regexp.MustCompile(constvars.RegexEmail).MatchString(email)
}
