package validate

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

const (
	MinPasswordLen = 6
	phoneRegion    = "CN"
)

var mobileRe = regexp.MustCompile(`^1[3-9]\d{9}$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return Password(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return Phone(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Password requires at least six characters with a letter and a digit.
func Password(s string) bool {
	if len([]rune(s)) < MinPasswordLen {
		return false
	}
	var letter, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

// Phone accepts an empty value or a mainland China mobile number.
func Phone(s string) bool {
	if s == "" {
		return true
	}
	if !mobileRe.MatchString(s) {
		return false
	}
	num, err := phonenumbers.Parse(s, phoneRegion)
	if err != nil {
		return false
	}
	if !phonenumbers.IsValidNumberForRegion(num, phoneRegion) {
		return false
	}
	switch phonenumbers.GetNumberType(num) {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE_OR_MOBILE:
		return true
	}
	return false
}
