// Package validation checks user input before it reaches the services.
// Each form is a tagged struct run through go-playground/validator; every
// failing rule is translated to the message clients already know, and a
// non-empty result is returned as *Error, which matches common.ErrValidation
// under errors.Is.
package validation

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
)

const (
	MinUserNameLength = 3
	MinPasswordLength = 6
	// MaxPasswordBytes is the longest password bcrypt will hash.
	MaxPasswordBytes = 72
)

// Error carries the list of human-readable problems found in the input.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return "validation error: " + strings.Join(e.Problems, "; ")
}

func (e *Error) Unwrap() error { return common.ErrValidation }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "trimmed_min", trimmedMin)
	mustRegister(v, "max_bytes", maxBytes)
	v.RegisterStructValidation(profileHasField, profileForm{})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// trimmedMin counts runes after trimming surrounding whitespace.
func trimmedMin(fl validator.FieldLevel) bool {
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= param(fl)
}

// maxBytes limits the encoded length, which is what bcrypt checks.
func maxBytes(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= param(fl)
}

func param(fl validator.FieldLevel) int {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("bad parameter %q for %s", fl.Param(), fl.GetTag()))
	}
	return n
}

// messages maps "Field.tag" to the text reported for that failure.
type messages map[string]string

func check(form any, msgs messages) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var problems []string
	for _, fe := range fieldErrs {
		msg, ok := msgs[fe.StructField()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		if !slices.Contains(problems, msg) {
			problems = append(problems, msg)
		}
	}
	return &Error{Problems: problems}
}

// registration is the sign-up form. The raw copies carry the presence
// rule so an empty field also reports its length rule.
type registration struct {
	RawUserName string `validate:"required"`
	RawPassword string `validate:"required"`
	UserName    string `validate:"trimmed_min=3"`
	Password    string `validate:"trimmed_min=6,max_bytes=72"`
}

var registrationMessages = messages{
	"RawUserName.required": "userName and password required.",
	"RawPassword.required": "userName and password required.",
	"UserName.trimmed_min": "userName needs to be at least 3 characters.",
	"Password.trimmed_min": "Password needs to be at least 6 characters.",
	"Password.max_bytes":   "Password must be at most 72 bytes.",
}

// Registration validates a sign-up request.
func Registration(userName, password string) error {
	return check(registration{
		RawUserName: userName,
		RawPassword: password,
		UserName:    userName,
		Password:    password,
	}, registrationMessages)
}

type login struct {
	UserName string `validate:"required,trimmed_min=3"`
	Password string `validate:"required,notblank"`
}

var loginMessages = messages{
	"UserName.required":    "userName is required.",
	"UserName.trimmed_min": "userName must be at least 3 characters.",
	"Password.required":    "Password is required.",
	"Password.notblank":    "Password cannot be empty.",
}

// Login validates a sign-in request.
func Login(userName, password string) error {
	return check(login{UserName: userName, Password: password}, loginMessages)
}

// ProfileUpdate describes which fields of a profile save request were sent.
// Nil means the field was absent or null.
type ProfileUpdate struct {
	Password     *string
	HeightFeet   *float64
	HeightInches *float64
	Weight       *float64
}

// profileForm is ProfileUpdate with absent values zeroed; sent records
// whether anything was supplied at all.
type profileForm struct {
	Password     string  `validate:"omitempty,min=6,max_bytes=72"`
	HeightFeet   float64 `validate:"gte=0"`
	HeightInches float64 `validate:"gte=0"`
	Weight       float64 `validate:"gte=0"`
	sent         bool
}

var profileMessages = messages{
	"Password.min":       "Password must be at least 6 characters.",
	"Password.max_bytes": "Password must be at most 72 bytes.",
	"HeightFeet.gte":     "Height must be a valid number.",
	"HeightInches.gte":   "Height must be a valid number.",
	"Weight.gte":         "Weight must be a valid number.",
	"Fields.required":    "At least one field must be provided to update.",
}

func profileHasField(sl validator.StructLevel) {
	if f := sl.Current().Interface().(profileForm); !f.sent {
		sl.ReportError(nil, "Fields", "Fields", "required", "")
	}
}

// Profile validates a profile save request.
func Profile(u ProfileUpdate) error {
	return check(profileForm{
		Password:     deref(u.Password),
		HeightFeet:   deref(u.HeightFeet),
		HeightInches: deref(u.HeightInches),
		Weight:       deref(u.Weight),
		sent:         u.Password != nil || u.HeightFeet != nil || u.HeightInches != nil || u.Weight != nil,
	}, profileMessages)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
