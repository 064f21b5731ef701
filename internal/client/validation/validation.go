// Package validation checks user input before it reaches the session store
// or the network. Rules and messages follow the forms of the web client; the
// first failing rule decides the message.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
	"github.com/dmitrijs2005/inkwell/internal/common"
	"github.com/dmitrijs2005/inkwell/internal/filex"
)

// Error is a client-side validation failure.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Image upload limits.
const (
	MaxImageSize = 5 << 20
	MaxTags      = 10
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// now is replaced in tests.
var now = time.Now

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "phone", digits(10))
	mustRegister(v, "otp", digits(6))
	mustRegister(v, "pastdate", notFuture)
	mustRegister(v, "passwordmix", passwordMix)
	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		return models.IsCategory(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

func digits(n int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != n {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
}

func notFuture(fl validator.FieldLevel) bool {
	d, err := time.ParseInLocation(common.DateLayout, fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	return !d.After(now())
}

func passwordMix(fl validator.FieldLevel) bool {
	var lower, upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// Signup checks the signup form.
func Signup(d models.SignupData) error {
	return check(d)
}

// Login checks the login form.
func Login(c models.Credentials) error {
	return check(c)
}

// OTP checks the verification form.
func OTP(o models.OTPVerification) error {
	return check(o)
}

// Profile trims the text fields and lower-cases the preferences of p, then
// checks it.
func Profile(p *models.ProfileUpdate) error {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Preferences = models.NormalizePreferences(p.Preferences)
	return check(*p)
}

type articleInput struct {
	Title    string   `validate:"required,min=5"`
	Content  string   `validate:"required,min=50"`
	Category string   `validate:"required"`
	Tags     []string `validate:"max=10"`
}

// Article trims title and content, normalizes tags, then checks the form
// and the image file if one is set.
func Article(f *models.ArticleForm) error {
	f.Title = strings.TrimSpace(f.Title)
	f.Content = strings.TrimSpace(f.Content)
	f.Category = strings.TrimSpace(f.Category)
	f.Tags = NormalizeTags(f.Tags)

	in := articleInput{Title: f.Title, Content: f.Content, Category: f.Category, Tags: f.Tags}
	if err := check(in); err != nil {
		return err
	}
	if f.Image != "" {
		return Image(f.Image)
	}
	return nil
}

// Image checks size and type of an upload.
func Image(path string) error {
	info, err := filex.Inspect(path)
	if err != nil {
		return &Error{Field: "Image", Message: fmt.Sprintf("Cannot read image: %v", err)}
	}
	if info.Size > MaxImageSize {
		return &Error{Field: "Image", Message: "File size must be less than 5MB"}
	}
	if !allowedImageTypes[info.ContentType] {
		return &Error{Field: "Image", Message: "Only JPG, PNG, GIF, and WebP files are allowed"}
	}
	return nil
}

// NormalizeTags lower-cases and trims tags and drops blanks and duplicates.
func NormalizeTags(tags []string) []string {
	return models.NormalizePreferences(tags)
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &Error{Message: err.Error()}
	}
	fe := verrs[0]
	return &Error{Field: fe.Field(), Message: messageFor(fe)}
}
