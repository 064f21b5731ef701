package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// messages is keyed by "Struct.Field.tag".
var messages = map[string]string{
	"SignupData.FirstName.required":       "First name is required",
	"SignupData.FirstName.min":            "First name must be at least 2 characters",
	"SignupData.LastName.required":        "Last name is required",
	"SignupData.LastName.min":             "Last name must be at least 2 characters",
	"SignupData.Email.required":           "Email is required",
	"SignupData.Email.email":              "Invalid email address",
	"SignupData.Phone.required":           "Phone number is required",
	"SignupData.Phone.phone":              "Phone number must be 10 digits",
	"SignupData.DOB.required":             "Date of birth is required",
	"SignupData.DOB.datetime":             "Date of birth must be YYYY-MM-DD",
	"SignupData.DOB.pastdate":             "Date of birth cannot be in the future",
	"SignupData.Password.required":        "Password is required",
	"SignupData.Password.min":             "Password must be at least 8 characters",
	"SignupData.Password.passwordmix":     "Password must contain at least one uppercase letter, one lowercase letter, and one number",
	"SignupData.ConfirmPassword.required": "Confirm password is required",
	"SignupData.ConfirmPassword.eqfield":  "Passwords must match",

	"Credentials.Email.required":    "Email is required",
	"Credentials.Email.email":       "Invalid email address",
	"Credentials.Password.required": "Password is required",
	"Credentials.Password.min":      "Password must be at least 6 characters",

	"OTPVerification.Email.required": "Email is required",
	"OTPVerification.Email.email":    "Invalid email address",
	"OTPVerification.OTP.required":   "OTP is required",
	"OTPVerification.OTP.otp":        "OTP must be 6 digits",

	"ProfileUpdate.FirstName.required":      "First name is required",
	"ProfileUpdate.LastName.required":       "Last name is required",
	"ProfileUpdate.Email.required":          "Email is required",
	"ProfileUpdate.Email.email":             "Invalid email address",
	"ProfileUpdate.Phone.required":          "Phone number is required",
	"ProfileUpdate.DOB.datetime":            "Date of birth must be YYYY-MM-DD",
	"ProfileUpdate.DOB.pastdate":            "Date of birth cannot be in the future",
	"ProfileUpdate.Password.min":            "Password must be at least 8 characters long",
	"ProfileUpdate.ConfirmPassword.eqfield": "Passwords do not match",

	"articleInput.Title.required":    "Title is required",
	"articleInput.Title.min":         "Title must be at least 5 characters long",
	"articleInput.Content.required":  "Content is required",
	"articleInput.Content.min":       "Content must be at least 50 characters long",
	"articleInput.Category.required": "Category is required",
	"articleInput.Tags.max":          "You can add at most 10 tags",
}

func messageFor(fe validator.FieldError) string {
	if fe.Tag() == "category" {
		return fmt.Sprintf("Unknown category %q", fe.Value())
	}
	if m, ok := messages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return m
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
