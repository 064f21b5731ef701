package models

import "slices"

// SignupData is the body of POST /auth/signup. ConfirmPassword is checked
// on the client and never sent.
type SignupData struct {
	FirstName       string   `json:"firstName" validate:"required,min=2"`
	LastName        string   `json:"lastName" validate:"required,min=2"`
	Phone           string   `json:"phone" validate:"required,phone"`
	Email           string   `json:"email" validate:"required,email"`
	DOB             string   `json:"dob" validate:"required,datetime=2006-01-02,pastdate"`
	Password        string   `json:"password" validate:"required,min=8,passwordmix"`
	ConfirmPassword string   `json:"-" validate:"required,eqfield=Password"`
	Preferences     []string `json:"preferences" validate:"dive,category"`
}

// Clone returns a deep copy of s. Clone of nil is nil.
func (s *SignupData) Clone() *SignupData {
	if s == nil {
		return nil
	}
	c := *s
	c.Preferences = slices.Clone(s.Preferences)
	return &c
}

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// OTPVerification is the body of POST /auth/verify-otp.
type OTPVerification struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,otp"`
}

// ProfileUpdate is the body of PUT /auth/update-profile. Password and
// ConfirmPassword travel only when the user sets a new password.
type ProfileUpdate struct {
	FirstName       string   `json:"firstName" validate:"required"`
	LastName        string   `json:"lastName" validate:"required"`
	Phone           string   `json:"phone" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	DOB             string   `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02,pastdate"`
	Password        string   `json:"password,omitempty" validate:"omitempty,min=8"`
	ConfirmPassword string   `json:"confirmPassword,omitempty" validate:"eqfield=Password"`
	Preferences     []string `json:"preferences" validate:"dive,category"`
}

// ArticleForm is the editable part of an article. Image is a local file
// path; it is uploaded as the multipart "image" part when set.
type ArticleForm struct {
	Title    string
	Content  string
	Category string
	Tags     []string
	Image    string
	// AuthorID is sent as "userId" on update.
	AuthorID string
}
