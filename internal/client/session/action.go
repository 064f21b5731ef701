package session

import (
	"fmt"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
)

// ActionType names a transition.
type ActionType int

const (
	SignupSubmit ActionType = iota + 1
	SignupSuccess
	SignupFailure
	OTPSubmit
	OTPSuccess
	OTPFailure
	LoginSubmit
	LoginSuccess
	LoginFailure
	LogoutSubmit
	LogoutSuccess
	LogoutFailure
	ProfileUpdateSubmit
	ProfileUpdateSuccess
	ProfileUpdateFailure
	ErrorClear
	ClearSignupData
	ResetOTPVerification
	LocalLogout
	UpdateUser
	Rehydrate
	Cancelled
)

var actionNames = map[ActionType]string{
	SignupSubmit:         "signup/submit",
	SignupSuccess:        "signup/success",
	SignupFailure:        "signup/failure",
	OTPSubmit:            "otp/submit",
	OTPSuccess:           "otp/success",
	OTPFailure:           "otp/failure",
	LoginSubmit:          "login/submit",
	LoginSuccess:         "login/success",
	LoginFailure:         "login/failure",
	LogoutSubmit:         "logout/submit",
	LogoutSuccess:        "logout/success",
	LogoutFailure:        "logout/failure",
	ProfileUpdateSubmit:  "profile/submit",
	ProfileUpdateSuccess: "profile/success",
	ProfileUpdateFailure: "profile/failure",
	ErrorClear:           "error/clear",
	ClearSignupData:      "signup/clear",
	ResetOTPVerification: "otp/reset",
	LocalLogout:          "logout/local",
	UpdateUser:           "user/update",
	Rehydrate:            "session/rehydrate",
	Cancelled:            "request/cancelled",
}

func (t ActionType) String() string {
	if n, ok := actionNames[t]; ok {
		return n
	}
	return fmt.Sprintf("ActionType(%d)", int(t))
}

// Action is a transition request. Only the fields its Type uses are read.
type Action struct {
	Type    ActionType
	User    *models.User
	Signup  *models.SignupData
	Message string
	// Kind selects the request of a Cancelled action.
	Kind     Kind
	Snapshot Snapshot
}

// Kind identifies an asynchronous auth request.
type Kind int

const (
	KindSignup Kind = iota + 1
	KindOTP
	KindLogin
	KindLogout
	KindProfileUpdate
)

func (k Kind) String() string {
	switch k {
	case KindSignup:
		return "signup"
	case KindOTP:
		return "otp"
	case KindLogin:
		return "login"
	case KindLogout:
		return "logout"
	case KindProfileUpdate:
		return "profile"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Submit returns the pending action of k.
func (k Kind) Submit() ActionType {
	switch k {
	case KindSignup:
		return SignupSubmit
	case KindOTP:
		return OTPSubmit
	case KindLogin:
		return LoginSubmit
	case KindLogout:
		return LogoutSubmit
	case KindProfileUpdate:
		return ProfileUpdateSubmit
	default:
		return 0
	}
}

// Failure returns the failed completion of k carrying msg.
func (k Kind) Failure(msg string) Action {
	a := Action{Message: msg}
	switch k {
	case KindSignup:
		a.Type = SignupFailure
	case KindOTP:
		a.Type = OTPFailure
	case KindLogin:
		a.Type = LoginFailure
	case KindLogout:
		a.Type = LogoutFailure
	case KindProfileUpdate:
		a.Type = ProfileUpdateFailure
	}
	return a
}
