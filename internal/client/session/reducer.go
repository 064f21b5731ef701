package session

import "reflect"

// Reduce returns the state after applying a to prev. Every action is total:
// preconditions such as "Loading is false" are not checked. Unknown action
// types and transitions that change nothing return prev unchanged, Version
// included.
func Reduce(prev State, a Action) State {
	s := prev.Clone()

	switch a.Type {
	case SignupSubmit, LoginSubmit, LogoutSubmit, ProfileUpdateSubmit:
		s.Loading = true
		s.Error = ""

	case SignupSuccess:
		s.Loading = false
		s.SignupData = a.Signup.Clone()
		s.Error = ""

	case SignupFailure, LoginFailure, ProfileUpdateFailure:
		s.Loading = false
		s.Error = a.Message

	case OTPSubmit:
		s.OTP.Loading = true
		s.OTP.Error = ""

	case OTPSuccess:
		s.OTP = OTPState{Success: true}
		s.User = a.User.Clone()
		s.SignupData = nil

	case OTPFailure:
		s.OTP = OTPState{Error: a.Message}

	case LoginSuccess, ProfileUpdateSuccess:
		s.Loading = false
		s.User = a.User.Clone()
		s.Error = ""

	case LogoutSuccess:
		s.Loading = false
		s.User = nil
		s.OTP.Success = false
		s.Error = ""

	case LogoutFailure:
		// the local session ends even when the server call failed
		s.Loading = false
		s.User = nil
		s.OTP.Success = false
		s.Error = a.Message

	case ErrorClear:
		s.Error = ""
		s.OTP.Error = ""

	case ClearSignupData:
		s.SignupData = nil

	case ResetOTPVerification:
		s.OTP = OTPState{}

	case LocalLogout:
		s.User = nil
		s.Error = ""
		s.Loading = false
		s.OTP.Success = false

	case UpdateUser:
		s.User = a.User.Clone()

	case Rehydrate:
		s.User = a.Snapshot.User.Clone()
		s.OTP.Success = a.Snapshot.OTPVerified

	case Cancelled:
		if a.Kind == KindOTP {
			s.OTP.Loading = false
		} else {
			s.Loading = false
		}

	default:
		return prev
	}

	if reflect.DeepEqual(prev, s) {
		return prev
	}
	s.Version++
	return s
}

// endsSession reports whether applying t starts a new session epoch.
func endsSession(t ActionType) bool {
	return t == LogoutSuccess || t == LogoutFailure || t == LocalLogout
}
