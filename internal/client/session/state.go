package session

import "github.com/dmitrijs2005/inkwell/internal/client/models"

// OTPState tracks the OTP verification request independently of Loading.
type OTPState struct {
	Loading bool
	Success bool
	Error   string
}

// State is the whole session. The zero value is the anonymous initial state.
type State struct {
	User    *models.User
	Loading bool
	// Error is the message of the most recent failed top-level action.
	Error      string
	OTP        OTPState
	SignupData *models.SignupData
	// Version increases with every applied transition.
	Version uint64
}

// Authenticated reports whether a user is signed in.
func (s State) Authenticated() bool {
	return s.User != nil
}

// Clone returns a copy sharing no memory with s.
func (s State) Clone() State {
	s.User = s.User.Clone()
	s.SignupData = s.SignupData.Clone()
	return s
}

// Snapshot is the durable part of State.
type Snapshot struct {
	User        *models.User `json:"user"`
	OTPVerified bool         `json:"otpVerified"`
}

// Empty reports whether the snapshot carries nothing worth keeping.
func (s Snapshot) Empty() bool {
	return s.User == nil && !s.OTPVerified
}

// Snapshot extracts the durable part of s.
func (s State) Snapshot() Snapshot {
	return Snapshot{User: s.User.Clone(), OTPVerified: s.OTP.Success}
}
