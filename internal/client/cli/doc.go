// Package cli provides the interactive inkwell command-line client.
//
// It is the view layer: every command calls a service, then renders the
// session state and the article feed. Navigation hints returned by the
// services (services.Outcome) decide what is shown next, e.g. a successful
// signup goes straight to the OTP prompt.
//
// Key features:
//   - signup, verify, resend, login, logout, profile
//   - feed, dashboard, mine, show: article lists gated by the session
//   - create, edit, delete, like, dislike, block, unblock
//
// Ctrl-C cancels the command in flight, not the program. The REPL is started
// via App.Run(ctx), which blocks until the user exits or input ends.
package cli
