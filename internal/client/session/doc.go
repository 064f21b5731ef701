// Package session holds the client's authentication state and the only
// rules allowed to change it.
//
// # Model
//
// State is a single versioned value: the signed-in user (nil when
// anonymous), a shared loading flag and error message for the top-level auth
// actions, the OTP sub-state, and the signup data kept between signup and
// OTP verification. Reduce maps (State, Action) to the next State and has no
// side effects.
//
// # Store
//
// Store owns the current State behind a mutex. Asynchronous actions go
// through tickets:
//
//	t := store.Begin(ctx, session.KindLogin) // applies LoginSubmit
//	user, err := api.Login(ctx, creds)
//	store.Resolve(ctx, t, session.Action{Type: session.LoginSuccess, User: user})
//
// Resolve applies the completion only while t is the newest ticket of its
// kind and no logout happened since Begin. A late answer to a superseded
// request is dropped instead of overwriting newer state.
//
// Subscribers are notified after applied transitions, outside the lock,
// with a private copy of the state. Deliveries are serialized and their
// versions strictly increase: when transitions race, a state that is already
// older than one handed out is skipped, and a listener that dispatches sees
// the result after it returns.
//
// # Persistence
//
// A Persister receives a Snapshot of the durable part of the state (the user
// and the OTP success flag) whenever that part changes. Writes are ordered
// by state version. SQLitePersister keeps the snapshot as JSON in the local
// metadata table.
package session
