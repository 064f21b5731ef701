// Package client contains the client-side building blocks for talking to the
// inkwell backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see Client, composed of AuthAPI,
//     ArticleAPI and Credentials).
//  2. An HTTP/JSON implementation (see HTTPClient) that keeps the backend's
//     session cookie in a persistent jar, tags each request with an
//     X-Request-ID and decodes the {success, message, ...} envelope.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every failed call returns an *APIError whose Kind tells a server answer
// (KindServer) from a missing answer (KindNetwork) and from everything else
// (KindUnexpected). Message is always fit for display. The sentinels
// ErrUnavailable and ErrUnauthorized can be matched with errors.Is.
//
// The client never retries.
package client
