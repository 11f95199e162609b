// Package client is the single configured HTTP sender the workforce client
// uses to reach the REST backend, plus the local database bootstrap.
//
// # Overview
//
//  1. HTTPClient: base address, fixed timeout, JSON default headers and a
//     cookie jar, decorated by an explicit, ordered middleware chain.
//     Request middleware runs before sending and may abort the request;
//     response middleware runs after every response or transport failure.
//  2. Interceptors: BearerToken attaches the stored token after checking its
//     expiry, ClearOnUnauthorized empties the token slot when the backend
//     answers 401, RequestID tags requests for log correlation.
//  3. InitDatabase / RunMigrations open the local SQLite database and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Sentinels are matched with errors.Is: ErrUnauthorized (401), ErrNotFound
// (404), ErrUnavailable (transport failure), ErrMalformedToken and
// ErrTokenExpired (request aborted before sending). Any other non-2xx status
// is an *APIError carrying the backend's message; see ErrorMessage.
package client
