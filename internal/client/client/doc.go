// Package client contains the client-side transport for friendsdir.
//
// Client is the contract the state store depends on; HTTPClient implements
// it over resty. Tokens are passed to each protected call rather than kept
// on the client, so one HTTPClient can serve any session.
//
// Non-2xx answers come back as *APIError, which unwraps to the shared
// sentinels in internal/common (401 ErrUnauthorized, 403 ErrForbidden,
// 404 ErrNotFound, 500 ErrInternal). Transport failures wrap ErrUnavailable.
//
// InitDatabase and RunMigrations open the local SQLite file and apply the
// embedded goose schema.
package client
