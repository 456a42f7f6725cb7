// Package client contains the client-side building blocks that talk to the
// outside world: the remote character API and the local SQLite cache.
//
// # Overview
//
//  1. Client is the transport-agnostic contract for fetching characters;
//     HTTPClient implements it over REST, issuing one GET per URL in
//     parallel and failing as a unit.
//  2. InitDatabase and EnsureSchema open the local SQLite database and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Remote failures wrap ErrUnavailable (transport) or ErrBadResponse
// (status or body); match them with errors.Is. EnsureSchema returns
// ErrStoreNotReady when called without a database.
package client
