// Package services holds the client's application logic: the refresh
// sequence that connects the remote fetcher, the local store and the screen.
package services
