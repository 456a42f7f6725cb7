package client

import (
	"context"

	"github.com/dmitrijs2005/iceandfire/internal/client/models"
)

// Client fetches character records from the remote API.
type Client interface {
	// FetchCharacters GETs every URL concurrently and returns the decoded
	// records in URL order. Any single failure fails the whole call.
	FetchCharacters(ctx context.Context, urls []string) ([]models.Character, error)
}
