package characters

import (
	"context"

	"github.com/dmitrijs2005/iceandfire/internal/client/models"
)

// Repository describes the cache operations over Character records.
type Repository interface {
	// ReplaceAll deletes every stored character, then inserts the given ones
	// in order. Without an enclosing transaction a failure can leave the
	// table partially rewritten.
	ReplaceAll(ctx context.Context, list []models.Character) error

	// GetAll returns every stored character ordered by id.
	GetAll(ctx context.Context) ([]models.Character, error)

	// Count returns the number of stored characters.
	Count(ctx context.Context) (int, error)
}
