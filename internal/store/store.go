// internal/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/dippchain/studio-api/internal/models"
	"github.com/dippchain/studio-api/internal/query"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
)

// Record is implemented by every stored entity.
type Record interface {
	RecordID() string
}

// Store is an ordered collection of records. List returns the page window of
// matching records together with the total number of matches.
type Store[T Record] interface {
	List(ctx context.Context, req query.Request[T]) ([]T, int64, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, record T) error
}

// Stores bundles the four resource stores.
type Stores struct {
	IPs        Store[models.IPAsset]
	Listings   Store[models.Listing]
	Proposals  Store[models.Proposal]
	Violations Store[models.Violation]
}
