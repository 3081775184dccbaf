package phone

import "context"

// UseCase is the data retrieval surface the assistant's tools call into.
// Errors are ErrInvalidName, ErrNoRecommendations, ErrLookupFailed, *NotFoundError or *CompareError.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Details(ctx context.Context, name string) (Phone, error)
	Recommend(ctx context.Context, input RecommendInput) ([]Phone, error)
	Compare(ctx context.Context, nameA, nameB string) (Comparison, error)
}
