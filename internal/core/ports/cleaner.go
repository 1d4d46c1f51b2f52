package ports

import "go.trai.ch/bento/internal/core/domain"

// OutputCleaner removes build output.
//
//go:generate mockgen -destination=mocks/cleaner_mock.go -package=mocks -source=cleaner.go
type OutputCleaner interface {
	// Clean removes the build and dist trees of layout and every component package directory.
	// It returns the removed paths.
	Clean(layout domain.Layout) ([]string, error)
}
