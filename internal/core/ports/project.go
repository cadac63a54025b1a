package ports

import (
	"context"

	"go.trai.ch/sassy/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks

// ProjectGraph resolves documents belonging to the project of a source file.
type ProjectGraph interface {
	// ResolveRootDocuments returns every root stylesheet document in the project containing source.
	ResolveRootDocuments(ctx context.Context, source string) ([]string, error)
}

// OutputRegistrar registers generated artifacts with the host project.
type OutputRegistrar interface {
	// AddNestedFile nests child under parent with the given build action.
	AddNestedFile(ctx context.Context, parent, child string, action domain.BuildAction) error
}
