package ports

import (
	"context"

	"grml-changelog/internal/types"
)

type PackageListPort interface {
	ReadPackageList(ctx context.Context, path string) (types.PackageSnapshot, error)
}
