package adapters

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"grml-changelog/internal/core"
	"grml-changelog/internal/ports"
	"grml-changelog/internal/types"
)

type PackageListFileAdapter struct{}

func NewPackageListFileAdapter() PackageListFileAdapter {
	return PackageListFileAdapter{}
}

func (a PackageListFileAdapter) ReadPackageList(ctx context.Context, path string) (types.PackageSnapshot, error) {
	log.Ctx(ctx).Info().Str("path", path).Msg("parsing package list")
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return types.PackageSnapshot{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("could not find package list: %s", path)).
				WithCause(err)
		}
		return types.PackageSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to open package list: %s", path)).
			WithCause(err)
	}
	defer file.Close()

	snapshot, err := core.ParsePackageList(file)
	if err != nil {
		return types.PackageSnapshot{}, err
	}
	log.Ctx(ctx).Debug().Str("path", path).Int("packages", snapshot.Len()).Msg("parsed package list")
	return snapshot, nil
}

var _ ports.PackageListPort = PackageListFileAdapter{}
