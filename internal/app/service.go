package app

import (
	"time"

	"grml-changelog/internal/adapters"
	"grml-changelog/internal/ports"
)

type Service struct {
	PackageLists    ports.PackageListPort
	Runner          ports.CommandRunnerPort
	ChangelogWriter ports.ChangelogWriterPort
	NewMirror       func(runner ports.CommandRunnerPort, urlBase string, dir string, timeout time.Duration) ports.MirrorPort
}

func NewService() Service {
	return Service{
		PackageLists:    adapters.NewPackageListFileAdapter(),
		Runner:          adapters.NewExecCommandRunnerAdapter(),
		ChangelogWriter: adapters.NewChangelogFileAdapter(),
		NewMirror: func(runner ports.CommandRunnerPort, urlBase string, dir string, timeout time.Duration) ports.MirrorPort {
			return adapters.NewGitMirrorAdapter(runner, urlBase, dir, timeout)
		},
	}
}
