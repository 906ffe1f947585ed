package cli

import (
	"fmt"
	"io"

	"github.com/Masterminds/semver"
)

// Set at link time:
//
//	go build -ldflags "-X github.com/jht5945/base58/cli.version=1.0.1 -X github.com/jht5945/base58/cli.gitHash=$(git rev-parse HEAD)"
var (
	version   = "1.0.0"
	gitHash   = "0000000000000000000000000000000000000000"
	buildDate = "unknown"
)

const banner = `base58 %s - %s
Copyright (C) 2019-2020 Hatter Jiang.
License MIT <https://opensource.org/licenses/MIT>

Written by Hatter Jiang
`

// Version returns the normalised release version, or the raw value if it is
// not a semantic version.
func Version() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return v.String()
}

func shortHash() string {
	if len(gitHash) > 7 {
		return gitHash[:7]
	}
	return gitHash
}

func (cl *CommandLine) printVersion(w io.Writer) error {
	if _, err := fmt.Fprintf(w, banner, Version(), shortHash()); err != nil {
		return err
	}
	cl.log.Debugf("Full GIT_HASH: %s", gitHash)
	cl.log.Debugf("Build date: %s", buildDate)
	return nil
}
