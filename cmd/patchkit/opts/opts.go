package opts

import (
	"github.com/heyitswin/patchkit/pkg/config"
	"github.com/heyitswin/patchkit/pkg/log"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config *config.Config
	Logger *log.Logger
	Root   string
}
