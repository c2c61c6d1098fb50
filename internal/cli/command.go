package cli

import (
	"github.com/vlsilabs/magic-go/internal/config"
)

// BuildArgs constructs the MAGIC invocation arguments.
//
// MAGIC is always started with -dnull (no display backend) and -noconsole
// (no interactive console), since all interaction happens over the command
// socket. The technology flag is added only when configured.
func BuildArgs(options *config.Options) []string {
	args := []string{"-dnull", "-noconsole"}

	if options.Tech != "" {
		args = append(args, "-T", options.Tech)
	}

	return args
}
