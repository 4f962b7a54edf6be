package commands

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X .../commands.Version=..."
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			PrintKeyValue(w, "Version", Version, 7)
			PrintKeyValue(w, "Go", runtime.Version(), 7)
			PrintKeyValue(w, "OS/Arch", runtime.GOOS+"/"+runtime.GOARCH, 7)
		},
	}
}
