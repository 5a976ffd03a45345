package contactctl

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/amamam1231/ai-project-312/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Info()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "contactctl\n")
			fmt.Fprintf(w, "  Version:    %s\n", info.Version)
			fmt.Fprintf(w, "  Commit:     %s\n", info.GitCommit)
			fmt.Fprintf(w, "  Built:      %s\n", info.BuildTime)
			fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
		},
	}
}
