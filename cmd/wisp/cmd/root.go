package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "wisp",
	Short:   "Wisp language interpreter",
	Long:    `wisp is a tree-walking interpreter for the Wisp scripting language.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

// Main is the CLI entry point. Unlike the teacher's Execute(), which
// returns a plain error and lets Cobra set exit status 1 uniformly,
// Wisp needs the specific exit-code contract its run command computes
// (64/65/66/70/74), so run.go calls os.Exit itself and Main only
// handles Cobra-level usage errors (missing command, bad flag).
func Main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(64)
	}
}
