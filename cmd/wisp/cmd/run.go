package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-wisp/internal/wisp"
	"github.com/cwbudde/go-wisp/pkg/ast"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Wisp program",
	Long: `Execute a Wisp program from a file or inline expression.

Examples:
  wisp run script.wisp
  wisp run -e "print 1 + 2;"
  wisp run --dump-ast script.wisp`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST instead of running it")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace call-stack depth while executing (for debugging)")
}

func runScript(_ *cobra.Command, args []string) {
	var source, name string
	switch {
	case evalExpr != "":
		source, name = evalExpr, "<eval>"
	case len(args) == 1:
		name = args[0]
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wisp: cannot read %s: %s\n", name, err)
			os.Exit(int(wisp.ExitNoInput))
		}
		source = string(data)
	default:
		runREPL()
		return
	}

	if dumpAST {
		stmts, _, res := wisp.Compile(source)
		if res.Err != nil {
			fmt.Fprintln(os.Stderr, res.Err)
			os.Exit(int(res.Code))
		}
		fmt.Println(ast.Print(stmts))
		return
	}

	var res wisp.Result
	if trace {
		res = wisp.RunTraced(source, os.Stdout, os.Stderr)
	} else {
		res = wisp.Run(source, os.Stdout)
	}
	if res.Err != nil {
		fmt.Fprintln(os.Stderr, res.Err)
		os.Exit(int(res.Code))
	}
}
