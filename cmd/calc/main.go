package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

// flags holds the command line settings shared by the subcommands.
type flags struct {
	config  string
	inname  string
	verb    string
	engine  string
	depth   int
	disable []string
	echo    bool
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `calc evaluates infix arithmetic expressions over real numbers with
+ - * / ^, postfix !, parentheses, and the functions sin, cos, tan (degrees),
log, ln, sqrt, and abs.

Each argument is one expression. With no arguments, or with --in, each line
of the input is one expression.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return evaluate(cmd, &f, args)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "config file (.toml, .yaml, or .yml)")
	pf.StringVar(&f.inname, "in", "", "input file (default stdin if no args given)")
	pf.StringVar(&f.engine, "engine", "tree", "evaluation engine: tree or rewrite")
	pf.IntVar(&f.depth, "max-depth", calc.DefaultMaxDepth, "maximum nesting of function calls")
	pf.StringSliceVar(&f.disable, "disable", nil, "functions to disable (any number of times)")
	root.Flags().StringVar(&f.verb, "fmt", "%g", "result formatting string")
	root.Flags().BoolVar(&f.echo, "echo", false, "print parse trees")

	eval := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions (the default command)",
		RunE:  root.RunE,
	}
	eval.Flags().AddFlagSet(root.Flags())
	root.AddCommand(eval, newRewriteCmd(&f), newTableCmd(), newVersionCmd())
	return root
}

// resolve merges the config file, if any, with the flags the user set.
func (f *flags) resolve(cmd *cobra.Command) (config, error) {
	cfg := defaultConfig()
	if f.config != "" {
		c, err := loadConfig(f.config)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}
	fs := cmd.Flags()
	if fs.Changed("engine") {
		cfg.Engine = f.engine
	}
	if fs.Changed("max-depth") {
		cfg.MaxDepth = f.depth
	}
	if fs.Changed("disable") {
		cfg.Disable = append(cfg.Disable, f.disable...)
	}
	if fs.Lookup("fmt") != nil && fs.Changed("fmt") {
		cfg.Format = f.verb
	}
	if fs.Lookup("echo") != nil && fs.Changed("echo") {
		cfg.Echo = f.echo
	}
	return cfg, nil
}

func evaluate(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := f.resolve(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	ev := calc.New(opts...)
	srcs, err := inputs(cmd, f.inname, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	verb := cfg.Format + "\n"
	var failed int
	for _, src := range srcs {
		if cfg.Echo {
			echo(out, ev, src)
		}
		r, err := ev.Eval(src)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(err.Error()))
			failed++
			continue
		}
		fmt.Fprintf(out, verb, r)
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

// echo prints the form an expression takes before evaluation: its parse tree
// for the tree engine or its rewritten text for the rewrite engine.
func echo(w io.Writer, ev *calc.Evaluator, src string) {
	if ev.Engine() == calc.EngineRewrite {
		s, _ := ev.Rewrite(src)
		fmt.Fprint(w, echoStyle.Render(s), " : ")
		return
	}
	x, err := ev.Parse(src)
	if err != nil {
		fmt.Fprint(w, echoStyle.Render(src), " : ")
		return
	}
	fmt.Fprint(w, echoStyle.Render(x.String()), " : ")
}

// inputs collects the expressions to evaluate. Lines of the input file come
// before arguments. Blank lines are skipped.
func inputs(cmd *cobra.Command, inname string, args []string) ([]string, error) {
	var r io.Reader
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	case inname == "-", len(args) == 0:
		r = cmd.InOrStdin()
	}
	var srcs []string
	if r != nil {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if s := strings.TrimSpace(sc.Text()); s != "" {
				srcs = append(srcs, s)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}
	return append(srcs, args...), nil
}
