package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joshgarnett/xsd-classgen/generator"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// version is overridden at build time with -ldflags "-X .../cmd.version=...".
var version = "dev"

const longDescription = `Generate classes from XML Schema files.

xsdFiles may contain globs, e.g. "content/{schema,xsd}/**/*.xsd".
Append - to an option to disable it, e.g. --interface-.`

// Execute runs the command line and exits with a non-zero status on failure.
func Execute() {
	if err := execute(newRootCmd(generator.NewPlanner()), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'xscgen --help' for usage.")
		os.Exit(1)
	}
}

func newRootCmd(engine generator.Engine) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "xscgen [OPTIONS]+ xsdFile...",
		Short:         "Generate classes from XML Schema files",
		Long:          longDescription,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, engine)
		},
	}

	opts.bind(rootCmd.Flags())
	return rootCmd
}

// execute handles help before anything else is parsed, so a help request wins even
// when other flags are invalid.
func execute(rootCmd *cobra.Command, args []string) error {
	if wantsHelp(rootCmd.Flags(), args) {
		return rootCmd.Help()
	}

	rootCmd.SetArgs(negateBoolFlags(rootCmd.Flags(), args))
	return rootCmd.Execute()
}

// wantsHelp reports whether args ask for help, either as --help or as an h inside a
// shorthand cluster such as -vh. Values of flags that take one are skipped.
func wantsHelp(flags *pflag.FlagSet, args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return false
		}

		if name, ok := strings.CutPrefix(arg, "--"); ok {
			name, _, _ = strings.Cut(name, "=")
			if name == "help" {
				return true
			}
		} else if cluster, ok := strings.CutPrefix(arg, "-"); ok && cluster != "" {
			if shorthandHelp(flags, cluster) {
				return true
			}
		}

		if takesNextArg(flags, arg) {
			i++
		}
	}
	return false
}

// shorthandHelp scans a shorthand cluster up to the first flag that takes a value,
// since the rest of the cluster is that value.
func shorthandHelp(flags *pflag.FlagSet, cluster string) bool {
	for i := 0; i < len(cluster); i++ {
		c := cluster[i]
		if c == 'h' {
			return true
		}
		if c == '=' || c >= 0x80 {
			return false
		}
		if f := flags.ShorthandLookup(string(c)); f != nil && !isBoolFlag(f) {
			return false
		}
	}
	return false
}

// takesNextArg reports whether arg is a flag whose value is the following argument.
func takesNextArg(flags *pflag.FlagSet, arg string) bool {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		if name == "" || strings.Contains(name, "=") {
			return false
		}
		f := flags.Lookup(name)
		return f != nil && !isBoolFlag(f)
	}

	cluster, ok := strings.CutPrefix(arg, "-")
	if !ok || cluster == "" {
		return false
	}
	for i := 0; i < len(cluster); i++ {
		c := cluster[i]
		if c == '=' || c >= 0x80 {
			return false
		}
		if f := flags.ShorthandLookup(string(c)); f != nil && !isBoolFlag(f) {
			// The value is the rest of the cluster, or the next argument when empty.
			return i == len(cluster)-1
		}
	}
	return false
}

func isBoolFlag(f *pflag.Flag) bool {
	return f.Value.Type() == "bool"
}

// negateBoolFlags rewrites boolean flags with a trailing '-' ("--interface-",
// "-t-") into their explicit false form. Arguments after "--" are left alone.
func negateBoolFlags(flags *pflag.FlagSet, args []string) []string {
	long := map[string]bool{}
	short := map[string]bool{}
	flags.VisitAll(func(f *pflag.Flag) {
		if !isBoolFlag(f) {
			return
		}
		long[f.Name] = true
		if f.Shorthand != "" {
			short[f.Shorthand] = true
		}
	})

	rewritten := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			rewritten = append(rewritten, args[i:]...)
			break
		}
		if takesNextArg(flags, arg) && i+1 < len(args) {
			rewritten = append(rewritten, arg, args[i+1])
			i++
			continue
		}

		if name, ok := strings.CutPrefix(arg, "--"); ok {
			if base, negated := strings.CutSuffix(name, "-"); negated && long[base] {
				arg = "--" + base + "=false"
			}
		} else if name, ok := strings.CutPrefix(arg, "-"); ok && len(name) == 2 && name[1] == '-' && short[name[:1]] {
			arg = "-" + name[:1] + "=false"
		}
		rewritten = append(rewritten, arg)
	}
	return rewritten
}
