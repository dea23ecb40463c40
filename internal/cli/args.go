// Package cli holds the command-line glue shared by the solver binaries.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NormalizeFlagName lets --words_file and --words-file name the same flag.
func NormalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// LongFlagNames returns the names of cmd's local flags longer than one
// character, in both dash and underscore spellings.
func LongFlagNames(cmd *cobra.Command) []string {
	var names []string
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if len(f.Name) < 2 {
			return
		}
		names = append(names, f.Name)
		if alt := strings.ReplaceAll(f.Name, "-", "_"); alt != f.Name {
			names = append(names, alt)
		}
	})
	return names
}

// NormalizeArgs rewrites single-dash long flags (-req b) into the double-dash
// form pflag expects (--req b). A variadic flag swallows the following
// non-flag tokens: "-board a b" becomes "--board=a --board=b". Everything
// after a bare "--" is copied unchanged.
func NormalizeArgs(args, long, variadic []string) []string {
	longSet := toSet(long)
	variadicSet := toSet(variadic)

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		name, value, hasValue, ok := splitFlag(arg)
		if !ok {
			out = append(out, arg)
			continue
		}
		if _, isVariadic := variadicSet[name]; isVariadic {
			if hasValue {
				out = append(out, "--"+name+"="+value)
			}
			for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				out = append(out, "--"+name+"="+args[i])
			}
			continue
		}
		if _, isLong := longSet[name]; isLong && !strings.HasPrefix(arg, "--") {
			out = append(out, "-"+arg)
			continue
		}
		out = append(out, arg)
	}
	return out
}

func splitFlag(arg string) (name, value string, hasValue, ok bool) {
	if !strings.HasPrefix(arg, "-") || arg == "-" {
		return "", "", false, false
	}
	trimmed := strings.TrimLeft(arg, "-")
	if trimmed == "" {
		return "", "", false, false
	}
	name, value, hasValue = strings.Cut(trimmed, "=")
	return name, value, hasValue, true
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
