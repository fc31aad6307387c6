// Package flagx lets several components share os.Args, each parsing only
// the flags it owns with the standard flag package.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Owned maps a flag name (without dashes) to whether it takes a value.
// Boolean switches map to false and never consume the following argument.
type Owned map[string]bool

// name strips one or two leading dashes and any "=value" suffix. ok is false
// for arguments that are not flags, including a lone "-" or "--".
func name(arg string) (n string, inline bool, ok bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false, false
	}
	n = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if i := strings.IndexByte(n, '='); i >= 0 {
		n, inline = n[:i], true
	}
	return n, inline, n != ""
}

// FilterArgs returns the arguments belonging to owned flags, in order, with
// their values. "-n v", "--n v", "-n=v" and "--n=v" are all recognized. A
// value-taking flag followed by another flag is kept alone so flag.Parse
// reports the missing value.
func FilterArgs(args []string, owned Owned) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		n, inline, ok := name(args[i])
		if !ok {
			continue
		}
		takesValue, known := owned[n]
		if !known {
			continue
		}

		filtered = append(filtered, args[i])
		if inline || !takesValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFileFlag returns the path given with -c or -config in args, or ""
// when neither is present. The last occurrence wins.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, Owned{"c": true, "config": true}))

	return path
}
