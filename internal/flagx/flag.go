// Package flagx helps several packages share one command line: each caller
// extracts only the flags it owns before handing them to its own FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args that belong to the allowed flags,
// keeping their values and original order.
//
// A flag may be written with one or two dashes regardless of how it is listed
// in allowed ("-c" also matches "--c"). Values may follow as a separate
// argument ("-c conf.json") or be attached with '=' ("--config=conf.json").
// A following argument that starts with a dash is never consumed as a value.
func FilterArgs(args []string, allowed []string) []string {
	names := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		names[flagName(a)] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		if _, ok := names[flagName(name)]; !ok {
			continue
		}

		out = append(out, arg)
		if hasValue {
			continue
		}
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			out = append(out, args[next])
			i = next
		}
	}
	return out
}

// ConfigPath extracts the JSON config file path given via -c or -config.
// The last occurrence wins. An empty string means no file was requested.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

func flagName(s string) string {
	return strings.TrimLeft(s, "-")
}
