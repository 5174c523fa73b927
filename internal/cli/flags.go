package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// changed returns &val when the flag was given on the command line.
func changed[T any](f *pflag.FlagSet, name string, val T) *T {
	if !f.Changed(name) {
		return nil
	}
	return &val
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
