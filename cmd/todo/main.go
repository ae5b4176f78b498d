package main

import (
	"os"
	"strings"

	"todo-tui/internal/cli"
)

// rewriteBareItemArgs turns positional arguments into --item flags so
// `todo "Buy milk" "Call mom"` works like `todo --item "Buy milk" --item "Call mom"`.
//
// Cobra treats the first positional token as a subcommand, so argv is rewritten
// before parsing. Known subcommands and anything after "--" are left alone.
func rewriteBareItemArgs(argv []string, subcommands map[string]bool) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":    true,
		"--tick-rate": true,
		"--log-file":  true,
		"--log-level": true,
		"--glyphs":    true,
		"--theme":     true,
		"--item":      true,
	}

	out := make([]string, 0, len(argv)*2)
	out = append(out, argv[0])
	for i := 1; i < len(argv); i++ {
		a := argv[i]
		switch {
		case a == "--":
			return append(out, argv[i:]...)
		case strings.HasPrefix(a, "-"):
			out = append(out, a)
			if valueFlags[a] && i+1 < len(argv) {
				i++
				out = append(out, argv[i])
			}
		case len(out) == 1 && subcommands[a]:
			return argv
		default:
			out = append(out, "--item", a)
		}
	}
	return out
}

func main() {
	cmd := cli.NewRootCmd()

	subs := map[string]bool{"help": true, "completion": true}
	for _, c := range cmd.Commands() {
		subs[c.Name()] = true
	}
	cmd.SetArgs(rewriteBareItemArgs(os.Args, subs)[1:])

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
