package main

import (
	"os"
	"strings"

	"claudetask-cli/internal/cli"
)

func isSkillID(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "skill-") {
		return false
	}
	// Keep it permissive; IDs are generated but users may paste variants.
	return len(s) > len("skill-")
}

func rewriteDirectSkillLookupArgs(argv []string) []string {
	// Convenience: `claudetask <skill-id>` works like `claudetask skills show <skill-id>`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite
	// argv before parsing. Users often pass persistent flags first (e.g.
	// `claudetask --project p1 skill-abc`), so we must find the first
	// positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	// Minimal persistent-flag awareness. Unrecognized flags are skipped
	// without consuming a value, to avoid accidentally eating the skill id.
	valueFlags := map[string]bool{
		"--server":  true,
		"--project": true,
		"--format":  true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
		"--yes":    true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Stop flag parsing; next token (if any) is the first positional.
			if i+1 < len(argv) && isSkillID(argv[i+1]) {
				out := make([]string, 0, len(argv)+2)
				out = append(out, argv[:i+1]...)
				out = append(out, "skills", "show")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		if isSkillID(a) {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, "skills", "show")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectSkillLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
