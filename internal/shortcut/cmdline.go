package shortcut

import "strings"

// commandLine joins arguments into a single Windows command line string
// with quoting that survives CommandLineToArgvW.
func commandLine(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = quoteArg(arg)
	}

	return strings.Join(quoted, " ")
}

func quoteArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\"") {
		return arg
	}

	var b strings.Builder
	b.WriteByte('"')
	slashes := 0
	for i := 0; i < len(arg); i++ {
		switch arg[i] {
		case '\\':
			slashes++
		case '"':
			// Backslashes before a quote have to be doubled, and the
			// quote itself escaped.
			b.WriteString(strings.Repeat(`\`, 2*slashes+1))
			b.WriteByte('"')
			slashes = 0
		default:
			if slashes > 0 {
				b.WriteString(strings.Repeat(`\`, slashes))
				slashes = 0
			}
			b.WriteByte(arg[i])
		}
	}
	// Trailing backslashes double so the closing quote stays a quote.
	b.WriteString(strings.Repeat(`\`, 2*slashes))
	b.WriteByte('"')

	return b.String()
}
