package shortcut

import "testing"

func TestCommandLineQuoting(t *testing.T) {
	t.Parallel()

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"plain"}, "plain"},
		{[]string{"a", "b", "c"}, "a b c"},
		{[]string{"with space"}, `"with space"`},
		{[]string{""}, `""`},
		{[]string{`say "hi"`}, `"say \"hi\""`},
		{[]string{`C:\Program Files\app`}, `"C:\Program Files\app"`},
		{[]string{`trailing\`}, "trailing\\"},
		{[]string{`trailing \`}, `"trailing \\"`},
		{[]string{`back\\slash "q"`}, `"back\\slash \"q\""`},
		{[]string{"--name", "My App"}, `--name "My App"`},
	}

	for _, tc := range cases {
		if got := commandLine(tc.args); got != tc.want {
			t.Fatalf("commandLine(%q) = %q, want %q", tc.args, got, tc.want)
		}
	}
}
