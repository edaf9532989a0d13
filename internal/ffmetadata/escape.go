package ffmetadata

import "strings"

// escaper works in a single left-to-right pass, so backslashes it inserts
// are never escaped a second time.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`=`, `\=`,
	`;`, `\;`,
	`#`, `\#`,
	"\n", `\n`,
)

// Escape quotes the characters FFMETADATA1 treats specially: backslash,
// '=', ';', '#' and newline. Nothing else is touched.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses [Escape]. A trailing lone backslash is kept as is.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		if s[i] == 'n' {
			b.WriteByte('\n')
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
