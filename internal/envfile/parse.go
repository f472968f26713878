package envfile

import "strings"

// skip reasons reported at debug level.
const (
	reasonNoSeparator = "no '=' separator"
	reasonEmptyKey    = "empty key"
)

func trim(s string) string {
	return strings.TrimRight(strings.TrimLeft(s, " \t"), " \t\r\n")
}

// parseLine extracts an Entry from a single line of an env file.
// ok is false for blank lines, comments and malformed declarations;
// reason is set only for the malformed ones.
func parseLine(line string) (e Entry, ok bool, reason string) {
	line = trim(line)
	if line == "" || line[0] == '#' {
		return Entry{}, false, ""
	}

	key, raw, found := strings.Cut(line, "=")
	if !found {
		return Entry{}, false, reasonNoSeparator
	}
	key = trim(key)
	if key == "" {
		return Entry{}, false, reasonEmptyKey
	}

	return Entry{Key: key, Value: unescape(unquote(trim(raw)))}, true, ""
}

// unquote strips one layer of matching single or double quotes.
// A value made of a lone quote character counts as both ends and
// becomes empty.
func unquote(v string) string {
	if v == "" {
		return v
	}
	first, last := v[0], v[len(v)-1]
	if first != last || (first != '"' && first != '\'') {
		return v
	}
	if len(v) == 1 {
		return ""
	}
	return v[1 : len(v)-1]
}

// unescape resolves backslash sequences left to right. Unknown
// sequences yield the escaped byte; a trailing backslash is kept.
func unescape(v string) string {
	if strings.IndexByte(v, '\\') < 0 {
		return v
	}

	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\\' || i+1 == len(v) {
			b.WriteByte(c)
			continue
		}
		i++
		switch v[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			// covers \\, \" and \' as well
			b.WriteByte(v[i])
		}
	}
	return b.String()
}
