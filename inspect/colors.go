package inspect

// tokenClass classifies a rendered token for colorization. Colors wrap
// individual tokens only; container output is built from colored tokens
// and never re-wrapped.
type tokenClass uint8

const (
	tokenPlain tokenClass = iota
	tokenString
	tokenNumber
	tokenBool
	tokenNil
	tokenKey
	tokenPunct
	tokenSentinel
)

const ansiReset = "\x1b[0m"

// palette maps token classes to ANSI SGR sequences.
var palette = [...]string{
	tokenPlain:    "",
	tokenString:   "\x1b[32m", // green
	tokenNumber:   "\x1b[33m", // yellow
	tokenBool:     "\x1b[35m", // magenta
	tokenNil:      "\x1b[90m", // bright black
	tokenKey:      "\x1b[36m", // cyan
	tokenPunct:    "\x1b[2m",  // dim
	tokenSentinel: "\x1b[31m", // red
}

// token writes s, wrapped in the class color and a reset when colors are
// active. Colorization never changes the rendered content itself.
func (ins *Inspector) token(st *state, class tokenClass, s string) {
	if ins.colors {
		if p := palette[class]; p != "" {
			st.buf.WriteString(p)
			st.buf.WriteString(s)
			st.buf.WriteString(ansiReset)
			return
		}
	}
	st.buf.WriteString(s)
}
