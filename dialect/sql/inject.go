package sql

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Inject splices the parameters back into the placeholders of a rendered
// statement and returns the statement as standalone SQL text. The result
// is meant for logs, tests and migration scripts; executing user input
// through it forfeits the protection of prepared statements.
//
// The query and parameters must come from the same Build call: `?`
// placeholders are substituted left to right, `$N` placeholders by
// index. A count or index mismatch returns an InjectError.
func Inject(dialect, query string, params []Value) (string, error) {
	bk, err := backendFor(dialect)
	if err != nil {
		return "", err
	}
	var (
		sb   strings.Builder
		next int
		seen []bool
	)
	if bk.parameterized {
		seen = make([]bool, len(params))
	}
	sb.Grow(len(query))
	for i := 0; i < len(query); i++ {
		switch c := query[i]; {
		case c == '\'':
			// Skip string literals, honoring doubled quotes.
			j := i + 1
			for j < len(query) {
				if query[j] == '\'' {
					if j+1 < len(query) && query[j+1] == '\'' {
						j += 2
						continue
					}
					break
				}
				j++
			}
			if j >= len(query) {
				return "", injectErrorf("unterminated string literal at offset %d", i)
			}
			sb.WriteString(query[i : j+1])
			i = j
		case c == '?' && !bk.parameterized:
			if next >= len(params) {
				return "", injectErrorf("placeholder %d exceeds %d parameters", next+1, len(params))
			}
			s, err := formatValue(bk, params[next])
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
			next++
		case c == '$' && bk.parameterized:
			j := i + 1
			for j < len(query) && query[j] >= '0' && query[j] <= '9' {
				j++
			}
			if j == i+1 {
				sb.WriteByte(c)
				continue
			}
			n, _ := strconv.Atoi(query[i+1 : j])
			if n < 1 || n > len(params) {
				return "", injectErrorf("placeholder $%d exceeds %d parameters", n, len(params))
			}
			s, err := formatValue(bk, params[n-1])
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
			seen[n-1] = true
			i = j - 1
		default:
			sb.WriteByte(c)
		}
	}
	// Every parameter must be consumed by a placeholder; a leftover means
	// the text and the parameter list desynchronized.
	if bk.parameterized {
		for idx, ok := range seen {
			if !ok {
				return "", injectErrorf("parameter %d never consumed by a placeholder", idx+1)
			}
		}
	} else if next < len(params) {
		return "", injectErrorf("%d parameters left over after %d placeholders", len(params)-next, next)
	}
	return sb.String(), nil
}

// formatValue renders a single parameter as a dialect-correct literal.
func formatValue(bk *backend, v Value) (string, error) {
	switch v.kind {
	case KindNull:
		return "NULL", nil
	case KindBool:
		if v.b {
			return "TRUE", nil
		}
		return "FALSE", nil
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return strconv.FormatInt(v.i, 10), nil
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return strconv.FormatUint(v.u, 10), nil
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 32), nil
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64), nil
	case KindString, KindJSON:
		return quoteString(v.s), nil
	case KindBytes:
		if bk.hexPrefixed {
			return "'\\x" + hex.EncodeToString(v.bs) + "'", nil
		}
		return "x'" + hex.EncodeToString(v.bs) + "'", nil
	case KindTime:
		return quoteString(v.t.UTC().Format(time.RFC3339Nano)), nil
	case KindUUID:
		return quoteString(v.id.String()), nil
	default:
		return "", injectErrorf("cannot format value of kind %s", v.kind)
	}
}

// quoteString renders a single-quoted SQL string literal, doubling
// embedded quotes. Backslashes are not escape characters in standard
// SQL; MySQL servers running with NO_BACKSLASH_ESCAPES agree.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
