// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tkcanvas

import (
	"strconv"
	"strings"
)

// quote escapes s as a single Tcl word.
func quote(s string) string {
	if s == "" {
		return "{}"
	}
	if !strings.ContainsAny(s, " \t\n\r{}[]$;\"\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case ' ', '{', '}', '[', ']', '$', ';', '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// line builds one canvas command.
type line struct {
	b strings.Builder
}

func newLine(path, verb string) *line {
	l := &line{}
	l.b.WriteString(path)
	l.b.WriteByte(' ')
	l.b.WriteString(verb)
	return l
}

func (l *line) word(s string) *line {
	l.b.WriteByte(' ')
	l.b.WriteString(s)
	return l
}

func (l *line) ints(vs ...int) *line {
	for _, v := range vs {
		l.b.WriteByte(' ')
		l.b.WriteString(strconv.Itoa(v))
	}
	return l
}

func (l *line) floats(vs ...float64) *line {
	for _, v := range vs {
		l.b.WriteByte(' ')
		l.b.WriteString(strconv.FormatFloat(v, 'f', 6, 64))
	}
	return l
}

func (l *line) opt(name, value string) *line {
	return l.word(name).word(value)
}

func (l *line) optInt(name string, v int) *line {
	return l.word(name).ints(v)
}

func (l *line) tags(tags ...string) *line {
	return l.opt("-tags", "{"+strings.Join(tags, " ")+"}")
}

func (l *line) String() string {
	return l.b.String()
}
