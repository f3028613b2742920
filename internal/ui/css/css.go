// Package css parses the small stylesheet dialect the overlay uses: class and id selectors,
// comma-separated selector lists and "key: value;" declarations. No combinators, no @rules.
package css

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule is one selector and its declarations.
type Rule struct {
	Selector string            // ".status-row" or "#status"
	Props    map[string]string // "color" -> "#d0d0d0"
}

// Stylesheet is a list of rules. Later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Parse reads a stylesheet. A selector list "a, b { ... }" yields one rule per selector.
// Selectors other than .class and #id are skipped. An unclosed block is an error.
func Parse(src string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	src = stripComments(src)
	for pos := 0; ; {
		open := strings.IndexByte(src[pos:], '{')
		if open < 0 {
			if rest := strings.TrimSpace(src[pos:]); rest != "" {
				off := len(src) - len(strings.TrimLeft(src[pos:], " \t\r\n"))
				return sheet, fmt.Errorf("css: line %d: trailing %q", line(src, off), rest)
			}
			return sheet, nil
		}
		open += pos
		end := strings.IndexByte(src[open:], '}')
		if end < 0 {
			return sheet, fmt.Errorf("css: line %d: unclosed block", line(src, open))
		}
		end += open
		props := declarations(src[open+1 : end])
		for _, sel := range strings.Split(src[pos:open], ",") {
			sel = strings.TrimSpace(sel)
			if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
		}
		pos = end + 1
	}
}

func line(src string, off int) int {
	return strings.Count(src[:off], "\n") + 1
}

// stripComments blanks /* */ comments, keeping newlines so error lines stay right.
func stripComments(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, "/*")
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		j := strings.Index(s[i+2:], "*/")
		if j < 0 {
			return b.String()
		}
		b.WriteString(strings.Repeat("\n", strings.Count(s[i:i+2+j], "\n")))
		s = s[i+2+j+2:]
	}
}

func declarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}

// Match merges the declarations of every rule that selects a node with the given class and id.
func (s *Stylesheet) Match(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, r := range s.Rules {
		name := r.Selector[1:]
		if (r.Selector[0] == '.' && name == class) || (r.Selector[0] == '#' && name == id) {
			for k, v := range r.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// Px parses "12px" or "12" as pixels.
func Px(s string) (int32, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px")))
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// Pct parses "N%" with N in [0, 100].
func Pct(s string) (int32, bool) {
	num, ok := strings.CutSuffix(strings.TrimSpace(s), "%")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}
