package source

import (
	"strings"

	"github.com/dhamidi/externgen/haxe"
)

var primitives = map[string]string{
	"string":    "String",
	"number":    "Float",
	"Number":    "Float",
	"boolean":   "Bool",
	"Boolean":   "Bool",
	"void":      "Void",
	"any":       "Dynamic",
	"unknown":   "Dynamic",
	"object":    "Dynamic",
	"Function":  "Dynamic",
	"undefined": "Dynamic",
	"null":      "Dynamic",
}

// TranslateType converts a source type expression to its Haxe spelling.
func TranslateType(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return "Dynamic"
	}

	if params, ret, ok := splitArrow(t); ok {
		var types []string
		for _, p := range splitTop(params, ',') {
			if p = strings.TrimSpace(p); p == "" {
				continue
			}
			if _, typ, found := cutTop(p, ':'); found {
				p = typ
			}
			types = append(types, TranslateType(p))
		}
		if len(types) == 0 {
			types = []string{"Void"}
		}
		return strings.Join(types, "->") + "->" + TranslateType(ret)
	}

	if parts := splitTop(t, '|'); len(parts) > 1 {
		translated := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				translated = append(translated, TranslateType(p))
			}
		}
		return eitherType(translated)
	}

	if strings.HasSuffix(t, "[]") {
		return "Array<" + TranslateType(t[:len(t)-2]) + ">"
	}
	if strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")") {
		return TranslateType(t[1 : len(t)-1])
	}
	if strings.HasPrefix(t, "{") && strings.HasSuffix(t, "}") {
		return objectType(t[1 : len(t)-1])
	}
	if p, ok := primitives[t]; ok {
		return p
	}
	if i := strings.IndexByte(t, '<'); i > 0 && strings.HasSuffix(t, ">") {
		var args []string
		for _, a := range splitTop(t[i+1:len(t)-1], ',') {
			args = append(args, TranslateType(a))
		}
		return PackageName(t[:i]) + "<" + strings.Join(args, ", ") + ">"
	}
	return PackageName(t)
}

// RestType wraps the element type of a rest parameter.
func RestType(t string) string {
	t = strings.TrimSpace(t)
	if strings.HasSuffix(t, "[]") {
		t = t[:len(t)-2]
	} else if strings.HasPrefix(t, "Array<") && strings.HasSuffix(t, ">") {
		t = t[len("Array<") : len(t)-1]
	}
	return "Rest<" + TranslateType(t) + ">"
}

// PackageName lower-cases every dotted segment but the last and
// capitalizes the last one.
func PackageName(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		if i < len(parts)-1 {
			parts[i] = strings.ToLower(p)
		} else if !strings.Contains(p, " ") {
			parts[i] = haxe.Capitalize(p)
		}
	}
	return strings.Join(parts, ".")
}

func eitherType(types []string) string {
	if len(types) == 1 {
		return types[0]
	}
	return "EitherType<" + types[0] + ", " + eitherType(types[1:]) + ">"
}

func objectType(body string) string {
	if strings.Contains(body, "[") {
		return "Dynamic"
	}
	var fields []string
	for _, f := range splitTop(strings.ReplaceAll(body, ";", ","), ',') {
		name, typ, ok := cutTop(strings.TrimSpace(f), ':')
		if !ok {
			continue
		}
		fields = append(fields, strings.TrimSpace(name)+":"+TranslateType(typ))
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

// splitArrow splits "(a: A) => R" into its parameter list and result.
func splitArrow(t string) (string, string, bool) {
	if !strings.HasPrefix(t, "(") {
		return "", "", false
	}
	depth := 0
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				rest := strings.TrimSpace(t[i+1:])
				if !strings.HasPrefix(rest, "=>") {
					return "", "", false
				}
				return t[1:i], strings.TrimSpace(rest[2:]), true
			}
		}
	}
	return "", "", false
}

func splitTop(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '<', '(', '{', '[':
			depth++
		case '>':
			if i > 0 && s[i-1] == '=' {
				continue
			}
			depth--
		case ')', '}', ']':
			depth--
		default:
			if c == sep && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func cutTop(s string, sep byte) (string, string, bool) {
	parts := splitTop(s, sep)
	if len(parts) < 2 {
		return s, "", false
	}
	return parts[0], strings.Join(parts[1:], string(sep)), true
}
