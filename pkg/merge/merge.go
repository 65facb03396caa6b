package merge

import "strings"

// Render substitutes {{Field}} placeholders in template with the matching
// values from fields. Placeholders without a matching field are left
// verbatim, and substitution is single-pass: values that happen to contain
// placeholder syntax are not expanded again.
func Render(template string, fields map[string]string) string {
	if len(fields) == 0 {
		return template
	}

	pairs := make([]string, 0, len(fields)*2)
	for name, value := range fields {
		pairs = append(pairs, "{{"+name+"}}", value)
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
