package grammar

import "strings"

// FormField is a single decoded field of a form-encoded string.
type FormField struct {
	// Key is the decoded and mangled field name.
	Key string
	// Value is the decoded field value.
	Value string
	// List is true for "name[]" fields that accumulate values.
	List bool
}

// RawFormKeys collects raw, not decoded, names of fields from the form-encoded string s.
// A name is everything before the first '=' of a '&' separated token.
func RawFormKeys(s string) map[string]bool {
	keys := make(map[string]bool)
	for tok := range strings.SplitSeq(s, "&") {
		k, _, _ := strings.Cut(tok, "=")
		keys[k] = true
	}
	return keys
}

// DecodeForm decodes form-encoded string s into a list of fields in the order of appearance.
//
// Tokens are separated by '&', name and value are separated by the first '='.
// Both parts are unescaped with [UnescapeForm].
// Names are mangled the same way the web form decoders do:
// leading spaces are trimmed, '.' and ' ' before the first '[' are replaced with '_'
// and a '[' without matching ']' is replaced with '_'.
// Name with "[]" suffix produces a list field.
// Empty tokens and tokens with empty name are skipped.
func DecodeForm(s string) []FormField {
	var fields []FormField
	for tok := range strings.SplitSeq(s, "&") {
		if tok == "" {
			continue
		}
		k, v, _ := strings.Cut(tok, "=")
		name, list := MangleFormKey(UnescapeForm(k))
		if name == "" {
			continue
		}
		fields = append(fields, FormField{Key: name, Value: UnescapeForm(v), List: list})
	}
	return fields
}

var formKeyRpl = strings.NewReplacer(".", "_", " ", "_")

// MangleFormKey converts decoded field name k into the form decoder variable name.
// It returns an empty name for names that must be skipped.
func MangleFormKey(k string) (name string, list bool) {
	k = strings.TrimLeft(k, " ")
	base, rest := k, ""
	if i := strings.IndexByte(k, '['); i >= 0 {
		base, rest = k[:i], k[i:]
	}
	base = formKeyRpl.Replace(base)

	switch {
	case rest == "":
		return base, false
	case base == "":
		return "", false
	case rest == "[]":
		return base, true
	case strings.IndexByte(rest, ']') < 0:
		return base + "_" + rest[1:], false
	default:
		// nested indexes are not expanded
		return base + rest, false
	}
}
