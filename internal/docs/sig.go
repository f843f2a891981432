package docs

import (
	"strings"
)

// Params is a rendered argument list.
type Params struct {
	// HTML is the argument list with linked types, e.g.
	// `<span class="arg-type">int</span> index, [<span class="arg-type">string</span> padStr]`.
	HTML string
	// UsageArgs are the bare argument names for a call example, optional ones
	// wrapped as "[name]".
	UsageArgs []string
}

// Usage joins the usage arguments for a call example.
func (p Params) Usage() string {
	return strings.Join(p.UsageArgs, ", ")
}

func typeSpan(linked string) string {
	return `<span class="arg-type">` + linked + `</span>`
}

// FormatParams renders the parameter list of a validated signature. Required
// parameters come first; the trailing OptionalNum parameters are bracketed.
func FormatParams(sig ApiSignature) Params {
	n := len(sig.ParamNames)
	required := n - min(max(sig.OptionalNum, 0), n)

	var b strings.Builder
	usage := make([]string, 0, n)
	for i, name := range sig.ParamNames {
		if i > 0 {
			b.WriteString(", ")
		}
		var typ string
		if i < len(sig.ParamTypes) {
			typ = sig.ParamTypes[i]
		}
		param := typeSpan(LinkType(typ)) + " " + name
		if i < required {
			b.WriteString(param)
			usage = append(usage, name)
			continue
		}
		b.WriteString("[" + param + "]")
		usage = append(usage, "["+name+"]")
	}
	return Params{HTML: b.String(), UsageArgs: usage}
}

// FormatReturnTypes renders the return type union as "T1 or T2 or ...".
func FormatReturnTypes(sig ApiSignature) string {
	linked := make([]string, len(sig.ReturnTypes))
	for i, t := range sig.ReturnTypes {
		linked[i] = LinkType(t)
	}
	return strings.Join(linked, " or ")
}

// returnsVoid reports whether the signature's sole return type is "void".
func returnsVoid(sig ApiSignature) bool {
	return len(sig.ReturnTypes) == 1 && sig.ReturnTypes[0] == "void"
}
