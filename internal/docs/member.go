package docs

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const varKeyword = `<span class="arg-type">var</span>`

// Img renders one of the bundled badge images.
func Img(name, tooltip string) string {
	return fmt.Sprintf(`<img src="assets/img/%s.png" alt="%s" title="%s" />`, name, tooltip, tooltip)
}

// AnchorPrefix returns the in-page anchor prefix for members of kind k.
func AnchorPrefix(k FunctionKind) string {
	switch k {
	case Getter:
		return "get"
	case Setter:
		return "set"
	case IndexerGet:
		return "index-get"
	case IndexerSet:
		return "index-set"
	case Constructor:
		return "ctor"
	default:
		return "method"
	}
}

// MethodAnchor returns the in-page anchor id of a method.
func MethodAnchor(m ApiMethod) string {
	return AnchorPrefix(m.Kind) + "-" + m.Name
}

// VariableAnchor returns the in-page anchor id of a variable.
func VariableAnchor(v ApiVariable) string {
	return "var-" + v.Name
}

// DisplayName is the member title; indexers have fixed titles regardless of
// their stored name.
func DisplayName(m ApiMethod) string {
	switch m.Kind {
	case IndexerGet:
		return "(get) indexer"
	case IndexerSet:
		return "(set) indexer"
	default:
		return m.Name
	}
}

// Icons returns the badges shown before a member title.
func Icons(m ApiMethod) string {
	var icon string
	switch m.Kind {
	case Getter:
		icon = Img("getter", "Getter")
	case Setter:
		icon = Img("setter", "Setter")
	case Constructor:
		return Img("constructor", "Constructor")
	case IndexerGet, IndexerSet:
		icon = Img("indexer", "Indexer")
	default:
		icon = Img("method", "Method")
	}
	if m.IsStatic {
		icon += Img("static", "Static")
	}
	return icon
}

// instanceName is the one-letter variable used for instances of owner.
func instanceName(owner string) string {
	if owner == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(owner)
	return string(unicode.ToLower(r))
}

// shortReceiver is the expression members are accessed through in usage
// examples: the owner itself for static members, an instance variable
// otherwise, nothing for global functions.
func shortReceiver(owner string, m ApiMethod) string {
	if m.IsStatic {
		return owner
	}
	return instanceName(owner)
}

func member(receiver, name string) string {
	if receiver == "" {
		return name
	}
	return receiver + "." + name
}

// RenderMethod renders one member as an HTML block ending in a horizontal
// rule.
func RenderMethod(owner string, m ApiMethod) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div id="%s">%s <b>%s</b><br />`, MethodAnchor(m), Icons(m), DisplayName(m))
	if m.Description != "" {
		b.WriteString("<i>" + m.Description + "</i><br />")
	}
	b.WriteString("<br />")

	recv := shortReceiver(owner, m)
	switch m.Kind {
	case Constructor:
		renderConstructor(&b, owner, m)
	case Getter:
		renderGetter(&b, recv, m)
	case Setter:
		renderSetter(&b, recv, m)
	case IndexerGet, IndexerSet:
		renderIndexer(&b, recv, m)
	default:
		renderStandard(&b, recv, m)
	}

	b.WriteString("</div><hr />")
	return b.String()
}

// signatureLabel labels overloads; single-signature members get no label.
func signatureLabel(b *strings.Builder, m ApiMethod, i int) {
	if len(m.Signatures) > 1 {
		fmt.Fprintf(b, "Signature %d:<br />", i+1)
	}
}

func argumentsLine(b *strings.Builder, p Params) {
	if p.HTML == "" {
		b.WriteString("Arguments: <i>none</i><br />")
		return
	}
	b.WriteString("Arguments: " + p.HTML + "<br />")
}

func renderStandard(b *strings.Builder, recv string, m ApiMethod) {
	for i, sig := range m.Signatures {
		p := FormatParams(sig)
		b.WriteString("<code>")
		signatureLabel(b, m, i)
		b.WriteString("Return type: " + typeSpan(FormatReturnTypes(sig)) + "<br />")
		argumentsLine(b, p)
		call := member(recv, m.Name) + "(" + p.Usage() + ");"
		if returnsVoid(sig) {
			b.WriteString("Usage: " + call)
		} else {
			b.WriteString("Usage: " + varKeyword + " result = " + call)
		}
		b.WriteString("</code>")
	}
}

func renderConstructor(b *strings.Builder, owner string, m ApiMethod) {
	v := instanceName(owner)
	if v == "" {
		v = "x"
	}
	for i, sig := range m.Signatures {
		p := FormatParams(sig)
		b.WriteString("<code>")
		signatureLabel(b, m, i)
		argumentsLine(b, p)
		fmt.Fprintf(b, "Usage: %s %s = new %s(%s);", varKeyword, v, owner, p.Usage())
		b.WriteString("</code>")
	}
}

// Accessors only get a usage sample when they carry exactly one signature.
func renderGetter(b *strings.Builder, recv string, m ApiMethod) {
	if len(m.Signatures) != 1 {
		return
	}
	sig := m.Signatures[0]
	b.WriteString("<code>Type: " + typeSpan(FormatReturnTypes(sig)) + "<br />")
	fmt.Fprintf(b, "Usage: %s %s = %s;</code>", varKeyword, m.Name, member(recv, m.Name))
}

func renderSetter(b *strings.Builder, recv string, m ApiMethod) {
	if len(m.Signatures) != 1 {
		return
	}
	sig := m.Signatures[0]
	typ := FormatReturnTypes(sig)
	if len(sig.ParamTypes) > 0 {
		linked := make([]string, len(sig.ParamTypes))
		for i, t := range sig.ParamTypes {
			linked[i] = LinkType(t)
		}
		typ = strings.Join(linked, " or ")
	}
	b.WriteString("<code>Type: " + typeSpan(typ) + "<br />")
	fmt.Fprintf(b, "Usage: %s = %s;</code>", member(recv, m.Name), m.Name)
}

func renderIndexer(b *strings.Builder, recv string, m ApiMethod) {
	for i, sig := range m.Signatures {
		p := FormatParams(sig)
		b.WriteString("<code>")
		signatureLabel(b, m, i)
		if m.Kind == IndexerGet {
			b.WriteString("Return type: " + typeSpan(FormatReturnTypes(sig)) + "<br />")
		}
		argumentsLine(b, p)
		if m.Kind == IndexerGet {
			fmt.Fprintf(b, "Usage: %s value = %s[%s];", varKeyword, recv, p.Usage())
		} else {
			fmt.Fprintf(b, "Usage: %s[%s] = value;", recv, p.Usage())
		}
		b.WriteString("</code>")
	}
}

// RenderVariable renders a prototype field with its get and set usage.
func RenderVariable(owner string, v ApiVariable) string {
	short := instanceName(owner)
	return fmt.Sprintf(`<div id="%s">%s <b>%s</b><br /><br />`, VariableAnchor(v), Img("variable", "Variable"), v.Name) +
		"<code>Type: " + typeSpan(LinkType(v.Type)) + "</code>" +
		"<code>Usage:<br />" +
		fmt.Sprintf("- get: %s %s = %s;<br />", varKeyword, v.Name, member(short, v.Name)) +
		fmt.Sprintf("- set: %s = %s;</code></div><hr />", member(short, v.Name), v.Name)
}
