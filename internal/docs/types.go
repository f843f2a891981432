package docs

import (
	"errors"
	"fmt"
)

// ErrInvalidSignature is returned for descriptors the extractor produced
// with inconsistent parameter or return data.
var ErrInvalidSignature = errors.New("invalid signature")

// FunctionKind classifies how a method is invoked from script code.
type FunctionKind int

const (
	Standard FunctionKind = iota
	Getter
	Setter
	Constructor
	IndexerGet
	IndexerSet
)

var kindNames = [...]string{
	Standard:    "standard",
	Getter:      "getter",
	Setter:      "setter",
	Constructor: "constructor",
	IndexerGet:  "indexer-get",
	IndexerSet:  "indexer-set",
}

func (k FunctionKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("FunctionKind(%d)", int(k))
	}
	return kindNames[k]
}

// IsAccessor reports whether k is a getter or a setter.
func (k FunctionKind) IsAccessor() bool { return k == Getter || k == Setter }

// IsIndexer reports whether k is an indexer get or set.
func (k FunctionKind) IsIndexer() bool { return k == IndexerGet || k == IndexerSet }

func (k FunctionKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown function kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *FunctionKind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = FunctionKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown function kind %q", text)
}

// ApiClass is a static-only API surface. Overloads may share a name.
type ApiClass struct {
	Name    string      `json:"name"`
	Methods []ApiMethod `json:"methods"`
}

// ApiPrototype is an object type with a constructor, members and data fields.
type ApiPrototype struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	IsBuiltIn   bool          `json:"is_built_in,omitempty"`
	Methods     []ApiMethod   `json:"methods"`
	Variables   []ApiVariable `json:"variables,omitempty"`
}

// ApiMethod is one named member with one or more overloads.
type ApiMethod struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	IsStatic    bool           `json:"is_static,omitempty"`
	Kind        FunctionKind   `json:"function_type"`
	Signatures  []ApiSignature `json:"signatures"`
}

// ApiSignature is one overload. The last OptionalNum parameters are optional;
// ReturnTypes is a union.
type ApiSignature struct {
	ParamNames  []string `json:"param_names"`
	ParamTypes  []string `json:"param_types"`
	ReturnTypes []string `json:"return_types"`
	OptionalNum int      `json:"optional_num,omitempty"`
}

// ApiVariable is an instance field exposed as a get/set pair.
type ApiVariable struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Validate rejects signatures that cannot be rendered faithfully.
func (s ApiSignature) Validate() error {
	switch {
	case len(s.ParamNames) != len(s.ParamTypes):
		return fmt.Errorf("%w: %d parameter names but %d parameter types",
			ErrInvalidSignature, len(s.ParamNames), len(s.ParamTypes))
	case s.OptionalNum < 0:
		return fmt.Errorf("%w: negative optional count %d", ErrInvalidSignature, s.OptionalNum)
	case s.OptionalNum > len(s.ParamNames):
		return fmt.Errorf("%w: %d optional parameters but only %d parameters",
			ErrInvalidSignature, s.OptionalNum, len(s.ParamNames))
	case len(s.ReturnTypes) == 0:
		return fmt.Errorf("%w: no return types", ErrInvalidSignature)
	}
	return nil
}

// Validate checks every signature of the method.
func (m ApiMethod) Validate() error {
	for i, sig := range m.Signatures {
		if err := sig.Validate(); err != nil {
			return fmt.Errorf("method %s signature %d: %w", m.Name, i+1, err)
		}
	}
	return nil
}

func validateMethods(owner string, methods []ApiMethod) error {
	for _, m := range methods {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%s: %w", owner, err)
		}
	}
	return nil
}

// Validate checks every descriptor that will be rendered in a run.
func Validate(classes []ApiClass, prototypes []ApiPrototype) error {
	for _, c := range classes {
		if err := validateMethods(c.Name, c.Methods); err != nil {
			return err
		}
	}
	for _, p := range prototypes {
		if err := validateMethods(p.Name, p.Methods); err != nil {
			return err
		}
	}
	return nil
}

// Constructor returns the prototype's constructor, if it declares one.
func (p ApiPrototype) Constructor() (ApiMethod, bool) {
	for _, m := range p.Methods {
		if m.Kind == Constructor {
			return m, true
		}
	}
	return ApiMethod{}, false
}

// MethodsOfKind returns the methods of the given kind in declaration order.
func (p ApiPrototype) MethodsOfKind(kind FunctionKind) []ApiMethod {
	var out []ApiMethod
	for _, m := range p.Methods {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}
