package docs

// sig builds a signature from raw runtime type names. params alternate
// parameter name and raw type.
func sig(returns []string, optional int, params ...string) ApiSignature {
	s := ApiSignature{
		ParamNames:  make([]string, 0, len(params)/2),
		ParamTypes:  make([]string, 0, len(params)/2),
		ReturnTypes: ResolveDisplayNames(returns),
		OptionalNum: optional,
	}
	for i := 0; i+1 < len(params); i += 2 {
		s.ParamNames = append(s.ParamNames, params[i])
		s.ParamTypes = append(s.ParamTypes, ResolveDisplayName(params[i+1], 0))
	}
	return s
}

func ret(raw ...string) []string { return raw }

func method(name, description string, kind FunctionKind, sigs ...ApiSignature) ApiMethod {
	return ApiMethod{Name: name, Description: description, Kind: kind, Signatures: sigs}
}

func staticMethod(name, description string, kind FunctionKind, sigs ...ApiSignature) ApiMethod {
	m := method(name, description, kind, sigs...)
	m.IsStatic = true
	return m
}

// BuiltInPrototypes returns the engine-provided prototypes. They are not
// reflected from the runtime and are appended to the extracted prototypes
// before rendering.
func BuiltInPrototypes() []ApiPrototype {
	return []ApiPrototype{
		arrayPrototype(),
		primitivePrototype("Boolean", "Prototype for the primitive bool type.", "Boolean"),
		primitivePrototype("Number", "Prototype for the primitive number type.", "Double"),
		objectPrototype(),
		stringPrototype(),
	}
}

func primitivePrototype(name, description, raw string) ApiPrototype {
	return ApiPrototype{
		Name:        name,
		Description: description,
		IsBuiltIn:   true,
		Methods: []ApiMethod{
			method("constructor", "", Constructor, sig(ret(NoValueType), 0, "value", raw)),
		},
	}
}

func arrayPrototype() ApiPrototype {
	noMatch := ` or <span class="arg-type">` + LinkType("undefined") + `</span> for no match.`
	return ApiPrototype{
		Name:        "Array",
		Description: "Prototype for the primitve array[] type.",
		IsBuiltIn:   true,
		Methods: []ApiMethod{
			method("constructor", "Takes any number of arguments, types can be mixed.", Constructor,
				sig(ret(NoValueType), 1, "...args", "any[]")),
			method("IndexerGet", "Returns the item in the array at index position.", IndexerGet,
				sig(ret("any"), 0, "index", "Int32")),
			method("IndexerSet", "Overwrites the item in the array at index position.", IndexerSet,
				sig(ret(NoValueType), 0, "index", "Int32")),
			method("length", "Gets the amount of items in the array.", Getter,
				sig(ret("Int32"), 0)),
			method("includes", "Determines whether the array includes an item.<br />"+
				"Comparer example: </i><code>a.includes(item, (a, b) => { a.id == b.id; });</code><i>", Standard,
				sig(ret("Boolean"), 0, "item", "any"),
				sig(ret("Boolean"), 0, "item", "any", "comparer", "function")),
			method("any", "If the array contains any items matching the search.", Standard,
				sig(ret("Boolean"), 0),
				sig(ret("Boolean"), 0, "comparer", "function")),
			method("where", "Filters the array with the given search.", Standard,
				sig(ret("any[]"), 0, "filter", "function")),
			method("first", "Returns the first item in the array that matches the search"+noMatch, Standard,
				sig(ret("any"), 0),
				sig(ret("any"), 0, "comparer", "function")),
			method("last", "Returns the last item in the array that matches the search"+noMatch, Standard,
				sig(ret("any"), 0),
				sig(ret("any"), 0, "comparer", "function")),
			method("select", "Transforms all elements of the array with a transformation function.", Standard,
				sig(ret("any[]"), 0, "transformer", "function")),
			method("single", "Finds a single item within the array and returns it.", Standard,
				sig(ret("any"), 0),
				sig(ret("any"), 0, "comparer", "function")),
			method("count", "Returns the amount of items in the array that match the search.", Standard,
				sig(ret("Int32"), 0),
				sig(ret("Int32"), 0, "comparer", "function")),
			method("all", "Returns whether all items in the array conform to a constraint.", Standard,
				sig(ret("Boolean"), 0, "constraint", "function")),
			method("push", "Adds items to the end of the array.", Standard,
				sig(ret(NoValueType), 0, "...items", "any[]")),
			method("pop", "Removes the last item from the array and returns it.", Standard,
				sig(ret("any"), 0)),
		},
	}
}

func objectPrototype() ApiPrototype {
	return ApiPrototype{
		Name:        "Object",
		Description: "The base prototype for all prototypes. Methods from this prototype are available to all prototypes.",
		IsBuiltIn:   true,
		Methods: []ApiMethod{
			staticMethod("create", `Creates an instance of a prototype (either by name or reference to the prototype), "args" are the constructor arguments for the prototype.`, Standard,
				sig(ret("any"), 0, "prototypeName", "String", "...args", "any[]"),
				sig(ret("any"), 0, "prototype", "Object", "...args", "any[]")),
			staticMethod("addMember", `Adds a member to a prototype and all new objects created from that prototype. Values for "signatureConfig" are "readOnly", "static", "indexerGet" and "indexerSet".`, Standard,
				sig(ret(NoValueType), 2, "memberName", "String", "defaultValue", "any", "signatureConfig", "String[]")),
		},
	}
}

func stringPrototype() ApiPrototype {
	trimOverloads := func() []ApiSignature {
		return []ApiSignature{
			sig(ret("String"), 0),
			sig(ret("String"), 0, "trimChar", "String"),
			sig(ret("String"), 0, "trimChars", "String[]"),
		}
	}
	return ApiPrototype{
		Name:        "String",
		Description: "Prototype for the primitive string type.",
		IsBuiltIn:   true,
		Methods: []ApiMethod{
			method("constructor", "", Constructor, sig(ret(NoValueType), 0, "value", "String")),
			method("length", "Gets the amount of characters in the string.", Getter, sig(ret("Int32"), 0)),
			staticMethod("empty", "Returns an empty string.", Getter, sig(ret("String"), 0)),
			method("charAt", "Returns a character within the string.", Standard,
				sig(ret("String"), 0, "index", "Int32")),
			method("concat", "Concatenates multiple strings to this string.", Standard,
				sig(ret("String"), 0, "...strings", "String[]")),
			method("includes", "Returns whether the string contains another string.", Standard,
				sig(ret("Boolean"), 0, "needle", "String")),
			method("endsWith", "Returns whether the string ends with another string.", Standard,
				sig(ret("Boolean"), 0, "needle", "String")),
			method("startsWith", "Returns whether the string starts with another string.", Standard,
				sig(ret("Boolean"), 0, "needle", "String")),
			method("indexOf", "Returns the index of the first occurrence of a string within this string.", Standard,
				sig(ret("Int32"), 0, "needle", "String")),
			method("lastIndexOf", "Returns the index of the last occurrence of a string within this string.", Standard,
				sig(ret("Int32"), 0, "needle", "String")),
			method("padEnd", "Pads the end of the string until the string reaches a certain length.", Standard,
				sig(ret("String"), 0, "targetLength", "Int32"),
				sig(ret("String"), 0, "targetLength", "Int32", "padStr", "String")),
			method("padStart", "Pads the start of the string until the string reaches a certain length.", Standard,
				sig(ret("String"), 0, "targetLength", "Int32"),
				sig(ret("String"), 0, "targetLength", "Int32", "padStr", "String")),
			method("repeat", "Repeats the string a number of times.", Standard,
				sig(ret("String"), 0, "amount", "Int32")),
			method("replace", "Replaces parts within the string with another string.", Standard,
				sig(ret("String"), 0, "replace", "String", "with", "String")),
			method("slice", "Returns a slice of the string.", Standard,
				sig(ret("String"), 0, "startIndex", "Int32"),
				sig(ret("String"), 0, "startIndex", "Int32", "length", "Int32")),
			method("split", "Splits the string at a delimiter.", Standard,
				sig(ret("String[]"), 1, "delimiters", "String[]", "limit", "Int32"),
				sig(ret("String[]"), 1, "delimiter", "String", "limit", "Int32")),
			method("toLower", "Converts all alphabetic characters in the string to their lower case counterparts.", Standard,
				sig(ret("String"), 0)),
			method("toUpper", "Converts all alphabetic characters in the string to their upper case counterparts.", Standard,
				sig(ret("String"), 0)),
			method("trim", "Trims characters from the start and end of the string.", Standard, trimOverloads()...),
			method("trimStart", "Trims characters from the start of the string.", Standard, trimOverloads()...),
			method("trimEnd", "Trims characters from the end of the string.", Standard, trimOverloads()...),
			method("remove", "Removes a set of characters from the string.", Standard,
				sig(ret("String"), 1, "startIndex", "Int32", "length", "Int32")),
		},
	}
}
