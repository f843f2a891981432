package docs

// GlobalFunctionsSection is the section id whose page lists the global
// functions.
const GlobalFunctionsSection = "GLOBALFUNCTIONS"

// GlobalFunctions returns the functions callable without a receiver.
func GlobalFunctions() []ApiMethod {
	return []ApiMethod{
		staticMethod("eval", "Executes the parameter as Kolben script code and returns the result.", Standard,
			sig(ret("any"), 0, "code", "String")),
		staticMethod("sizeof", "Gets the length/size of a variable's content.", Standard,
			sig(ret("Int32"), 0, "variable", "any")),
		staticMethod("typeof", "Gets the type name of a variable's content.", Standard,
			sig(ret("String"), 0, "variable", "any")),
		staticMethod("nameof", "Gets the name of an object.", Standard,
			sig(ret("String"), 0, "variable", "any")),
		staticMethod("toComplex", "Converts a primitive value (string, bool, number) into a prototype instance of that type.", Standard,
			sig(ret("any"), 0, "primitive", "any")),
		staticMethod("toPrimitive", "Converts a prototype instance (string, bool, number) into its primitive value.", Standard,
			sig(ret("String", "Boolean", "Int32"), 0, "primitive", "any")),
		staticMethod("isNaN", "Returns whether the input is NaN (not a number).", Standard,
			sig(ret("Boolean"), 0, "value", "any")),
		staticMethod("isFinite", "Returns whether the input is a finite number.", Standard,
			sig(ret("Boolean"), 0, "value", "any")),
		staticMethod("sync", "Waits for async tasks to complete.", Standard,
			sig(ret(NoValueType), 0),
			sig(ret(NoValueType), 0, "taskIds", "String[]")),
	}
}
