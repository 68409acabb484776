package asm

import "strings"

// builtins are the function and constant names the assembler provides;
// operand identifiers matching one of these are never flagged undefined.
var builtins = map[string]bool{
	"abs": true, "acos": true, "asin": true, "atan": true, "atan2": true,
	"cbrt": true, "ceil": true, "cos": true, "cosh": true, "deg": true,
	"exp": true, "floor": true, "format": true, "frac": true, "hypot": true,
	"len": true, "log": true, "log10": true, "pow": true, "rad": true,
	"random": true, "range": true, "repr": true, "round": true, "sign": true,
	"sin": true, "sinh": true, "size": true, "sort": true, "sqrt": true,
	"str": true, "tan": true, "tanh": true, "trunc": true,
	"true": true, "false": true, "pi": true,
	// register names used in register lists
	"a": true, "x": true, "y": true, "z": true, "b": true, "k": true,
}

// IsBuiltin reports whether the name is a built-in function, constant or
// register name.
func IsBuiltin(name string) bool {
	return builtins[strings.ToLower(name)]
}
