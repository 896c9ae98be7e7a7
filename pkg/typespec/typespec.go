// Package typespec parses human-friendly column type specifications
// ("numeric(18,5)", "varchar(100)") into canonical type descriptors.
//
// This package contains no SQL knowledge; dialect-specific rendering of a
// descriptor lives in pkg/dialect. Parsing is a pure function.
package typespec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies a column type descriptor.
type Kind string

const (
	Integer  Kind = "integer"
	String   Kind = "string"
	Text     Kind = "text"
	Numeric  Kind = "numeric"
	Float    Kind = "float"
	Boolean  Kind = "boolean"
	Date     Kind = "date"
	DateTime Kind = "datetime"
	Time     Kind = "time"
)

// aliases maps every accepted spelling (lowercase) to its kind.
// Note "text" is its own kind, not a String alias.
var aliases = map[string]Kind{
	"int":     Integer,
	"integer": Integer,
	"bigint":  Integer,

	"str":     String,
	"string":  String,
	"varchar": String,
	"char":    String,

	"text": Text,

	"numeric": Numeric,
	"decimal": Numeric,
	"number":  Numeric,

	"float":  Float,
	"real":   Float,
	"double": Float,

	"bool":    Boolean,
	"boolean": Boolean,

	"date":      Date,
	"datetime":  DateTime,
	"timestamp": DateTime,
	"time":      Time,
}

// Type is the canonical type descriptor a spec string resolves to.
// Zero values of Length/Precision/Scale mean "not set"; HasLength and
// HasPrecision/HasScale disambiguate an explicit zero (which the grammar
// permits) from absence.
type Type struct {
	Kind Kind

	Length    int
	HasLength bool

	Precision    int
	HasPrecision bool
	Scale        int
	HasScale     bool

	// Args carries integer parameters supplied to kinds that define no
	// named parameters. The original behavior is preserved: they are
	// coerced and passed through positionally rather than rejected.
	Args []int
}

// specRe matches NAME ( ARGS ) with optional whitespace; the non-greedy
// group keeps trailing whitespace inside the parentheses out of ARGS.
var specRe = regexp.MustCompile(`^(\w+)\s*\(\s*(.*?)\s*\)$`)

// Parse parses a type specification string into a canonical descriptor.
// It fails with *UnknownTypeError when the base name is not in the alias
// table and with *MalformedParametersError when the argument list does not
// satisfy the arity rule for the kind.
func Parse(spec string) (Type, error) {
	trimmed := strings.TrimSpace(spec)

	if m := specRe.FindStringSubmatch(trimmed); m != nil {
		return parseParameterized(m[1], m[2])
	}
	return parseSimple(trimmed)
}

// Normalize returns v unchanged when it already is a canonical descriptor
// and parses it when it is a string. Idempotent on non-string input.
func Normalize(v any) (Type, error) {
	switch t := v.(type) {
	case Type:
		return t, nil
	case *Type:
		return *t, nil
	case string:
		return Parse(t)
	default:
		return Type{}, &UnknownTypeError{Name: fmt.Sprintf("%v", v)}
	}
}

// IsKnown reports whether name (case-insensitively) is an accepted type
// spelling, either an alias or a legacy canonical name.
func IsKnown(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if _, ok := aliases[lower]; ok {
		return true
	}
	_, ok := legacyNames[name]
	return ok
}

// legacyNames is the fixed canonical spelling set accepted before the
// alias grammar existed; matched case-sensitively like the original.
var legacyNames = map[string]struct{}{
	"Integer": {}, "String": {}, "Text": {}, "Float": {}, "Numeric": {},
	"Boolean": {}, "DateTime": {}, "Date": {}, "Time": {},
}

func parseSimple(name string) (Type, error) {
	kind, ok := aliases[strings.ToLower(name)]
	if !ok {
		return Type{}, &UnknownTypeError{Name: name}
	}
	return Type{Kind: kind}, nil
}

func parseParameterized(name, argsStr string) (Type, error) {
	kind, ok := aliases[strings.ToLower(name)]
	if !ok {
		return Type{}, &UnknownTypeError{Name: name}
	}

	if argsStr == "" {
		return Type{Kind: kind}, nil
	}

	parts := strings.Split(argsStr, ",")
	args := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Type{}, &MalformedParametersError{
				Name:   name,
				Params: argsStr,
				Reason: "parameters must be integers",
			}
		}
		args = append(args, n)
	}

	switch kind {
	case String, Text:
		if len(args) != 1 {
			return Type{}, &MalformedParametersError{
				Name:   name,
				Params: argsStr,
				Reason: "string types expect 1 parameter, got " + strconv.Itoa(len(args)),
			}
		}
		return Type{Kind: kind, Length: args[0], HasLength: true}, nil

	case Numeric:
		switch len(args) {
		case 1:
			return Type{Kind: kind, Precision: args[0], HasPrecision: true}, nil
		case 2:
			return Type{
				Kind:      kind,
				Precision: args[0], HasPrecision: true,
				Scale: args[1], HasScale: true,
			}, nil
		default:
			return Type{}, &MalformedParametersError{
				Name:   name,
				Params: argsStr,
				Reason: "numeric types expect 1-2 parameters, got " + strconv.Itoa(len(args)),
			}
		}

	default:
		// Zero-arity kinds tolerate integer parameters and carry them
		// positionally.
		return Type{Kind: kind, Args: args}, nil
	}
}

// String renders the descriptor back in spec syntax, e.g. "numeric(18,5)".
func (t Type) String() string {
	var b strings.Builder
	b.WriteString(string(t.Kind))
	switch {
	case t.HasLength:
		b.WriteString("(" + strconv.Itoa(t.Length) + ")")
	case t.HasPrecision && t.HasScale:
		b.WriteString("(" + strconv.Itoa(t.Precision) + "," + strconv.Itoa(t.Scale) + ")")
	case t.HasPrecision:
		b.WriteString("(" + strconv.Itoa(t.Precision) + ")")
	case len(t.Args) > 0:
		strs := make([]string, len(t.Args))
		for i, a := range t.Args {
			strs[i] = strconv.Itoa(a)
		}
		b.WriteString("(" + strings.Join(strs, ",") + ")")
	}
	return b.String()
}
