// Package contract is the single source of truth for everything that
// crosses the engine boundary: record shapes, closed enums, error
// categories and function signatures, annotated with optionality and units.
// Generators and tests consume it; nothing here runs at call time.
//
// Compatibility rule: adding a new optional field or a new function is a
// compatible change. Reordering, removing or retyping anything listed here
// breaks every adapter built against it and requires a contract version
// bump.
package contract

import "fmt"

// ContractVersion is bumped on any breaking change to the definition.
const ContractVersion = 1

// Kind is the closed set of primitive shapes a boundary value can have.
type Kind int

const (
	Invalid Kind = iota
	Bool
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float64
	String
	Bytes
	RecordRef // named record, Ref holds the name
	EnumRef   // named enum, Ref holds the name
	List      // homogeneous list, Elem holds the element type
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case UInt8:
		return "uint8"
	case UInt16:
		return "uint16"
	case UInt32:
		return "uint32"
	case UInt64:
		return "uint64"
	case Float64:
		return "float64"
	case String:
		return "string"
	case Bytes:
		return "bytes"
	case RecordRef:
		return "record"
	case EnumRef:
		return "enum"
	case List:
		return "list"
	default:
		return "invalid"
	}
}

// Unit annotates what a numeric field measures. Monetary fields must be
// integers; Validate enforces that.
type Unit int

const (
	UnitNone Unit = iota
	// UnitSats marks satoshi amounts. Integer kinds only.
	UnitSats
	// UnitRatio marks percentages, rates and durations. Float64 only.
	UnitRatio
)

// Type describes one boundary value shape.
type Type struct {
	Kind Kind
	Ref  string // record or enum name for RecordRef/EnumRef
	Elem *Type  // element type for List
}

func record(name string) Type { return Type{Kind: RecordRef, Ref: name} }
func enum(name string) Type   { return Type{Kind: EnumRef, Ref: name} }
func list(elem Type) Type     { return Type{Kind: List, Elem: &elem} }

// Field is one named slot in a record or parameter list. Optional fields
// are nullable on the wire; absence is distinct from the zero value.
type Field struct {
	Name     string
	Type     Type
	Optional bool
	Unit     Unit
}

// Record is a named aggregate that crosses the boundary by deep copy.
type Record struct {
	Name   string
	Fields []Field
}

// Enum is a closed tagged set. Decoders must reject unlisted variants.
type Enum struct {
	Name     string
	Variants []string
}

// Function is one boundary operation. Blocking functions may take minutes
// and are not cancellable; NeverFails functions have no error path at all.
type Function struct {
	Name           string
	Params         []Field
	Result         *Type
	OptionalResult bool // nil result is a defined non-error outcome
	NeverFails     bool
	Blocking       bool
}

// Definition is the full boundary contract.
type Definition struct {
	Records         []Record
	Enums           []Enum
	Functions       []Function
	ErrorCategories []string
}

// Validate checks the definition for internal consistency. A malformed
// contract must fail here, at generation time, never at call time.
func Validate(d *Definition) error {
	records := make(map[string]Record, len(d.Records))
	for _, r := range d.Records {
		if r.Name == "" {
			return fmt.Errorf("record with empty name")
		}
		if _, dup := records[r.Name]; dup {
			return fmt.Errorf("duplicate record %q", r.Name)
		}
		records[r.Name] = r
	}

	enums := make(map[string]Enum, len(d.Enums))
	for _, e := range d.Enums {
		if e.Name == "" {
			return fmt.Errorf("enum with empty name")
		}
		if _, dup := enums[e.Name]; dup {
			return fmt.Errorf("duplicate enum %q", e.Name)
		}
		if _, clash := records[e.Name]; clash {
			return fmt.Errorf("enum %q clashes with a record name", e.Name)
		}
		if len(e.Variants) == 0 {
			return fmt.Errorf("enum %q has no variants", e.Name)
		}
		seen := make(map[string]struct{}, len(e.Variants))
		for _, v := range e.Variants {
			if v == "" {
				return fmt.Errorf("enum %q has an empty variant", e.Name)
			}
			if _, dup := seen[v]; dup {
				return fmt.Errorf("enum %q has duplicate variant %q", e.Name, v)
			}
			seen[v] = struct{}{}
		}
		enums[e.Name] = e
	}

	for _, r := range d.Records {
		names := make(map[string]struct{}, len(r.Fields))
		for _, f := range r.Fields {
			if f.Name == "" {
				return fmt.Errorf("record %q has a field with empty name", r.Name)
			}
			if _, dup := names[f.Name]; dup {
				return fmt.Errorf("record %q has duplicate field %q", r.Name, f.Name)
			}
			names[f.Name] = struct{}{}
			if err := validateField(r.Name, f, records, enums); err != nil {
				return err
			}
		}
	}

	funcs := make(map[string]struct{}, len(d.Functions))
	for _, fn := range d.Functions {
		if fn.Name == "" {
			return fmt.Errorf("function with empty name")
		}
		if _, dup := funcs[fn.Name]; dup {
			return fmt.Errorf("duplicate function %q", fn.Name)
		}
		funcs[fn.Name] = struct{}{}
		params := make(map[string]struct{}, len(fn.Params))
		for _, p := range fn.Params {
			if _, dup := params[p.Name]; dup {
				return fmt.Errorf("function %q has duplicate parameter %q", fn.Name, p.Name)
			}
			params[p.Name] = struct{}{}
			if err := validateField(fn.Name, p, records, enums); err != nil {
				return err
			}
		}
		if fn.Result != nil {
			if err := validateType(fn.Name+" result", *fn.Result, records, enums); err != nil {
				return err
			}
		}
		if fn.OptionalResult && fn.Result == nil {
			return fmt.Errorf("function %q declares an optional result but no result type", fn.Name)
		}
		if fn.NeverFails && fn.Blocking {
			return fmt.Errorf("function %q cannot be both blocking and infallible", fn.Name)
		}
	}

	if len(d.ErrorCategories) == 0 {
		return fmt.Errorf("error category set is empty")
	}
	cats := make(map[string]struct{}, len(d.ErrorCategories))
	for _, c := range d.ErrorCategories {
		if c == "" {
			return fmt.Errorf("empty error category")
		}
		if _, dup := cats[c]; dup {
			return fmt.Errorf("duplicate error category %q", c)
		}
		cats[c] = struct{}{}
	}

	return nil
}

func validateField(owner string, f Field, records map[string]Record, enums map[string]Enum) error {
	if err := validateType(fmt.Sprintf("%s.%s", owner, f.Name), f.Type, records, enums); err != nil {
		return err
	}
	switch f.Unit {
	case UnitNone:
	case UnitSats:
		if k := baseKind(f.Type); k != Int64 && k != UInt64 {
			return fmt.Errorf("%s.%s: satoshi amounts must be 64-bit integers, got %s",
				owner, f.Name, k)
		}
	case UnitRatio:
		if k := baseKind(f.Type); k != Float64 {
			return fmt.Errorf("%s.%s: ratio fields must be float64, got %s", owner, f.Name, k)
		}
	default:
		return fmt.Errorf("%s.%s: unknown unit %d", owner, f.Name, int(f.Unit))
	}
	return nil
}

// baseKind unwraps lists to the element kind so a list of sats amounts
// carries the same unit constraint as a scalar one.
func baseKind(t Type) Kind {
	for t.Kind == List && t.Elem != nil {
		t = *t.Elem
	}
	return t.Kind
}

func validateType(where string, t Type, records map[string]Record, enums map[string]Enum) error {
	switch t.Kind {
	case Bool, Int32, Int64, UInt8, UInt16, UInt32, UInt64, Float64, String, Bytes:
		return nil
	case RecordRef:
		if _, ok := records[t.Ref]; !ok {
			return fmt.Errorf("%s: unknown record %q", where, t.Ref)
		}
		return nil
	case EnumRef:
		if _, ok := enums[t.Ref]; !ok {
			return fmt.Errorf("%s: unknown enum %q", where, t.Ref)
		}
		return nil
	case List:
		if t.Elem == nil {
			return fmt.Errorf("%s: list without element type", where)
		}
		return validateType(where, *t.Elem, records, enums)
	default:
		return fmt.Errorf("%s: invalid type kind %d", where, int(t.Kind))
	}
}
