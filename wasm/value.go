package wasm

// ValueType describes a parameter or result type mapped to a WebAssembly value type,
// using the same binary encodings as the specification.
//
// The tags valueTypeNullref, valueTypeAny and valueTypeNone never appear in a declared
// type: they exist for the validator's subtyping rules. valueTypeAny is the top type
// used by polymorphic operators such as drop, and valueTypeNone is the bottom type
// produced when popping from the operand stack in unreachable code.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-valtype
type ValueType = byte

const (
	// ValueTypeI32 is a 32-bit integer.
	ValueTypeI32 ValueType = 0x7f
	// ValueTypeI64 is a 64-bit integer.
	ValueTypeI64 ValueType = 0x7e
	// ValueTypeF32 is a 32-bit floating point number.
	ValueTypeF32 ValueType = 0x7d
	// ValueTypeF64 is a 64-bit floating point number.
	ValueTypeF64 ValueType = 0x7c
	// ValueTypeV128 is a 128-bit vector. Requires FeatureSIMD.
	ValueTypeV128 ValueType = 0x7b
	// ValueTypeFuncref is a reference to a function. Requires FeatureReferenceTypes when
	// declared as a value type; as a table element type it is valid under FeatureMVP.
	ValueTypeFuncref ValueType = 0x70
	// ValueTypeAnyref is an opaque host or function reference. Requires FeatureReferenceTypes.
	ValueTypeAnyref ValueType = 0x6f

	// valueTypeNullref is the type of a null reference constant. It is a subtype of both
	// ValueTypeFuncref and ValueTypeAnyref and is never admitted as a declared type.
	valueTypeNullref ValueType = 0x6e
	// valueTypeAny is the internal top type: every value type is a subtype of it.
	valueTypeAny ValueType = 0x01
	// valueTypeNone is the internal bottom type: it is a subtype of every value type.
	valueTypeNone ValueType = 0x00
)

// ValueTypeName returns the type name used in the WebAssembly text format, or "unknown"
// for an undefined ValueType.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeAnyref:
		return "anyref"
	case valueTypeNullref:
		return "nullref"
	case valueTypeAny:
		return "any"
	case valueTypeNone:
		return "none"
	}
	return "unknown"
}

// isNumericType is true for the numeric and vector types, which are the only operands
// the untyped select instruction accepts.
func isNumericType(t ValueType) bool {
	switch t {
	case ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64, ValueTypeV128:
		return true
	}
	return false
}

// isSubtype reports whether sub may be used where super is expected.
//
// The relation is reflexive, valueTypeNone is a subtype of everything, everything is a
// subtype of valueTypeAny, and the reference types form the chain
// nullref <: funcref <: anyref.
func isSubtype(sub, super ValueType) bool {
	if sub == super || sub == valueTypeNone || super == valueTypeAny {
		return true
	}
	switch sub {
	case valueTypeNullref:
		return super == ValueTypeFuncref || super == ValueTypeAnyref
	case ValueTypeFuncref:
		return super == ValueTypeAnyref
	}
	return false
}

// validateValueType fails unless t is a declarable value type whose required feature is
// enabled. The internal tags are never declarable.
func validateValueType(enabledFeatures Features, t ValueType) error {
	var required Features
	switch t {
	case ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64:
		required = FeatureMVP
	case ValueTypeV128:
		required = FeatureSIMD
	case ValueTypeFuncref, ValueTypeAnyref:
		required = FeatureReferenceTypes
	default:
		return validationErrorf("invalid value type (0x%x)", t)
	}
	if err := enabledFeatures.Require(required); err != nil {
		return validationErrorf("%s invalid as %v", ValueTypeName(t), err)
	}
	return nil
}

// validateValueTypes applies validateValueType to each type in the tuple.
func validateValueTypes(enabledFeatures Features, ts []ValueType) error {
	for _, t := range ts {
		if err := validateValueType(enabledFeatures, t); err != nil {
			return err
		}
	}
	return nil
}

// valueTypesEqual reports whether two type tuples are identical, element for element.
func valueTypesEqual(a, b []ValueType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// RefType is the element type of a table: one of RefTypeFuncref or RefTypeAnyref.
type RefType = byte

const (
	// RefTypeFuncref is a reference to a function. Valid under FeatureMVP.
	RefTypeFuncref RefType = ValueTypeFuncref
	// RefTypeAnyref is an opaque reference. Requires FeatureReferenceTypes.
	RefTypeAnyref RefType = ValueTypeAnyref
)

// RefTypeName returns the text-format name of a RefType, or "unknown".
func RefTypeName(t RefType) string {
	switch t {
	case RefTypeFuncref:
		return "funcref"
	case RefTypeAnyref:
		return "anyref"
	}
	return "unknown"
}

// asValueType widens a table element type to the value type read or written by
// table.get, table.set, table.grow and table.fill.
func asValueType(t RefType) ValueType {
	switch t {
	case RefTypeFuncref:
		return ValueTypeFuncref
	case RefTypeAnyref:
		return ValueTypeAnyref
	}
	panic("BUG: asValueType on an invalid reference type")
}

// validateRefType fails unless t is a valid table element type whose required feature is
// enabled. Unlike funcref the value type, funcref the element type is valid in the MVP:
// every MVP table is a funcref table.
func validateRefType(enabledFeatures Features, t RefType) error {
	var required Features
	switch t {
	case RefTypeFuncref:
		required = FeatureMVP
	case RefTypeAnyref:
		required = FeatureReferenceTypes
	default:
		return validationErrorf("invalid reference type (0x%x)", t)
	}
	if err := enabledFeatures.Require(required); err != nil {
		return validationErrorf("%s invalid as %v", RefTypeName(t), err)
	}
	return nil
}
