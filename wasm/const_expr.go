package wasm

// ConstantExpression is an initializer: the restricted constant expression used for a
// global's initial value and for the base offset of an active element or data segment.
//
// Opcode selects the form; the zero value (Opcode 0) is invalid and always fails
// validation.
type ConstantExpression struct {
	// Opcode is one of OpcodeI32Const, OpcodeI64Const, OpcodeF32Const, OpcodeF64Const,
	// OpcodeVecV128Const, OpcodeGlobalGet, OpcodeRefNull or OpcodeRefFunc.
	Opcode Opcode

	// ConstBits holds the raw bits of an i32, i64, f32 or f64 constant.
	ConstBits uint64

	// ConstV128 holds the bits of a v128.const.
	ConstV128 [16]byte

	// Index is the global index for global.get, or the function index for ref.func.
	Index Index
}

// validateConstantExpression checks that expr produces a subtype of expectedType.
// context names the surrounding declaration in diagnostics.
//
// global.get may only reference an imported, immutable global: definitions are not yet
// initialized when active segment offsets and global initializers are evaluated.
func (m *Module) validateConstantExpression(expr *ConstantExpression, expectedType ValueType, context string) error {
	if expr == nil {
		return validationErrorf("invalid initializer expression in %s", context)
	}

	var actualType ValueType
	switch expr.Opcode {
	case OpcodeI32Const:
		actualType = ValueTypeI32
	case OpcodeI64Const:
		actualType = ValueTypeI64
	case OpcodeF32Const:
		actualType = ValueTypeF32
	case OpcodeF64Const:
		actualType = ValueTypeF64
	case OpcodeVecV128Const:
		actualType = ValueTypeV128
	case OpcodeGlobalGet:
		globalType, err := m.validateGlobalIndex(expr.Index, false, true, true)
		if err != nil {
			return err
		}
		actualType = globalType.ValType
	case OpcodeRefNull:
		actualType = valueTypeNullref
	case OpcodeRefFunc:
		if _, err := m.validateFunctionIndex(expr.Index); err != nil {
			return err
		}
		actualType = ValueTypeFuncref
	default:
		return validationErrorf("invalid initializer expression in %s", context)
	}

	return validateType(expectedType, actualType, context)
}

// validateType fails unless actualType may be used where expectedType is expected.
func validateType(expectedType, actualType ValueType, context string) error {
	if !isSubtype(actualType, expectedType) {
		return validationErrorf("type mismatch: expected %s but got %s in %s",
			ValueTypeName(expectedType), ValueTypeName(actualType), context)
	}
	return nil
}

// validateGlobalIndex range-checks a global index and applies the given access
// constraints, returning the global's type.
func (m *Module) validateGlobalIndex(globalIndex Index, mustBeMutable, mustBeImmutable, mustBeImport bool) (*GlobalType, error) {
	_, globals, _, _, _ := m.allDeclarations()
	if globalIndex >= uint32(len(globals)) {
		return nil, invalidIndexError("global", globalIndex, uint32(len(globals)))
	}
	globalType := globals[globalIndex]
	if mustBeMutable && !globalType.Mutable {
		return nil, validationErrorf("attempting to mutate immutable global")
	}
	if mustBeImport && globalIndex >= m.importCount(ExternTypeGlobal) {
		return nil, validationErrorf("global variable initializer expression may only access imported globals")
	}
	if mustBeImmutable && globalType.Mutable {
		return nil, validationErrorf("global variable initializer expression may only access immutable globals")
	}
	return globalType, nil
}

// validateFunctionIndex range-checks a function index and returns its signature.
func (m *Module) validateFunctionIndex(functionIndex Index) (*FunctionType, error) {
	functions, _, _, _, _ := m.allDeclarations()
	if functionIndex >= uint32(len(functions)) {
		return nil, invalidIndexError("function", functionIndex, uint32(len(functions)))
	}
	return m.typeAt(functions[functionIndex])
}
