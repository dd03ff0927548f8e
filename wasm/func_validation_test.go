package wasm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func op(opcode Opcode) *Operator {
	return &Operator{Opcode: opcode}
}

func opIdx(opcode Opcode, index Index) *Operator {
	return &Operator{Opcode: opcode, Index: index}
}

func opBlock(opcode Opcode, result ValueType) *Operator {
	return &Operator{Opcode: opcode, Block: &BlockSignature{Form: BlockSignatureResult, Result: result}}
}

func opVoidBlock(opcode Opcode) *Operator {
	return &Operator{Opcode: opcode, Block: &BlockSignature{Form: BlockSignatureVoid}}
}

// validateBody validates a single-function module whose function has the given type.
func validateBody(enabledFeatures Features, functionType *FunctionType, body ...*Operator) error {
	m := &Module{
		TypeSection:     []*FunctionType{functionType},
		FunctionSection: []Index{0},
		CodeSection:     []*Code{{Body: body}},
	}
	return validateFunction(m, functionType, m.CodeSection[0], enabledFeatures, DefaultValidationPolicy)
}

func TestValidateFunction_constant(t *testing.T) {
	err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
		op(OpcodeI32Const), op(OpcodeEnd))
	require.NoError(t, err)
}

func TestValidateFunction_missingResult(t *testing.T) {
	err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
		op(OpcodeI32Const), op(OpcodeDrop), op(OpcodeEnd))
	require.EqualError(t, err, "type mismatch: expected i32 but stack was empty in end result operand")
}

func TestValidateFunction_blockResultFlowsToOuterStack(t *testing.T) {
	err := validateBody(Features20191205, &FunctionType{},
		opBlock(OpcodeBlock, ValueTypeI32), op(OpcodeI32Const), op(OpcodeEnd), op(OpcodeDrop), op(OpcodeEnd))
	require.NoError(t, err)
}

func TestValidateFunction_unreachable(t *testing.T) {
	t.Run("polymorphic stack supplies the result", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
			op(OpcodeUnreachable), op(OpcodeEnd))
		require.NoError(t, err)
	})
	t.Run("pushed operands are still concrete", func(t *testing.T) {
		// A constant pushed after unreachable sits above the polymorphic floor, so the
		// end of the function still sees an i64 where an i32 is required.
		err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
			op(OpcodeUnreachable), op(OpcodeI64Const), op(OpcodeEnd))
		require.EqualError(t, err, "type mismatch: expected i32 but got i64 in end result operand")
	})
	t.Run("underflow yields the bottom type", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{},
			op(OpcodeUnreachable), op(OpcodeI32Eqz), op(OpcodeDrop), op(OpcodeEnd))
		require.NoError(t, err)
	})
}

func TestValidateFunction_brWithEmptyStack(t *testing.T) {
	err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
		opBlock(OpcodeBlock, ValueTypeI32), &Operator{Opcode: OpcodeBr, Depth: 0}, op(OpcodeEnd), op(OpcodeEnd))
	require.EqualError(t, err, "type mismatch: expected i32 but stack was empty in br argument operand")
}

func TestValidateFunction_br(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
			opBlock(OpcodeBlock, ValueTypeI32), op(OpcodeI32Const), &Operator{Opcode: OpcodeBr, Depth: 0},
			op(OpcodeEnd), op(OpcodeEnd))
		require.NoError(t, err)
	})
	t.Run("invalid depth", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{},
			&Operator{Opcode: OpcodeBr, Depth: 5}, op(OpcodeEnd))
		require.EqualError(t, err, "invalid branch depth 5, must be less than 1")
	})
	t.Run("br_if keeps the arguments", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
			opBlock(OpcodeBlock, ValueTypeI32),
			op(OpcodeI32Const), op(OpcodeI32Const), &Operator{Opcode: OpcodeBrIf, Depth: 0},
			op(OpcodeEnd), op(OpcodeEnd))
		require.NoError(t, err)
	})
}

func TestValidateFunction_brTable(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{},
			opVoidBlock(OpcodeBlock), opVoidBlock(OpcodeBlock),
			op(OpcodeI32Const), &Operator{Opcode: OpcodeBrTable, Depth: 0, Depths: []uint32{1}},
			op(OpcodeEnd), op(OpcodeEnd), op(OpcodeEnd))
		require.NoError(t, err)
	})
	t.Run("arity mismatch", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{},
			opBlock(OpcodeBlock, ValueTypeI32),
			op(OpcodeI32Const), op(OpcodeI32Const), &Operator{Opcode: OpcodeBrTable, Depth: 0, Depths: []uint32{1}},
			op(OpcodeEnd), op(OpcodeDrop), op(OpcodeEnd))
		require.EqualError(t, err, "br_table targets must all take the same number of parameters")
	})
}

func TestValidateFunction_loopBranchConsumesParams(t *testing.T) {
	// A branch to a loop label consumes the loop's params, not its results.
	m := &Module{TypeSection: []*FunctionType{
		{},
		{Params: []ValueType{ValueTypeI32}, Results: []ValueType{ValueTypeI64}},
	}}
	functionType := m.TypeSection[0]
	code := &Code{Body: []*Operator{
		op(OpcodeI32Const),
		{Opcode: OpcodeLoop, Block: &BlockSignature{Form: BlockSignatureTypeIndex, TypeIndex: 1}},
		op(OpcodeI32Const), &Operator{Opcode: OpcodeBrIf, Depth: 0},
		op(OpcodeDrop), op(OpcodeI64Const),
		op(OpcodeEnd), op(OpcodeDrop), op(OpcodeEnd),
	}}
	err := validateFunction(m, functionType, code, Features20191205|FeatureMultiValue, DefaultValidationPolicy)
	require.NoError(t, err)
}

func TestValidateFunction_ifElse(t *testing.T) {
	t.Run("void if without else", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{},
			op(OpcodeI32Const), opVoidBlock(OpcodeIf), op(OpcodeEnd), op(OpcodeEnd))
		require.NoError(t, err)
	})
	t.Run("if with result requires else", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
			op(OpcodeI32Const), opBlock(OpcodeIf, ValueTypeI32), op(OpcodeI32Const), op(OpcodeEnd), op(OpcodeEnd))
		require.EqualError(t, err, "else-less if must have identity signature")
	})
	t.Run("if else", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
			op(OpcodeI32Const), opBlock(OpcodeIf, ValueTypeI32),
			op(OpcodeI32Const), op(OpcodeElse), op(OpcodeI32Const), op(OpcodeEnd), op(OpcodeEnd))
		require.NoError(t, err)
	})
	t.Run("else outside if", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{}, op(OpcodeElse), op(OpcodeEnd))
		require.EqualError(t, err, "else only allowed in if context")
	})
	t.Run("leftover operand at end of block", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{},
			opVoidBlock(OpcodeBlock), op(OpcodeI32Const), op(OpcodeEnd), op(OpcodeEnd))
		require.EqualError(t, err, "stack was not empty at end of control structure: i32")
	})
}

func TestValidateFunction_select(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
			op(OpcodeI32Const), op(OpcodeI32Const), op(OpcodeI32Const), op(OpcodeSelect), op(OpcodeEnd))
		require.NoError(t, err)
	})
	t.Run("mismatched operand types", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
			op(OpcodeI32Const), op(OpcodeI64Const), op(OpcodeI32Const), op(OpcodeSelect), op(OpcodeEnd))
		require.EqualError(t, err, "non-typed select operands must have the same numeric type")
	})
	t.Run("non-numeric operands", func(t *testing.T) {
		err := validateBody(FeaturesAll, &FunctionType{},
			op(OpcodeRefNull), op(OpcodeRefNull), op(OpcodeI32Const), op(OpcodeSelect), op(OpcodeDrop), op(OpcodeEnd))
		require.EqualError(t, err, "non-typed select operands must be numeric types")
	})
	t.Run("both operands bottom", func(t *testing.T) {
		// Both operands arrive from unreachable code, so the select produces the bottom
		// type, which satisfies the i32 result.
		err := validateBody(Features20191205, &FunctionType{Results: []ValueType{ValueTypeI32}},
			op(OpcodeUnreachable), op(OpcodeSelect), op(OpcodeEnd))
		require.NoError(t, err)
	})
	t.Run("typed select", func(t *testing.T) {
		err := validateBody(FeaturesAll, &FunctionType{},
			op(OpcodeRefNull), op(OpcodeRefNull), op(OpcodeI32Const),
			&Operator{Opcode: OpcodeTypedSelect, SelectTypes: []ValueType{ValueTypeFuncref}},
			op(OpcodeDrop), op(OpcodeEnd))
		require.NoError(t, err)
	})
	t.Run("typed select disabled", func(t *testing.T) {
		err := validateBody(Features20191205, &FunctionType{},
			&Operator{Opcode: OpcodeTypedSelect, SelectTypes: []ValueType{ValueTypeI32}}, op(OpcodeEnd))
		require.EqualError(t, err, "typed select invalid as feature reference-types is disabled")
	})
}

func TestValidateFunction_locals(t *testing.T) {
	functionType := &FunctionType{Params: []ValueType{ValueTypeI64}}
	m := &Module{TypeSection: []*FunctionType{functionType}, FunctionSection: []Index{0}}

	t.Run("params precede declared locals", func(t *testing.T) {
		code := &Code{LocalTypes: []ValueType{ValueTypeF32}, Body: []*Operator{
			opIdx(OpcodeLocalGet, 0), opIdx(OpcodeLocalSet, 0),
			opIdx(OpcodeLocalGet, 1), opIdx(OpcodeLocalTee, 1), op(OpcodeDrop),
			op(OpcodeEnd),
		}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.NoError(t, err)
	})
	t.Run("out of range", func(t *testing.T) {
		code := &Code{Body: []*Operator{opIdx(OpcodeLocalGet, 2), op(OpcodeDrop), op(OpcodeEnd)}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "invalid local index 2, must be less than 1")
	})
	t.Run("type mismatch", func(t *testing.T) {
		code := &Code{Body: []*Operator{opIdx(OpcodeLocalGet, 0), op(OpcodeI32Eqz), op(OpcodeDrop), op(OpcodeEnd)}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "type mismatch: expected i32 but got i64 in i32.eqz operand")
	})
}

func TestValidateFunction_globals(t *testing.T) {
	m := &Module{
		TypeSection:     []*FunctionType{{}},
		FunctionSection: []Index{0},
		GlobalSection: []*Global{
			{Type: &GlobalType{ValType: ValueTypeI32, Mutable: false}, Init: &ConstantExpression{Opcode: OpcodeI32Const}},
			{Type: &GlobalType{ValType: ValueTypeF64, Mutable: true}, Init: &ConstantExpression{Opcode: OpcodeF64Const}},
		},
	}
	functionType := m.TypeSection[0]

	t.Run("get and set", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			opIdx(OpcodeGlobalGet, 1), opIdx(OpcodeGlobalSet, 1),
			opIdx(OpcodeGlobalGet, 0), op(OpcodeDrop),
			op(OpcodeEnd),
		}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.NoError(t, err)
	})
	t.Run("set immutable", func(t *testing.T) {
		code := &Code{Body: []*Operator{op(OpcodeI32Const), opIdx(OpcodeGlobalSet, 0), op(OpcodeEnd)}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "attempting to mutate immutable global")
	})
}

func TestValidateFunction_calls(t *testing.T) {
	m := &Module{
		TypeSection: []*FunctionType{
			{},
			{Params: []ValueType{ValueTypeI32, ValueTypeI64}, Results: []ValueType{ValueTypeF32}},
		},
		FunctionSection: []Index{0, 1},
		TableSection:    []*TableType{{ElemType: RefTypeFuncref}},
	}
	m.CodeSection = []*Code{{}, {}}
	functionType := m.TypeSection[0]

	t.Run("call", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), op(OpcodeI64Const), opIdx(OpcodeCall, 1), op(OpcodeDrop), op(OpcodeEnd),
		}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.NoError(t, err)
	})
	t.Run("call argument mismatch", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI64Const), op(OpcodeI32Const), opIdx(OpcodeCall, 1), op(OpcodeDrop), op(OpcodeEnd),
		}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "type mismatch: expected i64 but got i32 in call arguments operand")
	})
	t.Run("call out of range", func(t *testing.T) {
		code := &Code{Body: []*Operator{opIdx(OpcodeCall, 9), op(OpcodeEnd)}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "invalid function index 9, must be less than 2")
	})
	t.Run("call_indirect", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), op(OpcodeI64Const), op(OpcodeI32Const),
			&Operator{Opcode: OpcodeCallIndirect, Index: 1, Index2: 0},
			op(OpcodeDrop), op(OpcodeEnd),
		}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.NoError(t, err)
	})
	t.Run("call_indirect requires funcref table", func(t *testing.T) {
		anyrefTable := &Module{
			TypeSection:     m.TypeSection,
			FunctionSection: m.FunctionSection,
			TableSection:    []*TableType{{ElemType: RefTypeAnyref}},
		}
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), &Operator{Opcode: OpcodeCallIndirect, Index: 0, Index2: 0}, op(OpcodeEnd),
		}}
		err := validateFunction(anyrefTable, functionType, code, FeaturesAll, DefaultValidationPolicy)
		require.EqualError(t, err, "call_indirect requires a table element type of funcref")
	})
}

func TestValidateFunction_memoryImmediates(t *testing.T) {
	withMemory := &Module{TypeSection: []*FunctionType{{}}, FunctionSection: []Index{0},
		MemorySection: []*MemoryType{{Min: 1}}}
	withoutMemory := &Module{TypeSection: []*FunctionType{{}}, FunctionSection: []Index{0}}
	sharedMemory := &Module{TypeSection: []*FunctionType{{}}, FunctionSection: []Index{0},
		MemorySection: []*MemoryType{{Min: 1, Max: &[]uint32{2}[0], Shared: true}}}
	functionType := &FunctionType{}

	t.Run("load", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), &Operator{Opcode: OpcodeI32Load, AlignLog2: 2}, op(OpcodeDrop), op(OpcodeEnd),
		}}
		err := validateFunction(withMemory, functionType, code, Features20191205, DefaultValidationPolicy)
		require.NoError(t, err)
	})
	t.Run("load without memory", func(t *testing.T) {
		code := &Code{Body: []*Operator{op(OpcodeI32Const), op(OpcodeI32Load), op(OpcodeDrop), op(OpcodeEnd)}}
		err := validateFunction(withoutMemory, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "load or store in module without default memory")
	})
	t.Run("alignment above natural", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), &Operator{Opcode: OpcodeI32Load, AlignLog2: 3}, op(OpcodeDrop), op(OpcodeEnd),
		}}
		err := validateFunction(withMemory, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "load or store alignment greater than natural alignment")
	})
	t.Run("atomic alignment must be natural", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), &Operator{Opcode: OpcodeI32AtomicLoad, AlignLog2: 1}, op(OpcodeDrop), op(OpcodeEnd),
		}}
		err := validateFunction(sharedMemory, functionType, code, Features20191205|FeatureAtomics, DefaultValidationPolicy)
		require.EqualError(t, err, "atomic memory operators must have natural alignment")
	})
	t.Run("atomic on shared memory", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), &Operator{Opcode: OpcodeI32AtomicLoad, AlignLog2: 2}, op(OpcodeDrop), op(OpcodeEnd),
		}}
		features := Features20191205 | FeatureAtomics | FeatureRequireSharedMemoryForAtomics
		require.NoError(t, validateFunction(sharedMemory, functionType, code, features, DefaultValidationPolicy))

		err := validateFunction(withMemory, functionType, code, features, DefaultValidationPolicy)
		require.EqualError(t, err, "atomic memory operators require a memory with the shared flag")

		// Without the strict flag an unshared memory is accepted.
		require.NoError(t, validateFunction(withMemory, functionType, code, Features20191205|FeatureAtomics, DefaultValidationPolicy))
	})
	t.Run("atomic disabled", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), &Operator{Opcode: OpcodeI32AtomicLoad, AlignLog2: 2}, op(OpcodeDrop), op(OpcodeEnd),
		}}
		err := validateFunction(sharedMemory, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "i32.atomic.load invalid as feature atomics is disabled")
	})
}

func TestValidateFunction_simd(t *testing.T) {
	m := &Module{TypeSection: []*FunctionType{{}}, FunctionSection: []Index{0},
		MemorySection: []*MemoryType{{Min: 1}}}
	functionType := &FunctionType{}

	t.Run("arithmetic", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeVecV128Const), op(OpcodeVecV128Const), op(OpcodeVecI8x16Add), op(OpcodeDrop), op(OpcodeEnd),
		}}
		err := validateFunction(m, functionType, code, Features20191205|FeatureSIMD, DefaultValidationPolicy)
		require.NoError(t, err)
	})
	t.Run("disabled", func(t *testing.T) {
		code := &Code{Body: []*Operator{op(OpcodeVecV128Const), op(OpcodeDrop), op(OpcodeEnd)}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "v128.const invalid as feature simd is disabled")
	})
	t.Run("lane out of range", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeVecV128Const), &Operator{Opcode: OpcodeVecI8x16ExtractLaneS, LaneIndex: 16},
			op(OpcodeDrop), op(OpcodeEnd),
		}}
		err := validateFunction(m, functionType, code, Features20191205|FeatureSIMD, DefaultValidationPolicy)
		require.EqualError(t, err, "invalid lane index 16 (16 lanes)")
	})
	t.Run("shuffle lane out of range", func(t *testing.T) {
		shuffle := &Operator{Opcode: OpcodeVecI8x16Shuffle}
		shuffle.Lanes[3] = 32
		code := &Code{Body: []*Operator{
			op(OpcodeVecV128Const), op(OpcodeVecV128Const), shuffle, op(OpcodeDrop), op(OpcodeEnd),
		}}
		err := validateFunction(m, functionType, code, Features20191205|FeatureSIMD, DefaultValidationPolicy)
		require.EqualError(t, err, "shuffle invalid lane index 32")
	})
}

func TestValidateFunction_exceptions(t *testing.T) {
	m := &Module{
		TypeSection:      []*FunctionType{{}},
		FunctionSection:  []Index{0},
		ExceptionSection: []*ExceptionType{{Params: []ValueType{ValueTypeI32}}},
	}
	functionType := &FunctionType{}
	features := Features20191205 | FeatureExceptionHandling

	t.Run("try catch", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			opVoidBlock(OpcodeTry), opIdx(OpcodeCatch, 0), op(OpcodeDrop), op(OpcodeEnd), op(OpcodeEnd),
		}}
		require.NoError(t, validateFunction(m, functionType, code, features, DefaultValidationPolicy))
	})
	t.Run("try catch_all rethrow", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			opVoidBlock(OpcodeTry), op(OpcodeCatchAll), &Operator{Opcode: OpcodeRethrow, Depth: 0},
			op(OpcodeEnd), op(OpcodeEnd),
		}}
		require.NoError(t, validateFunction(m, functionType, code, features, DefaultValidationPolicy))
	})
	t.Run("throw", func(t *testing.T) {
		code := &Code{Body: []*Operator{op(OpcodeI32Const), opIdx(OpcodeThrow, 0), op(OpcodeEnd)}}
		require.NoError(t, validateFunction(m, functionType, code, features, DefaultValidationPolicy))
	})
	t.Run("rethrow must target a catch", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			opVoidBlock(OpcodeTry), &Operator{Opcode: OpcodeRethrow, Depth: 0}, op(OpcodeCatchAll),
			op(OpcodeEnd), op(OpcodeEnd),
		}}
		err := validateFunction(m, functionType, code, features, DefaultValidationPolicy)
		require.EqualError(t, err, "rethrow must target a catch")
	})
	t.Run("end may not close a try", func(t *testing.T) {
		code := &Code{Body: []*Operator{opVoidBlock(OpcodeTry), op(OpcodeEnd), op(OpcodeEnd)}}
		err := validateFunction(m, functionType, code, features, DefaultValidationPolicy)
		require.EqualError(t, err, "end may not occur in try context")
	})
	t.Run("end closes a try under the permissive policy", func(t *testing.T) {
		code := &Code{Body: []*Operator{opVoidBlock(OpcodeTry), op(OpcodeEnd), op(OpcodeEnd)}}
		policy := ValidationPolicy{TryRequiresCatch: false}
		require.NoError(t, validateFunction(m, functionType, code, features, policy))
	})
	t.Run("catch outside try", func(t *testing.T) {
		code := &Code{Body: []*Operator{opVoidBlock(OpcodeBlock), op(OpcodeCatchAll), op(OpcodeEnd), op(OpcodeEnd)}}
		err := validateFunction(m, functionType, code, features, DefaultValidationPolicy)
		require.EqualError(t, err, "catch only allowed in try/catch context")
	})
	t.Run("disabled", func(t *testing.T) {
		code := &Code{Body: []*Operator{opVoidBlock(OpcodeTry), op(OpcodeCatchAll), op(OpcodeEnd), op(OpcodeEnd)}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "try invalid as feature exception-handling is disabled")
	})
}

func TestValidateFunction_tables(t *testing.T) {
	m := &Module{
		TypeSection:     []*FunctionType{{}},
		FunctionSection: []Index{0},
		TableSection: []*TableType{
			{ElemType: RefTypeFuncref},
			{ElemType: RefTypeAnyref},
		},
		ElementSection: []*ElementSegment{{Init: []*ElementInit{{Null: true}}}},
	}
	functionType := &FunctionType{}
	features := FeaturesAll

	t.Run("get and set", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), op(OpcodeI32Const), opIdx(OpcodeTableGet, 0), opIdx(OpcodeTableSet, 0),
			op(OpcodeEnd),
		}}
		require.NoError(t, validateFunction(m, functionType, code, features, DefaultValidationPolicy))
	})
	t.Run("grow size fill", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeRefNull), op(OpcodeI32Const), opIdx(OpcodeTableGrow, 0), op(OpcodeDrop),
			opIdx(OpcodeTableSize, 0), op(OpcodeDrop),
			op(OpcodeI32Const), op(OpcodeRefNull), op(OpcodeI32Const), opIdx(OpcodeTableFill, 0),
			op(OpcodeEnd),
		}}
		require.NoError(t, validateFunction(m, functionType, code, features, DefaultValidationPolicy))
	})
	t.Run("copy widens funcref into anyref", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), op(OpcodeI32Const), op(OpcodeI32Const),
			&Operator{Opcode: OpcodeTableCopy, Index: 1, Index2: 0},
			op(OpcodeEnd),
		}}
		require.NoError(t, validateFunction(m, functionType, code, features, DefaultValidationPolicy))
	})
	t.Run("copy cannot narrow anyref into funcref", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), op(OpcodeI32Const), op(OpcodeI32Const),
			&Operator{Opcode: OpcodeTableCopy, Index: 0, Index2: 1},
			op(OpcodeEnd),
		}}
		err := validateFunction(m, functionType, code, features, DefaultValidationPolicy)
		require.EqualError(t, err, "source table element type must be a subtype of the destination table element type")
	})
	t.Run("init and drop", func(t *testing.T) {
		code := &Code{Body: []*Operator{
			op(OpcodeI32Const), op(OpcodeI32Const), op(OpcodeI32Const),
			&Operator{Opcode: OpcodeTableInit, Index: 0, Index2: 0},
			opIdx(OpcodeElemDrop, 0),
			op(OpcodeEnd),
		}}
		require.NoError(t, validateFunction(m, functionType, code, features, DefaultValidationPolicy))
	})
	t.Run("ref.func", func(t *testing.T) {
		code := &Code{Body: []*Operator{opIdx(OpcodeRefFunc, 0), op(OpcodeDrop), op(OpcodeEnd)}}
		require.NoError(t, validateFunction(m, functionType, code, features, DefaultValidationPolicy))
	})
	t.Run("disabled", func(t *testing.T) {
		code := &Code{Body: []*Operator{opIdx(OpcodeTableSize, 0), op(OpcodeDrop), op(OpcodeEnd)}}
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "table.size invalid as feature reference-types is disabled")
	})
}

func TestValidateFunction_valueStackLimit(t *testing.T) {
	const max = 100
	const valuesNum = max + 1

	// Build a function which has max+1 const instructions, then drop them all so that
	// if the max were higher this body would be sound.
	var body []*Operator
	for i := 0; i < valuesNum; i++ {
		body = append(body, op(OpcodeI32Const))
	}
	for i := 0; i < valuesNum; i++ {
		body = append(body, op(OpcodeDrop))
	}
	body = append(body, op(OpcodeEnd))

	m := &Module{TypeSection: []*FunctionType{{}}, FunctionSection: []Index{0}, CodeSection: []*Code{{Body: body}}}

	t.Run("not exceed", func(t *testing.T) {
		err := validateFunction(m, m.TypeSection[0], m.CodeSection[0], Features20191205,
			ValidationPolicy{TryRequiresCatch: true, MaxStackValues: max + 1})
		require.NoError(t, err)
	})
	t.Run("exceed", func(t *testing.T) {
		err := validateFunction(m, m.TypeSection[0], m.CodeSection[0], Features20191205,
			ValidationPolicy{TryRequiresCatch: true, MaxStackValues: max})
		require.Error(t, err)
		expMsg := fmt.Sprintf("function may have %d stack values, which exceeds limit %d", valuesNum, max)
		require.Equal(t, expMsg, err.Error())
	})
}

func TestValidateFunction_signExtensionOps(t *testing.T) {
	tests := []struct {
		input                Opcode
		expectedErrOnDisable string
	}{
		{
			input:                OpcodeI32Extend8S,
			expectedErrOnDisable: "i32.extend8_s invalid as feature sign-extension-ops is disabled",
		},
		{
			input:                OpcodeI32Extend16S,
			expectedErrOnDisable: "i32.extend16_s invalid as feature sign-extension-ops is disabled",
		},
		{
			input:                OpcodeI64Extend8S,
			expectedErrOnDisable: "i64.extend8_s invalid as feature sign-extension-ops is disabled",
		},
		{
			input:                OpcodeI64Extend16S,
			expectedErrOnDisable: "i64.extend16_s invalid as feature sign-extension-ops is disabled",
		},
		{
			input:                OpcodeI64Extend32S,
			expectedErrOnDisable: "i64.extend32_s invalid as feature sign-extension-ops is disabled",
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(InstructionName(tc.input), func(t *testing.T) {
			t.Run("disabled", func(t *testing.T) {
				err := validateBody(Features20191205, &FunctionType{}, op(tc.input), op(OpcodeEnd))
				require.EqualError(t, err, tc.expectedErrOnDisable)
			})
			t.Run("enabled", func(t *testing.T) {
				is32bit := tc.input == OpcodeI32Extend8S || tc.input == OpcodeI32Extend16S
				var body []*Operator
				if is32bit {
					body = append(body, op(OpcodeI32Const))
				} else {
					body = append(body, op(OpcodeI64Const))
				}
				body = append(body, op(tc.input), op(OpcodeDrop), op(OpcodeEnd))
				err := validateBody(Features20191205|FeatureSignExtensionOps, &FunctionType{}, body...)
				require.NoError(t, err)
			})
		})
	}
}

func TestValidateFunction_featureMonotonicity(t *testing.T) {
	// Anything accepted under a feature set stays accepted when more proposals are
	// enabled.
	body := []*Operator{
		opBlock(OpcodeBlock, ValueTypeI32), op(OpcodeI32Const), op(OpcodeEnd), op(OpcodeDrop), op(OpcodeEnd),
	}
	require.NoError(t, validateBody(Features20191205, &FunctionType{}, body...))
	require.NoError(t, validateBody(FeaturesAll, &FunctionType{}, body...))
}

func TestValidateFunction_unknownInstruction(t *testing.T) {
	err := validateBody(Features20191205, &FunctionType{}, op(0xff), op(OpcodeEnd))
	require.EqualError(t, err, "unknown instruction (0xff)")
}

func TestValidateFunction_multiValue(t *testing.T) {
	m := &Module{TypeSection: []*FunctionType{
		{},
		{Results: []ValueType{ValueTypeI32, ValueTypeI64}},
	}}
	functionType := m.TypeSection[0]
	code := &Code{Body: []*Operator{
		&Operator{Opcode: OpcodeBlock, Block: &BlockSignature{Form: BlockSignatureTypeIndex, TypeIndex: 1}},
		op(OpcodeI32Const), op(OpcodeI64Const),
		op(OpcodeEnd), op(OpcodeDrop), op(OpcodeDrop), op(OpcodeEnd),
	}}

	t.Run("enabled", func(t *testing.T) {
		err := validateFunction(m, functionType, code, Features20191205|FeatureMultiValue, DefaultValidationPolicy)
		require.NoError(t, err)
	})
	t.Run("disabled", func(t *testing.T) {
		err := validateFunction(m, functionType, code, Features20191205, DefaultValidationPolicy)
		require.EqualError(t, err, "multiple block results invalid as feature multi-value is disabled")
	})
}
