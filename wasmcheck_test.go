package wasmcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmcheck/wasmcheck/wasm"
)

// addModule exports a function adding its two i32 parameters.
func addModule() *wasm.Module {
	return &wasm.Module{
		TypeSection: []*wasm.FunctionType{
			{Params: []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI32}, Results: []wasm.ValueType{wasm.ValueTypeI32}},
		},
		FunctionSection: []wasm.Index{0},
		ExportSection:   []*wasm.Export{{Type: wasm.ExternTypeFunc, Name: "add", Index: 0}},
		CodeSection: []*wasm.Code{
			{Body: []*wasm.Operator{
				{Opcode: wasm.OpcodeLocalGet, Index: 0},
				{Opcode: wasm.OpcodeLocalGet, Index: 1},
				{Opcode: wasm.OpcodeI32Add},
				{Opcode: wasm.OpcodeEnd},
			}},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("nil config defaults to 20191205", func(t *testing.T) {
		require.NoError(t, Validate(addModule(), nil))
	})
	t.Run("validation errors unwrap", func(t *testing.T) {
		m := addModule()
		m.ExportSection = append(m.ExportSection, &wasm.Export{Type: wasm.ExternTypeFunc, Name: "add", Index: 0})
		err := Validate(m, NewConfig())
		require.EqualError(t, err, "duplicate export: add")

		var ve *wasm.ValidationError
		require.True(t, errors.As(err, &ve))
	})
}

func TestConfig_WithFeatureSignExtensionOps(t *testing.T) {
	m := addModule()
	m.CodeSection[0].Body = []*wasm.Operator{
		{Opcode: wasm.OpcodeLocalGet, Index: 0},
		{Opcode: wasm.OpcodeI32Extend8S},
		{Opcode: wasm.OpcodeLocalGet, Index: 1},
		{Opcode: wasm.OpcodeI32Add},
		{Opcode: wasm.OpcodeEnd},
	}

	err := Validate(m, NewConfig())
	require.EqualError(t, err, "invalid function[0]: i32.extend8_s invalid as feature sign-extension-ops is disabled")

	require.NoError(t, Validate(m, NewConfig().WithFeatureSignExtensionOps(true)))
	require.NoError(t, Validate(m, NewConfig().WithFeaturesAll()))
}

func TestConfig_WithTryRequiresCatch(t *testing.T) {
	m := &wasm.Module{
		TypeSection:     []*wasm.FunctionType{{}},
		FunctionSection: []wasm.Index{0},
		CodeSection: []*wasm.Code{
			{Body: []*wasm.Operator{
				{Opcode: wasm.OpcodeTry, Block: &wasm.BlockSignature{Form: wasm.BlockSignatureVoid}},
				{Opcode: wasm.OpcodeEnd},
				{Opcode: wasm.OpcodeEnd},
			}},
		},
	}
	eh := NewConfig().WithFeatureExceptionHandling(true)

	err := Validate(m, eh)
	require.EqualError(t, err, "invalid function[0]: end may not occur in try context")

	require.NoError(t, Validate(m, eh.WithTryRequiresCatch(false)))
}

func TestConfig_WithMaxStackValues(t *testing.T) {
	m := &wasm.Module{
		TypeSection:     []*wasm.FunctionType{{}},
		FunctionSection: []wasm.Index{0},
		CodeSection: []*wasm.Code{
			{Body: []*wasm.Operator{
				{Opcode: wasm.OpcodeI32Const},
				{Opcode: wasm.OpcodeI32Const},
				{Opcode: wasm.OpcodeDrop},
				{Opcode: wasm.OpcodeDrop},
				{Opcode: wasm.OpcodeEnd},
			}},
		},
	}

	require.NoError(t, Validate(m, NewConfig().WithMaxStackValues(2)))

	err := Validate(m, NewConfig().WithMaxStackValues(1))
	require.EqualError(t, err, "invalid function[0]: function may have 2 stack values, which exceeds limit 1")
}

func TestConfig_CloneDoesNotMutate(t *testing.T) {
	base := NewConfig()
	derived := base.WithFeatureSIMD(true).WithFeatureAtomics(true)

	v128 := &wasm.Module{TypeSection: []*wasm.FunctionType{{Params: []wasm.ValueType{wasm.ValueTypeV128}}}}
	require.EqualError(t, Validate(v128, base), "v128 invalid as feature simd is disabled")
	require.NoError(t, Validate(v128, derived))
}
