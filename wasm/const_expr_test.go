package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModule_validateConstantExpression(t *testing.T) {
	m := &Module{
		TypeSection:     []*FunctionType{{}},
		FunctionSection: []Index{0},
		ImportSection: []*Import{
			{Type: ExternTypeGlobal, Module: "env", Name: "i", DescGlobal: &GlobalType{ValType: ValueTypeI64}},
			{Type: ExternTypeGlobal, Module: "env", Name: "m", DescGlobal: &GlobalType{ValType: ValueTypeI32, Mutable: true}},
		},
	}

	tests := []struct {
		name         string
		expr         *ConstantExpression
		expectedType ValueType
		expectedErr  string
	}{
		{
			name:         "i32.const",
			expr:         &ConstantExpression{Opcode: OpcodeI32Const, ConstBits: 42},
			expectedType: ValueTypeI32,
		},
		{
			name:         "i64.const",
			expr:         &ConstantExpression{Opcode: OpcodeI64Const},
			expectedType: ValueTypeI64,
		},
		{
			name:         "f32.const",
			expr:         &ConstantExpression{Opcode: OpcodeF32Const},
			expectedType: ValueTypeF32,
		},
		{
			name:         "f64.const",
			expr:         &ConstantExpression{Opcode: OpcodeF64Const},
			expectedType: ValueTypeF64,
		},
		{
			name:         "v128.const",
			expr:         &ConstantExpression{Opcode: OpcodeVecV128Const},
			expectedType: ValueTypeV128,
		},
		{
			name:         "const type mismatch",
			expr:         &ConstantExpression{Opcode: OpcodeI64Const},
			expectedType: ValueTypeI32,
			expectedErr:  "type mismatch: expected i32 but got i64 in test",
		},
		{
			name:         "global.get",
			expr:         &ConstantExpression{Opcode: OpcodeGlobalGet, Index: 0},
			expectedType: ValueTypeI64,
		},
		{
			name:         "global.get mutable",
			expr:         &ConstantExpression{Opcode: OpcodeGlobalGet, Index: 1},
			expectedType: ValueTypeI32,
			expectedErr:  "global variable initializer expression may only access immutable globals",
		},
		{
			name:         "global.get out of range",
			expr:         &ConstantExpression{Opcode: OpcodeGlobalGet, Index: 2},
			expectedType: ValueTypeI32,
			expectedErr:  "invalid global index 2, must be less than 2",
		},
		{
			name:         "ref.null",
			expr:         &ConstantExpression{Opcode: OpcodeRefNull},
			expectedType: ValueTypeFuncref,
		},
		{
			name:         "ref.null as anyref",
			expr:         &ConstantExpression{Opcode: OpcodeRefNull},
			expectedType: ValueTypeAnyref,
		},
		{
			name:         "ref.func",
			expr:         &ConstantExpression{Opcode: OpcodeRefFunc, Index: 0},
			expectedType: ValueTypeFuncref,
		},
		{
			name:         "ref.func out of range",
			expr:         &ConstantExpression{Opcode: OpcodeRefFunc, Index: 1},
			expectedType: ValueTypeFuncref,
			expectedErr:  "invalid function index 1, must be less than 1",
		},
		{
			name:         "ref.func is not an i32",
			expr:         &ConstantExpression{Opcode: OpcodeRefFunc, Index: 0},
			expectedType: ValueTypeI32,
			expectedErr:  "type mismatch: expected i32 but got funcref in test",
		},
		{
			name:         "zero value is invalid",
			expr:         &ConstantExpression{},
			expectedType: ValueTypeI32,
			expectedErr:  "invalid initializer expression in test",
		},
		{
			name:         "nil is invalid",
			expr:         nil,
			expectedType: ValueTypeI32,
			expectedErr:  "invalid initializer expression in test",
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			err := m.validateConstantExpression(tc.expr, tc.expectedType, "test")
			if tc.expectedErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.expectedErr)
			}
		})
	}
}
