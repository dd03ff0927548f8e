package wasm

import "fmt"

// Opcode identifies an instruction. Single-byte opcodes use their binary encoding
// directly; opcodes behind a prefix byte are encoded as prefix<<8 | sub, so for example
// memory.init (0xfc 0x08) is Opcode 0xfc08.
type Opcode = uint32

// Control and parametric instructions. These are dispatched specially by the function
// body validator; everything else goes through the operatorDetails table.
const (
	// OpcodeUnreachable causes an unconditional trap.
	OpcodeUnreachable Opcode = 0x00
	// OpcodeNop does nothing.
	OpcodeNop Opcode = 0x01
	// OpcodeBlock brackets a sequence of instructions. A branch to a block label breaks
	// out to after its OpcodeEnd.
	OpcodeBlock Opcode = 0x02
	// OpcodeLoop brackets a sequence of instructions. A branch to a loop label jumps back
	// to the beginning of the loop.
	OpcodeLoop Opcode = 0x03
	// OpcodeIf brackets a sequence of instructions executed when the i32 on top of the
	// stack is non-zero. Zero jumps to the optional OpcodeElse.
	OpcodeIf Opcode = 0x04
	// OpcodeElse brackets the alternative arm of an OpcodeIf.
	OpcodeElse Opcode = 0x05
	// OpcodeTry brackets a sequence of instructions whose exceptions are handled by the
	// following OpcodeCatch or OpcodeCatchAll arms. Requires FeatureExceptionHandling.
	OpcodeTry Opcode = 0x06
	// OpcodeCatch begins a handler arm for one exception type.
	OpcodeCatch Opcode = 0x07
	// OpcodeThrow raises the exception identified by its immediate.
	OpcodeThrow Opcode = 0x08
	// OpcodeRethrow re-raises the exception caught by an enclosing catch.
	OpcodeRethrow Opcode = 0x09
	// OpcodeEnd terminates OpcodeBlock, OpcodeLoop, OpcodeIf, a catch sequence, or the
	// function body itself.
	OpcodeEnd Opcode = 0x0b
	// OpcodeBr performs an unconditional branch to the label at its immediate depth.
	OpcodeBr Opcode = 0x0c
	// OpcodeBrIf branches when the i32 on top of the stack is non-zero.
	OpcodeBrIf Opcode = 0x0d
	// OpcodeBrTable branches to the label selected by the i32 on top of the stack, or to
	// its default label.
	OpcodeBrTable Opcode = 0x0e
	// OpcodeReturn returns from the function.
	OpcodeReturn Opcode = 0x0f
	// OpcodeCall invokes the function at its immediate index.
	OpcodeCall Opcode = 0x10
	// OpcodeCallIndirect invokes a function selected at runtime from a funcref table.
	OpcodeCallIndirect Opcode = 0x11
	// OpcodeCatchAll begins a handler arm matching every exception type.
	OpcodeCatchAll Opcode = 0x19
	// OpcodeDrop discards the value on top of the stack.
	OpcodeDrop Opcode = 0x1a
	// OpcodeSelect picks one of two numeric operands based on an i32 condition.
	OpcodeSelect Opcode = 0x1b
	// OpcodeTypedSelect is select with an explicit result type immediate. Requires
	// FeatureReferenceTypes.
	OpcodeTypedSelect Opcode = 0x1c

	OpcodeLocalGet  Opcode = 0x20
	OpcodeLocalSet  Opcode = 0x21
	OpcodeLocalTee  Opcode = 0x22
	OpcodeGlobalGet Opcode = 0x23
	OpcodeGlobalSet Opcode = 0x24
	OpcodeTableGet  Opcode = 0x25
	OpcodeTableSet  Opcode = 0x26
)

// Memory instructions.
const (
	OpcodeI32Load    Opcode = 0x28
	OpcodeI64Load    Opcode = 0x29
	OpcodeF32Load    Opcode = 0x2a
	OpcodeF64Load    Opcode = 0x2b
	OpcodeI32Load8S  Opcode = 0x2c
	OpcodeI32Load8U  Opcode = 0x2d
	OpcodeI32Load16S Opcode = 0x2e
	OpcodeI32Load16U Opcode = 0x2f
	OpcodeI64Load8S  Opcode = 0x30
	OpcodeI64Load8U  Opcode = 0x31
	OpcodeI64Load16S Opcode = 0x32
	OpcodeI64Load16U Opcode = 0x33
	OpcodeI64Load32S Opcode = 0x34
	OpcodeI64Load32U Opcode = 0x35
	OpcodeI32Store   Opcode = 0x36
	OpcodeI64Store   Opcode = 0x37
	OpcodeF32Store   Opcode = 0x38
	OpcodeF64Store   Opcode = 0x39
	OpcodeI32Store8  Opcode = 0x3a
	OpcodeI32Store16 Opcode = 0x3b
	OpcodeI64Store8  Opcode = 0x3c
	OpcodeI64Store16 Opcode = 0x3d
	OpcodeI64Store32 Opcode = 0x3e
	OpcodeMemorySize Opcode = 0x3f
	OpcodeMemoryGrow Opcode = 0x40
)

// Constant instructions.
const (
	OpcodeI32Const Opcode = 0x41
	OpcodeI64Const Opcode = 0x42
	OpcodeF32Const Opcode = 0x43
	OpcodeF64Const Opcode = 0x44
)

// Numeric instructions.
const (
	OpcodeI32Eqz Opcode = 0x45
	OpcodeI32Eq  Opcode = 0x46
	OpcodeI32Ne  Opcode = 0x47
	OpcodeI32LtS Opcode = 0x48
	OpcodeI32LtU Opcode = 0x49
	OpcodeI32GtS Opcode = 0x4a
	OpcodeI32GtU Opcode = 0x4b
	OpcodeI32LeS Opcode = 0x4c
	OpcodeI32LeU Opcode = 0x4d
	OpcodeI32GeS Opcode = 0x4e
	OpcodeI32GeU Opcode = 0x4f

	OpcodeI64Eqz Opcode = 0x50
	OpcodeI64Eq  Opcode = 0x51
	OpcodeI64Ne  Opcode = 0x52
	OpcodeI64LtS Opcode = 0x53
	OpcodeI64LtU Opcode = 0x54
	OpcodeI64GtS Opcode = 0x55
	OpcodeI64GtU Opcode = 0x56
	OpcodeI64LeS Opcode = 0x57
	OpcodeI64LeU Opcode = 0x58
	OpcodeI64GeS Opcode = 0x59

	OpcodeF32Eq Opcode = 0x5a
	OpcodeF32Ne Opcode = 0x5b
	OpcodeF32Lt Opcode = 0x5c
	OpcodeF32Gt Opcode = 0x5d
	OpcodeF32Le Opcode = 0x5e
	OpcodeF32Ge Opcode = 0x5f

	OpcodeF64Eq Opcode = 0x60
	OpcodeF64Ne Opcode = 0x61
	OpcodeF64Lt Opcode = 0x62
	OpcodeF64Gt Opcode = 0x63
	OpcodeF64Le Opcode = 0x64
	OpcodeF64Ge Opcode = 0x65

	OpcodeI32Clz    Opcode = 0x67
	OpcodeI32Ctz    Opcode = 0x68
	OpcodeI32Popcnt Opcode = 0x69
	OpcodeI32Add    Opcode = 0x6a
	OpcodeI32Sub    Opcode = 0x6b
	OpcodeI32Mul    Opcode = 0x6c
	OpcodeI32DivS   Opcode = 0x6d
	OpcodeI32DivU   Opcode = 0x6e
	OpcodeI32RemS   Opcode = 0x6f
	OpcodeI32RemU   Opcode = 0x70
	OpcodeI32And    Opcode = 0x71
	OpcodeI32Or     Opcode = 0x72
	OpcodeI32Xor    Opcode = 0x73
	OpcodeI32Shl    Opcode = 0x74
	OpcodeI32ShrS   Opcode = 0x75
	OpcodeI32ShrU   Opcode = 0x76
	OpcodeI32Rotl   Opcode = 0x77
	OpcodeI32Rotr   Opcode = 0x78

	OpcodeI64Clz    Opcode = 0x79
	OpcodeI64Ctz    Opcode = 0x7a
	OpcodeI64Popcnt Opcode = 0x7b
	OpcodeI64Add    Opcode = 0x7c
	OpcodeI64Sub    Opcode = 0x7d
	OpcodeI64Mul    Opcode = 0x7e
	OpcodeI64DivS   Opcode = 0x7f
	OpcodeI64DivU   Opcode = 0x80
	OpcodeI64RemS   Opcode = 0x81
	OpcodeI64RemU   Opcode = 0x82
	OpcodeI64And    Opcode = 0x83
	OpcodeI64Or     Opcode = 0x84
	OpcodeI64Xor    Opcode = 0x85
	OpcodeI64Shl    Opcode = 0x86
	OpcodeI64ShrS   Opcode = 0x87
	OpcodeI64ShrU   Opcode = 0x88
	OpcodeI64Rotl   Opcode = 0x89
	OpcodeI64Rotr   Opcode = 0x8a

	OpcodeF32Abs      Opcode = 0x8b
	OpcodeF32Neg      Opcode = 0x8c
	OpcodeF32Ceil     Opcode = 0x8d
	OpcodeF32Floor    Opcode = 0x8e
	OpcodeF32Trunc    Opcode = 0x8f
	OpcodeF32Nearest  Opcode = 0x90
	OpcodeF32Sqrt     Opcode = 0x91
	OpcodeF32Add      Opcode = 0x92
	OpcodeF32Sub      Opcode = 0x93
	OpcodeF32Mul      Opcode = 0x94
	OpcodeF32Div      Opcode = 0x95
	OpcodeF32Min      Opcode = 0x96
	OpcodeF32Max      Opcode = 0x97
	OpcodeF32Copysign Opcode = 0x98

	OpcodeF64Abs      Opcode = 0x99
	OpcodeF64Neg      Opcode = 0x9a
	OpcodeF64Ceil     Opcode = 0x9b
	OpcodeF64Floor    Opcode = 0x9c
	OpcodeF64Trunc    Opcode = 0x9d
	OpcodeF64Nearest  Opcode = 0x9e
	OpcodeF64Sqrt     Opcode = 0x9f
	OpcodeF64Add      Opcode = 0xa0
	OpcodeF64Sub      Opcode = 0xa1
	OpcodeF64Mul      Opcode = 0xa2
	OpcodeF64Div      Opcode = 0xa3
	OpcodeF64Min      Opcode = 0xa4
	OpcodeF64Max      Opcode = 0xa5
	OpcodeF64Copysign Opcode = 0xa6

	OpcodeI32WrapI64     Opcode = 0xa7
	OpcodeI32TruncF32S   Opcode = 0xa8
	OpcodeI32TruncF32U   Opcode = 0xa9
	OpcodeI32TruncF64S   Opcode = 0xaa
	OpcodeI32TruncF64U   Opcode = 0xab
	OpcodeI64ExtendI32S  Opcode = 0xac
	OpcodeI64ExtendI32U  Opcode = 0xad
	OpcodeI64TruncF32S   Opcode = 0xae
	OpcodeI64TruncF32U   Opcode = 0xaf
	OpcodeI64TruncF64S   Opcode = 0xb0
	OpcodeI64TruncF64U   Opcode = 0xb1
	OpcodeF32ConvertI32S Opcode = 0xb2
	OpcodeF32ConvertI32U Opcode = 0xb3
	OpcodeF32ConvertI64S Opcode = 0xb4
	OpcodeF32ConvertI64U Opcode = 0xb5
	OpcodeF32DemoteF64   Opcode = 0xb6
	OpcodeF64ConvertI32S Opcode = 0xb7
	OpcodeF64ConvertI32U Opcode = 0xb8
	OpcodeF64ConvertI64S Opcode = 0xb9
	OpcodeF64ConvertI64U Opcode = 0xba
	OpcodeF64PromoteF32  Opcode = 0xbb

	OpcodeI32ReinterpretF32 Opcode = 0xbc
	OpcodeI64ReinterpretF64 Opcode = 0xbd
	OpcodeF32ReinterpretI32 Opcode = 0xbe
	OpcodeF64ReinterpretI64 Opcode = 0xbf

	// OpcodeI32Extend8S extends a signed 8-bit integer to a 32-bit integer. Requires
	// FeatureSignExtensionOps.
	OpcodeI32Extend8S  Opcode = 0xc0
	OpcodeI32Extend16S Opcode = 0xc1
	OpcodeI64Extend8S  Opcode = 0xc2
	OpcodeI64Extend16S Opcode = 0xc3
	OpcodeI64Extend32S Opcode = 0xc4
)

// Reference instructions. Require FeatureReferenceTypes.
const (
	OpcodeRefNull   Opcode = 0xd0
	OpcodeRefIsNull Opcode = 0xd1
	OpcodeRefFunc   Opcode = 0xd2
)

// Opcodes behind the 0xfc prefix: the saturating truncations of
// FeatureNonTrappingFloatToInt, the bulk memory operations of
// FeatureBulkMemoryOperations, and the table operators of FeatureReferenceTypes.
const (
	OpcodeI32TruncSatF32S Opcode = 0xfc00
	OpcodeI32TruncSatF32U Opcode = 0xfc01
	OpcodeI32TruncSatF64S Opcode = 0xfc02
	OpcodeI32TruncSatF64U Opcode = 0xfc03
	OpcodeI64TruncSatF32S Opcode = 0xfc04
	OpcodeI64TruncSatF32U Opcode = 0xfc05
	OpcodeI64TruncSatF64S Opcode = 0xfc06
	OpcodeI64TruncSatF64U Opcode = 0xfc07

	OpcodeMemoryInit Opcode = 0xfc08
	OpcodeDataDrop   Opcode = 0xfc09
	OpcodeMemoryCopy Opcode = 0xfc0a
	OpcodeMemoryFill Opcode = 0xfc0b
	OpcodeTableInit  Opcode = 0xfc0c
	OpcodeElemDrop   Opcode = 0xfc0d
	OpcodeTableCopy  Opcode = 0xfc0e
	OpcodeTableGrow  Opcode = 0xfc0f
	OpcodeTableSize  Opcode = 0xfc10
	OpcodeTableFill  Opcode = 0xfc11
)

// Opcodes behind the 0xfd prefix: the fixed-width SIMD operators. Require FeatureSIMD.
const (
	OpcodeVecV128Load        Opcode = 0xfd00
	OpcodeVecV128Load8x8S    Opcode = 0xfd01
	OpcodeVecV128Load8x8U    Opcode = 0xfd02
	OpcodeVecV128Load16x4S   Opcode = 0xfd03
	OpcodeVecV128Load16x4U   Opcode = 0xfd04
	OpcodeVecV128Load32x2S   Opcode = 0xfd05
	OpcodeVecV128Load32x2U   Opcode = 0xfd06
	OpcodeVecV128Load8Splat  Opcode = 0xfd07
	OpcodeVecV128Load16Splat Opcode = 0xfd08
	OpcodeVecV128Load32Splat Opcode = 0xfd09
	OpcodeVecV128Load64Splat Opcode = 0xfd0a
	OpcodeVecV128Store       Opcode = 0xfd0b
	OpcodeVecV128Const       Opcode = 0xfd0c

	OpcodeVecI8x16Shuffle Opcode = 0xfd0d
	OpcodeVecI8x16Swizzle Opcode = 0xfd0e

	OpcodeVecI8x16Splat Opcode = 0xfd0f
	OpcodeVecI16x8Splat Opcode = 0xfd10
	OpcodeVecI32x4Splat Opcode = 0xfd11
	OpcodeVecI64x2Splat Opcode = 0xfd12
	OpcodeVecF32x4Splat Opcode = 0xfd13
	OpcodeVecF64x2Splat Opcode = 0xfd14

	OpcodeVecI8x16ExtractLaneS Opcode = 0xfd15
	OpcodeVecI8x16ExtractLaneU Opcode = 0xfd16
	OpcodeVecI8x16ReplaceLane  Opcode = 0xfd17
	OpcodeVecI16x8ExtractLaneS Opcode = 0xfd18
	OpcodeVecI16x8ExtractLaneU Opcode = 0xfd19
	OpcodeVecI16x8ReplaceLane  Opcode = 0xfd1a
	OpcodeVecI32x4ExtractLane  Opcode = 0xfd1b
	OpcodeVecI32x4ReplaceLane  Opcode = 0xfd1c
	OpcodeVecI64x2ExtractLane  Opcode = 0xfd1d
	OpcodeVecI64x2ReplaceLane  Opcode = 0xfd1e
	OpcodeVecF32x4ExtractLane  Opcode = 0xfd1f
	OpcodeVecF32x4ReplaceLane  Opcode = 0xfd20
	OpcodeVecF64x2ExtractLane  Opcode = 0xfd21
	OpcodeVecF64x2ReplaceLane  Opcode = 0xfd22

	OpcodeVecI8x16Eq  Opcode = 0xfd23
	OpcodeVecI8x16Ne  Opcode = 0xfd24
	OpcodeVecI8x16LtS Opcode = 0xfd25
	OpcodeVecI8x16LtU Opcode = 0xfd26
	OpcodeVecI8x16GtS Opcode = 0xfd27
	OpcodeVecI8x16GtU Opcode = 0xfd28
	OpcodeVecI8x16LeS Opcode = 0xfd29
	OpcodeVecI8x16LeU Opcode = 0xfd2a
	OpcodeVecI8x16GeS Opcode = 0xfd2b
	OpcodeVecI8x16GeU Opcode = 0xfd2c

	OpcodeVecI16x8Eq  Opcode = 0xfd2d
	OpcodeVecI16x8Ne  Opcode = 0xfd2e
	OpcodeVecI16x8LtS Opcode = 0xfd2f
	OpcodeVecI16x8LtU Opcode = 0xfd30
	OpcodeVecI16x8GtS Opcode = 0xfd31
	OpcodeVecI16x8GtU Opcode = 0xfd32
	OpcodeVecI16x8LeS Opcode = 0xfd33
	OpcodeVecI16x8LeU Opcode = 0xfd34
	OpcodeVecI16x8GeS Opcode = 0xfd35
	OpcodeVecI16x8GeU Opcode = 0xfd36

	OpcodeVecI32x4Eq  Opcode = 0xfd37
	OpcodeVecI32x4Ne  Opcode = 0xfd38
	OpcodeVecI32x4LtS Opcode = 0xfd39
	OpcodeVecI32x4LtU Opcode = 0xfd3a
	OpcodeVecI32x4GtS Opcode = 0xfd3b
	OpcodeVecI32x4GtU Opcode = 0xfd3c
	OpcodeVecI32x4LeS Opcode = 0xfd3d
	OpcodeVecI32x4LeU Opcode = 0xfd3e
	OpcodeVecI32x4GeS Opcode = 0xfd3f
	OpcodeVecI32x4GeU Opcode = 0xfd40

	OpcodeVecF32x4Eq Opcode = 0xfd41
	OpcodeVecF32x4Ne Opcode = 0xfd42
	OpcodeVecF32x4Lt Opcode = 0xfd43
	OpcodeVecF32x4Gt Opcode = 0xfd44
	OpcodeVecF32x4Le Opcode = 0xfd45
	OpcodeVecF32x4Ge Opcode = 0xfd46

	OpcodeVecF64x2Eq Opcode = 0xfd47
	OpcodeVecF64x2Ne Opcode = 0xfd48
	OpcodeVecF64x2Lt Opcode = 0xfd49
	OpcodeVecF64x2Gt Opcode = 0xfd4a
	OpcodeVecF64x2Le Opcode = 0xfd4b
	OpcodeVecF64x2Ge Opcode = 0xfd4c

	OpcodeVecV128Not       Opcode = 0xfd4d
	OpcodeVecV128And       Opcode = 0xfd4e
	OpcodeVecV128AndNot    Opcode = 0xfd4f
	OpcodeVecV128Or        Opcode = 0xfd50
	OpcodeVecV128Xor       Opcode = 0xfd51
	OpcodeVecV128Bitselect Opcode = 0xfd52
	OpcodeVecV128AnyTrue   Opcode = 0xfd53

	OpcodeVecV128Load8Lane   Opcode = 0xfd54
	OpcodeVecV128Load16Lane  Opcode = 0xfd55
	OpcodeVecV128Load32Lane  Opcode = 0xfd56
	OpcodeVecV128Load64Lane  Opcode = 0xfd57
	OpcodeVecV128Store8Lane  Opcode = 0xfd58
	OpcodeVecV128Store16Lane Opcode = 0xfd59
	OpcodeVecV128Store32Lane Opcode = 0xfd5a
	OpcodeVecV128Store64Lane Opcode = 0xfd5b
	OpcodeVecV128Load32Zero  Opcode = 0xfd5c
	OpcodeVecV128Load64Zero  Opcode = 0xfd5d

	OpcodeVecF32x4DemoteF64x2Zero Opcode = 0xfd5e
	OpcodeVecF64x2PromoteLowF32x4 Opcode = 0xfd5f

	OpcodeVecI8x16Abs          Opcode = 0xfd60
	OpcodeVecI8x16Neg          Opcode = 0xfd61
	OpcodeVecI8x16Popcnt       Opcode = 0xfd62
	OpcodeVecI8x16AllTrue      Opcode = 0xfd63
	OpcodeVecI8x16BitMask      Opcode = 0xfd64
	OpcodeVecI8x16NarrowI16x8S Opcode = 0xfd65
	OpcodeVecI8x16NarrowI16x8U Opcode = 0xfd66
	OpcodeVecF32x4Ceil         Opcode = 0xfd67
	OpcodeVecF32x4Floor        Opcode = 0xfd68
	OpcodeVecF32x4Trunc        Opcode = 0xfd69
	OpcodeVecF32x4Nearest      Opcode = 0xfd6a
	OpcodeVecI8x16Shl          Opcode = 0xfd6b
	OpcodeVecI8x16ShrS         Opcode = 0xfd6c
	OpcodeVecI8x16ShrU         Opcode = 0xfd6d
	OpcodeVecI8x16Add          Opcode = 0xfd6e
	OpcodeVecI8x16AddSatS      Opcode = 0xfd6f
	OpcodeVecI8x16AddSatU      Opcode = 0xfd70
	OpcodeVecI8x16Sub          Opcode = 0xfd71
	OpcodeVecI8x16SubSatS      Opcode = 0xfd72
	OpcodeVecI8x16SubSatU      Opcode = 0xfd73
	OpcodeVecF64x2Ceil         Opcode = 0xfd74
	OpcodeVecF64x2Floor        Opcode = 0xfd75
	OpcodeVecI8x16MinS         Opcode = 0xfd76
	OpcodeVecI8x16MinU         Opcode = 0xfd77
	OpcodeVecI8x16MaxS         Opcode = 0xfd78
	OpcodeVecI8x16MaxU         Opcode = 0xfd79
	OpcodeVecF64x2Trunc        Opcode = 0xfd7a
	OpcodeVecI8x16AvgrU        Opcode = 0xfd7b

	OpcodeVecI16x8ExtaddPairwiseI8x16S Opcode = 0xfd7c
	OpcodeVecI16x8ExtaddPairwiseI8x16U Opcode = 0xfd7d
	OpcodeVecI32x4ExtaddPairwiseI16x8S Opcode = 0xfd7e
	OpcodeVecI32x4ExtaddPairwiseI16x8U Opcode = 0xfd7f

	OpcodeVecI16x8Abs              Opcode = 0xfd80
	OpcodeVecI16x8Neg              Opcode = 0xfd81
	OpcodeVecI16x8Q15mulrSatS      Opcode = 0xfd82
	OpcodeVecI16x8AllTrue          Opcode = 0xfd83
	OpcodeVecI16x8BitMask          Opcode = 0xfd84
	OpcodeVecI16x8NarrowI32x4S     Opcode = 0xfd85
	OpcodeVecI16x8NarrowI32x4U     Opcode = 0xfd86
	OpcodeVecI16x8ExtendLowI8x16S  Opcode = 0xfd87
	OpcodeVecI16x8ExtendHighI8x16S Opcode = 0xfd88
	OpcodeVecI16x8ExtendLowI8x16U  Opcode = 0xfd89
	OpcodeVecI16x8ExtendHighI8x16U Opcode = 0xfd8a
	OpcodeVecI16x8Shl              Opcode = 0xfd8b
	OpcodeVecI16x8ShrS             Opcode = 0xfd8c
	OpcodeVecI16x8ShrU             Opcode = 0xfd8d
	OpcodeVecI16x8Add              Opcode = 0xfd8e
	OpcodeVecI16x8AddSatS          Opcode = 0xfd8f
	OpcodeVecI16x8AddSatU          Opcode = 0xfd90
	OpcodeVecI16x8Sub              Opcode = 0xfd91
	OpcodeVecI16x8SubSatS          Opcode = 0xfd92
	OpcodeVecI16x8SubSatU          Opcode = 0xfd93
	OpcodeVecF64x2Nearest          Opcode = 0xfd94
	OpcodeVecI16x8Mul              Opcode = 0xfd95
	OpcodeVecI16x8MinS             Opcode = 0xfd96
	OpcodeVecI16x8MinU             Opcode = 0xfd97
	OpcodeVecI16x8MaxS             Opcode = 0xfd98
	OpcodeVecI16x8MaxU             Opcode = 0xfd99
	OpcodeVecI16x8AvgrU            Opcode = 0xfd9b
	OpcodeVecI16x8ExtmulLowI8x16S  Opcode = 0xfd9c
	OpcodeVecI16x8ExtmulHighI8x16S Opcode = 0xfd9d
	OpcodeVecI16x8ExtmulLowI8x16U  Opcode = 0xfd9e
	OpcodeVecI16x8ExtmulHighI8x16U Opcode = 0xfd9f

	OpcodeVecI32x4Abs              Opcode = 0xfda0
	OpcodeVecI32x4Neg              Opcode = 0xfda1
	OpcodeVecI32x4AllTrue          Opcode = 0xfda3
	OpcodeVecI32x4BitMask          Opcode = 0xfda4
	OpcodeVecI32x4ExtendLowI16x8S  Opcode = 0xfda7
	OpcodeVecI32x4ExtendHighI16x8S Opcode = 0xfda8
	OpcodeVecI32x4ExtendLowI16x8U  Opcode = 0xfda9
	OpcodeVecI32x4ExtendHighI16x8U Opcode = 0xfdaa
	OpcodeVecI32x4Shl              Opcode = 0xfdab
	OpcodeVecI32x4ShrS             Opcode = 0xfdac
	OpcodeVecI32x4ShrU             Opcode = 0xfdad
	OpcodeVecI32x4Add              Opcode = 0xfdae
	OpcodeVecI32x4Sub              Opcode = 0xfdb1
	OpcodeVecI32x4Mul              Opcode = 0xfdb5
	OpcodeVecI32x4MinS             Opcode = 0xfdb6
	OpcodeVecI32x4MinU             Opcode = 0xfdb7
	OpcodeVecI32x4MaxS             Opcode = 0xfdb8
	OpcodeVecI32x4MaxU             Opcode = 0xfdb9
	OpcodeVecI32x4DotI16x8S        Opcode = 0xfdba
	OpcodeVecI32x4ExtmulLowI16x8S  Opcode = 0xfdbc
	OpcodeVecI32x4ExtmulHighI16x8S Opcode = 0xfdbd
	OpcodeVecI32x4ExtmulLowI16x8U  Opcode = 0xfdbe
	OpcodeVecI32x4ExtmulHighI16x8U Opcode = 0xfdbf

	OpcodeVecI64x2Abs              Opcode = 0xfdc0
	OpcodeVecI64x2Neg              Opcode = 0xfdc1
	OpcodeVecI64x2AllTrue          Opcode = 0xfdc3
	OpcodeVecI64x2BitMask          Opcode = 0xfdc4
	OpcodeVecI64x2ExtendLowI32x4S  Opcode = 0xfdc7
	OpcodeVecI64x2ExtendHighI32x4S Opcode = 0xfdc8
	OpcodeVecI64x2ExtendLowI32x4U  Opcode = 0xfdc9
	OpcodeVecI64x2ExtendHighI32x4U Opcode = 0xfdca
	OpcodeVecI64x2Shl              Opcode = 0xfdcb
	OpcodeVecI64x2ShrS             Opcode = 0xfdcc
	OpcodeVecI64x2ShrU             Opcode = 0xfdcd
	OpcodeVecI64x2Add              Opcode = 0xfdce
	OpcodeVecI64x2Sub              Opcode = 0xfdd1
	OpcodeVecI64x2Mul              Opcode = 0xfdd5
	OpcodeVecI64x2Eq               Opcode = 0xfdd6
	OpcodeVecI64x2Ne               Opcode = 0xfdd7
	OpcodeVecI64x2LtS              Opcode = 0xfdd8
	OpcodeVecI64x2GtS              Opcode = 0xfdd9
	OpcodeVecI64x2LeS              Opcode = 0xfdda
	OpcodeVecI64x2GeS              Opcode = 0xfddb
	OpcodeVecI64x2ExtmulLowI32x4S  Opcode = 0xfddc
	OpcodeVecI64x2ExtmulHighI32x4S Opcode = 0xfddd
	OpcodeVecI64x2ExtmulLowI32x4U  Opcode = 0xfdde
	OpcodeVecI64x2ExtmulHighI32x4U Opcode = 0xfddf

	OpcodeVecF32x4Abs  Opcode = 0xfde0
	OpcodeVecF32x4Neg  Opcode = 0xfde1
	OpcodeVecF32x4Sqrt Opcode = 0xfde3
	OpcodeVecF32x4Add  Opcode = 0xfde4
	OpcodeVecF32x4Sub  Opcode = 0xfde5
	OpcodeVecF32x4Mul  Opcode = 0xfde6
	OpcodeVecF32x4Div  Opcode = 0xfde7
	OpcodeVecF32x4Min  Opcode = 0xfde8
	OpcodeVecF32x4Max  Opcode = 0xfde9
	OpcodeVecF32x4Pmin Opcode = 0xfdea
	OpcodeVecF32x4Pmax Opcode = 0xfdeb

	OpcodeVecF64x2Abs  Opcode = 0xfdec
	OpcodeVecF64x2Neg  Opcode = 0xfded
	OpcodeVecF64x2Sqrt Opcode = 0xfdef
	OpcodeVecF64x2Add  Opcode = 0xfdf0
	OpcodeVecF64x2Sub  Opcode = 0xfdf1
	OpcodeVecF64x2Mul  Opcode = 0xfdf2
	OpcodeVecF64x2Div  Opcode = 0xfdf3
	OpcodeVecF64x2Min  Opcode = 0xfdf4
	OpcodeVecF64x2Max  Opcode = 0xfdf5
	OpcodeVecF64x2Pmin Opcode = 0xfdf6
	OpcodeVecF64x2Pmax Opcode = 0xfdf7

	OpcodeVecI32x4TruncSatF32x4S     Opcode = 0xfdf8
	OpcodeVecI32x4TruncSatF32x4U     Opcode = 0xfdf9
	OpcodeVecF32x4ConvertI32x4S      Opcode = 0xfdfa
	OpcodeVecF32x4ConvertI32x4U      Opcode = 0xfdfb
	OpcodeVecI32x4TruncSatF64x2SZero Opcode = 0xfdfc
	OpcodeVecI32x4TruncSatF64x2UZero Opcode = 0xfdfd
	OpcodeVecF64x2ConvertLowI32x4S   Opcode = 0xfdfe
	OpcodeVecF64x2ConvertLowI32x4U   Opcode = 0xfdff
)

// Opcodes behind the 0xfe prefix: the threads proposal. Require FeatureAtomics.
const (
	OpcodeMemoryAtomicNotify Opcode = 0xfe00
	OpcodeMemoryAtomicWait32 Opcode = 0xfe01
	OpcodeMemoryAtomicWait64 Opcode = 0xfe02
	OpcodeAtomicFence        Opcode = 0xfe03

	OpcodeI32AtomicLoad    Opcode = 0xfe10
	OpcodeI64AtomicLoad    Opcode = 0xfe11
	OpcodeI32AtomicLoad8U  Opcode = 0xfe12
	OpcodeI32AtomicLoad16U Opcode = 0xfe13
	OpcodeI64AtomicLoad8U  Opcode = 0xfe14
	OpcodeI64AtomicLoad16U Opcode = 0xfe15
	OpcodeI64AtomicLoad32U Opcode = 0xfe16
	OpcodeI32AtomicStore   Opcode = 0xfe17
	OpcodeI64AtomicStore   Opcode = 0xfe18
	OpcodeI32AtomicStore8  Opcode = 0xfe19
	OpcodeI32AtomicStore16 Opcode = 0xfe1a
	OpcodeI64AtomicStore8  Opcode = 0xfe1b
	OpcodeI64AtomicStore16 Opcode = 0xfe1c
	OpcodeI64AtomicStore32 Opcode = 0xfe1d

	OpcodeI32AtomicRmwAdd    Opcode = 0xfe1e
	OpcodeI64AtomicRmwAdd    Opcode = 0xfe1f
	OpcodeI32AtomicRmw8AddU  Opcode = 0xfe20
	OpcodeI32AtomicRmw16AddU Opcode = 0xfe21
	OpcodeI64AtomicRmw8AddU  Opcode = 0xfe22
	OpcodeI64AtomicRmw16AddU Opcode = 0xfe23
	OpcodeI64AtomicRmw32AddU Opcode = 0xfe24

	OpcodeI32AtomicRmwSub    Opcode = 0xfe25
	OpcodeI64AtomicRmwSub    Opcode = 0xfe26
	OpcodeI32AtomicRmw8SubU  Opcode = 0xfe27
	OpcodeI32AtomicRmw16SubU Opcode = 0xfe28
	OpcodeI64AtomicRmw8SubU  Opcode = 0xfe29
	OpcodeI64AtomicRmw16SubU Opcode = 0xfe2a
	OpcodeI64AtomicRmw32SubU Opcode = 0xfe2b

	OpcodeI32AtomicRmwAnd    Opcode = 0xfe2c
	OpcodeI64AtomicRmwAnd    Opcode = 0xfe2d
	OpcodeI32AtomicRmw8AndU  Opcode = 0xfe2e
	OpcodeI32AtomicRmw16AndU Opcode = 0xfe2f
	OpcodeI64AtomicRmw8AndU  Opcode = 0xfe30
	OpcodeI64AtomicRmw16AndU Opcode = 0xfe31
	OpcodeI64AtomicRmw32AndU Opcode = 0xfe32

	OpcodeI32AtomicRmwOr    Opcode = 0xfe33
	OpcodeI64AtomicRmwOr    Opcode = 0xfe34
	OpcodeI32AtomicRmw8OrU  Opcode = 0xfe35
	OpcodeI32AtomicRmw16OrU Opcode = 0xfe36
	OpcodeI64AtomicRmw8OrU  Opcode = 0xfe37
	OpcodeI64AtomicRmw16OrU Opcode = 0xfe38
	OpcodeI64AtomicRmw32OrU Opcode = 0xfe39

	OpcodeI32AtomicRmwXor    Opcode = 0xfe3a
	OpcodeI64AtomicRmwXor    Opcode = 0xfe3b
	OpcodeI32AtomicRmw8XorU  Opcode = 0xfe3c
	OpcodeI32AtomicRmw16XorU Opcode = 0xfe3d
	OpcodeI64AtomicRmw8XorU  Opcode = 0xfe3e
	OpcodeI64AtomicRmw16XorU Opcode = 0xfe3f
	OpcodeI64AtomicRmw32XorU Opcode = 0xfe40

	OpcodeI32AtomicRmwXchg    Opcode = 0xfe41
	OpcodeI64AtomicRmwXchg    Opcode = 0xfe42
	OpcodeI32AtomicRmw8XchgU  Opcode = 0xfe43
	OpcodeI32AtomicRmw16XchgU Opcode = 0xfe44
	OpcodeI64AtomicRmw8XchgU  Opcode = 0xfe45
	OpcodeI64AtomicRmw16XchgU Opcode = 0xfe46
	OpcodeI64AtomicRmw32XchgU Opcode = 0xfe47

	OpcodeI32AtomicRmwCmpxchg    Opcode = 0xfe48
	OpcodeI64AtomicRmwCmpxchg    Opcode = 0xfe49
	OpcodeI32AtomicRmw8CmpxchgU  Opcode = 0xfe4a
	OpcodeI32AtomicRmw16CmpxchgU Opcode = 0xfe4b
	OpcodeI64AtomicRmw8CmpxchgU  Opcode = 0xfe4c
	OpcodeI64AtomicRmw16CmpxchgU Opcode = 0xfe4d
	OpcodeI64AtomicRmw32CmpxchgU Opcode = 0xfe4e
)

// controlInstructionNames covers the instructions dispatched outside the
// operatorDetails table.
var controlInstructionNames = map[Opcode]string{
	OpcodeUnreachable:  "unreachable",
	OpcodeNop:          "nop",
	OpcodeBlock:        "block",
	OpcodeLoop:         "loop",
	OpcodeIf:           "if",
	OpcodeElse:         "else",
	OpcodeTry:          "try",
	OpcodeCatch:        "catch",
	OpcodeThrow:        "throw",
	OpcodeRethrow:      "rethrow",
	OpcodeEnd:          "end",
	OpcodeBr:           "br",
	OpcodeBrIf:         "br_if",
	OpcodeBrTable:      "br_table",
	OpcodeReturn:       "return",
	OpcodeCall:         "call",
	OpcodeCallIndirect: "call_indirect",
	OpcodeCatchAll:     "catch_all",
	OpcodeDrop:         "drop",
	OpcodeSelect:       "select",
	OpcodeTypedSelect:  "select",
	OpcodeLocalGet:     "local.get",
	OpcodeLocalSet:     "local.set",
	OpcodeLocalTee:     "local.tee",
	OpcodeGlobalGet:    "global.get",
	OpcodeGlobalSet:    "global.set",
	OpcodeTableGet:     "table.get",
	OpcodeTableSet:     "table.set",
	OpcodeTableGrow:    "table.grow",
	OpcodeTableSize:    "table.size",
	OpcodeTableFill:    "table.fill",
	OpcodeTableInit:    "table.init",
	OpcodeTableCopy:    "table.copy",
	OpcodeElemDrop:     "elem.drop",
	OpcodeRefFunc:      "ref.func",
}

// InstructionName returns the instruction name in the WebAssembly text format.
func InstructionName(op Opcode) string {
	if name, ok := controlInstructionNames[op]; ok {
		return name
	}
	if d, ok := operatorDetails[op]; ok {
		return d.name
	}
	return fmt.Sprintf("unknown instruction (0x%x)", op)
}
