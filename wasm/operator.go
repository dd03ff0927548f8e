package wasm

// BlockSignatureForm selects how the type of a block, loop, if or try is written.
type BlockSignatureForm byte

const (
	// BlockSignatureVoid is a block with no parameters and no results.
	BlockSignatureVoid BlockSignatureForm = iota
	// BlockSignatureResult is a block with no parameters and a single result.
	BlockSignatureResult
	// BlockSignatureTypeIndex is a block whose type is an index into
	// Module.TypeSection. Required for parameters or multiple results, which in turn
	// require FeatureMultiValue.
	BlockSignatureTypeIndex
)

// BlockSignature is the type immediate of a structured instruction.
type BlockSignature struct {
	Form BlockSignatureForm
	// Result is the single result type when Form is BlockSignatureResult.
	Result ValueType
	// TypeIndex references Module.TypeSection when Form is BlockSignatureTypeIndex.
	TypeIndex Index
}

// Operator is a single decoded instruction: an Opcode plus the immediates that opcode
// takes. Decoders produce these; the validator only reads them.
//
// Only the fields the Opcode defines are meaningful; the rest are ignored.
type Operator struct {
	Opcode Opcode

	// Block is the type of a block, loop, if or try.
	Block *BlockSignature

	// Depth is the label depth of br, br_if and the default target of br_table, or the
	// catch depth of rethrow.
	Depth uint32

	// Depths are the non-default label depths of br_table.
	Depths []uint32

	// Index is the first index immediate in binary-format order: the function index of
	// call and ref.func, the type index of call_indirect, the local index of local.get,
	// local.set and local.tee, the global index of global.get and global.set, the table
	// index of the table operators, the memory index of the memory operators, the
	// exception index of throw and catch, and the data or element segment index of
	// memory.init, data.drop, table.init and elem.drop.
	Index Index

	// Index2 is the second index immediate where one exists: the table index of
	// call_indirect and table.init, the memory index of memory.init, and the source
	// index of table.copy and memory.copy (Index being the destination).
	Index2 Index

	// AlignLog2 is the base-2 logarithm of the alignment of a load or store, which may
	// not exceed the access width (and must equal it for atomic operators).
	AlignLog2 uint32

	// Offset is the static address offset of a load or store. It does not affect
	// validation.
	Offset uint32

	// LaneIndex selects the lane of a SIMD extract, replace, or load/store lane.
	LaneIndex byte

	// Lanes are the sixteen lane selectors of i8x16.shuffle, each below 32.
	Lanes [16]byte

	// SelectTypes is the result type immediate of the typed select instruction; nil
	// marks the untyped form. The typed form requires exactly one entry.
	SelectTypes []ValueType

	// ConstBits holds the raw bits of an i32, i64, f32 or f64 constant.
	ConstBits uint64

	// ConstV128 holds the bits of a v128.const.
	ConstV128 [16]byte
}
