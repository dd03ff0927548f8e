package wasm

// immKind selects the immediate validation performed before the stack check of a
// table-dispatched operator.
type immKind byte

const (
	// immNone has no immediate, or an immediate needing no validation (constants).
	immNone immKind = iota
	// immMemoryIndex range-checks Operator.Index against the memory index space.
	immMemoryIndex
	// immLoadStore requires a default memory and an alignment not greater than the
	// natural alignment of the access.
	immLoadStore
	// immAtomicLoadStore requires a default memory, exactly natural alignment, and a
	// shared memory when FeatureRequireSharedMemoryForAtomics is enabled.
	immAtomicLoadStore
	// immLane range-checks Operator.LaneIndex against the lane count.
	immLane
	// immLoadStoreLane combines immLoadStore and immLane.
	immLoadStoreLane
	// immShuffle range-checks all sixteen Operator.Lanes against twice the lane count.
	immShuffle
	// immMemoryInit range-checks Operator.Index against the data segments and
	// Operator.Index2 against the memory index space.
	immMemoryInit
	// immDataDrop range-checks Operator.Index against the data segments.
	immDataDrop
	// immMemoryCopy range-checks Operator.Index and Operator.Index2 against the memory
	// index space.
	immMemoryCopy
)

// operatorDetail is one row of the static operator table: the text-format name, the
// stack signature, the feature that admits the operator, and how to validate its
// immediates. Operators with context-dependent signatures (control flow, variable and
// table access, calls) are dispatched separately and do not appear here.
type operatorDetail struct {
	name      string
	params    []ValueType
	results   []ValueType
	feature   Features
	imm       immKind
	alignLog2 uint32
	lanes     byte
}

// Shared signature tuples. Nil means an empty tuple.
var (
	sI32       = []ValueType{ValueTypeI32}
	sI64       = []ValueType{ValueTypeI64}
	sF32       = []ValueType{ValueTypeF32}
	sF64       = []ValueType{ValueTypeF64}
	sV128      = []ValueType{ValueTypeV128}
	sNullref   = []ValueType{valueTypeNullref}
	sAnyref    = []ValueType{ValueTypeAnyref}
	sI32I32    = []ValueType{ValueTypeI32, ValueTypeI32}
	sI32I64    = []ValueType{ValueTypeI32, ValueTypeI64}
	sI32F32    = []ValueType{ValueTypeI32, ValueTypeF32}
	sI32F64    = []ValueType{ValueTypeI32, ValueTypeF64}
	sI32V128   = []ValueType{ValueTypeI32, ValueTypeV128}
	sI64I64    = []ValueType{ValueTypeI64, ValueTypeI64}
	sF32F32    = []ValueType{ValueTypeF32, ValueTypeF32}
	sF64F64    = []ValueType{ValueTypeF64, ValueTypeF64}
	sV128V128  = []ValueType{ValueTypeV128, ValueTypeV128}
	sV128I32   = []ValueType{ValueTypeV128, ValueTypeI32}
	sV128I64   = []ValueType{ValueTypeV128, ValueTypeI64}
	sV128F32   = []ValueType{ValueTypeV128, ValueTypeF32}
	sV128F64   = []ValueType{ValueTypeV128, ValueTypeF64}
	sI32I32I32 = []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI32}
	sI32I32I64 = []ValueType{ValueTypeI32, ValueTypeI32, ValueTypeI64}
	sI32I64I64 = []ValueType{ValueTypeI32, ValueTypeI64, ValueTypeI64}
	sV3        = []ValueType{ValueTypeV128, ValueTypeV128, ValueTypeV128}
)

// operatorDetails is the static table consulted once per step for every operator
// without special control or context dependence.
var operatorDetails = map[Opcode]operatorDetail{
	// Memory instructions.
	OpcodeI32Load:    {"i32.load", sI32, sI32, FeatureMVP, immLoadStore, 2, 0},
	OpcodeI64Load:    {"i64.load", sI32, sI64, FeatureMVP, immLoadStore, 3, 0},
	OpcodeF32Load:    {"f32.load", sI32, sF32, FeatureMVP, immLoadStore, 2, 0},
	OpcodeF64Load:    {"f64.load", sI32, sF64, FeatureMVP, immLoadStore, 3, 0},
	OpcodeI32Load8S:  {"i32.load8_s", sI32, sI32, FeatureMVP, immLoadStore, 0, 0},
	OpcodeI32Load8U:  {"i32.load8_u", sI32, sI32, FeatureMVP, immLoadStore, 0, 0},
	OpcodeI32Load16S: {"i32.load16_s", sI32, sI32, FeatureMVP, immLoadStore, 1, 0},
	OpcodeI32Load16U: {"i32.load16_u", sI32, sI32, FeatureMVP, immLoadStore, 1, 0},
	OpcodeI64Load8S:  {"i64.load8_s", sI32, sI64, FeatureMVP, immLoadStore, 0, 0},
	OpcodeI64Load8U:  {"i64.load8_u", sI32, sI64, FeatureMVP, immLoadStore, 0, 0},
	OpcodeI64Load16S: {"i64.load16_s", sI32, sI64, FeatureMVP, immLoadStore, 1, 0},
	OpcodeI64Load16U: {"i64.load16_u", sI32, sI64, FeatureMVP, immLoadStore, 1, 0},
	OpcodeI64Load32S: {"i64.load32_s", sI32, sI64, FeatureMVP, immLoadStore, 2, 0},
	OpcodeI64Load32U: {"i64.load32_u", sI32, sI64, FeatureMVP, immLoadStore, 2, 0},
	OpcodeI32Store:   {"i32.store", sI32I32, nil, FeatureMVP, immLoadStore, 2, 0},
	OpcodeI64Store:   {"i64.store", sI32I64, nil, FeatureMVP, immLoadStore, 3, 0},
	OpcodeF32Store:   {"f32.store", sI32F32, nil, FeatureMVP, immLoadStore, 2, 0},
	OpcodeF64Store:   {"f64.store", sI32F64, nil, FeatureMVP, immLoadStore, 3, 0},
	OpcodeI32Store8:  {"i32.store8", sI32I32, nil, FeatureMVP, immLoadStore, 0, 0},
	OpcodeI32Store16: {"i32.store16", sI32I32, nil, FeatureMVP, immLoadStore, 1, 0},
	OpcodeI64Store8:  {"i64.store8", sI32I64, nil, FeatureMVP, immLoadStore, 0, 0},
	OpcodeI64Store16: {"i64.store16", sI32I64, nil, FeatureMVP, immLoadStore, 1, 0},
	OpcodeI64Store32: {"i64.store32", sI32I64, nil, FeatureMVP, immLoadStore, 2, 0},
	OpcodeMemorySize: {"memory.size", nil, sI32, FeatureMVP, immMemoryIndex, 0, 0},
	OpcodeMemoryGrow: {"memory.grow", sI32, sI32, FeatureMVP, immMemoryIndex, 0, 0},

	// Constants.
	OpcodeI32Const: {"i32.const", nil, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64Const: {"i64.const", nil, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeF32Const: {"f32.const", nil, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF64Const: {"f64.const", nil, sF64, FeatureMVP, immNone, 0, 0},

	// i32 comparisons.
	OpcodeI32Eqz: {"i32.eqz", sI32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Eq:  {"i32.eq", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Ne:  {"i32.ne", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32LtS: {"i32.lt_s", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32LtU: {"i32.lt_u", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32GtS: {"i32.gt_s", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32GtU: {"i32.gt_u", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32LeS: {"i32.le_s", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32LeU: {"i32.le_u", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32GeS: {"i32.ge_s", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32GeU: {"i32.ge_u", sI32I32, sI32, FeatureMVP, immNone, 0, 0},

	// i64 comparisons.
	OpcodeI64Eqz: {"i64.eqz", sI64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64Eq:  {"i64.eq", sI64I64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64Ne:  {"i64.ne", sI64I64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64LtS: {"i64.lt_s", sI64I64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64LtU: {"i64.lt_u", sI64I64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64GtS: {"i64.gt_s", sI64I64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64GtU: {"i64.gt_u", sI64I64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64LeS: {"i64.le_s", sI64I64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64LeU: {"i64.le_u", sI64I64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64GeS: {"i64.ge_s", sI64I64, sI32, FeatureMVP, immNone, 0, 0},

	// Float comparisons.
	OpcodeF32Eq: {"f32.eq", sF32F32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Ne: {"f32.ne", sF32F32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Lt: {"f32.lt", sF32F32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Gt: {"f32.gt", sF32F32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Le: {"f32.le", sF32F32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Ge: {"f32.ge", sF32F32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeF64Eq: {"f64.eq", sF64F64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeF64Ne: {"f64.ne", sF64F64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeF64Lt: {"f64.lt", sF64F64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeF64Gt: {"f64.gt", sF64F64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeF64Le: {"f64.le", sF64F64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeF64Ge: {"f64.ge", sF64F64, sI32, FeatureMVP, immNone, 0, 0},

	// i32 arithmetic.
	OpcodeI32Clz:    {"i32.clz", sI32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Ctz:    {"i32.ctz", sI32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Popcnt: {"i32.popcnt", sI32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Add:    {"i32.add", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Sub:    {"i32.sub", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Mul:    {"i32.mul", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32DivS:   {"i32.div_s", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32DivU:   {"i32.div_u", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32RemS:   {"i32.rem_s", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32RemU:   {"i32.rem_u", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32And:    {"i32.and", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Or:     {"i32.or", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Xor:    {"i32.xor", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Shl:    {"i32.shl", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32ShrS:   {"i32.shr_s", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32ShrU:   {"i32.shr_u", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Rotl:   {"i32.rotl", sI32I32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32Rotr:   {"i32.rotr", sI32I32, sI32, FeatureMVP, immNone, 0, 0},

	// i64 arithmetic.
	OpcodeI64Clz:    {"i64.clz", sI64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64Ctz:    {"i64.ctz", sI64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64Popcnt: {"i64.popcnt", sI64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64Add:    {"i64.add", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64Sub:    {"i64.sub", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64Mul:    {"i64.mul", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64DivS:   {"i64.div_s", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64DivU:   {"i64.div_u", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64RemS:   {"i64.rem_s", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64RemU:   {"i64.rem_u", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64And:    {"i64.and", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64Or:     {"i64.or", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64Xor:    {"i64.xor", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64Shl:    {"i64.shl", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64ShrS:   {"i64.shr_s", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64ShrU:   {"i64.shr_u", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64Rotl:   {"i64.rotl", sI64I64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64Rotr:   {"i64.rotr", sI64I64, sI64, FeatureMVP, immNone, 0, 0},

	// f32 arithmetic.
	OpcodeF32Abs:      {"f32.abs", sF32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Neg:      {"f32.neg", sF32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Ceil:     {"f32.ceil", sF32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Floor:    {"f32.floor", sF32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Trunc:    {"f32.trunc", sF32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Nearest:  {"f32.nearest", sF32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Sqrt:     {"f32.sqrt", sF32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Add:      {"f32.add", sF32F32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Sub:      {"f32.sub", sF32F32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Mul:      {"f32.mul", sF32F32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Div:      {"f32.div", sF32F32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Min:      {"f32.min", sF32F32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Max:      {"f32.max", sF32F32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32Copysign: {"f32.copysign", sF32F32, sF32, FeatureMVP, immNone, 0, 0},

	// f64 arithmetic.
	OpcodeF64Abs:      {"f64.abs", sF64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Neg:      {"f64.neg", sF64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Ceil:     {"f64.ceil", sF64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Floor:    {"f64.floor", sF64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Trunc:    {"f64.trunc", sF64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Nearest:  {"f64.nearest", sF64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Sqrt:     {"f64.sqrt", sF64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Add:      {"f64.add", sF64F64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Sub:      {"f64.sub", sF64F64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Mul:      {"f64.mul", sF64F64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Div:      {"f64.div", sF64F64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Min:      {"f64.min", sF64F64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Max:      {"f64.max", sF64F64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64Copysign: {"f64.copysign", sF64F64, sF64, FeatureMVP, immNone, 0, 0},

	// Conversions.
	OpcodeI32WrapI64:        {"i32.wrap_i64", sI64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32TruncF32S:      {"i32.trunc_f32_s", sF32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32TruncF32U:      {"i32.trunc_f32_u", sF32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32TruncF64S:      {"i32.trunc_f64_s", sF64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI32TruncF64U:      {"i32.trunc_f64_u", sF64, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64ExtendI32S:     {"i64.extend_i32_s", sI32, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64ExtendI32U:     {"i64.extend_i32_u", sI32, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64TruncF32S:      {"i64.trunc_f32_s", sF32, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64TruncF32U:      {"i64.trunc_f32_u", sF32, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64TruncF64S:      {"i64.trunc_f64_s", sF64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeI64TruncF64U:      {"i64.trunc_f64_u", sF64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeF32ConvertI32S:    {"f32.convert_i32_s", sI32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32ConvertI32U:    {"f32.convert_i32_u", sI32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32ConvertI64S:    {"f32.convert_i64_s", sI64, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32ConvertI64U:    {"f32.convert_i64_u", sI64, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF32DemoteF64:      {"f32.demote_f64", sF64, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF64ConvertI32S:    {"f64.convert_i32_s", sI32, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64ConvertI32U:    {"f64.convert_i32_u", sI32, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64ConvertI64S:    {"f64.convert_i64_s", sI64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64ConvertI64U:    {"f64.convert_i64_u", sI64, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeF64PromoteF32:     {"f64.promote_f32", sF32, sF64, FeatureMVP, immNone, 0, 0},
	OpcodeI32ReinterpretF32: {"i32.reinterpret_f32", sF32, sI32, FeatureMVP, immNone, 0, 0},
	OpcodeI64ReinterpretF64: {"i64.reinterpret_f64", sF64, sI64, FeatureMVP, immNone, 0, 0},
	OpcodeF32ReinterpretI32: {"f32.reinterpret_i32", sI32, sF32, FeatureMVP, immNone, 0, 0},
	OpcodeF64ReinterpretI64: {"f64.reinterpret_i64", sI64, sF64, FeatureMVP, immNone, 0, 0},

	// Sign extension.
	OpcodeI32Extend8S:  {"i32.extend8_s", sI32, sI32, FeatureSignExtensionOps, immNone, 0, 0},
	OpcodeI32Extend16S: {"i32.extend16_s", sI32, sI32, FeatureSignExtensionOps, immNone, 0, 0},
	OpcodeI64Extend8S:  {"i64.extend8_s", sI64, sI64, FeatureSignExtensionOps, immNone, 0, 0},
	OpcodeI64Extend16S: {"i64.extend16_s", sI64, sI64, FeatureSignExtensionOps, immNone, 0, 0},
	OpcodeI64Extend32S: {"i64.extend32_s", sI64, sI64, FeatureSignExtensionOps, immNone, 0, 0},

	// References.
	OpcodeRefNull:   {"ref.null", nil, sNullref, FeatureReferenceTypes, immNone, 0, 0},
	OpcodeRefIsNull: {"ref.is_null", sAnyref, sI32, FeatureReferenceTypes, immNone, 0, 0},

	// Saturating truncation.
	OpcodeI32TruncSatF32S: {"i32.trunc_sat_f32_s", sF32, sI32, FeatureNonTrappingFloatToInt, immNone, 0, 0},
	OpcodeI32TruncSatF32U: {"i32.trunc_sat_f32_u", sF32, sI32, FeatureNonTrappingFloatToInt, immNone, 0, 0},
	OpcodeI32TruncSatF64S: {"i32.trunc_sat_f64_s", sF64, sI32, FeatureNonTrappingFloatToInt, immNone, 0, 0},
	OpcodeI32TruncSatF64U: {"i32.trunc_sat_f64_u", sF64, sI32, FeatureNonTrappingFloatToInt, immNone, 0, 0},
	OpcodeI64TruncSatF32S: {"i64.trunc_sat_f32_s", sF32, sI64, FeatureNonTrappingFloatToInt, immNone, 0, 0},
	OpcodeI64TruncSatF32U: {"i64.trunc_sat_f32_u", sF32, sI64, FeatureNonTrappingFloatToInt, immNone, 0, 0},
	OpcodeI64TruncSatF64S: {"i64.trunc_sat_f64_s", sF64, sI64, FeatureNonTrappingFloatToInt, immNone, 0, 0},
	OpcodeI64TruncSatF64U: {"i64.trunc_sat_f64_u", sF64, sI64, FeatureNonTrappingFloatToInt, immNone, 0, 0},

	// Bulk memory. The table forms are dispatched separately.
	OpcodeMemoryInit: {"memory.init", sI32I32I32, nil, FeatureBulkMemoryOperations, immMemoryInit, 0, 0},
	OpcodeDataDrop:   {"data.drop", nil, nil, FeatureBulkMemoryOperations, immDataDrop, 0, 0},
	OpcodeMemoryCopy: {"memory.copy", sI32I32I32, nil, FeatureBulkMemoryOperations, immMemoryCopy, 0, 0},
	OpcodeMemoryFill: {"memory.fill", sI32I32I32, nil, FeatureBulkMemoryOperations, immMemoryIndex, 0, 0},

	// SIMD memory.
	OpcodeVecV128Load:        {"v128.load", sI32, sV128, FeatureSIMD, immLoadStore, 4, 0},
	OpcodeVecV128Load8x8S:    {"v128.load8x8_s", sI32, sV128, FeatureSIMD, immLoadStore, 3, 0},
	OpcodeVecV128Load8x8U:    {"v128.load8x8_u", sI32, sV128, FeatureSIMD, immLoadStore, 3, 0},
	OpcodeVecV128Load16x4S:   {"v128.load16x4_s", sI32, sV128, FeatureSIMD, immLoadStore, 3, 0},
	OpcodeVecV128Load16x4U:   {"v128.load16x4_u", sI32, sV128, FeatureSIMD, immLoadStore, 3, 0},
	OpcodeVecV128Load32x2S:   {"v128.load32x2_s", sI32, sV128, FeatureSIMD, immLoadStore, 3, 0},
	OpcodeVecV128Load32x2U:   {"v128.load32x2_u", sI32, sV128, FeatureSIMD, immLoadStore, 3, 0},
	OpcodeVecV128Load8Splat:  {"v128.load8_splat", sI32, sV128, FeatureSIMD, immLoadStore, 0, 0},
	OpcodeVecV128Load16Splat: {"v128.load16_splat", sI32, sV128, FeatureSIMD, immLoadStore, 1, 0},
	OpcodeVecV128Load32Splat: {"v128.load32_splat", sI32, sV128, FeatureSIMD, immLoadStore, 2, 0},
	OpcodeVecV128Load64Splat: {"v128.load64_splat", sI32, sV128, FeatureSIMD, immLoadStore, 3, 0},
	OpcodeVecV128Store:       {"v128.store", sI32V128, nil, FeatureSIMD, immLoadStore, 4, 0},
	OpcodeVecV128Load32Zero:  {"v128.load32_zero", sI32, sV128, FeatureSIMD, immLoadStore, 2, 0},
	OpcodeVecV128Load64Zero:  {"v128.load64_zero", sI32, sV128, FeatureSIMD, immLoadStore, 3, 0},
	OpcodeVecV128Load8Lane:   {"v128.load8_lane", sI32V128, sV128, FeatureSIMD, immLoadStoreLane, 0, 16},
	OpcodeVecV128Load16Lane:  {"v128.load16_lane", sI32V128, sV128, FeatureSIMD, immLoadStoreLane, 1, 8},
	OpcodeVecV128Load32Lane:  {"v128.load32_lane", sI32V128, sV128, FeatureSIMD, immLoadStoreLane, 2, 4},
	OpcodeVecV128Load64Lane:  {"v128.load64_lane", sI32V128, sV128, FeatureSIMD, immLoadStoreLane, 3, 2},
	OpcodeVecV128Store8Lane:  {"v128.store8_lane", sI32V128, nil, FeatureSIMD, immLoadStoreLane, 0, 16},
	OpcodeVecV128Store16Lane: {"v128.store16_lane", sI32V128, nil, FeatureSIMD, immLoadStoreLane, 1, 8},
	OpcodeVecV128Store32Lane: {"v128.store32_lane", sI32V128, nil, FeatureSIMD, immLoadStoreLane, 2, 4},
	OpcodeVecV128Store64Lane: {"v128.store64_lane", sI32V128, nil, FeatureSIMD, immLoadStoreLane, 3, 2},

	OpcodeVecV128Const: {"v128.const", nil, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecI8x16Shuffle: {"i8x16.shuffle", sV128V128, sV128, FeatureSIMD, immShuffle, 0, 16},
	OpcodeVecI8x16Swizzle: {"i8x16.swizzle", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecI8x16Splat: {"i8x16.splat", sI32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8Splat: {"i16x8.splat", sI32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4Splat: {"i32x4.splat", sI32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2Splat: {"i64x2.splat", sI64, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Splat: {"f32x4.splat", sF32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Splat: {"f64x2.splat", sF64, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecI8x16ExtractLaneS: {"i8x16.extract_lane_s", sV128, sI32, FeatureSIMD, immLane, 0, 16},
	OpcodeVecI8x16ExtractLaneU: {"i8x16.extract_lane_u", sV128, sI32, FeatureSIMD, immLane, 0, 16},
	OpcodeVecI8x16ReplaceLane:  {"i8x16.replace_lane", sV128I32, sV128, FeatureSIMD, immLane, 0, 16},
	OpcodeVecI16x8ExtractLaneS: {"i16x8.extract_lane_s", sV128, sI32, FeatureSIMD, immLane, 0, 8},
	OpcodeVecI16x8ExtractLaneU: {"i16x8.extract_lane_u", sV128, sI32, FeatureSIMD, immLane, 0, 8},
	OpcodeVecI16x8ReplaceLane:  {"i16x8.replace_lane", sV128I32, sV128, FeatureSIMD, immLane, 0, 8},
	OpcodeVecI32x4ExtractLane:  {"i32x4.extract_lane", sV128, sI32, FeatureSIMD, immLane, 0, 4},
	OpcodeVecI32x4ReplaceLane:  {"i32x4.replace_lane", sV128I32, sV128, FeatureSIMD, immLane, 0, 4},
	OpcodeVecI64x2ExtractLane:  {"i64x2.extract_lane", sV128, sI64, FeatureSIMD, immLane, 0, 2},
	OpcodeVecI64x2ReplaceLane:  {"i64x2.replace_lane", sV128I64, sV128, FeatureSIMD, immLane, 0, 2},
	OpcodeVecF32x4ExtractLane:  {"f32x4.extract_lane", sV128, sF32, FeatureSIMD, immLane, 0, 4},
	OpcodeVecF32x4ReplaceLane:  {"f32x4.replace_lane", sV128F32, sV128, FeatureSIMD, immLane, 0, 4},
	OpcodeVecF64x2ExtractLane:  {"f64x2.extract_lane", sV128, sF64, FeatureSIMD, immLane, 0, 2},
	OpcodeVecF64x2ReplaceLane:  {"f64x2.replace_lane", sV128F64, sV128, FeatureSIMD, immLane, 0, 2},

	OpcodeVecI8x16Eq:  {"i8x16.eq", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16Ne:  {"i8x16.ne", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16LtS: {"i8x16.lt_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16LtU: {"i8x16.lt_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16GtS: {"i8x16.gt_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16GtU: {"i8x16.gt_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16LeS: {"i8x16.le_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16LeU: {"i8x16.le_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16GeS: {"i8x16.ge_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16GeU: {"i8x16.ge_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecI16x8Eq:  {"i16x8.eq", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8Ne:  {"i16x8.ne", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8LtS: {"i16x8.lt_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8LtU: {"i16x8.lt_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8GtS: {"i16x8.gt_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8GtU: {"i16x8.gt_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8LeS: {"i16x8.le_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8LeU: {"i16x8.le_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8GeS: {"i16x8.ge_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8GeU: {"i16x8.ge_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecI32x4Eq:  {"i32x4.eq", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4Ne:  {"i32x4.ne", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4LtS: {"i32x4.lt_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4LtU: {"i32x4.lt_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4GtS: {"i32x4.gt_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4GtU: {"i32x4.gt_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4LeS: {"i32x4.le_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4LeU: {"i32x4.le_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4GeS: {"i32x4.ge_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4GeU: {"i32x4.ge_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecF32x4Eq: {"f32x4.eq", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Ne: {"f32x4.ne", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Lt: {"f32x4.lt", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Gt: {"f32x4.gt", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Le: {"f32x4.le", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Ge: {"f32x4.ge", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecF64x2Eq: {"f64x2.eq", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Ne: {"f64x2.ne", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Lt: {"f64x2.lt", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Gt: {"f64x2.gt", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Le: {"f64x2.le", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Ge: {"f64x2.ge", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecV128Not:       {"v128.not", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecV128And:       {"v128.and", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecV128AndNot:    {"v128.andnot", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecV128Or:        {"v128.or", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecV128Xor:       {"v128.xor", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecV128Bitselect: {"v128.bitselect", sV3, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecV128AnyTrue:   {"v128.any_true", sV128, sI32, FeatureSIMD, immNone, 0, 0},

	OpcodeVecF32x4DemoteF64x2Zero: {"f32x4.demote_f64x2_zero", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2PromoteLowF32x4: {"f64x2.promote_low_f32x4", sV128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecI8x16Abs:          {"i8x16.abs", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16Neg:          {"i8x16.neg", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16Popcnt:       {"i8x16.popcnt", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16AllTrue:      {"i8x16.all_true", sV128, sI32, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16BitMask:      {"i8x16.bitmask", sV128, sI32, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16NarrowI16x8S: {"i8x16.narrow_i16x8_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16NarrowI16x8U: {"i8x16.narrow_i16x8_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16Shl:          {"i8x16.shl", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16ShrS:         {"i8x16.shr_s", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16ShrU:         {"i8x16.shr_u", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16Add:          {"i8x16.add", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16AddSatS:      {"i8x16.add_sat_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16AddSatU:      {"i8x16.add_sat_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16Sub:          {"i8x16.sub", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16SubSatS:      {"i8x16.sub_sat_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16SubSatU:      {"i8x16.sub_sat_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16MinS:         {"i8x16.min_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16MinU:         {"i8x16.min_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16MaxS:         {"i8x16.max_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16MaxU:         {"i8x16.max_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI8x16AvgrU:        {"i8x16.avgr_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecF32x4Ceil:    {"f32x4.ceil", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Floor:   {"f32x4.floor", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Trunc:   {"f32x4.trunc", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Nearest: {"f32x4.nearest", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Ceil:    {"f64x2.ceil", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Floor:   {"f64x2.floor", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Trunc:   {"f64x2.trunc", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Nearest: {"f64x2.nearest", sV128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecI16x8ExtaddPairwiseI8x16S: {"i16x8.extadd_pairwise_i8x16_s", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8ExtaddPairwiseI8x16U: {"i16x8.extadd_pairwise_i8x16_u", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ExtaddPairwiseI16x8S: {"i32x4.extadd_pairwise_i16x8_s", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ExtaddPairwiseI16x8U: {"i32x4.extadd_pairwise_i16x8_u", sV128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecI16x8Abs:              {"i16x8.abs", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8Neg:              {"i16x8.neg", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8Q15mulrSatS:      {"i16x8.q15mulr_sat_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8AllTrue:          {"i16x8.all_true", sV128, sI32, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8BitMask:          {"i16x8.bitmask", sV128, sI32, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8NarrowI32x4S:     {"i16x8.narrow_i32x4_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8NarrowI32x4U:     {"i16x8.narrow_i32x4_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8ExtendLowI8x16S:  {"i16x8.extend_low_i8x16_s", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8ExtendHighI8x16S: {"i16x8.extend_high_i8x16_s", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8ExtendLowI8x16U:  {"i16x8.extend_low_i8x16_u", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8ExtendHighI8x16U: {"i16x8.extend_high_i8x16_u", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8Shl:              {"i16x8.shl", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8ShrS:             {"i16x8.shr_s", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8ShrU:             {"i16x8.shr_u", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8Add:              {"i16x8.add", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8AddSatS:          {"i16x8.add_sat_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8AddSatU:          {"i16x8.add_sat_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8Sub:              {"i16x8.sub", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8SubSatS:          {"i16x8.sub_sat_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8SubSatU:          {"i16x8.sub_sat_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8Mul:              {"i16x8.mul", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8MinS:             {"i16x8.min_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8MinU:             {"i16x8.min_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8MaxS:             {"i16x8.max_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8MaxU:             {"i16x8.max_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8AvgrU:            {"i16x8.avgr_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8ExtmulLowI8x16S:  {"i16x8.extmul_low_i8x16_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8ExtmulHighI8x16S: {"i16x8.extmul_high_i8x16_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8ExtmulLowI8x16U:  {"i16x8.extmul_low_i8x16_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI16x8ExtmulHighI8x16U: {"i16x8.extmul_high_i8x16_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecI32x4Abs:              {"i32x4.abs", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4Neg:              {"i32x4.neg", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4AllTrue:          {"i32x4.all_true", sV128, sI32, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4BitMask:          {"i32x4.bitmask", sV128, sI32, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ExtendLowI16x8S:  {"i32x4.extend_low_i16x8_s", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ExtendHighI16x8S: {"i32x4.extend_high_i16x8_s", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ExtendLowI16x8U:  {"i32x4.extend_low_i16x8_u", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ExtendHighI16x8U: {"i32x4.extend_high_i16x8_u", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4Shl:              {"i32x4.shl", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ShrS:             {"i32x4.shr_s", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ShrU:             {"i32x4.shr_u", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4Add:              {"i32x4.add", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4Sub:              {"i32x4.sub", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4Mul:              {"i32x4.mul", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4MinS:             {"i32x4.min_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4MinU:             {"i32x4.min_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4MaxS:             {"i32x4.max_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4MaxU:             {"i32x4.max_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4DotI16x8S:        {"i32x4.dot_i16x8_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ExtmulLowI16x8S:  {"i32x4.extmul_low_i16x8_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ExtmulHighI16x8S: {"i32x4.extmul_high_i16x8_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ExtmulLowI16x8U:  {"i32x4.extmul_low_i16x8_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4ExtmulHighI16x8U: {"i32x4.extmul_high_i16x8_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecI64x2Abs:              {"i64x2.abs", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2Neg:              {"i64x2.neg", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2AllTrue:          {"i64x2.all_true", sV128, sI32, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2BitMask:          {"i64x2.bitmask", sV128, sI32, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2ExtendLowI32x4S:  {"i64x2.extend_low_i32x4_s", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2ExtendHighI32x4S: {"i64x2.extend_high_i32x4_s", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2ExtendLowI32x4U:  {"i64x2.extend_low_i32x4_u", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2ExtendHighI32x4U: {"i64x2.extend_high_i32x4_u", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2Shl:              {"i64x2.shl", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2ShrS:             {"i64x2.shr_s", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2ShrU:             {"i64x2.shr_u", sV128I32, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2Add:              {"i64x2.add", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2Sub:              {"i64x2.sub", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2Mul:              {"i64x2.mul", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2Eq:               {"i64x2.eq", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2Ne:               {"i64x2.ne", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2LtS:              {"i64x2.lt_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2GtS:              {"i64x2.gt_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2LeS:              {"i64x2.le_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2GeS:              {"i64x2.ge_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2ExtmulLowI32x4S:  {"i64x2.extmul_low_i32x4_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2ExtmulHighI32x4S: {"i64x2.extmul_high_i32x4_s", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2ExtmulLowI32x4U:  {"i64x2.extmul_low_i32x4_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI64x2ExtmulHighI32x4U: {"i64x2.extmul_high_i32x4_u", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecF32x4Abs:  {"f32x4.abs", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Neg:  {"f32x4.neg", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Sqrt: {"f32x4.sqrt", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Add:  {"f32x4.add", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Sub:  {"f32x4.sub", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Mul:  {"f32x4.mul", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Div:  {"f32x4.div", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Min:  {"f32x4.min", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Max:  {"f32x4.max", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Pmin: {"f32x4.pmin", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4Pmax: {"f32x4.pmax", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecF64x2Abs:  {"f64x2.abs", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Neg:  {"f64x2.neg", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Sqrt: {"f64x2.sqrt", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Add:  {"f64x2.add", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Sub:  {"f64x2.sub", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Mul:  {"f64x2.mul", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Div:  {"f64x2.div", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Min:  {"f64x2.min", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Max:  {"f64x2.max", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Pmin: {"f64x2.pmin", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2Pmax: {"f64x2.pmax", sV128V128, sV128, FeatureSIMD, immNone, 0, 0},

	OpcodeVecI32x4TruncSatF32x4S:     {"i32x4.trunc_sat_f32x4_s", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4TruncSatF32x4U:     {"i32x4.trunc_sat_f32x4_u", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4ConvertI32x4S:      {"f32x4.convert_i32x4_s", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF32x4ConvertI32x4U:      {"f32x4.convert_i32x4_u", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4TruncSatF64x2SZero: {"i32x4.trunc_sat_f64x2_s_zero", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecI32x4TruncSatF64x2UZero: {"i32x4.trunc_sat_f64x2_u_zero", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2ConvertLowI32x4S:   {"f64x2.convert_low_i32x4_s", sV128, sV128, FeatureSIMD, immNone, 0, 0},
	OpcodeVecF64x2ConvertLowI32x4U:   {"f64x2.convert_low_i32x4_u", sV128, sV128, FeatureSIMD, immNone, 0, 0},

	// Atomics.
	OpcodeMemoryAtomicNotify: {"memory.atomic.notify", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeMemoryAtomicWait32: {"memory.atomic.wait32", sI32I32I64, sI32, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeMemoryAtomicWait64: {"memory.atomic.wait64", sI32I64I64, sI32, FeatureAtomics, immAtomicLoadStore, 3, 0},
	OpcodeAtomicFence:        {"atomic.fence", nil, nil, FeatureAtomics, immNone, 0, 0},

	OpcodeI32AtomicLoad:    {"i32.atomic.load", sI32, sI32, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeI64AtomicLoad:    {"i64.atomic.load", sI32, sI64, FeatureAtomics, immAtomicLoadStore, 3, 0},
	OpcodeI32AtomicLoad8U:  {"i32.atomic.load8_u", sI32, sI32, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI32AtomicLoad16U: {"i32.atomic.load16_u", sI32, sI32, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicLoad8U:  {"i64.atomic.load8_u", sI32, sI64, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI64AtomicLoad16U: {"i64.atomic.load16_u", sI32, sI64, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicLoad32U: {"i64.atomic.load32_u", sI32, sI64, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeI32AtomicStore:   {"i32.atomic.store", sI32I32, nil, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeI64AtomicStore:   {"i64.atomic.store", sI32I64, nil, FeatureAtomics, immAtomicLoadStore, 3, 0},
	OpcodeI32AtomicStore8:  {"i32.atomic.store8", sI32I32, nil, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI32AtomicStore16: {"i32.atomic.store16", sI32I32, nil, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicStore8:  {"i64.atomic.store8", sI32I64, nil, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI64AtomicStore16: {"i64.atomic.store16", sI32I64, nil, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicStore32: {"i64.atomic.store32", sI32I64, nil, FeatureAtomics, immAtomicLoadStore, 2, 0},

	OpcodeI32AtomicRmwAdd:    {"i32.atomic.rmw.add", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeI64AtomicRmwAdd:    {"i64.atomic.rmw.add", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 3, 0},
	OpcodeI32AtomicRmw8AddU:  {"i32.atomic.rmw8.add_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI32AtomicRmw16AddU: {"i32.atomic.rmw16.add_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw8AddU:  {"i64.atomic.rmw8.add_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI64AtomicRmw16AddU: {"i64.atomic.rmw16.add_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw32AddU: {"i64.atomic.rmw32.add_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 2, 0},

	OpcodeI32AtomicRmwSub:    {"i32.atomic.rmw.sub", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeI64AtomicRmwSub:    {"i64.atomic.rmw.sub", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 3, 0},
	OpcodeI32AtomicRmw8SubU:  {"i32.atomic.rmw8.sub_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI32AtomicRmw16SubU: {"i32.atomic.rmw16.sub_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw8SubU:  {"i64.atomic.rmw8.sub_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI64AtomicRmw16SubU: {"i64.atomic.rmw16.sub_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw32SubU: {"i64.atomic.rmw32.sub_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 2, 0},

	OpcodeI32AtomicRmwAnd:    {"i32.atomic.rmw.and", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeI64AtomicRmwAnd:    {"i64.atomic.rmw.and", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 3, 0},
	OpcodeI32AtomicRmw8AndU:  {"i32.atomic.rmw8.and_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI32AtomicRmw16AndU: {"i32.atomic.rmw16.and_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw8AndU:  {"i64.atomic.rmw8.and_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI64AtomicRmw16AndU: {"i64.atomic.rmw16.and_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw32AndU: {"i64.atomic.rmw32.and_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 2, 0},

	OpcodeI32AtomicRmwOr:    {"i32.atomic.rmw.or", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeI64AtomicRmwOr:    {"i64.atomic.rmw.or", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 3, 0},
	OpcodeI32AtomicRmw8OrU:  {"i32.atomic.rmw8.or_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI32AtomicRmw16OrU: {"i32.atomic.rmw16.or_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw8OrU:  {"i64.atomic.rmw8.or_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI64AtomicRmw16OrU: {"i64.atomic.rmw16.or_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw32OrU: {"i64.atomic.rmw32.or_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 2, 0},

	OpcodeI32AtomicRmwXor:    {"i32.atomic.rmw.xor", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeI64AtomicRmwXor:    {"i64.atomic.rmw.xor", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 3, 0},
	OpcodeI32AtomicRmw8XorU:  {"i32.atomic.rmw8.xor_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI32AtomicRmw16XorU: {"i32.atomic.rmw16.xor_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw8XorU:  {"i64.atomic.rmw8.xor_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI64AtomicRmw16XorU: {"i64.atomic.rmw16.xor_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw32XorU: {"i64.atomic.rmw32.xor_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 2, 0},

	OpcodeI32AtomicRmwXchg:    {"i32.atomic.rmw.xchg", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeI64AtomicRmwXchg:    {"i64.atomic.rmw.xchg", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 3, 0},
	OpcodeI32AtomicRmw8XchgU:  {"i32.atomic.rmw8.xchg_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI32AtomicRmw16XchgU: {"i32.atomic.rmw16.xchg_u", sI32I32, sI32, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw8XchgU:  {"i64.atomic.rmw8.xchg_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI64AtomicRmw16XchgU: {"i64.atomic.rmw16.xchg_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw32XchgU: {"i64.atomic.rmw32.xchg_u", sI32I64, sI64, FeatureAtomics, immAtomicLoadStore, 2, 0},

	OpcodeI32AtomicRmwCmpxchg:    {"i32.atomic.rmw.cmpxchg", sI32I32I32, sI32, FeatureAtomics, immAtomicLoadStore, 2, 0},
	OpcodeI64AtomicRmwCmpxchg:    {"i64.atomic.rmw.cmpxchg", sI32I64I64, sI64, FeatureAtomics, immAtomicLoadStore, 3, 0},
	OpcodeI32AtomicRmw8CmpxchgU:  {"i32.atomic.rmw8.cmpxchg_u", sI32I32I32, sI32, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI32AtomicRmw16CmpxchgU: {"i32.atomic.rmw16.cmpxchg_u", sI32I32I32, sI32, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw8CmpxchgU:  {"i64.atomic.rmw8.cmpxchg_u", sI32I64I64, sI64, FeatureAtomics, immAtomicLoadStore, 0, 0},
	OpcodeI64AtomicRmw16CmpxchgU: {"i64.atomic.rmw16.cmpxchg_u", sI32I64I64, sI64, FeatureAtomics, immAtomicLoadStore, 1, 0},
	OpcodeI64AtomicRmw32CmpxchgU: {"i64.atomic.rmw32.cmpxchg_u", sI32I64I64, sI64, FeatureAtomics, immAtomicLoadStore, 2, 0},
}
