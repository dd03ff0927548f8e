package wasm

import "strings"

// controlKind discriminates the frames of the control stack.
type controlKind byte

const (
	controlFunction controlKind = iota
	controlBlock
	controlIfThen
	controlIfElse
	controlLoop
	controlTry
	controlCatch
)

// controlFrame is one active structured instruction. params is the tuple a branch to
// this frame consumes: the block type's results for every kind except loop, where a
// branch re-enters the loop and consumes the block type's params instead.
type controlFrame struct {
	kind           controlKind
	outerStackSize int
	params         []ValueType
	results        []ValueType
	// elseParams is the tuple the else arm of an if begins with.
	elseParams []ValueType
	// isReachable is cleared after an unconditional control transfer; while clear, pops
	// below outerStackSize yield the bottom type instead of underflowing.
	isReachable bool
}

// funcValidator is the abstract interpreter over one function body: a symbolic operand
// stack of value types and a stack of control frames. It is owned by exactly one
// CodeValidationStream and never shared.
type funcValidator struct {
	module          *Module
	enabledFeatures Features
	policy          ValidationPolicy
	functionType    *FunctionType

	// Index spaces snapshotted from the module, imports first.
	functions  []Index
	globals    []*GlobalType
	memories   []*MemoryType
	tables     []*TableType
	exceptions []*ExceptionType

	locals       []ValueType
	controlStack []controlFrame
	stack        []ValueType
}

func newFuncValidator(m *Module, functionType *FunctionType, code *Code, enabledFeatures Features, policy ValidationPolicy) (*funcValidator, error) {
	if err := validateValueTypes(enabledFeatures, code.LocalTypes); err != nil {
		return nil, err
	}

	v := &funcValidator{
		module:          m,
		enabledFeatures: enabledFeatures,
		policy:          policy,
		functionType:    functionType,
	}
	v.functions, v.globals, v.memories, v.tables, v.exceptions = m.allDeclarations()

	v.locals = make([]ValueType, 0, len(functionType.Params)+len(code.LocalTypes))
	v.locals = append(v.locals, functionType.Params...)
	v.locals = append(v.locals, code.LocalTypes...)

	v.pushControlFrame(controlFunction, functionType.Results, functionType.Results, nil)
	return v, nil
}

// step validates a single operator. The caller guarantees a non-empty control stack.
func (v *funcValidator) step(op *Operator) error {
	switch op.Opcode {
	case OpcodeUnreachable:
		v.enterUnreachable()
		return nil

	case OpcodeNop:
		return nil

	case OpcodeBlock:
		bt, err := v.blockType(op.Block)
		if err != nil {
			return err
		}
		if err = v.popOperands("block arguments", bt.Params); err != nil {
			return err
		}
		v.pushControlFrame(controlBlock, bt.Results, bt.Results, nil)
		return v.pushOperands(bt.Params)

	case OpcodeLoop:
		bt, err := v.blockType(op.Block)
		if err != nil {
			return err
		}
		if err = v.popOperands("loop arguments", bt.Params); err != nil {
			return err
		}
		v.pushControlFrame(controlLoop, bt.Params, bt.Results, nil)
		return v.pushOperands(bt.Params)

	case OpcodeIf:
		bt, err := v.blockType(op.Block)
		if err != nil {
			return err
		}
		if _, err = v.popOperand("if condition", ValueTypeI32); err != nil {
			return err
		}
		if err = v.popOperands("if arguments", bt.Params); err != nil {
			return err
		}
		v.pushControlFrame(controlIfThen, bt.Results, bt.Results, bt.Params)
		return v.pushOperands(bt.Params)

	case OpcodeElse:
		frame := v.innerFrame()
		if frame.kind != controlIfThen {
			return validationErrorf("else only allowed in if context")
		}
		if err := v.popOperands("if result", frame.results); err != nil {
			return err
		}
		if err := v.checkStackEmptyAtEndOfControlStructure(); err != nil {
			return err
		}
		frame.kind = controlIfElse
		frame.isReachable = true
		return v.pushOperands(frame.elseParams)

	case OpcodeEnd:
		frame := v.innerFrame()
		if frame.kind == controlTry && v.policy.TryRequiresCatch {
			return validationErrorf("end may not occur in try context")
		}
		if frame.kind == controlIfThen && !valueTypesEqual(frame.results, frame.elseParams) {
			return validationErrorf("else-less if must have identity signature")
		}
		results := frame.results
		if err := v.popOperands("end result", results); err != nil {
			return err
		}
		if err := v.checkStackEmptyAtEndOfControlStructure(); err != nil {
			return err
		}
		v.controlStack = v.controlStack[:len(v.controlStack)-1]
		if len(v.controlStack) > 0 {
			return v.pushOperands(results)
		}
		return nil

	case OpcodeTry:
		if err := v.requireFeature("try", FeatureExceptionHandling); err != nil {
			return err
		}
		bt, err := v.blockType(op.Block)
		if err != nil {
			return err
		}
		if err = v.popOperands("try arguments", bt.Params); err != nil {
			return err
		}
		v.pushControlFrame(controlTry, bt.Results, bt.Results, nil)
		return v.pushOperands(bt.Params)

	case OpcodeCatch:
		if err := v.requireFeature("catch", FeatureExceptionHandling); err != nil {
			return err
		}
		et, err := v.exceptionTypeAt(op.Index)
		if err != nil {
			return err
		}
		if err = v.catchTransition(); err != nil {
			return err
		}
		return v.pushOperands(et.Params)

	case OpcodeCatchAll:
		if err := v.requireFeature("catch_all", FeatureExceptionHandling); err != nil {
			return err
		}
		return v.catchTransition()

	case OpcodeThrow:
		if err := v.requireFeature("throw", FeatureExceptionHandling); err != nil {
			return err
		}
		et, err := v.exceptionTypeAt(op.Index)
		if err != nil {
			return err
		}
		if err = v.popOperands("exception arguments", et.Params); err != nil {
			return err
		}
		v.enterUnreachable()
		return nil

	case OpcodeRethrow:
		if err := v.requireFeature("rethrow", FeatureExceptionHandling); err != nil {
			return err
		}
		target, err := v.branchTarget(op.Depth)
		if err != nil {
			return err
		}
		if target.kind != controlCatch {
			return validationErrorf("rethrow must target a catch")
		}
		v.enterUnreachable()
		return nil

	case OpcodeBr:
		target, err := v.branchTarget(op.Depth)
		if err != nil {
			return err
		}
		if err = v.popOperands("br argument", target.params); err != nil {
			return err
		}
		v.enterUnreachable()
		return nil

	case OpcodeBrIf:
		target, err := v.branchTarget(op.Depth)
		if err != nil {
			return err
		}
		if _, err = v.popOperand("br_if condition", ValueTypeI32); err != nil {
			return err
		}
		if err = v.popOperands("br_if argument", target.params); err != nil {
			return err
		}
		return v.pushOperands(target.params)

	case OpcodeBrTable:
		if _, err := v.popOperand("br_table index", ValueTypeI32); err != nil {
			return err
		}
		defaultTarget, err := v.branchTarget(op.Depth)
		if err != nil {
			return err
		}
		defaultParams := defaultTarget.params
		// Each target must take the same number of parameters as the default target,
		// and the provided arguments must match every target.
		for _, depth := range op.Depths {
			target, err := v.branchTarget(depth)
			if err != nil {
				return err
			}
			if len(target.params) != len(defaultParams) {
				return validationErrorf("br_table targets must all take the same number of parameters")
			}
			if err = v.peekOperands("br_table argument", target.params); err != nil {
				return err
			}
		}
		if err = v.popOperands("br_table argument", defaultParams); err != nil {
			return err
		}
		v.enterUnreachable()
		return nil

	case OpcodeReturn:
		if err := v.popOperands("ret", v.functionType.Results); err != nil {
			return err
		}
		v.enterUnreachable()
		return nil

	case OpcodeCall:
		calleeType, err := v.functionTypeAt(op.Index)
		if err != nil {
			return err
		}
		if err = v.popOperands("call arguments", calleeType.Params); err != nil {
			return err
		}
		return v.pushOperands(calleeType.Results)

	case OpcodeCallIndirect:
		table, err := v.tableTypeAt(op.Index2)
		if err != nil {
			return err
		}
		if table.ElemType != RefTypeFuncref {
			return validationErrorf("call_indirect requires a table element type of funcref")
		}
		calleeType, err := v.module.validateFunctionTypeIndex(op.Index)
		if err != nil {
			return err
		}
		if _, err = v.popOperand("call_indirect function index", ValueTypeI32); err != nil {
			return err
		}
		if err = v.popOperands("call_indirect arguments", calleeType.Params); err != nil {
			return err
		}
		return v.pushOperands(calleeType.Results)

	case OpcodeDrop:
		_, err := v.popOperand("drop", valueTypeAny)
		return err

	case OpcodeSelect:
		return v.selectUntyped()

	case OpcodeTypedSelect:
		return v.selectTyped(op)

	case OpcodeLocalGet:
		lt, err := v.localType(op.Index)
		if err != nil {
			return err
		}
		return v.pushOperand(lt)

	case OpcodeLocalSet:
		lt, err := v.localType(op.Index)
		if err != nil {
			return err
		}
		_, err = v.popOperand("local.set", lt)
		return err

	case OpcodeLocalTee:
		lt, err := v.localType(op.Index)
		if err != nil {
			return err
		}
		operandType, err := v.popOperand("local.tee", lt)
		if err != nil {
			return err
		}
		return v.pushOperand(operandType)

	case OpcodeGlobalGet:
		gt, err := v.globalTypeAt(op.Index)
		if err != nil {
			return err
		}
		return v.pushOperand(gt.ValType)

	case OpcodeGlobalSet:
		gt, err := v.globalTypeAt(op.Index)
		if err != nil {
			return err
		}
		if !gt.Mutable {
			return validationErrorf("attempting to mutate immutable global")
		}
		_, err = v.popOperand("global.set", gt.ValType)
		return err

	case OpcodeTableGet:
		if err := v.requireFeature("table.get", FeatureReferenceTypes); err != nil {
			return err
		}
		table, err := v.tableTypeAt(op.Index)
		if err != nil {
			return err
		}
		if _, err = v.popOperand("table.get", ValueTypeI32); err != nil {
			return err
		}
		return v.pushOperand(asValueType(table.ElemType))

	case OpcodeTableSet:
		if err := v.requireFeature("table.set", FeatureReferenceTypes); err != nil {
			return err
		}
		table, err := v.tableTypeAt(op.Index)
		if err != nil {
			return err
		}
		return v.popOperands("table.set", []ValueType{ValueTypeI32, asValueType(table.ElemType)})

	case OpcodeTableGrow:
		if err := v.requireFeature("table.grow", FeatureReferenceTypes); err != nil {
			return err
		}
		table, err := v.tableTypeAt(op.Index)
		if err != nil {
			return err
		}
		if err = v.popOperands("table.grow", []ValueType{asValueType(table.ElemType), ValueTypeI32}); err != nil {
			return err
		}
		return v.pushOperand(ValueTypeI32)

	case OpcodeTableSize:
		if err := v.requireFeature("table.size", FeatureReferenceTypes); err != nil {
			return err
		}
		if _, err := v.tableTypeAt(op.Index); err != nil {
			return err
		}
		return v.pushOperand(ValueTypeI32)

	case OpcodeTableFill:
		if err := v.requireFeature("table.fill", FeatureReferenceTypes); err != nil {
			return err
		}
		table, err := v.tableTypeAt(op.Index)
		if err != nil {
			return err
		}
		return v.popOperands("table.fill", []ValueType{ValueTypeI32, asValueType(table.ElemType), ValueTypeI32})

	case OpcodeTableInit:
		if err := v.requireFeature("table.init", FeatureBulkMemoryOperations); err != nil {
			return err
		}
		if op.Index >= uint32(len(v.module.ElementSection)) {
			return invalidIndexError("element segment", op.Index, uint32(len(v.module.ElementSection)))
		}
		if _, err := v.tableTypeAt(op.Index2); err != nil {
			return err
		}
		return v.popOperands("table.init", sI32I32I32)

	case OpcodeTableCopy:
		if err := v.requireFeature("table.copy", FeatureBulkMemoryOperations); err != nil {
			return err
		}
		dst, err := v.tableTypeAt(op.Index)
		if err != nil {
			return err
		}
		src, err := v.tableTypeAt(op.Index2)
		if err != nil {
			return err
		}
		if !isSubtype(asValueType(src.ElemType), asValueType(dst.ElemType)) {
			return validationErrorf("source table element type must be a subtype of the destination table element type")
		}
		return v.popOperands("table.copy", sI32I32I32)

	case OpcodeElemDrop:
		if err := v.requireFeature("elem.drop", FeatureBulkMemoryOperations); err != nil {
			return err
		}
		if op.Index >= uint32(len(v.module.ElementSection)) {
			return invalidIndexError("element segment", op.Index, uint32(len(v.module.ElementSection)))
		}
		return nil

	case OpcodeRefFunc:
		if err := v.requireFeature("ref.func", FeatureReferenceTypes); err != nil {
			return err
		}
		if op.Index >= uint32(len(v.functions)) {
			return invalidIndexError("function", op.Index, uint32(len(v.functions)))
		}
		return v.pushOperand(ValueTypeFuncref)
	}

	// Everything else is non-parametric: one table row drives the feature gate, the
	// immediate checks and the stack effect.
	d, ok := operatorDetails[op.Opcode]
	if !ok {
		return validationErrorf("unknown instruction (0x%x)", op.Opcode)
	}
	if err := v.requireFeature(d.name, d.feature); err != nil {
		return err
	}
	if err := v.validateImmediates(op, &d); err != nil {
		return err
	}
	if err := v.popOperands(d.name, d.params); err != nil {
		return err
	}
	return v.pushOperands(d.results)
}

// requireFeature formats feature failures uniformly, ex.
// "i32.extend8_s invalid as feature sign-extension-ops is disabled".
func (v *funcValidator) requireFeature(name string, feature Features) error {
	if err := v.enabledFeatures.Require(feature); err != nil {
		return validationErrorf("%s invalid as %v", name, err)
	}
	return nil
}

// validateImmediates applies the per-operator immediate checks before any stack effect.
func (v *funcValidator) validateImmediates(op *Operator, d *operatorDetail) error {
	switch d.imm {
	case immNone:
		return nil
	case immMemoryIndex:
		if op.Index >= uint32(len(v.memories)) {
			return invalidIndexError("memory", op.Index, uint32(len(v.memories)))
		}
		return nil
	case immLoadStore:
		if len(v.memories) == 0 {
			return validationErrorf("load or store in module without default memory")
		}
		if op.AlignLog2 > d.alignLog2 {
			return validationErrorf("load or store alignment greater than natural alignment")
		}
		return nil
	case immLoadStoreLane:
		if len(v.memories) == 0 {
			return validationErrorf("load or store in module without default memory")
		}
		if op.AlignLog2 > d.alignLog2 {
			return validationErrorf("load or store alignment greater than natural alignment")
		}
		return v.validateLaneIndex(op.LaneIndex, d.lanes)
	case immAtomicLoadStore:
		if len(v.memories) == 0 {
			return validationErrorf("atomic memory operator in module without default memory")
		}
		if v.enabledFeatures.Get(FeatureRequireSharedMemoryForAtomics) && !v.memories[0].Shared {
			return validationErrorf("atomic memory operators require a memory with the shared flag")
		}
		if op.AlignLog2 != d.alignLog2 {
			return validationErrorf("atomic memory operators must have natural alignment")
		}
		return nil
	case immLane:
		return v.validateLaneIndex(op.LaneIndex, d.lanes)
	case immShuffle:
		for _, lane := range op.Lanes {
			if lane >= d.lanes*2 {
				return validationErrorf("shuffle invalid lane index %d", lane)
			}
		}
		return nil
	case immMemoryInit:
		if op.Index >= uint32(len(v.module.DataSection)) {
			return invalidIndexError("data segment", op.Index, uint32(len(v.module.DataSection)))
		}
		if op.Index2 >= uint32(len(v.memories)) {
			return invalidIndexError("memory", op.Index2, uint32(len(v.memories)))
		}
		return nil
	case immDataDrop:
		if op.Index >= uint32(len(v.module.DataSection)) {
			return invalidIndexError("data segment", op.Index, uint32(len(v.module.DataSection)))
		}
		return nil
	case immMemoryCopy:
		if op.Index >= uint32(len(v.memories)) {
			return invalidIndexError("memory", op.Index, uint32(len(v.memories)))
		}
		if op.Index2 >= uint32(len(v.memories)) {
			return invalidIndexError("memory", op.Index2, uint32(len(v.memories)))
		}
		return nil
	}
	panic("BUG: unknown immediate kind")
}

func (v *funcValidator) validateLaneIndex(lane, lanes byte) error {
	if lane >= lanes {
		return validationErrorf("invalid lane index %d (%d lanes)", lane, lanes)
	}
	return nil
}

// selectUntyped implements the MVP select: both operands must be numeric and agree,
// except that bottom types from unreachable code unify with anything. When both
// operands are the bottom type, the result is the bottom type.
func (v *funcValidator) selectUntyped() error {
	if _, err := v.popOperand("select condition", ValueTypeI32); err != nil {
		return err
	}
	falseType, err := v.popOperand("select false value", valueTypeAny)
	if err != nil {
		return err
	}
	trueType, err := v.popOperand("select true value", valueTypeAny)
	if err != nil {
		return err
	}
	if (falseType != valueTypeNone && !isNumericType(falseType)) ||
		(trueType != valueTypeNone && !isNumericType(trueType)) {
		return validationErrorf("non-typed select operands must be numeric types")
	}
	switch {
	case falseType == valueTypeNone:
		return v.pushOperand(trueType)
	case trueType == valueTypeNone:
		return v.pushOperand(falseType)
	case falseType != trueType:
		return validationErrorf("non-typed select operands must have the same numeric type")
	default:
		return v.pushOperand(falseType)
	}
}

// selectTyped implements the reference-types proposal's select with a type immediate.
func (v *funcValidator) selectTyped(op *Operator) error {
	if err := v.requireFeature("typed select", FeatureReferenceTypes); err != nil {
		return err
	}
	if len(op.SelectTypes) != 1 {
		return validationErrorf("typed select must have exactly one result type")
	}
	t := op.SelectTypes[0]
	if err := validateValueType(v.enabledFeatures, t); err != nil {
		return err
	}
	if _, err := v.popOperand("select condition", ValueTypeI32); err != nil {
		return err
	}
	if _, err := v.popOperand("select false value", t); err != nil {
		return err
	}
	if _, err := v.popOperand("select true value", t); err != nil {
		return err
	}
	return v.pushOperand(t)
}

// blockType resolves the type immediate of a structured instruction. A nil signature
// means void. Parameters or multiple results require FeatureMultiValue, checked here
// rather than in validateTypes because the type table is shared with plain function
// signatures.
func (v *funcValidator) blockType(b *BlockSignature) (*FunctionType, error) {
	if b == nil {
		return &FunctionType{}, nil
	}
	switch b.Form {
	case BlockSignatureVoid:
		return &FunctionType{}, nil
	case BlockSignatureResult:
		if err := validateValueType(v.enabledFeatures, b.Result); err != nil {
			return nil, err
		}
		return &FunctionType{Results: []ValueType{b.Result}}, nil
	case BlockSignatureTypeIndex:
		ft, err := v.module.typeAt(b.TypeIndex)
		if err != nil {
			return nil, err
		}
		if len(ft.Params) > 0 {
			if err := v.enabledFeatures.Require(FeatureMultiValue); err != nil {
				return nil, validationErrorf("block params invalid as %v", err)
			}
		}
		if len(ft.Results) > 1 {
			if err := v.enabledFeatures.Require(FeatureMultiValue); err != nil {
				return nil, validationErrorf("multiple block results invalid as %v", err)
			}
		}
		return ft, nil
	}
	panic("BUG: unknown block signature form")
}

// catchTransition closes the current arm of a try and opens a catch arm: the shared
// logic of catch and catch_all.
func (v *funcValidator) catchTransition() error {
	frame := v.innerFrame()
	if err := v.popOperands("try result", frame.results); err != nil {
		return err
	}
	if err := v.checkStackEmptyAtEndOfControlStructure(); err != nil {
		return err
	}
	if frame.kind != controlTry && frame.kind != controlCatch {
		return validationErrorf("catch only allowed in try/catch context")
	}
	frame.kind = controlCatch
	frame.isReachable = true
	return nil
}

func (v *funcValidator) innerFrame() *controlFrame {
	return &v.controlStack[len(v.controlStack)-1]
}

func (v *funcValidator) pushControlFrame(kind controlKind, params, results, elseParams []ValueType) {
	v.controlStack = append(v.controlStack, controlFrame{
		kind:           kind,
		outerStackSize: len(v.stack),
		params:         params,
		results:        results,
		elseParams:     elseParams,
		isReachable:    true,
	})
}

// branchTarget resolves a label depth: depth 0 is the innermost frame.
func (v *funcValidator) branchTarget(depth uint32) (*controlFrame, error) {
	if depth >= uint32(len(v.controlStack)) {
		return nil, validationErrorf("invalid branch depth %d, must be less than %d", depth, len(v.controlStack))
	}
	return &v.controlStack[uint32(len(v.controlStack))-depth-1], nil
}

// enterUnreachable truncates the operand stack to the innermost frame's floor and marks
// the frame unreachable. Until the frame ends, pops below the floor yield the bottom
// type.
func (v *funcValidator) enterUnreachable() {
	frame := v.innerFrame()
	v.stack = v.stack[:frame.outerStackSize]
	frame.isReachable = false
}

func (v *funcValidator) checkStackEmptyAtEndOfControlStructure() error {
	frame := v.innerFrame()
	if len(v.stack) == frame.outerStackSize {
		return nil
	}
	names := make([]string, 0, len(v.stack)-frame.outerStackSize)
	for _, t := range v.stack[frame.outerStackSize:] {
		names = append(names, ValueTypeName(t))
	}
	return validationErrorf("stack was not empty at end of control structure: %s", strings.Join(names, ", "))
}

// peekOperand validates the operand at the given depth against expectedType without
// removing it. Below the innermost frame's floor, an unreachable frame yields the
// bottom type, which satisfies every expectation; a reachable frame underflows.
func (v *funcValidator) peekOperand(context string, depth int, expectedType ValueType) (ValueType, error) {
	frame := v.innerFrame()
	var actualType ValueType
	switch {
	case len(v.stack) > frame.outerStackSize+depth:
		actualType = v.stack[len(v.stack)-depth-1]
	case !frame.isReachable:
		actualType = valueTypeNone
	default:
		return 0, validationErrorf("type mismatch: expected %s but stack was empty in %s operand",
			ValueTypeName(expectedType), context)
	}

	if !isSubtype(actualType, expectedType) {
		return 0, validationErrorf("type mismatch: expected %s but got %s in %s operand",
			ValueTypeName(expectedType), ValueTypeName(actualType), context)
	}
	return actualType, nil
}

// popOperand is peekOperand at depth zero, removing the operand unless the stack is
// already at the frame's floor.
func (v *funcValidator) popOperand(context string, expectedType ValueType) (ValueType, error) {
	actualType, err := v.peekOperand(context, 0, expectedType)
	if err != nil {
		return 0, err
	}
	if len(v.stack) > v.innerFrame().outerStackSize {
		v.stack = v.stack[:len(v.stack)-1]
	}
	return actualType, nil
}

// popOperands pops a tuple in reverse: the last type in the tuple is on top.
func (v *funcValidator) popOperands(context string, expectedTypes []ValueType) error {
	for i := len(expectedTypes) - 1; i >= 0; i-- {
		if _, err := v.popOperand(context, expectedTypes[i]); err != nil {
			return err
		}
	}
	return nil
}

// peekOperands validates a tuple in place without popping.
func (v *funcValidator) peekOperands(context string, expectedTypes []ValueType) error {
	for i, t := range expectedTypes {
		if _, err := v.peekOperand(context, len(expectedTypes)-i-1, t); err != nil {
			return err
		}
	}
	return nil
}

func (v *funcValidator) pushOperand(t ValueType) error {
	if len(v.stack)+1 > v.policy.maxStackValues() {
		return validationErrorf("function may have %d stack values, which exceeds limit %d",
			len(v.stack)+1, v.policy.maxStackValues())
	}
	v.stack = append(v.stack, t)
	return nil
}

func (v *funcValidator) pushOperands(ts []ValueType) error {
	for _, t := range ts {
		if err := v.pushOperand(t); err != nil {
			return err
		}
	}
	return nil
}

func (v *funcValidator) localType(localIndex Index) (ValueType, error) {
	if localIndex >= uint32(len(v.locals)) {
		return 0, invalidIndexError("local", localIndex, uint32(len(v.locals)))
	}
	return v.locals[localIndex], nil
}

func (v *funcValidator) globalTypeAt(globalIndex Index) (*GlobalType, error) {
	if globalIndex >= uint32(len(v.globals)) {
		return nil, invalidIndexError("global", globalIndex, uint32(len(v.globals)))
	}
	return v.globals[globalIndex], nil
}

func (v *funcValidator) tableTypeAt(tableIndex Index) (*TableType, error) {
	if tableIndex >= uint32(len(v.tables)) {
		return nil, invalidIndexError("table", tableIndex, uint32(len(v.tables)))
	}
	return v.tables[tableIndex], nil
}

func (v *funcValidator) exceptionTypeAt(exceptionIndex Index) (*ExceptionType, error) {
	if exceptionIndex >= uint32(len(v.exceptions)) {
		return nil, invalidIndexError("exception", exceptionIndex, uint32(len(v.exceptions)))
	}
	return v.exceptions[exceptionIndex], nil
}

func (v *funcValidator) functionTypeAt(functionIndex Index) (*FunctionType, error) {
	if functionIndex >= uint32(len(v.functions)) {
		return nil, invalidIndexError("function", functionIndex, uint32(len(v.functions)))
	}
	return v.module.typeAt(v.functions[functionIndex])
}
