package wasm

// Index is the offset in an index space, not necessarily an absolute position in a
// Module section. This is because index spaces are often preceded by a corresponding
// import in Module.ImportSection.
//
// For example, the function index space starts with any ExternTypeFunc in the
// Module.ImportSection followed by the Module.FunctionSection.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-index
type Index = uint32

const (
	// maxMemoryPages is the implicit ceiling on memory limits, in 64KiB pages (4GiB).
	maxMemoryPages = 1 << 16
	// maxTableElems is the implicit ceiling on table limits.
	maxTableElems = 1<<32 - 1
	// maxReturnValues bounds the results of a type used as a function signature. Types
	// used only as block signatures are not subject to this bound.
	maxReturnValues = 16
	// defaultMaxStackValues bounds the operand stack of a single function body unless a
	// ValidationPolicy overrides it.
	defaultMaxStackValues = 1 << 27
)

// Module is a structural WebAssembly module: the input to validation. Decoding from the
// binary or text format is a collaborator's job; the validator only reads this value.
//
// Sections reference each other by Index into an index space, never by pointer, and the
// validator never mutates them, so one Module may back concurrent validations.
//
// See https://www.w3.org/TR/wasm-core-1/#modules%E2%91%A8
type Module struct {
	// TypeSection contains the unique FunctionType of functions imported or defined in
	// this module, and also the signatures referenced by block types.
	TypeSection []*FunctionType

	// ImportSection contains imported functions, tables, memories, globals and exception
	// types. Each import prefixes the index space of its kind.
	ImportSection []*Import

	// FunctionSection contains the index in TypeSection of each function defined in this
	// module. It is index-correlated with CodeSection.
	FunctionSection []Index

	// TableSection contains each table defined in this module.
	TableSection []*TableType

	// MemorySection contains each memory defined in this module.
	MemorySection []*MemoryType

	// GlobalSection contains each global defined in this module.
	GlobalSection []*Global

	// ExceptionSection contains each exception type defined in this module. Requires
	// FeatureExceptionHandling to be non-empty.
	ExceptionSection []*ExceptionType

	// ExportSection contains each export in declaration order. Names must be unique;
	// the validator rejects duplicates.
	ExportSection []*Export

	// StartSection is the index of a function invoked on instantiation. It must have no
	// parameters and no results.
	StartSection *Index

	// ElementSection initializes table elements.
	ElementSection []*ElementSegment

	// CodeSection is index-correlated with FunctionSection and contains each defined
	// function's locals and body.
	CodeSection []*Code

	// DataSection initializes memory contents.
	DataSection []*DataSegment
}

// FunctionType is a possibly empty function signature.
//
// See https://www.w3.org/TR/wasm-core-1/#function-types%E2%91%A0
type FunctionType struct {
	// Params are the possibly empty sequence of value types accepted by a function with
	// this signature.
	Params []ValueType

	// Results are the possibly empty sequence of value types returned by a function with
	// this signature. More than one result requires FeatureMultiValue.
	Results []ValueType
}

func (t *FunctionType) String() string {
	ret := "("
	for i, p := range t.Params {
		if i > 0 {
			ret += ","
		}
		ret += ValueTypeName(p)
	}
	ret += ")->("
	for i, r := range t.Results {
		if i > 0 {
			ret += ","
		}
		ret += ValueTypeName(r)
	}
	return ret + ")"
}

// ExternType classifies imports and exports by the kind of definition they reference.
type ExternType = byte

const (
	ExternTypeFunc      ExternType = 0x00
	ExternTypeTable     ExternType = 0x01
	ExternTypeMemory    ExternType = 0x02
	ExternTypeGlobal    ExternType = 0x03
	ExternTypeException ExternType = 0x04
)

// ExternTypeName returns the canonical name of the externdesc.
func ExternTypeName(et ExternType) string {
	switch et {
	case ExternTypeFunc:
		return "func"
	case ExternTypeTable:
		return "table"
	case ExternTypeMemory:
		return "memory"
	case ExternTypeGlobal:
		return "global"
	case ExternTypeException:
		return "exception"
	}
	return "unknown"
}

// Import is a declaration resolved during instantiation, indicated by Type.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-import
type Import struct {
	Type ExternType
	// Module is the possibly empty primary namespace of this import.
	Module string
	// Name is the possibly empty secondary namespace of this import.
	Name string
	// DescFunc is the index in Module.TypeSection when Type equals ExternTypeFunc.
	DescFunc Index
	// DescTable is the inlined TableType when Type equals ExternTypeTable.
	DescTable *TableType
	// DescMem is the inlined MemoryType when Type equals ExternTypeMemory.
	DescMem *MemoryType
	// DescGlobal is the inlined GlobalType when Type equals ExternTypeGlobal.
	DescGlobal *GlobalType
	// DescException is the inlined ExceptionType when Type equals ExternTypeException.
	DescException *ExceptionType
}

// TableType describes the element type and size constraints of a table.
type TableType struct {
	// ElemType is the type of every element of the table.
	ElemType RefType
	// Min is the minimum element count.
	Min uint32
	// Max is the optional maximum element count; nil means unbounded up to maxTableElems.
	Max *uint32
	// Shared marks the table shareable between threads. Requires FeatureSharedTables and
	// a bounded Max.
	Shared bool
}

// MemoryType describes the size constraints of a memory, in 64KiB pages.
type MemoryType struct {
	// Min is the minimum page count.
	Min uint32
	// Max is the optional maximum page count; nil means unbounded up to maxMemoryPages.
	Max *uint32
	// Shared marks the memory shareable between threads. Requires FeatureAtomics and a
	// bounded Max.
	Shared bool
}

// GlobalType describes the value type and mutability of a global.
type GlobalType struct {
	ValType ValueType
	Mutable bool
}

// Global is a defined global: its type and its initializer.
type Global struct {
	Type *GlobalType
	Init *ConstantExpression
}

// ExceptionType is the parameter tuple thrown with an exception. Requires
// FeatureExceptionHandling.
type ExceptionType struct {
	Params []ValueType
}

// Export names a definition for the host, indicated by Type.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-export
type Export struct {
	Type ExternType
	// Name is what the host refers to this definition as.
	Name string
	// Index is the index of the definition to export; the index space is defined by Type.
	Index Index
}

// ElementSegment initializes a range of table elements, either actively at instantiation
// or passively via table.init.
type ElementSegment struct {
	// Active segments write into TableIndex at OffsetExpr during instantiation. Passive
	// segments (Active false) only apply through table.init.
	Active bool
	// TableIndex is the table an active segment initializes.
	TableIndex Index
	// OffsetExpr is the i32 base offset of an active segment.
	OffsetExpr *ConstantExpression
	// Init are the segment's elements.
	Init []*ElementInit
}

// ElementInit is a single element of an ElementSegment: a function reference, or a null
// reference which is only allowed in passive segments.
type ElementInit struct {
	// Null is true for a ref.null element.
	Null bool
	// FuncIndex is the function whose reference initializes the element when Null is
	// false.
	FuncIndex Index
}

// DataSegment initializes a range of memory, either actively at instantiation or
// passively via memory.init.
type DataSegment struct {
	// Active segments write into MemoryIndex at OffsetExpr during instantiation.
	Active bool
	// MemoryIndex is the memory an active segment initializes.
	MemoryIndex Index
	// OffsetExpr is the i32 base offset of an active segment.
	OffsetExpr *ConstantExpression
	// Init is the raw data.
	Init []byte
}

// Code is an entry in the Module.CodeSection containing the locals and body of a
// defined function.
type Code struct {
	// LocalTypes are any function-scoped variables in insertion order, not including
	// parameters.
	LocalTypes []ValueType
	// Body is the decoded instruction sequence, ending in OpcodeEnd.
	Body []*Operator
}

// allDeclarations returns the complete index spaces for functions (as type indices),
// globals, memories, tables and exception types, imports first.
func (m *Module) allDeclarations() (functions []Index, globals []*GlobalType, memories []*MemoryType, tables []*TableType, exceptions []*ExceptionType) {
	for _, imp := range m.ImportSection {
		switch imp.Type {
		case ExternTypeFunc:
			functions = append(functions, imp.DescFunc)
		case ExternTypeGlobal:
			globals = append(globals, imp.DescGlobal)
		case ExternTypeMemory:
			memories = append(memories, imp.DescMem)
		case ExternTypeTable:
			tables = append(tables, imp.DescTable)
		case ExternTypeException:
			exceptions = append(exceptions, imp.DescException)
		}
	}

	functions = append(functions, m.FunctionSection...)
	for _, g := range m.GlobalSection {
		globals = append(globals, g.Type)
	}
	memories = append(memories, m.MemorySection...)
	tables = append(tables, m.TableSection...)
	exceptions = append(exceptions, m.ExceptionSection...)
	return
}

// importCount returns how many imports of the given kind are in the ImportSection. The
// per-kind counts always sum to len(ImportSection).
func (m *Module) importCount(et ExternType) (count uint32) {
	for _, imp := range m.ImportSection {
		if imp.Type == et {
			count++
		}
	}
	return
}

// typeAt resolves a type index or fails. Used wherever a section references the
// TypeSection by index.
func (m *Module) typeAt(idx Index) (*FunctionType, error) {
	if idx >= uint32(len(m.TypeSection)) {
		return nil, invalidIndexError("type", idx, uint32(len(m.TypeSection)))
	}
	return m.TypeSection[idx], nil
}

// validateLimits checks min against the declared max, or against ceiling when no max is
// declared.
func validateLimits(min uint32, max *uint32, ceiling uint64, context string) error {
	effectiveMax := ceiling
	if max != nil {
		effectiveMax = uint64(*max)
	}
	if uint64(min) > effectiveMax {
		return validationErrorf("disjoint size bounds in %s: min %d exceeds max %d", context, min, effectiveMax)
	}
	if effectiveMax > ceiling {
		return validationErrorf("maximum size %d of %s exceeds limit %d", effectiveMax, context, ceiling)
	}
	return nil
}
