package wasm

// ValidationPolicy holds the knobs that are not WebAssembly proposals but choices a
// host may make about how strictly bodies are checked.
type ValidationPolicy struct {
	// TryRequiresCatch rejects closing a try frame with end: every try must have at
	// least one catch or catch_all arm. The exception-handling proposal has been less
	// strict at times, so this is a policy rather than a rule.
	TryRequiresCatch bool

	// MaxStackValues bounds the operand stack of one function body. Zero means
	// defaultMaxStackValues.
	MaxStackValues int
}

// DefaultValidationPolicy is used by Module.Validate.
var DefaultValidationPolicy = ValidationPolicy{TryRequiresCatch: true}

func (p ValidationPolicy) maxStackValues() int {
	if p.MaxStackValues == 0 {
		return defaultMaxStackValues
	}
	return p.MaxStackValues
}

// Validate checks the whole module, declarations first and then every function body,
// under the enabled features and DefaultValidationPolicy. It returns nil on success or
// a *ValidationError describing the first violation.
func (m *Module) Validate(enabledFeatures Features) error {
	return m.ValidateWithPolicy(enabledFeatures, DefaultValidationPolicy)
}

// ValidateWithPolicy is Validate with an explicit ValidationPolicy.
func (m *Module) ValidateWithPolicy(enabledFeatures Features, policy ValidationPolicy) error {
	if err := m.validateTypes(enabledFeatures); err != nil {
		return err
	}
	if err := m.validateImports(enabledFeatures); err != nil {
		return err
	}
	if err := m.validateFunctionDeclarations(); err != nil {
		return err
	}
	if err := m.validateTables(enabledFeatures); err != nil {
		return err
	}
	if err := m.validateMemories(enabledFeatures); err != nil {
		return err
	}
	if err := m.validateGlobals(enabledFeatures); err != nil {
		return err
	}
	if err := m.validateExceptionTypes(enabledFeatures); err != nil {
		return err
	}
	if err := m.validateExports(enabledFeatures); err != nil {
		return err
	}
	if err := m.validateStartFunction(); err != nil {
		return err
	}
	if err := m.validateElementSegments(); err != nil {
		return err
	}
	if err := m.validateDataSegments(); err != nil {
		return err
	}
	return m.validateCode(enabledFeatures, policy)
}

// validateTypes checks every entry of the TypeSection. The maxReturnValues bound is not
// applied here because block types share this table; it is enforced where a type is
// used as a function signature (validateFunctionTypeIndex).
func (m *Module) validateTypes(enabledFeatures Features) error {
	for _, ft := range m.TypeSection {
		if err := validateValueTypes(enabledFeatures, ft.Params); err != nil {
			return err
		}
		if err := validateValueTypes(enabledFeatures, ft.Results); err != nil {
			return err
		}
		if len(ft.Results) > 1 {
			if err := enabledFeatures.Require(FeatureMultiValue); err != nil {
				return validationErrorf("multiple results invalid as %v", err)
			}
		}
	}
	return nil
}

// validateFunctionTypeIndex resolves a type index used as a function signature,
// applying the maxReturnValues bound that validateTypes deliberately skips.
func (m *Module) validateFunctionTypeIndex(typeIndex Index) (*FunctionType, error) {
	ft, err := m.typeAt(typeIndex)
	if err != nil {
		return nil, err
	}
	if len(ft.Results) > maxReturnValues {
		return nil, validationErrorf("function has %d return values, which exceeds limit %d",
			len(ft.Results), maxReturnValues)
	}
	return ft, nil
}

func (m *Module) validateImports(enabledFeatures Features) error {
	for _, imp := range m.ImportSection {
		switch imp.Type {
		case ExternTypeFunc:
			if _, err := m.validateFunctionTypeIndex(imp.DescFunc); err != nil {
				return err
			}
		case ExternTypeTable:
			if err := m.validateTableType(enabledFeatures, imp.DescTable); err != nil {
				return err
			}
		case ExternTypeMemory:
			if err := m.validateMemoryType(enabledFeatures, imp.DescMem); err != nil {
				return err
			}
		case ExternTypeGlobal:
			if err := validateValueType(enabledFeatures, imp.DescGlobal.ValType); err != nil {
				return err
			}
			if imp.DescGlobal.Mutable {
				if err := enabledFeatures.Require(FeatureMutableGlobals); err != nil {
					return validationErrorf("mutable global import %s.%s invalid as %v", imp.Module, imp.Name, err)
				}
			}
		case ExternTypeException:
			if err := validateValueTypes(enabledFeatures, imp.DescException.Params); err != nil {
				return err
			}
		default:
			return validationErrorf("import %s.%s has an unknown kind (0x%x)", imp.Module, imp.Name, imp.Type)
		}
	}
	return nil
}

func (m *Module) validateFunctionDeclarations() error {
	for _, typeIndex := range m.FunctionSection {
		if _, err := m.validateFunctionTypeIndex(typeIndex); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) validateTableType(enabledFeatures Features, t *TableType) error {
	if err := validateRefType(enabledFeatures, t.ElemType); err != nil {
		return err
	}
	if err := validateLimits(t.Min, t.Max, maxTableElems, "table"); err != nil {
		return err
	}
	if t.Shared {
		if err := enabledFeatures.Require(FeatureSharedTables); err != nil {
			return validationErrorf("shared table invalid as %v", err)
		}
		if t.Max == nil {
			return validationErrorf("shared tables must have a maximum size")
		}
	}
	return nil
}

func (m *Module) validateMemoryType(enabledFeatures Features, t *MemoryType) error {
	if err := validateLimits(t.Min, t.Max, maxMemoryPages, "memory"); err != nil {
		return err
	}
	if t.Shared {
		if err := enabledFeatures.Require(FeatureAtomics); err != nil {
			return validationErrorf("shared memory invalid as %v", err)
		}
		if t.Max == nil {
			return validationErrorf("shared memories must have a maximum size")
		}
	}
	return nil
}

// validateTables validates defined tables and bounds the table count. Only
// FeatureReferenceTypes lifts the one-table limit; the limit counts imports too.
func (m *Module) validateTables(enabledFeatures Features) error {
	for _, t := range m.TableSection {
		if err := m.validateTableType(enabledFeatures, t); err != nil {
			return err
		}
	}
	tableCount := m.importCount(ExternTypeTable) + uint32(len(m.TableSection))
	if tableCount > 1 && !enabledFeatures.Get(FeatureReferenceTypes) {
		return validationErrorf("too many tables")
	}
	return nil
}

// validateMemories validates defined memories. The one-memory limit is unconditional:
// no feature relaxes it.
func (m *Module) validateMemories(enabledFeatures Features) error {
	for _, t := range m.MemorySection {
		if err := m.validateMemoryType(enabledFeatures, t); err != nil {
			return err
		}
	}
	if m.importCount(ExternTypeMemory)+uint32(len(m.MemorySection)) > 1 {
		return validationErrorf("too many memories")
	}
	return nil
}

func (m *Module) validateGlobals(enabledFeatures Features) error {
	for _, g := range m.GlobalSection {
		if err := validateValueType(enabledFeatures, g.Type.ValType); err != nil {
			return err
		}
		if err := m.validateConstantExpression(g.Init, g.Type.ValType, "global initializer expression"); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) validateExceptionTypes(enabledFeatures Features) error {
	if m.importCount(ExternTypeException)+uint32(len(m.ExceptionSection)) > 0 {
		if err := enabledFeatures.Require(FeatureExceptionHandling); err != nil {
			return validationErrorf("exception type invalid as %v", err)
		}
	}
	for _, et := range m.ExceptionSection {
		if err := validateValueTypes(enabledFeatures, et.Params); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) validateExports(enabledFeatures Features) error {
	functions, globals, memories, tables, exceptions := m.allDeclarations()
	exportNames := make(map[string]struct{}, len(m.ExportSection))
	for _, exp := range m.ExportSection {
		switch exp.Type {
		case ExternTypeFunc:
			if exp.Index >= uint32(len(functions)) {
				return invalidIndexError("exported function", exp.Index, uint32(len(functions)))
			}
		case ExternTypeTable:
			if exp.Index >= uint32(len(tables)) {
				return invalidIndexError("exported table", exp.Index, uint32(len(tables)))
			}
		case ExternTypeMemory:
			if exp.Index >= uint32(len(memories)) {
				return invalidIndexError("exported memory", exp.Index, uint32(len(memories)))
			}
		case ExternTypeGlobal:
			if exp.Index >= uint32(len(globals)) {
				return invalidIndexError("exported global", exp.Index, uint32(len(globals)))
			}
			if globals[exp.Index].Mutable {
				if err := enabledFeatures.Require(FeatureMutableGlobals); err != nil {
					return validationErrorf("mutable global export %q invalid as %v", exp.Name, err)
				}
			}
		case ExternTypeException:
			if exp.Index >= uint32(len(exceptions)) {
				return invalidIndexError("exported exception", exp.Index, uint32(len(exceptions)))
			}
		default:
			return validationErrorf("unknown export kind (0x%x)", exp.Type)
		}

		if _, ok := exportNames[exp.Name]; ok {
			return validationErrorf("duplicate export: %s", exp.Name)
		}
		exportNames[exp.Name] = struct{}{}
	}
	return nil
}

func (m *Module) validateStartFunction() error {
	if m.StartSection == nil {
		return nil
	}
	ft, err := m.validateFunctionIndex(*m.StartSection)
	if err != nil {
		return err
	}
	if len(ft.Params) != 0 || len(ft.Results) != 0 {
		return validationErrorf("start function must not have any parameters or results")
	}
	return nil
}

func (m *Module) validateElementSegments() error {
	functions, _, _, tables, _ := m.allDeclarations()
	for _, es := range m.ElementSection {
		if es.Active {
			if es.TableIndex >= uint32(len(tables)) {
				return invalidIndexError("element segment table", es.TableIndex, uint32(len(tables)))
			}
			if tables[es.TableIndex].ElemType != RefTypeFuncref {
				return validationErrorf("active elem segments must be in funcref tables")
			}
			if err := m.validateConstantExpression(es.OffsetExpr, ValueTypeI32, "elem segment base initializer"); err != nil {
				return err
			}
		}
		for _, elem := range es.Init {
			if elem.Null {
				if es.Active {
					return validationErrorf("ref.null is only allowed in passive segments")
				}
			} else if elem.FuncIndex >= uint32(len(functions)) {
				return invalidIndexError("element segment function", elem.FuncIndex, uint32(len(functions)))
			}
		}
	}
	return nil
}

func (m *Module) validateDataSegments() error {
	_, _, memories, _, _ := m.allDeclarations()
	for _, ds := range m.DataSection {
		if !ds.Active {
			continue
		}
		if ds.MemoryIndex >= uint32(len(memories)) {
			return invalidIndexError("data segment memory", ds.MemoryIndex, uint32(len(memories)))
		}
		if err := m.validateConstantExpression(ds.OffsetExpr, ValueTypeI32, "data segment base initializer"); err != nil {
			return err
		}
	}
	return nil
}

// validateCode drives every function body through the streaming validator.
func (m *Module) validateCode(enabledFeatures Features, policy ValidationPolicy) error {
	if len(m.CodeSection) != len(m.FunctionSection) {
		return validationErrorf("code section size %d must equal function section size %d",
			len(m.CodeSection), len(m.FunctionSection))
	}
	for i, code := range m.CodeSection {
		// The type index was already validated by validateFunctionDeclarations.
		functionType := m.TypeSection[m.FunctionSection[i]]
		if err := validateFunction(m, functionType, code, enabledFeatures, policy); err != nil {
			return validationErrorf("invalid function[%d]: %v", i, err)
		}
	}
	return nil
}

// validateFunction checks a single body by streaming its operators through a
// CodeValidationStream.
func validateFunction(m *Module, functionType *FunctionType, code *Code, enabledFeatures Features, policy ValidationPolicy) error {
	s, err := newCodeValidationStream(m, functionType, code, enabledFeatures, policy)
	if err != nil {
		return err
	}
	for _, op := range code.Body {
		if err := s.Step(op); err != nil {
			return err
		}
	}
	return s.Finish()
}
