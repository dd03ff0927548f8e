package wasm

// CodeValidationStream validates one function body as a decoder produces it, one
// operator at a time, so no instruction list has to be materialized first. Feed every
// operator to Step in order, then call Finish.
//
// A stream owns its operand and control stacks and must not be shared between
// goroutines, but separate streams over the same Module are independent.
type CodeValidationStream struct {
	v *funcValidator
}

// NewCodeValidationStream begins validating the body of a function with the given
// signature under DefaultValidationPolicy. It fails if a declared local type is invalid
// under the enabled features.
func NewCodeValidationStream(m *Module, functionType *FunctionType, code *Code, enabledFeatures Features) (*CodeValidationStream, error) {
	return newCodeValidationStream(m, functionType, code, enabledFeatures, DefaultValidationPolicy)
}

func newCodeValidationStream(m *Module, functionType *FunctionType, code *Code, enabledFeatures Features, policy ValidationPolicy) (*CodeValidationStream, error) {
	v, err := newFuncValidator(m, functionType, code, enabledFeatures, policy)
	if err != nil {
		return nil, err
	}
	return &CodeValidationStream{v: v}, nil
}

// Step validates the next operator. Once the end closing the function-level frame has
// been accepted, any further operator fails.
func (s *CodeValidationStream) Step(op *Operator) error {
	if len(s.v.controlStack) == 0 {
		return validationErrorf("expected non-empty control stack in %s", InstructionName(op.Opcode))
	}
	return s.v.step(op)
}

// Finish asserts the body ended cleanly: the end closing the function-level frame must
// have been the last operator.
func (s *CodeValidationStream) Finish() error {
	if len(s.v.controlStack) != 0 {
		return validationErrorf("end of code reached before end of function")
	}
	return nil
}
