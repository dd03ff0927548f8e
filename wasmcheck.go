// Package wasmcheck validates structural WebAssembly modules against the WebAssembly
// specification and its recognized proposals. It performs no decoding, compilation or
// execution: a decoder hands it a wasm.Module (or streams one function body at a time
// through wasm.CodeValidationStream), and it either accepts or reports the first rule
// violated.
package wasmcheck

import (
	"github.com/wasmcheck/wasmcheck/wasm"
)

// Validate checks the module's declarations and every function body under the config's
// feature set. A nil config means NewConfig.
//
// It returns nil on success, or a *wasm.ValidationError describing the first violation.
// The module is only read, so concurrent calls over the same module are safe.
func Validate(m *wasm.Module, config *Config) error {
	if config == nil {
		config = NewConfig()
	}
	return m.ValidateWithPolicy(config.enabledFeatures, wasm.ValidationPolicy{
		TryRequiresCatch: config.tryRequiresCatch,
		MaxStackValues:   config.maxStackValues,
	})
}
