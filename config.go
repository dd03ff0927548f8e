package wasmcheck

import (
	"github.com/wasmcheck/wasmcheck/wasm"
)

// Config controls validation behavior, with the default implementation as NewConfig.
type Config struct {
	enabledFeatures  wasm.Features
	tryRequiresCatch bool
	maxStackValues   int
}

// NewConfig validates WebAssembly 1.0 (20191205) modules: the MVP plus mutable global
// import/export. Enable proposals with the WithFeature methods, or everything at once
// with WithFeaturesAll.
func NewConfig() *Config {
	return &Config{
		enabledFeatures:  wasm.Features20191205,
		tryRequiresCatch: true,
	}
}

// clone ensures all fields are copied even if zero.
func (c *Config) clone() *Config {
	return &Config{
		enabledFeatures:  c.enabledFeatures,
		tryRequiresCatch: c.tryRequiresCatch,
		maxStackValues:   c.maxStackValues,
	}
}

// WithFeaturesAll enables every supported proposal.
func (c *Config) WithFeaturesAll() *Config {
	ret := c.clone()
	ret.enabledFeatures = wasm.FeaturesAll
	return ret
}

// WithFeatureMutableGlobals allows mutable globals to be imported and exported. This
// defaults to true as the feature was finished in WebAssembly 1.0 (20191205).
func (c *Config) WithFeatureMutableGlobals(enabled bool) *Config {
	ret := c.clone()
	ret.enabledFeatures = ret.enabledFeatures.Set(wasm.FeatureMutableGlobals, enabled)
	return ret
}

// WithFeatureSignExtensionOps enables sign-extend operations. This defaults to false as
// the feature was not finished in WebAssembly 1.0 (20191205).
//
// See https://github.com/WebAssembly/spec/blob/main/proposals/sign-extension-ops/Overview.md
func (c *Config) WithFeatureSignExtensionOps(enabled bool) *Config {
	ret := c.clone()
	ret.enabledFeatures = ret.enabledFeatures.Set(wasm.FeatureSignExtensionOps, enabled)
	return ret
}

// WithFeatureNonTrappingFloatToInt enables the saturating truncation operators. This
// defaults to false.
//
// See https://github.com/WebAssembly/spec/blob/main/proposals/nontrapping-float-to-int-conversion/Overview.md
func (c *Config) WithFeatureNonTrappingFloatToInt(enabled bool) *Config {
	ret := c.clone()
	ret.enabledFeatures = ret.enabledFeatures.Set(wasm.FeatureNonTrappingFloatToInt, enabled)
	return ret
}

// WithFeatureMultiValue allows functions and blocks to return multiple results, and
// blocks to take parameters. This defaults to false.
//
// See https://github.com/WebAssembly/spec/blob/main/proposals/multi-value/Overview.md
func (c *Config) WithFeatureMultiValue(enabled bool) *Config {
	ret := c.clone()
	ret.enabledFeatures = ret.enabledFeatures.Set(wasm.FeatureMultiValue, enabled)
	return ret
}

// WithFeatureBulkMemoryOperations enables the bulk memory and table operators. This
// defaults to false.
//
// See https://github.com/WebAssembly/spec/blob/main/proposals/bulk-memory-operations/Overview.md
func (c *Config) WithFeatureBulkMemoryOperations(enabled bool) *Config {
	ret := c.clone()
	ret.enabledFeatures = ret.enabledFeatures.Set(wasm.FeatureBulkMemoryOperations, enabled)
	return ret
}

// WithFeatureReferenceTypes enables funcref and anyref values, multiple tables and the
// table and reference operators. This defaults to false.
//
// See https://github.com/WebAssembly/reference-types/blob/master/proposals/reference-types/Overview.md
func (c *Config) WithFeatureReferenceTypes(enabled bool) *Config {
	ret := c.clone()
	ret.enabledFeatures = ret.enabledFeatures.Set(wasm.FeatureReferenceTypes, enabled)
	return ret
}

// WithFeatureSIMD enables the v128 value type and the fixed-width SIMD operators. This
// defaults to false.
//
// See https://github.com/WebAssembly/spec/blob/main/proposals/simd/SIMD.md
func (c *Config) WithFeatureSIMD(enabled bool) *Config {
	ret := c.clone()
	ret.enabledFeatures = ret.enabledFeatures.Set(wasm.FeatureSIMD, enabled)
	return ret
}

// WithFeatureAtomics enables shared memories and the atomic operators. This defaults to
// false.
//
// See https://github.com/WebAssembly/threads/blob/main/proposals/threads/Overview.md
func (c *Config) WithFeatureAtomics(enabled bool) *Config {
	ret := c.clone()
	ret.enabledFeatures = ret.enabledFeatures.Set(wasm.FeatureAtomics, enabled)
	return ret
}

// WithFeatureSharedTables allows tables with the shared flag. This defaults to false.
func (c *Config) WithFeatureSharedTables(enabled bool) *Config {
	ret := c.clone()
	ret.enabledFeatures = ret.enabledFeatures.Set(wasm.FeatureSharedTables, enabled)
	return ret
}

// WithFeatureExceptionHandling enables exception types and the try, catch, throw and
// rethrow operators. This defaults to false.
//
// See https://github.com/WebAssembly/exception-handling/blob/main/proposals/exception-handling/Exceptions.md
func (c *Config) WithFeatureExceptionHandling(enabled bool) *Config {
	ret := c.clone()
	ret.enabledFeatures = ret.enabledFeatures.Set(wasm.FeatureExceptionHandling, enabled)
	return ret
}

// WithFeatureRequireSharedMemoryForAtomics rejects atomic memory operators when the
// default memory is not shared. This defaults to false. Unlike the other feature
// toggles, enabling it makes validation stricter.
func (c *Config) WithFeatureRequireSharedMemoryForAtomics(enabled bool) *Config {
	ret := c.clone()
	ret.enabledFeatures = ret.enabledFeatures.Set(wasm.FeatureRequireSharedMemoryForAtomics, enabled)
	return ret
}

// WithTryRequiresCatch controls whether a try frame may be closed by a bare end. The
// default (true) requires at least one catch or catch_all arm per try.
func (c *Config) WithTryRequiresCatch(enabled bool) *Config {
	ret := c.clone()
	ret.tryRequiresCatch = enabled
	return ret
}

// WithMaxStackValues bounds the operand stack of a single function body. Zero keeps the
// default.
func (c *Config) WithMaxStackValues(max int) *Config {
	ret := c.clone()
	ret.maxStackValues = max
	return ret
}
