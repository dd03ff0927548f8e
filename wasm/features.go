package wasm

import (
	"fmt"
	"strings"
)

// Features are the enabled WebAssembly proposals, as a bit flag set.
//
// Validation admits a type or an instruction only when its required feature is enabled,
// even where the stack discipline would otherwise succeed. Enabling more features never
// turns an accepted module into a rejected one, with one deliberate exception:
// FeatureRequireSharedMemoryForAtomics is a strictness policy, not a proposal, and is
// therefore excluded from FeaturesAll.
type Features uint64

const (
	// FeatureMVP covers the WebAssembly 1.0 core: the numeric value types and every
	// operator of the MVP instruction set.
	FeatureMVP Features = 1 << iota

	// FeatureAtomics allows shared memories and the threads proposal's atomic operators.
	//
	// See https://github.com/WebAssembly/threads/blob/main/proposals/threads/Overview.md
	FeatureAtomics

	// FeatureBulkMemoryOperations allows memory.init, data.drop, memory.copy, memory.fill,
	// table.init, elem.drop and table.copy. Passive data and element segments are accepted
	// whether or not this feature is enabled.
	//
	// See https://github.com/WebAssembly/spec/blob/main/proposals/bulk-memory-operations/Overview.md
	FeatureBulkMemoryOperations

	// FeatureExceptionHandling allows exception type declarations and the try, catch,
	// catch_all, throw and rethrow operators.
	//
	// See https://github.com/WebAssembly/exception-handling/blob/main/proposals/exception-handling/Exceptions.md
	FeatureExceptionHandling

	// FeatureMultiValue allows functions and blocks to return multiple results, and
	// blocks to take parameters.
	//
	// See https://github.com/WebAssembly/spec/blob/main/proposals/multi-value/Overview.md
	FeatureMultiValue

	// FeatureMutableGlobals allows mutable globals to be imported and exported.
	//
	// See https://github.com/WebAssembly/mutable-global/blob/master/proposals/mutable-global/Overview.md
	FeatureMutableGlobals

	// FeatureNonTrappingFloatToInt allows the saturating truncation operators
	// (ex. i32.trunc_sat_f32_s).
	//
	// See https://github.com/WebAssembly/spec/blob/main/proposals/nontrapping-float-to-int-conversion/Overview.md
	FeatureNonTrappingFloatToInt

	// FeatureReferenceTypes allows funcref and anyref as value types, anyref tables,
	// multiple tables, typed select and the ref.null, ref.is_null, ref.func, table.get,
	// table.set, table.grow, table.size and table.fill operators.
	//
	// See https://github.com/WebAssembly/reference-types/blob/master/proposals/reference-types/Overview.md
	FeatureReferenceTypes

	// FeatureRequireSharedMemoryForAtomics rejects atomic memory operators when the
	// default memory is not shared. This mirrors the strict reading of the threads
	// proposal; leaving it disabled accepts atomics on unshared memories.
	FeatureRequireSharedMemoryForAtomics

	// FeatureSIMD allows the v128 value type and the fixed-width SIMD operators.
	//
	// See https://github.com/WebAssembly/spec/blob/main/proposals/simd/SIMD.md
	FeatureSIMD

	// FeatureSharedTables allows tables with the shared flag.
	FeatureSharedTables

	// FeatureSignExtensionOps allows the sign-extension operators
	// (ex. i32.extend8_s).
	//
	// See https://github.com/WebAssembly/spec/blob/main/proposals/sign-extension-ops/Overview.md
	FeatureSignExtensionOps
)

// Features20191205 are the features finished in the WebAssembly 1.0 (20191205)
// recommendation: the MVP plus mutable global import/export.
const Features20191205 = FeatureMVP | FeatureMutableGlobals

// FeaturesAll enables every proposal this validator knows, excluding
// FeatureRequireSharedMemoryForAtomics which restricts rather than extends what
// validates.
const FeaturesAll = Features20191205 |
	FeatureAtomics |
	FeatureBulkMemoryOperations |
	FeatureExceptionHandling |
	FeatureMultiValue |
	FeatureNonTrappingFloatToInt |
	FeatureReferenceTypes |
	FeatureSIMD |
	FeatureSharedTables |
	FeatureSignExtensionOps

// Set enables or disables the feature, returning the corresponding updated Features.
func (f Features) Set(feature Features, val bool) Features {
	if val {
		return f | feature
	}
	return f &^ feature
}

// Get returns true if the feature (or group of features) is enabled.
func (f Features) Get(feature Features) bool {
	return f&feature != 0
}

// Require returns an error if the feature (or group of features) is disabled.
func (f Features) Require(feature Features) error {
	if f&feature != feature {
		return fmt.Errorf("feature %s is disabled", feature)
	}
	return nil
}

// String implements fmt.Stringer by returning each enabled feature.
func (f Features) String() string {
	var builder strings.Builder
	for i := Features(1); i != 0; i <<= 1 {
		if f.Get(i) {
			if name := featureName(i); name != "" {
				if builder.Len() > 0 {
					builder.WriteByte('|')
				}
				builder.WriteString(name)
			}
		}
	}
	return builder.String()
}

func featureName(f Features) string {
	switch f {
	case FeatureMVP:
		return "mvp"
	case FeatureAtomics:
		return "atomics"
	case FeatureBulkMemoryOperations:
		return "bulk-memory-operations"
	case FeatureExceptionHandling:
		return "exception-handling"
	case FeatureMultiValue:
		return "multi-value"
	case FeatureMutableGlobals:
		return "mutable-globals"
	case FeatureNonTrappingFloatToInt:
		return "nontrapping-float-to-int"
	case FeatureReferenceTypes:
		return "reference-types"
	case FeatureRequireSharedMemoryForAtomics:
		return "require-shared-memory-for-atomics"
	case FeatureSIMD:
		return "simd"
	case FeatureSharedTables:
		return "shared-tables"
	case FeatureSignExtensionOps:
		return "sign-extension-ops"
	}
	return ""
}
