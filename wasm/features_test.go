package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeatures_ZeroIsInvalid(t *testing.T) {
	f := Features(0)
	require.False(t, f.Get(FeatureMVP))
	require.EqualError(t, f.Require(FeatureMVP), "feature mvp is disabled")
}

func TestFeatures_SetGet(t *testing.T) {
	f := Features(0).Set(FeatureSignExtensionOps, true)
	require.True(t, f.Get(FeatureSignExtensionOps))
	require.False(t, f.Get(FeatureMultiValue))
	require.NoError(t, f.Require(FeatureSignExtensionOps))

	f = f.Set(FeatureSignExtensionOps, false)
	require.False(t, f.Get(FeatureSignExtensionOps))
}

func TestFeatures_Require(t *testing.T) {
	tests := []struct {
		feature     Features
		expectedErr string
	}{
		{feature: FeatureAtomics, expectedErr: "feature atomics is disabled"},
		{feature: FeatureBulkMemoryOperations, expectedErr: "feature bulk-memory-operations is disabled"},
		{feature: FeatureExceptionHandling, expectedErr: "feature exception-handling is disabled"},
		{feature: FeatureMultiValue, expectedErr: "feature multi-value is disabled"},
		{feature: FeatureMutableGlobals, expectedErr: "feature mutable-globals is disabled"},
		{feature: FeatureNonTrappingFloatToInt, expectedErr: "feature nontrapping-float-to-int is disabled"},
		{feature: FeatureReferenceTypes, expectedErr: "feature reference-types is disabled"},
		{feature: FeatureSIMD, expectedErr: "feature simd is disabled"},
		{feature: FeatureSharedTables, expectedErr: "feature shared-tables is disabled"},
		{feature: FeatureSignExtensionOps, expectedErr: "feature sign-extension-ops is disabled"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.feature.String(), func(t *testing.T) {
			require.EqualError(t, Features(0).Require(tc.feature), tc.expectedErr)
			require.NoError(t, FeaturesAll.Require(tc.feature))
		})
	}
}

func TestFeatures_String(t *testing.T) {
	require.Equal(t, "", Features(0).String())
	require.Equal(t, "mvp", FeatureMVP.String())
	require.Equal(t, "mvp|mutable-globals", Features20191205.String())
	require.Equal(t, "mvp|simd|sign-extension-ops",
		(FeatureMVP | FeatureSIMD | FeatureSignExtensionOps).String())
}

func TestFeatures_Presets(t *testing.T) {
	require.True(t, Features20191205.Get(FeatureMVP))
	require.True(t, Features20191205.Get(FeatureMutableGlobals))
	require.False(t, Features20191205.Get(FeatureSignExtensionOps))

	// The strict-atomics policy flag restricts rather than extends, so it is not part
	// of FeaturesAll.
	require.False(t, FeaturesAll.Get(FeatureRequireSharedMemoryForAtomics))
}
