package hcl

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type decodeTarget struct {
	URL     string `gwatch:"url"`
	Level   string `gwatch:"level"`
	Retries int    `gwatch:"retries"`
	Secure  bool   `gwatch:"secure"`
}

func TestDecodeArgs_BindsTaggedFields(t *testing.T) {
	t.Parallel()

	target := &decodeTarget{}
	err := (&Decoder{}).DecodeArgs(target, map[string]cty.Value{
		"url":     cty.StringVal("wss://example.com"),
		"retries": cty.NumberIntVal(3),
		"secure":  cty.True,
	})
	require.NoError(t, err)

	require.Equal(t, "wss://example.com", target.URL)
	require.Equal(t, 3, target.Retries)
	require.True(t, target.Secure)
	require.Empty(t, target.Level, "missing arguments keep their zero value")
}

func TestDecodeArgs_ConvertsCompatibleTypes(t *testing.T) {
	t.Parallel()

	// HCL users write bare numbers where modules expect strings; the cty
	// conversion path handles that.
	target := &decodeTarget{}
	err := (&Decoder{}).DecodeArgs(target, map[string]cty.Value{
		"level": cty.NumberIntVal(5),
	})
	require.NoError(t, err)
	require.Equal(t, "5", target.Level)
}

func TestDecodeArgs_UnknownArgument(t *testing.T) {
	t.Parallel()

	err := (&Decoder{}).DecodeArgs(&decodeTarget{}, map[string]cty.Value{
		"nonsense": cty.StringVal("x"),
	})
	require.ErrorContains(t, err, `unsupported argument "nonsense"`)
}

func TestDecodeArgs_NilTarget(t *testing.T) {
	t.Parallel()

	dec := &Decoder{}
	require.NoError(t, dec.DecodeArgs(nil, nil), "no arguments and no target is fine")

	err := dec.DecodeArgs(nil, map[string]cty.Value{"x": cty.True})
	require.ErrorContains(t, err, "accepts none")
}
