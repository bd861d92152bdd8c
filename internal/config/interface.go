package config

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Loader is the interface for a format-specific scenario loader. Load reads
// every scenario file under the given paths, translates them into the
// format-agnostic model, and returns a matching Decoder for argument
// binding.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Scenario, Decoder, error)
}

// Decoder binds raw configuration argument values into the Go input structs
// declared by behavior modules.
type Decoder interface {
	// DecodeArgs populates the tagged fields of target from args.
	// Arguments that match no field are an error; fields with no matching
	// argument keep their zero value.
	DecodeArgs(target any, args map[string]cty.Value) error
}
