package hcl

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Decoder implements config.Decoder: it binds evaluated cty argument values
// into module input structs through `gwatch` struct tags.
type Decoder struct{}

// DecodeArgs populates the tagged fields of target from args. An argument
// that matches no tagged field is an error; fields without a matching
// argument keep their zero value so modules can apply their own defaults.
func (d *Decoder) DecodeArgs(target any, args map[string]cty.Value) error {
	if len(args) == 0 {
		return nil
	}
	if target == nil {
		return fmt.Errorf("arguments given, but the behavior accepts none")
	}

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}
	structVal = structVal.Elem()
	structType := structVal.Type()

	fieldsByTag := make(map[string]int, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		tagName := strings.Split(field.Tag.Get("gwatch"), ",")[0]
		if tagName != "" && tagName != "-" {
			fieldsByTag[tagName] = i
		}
	}

	for name, val := range args {
		idx, ok := fieldsByTag[name]
		if !ok {
			return fmt.Errorf("unsupported argument %q", name)
		}
		fieldPtr := structVal.Field(idx).Addr().Interface()
		if err := decodeValue(val, fieldPtr); err != nil {
			return fmt.Errorf("failed to decode argument %q: %w", name, err)
		}
	}
	return nil
}

// decodeValue converts a cty.Value to the Go type behind the pointer,
// applying cty's standard conversions first so e.g. a number literal can
// fill a string field the way HCL users expect.
func decodeValue(val cty.Value, goVal any) error {
	impliedType, err := gocty.ImpliedType(reflect.ValueOf(goVal).Elem().Interface())
	if err != nil {
		// No implied type; let gocty attempt a direct decode.
		return gocty.FromCtyValue(val, goVal)
	}
	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return err
	}
	return gocty.FromCtyValue(converted, goVal)
}
