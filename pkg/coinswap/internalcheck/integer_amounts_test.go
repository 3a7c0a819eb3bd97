package internalcheck

import (
	"fmt"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// ratioFields are the only struct fields allowed to be floating point: fee
// percentages, fee rates in sat/vB, and durations. Everything else numeric in
// the boundary package is a satoshi amount and must be an integer.
var ratioFields = map[string]bool{
	"FeePercentage":        true,
	"AmountRelativeFeePct": true,
	"TimeRelativeFeePct":   true,
	"SwapDurationSeconds":  true,
	"FeeRate":              true,
	"Fastest":              true,
	"Standard":             true,
	"Economy":              true,
}

func TestAmountFieldsAreIntegers(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedTypesInfo | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/citadel-tech/coinswap-ffi/pkg/coinswap")
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}
			st, ok := obj.Type().Underlying().(*types.Struct)
			if !ok {
				continue
			}
			for i := 0; i < st.NumFields(); i++ {
				field := st.Field(i)
				if !isFloat(field.Type()) {
					continue
				}
				if ratioFields[field.Name()] {
					continue
				}
				findings = append(findings, fmt.Sprintf(
					"%s.%s: floating point field outside the ratio allowlist",
					name, field.Name()))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("integer amount policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

// isFloat unwraps pointers and slices so *float64 and []float64 fields are
// caught too.
func isFloat(typ types.Type) bool {
	switch tt := typ.(type) {
	case *types.Pointer:
		return isFloat(tt.Elem())
	case *types.Slice:
		return isFloat(tt.Elem())
	case *types.Basic:
		return tt.Kind() == types.Float32 || tt.Kind() == types.Float64
	default:
		return false
	}
}
