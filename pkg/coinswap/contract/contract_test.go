package contract

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap"
)

func TestTakerDefinitionValid(t *testing.T) {
	require.NoError(t, Validate(Taker()))
}

func TestValidateRejectsDuplicateRecord(t *testing.T) {
	d := Taker()
	d.Records = append(d.Records, Record{Name: "Balances"})
	require.Error(t, Validate(d))
}

func TestValidateRejectsUnknownRecordRef(t *testing.T) {
	d := Taker()
	d.Records = append(d.Records, Record{Name: "Broken", Fields: []Field{
		{Name: "X", Type: record("NoSuchRecord")},
	}})
	require.ErrorContains(t, Validate(d), "NoSuchRecord")
}

func TestValidateRejectsUnknownEnumRef(t *testing.T) {
	d := Taker()
	d.Records = append(d.Records, Record{Name: "Broken", Fields: []Field{
		{Name: "X", Type: enum("NoSuchEnum")},
	}})
	require.ErrorContains(t, Validate(d), "NoSuchEnum")
}

func TestValidateRejectsEmptyEnum(t *testing.T) {
	d := Taker()
	d.Enums = append(d.Enums, Enum{Name: "Empty"})
	require.ErrorContains(t, Validate(d), "no variants")
}

func TestValidateRejectsFloatSats(t *testing.T) {
	d := Taker()
	d.Records = append(d.Records, Record{Name: "Broken", Fields: []Field{
		{Name: "Amount", Type: Type{Kind: Float64}, Unit: UnitSats},
	}})
	require.ErrorContains(t, Validate(d), "satoshi amounts must be 64-bit integers")
}

func TestValidateRejectsFloatSatsInList(t *testing.T) {
	d := Taker()
	d.Records = append(d.Records, Record{Name: "Broken", Fields: []Field{
		{Name: "Amounts", Type: list(Type{Kind: Float64}), Unit: UnitSats},
	}})
	require.Error(t, Validate(d))
}

func TestValidateRejectsIntegerRatio(t *testing.T) {
	d := Taker()
	d.Records = append(d.Records, Record{Name: "Broken", Fields: []Field{
		{Name: "Pct", Type: Type{Kind: Int64}, Unit: UnitRatio},
	}})
	require.ErrorContains(t, Validate(d), "ratio fields must be float64")
}

func TestValidateRejectsDuplicateField(t *testing.T) {
	d := Taker()
	d.Records = append(d.Records, Record{Name: "Broken", Fields: []Field{
		{Name: "X", Type: Type{Kind: Bool}},
		{Name: "X", Type: Type{Kind: Bool}},
	}})
	require.ErrorContains(t, Validate(d), "duplicate field")
}

func TestValidateRejectsOptionalResultWithoutResult(t *testing.T) {
	d := Taker()
	d.Functions = append(d.Functions, Function{Name: "broken", OptionalResult: true})
	require.Error(t, Validate(d))
}

func TestValidateRejectsEmptyErrorCategories(t *testing.T) {
	d := Taker()
	d.ErrorCategories = nil
	require.ErrorContains(t, Validate(d), "error category")
}

// TestAddressDerivationParamsRequired pins function-parameter optionality,
// which the record cross-check below cannot see: both derivation functions
// take a mandatory address type and the batch one a mandatory count.
func TestAddressDerivationParamsRequired(t *testing.T) {
	d := Taker()
	for _, name := range []string{"get_next_external_address", "get_next_internal_addresses"} {
		fn := findFunction(t, d, name)
		for _, p := range fn.Params {
			require.Falsef(t, p.Optional, "%s parameter %q must be required", name, p.Name)
		}
	}
}

func findFunction(t *testing.T, d *Definition, name string) Function {
	t.Helper()
	for _, fn := range d.Functions {
		if fn.Name == name {
			return fn
		}
	}
	t.Fatalf("function %q not in definition", name)
	return Function{}
}

// goTypes maps each contract record to the exported Go struct it describes.
var goTypes = map[string]reflect.Type{
	"OutPoint":          reflect.TypeOf(coinswap.OutPoint{}),
	"Balances":          reflect.TypeOf(coinswap.Balances{}),
	"TxInfo":            reflect.TypeOf(coinswap.TxInfo{}),
	"TxDetail":          reflect.TypeOf(coinswap.TxDetail{}),
	"WalletTransaction": reflect.TypeOf(coinswap.WalletTransaction{}),
	"UTXO":              reflect.TypeOf(coinswap.UTXO{}),
	"UTXOSpendInfo":     reflect.TypeOf(coinswap.UTXOSpendInfo{}),
	"UTXOInfo":          reflect.TypeOf(coinswap.UTXOInfo{}),
	"FeeRates":          reflect.TypeOf(coinswap.FeeRates{}),
	"LockTime":          reflect.TypeOf(coinswap.LockTime{}),
	"PublicKey":         reflect.TypeOf(coinswap.PublicKey{}),
	"FidelityBond":      reflect.TypeOf(coinswap.FidelityBond{}),
	"FidelityProof":     reflect.TypeOf(coinswap.FidelityProof{}),
	"Offer":             reflect.TypeOf(coinswap.Offer{}),
	"MakerState":        reflect.TypeOf(coinswap.MakerState{}),
	"OfferCandidate":    reflect.TypeOf(coinswap.OfferCandidate{}),
	"OfferBook":         reflect.TypeOf(coinswap.OfferBook{}),
	"SwapParams":        reflect.TypeOf(coinswap.SwapParams{}),
	"MakerFeeInfo":      reflect.TypeOf(coinswap.MakerFeeInfo{}),
	"UTXOWithAddress":   reflect.TypeOf(coinswap.UTXOWithAddress{}),
	"SwapReport":        reflect.TypeOf(coinswap.SwapReport{}),
	"RPCConfig":         reflect.TypeOf(coinswap.RPCConfig{}),
	"InitOptions":       reflect.TypeOf(coinswap.InitOptions{}),
	"RestoreOptions":    reflect.TypeOf(coinswap.RestoreOptions{}),
}

// TestDefinitionMatchesGoStructs cross-checks every contract record against
// the exported struct it describes: same fields in the same order, optional
// exactly where the struct uses a pointer, and compatible primitive kinds.
// A drift in either direction fails here before it can ship.
func TestDefinitionMatchesGoStructs(t *testing.T) {
	d := Taker()
	require.NoError(t, Validate(d))

	records := make(map[string]Record, len(d.Records))
	for _, r := range d.Records {
		records[r.Name] = r
	}

	for name, rt := range goTypes {
		rec, ok := records[name]
		require.Truef(t, ok, "struct %s has no contract record", name)

		require.Equalf(t, rt.NumField(), len(rec.Fields),
			"%s: field count mismatch", name)
		for i, f := range rec.Fields {
			sf := rt.Field(i)
			require.Equalf(t, sf.Name, f.Name, "%s: field %d name", name, i)

			ft := sf.Type
			isPtr := ft.Kind() == reflect.Pointer
			if isPtr {
				ft = ft.Elem()
			}
			// Optional list fields stay plain slices; nil is their absence.
			if f.Type.Kind == List {
				require.Falsef(t, isPtr, "%s.%s: lists must not be pointers", name, f.Name)
			} else {
				require.Equalf(t, f.Optional, isPtr,
					"%s.%s: optionality disagrees with pointer-ness", name, f.Name)
			}
			require.Truef(t, kindMatches(f.Type, ft),
				"%s.%s: contract kind %s does not fit Go type %s",
				name, f.Name, f.Type.Kind, sf.Type)
		}
	}

	// Every record in the contract must describe a real struct; Init/Restore
	// request shapes included.
	for name := range records {
		_, ok := goTypes[name]
		require.Truef(t, ok, "contract record %s has no Go struct", name)
	}
}

func kindMatches(ct Type, rt reflect.Type) bool {
	switch ct.Kind {
	case Bool:
		return rt.Kind() == reflect.Bool
	case Int32:
		return rt.Kind() == reflect.Int32
	case Int64:
		return rt.Kind() == reflect.Int64
	case UInt8:
		return rt.Kind() == reflect.Uint8
	case UInt16:
		return rt.Kind() == reflect.Uint16
	case UInt32:
		return rt.Kind() == reflect.Uint32
	case UInt64:
		return rt.Kind() == reflect.Uint64
	case Float64:
		return rt.Kind() == reflect.Float64
	case String:
		return rt.Kind() == reflect.String
	case Bytes:
		return rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
	case RecordRef:
		return rt.Kind() == reflect.Struct
	case EnumRef:
		// Enums are integer-backed named types with a String method.
		return rt.Kind() == reflect.Int
	case List:
		return rt.Kind() == reflect.Slice && ct.Elem != nil && kindMatches(*ct.Elem, rt.Elem())
	default:
		return false
	}
}
