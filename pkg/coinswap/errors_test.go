package coinswap

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/citadel-tech/coinswap-ffi/pkg/coinswap/internal/backend"
)

func TestRemapErrorCategories(t *testing.T) {
	cases := []struct {
		code int
		want Category
	}{
		{backend.CodeGeneral, CategoryGeneral},
		{backend.CodeWallet, CategoryWallet},
		{backend.CodeNetwork, CategoryNetwork},
		{backend.CodeProtocol, CategoryProtocol},
		{backend.CodeIO, CategoryIO},
	}
	for _, tc := range cases {
		t.Run(tc.want.String(), func(t *testing.T) {
			err := remapError(&backend.NativeError{Op: "op", Code: tc.code, Msg: "boom"})
			require.True(t, IsCategory(err, tc.want))

			var be *Error
			require.ErrorAs(t, err, &be)
			// The engine message crosses the boundary losslessly.
			require.Equal(t, "boom", be.Msg)
		})
	}
}

func TestRemapErrorUnknownCode(t *testing.T) {
	// An unrecognized code must surface as a boundary bug, never as a
	// guessed engine category.
	err := remapError(&backend.NativeError{Op: "op", Code: 99, Msg: "???"})
	require.True(t, IsCategory(err, CategoryEncoding))
	require.ErrorContains(t, err, "99")
	for _, c := range []Category{CategoryGeneral, CategoryWallet, CategoryNetwork, CategoryProtocol, CategoryIO} {
		require.False(t, IsCategory(err, c))
	}
}

func TestRemapErrorNil(t *testing.T) {
	require.NoError(t, remapError(nil))
}

func TestRemapErrorNotBuilt(t *testing.T) {
	err := remapError(fmt.Errorf("taker_init: %w", backend.ErrNotBuilt))
	require.ErrorIs(t, err, ErrNotBuilt)
	require.ErrorIs(t, err, backend.ErrNotBuilt)
}

func TestRemapErrorPassesThroughUnknownErrors(t *testing.T) {
	sentinel := errors.New("something else")
	require.ErrorIs(t, remapError(sentinel), sentinel)
}

func TestErrTakerReleasedIsNotACategory(t *testing.T) {
	for _, c := range []Category{
		CategoryGeneral, CategoryWallet, CategoryNetwork,
		CategoryProtocol, CategoryIO, CategoryEncoding,
	} {
		require.False(t, IsCategory(ErrTakerReleased, c))
	}
}

func TestErrorMessageFormat(t *testing.T) {
	err := &Error{Category: CategoryWallet, Msg: "insufficient funds"}
	require.Equal(t, "coinswap: wallet error: insufficient funds", err.Error())
}

func TestCategoryString(t *testing.T) {
	want := map[Category]string{
		CategoryGeneral:  "general",
		CategoryWallet:   "wallet",
		CategoryNetwork:  "network",
		CategoryProtocol: "protocol",
		CategoryIO:       "io",
		CategoryEncoding: "encoding",
	}
	for c, s := range want {
		require.Equal(t, s, c.String())
	}
	require.Equal(t, "category(42)", Category(42).String())
}
