// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_RoundTrip(t *testing.T) {
	maxUint256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(255),
		big.NewInt(1 << 40),
		new(big.Int).Lsh(big.NewInt(1), 255),
		maxUint256,
	}

	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			h, err := HandleFromBig(v)
			require.NoError(t, err)

			again, err := ParseHandle(h.Hex())
			require.NoError(t, err)
			assert.Equal(t, h, again)

			fromDecimal, err := ParseHandle(v.String())
			require.NoError(t, err)
			assert.Equal(t, h, fromDecimal)

			assert.Equal(t, 0, h.Uint256().ToBig().Cmp(v))
		})
	}
}

func TestHandle_Hex_IsZeroPadded(t *testing.T) {
	h := HandleFromUint256(uint256.NewInt(0xab))

	got := h.Hex()
	assert.Len(t, got, 66)
	assert.Equal(t, "0x"+strings.Repeat("0", 62)+"ab", got)
}

func TestParseHandle_ShortHexIsPadded(t *testing.T) {
	h, err := ParseHandle("0xabc")
	require.NoError(t, err)
	assert.Equal(t, "0x"+strings.Repeat("0", 61)+"abc", h.Hex())
}

func TestParseHandle_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: ErrInvalidHandle},
		{name: "garbage", input: "handle", want: ErrInvalidHandle},
		{name: "bad hex digit", input: "0xzz", want: ErrInvalidHandle},
		{name: "negative", input: "-1", want: ErrHandleOutOfRange},
		{name: "too many hex digits", input: "0x1" + strings.Repeat("0", 64), want: ErrHandleOutOfRange},
		{name: "wider than 256 bits", input: new(big.Int).Lsh(big.NewInt(1), 256).String(), want: ErrHandleOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHandle(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHandleFromBig_Negative(t *testing.T) {
	_, err := HandleFromBig(big.NewInt(-5))
	assert.ErrorIs(t, err, ErrHandleOutOfRange)
}

func TestHandle_IsZero(t *testing.T) {
	assert.True(t, ZeroHandle.IsZero())
	assert.True(t, MustParseHandle("0x"+strings.Repeat("0", 64)).IsZero())
	assert.False(t, MustParseHandle("0x01").IsZero())
}

func TestHandle_JSON(t *testing.T) {
	want := MustParseHandle("0x1234")

	tests := []struct {
		name string
		raw  string
	}{
		{name: "hex string", raw: `"0x1234"`},
		{name: "decimal string", raw: `"4660"`},
		{name: "bare number", raw: `4660`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got EncryptedHandle
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.True(t, want.Equal(got))
		})
	}

	encoded, err := json.Marshal(want)
	require.NoError(t, err)
	assert.Equal(t, `"`+want.Hex()+`"`, string(encoded))
}
