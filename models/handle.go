// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// HandleLength is the fixed width of an [EncryptedHandle] in bytes.
const HandleLength = 32

var (
	// ErrInvalidHandle is returned when a wire value is neither a 0x-prefixed
	// hexadecimal string nor a decimal big integer.
	ErrInvalidHandle = errors.New("invalid encrypted handle")

	// ErrHandleOutOfRange is returned when a value is negative or does not fit
	// into 256 bits.
	ErrHandleOutOfRange = errors.New("encrypted handle out of range")
)

// EncryptedHandle is an opaque reference to a ciphertext held by the
// confidential-computation backend. The remote ledger exposes it either as a
// big integer or as a zero-padded 64 digit hex string; both forms map to the
// same 32 bytes.
type EncryptedHandle [HandleLength]byte

// ZeroHandle is the all-zero handle the ledger reports for erased amounts.
var ZeroHandle EncryptedHandle

// HandleFromUint256 converts a 256-bit integer into its handle.
func HandleFromUint256(v *uint256.Int) EncryptedHandle {
	if v == nil {
		return ZeroHandle
	}
	return EncryptedHandle(v.Bytes32())
}

// HandleFromBig converts a big-integer wire value into a handle.
// Negative values and values wider than 256 bits are rejected.
func HandleFromBig(v *big.Int) (EncryptedHandle, error) {
	if v == nil {
		return ZeroHandle, nil
	}
	if v.Sign() < 0 {
		return ZeroHandle, fmt.Errorf("%w: negative value %s", ErrHandleOutOfRange, v.String())
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return ZeroHandle, fmt.Errorf("%w: %d bits", ErrHandleOutOfRange, v.BitLen())
	}
	return HandleFromUint256(u), nil
}

// ParseHandle accepts both wire forms: a 0x-prefixed hex string with at most
// 64 digits (leading zeros allowed) or a decimal big integer.
func ParseHandle(s string) (EncryptedHandle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZeroHandle, fmt.Errorf("%w: empty value", ErrInvalidHandle)
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := s[2:]
		if len(digits) > HandleLength*2 {
			return ZeroHandle, fmt.Errorf("%w: %d hex digits", ErrHandleOutOfRange, len(digits))
		}
		if len(digits)%2 == 1 {
			digits = "0" + digits
		}
		raw, err := hex.DecodeString(digits)
		if err != nil {
			return ZeroHandle, fmt.Errorf("%w: %v", ErrInvalidHandle, err)
		}
		var h EncryptedHandle
		copy(h[HandleLength-len(raw):], raw)
		return h, nil
	}

	if strings.HasPrefix(s, "-") {
		return ZeroHandle, fmt.Errorf("%w: negative value %s", ErrHandleOutOfRange, s)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return ZeroHandle, fmt.Errorf("%w: %q", ErrInvalidHandle, s)
	}
	return HandleFromBig(v)
}

// MustParseHandle is like [ParseHandle] but panics on error. Test helper.
func MustParseHandle(s string) EncryptedHandle {
	h, err := ParseHandle(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Hex returns the canonical wire form: "0x" followed by 64 lowercase hex
// digits.
func (h EncryptedHandle) Hex() string {
	return common.Hash(h).Hex()
}

// String implements fmt.Stringer.
func (h EncryptedHandle) String() string {
	return h.Hex()
}

// Uint256 returns the big-integer form of the handle.
func (h EncryptedHandle) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes32(h[:])
}

// IsZero reports whether the handle is the all-zero pattern.
func (h EncryptedHandle) IsZero() bool {
	return h == ZeroHandle
}

// Equal compares handles by their canonical form.
func (h EncryptedHandle) Equal(other EncryptedHandle) bool {
	return bytes.Equal(h[:], other[:])
}

// MarshalJSON encodes the handle in its canonical hex form.
func (h EncryptedHandle) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Hex())
}

// UnmarshalJSON accepts a hex string, a decimal string or a bare JSON number.
func (h *EncryptedHandle) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*h = ZeroHandle
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = s
	}

	parsed, err := ParseHandle(raw)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
