// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

const (
	permitKeyInfo = "expense-vault/decrypt-permit/v1"
	sealKeyInfo   = "expense-vault/snapshot-seal/v1"
)

// ErrEmptySecret is returned when no signer secret is configured.
var ErrEmptySecret = errors.New("empty signer secret")

// KeyChain derives every client key from the signer secret. The master key is
// stretched once with Argon2id using the account as salt, so different
// accounts never share keys; purpose keys are expanded from it with HKDF.
type KeyChain struct {
	account common.Address

	permitKey []byte
	sealKey   []byte
}

// Argon2id parameters recommended by OWASP (2024).
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4
	argonKeyLen  = 32
)

// NewKeyChain derives the key chain of account from secret.
func NewKeyChain(secret string, account common.Address) (*KeyChain, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	master := argon2.IDKey([]byte(secret), account.Bytes(), argonTime, argonMemory, argonThreads, argonKeyLen)

	permitKey, err := expandKey(master, permitKeyInfo)
	if err != nil {
		return nil, fmt.Errorf("derive permit key: %w", err)
	}
	sealKey, err := expandKey(master, sealKeyInfo)
	if err != nil {
		return nil, fmt.Errorf("derive seal key: %w", err)
	}

	return &KeyChain{account: account, permitKey: permitKey, sealKey: sealKey}, nil
}

func expandKey(master []byte, info string) ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, master, []byte(info)), key); err != nil {
		return nil, err
	}
	return key, nil
}

// Account returns the account the chain was derived for.
func (k *KeyChain) Account() common.Address {
	return k.account
}

// PermitSigner returns a signer of permits bound to contract and valid for
// ttl.
func (k *KeyChain) PermitSigner(contract common.Address, ttl time.Duration) PermitSigner {
	return &jwtPermitSigner{
		key:      k.permitKey,
		account:  k.account,
		contract: contract,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Sealer returns the at-rest sealer of the account.
func (k *KeyChain) Sealer() Sealer {
	return &aesSealer{key: k.sealKey}
}
