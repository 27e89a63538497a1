package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidPermit is returned by [PermitSigner.Verify] for any permit that
// does not validate.
var ErrInvalidPermit = errors.New("invalid decryption permit")

// PermitClaims is the JWT body of a decryption permit.
type PermitClaims struct {
	// Handles lists the canonical hex form of every handle the permit covers.
	Handles []string `json:"handles"`
	jwt.RegisteredClaims
}

type jwtPermitSigner struct {
	key      []byte
	account  common.Address
	contract common.Address
	ttl      time.Duration
	now      func() time.Time
}

// Sign implements [PermitSigner]. The permit is an HS256 JWT with the account
// as issuer and subject, the ledger service identity as audience and a random
// id.
func (s *jwtPermitSigner) Sign(handles ...models.EncryptedHandle) (string, error) {
	if len(handles) == 0 {
		return "", fmt.Errorf("%w: no handles", ErrInvalidPermit)
	}

	hexHandles := make([]string, 0, len(handles))
	for _, h := range handles {
		hexHandles = append(hexHandles, h.Hex())
	}

	now := s.now()
	claims := &PermitClaims{
		Handles: hexHandles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.account.Hex(),
			Subject:   s.account.Hex(),
			Audience:  jwt.ClaimStrings{s.contract.Hex()},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing permit: %w", err)
	}
	return signed, nil
}

// Verify implements [PermitSigner].
func (s *jwtPermitSigner) Verify(permit string) (*PermitClaims, error) {
	claims := &PermitClaims{}
	token, err := jwt.ParseWithClaims(permit, claims,
		func(t *jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.account.Hex()),
		jwt.WithAudience(s.contract.Hex()),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPermit, err)
	}
	if !token.Valid {
		return nil, ErrInvalidPermit
	}

	return claims, nil
}
