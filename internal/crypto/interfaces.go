// Package crypto holds the client-side key material: decryption permits
// presented to the relayer and the at-rest sealing of decrypted snapshots.
// Ciphertexts of ledger amounts are never produced here; that is the job of
// the confidential-computation engine.
package crypto

import "github.com/MKhiriev/go-expense-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PermitSigner issues short-lived decryption permits. A permit authorizes the
// relayer to reveal the listed handles to the account it was issued for.
type PermitSigner interface {
	// Sign returns a compact permit covering handles.
	Sign(handles ...models.EncryptedHandle) (string, error)

	// Verify checks signature, audience and expiry of a permit issued by
	// this signer and returns its claims.
	Verify(permit string) (*PermitClaims, error)
}

// Sealer encrypts values that are persisted locally. Blobs are base64
// strings of nonce ‖ ciphertext.
type Sealer interface {
	// Seal serializes v to JSON and encrypts it.
	Seal(v any) (string, error)

	// Open decrypts blob and unmarshals it into target, which must be a
	// non-nil pointer.
	Open(blob string, target any) error
}
