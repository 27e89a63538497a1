package models

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// EncryptedInput is an encrypted amount bound to the ledger service and the
// account, together with the proof the ledger verifies.
type EncryptedInput struct {
	Handle EncryptedHandle `json:"handle"`
	Proof  []byte          `json:"proof"`
}

// AddExpenseRequest is the payload of the addExpense call.
type AddExpenseRequest struct {
	Account   common.Address  `json:"account"`
	Category  uint32          `json:"category"`
	Timestamp int64           `json:"timestamp"`
	Amount    EncryptedHandle `json:"amount_ext"`
	Proof     []byte          `json:"proof"`
	Hash      string          `json:"hash,omitempty"`
}

// DeleteExpenseRequest is the payload of the deleteExpense call.
type DeleteExpenseRequest struct {
	Account common.Address `json:"account"`
	Index   uint64         `json:"index"`
	Hash    string         `json:"hash,omitempty"`
}

// TxStatus is the lifecycle status of a submitted ledger transaction.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxReverted  TxStatus = "reverted"
)

// TxReceipt is returned by the ledger gateway for submitted transactions.
type TxReceipt struct {
	TxHash common.Hash `json:"tx_hash"`
	Status TxStatus    `json:"status"`
	Reason string      `json:"reason,omitempty"`
}

// DecryptRequest asks the relayer to decrypt a handle for the permit holder.
type DecryptRequest struct {
	Handle   EncryptedHandle `json:"handle"`
	Contract common.Address  `json:"contract"`
	Permit   string          `json:"permit"`
}

// DecryptResponse carries a plaintext value.
type DecryptResponse struct {
	Value decimal.Decimal `json:"value"`
}

// EncryptRequest asks the relayer to build an encrypted input.
type EncryptRequest struct {
	Contract common.Address  `json:"contract"`
	Account  common.Address  `json:"account"`
	Value    decimal.Decimal `json:"value"`
}
