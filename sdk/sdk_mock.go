//go:build !wasm

package sdk

import (
	"crypto/ed25519"
	"fmt"
	"maps"
)

// Host-free stand-in for the wasm SDK surface. Contract code compiled for the
// host (unit tests, local debugging) talks to an in-memory map instead of the
// chain kv store, and call-level revert semantics are emulated by Execute.

var (
	mockState = map[string]string{}
	mockEnv   = Env{
		ContractId: "contract:conference",
		TxId:       "tx-0",
		Timestamp:  "2026-03-01T00:00:00",
	}
	mockLogs []string
	mockTxSeq int
)

// MockReset wipes state, logs and env back to a fresh contract instance.
func MockReset() {
	mockState = map[string]string{}
	mockLogs = nil
	mockTxSeq = 0
	mockEnv = Env{
		ContractId: "contract:conference",
		TxId:       "tx-0",
		Timestamp:  "2026-03-01T00:00:00",
	}
}

// MockSetSender points the env at a new calling account for subsequent calls.
// A fresh tx id is assigned so per-tx caches in the contract roll over.
func MockSetSender(addr string) {
	mockEnv.Sender = Sender{Address: Address(addr), RequiredAuths: []Address{Address(addr)}}
	mockEnv.SignerKey = ""
	mockTxSeq++
	mockEnv.TxId = fmt.Sprintf("tx-%d", mockTxSeq)
}

// MockSetSignerKey simulates a call signed by a bare ticket key.
func MockSetSignerKey(publicKey string) {
	mockEnv.SignerKey = publicKey
	mockTxSeq++
	mockEnv.TxId = fmt.Sprintf("tx-%d", mockTxSeq)
}

// MockSetTimestamp overrides the block timestamp for expiry-style tests.
func MockSetTimestamp(ts string) {
	mockEnv.Timestamp = ts
}

// MockLogs returns every line the contract logged since the last reset.
func MockLogs() []string {
	return mockLogs
}

// MockExecute runs one contract call with the host's all-or-nothing
// semantics: if the call aborts, every state write and log line it produced
// is rolled back and the abort message is returned as an error.
func MockExecute(fn func()) (err error) {
	snapshot := maps.Clone(mockState)
	logMark := len(mockLogs)
	defer func() {
		if r := recover(); r != nil {
			mockState = snapshot
			mockLogs = mockLogs[:logMark]
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}

// Log collects messages so tests can assert on emitted events.
func Log(s string) {
	mockLogs = append(mockLogs, s)
}

// Abort mirrors the host abort: the panic unwinds to MockExecute which
// restores the pre-call state.
func Abort(msg string) {
	panic(msg)
}

// Revert behaves like Abort in the mock; the symbol is folded into the message.
func Revert(msg string, symbol string) {
	panic(symbol + ": " + msg)
}

func StateSetObject(key string, value string) {
	mockState[key] = value
}

func StateGetObject(key string) *string {
	val, ok := mockState[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(mockState, key)
}

func GetEnv() Env {
	return mockEnv
}

func GetEnvKey(key string) *string {
	var val string
	switch key {
	case "contract.id":
		val = mockEnv.ContractId
	case "tx.id":
		val = mockEnv.TxId
	case "block.timestamp":
		val = mockEnv.Timestamp
	case "msg.signer_key":
		val = mockEnv.SignerKey
	default:
		return nil
	}
	return &val
}

// VerifySignature performs a real ed25519 check so signature-gated paths are
// exercised for real in tests.
func VerifySignature(publicKey string, message string, signature []byte) bool {
	raw := DecodePublicKey(publicKey)
	if raw == nil || len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(raw), []byte(message), signature)
}

// MockSignature signs the canonical claim message with a raw ed25519 seed,
// matching what ticket-scanner apps produce off-chain.
func MockSignature(seed []byte, message string) []byte {
	priv := ed25519.NewKeyFromSeed(seed)
	return ed25519.Sign(priv, []byte(message))
}

// MockPublicKeyFromSeed derives the prefixed public key for a raw seed.
func MockPublicKeyFromSeed(seed []byte) string {
	priv := ed25519.NewKeyFromSeed(seed)
	return EncodePublicKey(priv.Public().(ed25519.PublicKey))
}
