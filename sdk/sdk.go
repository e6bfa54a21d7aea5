//go:build wasm

package sdk

import (
	"encoding/base64"
	"encoding/json"
)

//go:wasmimport sdk console.log
func log(s *string) *string

// Log writes a message to the host console so we can trace contract steps.
func Log(s string) {
	log(&s)
}

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk crypto.verify_ed25519
func verifyEd25519(key *string, msg *string, sig *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

// Abort stops execution immediately and reverts every state write of the
// current call, surfacing the message to the caller.
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller with a short symbol.
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the host and maps it to the Env struct.
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)

	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	requiredAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	if sender, ok := envMap["msg.sender"].(string); ok {
		env.Sender = Sender{
			Address:       Address(sender),
			RequiredAuths: requiredAuths,
		}
	}
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// VerifySignature asks the host to check an ed25519 signature over message
// with the given `ed25519:<base58>` public key.
func VerifySignature(publicKey string, message string, signature []byte) bool {
	sig := base64.StdEncoding.EncodeToString(signature)
	res := verifyEd25519(&publicKey, &message, &sig)
	return res != nil && *res == "1"
}
