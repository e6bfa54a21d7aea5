package main

import (
	"conference_drops/sdk"
)

// -----------------------------------------------------------------------------
// Per-Transaction Environment Cache
// -----------------------------------------------------------------------------

var (
	cachedEnv     sdk.Env
	cachedEnvTxId string
)

// currentEnv returns the execution environment, fetched from the host once per
// transaction. The cache is keyed on tx.id since the wasm instance may live
// across calls.
func currentEnv() sdk.Env {
	txIdPtr := sdk.GetEnvKey("tx.id")
	if txIdPtr != nil && *txIdPtr == cachedEnvTxId && cachedEnvTxId != "" {
		return cachedEnv
	}
	cachedEnv = sdk.GetEnv()
	cachedEnvTxId = cachedEnv.TxId
	return cachedEnv
}

// getSenderAddress returns the account that signed this transaction, aborting
// when the env carries no usable sender.
func getSenderAddress() sdk.Address {
	env := currentEnv()
	addr := env.Sender.Address
	if !addr.IsValid() {
		sdk.Abort("invalid sender address")
	}
	return addr
}

// resolveCaller maps the transaction to an acting account. Calls signed with a
// bare ticket key act as the account that registered that ticket; everything
// else acts as the plain transaction sender.
func resolveCaller() sdk.Address {
	env := currentEnv()
	if env.SignerKey != "" {
		ticket := loadTicket(env.SignerKey)
		if ticket == nil {
			sdk.Abort("unknown ticket key")
		}
		if !ticket.Account.IsValid() {
			sdk.Abort("ticket is not registered to an account")
		}
		return ticket.Account
	}
	return getSenderAddress()
}
