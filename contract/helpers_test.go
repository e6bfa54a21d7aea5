package main

import (
	"encoding/base64"
	"fmt"
	"testing"

	"conference_drops/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerAddress    = "hive:organizer"
	sponsorAddress  = "hive:sponsor"
	setterAddress   = "hive:infodesk"
	attendeeAddress = "hive:attendee"
	visitorAddress  = "hive:visitor"
)

// setupContract resets the mock chain and initializes the contract with the
// organizer as owner.
func setupContract(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	as(ownerAddress)
	mustCall(t, func() { ContractInit(nil) })
}

// as switches the transaction sender for subsequent calls.
func as(addr string) {
	sdk.MockSetSender(addr)
}

// mustCall runs one contract call and fails the test if it aborts.
func mustCall(t *testing.T, fn func()) {
	t.Helper()
	require.NoError(t, sdk.MockExecute(fn))
}

// mustFail runs one contract call and asserts it aborts with the message.
func mustFail(t *testing.T, msg string, fn func()) {
	t.Helper()
	err := sdk.MockExecute(fn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), msg)
}

// grantRole elevates an account as the owner, restoring the previous sender.
func grantRole(t *testing.T, account string, role string) {
	t.Helper()
	prev := sdk.GetEnv().Sender.Address
	as(ownerAddress)
	mustCall(t, func() {
		GrantRole(strptr(fmt.Sprintf(`{"account":%q,"role":%q}`, account, role)))
	})
	as(prev.String())
}

// keySeed derives a deterministic 32-byte ed25519 seed from a single label
// byte so every test key is reproducible.
func keySeed(label byte) []byte {
	seed := make([]byte, 32)
	seed[0] = label
	return seed
}

// claimSignature produces the base64 signature a scanner app would attach to
// a claim for the given account.
func claimSignature(seed []byte, account string) string {
	key := sdk.MockPublicKeyFromSeed(seed)
	sig := sdk.MockSignature(seed, account+","+key)
	return base64.StdEncoding.EncodeToString(sig)
}

// claimPayload builds a direct-claim payload signed with the drop key seed.
func claimPayload(dropID string, dropSeed []byte, account string) string {
	return fmt.Sprintf(`{"drop_id":%q,"signature":%q}`, dropID, claimSignature(dropSeed, account))
}

// piecePayload builds a scavenger-claim payload signed with the piece seed.
func piecePayload(dropID string, pieceSeed []byte, account string) string {
	return fmt.Sprintf(`{"drop_id":%q,"scavenger_piece":%q,"signature":%q}`,
		dropID, sdk.MockPublicKeyFromSeed(pieceSeed), claimSignature(pieceSeed, account))
}

// tokenDropPayload assembles a token drop creation payload. Each entry of
// pieceSeeds becomes one scavenger piece named p1, p2, ...
func tokenDropPayload(name string, dropSeed []byte, amount string, pieceSeeds ...[]byte) string {
	return fmt.Sprintf(`{"name":%q,"image":"img","key":%q,"token_amount":%q%s}`,
		name, sdk.MockPublicKeyFromSeed(dropSeed), amount, scavengerField(pieceSeeds))
}

func nftDropPayload(name string, dropSeed []byte, copies uint64, pieceSeeds ...[]byte) string {
	return fmt.Sprintf(`{"name":%q,"image":"img","key":%q,"series_name":%q,"copies":%d%s}`,
		name, sdk.MockPublicKeyFromSeed(dropSeed), name+" series", copies, scavengerField(pieceSeeds))
}

func multichainDropPayload(name string, dropSeed []byte, chainID uint64) string {
	return fmt.Sprintf(`{"name":%q,"image":"img","key":%q,"chain_id":%d,"contract_id":"0xseries","series_id":7}`,
		name, sdk.MockPublicKeyFromSeed(dropSeed), chainID)
}

func scavengerField(pieceSeeds [][]byte) string {
	if len(pieceSeeds) == 0 {
		return ""
	}
	out := `,"scavenger_hunt":[`
	for i, seed := range pieceSeeds {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"piece":"p%d","description":"find me","key":%q}`,
			i+1, sdk.MockPublicKeyFromSeed(seed))
	}
	return out + "]"
}

// createDrop runs one creation entry point as the given account and returns
// the new drop id.
func createDrop(t *testing.T, creator string, fn func(*string) *string, payload string) string {
	t.Helper()
	as(creator)
	var res *string
	mustCall(t, func() { res = fn(strptr(payload)) })
	require.NotNil(t, res)
	drop := decodeDrop(*res)
	return drop.ID
}

// balanceOf reads an account balance through the public view.
func balanceOf(t *testing.T, account string) string {
	t.Helper()
	res := FtBalanceOf(strptr(account))
	require.NotNil(t, res)
	return *res
}

// mint issues tokens as the owner without disturbing the current sender.
func mint(t *testing.T, account string, amount string) {
	t.Helper()
	prev := sdk.GetEnv().Sender.Address
	as(ownerAddress)
	mustCall(t, func() {
		FtMint(strptr(fmt.Sprintf(`{"account":%q,"amount":%q}`, account, amount)))
	})
	as(prev.String())
}
