package main

import (
	"fmt"
	"testing"

	"conference_drops/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addTicket preloads one ticket as the owner and returns its public key.
func addTicket(t *testing.T, seed []byte, role string, startingBalance string) string {
	t.Helper()
	key := sdk.MockPublicKeyFromSeed(seed)
	as(ownerAddress)
	mustCall(t, func() {
		TicketsAdd(strptr(fmt.Sprintf(
			`{"tickets":[{"key":%q,"drop_id":"","metadata":"vip","starting_balance":%q,"role":%q}]}`,
			key, startingBalance, role)))
	})
	return key
}

func TestTicketsAddIsAdminOnly(t *testing.T) {
	setupContract(t)

	as(attendeeAddress)
	mustFail(t, "admin role required", func() {
		TicketsAdd(strptr(fmt.Sprintf(`{"tickets":[{"key":%q}]}`, sdk.MockPublicKeyFromSeed(keySeed(1)))))
	})

	key := addTicket(t, keySeed(1), "basic", "0")
	require.NotNil(t, loadTicket(key))

	mustFail(t, "ticket key already exists", func() {
		TicketsAdd(strptr(fmt.Sprintf(`{"tickets":[{"key":%q}]}`, key)))
	})
	mustFail(t, "invalid ticket key", func() {
		TicketsAdd(strptr(`{"tickets":[{"key":"not-a-key"}]}`))
	})
	mustFail(t, "tickets batch is empty", func() {
		TicketsAdd(strptr(`{"tickets":[]}`))
	})
}

func TestTicketScanIsOneShot(t *testing.T) {
	setupContract(t)
	key := addTicket(t, keySeed(1), "basic", "0")

	as(visitorAddress)
	mustFail(t, "call must be signed with a ticket key", func() { TicketScan(nil) })

	sdk.MockSetSignerKey(sdk.MockPublicKeyFromSeed(keySeed(99)))
	mustFail(t, "unknown ticket key", func() { TicketScan(nil) })

	sdk.MockSetSignerKey(key)
	mustCall(t, func() { TicketScan(nil) })
	assert.True(t, loadTicket(key).HasScanned)

	mustFail(t, "ticket has already been scanned", func() { TicketScan(nil) })
}

func TestAccountRegistrationFlow(t *testing.T) {
	setupContract(t)
	key := addTicket(t, keySeed(1), "basic", "100")
	newbie := "hive:newbie"

	as(visitorAddress)
	sdk.MockSetSignerKey(key)
	mustFail(t, "ticket must be scanned before registration", func() {
		AccountRegister(strptr(fmt.Sprintf(`{"account":%q}`, newbie)))
	})

	mustCall(t, func() { TicketScan(nil) })
	mustCall(t, func() { AccountRegister(strptr(fmt.Sprintf(`{"account":%q}`, newbie))) })

	assert.Equal(t, "100", balanceOf(t, newbie))
	assert.Equal(t, newbie, *AccountForKey(strptr(key)))
	// the starting grant is funding, not a collected reward
	assert.NotContains(t, *LeaderboardTokens(nil), newbie)

	mustFail(t, "ticket is already registered", func() {
		AccountRegister(strptr(`{"account":"hive:other"}`))
	})

	// a second ticket cannot claim an account that already exists
	key2 := addTicket(t, keySeed(2), "basic", "0")
	as(visitorAddress)
	sdk.MockSetSignerKey(key2)
	mustCall(t, func() { TicketScan(nil) })
	mustFail(t, "account already registered", func() {
		AccountRegister(strptr(fmt.Sprintf(`{"account":%q}`, newbie)))
	})
}

func TestTicketRoleIsAppliedOnRegistration(t *testing.T) {
	setupContract(t)
	key := addTicket(t, keySeed(1), "sponsor", "0")

	as(visitorAddress)
	sdk.MockSetSignerKey(key)
	mustCall(t, func() { TicketScan(nil) })
	mustCall(t, func() { AccountRegister(strptr(`{"account":"hive:boothcrew"}`)) })

	assert.Equal(t, "sponsor", *AccountStatusOf(strptr("hive:boothcrew")))

	// the fresh sponsor can create drops right away
	as("hive:boothcrew")
	mustCall(t, func() {
		CreateTokenDrop(strptr(tokenDropPayload("booth", keySeed(5), "10")))
	})
}

func TestTicketSignedCallsActAsBoundAccount(t *testing.T) {
	setupContract(t)
	dropSeed := keySeed(1)
	id := createDrop(t, ownerAddress, CreateTokenDrop, tokenDropPayload("welcome", dropSeed, "10"))

	key := addTicket(t, keySeed(2), "basic", "0")
	newbie := "hive:newbie"
	as(visitorAddress)
	sdk.MockSetSignerKey(key)
	mustCall(t, func() { TicketScan(nil) })
	mustCall(t, func() { AccountRegister(strptr(fmt.Sprintf(`{"account":%q}`, newbie))) })

	// still signed with the bare ticket key, the claim lands on the account
	mustCall(t, func() { ClaimDrop(strptr(claimPayload(id, dropSeed, newbie))) })
	assert.Equal(t, "10", balanceOf(t, newbie))

	// unregistered ticket keys cannot act
	key2 := addTicket(t, keySeed(3), "basic", "0")
	as(visitorAddress)
	sdk.MockSetSignerKey(key2)
	mustFail(t, "ticket is not registered to an account", func() {
		FtTransfer(strptr(fmt.Sprintf(`{"receiver":%q,"amount":"1"}`, ownerAddress)))
	})
}

func TestAccountForKeyUnknown(t *testing.T) {
	setupContract(t)
	assert.Equal(t, "null", *AccountForKey(strptr(sdk.MockPublicKeyFromSeed(keySeed(9)))))
}
