package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractInitRunsOnce(t *testing.T) {
	setupContract(t)

	as(visitorAddress)
	mustFail(t, "contract already initialized", func() { ContractInit(nil) })

	// the initializer became admin
	assert.Equal(t, "admin", *AccountStatusOf(strptr(ownerAddress)))
}

func TestGrantRoleIsAdminOnly(t *testing.T) {
	setupContract(t)

	as(attendeeAddress)
	mustFail(t, "admin role required", func() {
		GrantRole(strptr(fmt.Sprintf(`{"account":%q,"role":"sponsor"}`, visitorAddress)))
	})

	grantRole(t, sponsorAddress, "sponsor")
	assert.Equal(t, "sponsor", *AccountStatusOf(strptr(sponsorAddress)))

	// roles can be taken away again
	grantRole(t, sponsorAddress, "basic")
	assert.Equal(t, "basic", *AccountStatusOf(strptr(sponsorAddress)))

	as(ownerAddress)
	mustFail(t, "invalid account role", func() {
		GrantRole(strptr(fmt.Sprintf(`{"account":%q,"role":"emperor"}`, visitorAddress)))
	})
}

func TestAdminImpliesSponsorAndDataSetter(t *testing.T) {
	setupContract(t)

	as(ownerAddress)
	mustCall(t, func() { CreateTokenDrop(strptr(tokenDropPayload("admin drop", keySeed(1), "10"))) })
	mustCall(t, func() { AgendaSet(strptr("day one")) })
}

func TestAgendaAndAlerts(t *testing.T) {
	setupContract(t)
	grantRole(t, setterAddress, "data_setter")

	as(attendeeAddress)
	mustFail(t, "data setter role required", func() { AgendaSet(strptr("nope")) })

	as(setterAddress)
	mustCall(t, func() { AgendaSet(strptr("keynote at nine")) })
	mustCall(t, func() { AlertsSet(strptr("lunch moved to hall b")) })

	agenda := *AgendaGet(nil)
	assert.Contains(t, agenda, "keynote at nine")
	assert.Contains(t, agenda, `"updated_at":`)
	assert.NotContains(t, agenda, `"updated_at":0`)

	alerts := *AlertsGet(nil)
	assert.Contains(t, alerts, "lunch moved to hall b")

	// data setters cannot touch drops or tokens
	mustFail(t, "sponsor role required", func() {
		CreateTokenDrop(strptr(tokenDropPayload("nope", keySeed(1), "10")))
	})
}

func TestFreezeBlocksMutationsOnly(t *testing.T) {
	setupContract(t)
	grantRole(t, setterAddress, "data_setter")
	mint(t, attendeeAddress, "10")

	as(attendeeAddress)
	mustFail(t, "admin role required", func() { FreezeToggle(nil) })

	as(ownerAddress)
	mustCall(t, func() { FreezeToggle(nil) })

	mustFail(t, "contract is frozen", func() {
		GrantRole(strptr(fmt.Sprintf(`{"account":%q,"role":"sponsor"}`, visitorAddress)))
	})
	as(setterAddress)
	mustFail(t, "contract is frozen", func() { AgendaSet(strptr("nope")) })
	as(attendeeAddress)
	mustFail(t, "contract is frozen", func() {
		FtTransfer(strptr(fmt.Sprintf(`{"receiver":%q,"amount":"1"}`, visitorAddress)))
	})

	// reads stay open
	assert.Equal(t, "10", balanceOf(t, attendeeAddress))
	assert.Equal(t, "true", *IsFrozen(nil))

	// the admin can always unfreeze
	as(ownerAddress)
	mustCall(t, func() { FreezeToggle(nil) })
	assert.Equal(t, "false", *IsFrozen(nil))
}

func TestLeaderboardRanksCollectorsOnly(t *testing.T) {
	setupContract(t)
	grantRole(t, sponsorAddress, "sponsor")

	seeds := [][]byte{keySeed(1), keySeed(2), keySeed(3)}
	amounts := []string{"10", "30", "20"}
	claimants := []string{"hive:alice", "hive:bob", "hive:carol"}
	for i := range seeds {
		id := createDrop(t, ownerAddress, CreateTokenDrop, tokenDropPayload("drop", seeds[i], amounts[i]))
		as(claimants[i])
		mustCall(t, func() { ClaimDrop(strptr(claimPayload(id, seeds[i], claimants[i]))) })
	}

	board := *LeaderboardTokens(nil)
	bob := strings.Index(board, "hive:bob")
	carol := strings.Index(board, "hive:carol")
	alice := strings.Index(board, "hive:alice")
	assert.True(t, bob >= 0 && carol >= 0 && alice >= 0, board)
	assert.Less(t, bob, carol)
	assert.Less(t, carol, alice)

	// role holders never enter the board even when they claim
	seed := keySeed(4)
	id := createDrop(t, ownerAddress, CreateTokenDrop, tokenDropPayload("sponsored", seed, "100"))
	as(sponsorAddress)
	mustCall(t, func() { ClaimDrop(strptr(claimPayload(id, seed, sponsorAddress))) })
	assert.NotContains(t, *LeaderboardTokens(nil), sponsorAddress)
}

func TestTransactionCounterAdvances(t *testing.T) {
	setupContract(t)
	assert.Equal(t, "0", *TransactionsTotal(nil))

	mint(t, attendeeAddress, "10")
	assert.Equal(t, "1", *TransactionsTotal(nil))

	as(attendeeAddress)
	mustCall(t, func() {
		FtTransfer(strptr(fmt.Sprintf(`{"receiver":%q,"amount":"1"}`, visitorAddress)))
	})
	assert.Equal(t, "2", *TransactionsTotal(nil))

	// failed calls leave the counter alone
	mustFail(t, "insufficient balance", func() {
		FtTransfer(strptr(fmt.Sprintf(`{"receiver":%q,"amount":"1000"}`, visitorAddress)))
	})
	assert.Equal(t, "2", *TransactionsTotal(nil))
}
