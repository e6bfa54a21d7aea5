package main

import (
	"fmt"
	"strings"
	"testing"

	"conference_drops/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectClaimPaysOutOnce(t *testing.T) {
	setupContract(t)
	dropSeed := keySeed(1)
	id := createDrop(t, ownerAddress, CreateTokenDrop, tokenDropPayload("welcome", dropSeed, "10"))

	as(attendeeAddress)
	mustCall(t, func() { ClaimDrop(strptr(claimPayload(id, dropSeed, attendeeAddress))) })

	assert.Equal(t, "10", balanceOf(t, attendeeAddress))
	// admin-created drops mint fresh supply
	assert.Equal(t, "10", *FtTotalSupply(nil))

	drop := loadDrop(id)
	require.NotNil(t, drop)
	assert.Equal(t, uint64(1), drop.NumClaimed)

	mustFail(t, "drop already claimed", func() {
		ClaimDrop(strptr(claimPayload(id, dropSeed, attendeeAddress)))
	})
	assert.Equal(t, "10", balanceOf(t, attendeeAddress))
	// the rejected attempt must not move the claim counter either
	assert.Equal(t, uint64(1), loadDrop(id).NumClaimed)
}

func TestClaimRejectsBadSignatures(t *testing.T) {
	setupContract(t)
	dropSeed := keySeed(1)
	id := createDrop(t, ownerAddress, CreateTokenDrop, tokenDropPayload("welcome", dropSeed, "10"))

	as(attendeeAddress)
	// signed with a key that is not the drop key
	mustFail(t, "invalid signature", func() {
		ClaimDrop(strptr(claimPayload(id, keySeed(99), attendeeAddress)))
	})
	// signature minted for someone else cannot be replayed
	mustFail(t, "invalid signature", func() {
		ClaimDrop(strptr(claimPayload(id, dropSeed, visitorAddress)))
	})
	assert.Equal(t, "0", balanceOf(t, attendeeAddress))
}

func TestClaimUnknownDrop(t *testing.T) {
	setupContract(t)
	as(attendeeAddress)
	mustFail(t, "drop not found", func() {
		ClaimDrop(strptr(claimPayload("hive:ghost||0", keySeed(1), attendeeAddress)))
	})
}

func TestSponsorDropSpendsSponsorBalance(t *testing.T) {
	setupContract(t)
	grantRole(t, sponsorAddress, "sponsor")
	mint(t, sponsorAddress, "50")

	dropSeed := keySeed(1)
	id := createDrop(t, sponsorAddress, CreateTokenDrop, tokenDropPayload("swag", dropSeed, "50"))

	as(attendeeAddress)
	mustCall(t, func() { ClaimDrop(strptr(claimPayload(id, dropSeed, attendeeAddress))) })

	assert.Equal(t, "50", balanceOf(t, attendeeAddress))
	assert.Equal(t, "0", balanceOf(t, sponsorAddress))
	// sponsor payouts move existing tokens, supply stays put
	assert.Equal(t, "50", *FtTotalSupply(nil))

	as(visitorAddress)
	mustFail(t, "the creator does not have enough tokens to cover the claim", func() {
		ClaimDrop(strptr(claimPayload(id, dropSeed, visitorAddress)))
	})
	assert.Equal(t, "0", balanceOf(t, visitorAddress))
	assert.Equal(t, uint64(1), loadDrop(id).NumClaimed)
}

func TestScavengerHuntRewardsOnCompletion(t *testing.T) {
	setupContract(t)
	dropSeed := keySeed(1)
	p1, p2, p3 := keySeed(11), keySeed(12), keySeed(13)
	id := createDrop(t, ownerAddress, CreateTokenDrop, tokenDropPayload("hunt", dropSeed, "30", p1, p2, p3))

	as(attendeeAddress)

	// a gated drop cannot be claimed directly against the drop key
	mustFail(t, "this drop requires a scavenger piece", func() {
		ClaimDrop(strptr(claimPayload(id, dropSeed, attendeeAddress)))
	})

	mustCall(t, func() { ClaimDrop(strptr(piecePayload(id, p1, attendeeAddress))) })
	assert.Equal(t, "0", balanceOf(t, attendeeAddress))
	assert.Equal(t, uint64(1), loadDrop(id).NumClaimed)

	mustFail(t, "scavenger piece already claimed", func() {
		ClaimDrop(strptr(piecePayload(id, p1, attendeeAddress)))
	})
	mustFail(t, "incorrect scavenger piece", func() {
		ClaimDrop(strptr(piecePayload(id, keySeed(99), attendeeAddress)))
	})

	mustCall(t, func() { ClaimDrop(strptr(piecePayload(id, p2, attendeeAddress))) })
	assert.Equal(t, "0", balanceOf(t, attendeeAddress))

	mustCall(t, func() { ClaimDrop(strptr(piecePayload(id, p3, attendeeAddress))) })
	assert.Equal(t, "30", balanceOf(t, attendeeAddress))
	assert.Equal(t, uint64(3), loadDrop(id).NumClaimed)

	// the finished hunt cannot pay out a second time
	mustFail(t, "scavenger piece already claimed", func() {
		ClaimDrop(strptr(piecePayload(id, p3, attendeeAddress)))
	})
	assert.Equal(t, "30", balanceOf(t, attendeeAddress))
}

func TestScavengerProgressIsPerAccount(t *testing.T) {
	setupContract(t)
	dropSeed := keySeed(1)
	p1, p2 := keySeed(11), keySeed(12)
	id := createDrop(t, ownerAddress, CreateTokenDrop, tokenDropPayload("hunt", dropSeed, "20", p1, p2))

	as(attendeeAddress)
	mustCall(t, func() { ClaimDrop(strptr(piecePayload(id, p1, attendeeAddress))) })

	// a different account starts from zero pieces
	as(visitorAddress)
	mustCall(t, func() { ClaimDrop(strptr(piecePayload(id, p1, visitorAddress))) })
	mustCall(t, func() { ClaimDrop(strptr(piecePayload(id, p2, visitorAddress))) })
	assert.Equal(t, "20", balanceOf(t, visitorAddress))
	assert.Equal(t, "0", balanceOf(t, attendeeAddress))
}

func TestNftClaimMintsIntoSeries(t *testing.T) {
	setupContract(t)
	dropSeed := keySeed(1)
	id := createDrop(t, ownerAddress, CreateNftDrop, nftDropPayload("poster", dropSeed, 1))
	seriesID := loadDrop(id).SeriesID

	as(attendeeAddress)
	mustCall(t, func() { ClaimDrop(strptr(claimPayload(id, dropSeed, attendeeAddress))) })

	series := decodeSeries(*SeriesGetOne(strptr(UInt64ToString(seriesID))))
	assert.Equal(t, uint64(1), series.NumMinted)

	logs := strings.Join(sdk.MockLogs(), "\n")
	assert.Contains(t, logs, `"event":"nft_mint"`)
	assert.Contains(t, logs, fmt.Sprintf("%d:1", seriesID))

	// single-copy series is exhausted, and the failed claim rolls back fully
	as(visitorAddress)
	mustFail(t, "series is sold out", func() {
		ClaimDrop(strptr(claimPayload(id, dropSeed, visitorAddress)))
	})
	assert.Equal(t, uint64(1), loadDrop(id).NumClaimed)
	assert.Nil(t, loadClaim(sdk.Address(visitorAddress), id))
}

func TestMultichainClaimEmitsRelayRequest(t *testing.T) {
	setupContract(t)
	dropSeed := keySeed(1)
	id := createDrop(t, ownerAddress, CreateMultichainDrop, multichainDropPayload("remote", dropSeed, 137))

	as(attendeeAddress)
	mustCall(t, func() { ClaimDrop(strptr(claimPayload(id, dropSeed, attendeeAddress))) })

	logs := strings.Join(sdk.MockLogs(), "\n")
	assert.Contains(t, logs, `"event":"multichain_mint_requested"`)
	assert.Contains(t, logs, `"chain_id":137`)
	assert.Contains(t, logs, attendeeAddress)
}

func TestClaimedDropsViewTracksProgress(t *testing.T) {
	setupContract(t)
	dropSeed := keySeed(1)
	p1, p2 := keySeed(11), keySeed(12)
	hunt := createDrop(t, ownerAddress, CreateTokenDrop, tokenDropPayload("hunt", dropSeed, "20", p1, p2))
	directSeed := keySeed(2)
	direct := createDrop(t, ownerAddress, CreateTokenDrop, tokenDropPayload("direct", directSeed, "5"))

	as(attendeeAddress)
	mustCall(t, func() { ClaimDrop(strptr(piecePayload(hunt, p1, attendeeAddress))) })
	mustCall(t, func() { ClaimDrop(strptr(claimPayload(direct, directSeed, attendeeAddress))) })

	claimed := *DropsClaimedForAccount(strptr(attendeeAddress))
	assert.Contains(t, claimed, hunt)
	assert.Contains(t, claimed, direct)
	// in-progress hunts appear once, not per piece
	assert.Equal(t, 2, strings.Count(claimed, `"id":`))
}

func TestFrozenContractBlocksClaims(t *testing.T) {
	setupContract(t)
	dropSeed := keySeed(1)
	id := createDrop(t, ownerAddress, CreateTokenDrop, tokenDropPayload("welcome", dropSeed, "10"))

	as(ownerAddress)
	mustCall(t, func() { FreezeToggle(nil) })

	as(attendeeAddress)
	mustFail(t, "contract is frozen", func() {
		ClaimDrop(strptr(claimPayload(id, dropSeed, attendeeAddress)))
	})
	// views keep working while frozen
	assert.Equal(t, "true", *IsFrozen(nil))
	assert.NotEqual(t, "null", *GetDrop(strptr(id)))

	as(ownerAddress)
	mustCall(t, func() { FreezeToggle(nil) })
	as(attendeeAddress)
	mustCall(t, func() { ClaimDrop(strptr(claimPayload(id, dropSeed, attendeeAddress))) })
	assert.Equal(t, "10", balanceOf(t, attendeeAddress))
}
