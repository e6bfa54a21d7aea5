package main

import "conference_drops/sdk"

// Claim orchestration. One entry point handles both direct claims and
// scavenger-hunt progress; the reward pays out exactly once per account per
// drop, on the completing step.

// assertValidSignature checks that the claimant physically held the secret
// behind the expected key: the off-chain scanner signs "{account},{key}" with
// it, so a replay for a different account fails.
func assertValidSignature(account sdk.Address, expectedKey string, signature []byte) {
	message := account.String() + "," + expectedKey
	if !sdk.VerifySignature(expectedKey, message, signature) {
		sdk.Abort("invalid signature")
	}
}

// recordPiece advances scavenger progress and reports how many pieces the
// account now holds.
func recordPiece(caller sdk.Address, acc *AccountDetails, drop *Drop, pieceKey string) int {
	if pieceKey == "" {
		sdk.Abort("this drop requires a scavenger piece")
	}
	piece := drop.pieceByKey(pieceKey)
	if piece == nil {
		sdk.Abort("incorrect scavenger piece")
	}
	progress := loadClaim(caller, drop.ID)
	if progress == nil {
		progress = &ClaimProgress{Kind: drop.Kind, Found: []string{}}
		acc.DropsClaimed = append(acc.DropsClaimed, drop.ID)
	}
	if progress.contains(piece.Piece) {
		sdk.Abort("scavenger piece already claimed")
	}
	progress.Found = append(progress.Found, piece.Piece)
	saveClaim(caller, drop.ID, progress)
	saveAccount(caller, acc)
	return len(progress.Found)
}

// recordDirectClaim marks an ungated drop as claimed, at most once per
// account.
func recordDirectClaim(caller sdk.Address, acc *AccountDetails, drop *Drop) {
	if loadClaim(caller, drop.ID) != nil {
		sdk.Abort("drop already claimed")
	}
	saveClaim(caller, drop.ID, &ClaimProgress{Kind: drop.Kind})
	acc.DropsClaimed = append(acc.DropsClaimed, drop.ID)
	saveAccount(caller, acc)
}

// payoutDrop hands over the reward for one completed claim. Token drops by an
// admin mint fresh supply; sponsor drops spend from the sponsor's balance so
// a sponsor cannot promise more than it holds.
func payoutDrop(caller sdk.Address, drop *Drop) {
	switch drop.Kind {
	case DropKindToken:
		creator := parseDropCreator(drop.ID)
		creatorAcc := loadAccount(creator)
		if creatorAcc != nil && creatorAcc.Status.IsAdmin() {
			internalMint(caller, drop.TokenAmount, true, drop.ID)
			return
		}
		if creatorAcc == nil || creatorAcc.Balance.Cmp(drop.TokenAmount) < 0 {
			sdk.Abort("the creator does not have enough tokens to cover the claim")
		}
		internalTransfer(creator, caller, drop.TokenAmount, true, drop.ID)
	case DropKindNft:
		mintIntoSeries(drop.SeriesID, caller)
	case DropKindMultichain:
		emitMultichainMintRequested(caller.String(), drop.Multichain)
	}
}

// ClaimDrop processes one claim attempt against a drop. The attempt counter
// moves on every accepted step, including partial scavenger progress.
func ClaimDrop(payload *string) *string {
	assertNotFrozen()
	args := decodeClaimDropArgs(payload)
	drop := loadDrop(args.DropID)
	if drop == nil {
		sdk.Abort("drop not found")
	}
	caller := resolveCaller()

	expectedKey := drop.Key
	if args.ScavengerPiece != "" {
		expectedKey = args.ScavengerPiece
	}
	assertValidSignature(caller, expectedKey, args.Signature)

	drop.NumClaimed++
	saveDrop(drop)

	acc := getOrCreateAccount(caller)
	rewarded := true
	pieceName := ""
	found := 0
	if len(drop.ScavengerHunt) > 0 {
		found = recordPiece(caller, acc, drop, args.ScavengerPiece)
		if piece := drop.pieceByKey(args.ScavengerPiece); piece != nil {
			pieceName = piece.Piece
		}
		rewarded = found == len(drop.ScavengerHunt)
	} else {
		recordDirectClaim(caller, acc, drop)
	}

	if rewarded {
		payoutDrop(caller, drop)
		entry := TransactionEntry{
			Kind:      "drop_claim",
			Account:   caller.String(),
			Reward:    drop.Kind.String(),
			Timestamp: nowUnix(),
		}
		if drop.Kind == DropKindToken {
			entry.Amount = drop.TokenAmount.Dec()
		}
		addTransaction(entry)
	}

	emitDropClaim(drop.ID, caller.String(), pieceName, found, len(drop.ScavengerHunt), rewarded)
	bumpTransactionCounter()
	return strptr(encodeDrop(drop))
}
