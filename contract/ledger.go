package main

import (
	"conference_drops/sdk"

	"github.com/holiman/uint256"
)

// Fungible-token ledger. Balances live inside AccountDetails, supply and the
// cumulative transfer volume as standalone decimal strings. Every movement
// either completes fully or aborts the call, so supply always equals the sum
// of balances.

// internalMint creates fresh tokens for the receiver. With credit set the
// amount also counts toward the receiver's leaderboard score; dropID names
// the claim that caused the mint, empty for plain admin mints.
func internalMint(receiver sdk.Address, amount *uint256.Int, credit bool, dropID string) {
	if amount.IsZero() {
		sdk.Abort("amount must be positive")
	}
	acc := getOrCreateAccount(receiver)
	acc.Balance = checkedAdd(acc.Balance, amount, "balance overflow")
	if credit {
		acc.TokensCollected = checkedAdd(acc.TokensCollected, amount, "balance overflow")
	}
	saveAccount(receiver, acc)

	saveAmount(TotalSupplyKey, checkedAdd(loadAmount(TotalSupplyKey), amount, "supply overflow"))
	saveAmount(TotalTransferredKey, checkedAdd(loadAmount(TotalTransferredKey), amount, "supply overflow"))

	if credit {
		updateTokenLeaderboard(receiver, acc)
	}
	emitFtMint(receiver.String(), amount, acc.Balance)
	emitTokenMint(receiver.String(), amount, acc.Balance, dropID)
}

// internalTransfer moves tokens between two distinct accounts, withdrawing
// before depositing so a failed withdraw leaves the receiver untouched.
func internalTransfer(sender sdk.Address, receiver sdk.Address, amount *uint256.Int, credit bool, dropID string) {
	if amount.IsZero() {
		sdk.Abort("amount must be positive")
	}
	if sender == receiver {
		sdk.Abort("sender and receiver must differ")
	}
	senderAcc := getOrCreateAccount(sender)
	senderAcc.Balance = checkedSub(senderAcc.Balance, amount, "insufficient balance")
	saveAccount(sender, senderAcc)

	receiverAcc := getOrCreateAccount(receiver)
	receiverAcc.Balance = checkedAdd(receiverAcc.Balance, amount, "balance overflow")
	if credit {
		receiverAcc.TokensCollected = checkedAdd(receiverAcc.TokensCollected, amount, "balance overflow")
	}
	saveAccount(receiver, receiverAcc)

	saveAmount(TotalTransferredKey, checkedAdd(loadAmount(TotalTransferredKey), amount, "supply overflow"))

	if credit {
		updateTokenLeaderboard(receiver, receiverAcc)
	}
	emitFtTransfer(sender.String(), receiver.String(), amount, senderAcc.Balance, receiverAcc.Balance)
	emitTokenTransfer(sender.String(), receiver.String(), amount, receiverAcc.Balance, dropID)
}

// -----------------------------------------------------------------------------
// Entry Points
// -----------------------------------------------------------------------------

// FtMint creates tokens out of thin air for any account, admin only.
func FtMint(payload *string) *string {
	assertNotFrozen()
	caller := assertAdmin()
	args := decodeFtMintArgs(payload)
	internalMint(args.Account, args.Amount, false, "")
	addTransaction(TransactionEntry{
		Kind:      "ft_mint",
		Account:   caller.String(),
		Receiver:  args.Account.String(),
		Amount:    args.Amount.Dec(),
		Timestamp: nowUnix(),
	})
	bumpTransactionCounter()
	return strptr("minted " + args.Amount.Dec() + " to " + args.Account.String())
}

// FtTransfer moves tokens from the caller to the named receiver.
func FtTransfer(payload *string) *string {
	assertNotFrozen()
	caller := resolveCaller()
	args := decodeFtTransferArgs(payload)
	internalTransfer(caller, args.Receiver, args.Amount, false, "")
	addTransaction(TransactionEntry{
		Kind:      "ft_transfer",
		Account:   caller.String(),
		Receiver:  args.Receiver.String(),
		Amount:    args.Amount.Dec(),
		Timestamp: nowUnix(),
	})
	bumpTransactionCounter()
	return strptr(args.Amount.Dec())
}

// FtBalanceOf returns the balance of the account named in the payload.
// Unknown accounts read as zero.
func FtBalanceOf(payload *string) *string {
	addr := sdk.Address(unwrapPayload(payload, "account required"))
	acc := loadAccount(addr)
	if acc == nil {
		return strptr("0")
	}
	return strptr(acc.Balance.Dec())
}

// FtTotalSupply returns the circulating supply.
func FtTotalSupply(_ *string) *string {
	return strptr(loadAmount(TotalSupplyKey).Dec())
}

// FtTotalTransferred returns the cumulative volume ever minted or moved.
func FtTotalTransferred(_ *string) *string {
	return strptr(loadAmount(TotalTransferredKey).Dec())
}
