package main

import (
	"sort"

	"conference_drops/sdk"

	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/holiman/uint256"
)

// -----------------------------------------------------------------------------
// Token Leaderboard
// -----------------------------------------------------------------------------

// updateTokenLeaderboard reranks the stored top list after an account's
// collected total moved. Accounts holding an elevated role are excluded so
// organizers and sponsors never crowd out attendees.
func updateTokenLeaderboard(addr sdk.Address, acc *AccountDetails) {
	if acc.Status != StatusNone {
		return
	}
	board := loadLeaderboard()
	present := false
	for _, entry := range board {
		if entry == addr.String() {
			present = true
			break
		}
	}
	if !present {
		board = append(board, addr.String())
	}
	collected := func(account string) *uint256.Int {
		if account == addr.String() {
			return acc.TokensCollected
		}
		if stored := loadAccount(sdk.Address(account)); stored != nil {
			return stored.TokensCollected
		}
		return uint256.NewInt(0)
	}
	sort.SliceStable(board, func(i, j int) bool {
		return collected(board[i]).Cmp(collected(board[j])) > 0
	})
	if len(board) > LeaderboardSize {
		board = board[:LeaderboardSize]
	}
	saveLeaderboard(board)
}

// LeaderboardTokens returns the ranked collectors with their totals.
func LeaderboardTokens(_ *string) *string {
	board := loadLeaderboard()
	w := jwriter.Writer{}
	w.RawByte('[')
	for i, account := range board {
		if i > 0 {
			w.RawByte(',')
		}
		w.RawString(`{"account":`)
		w.String(account)
		w.RawString(`,"tokens_collected":`)
		if acc := loadAccount(sdk.Address(account)); acc != nil {
			w.String(acc.TokensCollected.Dec())
		} else {
			w.RawString(`"0"`)
		}
		w.RawByte('}')
	}
	w.RawByte(']')
	data, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("encode failed: " + err.Error())
	}
	return strptr(string(data))
}

// -----------------------------------------------------------------------------
// Recent Transactions
// -----------------------------------------------------------------------------

// addTransaction pushes one entry onto the bounded ring, newest first.
func addTransaction(entry TransactionEntry) {
	entries := append([]TransactionEntry{entry}, loadRecentTransactions()...)
	if len(entries) > RecentTransactionsCap {
		entries = entries[:RecentTransactionsCap]
	}
	saveRecentTransactions(entries)
}

// TransactionsRecent returns the newest entries of the activity ring.
func TransactionsRecent(_ *string) *string {
	return strptr(encodeTransactionList(loadRecentTransactions()))
}

// TransactionsTotal returns the lifetime count of successful mutating calls.
func TransactionsTotal(_ *string) *string {
	return strptr(UInt64ToString(getCount(TransactionsCount)))
}
