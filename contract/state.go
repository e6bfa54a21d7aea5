package main

import (
	"conference_drops/sdk"
)

// -----------------------------------------------------------------------------
// Account Persistence
// -----------------------------------------------------------------------------

// loadAccount returns the stored details for an address or nil when the
// account has never been touched.
func loadAccount(addr sdk.Address) *AccountDetails {
	ptr := sdk.StateGetObject(accountKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeAccountDetails(*ptr)
}

// getOrCreateAccount loads an account, materializing a zeroed record on first
// reference.
func getOrCreateAccount(addr sdk.Address) *AccountDetails {
	if acc := loadAccount(addr); acc != nil {
		return acc
	}
	return newAccountDetails()
}

func saveAccount(addr sdk.Address, acc *AccountDetails) {
	sdk.StateSetObject(accountKey(addr), encodeAccountDetails(acc))
}

// -----------------------------------------------------------------------------
// Drop Persistence & Index
// -----------------------------------------------------------------------------

func loadDrop(dropID string) *Drop {
	ptr := sdk.StateGetObject(dropKey(dropID))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeDrop(*ptr)
}

func saveDrop(d *Drop) {
	sdk.StateSetObject(dropKey(d.ID), encodeDrop(d))
}

func deleteDropRecord(dropID string) {
	sdk.StateDeleteObject(dropKey(dropID))
}

// dropIndex returns every drop id in insertion order.
func dropIndex() []string {
	ptr := sdk.StateGetObject(DropsIndexKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeStringList(*ptr)
}

func saveDropIndex(ids []string) {
	sdk.StateSetObject(DropsIndexKey, encodeStringList(ids))
}

func addDropToIndex(dropID string) {
	saveDropIndex(append(dropIndex(), dropID))
}

func removeDropFromIndex(dropID string) {
	ids := dropIndex()
	out := ids[:0]
	for _, id := range ids {
		if id != dropID {
			out = append(out, id)
		}
	}
	saveDropIndex(out)
}

// -----------------------------------------------------------------------------
// Claim Progress Persistence
// -----------------------------------------------------------------------------

func loadClaim(addr sdk.Address, dropID string) *ClaimProgress {
	ptr := sdk.StateGetObject(claimKey(addr, dropID))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeClaimProgress(*ptr)
}

func saveClaim(addr sdk.Address, dropID string, c *ClaimProgress) {
	sdk.StateSetObject(claimKey(addr, dropID), encodeClaimProgress(c))
}

// -----------------------------------------------------------------------------
// Series Persistence
// -----------------------------------------------------------------------------

func loadSeries(id uint64) *Series {
	ptr := sdk.StateGetObject(seriesKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeSeries(*ptr)
}

func saveSeries(s *Series) {
	sdk.StateSetObject(seriesKey(s.ID), encodeSeries(s))
}

func deleteSeriesRecord(id uint64) {
	sdk.StateDeleteObject(seriesKey(id))
}

// -----------------------------------------------------------------------------
// Ticket Persistence
// -----------------------------------------------------------------------------

func loadTicket(publicKey string) *TicketInfo {
	ptr := sdk.StateGetObject(ticketKey(publicKey))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeTicketInfo(*ptr)
}

func saveTicket(publicKey string, t *TicketInfo) {
	sdk.StateSetObject(ticketKey(publicKey), encodeTicketInfo(t))
}

// -----------------------------------------------------------------------------
// Leaderboard & Recent Transactions
// -----------------------------------------------------------------------------

func loadLeaderboard() []string {
	ptr := sdk.StateGetObject(TokenLeaderboardKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeStringList(*ptr)
}

func saveLeaderboard(accounts []string) {
	sdk.StateSetObject(TokenLeaderboardKey, encodeStringList(accounts))
}

func loadRecentTransactions() []TransactionEntry {
	ptr := sdk.StateGetObject(RecentTransactionsKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeTransactionList(*ptr)
}

func saveRecentTransactions(entries []TransactionEntry) {
	sdk.StateSetObject(RecentTransactionsKey, encodeTransactionList(entries))
}
