package main

import (
	"strconv"
	"time"

	"conference_drops/sdk"

	"github.com/holiman/uint256"
)

// -----------------------------------------------------------------------------
// Counter Operations
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// bumpTransactionCounter increments the global mutating-call counter.
func bumpTransactionCounter() {
	setCount(TransactionsCount, getCount(TransactionsCount)+1)
}

// -----------------------------------------------------------------------------
// Amount Helpers
// -----------------------------------------------------------------------------

// loadAmount reads a uint256 stored as a decimal string, defaulting to zero.
func loadAmount(key string) *uint256.Int {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return uint256.NewInt(0)
	}
	return parseAmount(*ptr)
}

// saveAmount persists a uint256 as its decimal string.
func saveAmount(key string, v *uint256.Int) {
	sdk.StateSetObject(key, v.Dec())
}

// parseAmount converts decimal payload text into a uint256, aborting on junk
// or anything that does not fit 256 bits.
func parseAmount(val string) *uint256.Int {
	v, err := uint256.FromDecimal(val)
	if err != nil {
		sdk.Abort("invalid amount: " + val)
	}
	return v
}

// checkedAdd returns x+y or aborts with the given message on wraparound.
func checkedAdd(x, y *uint256.Int, msg string) *uint256.Int {
	sum, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		sdk.Abort(msg)
	}
	return sum
}

// checkedSub returns x-y or aborts with the given message on underflow.
func checkedSub(x, y *uint256.Int, msg string) *uint256.Int {
	diff, underflow := new(uint256.Int).SubOverflow(x, y)
	if underflow {
		sdk.Abort(msg)
	}
	return diff
}

// -----------------------------------------------------------------------------
// String Conversion Helpers
// -----------------------------------------------------------------------------

// UInt64ToString turns an id back into decimal text for logs or payload building.
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// parseCount converts payload text into a uint64 id, aborting on junk.
func parseCount(val string) uint64 {
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort("invalid numeric value: " + val)
	}
	return n
}

// Convenience helper
func strptr(s string) *string { return &s }

// -----------------------------------------------------------------------------
// Timestamp Helpers
// -----------------------------------------------------------------------------

// nowUnix returns the block timestamp as Unix seconds. Execution must stay
// deterministic across nodes, so a missing or unparseable timestamp reads as
// zero rather than falling back to the wall clock.
func nowUnix() int64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return 0
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}
