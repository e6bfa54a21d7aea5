package main

import "conference_drops/sdk"

// -----------------------------------------------------------------------------
// Global Freeze
// -----------------------------------------------------------------------------

// isFrozen reports whether the admin halt is active.
func isFrozen() bool {
	ptr := sdk.StateGetObject(FrozenKey)
	return ptr != nil && *ptr == "1"
}

// assertNotFrozen aborts every mutating call while the contract is halted.
// Views keep working so the situation stays inspectable.
func assertNotFrozen() {
	if isFrozen() {
		sdk.Abort("contract is frozen")
	}
}

// FreezeToggle flips the global halt, admin only. The toggle itself is exempt
// from the freeze check so an admin can always unfreeze.
func FreezeToggle(_ *string) *string {
	assertAdmin()
	next := !isFrozen()
	if next {
		sdk.StateSetObject(FrozenKey, "1")
	} else {
		sdk.StateSetObject(FrozenKey, "0")
	}
	emitFreezeToggled(next)
	bumpTransactionCounter()
	if next {
		return strptr("contract frozen")
	}
	return strptr("contract unfrozen")
}

// IsFrozen exposes the freeze flag as a view.
func IsFrozen(_ *string) *string {
	if isFrozen() {
		return strptr("true")
	}
	return strptr("false")
}
