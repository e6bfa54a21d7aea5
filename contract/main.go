////////////////////////////////////////////////////////////////////////////////
// Conference Drops: token and collectible drops for live events
////////////////////////////////////////////////////////////////////////////////

package main

import "conference_drops/sdk"

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

func isContractInitialized() bool {
	ptr := sdk.StateGetObject(OwnerKey)
	return ptr != nil && *ptr != ""
}

// ContractInit claims the contract for the calling account, which becomes the
// first admin. Must run before any other entry point.
func ContractInit(_ *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}
	owner := getSenderAddress()
	sdk.StateSetObject(OwnerKey, owner.String())

	acc := getOrCreateAccount(owner)
	acc.Status = StatusAdmin
	saveAccount(owner, acc)

	emitInitEvent(owner.String())
	return strptr("initialized with owner " + owner.String())
}
