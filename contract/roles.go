package main

import "conference_drops/sdk"

// -----------------------------------------------------------------------------
// Role Guards
// -----------------------------------------------------------------------------

// assertAdmin resolves the caller and aborts unless it holds the admin role.
func assertAdmin() sdk.Address {
	caller := resolveCaller()
	acc := loadAccount(caller)
	if acc == nil || !acc.Status.IsAdmin() {
		sdk.Abort("unauthorized: admin role required")
	}
	return caller
}

// assertSponsor admits sponsors and admins.
func assertSponsor() sdk.Address {
	caller := resolveCaller()
	acc := loadAccount(caller)
	if acc == nil || !acc.Status.IsSponsor() {
		sdk.Abort("unauthorized: sponsor role required")
	}
	return caller
}

// assertDataSetter admits data setters and admins.
func assertDataSetter() sdk.Address {
	caller := resolveCaller()
	acc := loadAccount(caller)
	if acc == nil || !acc.Status.IsDataSetter() {
		sdk.Abort("unauthorized: data setter role required")
	}
	return caller
}

// accountStatus returns the stored role for an address, StatusNone for
// untouched accounts.
func accountStatus(addr sdk.Address) AccountStatus {
	acc := loadAccount(addr)
	if acc == nil {
		return StatusNone
	}
	return acc.Status
}

// GrantRole assigns an elevated role to an account, admin only. Roles can be
// revoked by granting "basic".
func GrantRole(payload *string) *string {
	assertNotFrozen()
	assertAdmin()
	args := decodeGrantRoleArgs(payload)
	acc := getOrCreateAccount(args.Account)
	acc.Status = args.Role
	saveAccount(args.Account, acc)
	emitRoleGranted(args.Account.String(), args.Role)
	bumpTransactionCounter()
	return strptr(args.Account.String() + " is now " + args.Role.String())
}

// AccountStatusOf reports the role held by the account named in the payload.
func AccountStatusOf(payload *string) *string {
	addr := sdk.Address(unwrapPayload(payload, "account required"))
	return strptr(accountStatus(addr).String())
}
