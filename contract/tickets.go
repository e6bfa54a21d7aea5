package main

import "conference_drops/sdk"

// Ticket lifecycle. Admins preload ticket keys, the door scanner marks them
// scanned, and the holder then binds an account to the key. From that point
// calls signed with the bare ticket key act as the bound account.

// signerTicket resolves the ticket behind the key that signed this call.
func signerTicket() (string, *TicketInfo) {
	env := currentEnv()
	if env.SignerKey == "" {
		sdk.Abort("call must be signed with a ticket key")
	}
	ticket := loadTicket(env.SignerKey)
	if ticket == nil {
		sdk.Abort("unknown ticket key")
	}
	return env.SignerKey, ticket
}

// TicketsAdd preloads a batch of ticket keys, admin only.
func TicketsAdd(payload *string) *string {
	assertNotFrozen()
	assertAdmin()
	args := decodeTicketsAddArgs(payload)
	for i := range args.Tickets {
		t := &args.Tickets[i]
		if sdk.DecodePublicKey(t.Key) == nil {
			sdk.Abort("invalid ticket key: " + t.Key)
		}
		if loadTicket(t.Key) != nil {
			sdk.Abort("ticket key already exists")
		}
		saveTicket(t.Key, &TicketInfo{
			DropID:          t.DropID,
			Metadata:        t.Metadata,
			StartingBalance: t.StartingBalance,
			Role:            t.Role,
		})
	}
	bumpTransactionCounter()
	return strptr("added " + UInt64ToString(uint64(len(args.Tickets))) + " tickets")
}

// TicketScan marks the signing ticket as scanned, once.
func TicketScan(_ *string) *string {
	assertNotFrozen()
	key, ticket := signerTicket()
	if ticket.HasScanned {
		sdk.Abort("ticket has already been scanned")
	}
	ticket.HasScanned = true
	saveTicket(key, ticket)
	emitTicketScan(ticket.DropID)
	bumpTransactionCounter()
	return strptr(encodeTicketInfo(ticket))
}

// AccountRegister binds a fresh account to the signing ticket, minting the
// ticket's starting balance. Starting funds do not count toward the
// leaderboard.
func AccountRegister(payload *string) *string {
	assertNotFrozen()
	args := decodeAccountRegisterArgs(payload)
	key, ticket := signerTicket()
	if !ticket.HasScanned {
		sdk.Abort("ticket must be scanned before registration")
	}
	if ticket.Account.IsValid() {
		sdk.Abort("ticket is already registered")
	}
	if loadAccount(args.Account) != nil {
		sdk.Abort("account already registered")
	}

	acc := newAccountDetails()
	acc.Status = ticket.Role
	saveAccount(args.Account, acc)

	ticket.Account = args.Account
	saveTicket(key, ticket)

	if !ticket.StartingBalance.IsZero() {
		internalMint(args.Account, ticket.StartingBalance, false, "")
	}
	emitAccountRegistered(args.Account.String(), ticket.Role)
	bumpTransactionCounter()
	return strptr(encodeTicketInfo(ticket))
}

// AccountForKey reports which account a ticket key is bound to, "null" when
// the key is unknown or unbound.
func AccountForKey(payload *string) *string {
	key := unwrapPayload(payload, "ticket key required")
	ticket := loadTicket(key)
	if ticket == nil || !ticket.Account.IsValid() {
		return strptr("null")
	}
	return strptr(ticket.Account.String())
}
