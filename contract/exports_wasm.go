//go:build wasm

package main

// Host-visible entry points. Each export is a thin wrapper over its operation
// so the same functions stay callable from host-side tests.

//go:wasmexport contract_init
func contractInitExport(payload *string) *string { return ContractInit(payload) }

//go:wasmexport freeze_toggle
func freezeToggleExport(payload *string) *string { return FreezeToggle(payload) }

//go:wasmexport is_frozen
func isFrozenExport(payload *string) *string { return IsFrozen(payload) }

//go:wasmexport account_grant_role
func grantRoleExport(payload *string) *string { return GrantRole(payload) }

//go:wasmexport account_status
func accountStatusExport(payload *string) *string { return AccountStatusOf(payload) }

//go:wasmexport tickets_add
func ticketsAddExport(payload *string) *string { return TicketsAdd(payload) }

//go:wasmexport ticket_scan
func ticketScanExport(payload *string) *string { return TicketScan(payload) }

//go:wasmexport account_register
func accountRegisterExport(payload *string) *string { return AccountRegister(payload) }

//go:wasmexport account_for_key
func accountForKeyExport(payload *string) *string { return AccountForKey(payload) }

//go:wasmexport drops_create_token
func createTokenDropExport(payload *string) *string { return CreateTokenDrop(payload) }

//go:wasmexport drops_create_nft
func createNftDropExport(payload *string) *string { return CreateNftDrop(payload) }

//go:wasmexport drops_create_multichain
func createMultichainDropExport(payload *string) *string { return CreateMultichainDrop(payload) }

//go:wasmexport drops_delete
func deleteDropExport(payload *string) *string { return DeleteDrop(payload) }

//go:wasmexport drops_claim
func claimDropExport(payload *string) *string { return ClaimDrop(payload) }

//go:wasmexport drops_get_one
func getDropExport(payload *string) *string { return GetDrop(payload) }

//go:wasmexport drops_get_paginated
func dropsGetPaginatedExport(payload *string) *string { return DropsGetPaginated(payload) }

//go:wasmexport drops_for_creator
func dropsForCreatorExport(payload *string) *string { return DropsForCreator(payload) }

//go:wasmexport drops_claimed_for_account
func dropsClaimedForAccountExport(payload *string) *string { return DropsClaimedForAccount(payload) }

//go:wasmexport ft_mint
func ftMintExport(payload *string) *string { return FtMint(payload) }

//go:wasmexport ft_transfer
func ftTransferExport(payload *string) *string { return FtTransfer(payload) }

//go:wasmexport ft_balance_of
func ftBalanceOfExport(payload *string) *string { return FtBalanceOf(payload) }

//go:wasmexport ft_total_supply
func ftTotalSupplyExport(payload *string) *string { return FtTotalSupply(payload) }

//go:wasmexport ft_total_transferred
func ftTotalTransferredExport(payload *string) *string { return FtTotalTransferred(payload) }

//go:wasmexport leaderboard_tokens
func leaderboardTokensExport(payload *string) *string { return LeaderboardTokens(payload) }

//go:wasmexport transactions_recent
func transactionsRecentExport(payload *string) *string { return TransactionsRecent(payload) }

//go:wasmexport transactions_total
func transactionsTotalExport(payload *string) *string { return TransactionsTotal(payload) }

//go:wasmexport series_get_one
func seriesGetOneExport(payload *string) *string { return SeriesGetOne(payload) }

//go:wasmexport agenda_set
func agendaSetExport(payload *string) *string { return AgendaSet(payload) }

//go:wasmexport agenda_get
func agendaGetExport(payload *string) *string { return AgendaGet(payload) }

//go:wasmexport alerts_set
func alertsSetExport(payload *string) *string { return AlertsSet(payload) }

//go:wasmexport alerts_get
func alertsGetExport(payload *string) *string { return AlertsGet(payload) }
