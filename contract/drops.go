package main

import (
	"strings"

	"conference_drops/sdk"

	"github.com/CosmWasm/tinyjson/jwriter"
)

// Drop registry. A drop id is "{creator}{delimiter}{sequence}" where the
// sequence is the creator's drop count at creation time, so ids are unique
// without a global counter and always parse back to their creator.

// newDropID derives the next id for a creator from its creation history.
func newDropID(creator sdk.Address, acc *AccountDetails) string {
	return creator.String() + DropDelimiter + UInt64ToString(uint64(len(acc.DropsCreated)))
}

// parseDropCreator extracts the creator account from a drop id.
func parseDropCreator(dropID string) sdk.Address {
	idx := strings.Index(dropID, DropDelimiter)
	if idx <= 0 {
		sdk.Abort("invalid drop id")
	}
	addr := sdk.Address(dropID[:idx])
	if !addr.IsValid() {
		sdk.Abort("invalid drop id")
	}
	return addr
}

// registerDrop persists a freshly built drop and threads it through the
// global index and the creator's history.
func registerDrop(creator sdk.Address, acc *AccountDetails, drop *Drop) {
	if loadDrop(drop.ID) != nil {
		sdk.Abort("drop id already exists")
	}
	saveDrop(drop)
	addDropToIndex(drop.ID)
	acc.DropsCreated = append(acc.DropsCreated, drop.ID)
	saveAccount(creator, acc)
	emitDropCreation(drop.ID, drop.Kind, creator.String(), len(drop.ScavengerHunt))
	bumpTransactionCounter()
}

// -----------------------------------------------------------------------------
// Creation Entry Points
// -----------------------------------------------------------------------------

// CreateTokenDrop registers a token-reward drop, sponsor or admin only.
func CreateTokenDrop(payload *string) *string {
	assertNotFrozen()
	creator := assertSponsor()
	args := decodeCreateTokenDropArgs(payload)
	acc := getOrCreateAccount(creator)
	drop := &Drop{
		ID:            newDropID(creator, acc),
		Kind:          DropKindToken,
		Name:          args.Name,
		Image:         args.Image,
		Key:           args.Key,
		ScavengerHunt: args.ScavengerHunt,
		TokenAmount:   args.TokenAmount,
	}
	registerDrop(creator, acc, drop)
	return strptr(encodeDrop(drop))
}

// CreateNftDrop registers an nft-reward drop together with its backing
// series, sponsor or admin only.
func CreateNftDrop(payload *string) *string {
	assertNotFrozen()
	creator := assertSponsor()
	args := decodeCreateNftDropArgs(payload)
	acc := getOrCreateAccount(creator)
	dropID := newDropID(creator, acc)
	seriesID := createSeries(args.SeriesName, args.SeriesImage, args.Copies, dropID)
	drop := &Drop{
		ID:            dropID,
		Kind:          DropKindNft,
		Name:          args.Name,
		Image:         args.Image,
		Key:           args.Key,
		ScavengerHunt: args.ScavengerHunt,
		SeriesID:      seriesID,
	}
	registerDrop(creator, acc, drop)
	return strptr(encodeDrop(drop))
}

// CreateMultichainDrop registers a drop whose reward is minted on another
// chain by an off-chain relayer, admin only.
func CreateMultichainDrop(payload *string) *string {
	assertNotFrozen()
	creator := assertAdmin()
	args := decodeCreateMultichainDropArgs(payload)
	acc := getOrCreateAccount(creator)
	drop := &Drop{
		ID:            newDropID(creator, acc),
		Kind:          DropKindMultichain,
		Name:          args.Name,
		Image:         args.Image,
		Key:           args.Key,
		ScavengerHunt: args.ScavengerHunt,
		Multichain: &MultichainMetadata{
			ChainID:    args.ChainID,
			ContractID: args.ContractID,
			SeriesID:   args.SeriesID,
		},
	}
	registerDrop(creator, acc, drop)
	return strptr(encodeDrop(drop))
}

// -----------------------------------------------------------------------------
// Deletion
// -----------------------------------------------------------------------------

// DeleteDrop removes a drop, its index entries and any backing series. Only
// the creator may delete; existing claim progress records stay behind as
// history.
func DeleteDrop(payload *string) *string {
	assertNotFrozen()
	caller := assertSponsor()
	dropID := unwrapPayload(payload, "drop id required")
	drop := loadDrop(dropID)
	if drop == nil {
		sdk.Abort("drop not found")
	}
	if parseDropCreator(dropID) != caller {
		sdk.Abort("only the drop creator can delete this drop")
	}
	deleteDropRecord(dropID)
	removeDropFromIndex(dropID)
	if drop.Kind == DropKindNft {
		deleteSeriesRecord(drop.SeriesID)
	}

	acc := getOrCreateAccount(caller)
	created := acc.DropsCreated[:0]
	for _, id := range acc.DropsCreated {
		if id != dropID {
			created = append(created, id)
		}
	}
	acc.DropsCreated = created
	saveAccount(caller, acc)

	emitDropDeleted(dropID)
	bumpTransactionCounter()
	return strptr("deleted " + dropID)
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

// GetDrop returns one encoded drop or "null" when the id is unknown.
func GetDrop(payload *string) *string {
	dropID := unwrapPayload(payload, "drop id required")
	drop := loadDrop(dropID)
	if drop == nil {
		return strptr("null")
	}
	return strptr(encodeDrop(drop))
}

// encodeDropList renders ids into a JSON array of full drop objects, skipping
// ids whose record vanished.
func encodeDropList(ids []string) string {
	w := jwriter.Writer{}
	w.RawByte('[')
	first := true
	for _, id := range ids {
		drop := loadDrop(id)
		if drop == nil {
			continue
		}
		if !first {
			w.RawByte(',')
		}
		first = false
		drop.MarshalTinyJSON(&w)
	}
	w.RawByte(']')
	data, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("encode failed: " + err.Error())
	}
	return string(data)
}

// DropsGetPaginated returns a page of all drops in creation order.
func DropsGetPaginated(payload *string) *string {
	args := decodePaginationArgs(payload)
	ids := dropIndex()
	if args.Offset >= uint64(len(ids)) {
		return strptr("[]")
	}
	// clamp via the remaining count so a huge limit cannot wrap the slice end
	limit := args.Limit
	if remaining := uint64(len(ids)) - args.Offset; limit > remaining {
		limit = remaining
	}
	return strptr(encodeDropList(ids[args.Offset : args.Offset+limit]))
}

// DropsForCreator returns every drop created by the account in the payload.
func DropsForCreator(payload *string) *string {
	addr := sdk.Address(unwrapPayload(payload, "account required"))
	acc := loadAccount(addr)
	if acc == nil {
		return strptr("[]")
	}
	return strptr(encodeDropList(acc.DropsCreated))
}

// DropsClaimedForAccount returns the drops an account holds claim progress
// on, including completed ones.
func DropsClaimedForAccount(payload *string) *string {
	addr := sdk.Address(unwrapPayload(payload, "account required"))
	acc := loadAccount(addr)
	if acc == nil {
		return strptr("[]")
	}
	return strptr(encodeDropList(acc.DropsClaimed))
}
