package main

import (
	"conference_drops/sdk"

	"github.com/holiman/uint256"
)

// AccountStatus is the elevated role attached to an account. Plain attendees
// carry StatusNone; Admin implies both Sponsor and DataSetter privileges.
type AccountStatus uint8

const (
	StatusNone       AccountStatus = 0
	StatusSponsor    AccountStatus = 1
	StatusDataSetter AccountStatus = 2
	StatusAdmin      AccountStatus = 3
)

func (s AccountStatus) IsAdmin() bool {
	return s == StatusAdmin
}

func (s AccountStatus) IsSponsor() bool {
	return s == StatusSponsor || s == StatusAdmin
}

func (s AccountStatus) IsDataSetter() bool {
	return s == StatusDataSetter || s == StatusAdmin
}

// String prints the role as lower-case text for events and payloads.
func (s AccountStatus) String() string {
	switch s {
	case StatusSponsor:
		return "sponsor"
	case StatusDataSetter:
		return "data_setter"
	case StatusAdmin:
		return "admin"
	default:
		return "basic"
	}
}

// parseAccountStatus maps payload text back onto the enum, aborting on junk.
func parseAccountStatus(val string) AccountStatus {
	switch val {
	case "", "basic":
		return StatusNone
	case "sponsor":
		return StatusSponsor
	case "data_setter":
		return StatusDataSetter
	case "admin":
		return StatusAdmin
	default:
		sdk.Abort("invalid account role: " + val)
		return StatusNone
	}
}

// AccountDetails is the per-participant record. Created lazily on first
// reference and never explicitly destroyed.
type AccountDetails struct {
	Balance         *uint256.Int
	TokensCollected *uint256.Int
	Status          AccountStatus
	// DropsCreated keeps insertion order; its length seeds the next drop id.
	DropsCreated []string
	// DropsClaimed indexes the drop ids this account has progress on so the
	// per-(account,drop) progress records can be enumerated in views.
	DropsClaimed []string
}

func newAccountDetails() *AccountDetails {
	return &AccountDetails{
		Balance:         uint256.NewInt(0),
		TokensCollected: uint256.NewInt(0),
	}
}

// DropKind discriminates the closed set of reward variants.
type DropKind uint8

const (
	DropKindToken      DropKind = 1
	DropKindNft        DropKind = 2
	DropKindMultichain DropKind = 3
)

func (k DropKind) String() string {
	switch k {
	case DropKindToken:
		return "token"
	case DropKindNft:
		return "nft"
	case DropKindMultichain:
		return "multichain"
	default:
		return "unknown"
	}
}

func parseDropKind(val string) DropKind {
	switch val {
	case "token":
		return DropKindToken
	case "nft":
		return DropKindNft
	case "multichain":
		return DropKindMultichain
	default:
		sdk.Abort("invalid drop kind: " + val)
		return 0
	}
}

// ScavengerPiece is one required find of a hunt. Piece is the display id,
// Key the ed25519 public key embedded in that piece's QR code.
type ScavengerPiece struct {
	Piece       string
	Description string
	Key         string
}

// MultichainMetadata points a drop at an NFT series on an external chain.
// The series must already exist on the destination contract.
type MultichainMetadata struct {
	ChainID    uint64
	ContractID string
	SeriesID   uint64
}

// Drop is the flattened tagged union of the three reward variants. Identity
// and the scavenger requirement are immutable after creation; only NumClaimed
// moves.
type Drop struct {
	ID   string
	Kind DropKind
	Name string
	// Image is display metadata for the frontend, opaque to the contract.
	Image string
	// Key authenticates claim signatures when no scavenger piece is named.
	Key        string
	NumClaimed uint64
	// ScavengerHunt is nil for ungated drops.
	ScavengerHunt []ScavengerPiece

	// Token payload.
	TokenAmount *uint256.Int
	// Nft payload.
	SeriesID uint64
	// Multichain payload.
	Multichain *MultichainMetadata
}

// pieceByKey finds the required piece matching a submitted QR-code key.
func (d *Drop) pieceByKey(key string) *ScavengerPiece {
	for i := range d.ScavengerHunt {
		if d.ScavengerHunt[i].Key == key {
			return &d.ScavengerHunt[i]
		}
	}
	return nil
}

// ClaimProgress tracks one account against one drop. Found == nil marks the
// terminal direct claim of an ungated drop; for scavenger drops it is the
// list of piece ids collected so far.
type ClaimProgress struct {
	Kind  DropKind
	Found []string
}

func (c *ClaimProgress) contains(piece string) bool {
	for _, f := range c.Found {
		if f == piece {
			return true
		}
	}
	return false
}

// Series is the minimal NFT-series record backing nft drops.
type Series struct {
	ID    uint64
	Name  string
	Image string
	// Copies caps mints into the series; 0 means unlimited.
	Copies    uint64
	NumMinted uint64
	DropID    string
}

// TicketInfo is the record behind one issued ticket key.
type TicketInfo struct {
	DropID     string
	HasScanned bool
	// Account stays empty until the ticket holder registers.
	Account         sdk.Address
	Metadata        string
	StartingBalance *uint256.Int
	Role            AccountStatus
}

// TransactionEntry is one row of the bounded recent-activity ring.
type TransactionEntry struct {
	Kind      string
	Account   string
	Receiver  string
	Reward    string
	Amount    string
	Timestamp int64
}
