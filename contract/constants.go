package main

// -----------------------------------------------------------------------------
// Drop Identifiers
// -----------------------------------------------------------------------------

// DropDelimiter separates the creator account from the per-creator sequence
// number inside a drop id. Addresses never contain it (sdk.Address.IsValid),
// so a drop id always parses back into its creator without a side lookup.
const DropDelimiter = "||"

// -----------------------------------------------------------------------------
// Event Standards
// -----------------------------------------------------------------------------

const (
	// FtStandardName tags fungible-token mint/transfer events for indexers.
	FtStandardName = "ft101"
	// FtMetadataSpec is the version of the FT event payloads.
	FtMetadataSpec = "1.0.0"
	// ConferenceStandardName tags the domain events (drops, claims, tickets).
	ConferenceStandardName = "conf101"
	// ConferenceMetadataSpec is the version of the domain event payloads.
	ConferenceMetadataSpec = "1.0.0"
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxTicketKeysPerBatch caps one tickets_add call; larger batches should
	// be split so a single call stays within host limits.
	MaxTicketKeysPerBatch = 100
	// MaxNameLength limits drop and series display names.
	MaxNameLength = 250
	// DefaultDropPageSize applies when a paginated drop query omits a limit.
	DefaultDropPageSize = 50
	// LeaderboardSize is the number of ranked accounts kept.
	LeaderboardSize = 10
	// RecentTransactionsCap bounds the recent-activity ring buffer.
	RecentTransactionsCap = 10
)

// -----------------------------------------------------------------------------
// Counter & Config Keys
// -----------------------------------------------------------------------------

const (
	// SeriesCount holds an integer counter for NFT series (used for new ids).
	SeriesCount = "count:series"
	// TransactionsCount counts every successful mutating call for display.
	TransactionsCount = "count:txs"
	// TotalSupplyKey holds the circulating token supply as a decimal string.
	TotalSupplyKey = "ft:supply"
	// TotalTransferredKey accumulates every minted/transferred amount.
	TotalTransferredKey = "ft:transferred"
	// DropsIndexKey lists all drop ids in insertion order for pagination.
	DropsIndexKey = "drops:index"
	// TokenLeaderboardKey lists the top collector accounts, best first.
	TokenLeaderboardKey = "lb:tokens"
	// RecentTransactionsKey holds the bounded recent-activity ring.
	RecentTransactionsKey = "txs:recent"
	// OwnerKey stores the account that initialized the contract.
	OwnerKey = "cfg:owner"
	// FrozenKey flags the admin-set global halt.
	FrozenKey = "cfg:frozen"
	// AgendaKey / AlertsKey hold the DataSetter-maintained text blobs.
	AgendaKey          = "agenda"
	AgendaTimestampKey = "agenda:ts"
	AlertsKey          = "alerts"
	AlertsTimestampKey = "alerts:ts"
)
