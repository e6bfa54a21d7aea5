package sdk

import "strings"

type Sender struct {
	Address       Address   `json:"id"`
	RequiredAuths []Address `json:"required_auths"`
}

// Env is the per-call execution snapshot handed over by the host. SignerKey
// carries the public key that signed the transaction (empty for plain
// account-authenticated calls) so contracts can resolve ticket-based callers.
type Env struct {
	ContractId string `json:"contract.id"`
	TxId       string `json:"tx.id"`
	Timestamp  string `json:"block.timestamp"`
	Sender     Sender `json:"-"`
	SignerKey  string `json:"msg.signer_key"`
}

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type Address string

// String returns the literal representation (like hive:alice) of the address.
func (a Address) String() string {
	return string(a)
}

// Domain quickly checks the prefix to guess if we deal with user/contract/system domain.
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// IsValid is a light sanity check used before an address is persisted.
func (a Address) IsValid() bool {
	s := a.String()
	return s != "" && !strings.ContainsAny(s, "|\n")
}
