package main

import "conference_drops/sdk"

const (
	// kAccount stores serialized AccountDetails blobs.
	kAccount byte = 0x01
	// kDrop contains encoded Drop records.
	kDrop byte = 0x02
	// kClaim houses per-(account,drop) ClaimProgress so unrelated claimants
	// never touch each other's records.
	kClaim byte = 0x03
	// kSeries stores the NFT series registry.
	kSeries byte = 0x04
	// kTicket maps issued ticket public keys to their TicketInfo.
	kTicket byte = 0x05
)

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// accountKey builds the storage key for an account's details.
func accountKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kAccount)
	buf = append(buf, addrStr...)
	return string(buf)
}

// dropKey builds the storage key for a drop by its composite id.
func dropKey(dropID string) string {
	buf := make([]byte, 0, 1+len(dropID))
	buf = append(buf, kDrop)
	buf = append(buf, dropID...)
	return string(buf)
}

// claimKey mixes account plus drop id; the NUL separator keeps prefixes from
// colliding since neither side may contain it.
func claimKey(addr sdk.Address, dropID string) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr)+1+len(dropID))
	buf = append(buf, kClaim)
	buf = append(buf, addrStr...)
	buf = append(buf, 0x00)
	buf = append(buf, dropID...)
	return string(buf)
}

// seriesKey builds the storage key for an NFT series by id.
func seriesKey(id uint64) string {
	var buf [9]byte
	buf[0] = kSeries
	packed := packU64LE(id, buf[:1])
	return string(packed)
}

// ticketKey builds the storage key for a ticket by its public key string.
func ticketKey(publicKey string) string {
	buf := make([]byte, 0, 1+len(publicKey))
	buf = append(buf, kTicket)
	buf = append(buf, publicKey...)
	return string(buf)
}
