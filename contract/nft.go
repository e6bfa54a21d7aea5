package main

import "conference_drops/sdk"

// Minimal NFT series registry backing nft drops. Tokens are identified as
// "{series}:{copy}" and announced through mint events; ownership tracking
// beyond that lives off-chain with the indexer.

// createSeries registers a new series and returns its id.
func createSeries(name string, image string, copies uint64, dropID string) uint64 {
	id := getCount(SeriesCount) + 1
	setCount(SeriesCount, id)
	saveSeries(&Series{
		ID:     id,
		Name:   name,
		Image:  image,
		Copies: copies,
		DropID: dropID,
	})
	return id
}

// mintIntoSeries issues the next copy of a series to the receiver and returns
// the token id.
func mintIntoSeries(id uint64, receiver sdk.Address) string {
	series := loadSeries(id)
	if series == nil {
		sdk.Abort("series not found")
	}
	if series.Copies > 0 && series.NumMinted >= series.Copies {
		sdk.Abort("series is sold out")
	}
	series.NumMinted++
	saveSeries(series)
	tokenID := UInt64ToString(series.ID) + ":" + UInt64ToString(series.NumMinted)
	emitNftMint(series.ID, tokenID, receiver.String())
	return tokenID
}

// SeriesGetOne returns the encoded series named by id in the payload, or
// "null" when it does not exist.
func SeriesGetOne(payload *string) *string {
	raw := unwrapPayload(payload, "series id required")
	id := parseCount(raw)
	series := loadSeries(id)
	if series == nil {
		return strptr("null")
	}
	return strptr(encodeSeries(series))
}
