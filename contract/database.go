package main

import (
	"conference_drops/sdk"

	"github.com/CosmWasm/tinyjson/jwriter"
)

// Conference info blobs. Agenda and alerts are opaque text maintained by data
// setters; the contract only stamps when they changed.

func setInfoText(key string, tsKey string, text string) {
	sdk.StateSetObject(key, text)
	sdk.StateSetObject(tsKey, UInt64ToString(uint64(nowUnix())))
}

func getInfoText(key string, tsKey string) string {
	w := jwriter.Writer{}
	w.RawString(`{"text":`)
	if ptr := sdk.StateGetObject(key); ptr != nil {
		w.String(*ptr)
	} else {
		w.RawString(`""`)
	}
	w.RawString(`,"updated_at":`)
	if ptr := sdk.StateGetObject(tsKey); ptr != nil {
		w.RawString(*ptr)
	} else {
		w.RawByte('0')
	}
	w.RawByte('}')
	data, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("encode failed: " + err.Error())
	}
	return string(data)
}

// AgendaSet replaces the agenda text, data setter or admin only.
func AgendaSet(payload *string) *string {
	assertNotFrozen()
	assertDataSetter()
	text := unwrapPayload(payload, "agenda text required")
	setInfoText(AgendaKey, AgendaTimestampKey, text)
	bumpTransactionCounter()
	return strptr("agenda updated")
}

// AgendaGet returns the agenda text with its last-updated timestamp.
func AgendaGet(_ *string) *string {
	return strptr(getInfoText(AgendaKey, AgendaTimestampKey))
}

// AlertsSet replaces the alerts text, data setter or admin only.
func AlertsSet(payload *string) *string {
	assertNotFrozen()
	assertDataSetter()
	text := unwrapPayload(payload, "alerts text required")
	setInfoText(AlertsKey, AlertsTimestampKey, text)
	bumpTransactionCounter()
	return strptr("alerts updated")
}

// AlertsGet returns the alerts text with its last-updated timestamp.
func AlertsGet(_ *string) *string {
	return strptr(getInfoText(AlertsKey, AlertsTimestampKey))
}
