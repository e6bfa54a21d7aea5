package main

import (
	"conference_drops/sdk"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/holiman/uint256"
)

// State records are stored as compact JSON written with the tinyjson
// writer/lexer directly. Amounts travel as decimal strings so they stay exact
// at any magnitude.

type tinyMarshaler interface {
	MarshalTinyJSON(w *jwriter.Writer)
}

// encodeToString runs one marshaler and aborts on writer failure, which only
// happens on programming errors.
func encodeToString(m tinyMarshaler) string {
	w := jwriter.Writer{}
	m.MarshalTinyJSON(&w)
	data, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("state encode failed: " + err.Error())
	}
	return string(data)
}

// requireConsumed aborts when a stored blob did not parse cleanly. Stored
// state is contract-written, so a parse failure means corruption.
func requireConsumed(in *jlexer.Lexer) {
	in.Consumed()
	if err := in.Error(); err != nil {
		sdk.Abort("state decode failed: " + err.Error())
	}
}

func writeAmountField(w *jwriter.Writer, v *uint256.Int) {
	if v == nil {
		w.RawString(`"0"`)
		return
	}
	w.String(v.Dec())
}

func readAmountField(in *jlexer.Lexer) *uint256.Int {
	s := in.String()
	if in.Error() != nil {
		return uint256.NewInt(0)
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		in.AddError(err)
		return uint256.NewInt(0)
	}
	return v
}

func writeStringSlice(w *jwriter.Writer, vals []string) {
	w.RawByte('[')
	for i, v := range vals {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(v)
	}
	w.RawByte(']')
}

func readStringSlice(in *jlexer.Lexer) []string {
	if in.IsNull() {
		in.Skip()
		return nil
	}
	var out []string
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, in.String())
		in.WantComma()
	}
	in.Delim(']')
	return out
}

// -----------------------------------------------------------------------------
// AccountDetails
// -----------------------------------------------------------------------------

func (v *AccountDetails) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"balance":`)
	writeAmountField(w, v.Balance)
	w.RawString(`,"tokens_collected":`)
	writeAmountField(w, v.TokensCollected)
	w.RawString(`,"status":`)
	w.String(v.Status.String())
	w.RawString(`,"drops_created":`)
	writeStringSlice(w, v.DropsCreated)
	w.RawString(`,"drops_claimed":`)
	writeStringSlice(w, v.DropsClaimed)
	w.RawByte('}')
}

func (v *AccountDetails) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "balance":
			v.Balance = readAmountField(in)
		case "tokens_collected":
			v.TokensCollected = readAmountField(in)
		case "status":
			v.Status = parseAccountStatus(in.String())
		case "drops_created":
			v.DropsCreated = readStringSlice(in)
		case "drops_claimed":
			v.DropsClaimed = readStringSlice(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeAccountDetails(v *AccountDetails) string {
	return encodeToString(v)
}

func decodeAccountDetails(data string) *AccountDetails {
	in := jlexer.Lexer{Data: []byte(data)}
	out := newAccountDetails()
	out.UnmarshalTinyJSON(&in)
	requireConsumed(&in)
	return out
}

// -----------------------------------------------------------------------------
// Drop
// -----------------------------------------------------------------------------

func (v *ScavengerPiece) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"piece":`)
	w.String(v.Piece)
	w.RawString(`,"description":`)
	w.String(v.Description)
	w.RawString(`,"key":`)
	w.String(v.Key)
	w.RawByte('}')
}

func (v *ScavengerPiece) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "piece":
			v.Piece = in.String()
		case "description":
			v.Description = in.String()
		case "key":
			v.Key = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v *MultichainMetadata) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"chain_id":`)
	w.Uint64(v.ChainID)
	w.RawString(`,"contract_id":`)
	w.String(v.ContractID)
	w.RawString(`,"series_id":`)
	w.Uint64(v.SeriesID)
	w.RawByte('}')
}

func (v *MultichainMetadata) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "chain_id":
			v.ChainID = in.Uint64()
		case "contract_id":
			v.ContractID = in.String()
		case "series_id":
			v.SeriesID = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v *Drop) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"id":`)
	w.String(v.ID)
	w.RawString(`,"kind":`)
	w.String(v.Kind.String())
	w.RawString(`,"name":`)
	w.String(v.Name)
	w.RawString(`,"image":`)
	w.String(v.Image)
	w.RawString(`,"key":`)
	w.String(v.Key)
	w.RawString(`,"num_claimed":`)
	w.Uint64(v.NumClaimed)
	w.RawString(`,"scavenger_hunt":`)
	if v.ScavengerHunt == nil {
		w.RawString("null")
	} else {
		w.RawByte('[')
		for i := range v.ScavengerHunt {
			if i > 0 {
				w.RawByte(',')
			}
			v.ScavengerHunt[i].MarshalTinyJSON(w)
		}
		w.RawByte(']')
	}
	switch v.Kind {
	case DropKindToken:
		w.RawString(`,"token_amount":`)
		writeAmountField(w, v.TokenAmount)
	case DropKindNft:
		w.RawString(`,"series_id":`)
		w.Uint64(v.SeriesID)
	case DropKindMultichain:
		w.RawString(`,"multichain":`)
		if v.Multichain == nil {
			w.RawString("null")
		} else {
			v.Multichain.MarshalTinyJSON(w)
		}
	}
	w.RawByte('}')
}

func (v *Drop) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "id":
			v.ID = in.String()
		case "kind":
			v.Kind = parseDropKind(in.String())
		case "name":
			v.Name = in.String()
		case "image":
			v.Image = in.String()
		case "key":
			v.Key = in.String()
		case "num_claimed":
			v.NumClaimed = in.Uint64()
		case "scavenger_hunt":
			if in.IsNull() {
				in.Skip()
				v.ScavengerHunt = nil
			} else {
				in.Delim('[')
				for !in.IsDelim(']') {
					var piece ScavengerPiece
					piece.UnmarshalTinyJSON(in)
					v.ScavengerHunt = append(v.ScavengerHunt, piece)
					in.WantComma()
				}
				in.Delim(']')
			}
		case "token_amount":
			v.TokenAmount = readAmountField(in)
		case "series_id":
			v.SeriesID = in.Uint64()
		case "multichain":
			if in.IsNull() {
				in.Skip()
			} else {
				v.Multichain = &MultichainMetadata{}
				v.Multichain.UnmarshalTinyJSON(in)
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeDrop(v *Drop) string {
	return encodeToString(v)
}

func decodeDrop(data string) *Drop {
	in := jlexer.Lexer{Data: []byte(data)}
	out := &Drop{}
	out.UnmarshalTinyJSON(&in)
	requireConsumed(&in)
	return out
}

// -----------------------------------------------------------------------------
// ClaimProgress
// -----------------------------------------------------------------------------

func (v *ClaimProgress) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"kind":`)
	w.String(v.Kind.String())
	w.RawString(`,"found":`)
	if v.Found == nil {
		w.RawString("null")
	} else {
		writeStringSlice(w, v.Found)
	}
	w.RawByte('}')
}

func (v *ClaimProgress) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "kind":
			v.Kind = parseDropKind(in.String())
		case "found":
			v.Found = readStringSlice(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeClaimProgress(v *ClaimProgress) string {
	return encodeToString(v)
}

func decodeClaimProgress(data string) *ClaimProgress {
	in := jlexer.Lexer{Data: []byte(data)}
	out := &ClaimProgress{}
	out.UnmarshalTinyJSON(&in)
	requireConsumed(&in)
	return out
}

// -----------------------------------------------------------------------------
// Series
// -----------------------------------------------------------------------------

func (v *Series) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"id":`)
	w.Uint64(v.ID)
	w.RawString(`,"name":`)
	w.String(v.Name)
	w.RawString(`,"image":`)
	w.String(v.Image)
	w.RawString(`,"copies":`)
	w.Uint64(v.Copies)
	w.RawString(`,"num_minted":`)
	w.Uint64(v.NumMinted)
	w.RawString(`,"drop_id":`)
	w.String(v.DropID)
	w.RawByte('}')
}

func (v *Series) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "id":
			v.ID = in.Uint64()
		case "name":
			v.Name = in.String()
		case "image":
			v.Image = in.String()
		case "copies":
			v.Copies = in.Uint64()
		case "num_minted":
			v.NumMinted = in.Uint64()
		case "drop_id":
			v.DropID = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeSeries(v *Series) string {
	return encodeToString(v)
}

func decodeSeries(data string) *Series {
	in := jlexer.Lexer{Data: []byte(data)}
	out := &Series{}
	out.UnmarshalTinyJSON(&in)
	requireConsumed(&in)
	return out
}

// -----------------------------------------------------------------------------
// TicketInfo
// -----------------------------------------------------------------------------

func (v *TicketInfo) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"drop_id":`)
	w.String(v.DropID)
	w.RawString(`,"has_scanned":`)
	w.Bool(v.HasScanned)
	w.RawString(`,"account":`)
	w.String(v.Account.String())
	w.RawString(`,"metadata":`)
	w.String(v.Metadata)
	w.RawString(`,"starting_balance":`)
	writeAmountField(w, v.StartingBalance)
	w.RawString(`,"role":`)
	w.String(v.Role.String())
	w.RawByte('}')
}

func (v *TicketInfo) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "drop_id":
			v.DropID = in.String()
		case "has_scanned":
			v.HasScanned = in.Bool()
		case "account":
			v.Account = sdk.Address(in.String())
		case "metadata":
			v.Metadata = in.String()
		case "starting_balance":
			v.StartingBalance = readAmountField(in)
		case "role":
			v.Role = parseAccountStatus(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeTicketInfo(v *TicketInfo) string {
	return encodeToString(v)
}

func decodeTicketInfo(data string) *TicketInfo {
	in := jlexer.Lexer{Data: []byte(data)}
	out := &TicketInfo{StartingBalance: uint256.NewInt(0)}
	out.UnmarshalTinyJSON(&in)
	requireConsumed(&in)
	return out
}

// -----------------------------------------------------------------------------
// Transaction Entries & String Lists
// -----------------------------------------------------------------------------

func (v *TransactionEntry) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"kind":`)
	w.String(v.Kind)
	w.RawString(`,"account":`)
	w.String(v.Account)
	w.RawString(`,"receiver":`)
	w.String(v.Receiver)
	w.RawString(`,"reward":`)
	w.String(v.Reward)
	w.RawString(`,"amount":`)
	w.String(v.Amount)
	w.RawString(`,"timestamp":`)
	w.Int64(v.Timestamp)
	w.RawByte('}')
}

func (v *TransactionEntry) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "kind":
			v.Kind = in.String()
		case "account":
			v.Account = in.String()
		case "receiver":
			v.Receiver = in.String()
		case "reward":
			v.Reward = in.String()
		case "amount":
			v.Amount = in.String()
		case "timestamp":
			v.Timestamp = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func encodeTransactionList(entries []TransactionEntry) string {
	w := jwriter.Writer{}
	w.RawByte('[')
	for i := range entries {
		if i > 0 {
			w.RawByte(',')
		}
		entries[i].MarshalTinyJSON(&w)
	}
	w.RawByte(']')
	data, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("state encode failed: " + err.Error())
	}
	return string(data)
}

func decodeTransactionList(data string) []TransactionEntry {
	in := jlexer.Lexer{Data: []byte(data)}
	var out []TransactionEntry
	in.Delim('[')
	for !in.IsDelim(']') {
		var entry TransactionEntry
		entry.UnmarshalTinyJSON(&in)
		out = append(out, entry)
		in.WantComma()
	}
	in.Delim(']')
	requireConsumed(&in)
	return out
}

func encodeStringList(vals []string) string {
	w := jwriter.Writer{}
	writeStringSlice(&w, vals)
	data, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("state encode failed: " + err.Error())
	}
	return string(data)
}

func decodeStringList(data string) []string {
	in := jlexer.Lexer{Data: []byte(data)}
	out := readStringSlice(&in)
	requireConsumed(&in)
	return out
}
