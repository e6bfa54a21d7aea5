package main

import (
	"encoding/base64"
	"strings"

	"conference_drops/sdk"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/holiman/uint256"
)

// Call payloads arrive as one JSON string per entry point. Decoding runs the
// tinyjson lexer directly so malformed input aborts the call before any state
// is touched.

// unwrapPayload validates presence and strips an optional layer of quoting for
// the few entry points that take a bare string instead of a JSON object.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		in := jlexer.Lexer{Data: []byte(raw)}
		if s := in.String(); in.Error() == nil {
			raw = strings.TrimSpace(s)
		}
		if raw == "" {
			sdk.Abort(errMsg)
		}
	}
	return raw
}

// decodeArgs runs one argument unmarshaler over the payload and aborts on any
// trailing garbage or parse error.
func decodeArgs(payload *string, errMsg string, fn func(in *jlexer.Lexer)) {
	if payload == nil || strings.TrimSpace(*payload) == "" {
		sdk.Abort(errMsg)
	}
	in := jlexer.Lexer{Data: []byte(*payload)}
	fn(&in)
	in.Consumed()
	if err := in.Error(); err != nil {
		sdk.Abort("invalid payload: " + err.Error())
	}
}

// requireField aborts when a mandatory payload field came through empty.
func requireField(val string, field string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		sdk.Abort("missing required field: " + field)
	}
	return val
}

// -----------------------------------------------------------------------------
// Drop Creation Payloads
// -----------------------------------------------------------------------------

// dropCommonArgs holds the fields every drop variant shares.
type dropCommonArgs struct {
	Name          string
	Image         string
	Key           string
	ScavengerHunt []ScavengerPiece
}

// readCommonField consumes one shared field, reporting whether the key was
// recognized so variant decoders can layer their own fields on top.
func (a *dropCommonArgs) readCommonField(in *jlexer.Lexer, key string) bool {
	switch key {
	case "name":
		a.Name = in.String()
	case "image":
		a.Image = in.String()
	case "key":
		a.Key = in.String()
	case "scavenger_hunt":
		if in.IsNull() {
			in.Skip()
		} else {
			in.Delim('[')
			for !in.IsDelim(']') {
				var piece ScavengerPiece
				piece.UnmarshalTinyJSON(in)
				a.ScavengerHunt = append(a.ScavengerHunt, piece)
				in.WantComma()
			}
			in.Delim(']')
		}
	default:
		return false
	}
	return true
}

// validate enforces the shared constraints before any variant handling runs.
func (a *dropCommonArgs) validate() {
	a.Name = requireField(a.Name, "name")
	if len(a.Name) > MaxNameLength {
		sdk.Abort("name exceeds maximum length")
	}
	a.Key = requireField(a.Key, "key")
	for i := range a.ScavengerHunt {
		p := &a.ScavengerHunt[i]
		p.Piece = requireField(p.Piece, "scavenger_hunt.piece")
		p.Key = requireField(p.Key, "scavenger_hunt.key")
	}
}

type CreateTokenDropArgs struct {
	dropCommonArgs
	TokenAmount *uint256.Int
}

func decodeCreateTokenDropArgs(payload *string) *CreateTokenDropArgs {
	args := &CreateTokenDropArgs{}
	decodeArgs(payload, "token drop payload missing", func(in *jlexer.Lexer) {
		in.Delim('{')
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			if !args.readCommonField(in, key) {
				switch key {
				case "token_amount":
					args.TokenAmount = readAmountField(in)
				default:
					in.SkipRecursive()
				}
			}
			in.WantComma()
		}
		in.Delim('}')
	})
	args.validate()
	if args.TokenAmount == nil || args.TokenAmount.IsZero() {
		sdk.Abort("token drop requires a positive token_amount")
	}
	return args
}

type CreateNftDropArgs struct {
	dropCommonArgs
	SeriesName  string
	SeriesImage string
	Copies      uint64
}

func decodeCreateNftDropArgs(payload *string) *CreateNftDropArgs {
	args := &CreateNftDropArgs{}
	decodeArgs(payload, "nft drop payload missing", func(in *jlexer.Lexer) {
		in.Delim('{')
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			if !args.readCommonField(in, key) {
				switch key {
				case "series_name":
					args.SeriesName = in.String()
				case "series_image":
					args.SeriesImage = in.String()
				case "copies":
					args.Copies = in.Uint64()
				default:
					in.SkipRecursive()
				}
			}
			in.WantComma()
		}
		in.Delim('}')
	})
	args.validate()
	if args.SeriesName == "" {
		args.SeriesName = args.Name
	}
	if len(args.SeriesName) > MaxNameLength {
		sdk.Abort("series_name exceeds maximum length")
	}
	return args
}

type CreateMultichainDropArgs struct {
	dropCommonArgs
	ChainID    uint64
	ContractID string
	SeriesID   uint64
}

func decodeCreateMultichainDropArgs(payload *string) *CreateMultichainDropArgs {
	args := &CreateMultichainDropArgs{}
	decodeArgs(payload, "multichain drop payload missing", func(in *jlexer.Lexer) {
		in.Delim('{')
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			if !args.readCommonField(in, key) {
				switch key {
				case "chain_id":
					args.ChainID = in.Uint64()
				case "contract_id":
					args.ContractID = in.String()
				case "series_id":
					args.SeriesID = in.Uint64()
				default:
					in.SkipRecursive()
				}
			}
			in.WantComma()
		}
		in.Delim('}')
	})
	args.validate()
	args.ContractID = requireField(args.ContractID, "contract_id")
	return args
}

// -----------------------------------------------------------------------------
// Claim Payload
// -----------------------------------------------------------------------------

type ClaimDropArgs struct {
	DropID string
	// ScavengerPiece is the public key scanned from a hunt QR code, empty for
	// direct claims against the drop key.
	ScavengerPiece string
	Signature      []byte
}

func decodeClaimDropArgs(payload *string) *ClaimDropArgs {
	args := &ClaimDropArgs{}
	var sig string
	decodeArgs(payload, "claim payload missing", func(in *jlexer.Lexer) {
		in.Delim('{')
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			switch key {
			case "drop_id":
				args.DropID = in.String()
			case "scavenger_piece":
				args.ScavengerPiece = in.String()
			case "signature":
				sig = in.String()
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
	})
	args.DropID = requireField(args.DropID, "drop_id")
	sig = requireField(sig, "signature")
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		sdk.Abort("signature is not valid base64")
	}
	args.Signature = raw
	return args
}

// -----------------------------------------------------------------------------
// Token Payloads
// -----------------------------------------------------------------------------

type FtMintArgs struct {
	Account sdk.Address
	Amount  *uint256.Int
}

func decodeFtMintArgs(payload *string) *FtMintArgs {
	args := &FtMintArgs{}
	var account string
	decodeArgs(payload, "mint payload missing", func(in *jlexer.Lexer) {
		in.Delim('{')
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			switch key {
			case "account":
				account = in.String()
			case "amount":
				args.Amount = readAmountField(in)
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
	})
	args.Account = sdk.Address(requireField(account, "account"))
	if !args.Account.IsValid() {
		sdk.Abort("invalid account address")
	}
	if args.Amount == nil {
		sdk.Abort("missing required field: amount")
	}
	return args
}

type FtTransferArgs struct {
	Receiver sdk.Address
	Amount   *uint256.Int
}

func decodeFtTransferArgs(payload *string) *FtTransferArgs {
	args := &FtTransferArgs{}
	var receiver string
	decodeArgs(payload, "transfer payload missing", func(in *jlexer.Lexer) {
		in.Delim('{')
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			switch key {
			case "receiver":
				receiver = in.String()
			case "amount":
				args.Amount = readAmountField(in)
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
	})
	args.Receiver = sdk.Address(requireField(receiver, "receiver"))
	if !args.Receiver.IsValid() {
		sdk.Abort("invalid receiver address")
	}
	if args.Amount == nil {
		sdk.Abort("missing required field: amount")
	}
	return args
}

// -----------------------------------------------------------------------------
// Ticket Payloads
// -----------------------------------------------------------------------------

// TicketInput is one ticket in a tickets_add batch.
type TicketInput struct {
	Key             string
	DropID          string
	Metadata        string
	StartingBalance *uint256.Int
	Role            AccountStatus
}

type TicketsAddArgs struct {
	Tickets []TicketInput
}

func decodeTicketsAddArgs(payload *string) *TicketsAddArgs {
	args := &TicketsAddArgs{}
	decodeArgs(payload, "tickets payload missing", func(in *jlexer.Lexer) {
		in.Delim('{')
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			switch key {
			case "tickets":
				in.Delim('[')
				for !in.IsDelim(']') {
					var t TicketInput
					in.Delim('{')
					for !in.IsDelim('}') {
						field := in.UnsafeFieldName(false)
						in.WantColon()
						switch field {
						case "key":
							t.Key = in.String()
						case "drop_id":
							t.DropID = in.String()
						case "metadata":
							t.Metadata = in.String()
						case "starting_balance":
							t.StartingBalance = readAmountField(in)
						case "role":
							t.Role = parseAccountStatus(in.String())
						default:
							in.SkipRecursive()
						}
						in.WantComma()
					}
					in.Delim('}')
					args.Tickets = append(args.Tickets, t)
					in.WantComma()
				}
				in.Delim(']')
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
	})
	if len(args.Tickets) == 0 {
		sdk.Abort("tickets batch is empty")
	}
	if len(args.Tickets) > MaxTicketKeysPerBatch {
		sdk.Abort("tickets batch exceeds maximum size")
	}
	for i := range args.Tickets {
		t := &args.Tickets[i]
		t.Key = requireField(t.Key, "tickets.key")
		if t.StartingBalance == nil {
			t.StartingBalance = uint256.NewInt(0)
		}
	}
	return args
}

type AccountRegisterArgs struct {
	Account sdk.Address
}

func decodeAccountRegisterArgs(payload *string) *AccountRegisterArgs {
	var account string
	decodeArgs(payload, "register payload missing", func(in *jlexer.Lexer) {
		in.Delim('{')
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			switch key {
			case "account":
				account = in.String()
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
	})
	addr := sdk.Address(requireField(account, "account"))
	if !addr.IsValid() {
		sdk.Abort("invalid account address")
	}
	return &AccountRegisterArgs{Account: addr}
}

type GrantRoleArgs struct {
	Account sdk.Address
	Role    AccountStatus
}

func decodeGrantRoleArgs(payload *string) *GrantRoleArgs {
	var account, role string
	decodeArgs(payload, "role payload missing", func(in *jlexer.Lexer) {
		in.Delim('{')
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			switch key {
			case "account":
				account = in.String()
			case "role":
				role = in.String()
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
	})
	addr := sdk.Address(requireField(account, "account"))
	if !addr.IsValid() {
		sdk.Abort("invalid account address")
	}
	return &GrantRoleArgs{Account: addr, Role: parseAccountStatus(role)}
}

// -----------------------------------------------------------------------------
// Query Payloads
// -----------------------------------------------------------------------------

type PaginationArgs struct {
	Offset uint64
	Limit  uint64
}

// decodePaginationArgs tolerates a missing payload, falling back to the first
// page at the default size.
func decodePaginationArgs(payload *string) *PaginationArgs {
	args := &PaginationArgs{Limit: DefaultDropPageSize}
	if payload == nil || strings.TrimSpace(*payload) == "" {
		return args
	}
	decodeArgs(payload, "pagination payload missing", func(in *jlexer.Lexer) {
		in.Delim('{')
		for !in.IsDelim('}') {
			key := in.UnsafeFieldName(false)
			in.WantColon()
			switch key {
			case "offset":
				args.Offset = in.Uint64()
			case "limit":
				args.Limit = in.Uint64()
			default:
				in.SkipRecursive()
			}
			in.WantComma()
		}
		in.Delim('}')
	})
	if args.Limit == 0 {
		args.Limit = DefaultDropPageSize
	}
	return args
}
