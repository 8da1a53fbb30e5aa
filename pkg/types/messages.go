package types

// Client -> Server event names.
const (
	EventCreateGame          = "create_game"
	EventJoinGame            = "join_game"
	EventRejoinGame          = "rejoin_game"
	EventStartGame           = "start_game"
	EventHit                 = "hit"
	EventStay                = "stay"
	EventFreezeTarget        = "freeze_target"
	EventFlip3Target         = "flip3_target"
	EventDiscardChooseTarget = "discard_choose_target"
	EventDiscardChooseCard   = "discard_choose_card"
	EventProceedRound        = "proceed_round"
)

// Server -> Client message types.
const (
	MsgState = "state"
	MsgError = "error"
)

// ClientMessage is the outbound envelope. Payload fields are flat with
// omitempty; each event fills only the fields its payload defines.
// CardIdx is a pointer because slot 0 is a valid card index.
type ClientMessage struct {
	Event     string `json:"event"`
	Name      string `json:"name,omitempty"`
	Code      string `json:"code,omitempty"`
	PlayerID  string `json:"player_id,omitempty"`
	TargetSID string `json:"target_sid,omitempty"`
	CardIdx   *int   `json:"card_idx,omitempty"`
}

// ErrorKind classifies rule-engine errors so the client can decide whether a
// failed action should release the local action lock.
type ErrorKind string

const (
	ErrorValidation ErrorKind = "validation"
	ErrorRejected   ErrorKind = "rejected"
	ErrorNotFound   ErrorKind = "not_found"
	ErrorConflict   ErrorKind = "conflict"
	ErrorInternal   ErrorKind = "internal"
)

type ErrorInfo struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// ServerMessage is the inbound envelope: a full state snapshot or a
// structured error, never both.
type ServerMessage struct {
	Type  string     `json:"type"` // "state" | "error"
	State *Snapshot  `json:"state,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
}

// Idx boxes a card index for ClientMessage.CardIdx.
func Idx(i int) *int { return &i }
