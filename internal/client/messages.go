package client

import (
	"flipseven/internal/view"
	"flipseven/pkg/types"
)

// Msg is anything the client loop consumes: transport events, user intents,
// countdown ticks.
type Msg interface{ isClientMsg() }

// FromServer delivers one decoded inbound message.
type FromServer struct{ Msg types.ServerMessage }

// Connected fires after each successful (re)connect; the loop answers with a
// rejoin when a saved game code exists.
type Connected struct{}

// Disconnected reports a dropped transport; the transport layer retries on
// its own.
type Disconnected struct{ Err error }

// User intents, one per emitter call.
type CreateGame struct{ Name string }
type JoinGame struct{ Name, Code string }
type StartGame struct{}
type Hit struct{}
type Stay struct{}
type ChooseFreezeTarget struct{ TargetSID string }
type ChooseFlip3Target struct{ TargetSID string }
type ChooseDiscardTarget struct {
	TargetSID string
	CardIdx   int
}
type ChooseDiscardCard struct{ CardIdx int }

// GetModel reads the latest render model without racing the loop. Reply gets
// nil while no snapshot has arrived yet.
type GetModel struct{ Reply chan *view.Model }

type Shutdown struct{}

// tick is a countdown tick; gen guards against stale fires after the
// countdown was cancelled or restarted.
type tick struct{ gen int }

func (FromServer) isClientMsg()          {}
func (Connected) isClientMsg()           {}
func (Disconnected) isClientMsg()        {}
func (CreateGame) isClientMsg()          {}
func (JoinGame) isClientMsg()            {}
func (StartGame) isClientMsg()           {}
func (Hit) isClientMsg()                 {}
func (Stay) isClientMsg()                {}
func (ChooseFreezeTarget) isClientMsg()  {}
func (ChooseFlip3Target) isClientMsg()   {}
func (ChooseDiscardTarget) isClientMsg() {}
func (ChooseDiscardCard) isClientMsg()   {}
func (GetModel) isClientMsg()            {}
func (Shutdown) isClientMsg()            {}
func (tick) isClientMsg()                {}
