// Package emitter translates user intents into outbound protocol events.
// Blank input is rejected locally before any network write; targeting sends
// arm an action lock keyed to the snapshot version current at send time.
package emitter

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"flipseven/internal/identity"
	"flipseven/pkg/types"
)

var (
	ErrBlankName = errors.New("name must not be blank")
	ErrBlankCode = errors.New("game code must not be blank")
)

// Sender writes one outbound message to the rule engine.
type Sender interface {
	Send(ctx context.Context, m types.ClientMessage) error
}

// Emitter is owned by the client loop and is not safe for concurrent use;
// intents reach it through the loop's inbox.
type Emitter struct {
	sender Sender
	ids    *identity.Store
	log    *zap.Logger

	// action lock: armed by targeting sends, released when a later
	// snapshot carries a greater version (the server consumed an action)
	// or the server rejects the in-flight action. Never by timeout.
	locked      bool
	lockVersion int
	lastVersion int
}

func New(sender Sender, ids *identity.Store, log *zap.Logger) *Emitter {
	return &Emitter{sender: sender, ids: ids, log: log}
}

// Locked reports whether an action is in flight.
func (e *Emitter) Locked() bool { return e.locked }

// ObserveVersion folds in the version of each arriving snapshot and releases
// the lock once the action window has moved past the armed one.
func (e *Emitter) ObserveVersion(v int) {
	e.lastVersion = v
	if e.locked && v > e.lockVersion {
		e.locked = false
	}
}

// ClearLock releases the lock explicitly, used when the server reports the
// in-flight action as rejected.
func (e *Emitter) ClearLock() { e.locked = false }

func (e *Emitter) arm() {
	e.locked = true
	e.lockVersion = e.lastVersion
}

func (e *Emitter) send(ctx context.Context, m types.ClientMessage) error {
	if err := e.sender.Send(ctx, m); err != nil {
		e.log.Warn("send failed", zap.String("event", m.Event), zap.Error(err))
		return err
	}
	e.log.Debug("sent", zap.String("event", m.Event))
	return nil
}

func (e *Emitter) CreateGame(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	return e.send(ctx, types.ClientMessage{
		Event:    types.EventCreateGame,
		Name:     name,
		PlayerID: e.ids.PlayerID(),
	})
}

func (e *Emitter) JoinGame(ctx context.Context, name, code string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ErrBlankCode
	}
	return e.send(ctx, types.ClientMessage{
		Event:    types.EventJoinGame,
		Name:     name,
		Code:     code,
		PlayerID: e.ids.PlayerID(),
	})
}

// Rejoin re-asserts a persisted seat; fired by the loop on every (re)connect
// that finds a saved code.
func (e *Emitter) Rejoin(ctx context.Context, code string) error {
	return e.send(ctx, types.ClientMessage{
		Event:    types.EventRejoinGame,
		Code:     code,
		PlayerID: e.ids.PlayerID(),
	})
}

func (e *Emitter) StartGame(ctx context.Context) error {
	return e.send(ctx, types.ClientMessage{Event: types.EventStartGame})
}

func (e *Emitter) Hit(ctx context.Context) error {
	return e.send(ctx, types.ClientMessage{Event: types.EventHit})
}

func (e *Emitter) Stay(ctx context.Context) error {
	return e.send(ctx, types.ClientMessage{Event: types.EventStay})
}

func (e *Emitter) ChooseFreezeTarget(ctx context.Context, targetSID string) error {
	e.arm()
	return e.send(ctx, types.ClientMessage{Event: types.EventFreezeTarget, TargetSID: targetSID})
}

func (e *Emitter) ChooseFlip3Target(ctx context.Context, targetSID string) error {
	e.arm()
	return e.send(ctx, types.ClientMessage{Event: types.EventFlip3Target, TargetSID: targetSID})
}

func (e *Emitter) ChooseDiscardTarget(ctx context.Context, targetSID string, cardIdx int) error {
	e.arm()
	return e.send(ctx, types.ClientMessage{
		Event:     types.EventDiscardChooseTarget,
		TargetSID: targetSID,
		CardIdx:   types.Idx(cardIdx),
	})
}

func (e *Emitter) ChooseDiscardCard(ctx context.Context, cardIdx int) error {
	e.arm()
	return e.send(ctx, types.ClientMessage{
		Event:   types.EventDiscardChooseCard,
		CardIdx: types.Idx(cardIdx),
	})
}

func (e *Emitter) ProceedRound(ctx context.Context) error {
	return e.send(ctx, types.ClientMessage{Event: types.EventProceedRound})
}
