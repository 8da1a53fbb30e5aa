// Package client runs the single-goroutine loop that composes identity,
// emitter, projection and round coordination. Exactly one inbound event is
// processed at a time, so no state in the loop needs locking.
package client

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"flipseven/internal/emitter"
	"flipseven/internal/identity"
	"flipseven/internal/rounds"
	"flipseven/internal/view"
	"flipseven/pkg/types"
)

// Renderer is the presentation boundary. Render receives an immutable model
// per snapshot; Notice carries transient or terminal user-facing text
// (validation errors, rule rejections, the match winner).
type Renderer interface {
	Render(m view.Model)
	Notice(text string)
}

type Client struct {
	inbox    chan Msg
	emit     *emitter.Emitter
	ids      *identity.Store
	coord    *rounds.Coordinator
	renderer Renderer
	log      *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	tickEvery time.Duration

	// loop-owned state
	snap           *types.Snapshot
	model          *view.Model
	timerGen       int
	winnerNotified bool
}

// New starts the loop. tickEvery is the countdown tick interval; zero means
// one second (tests shrink it).
func New(parent context.Context, emit *emitter.Emitter, ids *identity.Store, r Renderer, log *zap.Logger, tickEvery time.Duration) *Client {
	if tickEvery <= 0 {
		tickEvery = time.Second
	}
	ctx, cancel := context.WithCancel(parent)
	c := &Client{
		inbox:     make(chan Msg, 64),
		emit:      emit,
		ids:       ids,
		coord:     rounds.New(),
		renderer:  r,
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
		tickEvery: tickEvery,
	}
	go c.loop()
	return c
}

func (c *Client) Inbox() chan<- Msg { return c.inbox }

// Done closes when the loop has shut down, via Shutdown or parent cancel.
func (c *Client) Done() <-chan struct{} { return c.ctx.Done() }

func (c *Client) loop() {
	for {
		select {
		case <-c.ctx.Done():
			return

		case m := <-c.inbox:
			switch msg := m.(type) {
			case FromServer:
				c.handleServer(msg.Msg)

			case Connected:
				if code, ok := c.ids.SavedGameCode(); ok {
					c.log.Info("reasserting seat", zap.String("code", code))
					_ = c.emit.Rejoin(c.ctx, code)
				}

			case Disconnected:
				c.log.Warn("transport dropped", zap.Error(msg.Err))

			case tick:
				c.handleTick(msg.gen)

			case CreateGame:
				c.intent(c.emit.CreateGame(c.ctx, msg.Name))
			case JoinGame:
				c.intent(c.emit.JoinGame(c.ctx, msg.Name, msg.Code))
			case StartGame:
				c.intent(c.emit.StartGame(c.ctx))
			case Hit:
				c.intent(c.emit.Hit(c.ctx))
			case Stay:
				c.intent(c.emit.Stay(c.ctx))
			case ChooseFreezeTarget:
				c.intent(c.emit.ChooseFreezeTarget(c.ctx, msg.TargetSID))
				c.render()
			case ChooseFlip3Target:
				c.intent(c.emit.ChooseFlip3Target(c.ctx, msg.TargetSID))
				c.render()
			case ChooseDiscardTarget:
				c.intent(c.emit.ChooseDiscardTarget(c.ctx, msg.TargetSID, msg.CardIdx))
				c.render()
			case ChooseDiscardCard:
				c.intent(c.emit.ChooseDiscardCard(c.ctx, msg.CardIdx))
				c.render()

			case GetModel:
				msg.Reply <- c.model

			case Shutdown:
				c.cancel()
				return
			}
		}
	}
}

// intent surfaces local validation failures as transient notices; network
// errors are already logged by the emitter and the action will be retried by
// the user, not the client.
func (c *Client) intent(err error) {
	if errors.Is(err, emitter.ErrBlankName) || errors.Is(err, emitter.ErrBlankCode) {
		c.renderer.Notice(err.Error())
	}
}

func (c *Client) handleServer(m types.ServerMessage) {
	switch m.Type {
	case types.MsgState:
		if m.State != nil {
			c.applySnapshot(m.State)
		}
	case types.MsgError:
		if m.Error == nil {
			return
		}
		c.log.Info("server error", zap.String("kind", string(m.Error.Kind)), zap.String("message", m.Error.Message))
		if m.Error.Kind == types.ErrorRejected {
			c.emit.ClearLock()
		}
		c.renderer.Notice(m.Error.Message)
		c.render()
	}
}

func (c *Client) applySnapshot(s *types.Snapshot) {
	c.emit.ObserveVersion(s.Version)

	if s.Code != "" && s.MatchWinner == "" {
		if err := c.ids.SaveGameCode(s.Code); err != nil {
			c.log.Warn("persist game code", zap.Error(err))
		}
	}

	c.snap = s

	selfSID := ""
	if seat, _ := s.Seat(c.ids.PlayerID()); seat != nil {
		selfSID = seat.SID
	}

	switch c.coord.Observe(s, selfSID) {
	case rounds.Entered:
		c.startCountdown()
	case rounds.Left:
		c.timerGen++ // orphan any pending tick
	}

	if s.MatchWinner != "" {
		if !c.winnerNotified {
			c.winnerNotified = true
			c.renderer.Notice("🏆 " + s.MatchWinner + " wins the match!")
			if err := c.ids.ClearGameCode(); err != nil {
				c.log.Warn("clear game code", zap.Error(err))
			}
		}
	} else {
		c.winnerNotified = false
	}

	c.render()
}

func (c *Client) startCountdown() {
	c.timerGen++
	c.scheduleTick(c.timerGen)
}

func (c *Client) scheduleTick(gen int) {
	time.AfterFunc(c.tickEvery, func() {
		select {
		case c.inbox <- tick{gen: gen}:
		case <-c.ctx.Done():
		}
	})
}

func (c *Client) handleTick(gen int) {
	if gen != c.timerGen {
		return // stale fire from a cancelled countdown
	}
	switch c.coord.Tick() {
	case rounds.Fire:
		c.log.Info("countdown elapsed, requesting round advance")
		_ = c.emit.ProceedRound(c.ctx)
		c.render()
	case rounds.CountingDown:
		c.scheduleTick(gen)
		c.render()
	case rounds.Idle:
	}
}

func (c *Client) render() {
	if c.snap == nil {
		return
	}
	m := view.Project(c.snap, c.ids.PlayerID(), c.emit.Locked())
	if m.RoundOverlay != nil {
		m.RoundOverlay.Remaining = c.coord.DisplayRemaining()
	}
	c.model = &m
	c.renderer.Render(m)
}
