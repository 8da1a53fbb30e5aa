// Package view projects an authoritative snapshot into an immutable render
// model. Projection is a pure function: no hidden client state beyond the
// action-lock flag passed in, so feeding the same snapshot twice yields the
// same model.
package view

import "flipseven/pkg/types"

// Model is what a renderer consumes. It is recomputed per snapshot and never
// mutated afterwards.
type Model struct {
	Code             string
	Round            int
	Started          bool
	Seated           bool
	MyTurn           bool
	ShowStart        bool
	ControlsDisabled bool
	Players          []PlayerModel
	Prompt           *Prompt
	RoundOverlay     *Overlay
	MatchWinner      string
}

type PlayerModel struct {
	SID        string
	Name       string
	You        bool
	Active     bool
	Finished   bool
	RoundScore int
	TotalScore int
	Cards      []CardModel
}

type CardModel struct {
	Label string
	// Selectable marks the viewer's own number cards while the discard
	// card-choice prompt names them.
	Selectable bool
}

// Overlay is the round-summary shown while the server holds the round in its
// reset phase. Remaining is filled in by the round coordinator.
type Overlay struct {
	Rows      []ScoreRow
	Remaining int
}

type ScoreRow struct {
	Name       string
	RoundScore int
	TotalScore int
}

// Project derives the render model for one viewer. playerID is the durable
// identity; the viewer's connection id is looked up from their seat, so an
// unseated viewer (between disconnect and rejoin ack) gets every control
// disabled and no prompt.
func Project(s *types.Snapshot, playerID string, locked bool) Model {
	seat, myIdx := s.Seat(playerID)
	selfSID := ""
	if seat != nil {
		selfSID = seat.SID
	}

	myTurn := s.Started && myIdx >= 0 && s.Turn == myIdx
	prompt := derivePrompt(s, selfSID)

	// Any open targeting prompt anywhere in the game, or an unresolved
	// round end, freezes ordinary hit/stay: the server will not advance
	// turn order until the sub-flow resolves.
	disabled := !myTurn ||
		locked ||
		(selfSID != "" && s.PendingFreeze == selfSID) ||
		(selfSID != "" && s.PendingFlip3 == selfSID) ||
		(selfSID != "" && s.PendingDiscardChooseTarget == selfSID) ||
		s.PendingDiscardChooseCard != "" ||
		s.PendingRoundReset ||
		s.MatchWinner != ""

	m := Model{
		Code:             s.Code,
		Round:            s.Round,
		Started:          s.Started,
		Seated:           myIdx >= 0,
		MyTurn:           myTurn,
		ShowStart:        !s.Started && playerID == s.OwnerPlayerID,
		ControlsDisabled: disabled,
		Prompt:           prompt,
		MatchWinner:      s.MatchWinner,
	}

	cardChoice := prompt != nil && prompt.Kind == PromptDiscardCard

	m.Players = make([]PlayerModel, len(s.Players))
	for i, p := range s.Players {
		pm := PlayerModel{
			SID:        p.SID,
			Name:       p.Name,
			You:        i == myIdx,
			Active:     s.Started && s.Turn == i,
			Finished:   p.Finished,
			RoundScore: p.RoundScore,
			TotalScore: p.TotalScore,
			Cards:      make([]CardModel, len(p.Cards)),
		}
		for j, c := range p.Cards {
			pm.Cards[j] = CardModel{
				Label:      c.Label(),
				Selectable: cardChoice && i == myIdx && c.Type == types.CardNumber,
			}
		}
		m.Players[i] = pm
	}

	if s.PendingRoundReset {
		ov := &Overlay{Rows: make([]ScoreRow, len(s.Players))}
		for i, p := range s.Players {
			ov.Rows[i] = ScoreRow{Name: p.Name, RoundScore: p.RoundScore, TotalScore: p.TotalScore}
		}
		m.RoundOverlay = ov
	}

	return m
}
