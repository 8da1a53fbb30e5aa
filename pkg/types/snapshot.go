package types

import "strconv"

// CardType discriminates the card union.
type CardType string

const (
	CardNumber       CardType = "number"
	CardSecondChance CardType = "second_chance"
	CardFreeze       CardType = "freeze"
	CardFlipThree    CardType = "flip_three"
	CardBonus        CardType = "bonus"
	CardDiscard      CardType = "discard"
)

// Card is a tagged variant. Value is meaningful for number and bonus cards;
// Target is an optional display tag on freeze/flip-three/discard cards
// recording who resolved the effect.
type Card struct {
	Type   CardType `json:"type"`
	Value  int      `json:"value,omitempty"`
	Target string   `json:"target,omitempty"`
}

// Label renders the card for display, matching the table client's symbols.
func (c Card) Label() string {
	switch c.Type {
	case CardNumber:
		return strconv.Itoa(c.Value)
	case CardSecondChance:
		return "🔁"
	case CardFlipThree:
		return "3️⃣" + c.Target
	case CardFreeze:
		return "❄️" + c.Target
	case CardBonus:
		return "+" + strconv.Itoa(c.Value)
	case CardDiscard:
		return "🗑️" + c.Target
	default:
		return string(c.Type)
	}
}

// Player is one seat in the snapshot's turn order. SID is the player's
// connection id for this game; PlayerID is the durable identity that
// survives reconnects.
type Player struct {
	SID        string `json:"sid"`
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	Cards      []Card `json:"cards"`
	RoundScore int    `json:"round_score"`
	TotalScore int    `json:"total_score"`
	Finished   bool   `json:"finished"`
}

// DiscardTargetInfo names which card slot of the acting player drives the
// two-step discard flow; present only while the target choice is pending.
type DiscardTargetInfo struct {
	CardIdx int `json:"card_idx"`
}

// Snapshot is one authoritative game state. It fully replaces any prior
// snapshot; the client never merges two. Version increases every time the
// server consumes an action, which is what releases the local action lock.
type Snapshot struct {
	Version                    int                `json:"version"`
	Code                       string             `json:"code"`
	Round                      int                `json:"round"`
	Started                    bool               `json:"started"`
	Turn                       int                `json:"turn"`
	OwnerPlayerID              string             `json:"owner_player_id,omitempty"`
	Players                    []Player           `json:"players"`
	PendingFreeze              string             `json:"pending_freeze,omitempty"`
	PendingFlip3               string             `json:"pending_flip3,omitempty"`
	PendingDiscardChooseTarget string             `json:"pending_discard_choose_target,omitempty"`
	PendingDiscardChooseCard   string             `json:"pending_discard_choose_card,omitempty"`
	DiscardChooseTargetInfo    *DiscardTargetInfo `json:"discard_choose_target_info,omitempty"`
	PendingRoundReset          bool               `json:"pending_round_reset,omitempty"`
	MatchWinner                string             `json:"match_winner,omitempty"`
}

// Seat finds the local player's seat by durable identity. The second return
// is -1 when the viewer holds no seat in this snapshot (e.g. between a
// disconnect and the rejoin ack).
func (s *Snapshot) Seat(playerID string) (*Player, int) {
	for i := range s.Players {
		if s.Players[i].PlayerID == playerID {
			return &s.Players[i], i
		}
	}
	return nil, -1
}
