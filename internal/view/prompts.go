package view

import "flipseven/pkg/types"

// PromptKind names the targeting step the current snapshot instructs the
// viewer to perform. The machine is stateless: it is re-derived from every
// snapshot, so missed intermediate snapshots cannot strand it.
type PromptKind string

const (
	PromptFreezeTarget  PromptKind = "freeze_target"
	PromptFlip3Target   PromptKind = "flip3_target"
	PromptDiscardTarget PromptKind = "discard_target"
	PromptDiscardCard   PromptKind = "discard_card"
)

// Prompt is the single open targeting step, if any. Targets may be empty —
// the server owns prompt satisfiability and the client never synthesizes a
// fallback choice.
type Prompt struct {
	Kind    PromptKind
	Targets []TargetOption
	// CardIdx carries discard_choose_target_info.card_idx through the
	// target step so the emit names the acting player's affected slot.
	CardIdx int
	// CardChoices lists the viewer's selectable card slots during the
	// discard card step.
	CardChoices []int
}

type TargetOption struct {
	SID  string
	Name string
	Self bool
}

func derivePrompt(s *types.Snapshot, selfSID string) *Prompt {
	if selfSID == "" {
		return nil
	}

	switch selfSID {
	case s.PendingFreeze:
		return &Prompt{Kind: PromptFreezeTarget, Targets: effectTargets(s, selfSID)}

	case s.PendingFlip3:
		return &Prompt{Kind: PromptFlip3Target, Targets: effectTargets(s, selfSID)}

	case s.PendingDiscardChooseTarget:
		p := &Prompt{Kind: PromptDiscardTarget, Targets: discardTargets(s, selfSID)}
		if s.DiscardChooseTargetInfo != nil {
			p.CardIdx = s.DiscardChooseTargetInfo.CardIdx
		}
		return p
	}

	if s.PendingDiscardChooseCard == selfSID {
		return &Prompt{Kind: PromptDiscardCard, CardChoices: numberSlots(s, selfSID)}
	}
	return nil
}

// effectTargets lists freeze/flip-three candidates: any player still in the
// round, self included.
func effectTargets(s *types.Snapshot, selfSID string) []TargetOption {
	opts := []TargetOption{}
	for _, p := range s.Players {
		if p.Finished {
			continue
		}
		opts = append(opts, TargetOption{SID: p.SID, Name: p.Name, Self: p.SID == selfSID})
	}
	return opts
}

// discardTargets additionally requires the candidate to hold at least one
// card to give up.
func discardTargets(s *types.Snapshot, selfSID string) []TargetOption {
	opts := []TargetOption{}
	for _, p := range s.Players {
		if p.Finished || len(p.Cards) == 0 {
			continue
		}
		opts = append(opts, TargetOption{SID: p.SID, Name: p.Name, Self: p.SID == selfSID})
	}
	return opts
}

// numberSlots returns the indexes of the viewer's number cards; only those
// are legal discard picks.
func numberSlots(s *types.Snapshot, selfSID string) []int {
	slots := []int{}
	for _, p := range s.Players {
		if p.SID != selfSID {
			continue
		}
		for i, c := range p.Cards {
			if c.Type == types.CardNumber {
				slots = append(slots, i)
			}
		}
	}
	return slots
}
