package view

import (
	"testing"

	"flipseven/pkg/types"
)

func TestFreezePromptTargets(t *testing.T) {
	s := twoPlayerSnap()
	s.Players = append(s.Players, types.Player{SID: "s3", PlayerID: "p3", Name: "Zoe", Finished: true})
	s.PendingFreeze = "s1"

	m := Project(s, "p1", false)
	if m.Prompt == nil || m.Prompt.Kind != PromptFreezeTarget {
		t.Fatalf("expected freeze prompt, got %+v", m.Prompt)
	}

	var sids []string
	for _, o := range m.Prompt.Targets {
		sids = append(sids, o.SID)
	}
	// self is a legal target; finished players are not
	if len(sids) != 2 || sids[0] != "s1" || sids[1] != "s2" {
		t.Fatalf("want targets [s1 s2], got %v", sids)
	}
	if !m.Prompt.Targets[0].Self {
		t.Fatal("first option should be marked self")
	}

	// prompt belongs to s1 only
	if Project(s, "p2", false).Prompt != nil {
		t.Fatal("non-prompted player must see no prompt")
	}
}

func TestEmptyTargetSetStillPrompts(t *testing.T) {
	s := twoPlayerSnap()
	s.Players[0].Finished = true
	s.Players[1].Finished = true
	s.PendingFlip3 = "s2"

	m := Project(s, "p2", false)
	if m.Prompt == nil || m.Prompt.Kind != PromptFlip3Target {
		t.Fatalf("prompt must render even without options, got %+v", m.Prompt)
	}
	if len(m.Prompt.Targets) != 0 {
		t.Fatalf("expected no options, got %v", m.Prompt.Targets)
	}
}

func TestDiscardTwoStepFlow(t *testing.T) {
	s := twoPlayerSnap()

	// step 1: A (s1) picks the discard target; card slot 2 is the acting
	// player's affected card.
	s.PendingDiscardChooseTarget = "s1"
	s.DiscardChooseTargetInfo = &types.DiscardTargetInfo{CardIdx: 2}

	a := Project(s, "p1", false)
	if a.Prompt == nil || a.Prompt.Kind != PromptDiscardTarget {
		t.Fatalf("A must see the target prompt, got %+v", a.Prompt)
	}
	if a.Prompt.CardIdx != 2 {
		t.Fatalf("prompt must carry card_idx 2, got %d", a.Prompt.CardIdx)
	}
	if len(a.Prompt.Targets) != 2 {
		t.Fatalf("both unfinished card-holding players are candidates, got %v", a.Prompt.Targets)
	}
	if b := Project(s, "p2", false); b.Prompt != nil {
		t.Fatalf("B must see nothing during step 1, got %+v", b.Prompt)
	}

	// step 2: B (s2) picks which of their number cards goes.
	s.PendingDiscardChooseTarget = ""
	s.DiscardChooseTargetInfo = nil
	s.PendingDiscardChooseCard = "s2"
	s.Players[1].Cards = []types.Card{
		{Type: types.CardSecondChance},
		{Type: types.CardNumber, Value: 9},
		{Type: types.CardNumber, Value: 2},
	}

	b := Project(s, "p2", false)
	if b.Prompt == nil || b.Prompt.Kind != PromptDiscardCard {
		t.Fatalf("B must see the card prompt, got %+v", b.Prompt)
	}
	if len(b.Prompt.CardChoices) != 2 || b.Prompt.CardChoices[0] != 1 || b.Prompt.CardChoices[1] != 2 {
		t.Fatalf("only number slots are selectable, got %v", b.Prompt.CardChoices)
	}

	// card views agree with the prompt
	cards := b.Players[1].Cards
	if cards[0].Selectable || !cards[1].Selectable || !cards[2].Selectable {
		t.Fatalf("selectable flags wrong: %+v", cards)
	}

	if a := Project(s, "p1", false); a.Prompt != nil {
		t.Fatalf("A must see nothing during step 2, got %+v", a.Prompt)
	}
}

func TestDiscardTargetsRequireCards(t *testing.T) {
	s := twoPlayerSnap()
	s.Players[1].Cards = nil
	s.PendingDiscardChooseTarget = "s1"
	s.DiscardChooseTargetInfo = &types.DiscardTargetInfo{CardIdx: 0}

	m := Project(s, "p1", false)
	if len(m.Prompt.Targets) != 1 || m.Prompt.Targets[0].SID != "s1" {
		t.Fatalf("cardless player must not be a discard target, got %v", m.Prompt.Targets)
	}
}
