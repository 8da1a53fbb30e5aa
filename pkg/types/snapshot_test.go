package types

import (
	"encoding/json"
	"testing"
)

func TestCardDecodeAndLabel(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"number", `{"type":"number","value":7}`, "7"},
		{"zero number", `{"type":"number","value":0}`, "0"},
		{"second chance", `{"type":"second_chance"}`, "🔁"},
		{"freeze unresolved", `{"type":"freeze"}`, "❄️"},
		{"freeze resolved", `{"type":"freeze","target":"ab12"}`, "❄️ab12"},
		{"flip three", `{"type":"flip_three","target":"cd34"}`, "3️⃣cd34"},
		{"bonus", `{"type":"bonus","value":15}`, "+15"},
		{"discard", `{"type":"discard"}`, "🗑️"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c Card
			if err := json.Unmarshal([]byte(tc.raw), &c); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := c.Label(); got != tc.want {
				t.Fatalf("label: want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSnapshotSeat(t *testing.T) {
	s := Snapshot{Players: []Player{
		{SID: "s1", PlayerID: "p1", Name: "Ann"},
		{SID: "s2", PlayerID: "p2", Name: "Ben"},
	}}

	p, i := s.Seat("p2")
	if i != 1 || p == nil || p.SID != "s2" {
		t.Fatalf("want seat 1/s2, got %d/%+v", i, p)
	}

	p, i = s.Seat("nobody")
	if i != -1 || p != nil {
		t.Fatalf("unseated viewer should get -1, got %d/%+v", i, p)
	}
}

func TestClientMessageOmitsUnsetCardIdx(t *testing.T) {
	raw, err := json.Marshal(ClientMessage{Event: EventHit})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"event":"hit"}` {
		t.Fatalf("unexpected wire form: %s", raw)
	}

	raw, err = json.Marshal(ClientMessage{Event: EventDiscardChooseCard, CardIdx: Idx(0)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"event":"discard_choose_card","card_idx":0}` {
		t.Fatalf("card_idx 0 must survive: %s", raw)
	}
}
