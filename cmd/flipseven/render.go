package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"flipseven/internal/view"
)

// termRenderer is the reference presentation: one compact text block per
// snapshot. Render runs on the client loop and Notice can also come from the
// input goroutine, hence the mutex.
type termRenderer struct {
	mu  sync.Mutex
	out io.Writer
}

func newTermRenderer(out io.Writer) *termRenderer {
	return &termRenderer{out: out}
}

func (r *termRenderer) Render(m view.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "── game %s · round %d", m.Code, m.Round)
	if !m.Started {
		b.WriteString(" · waiting to start")
		if m.ShowStart {
			b.WriteString(" (you may `start`)")
		}
	}
	b.WriteByte('\n')

	for _, p := range m.Players {
		marker := "  "
		if p.Active {
			marker = "▶ "
		}
		you := ""
		if p.You {
			you = " (you)"
		}
		state := ""
		if p.Finished {
			state = " [done]"
		}
		labels := make([]string, len(p.Cards))
		for i, c := range p.Cards {
			if c.Selectable {
				labels[i] = "[" + c.Label + "]"
			} else {
				labels[i] = c.Label
			}
		}
		fmt.Fprintf(&b, "%s%s%s%s  %s  round=%d total=%d\n",
			marker, p.Name, you, state, strings.Join(labels, " "), p.RoundScore, p.TotalScore)
	}

	if m.Prompt != nil {
		r.renderPrompt(&b, m.Prompt)
	}

	if m.RoundOverlay != nil {
		fmt.Fprintf(&b, "round over — next round in %ds\n", m.RoundOverlay.Remaining)
		for _, row := range m.RoundOverlay.Rows {
			fmt.Fprintf(&b, "  %s: +%d → %d\n", row.Name, row.RoundScore, row.TotalScore)
		}
	}

	if m.MatchWinner != "" {
		fmt.Fprintf(&b, "match over: %s wins\n", m.MatchWinner)
	} else if m.MyTurn && !m.ControlsDisabled {
		b.WriteString("your turn: `hit` or `stay`\n")
	}

	fmt.Fprint(r.out, b.String())
}

func (r *termRenderer) renderPrompt(b *strings.Builder, p *view.Prompt) {
	switch p.Kind {
	case view.PromptFreezeTarget:
		b.WriteString("choose who to freeze: ")
		writeTargets(b, p.Targets, "freeze")
	case view.PromptFlip3Target:
		b.WriteString("choose who must flip three: ")
		writeTargets(b, p.Targets, "flip3")
	case view.PromptDiscardTarget:
		fmt.Fprintf(b, "choose who discards (your slot %d): ", p.CardIdx)
		if len(p.Targets) == 0 {
			b.WriteString("(no eligible targets)\n")
			break
		}
		parts := make([]string, len(p.Targets))
		for i, o := range p.Targets {
			name := o.Name
			if o.Self {
				name += " (you)"
			}
			parts[i] = fmt.Sprintf("`target %s %d` %s", o.SID, p.CardIdx, name)
		}
		b.WriteString(strings.Join(parts, " · ") + "\n")
	case view.PromptDiscardCard:
		fmt.Fprintf(b, "choose a card to discard with `pick <idx>`: %v\n", p.CardChoices)
	}
}

func writeTargets(b *strings.Builder, opts []view.TargetOption, cmd string) {
	if len(opts) == 0 {
		b.WriteString("(no eligible targets)\n")
		return
	}
	parts := make([]string, len(opts))
	for i, o := range opts {
		name := o.Name
		if o.Self {
			name += " (you)"
		}
		parts[i] = fmt.Sprintf("`%s %s` %s", cmd, o.SID, name)
	}
	b.WriteString(strings.Join(parts, " · ") + "\n")
}

func (r *termRenderer) Notice(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "!! %s\n", text)
}
