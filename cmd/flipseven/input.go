package main

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"flipseven/internal/client"
)

// readCommands turns stdin lines into client intents. Validation of the
// payloads themselves (blank names, bad targets) is the emitter's and the
// server's business; this layer only parses shape.
func readCommands(ctx context.Context, in io.Reader, inbox chan<- client.Msg, rend *termRenderer) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		var msg client.Msg
		switch cmd, args := fields[0], fields[1:]; cmd {
		case "create":
			msg = client.CreateGame{Name: strings.Join(args, " ")}
		case "join":
			if len(args) < 1 {
				rend.Notice("usage: join <code> <name>")
				continue
			}
			msg = client.JoinGame{Code: args[0], Name: strings.Join(args[1:], " ")}
		case "start":
			msg = client.StartGame{}
		case "hit":
			msg = client.Hit{}
		case "stay":
			msg = client.Stay{}
		case "freeze":
			if len(args) != 1 {
				rend.Notice("usage: freeze <sid>")
				continue
			}
			msg = client.ChooseFreezeTarget{TargetSID: args[0]}
		case "flip3":
			if len(args) != 1 {
				rend.Notice("usage: flip3 <sid>")
				continue
			}
			msg = client.ChooseFlip3Target{TargetSID: args[0]}
		case "target":
			if len(args) != 2 {
				rend.Notice("usage: target <sid> <card-idx>")
				continue
			}
			idx, err := strconv.Atoi(args[1])
			if err != nil {
				rend.Notice("card index must be a number")
				continue
			}
			msg = client.ChooseDiscardTarget{TargetSID: args[0], CardIdx: idx}
		case "pick":
			if len(args) != 1 {
				rend.Notice("usage: pick <card-idx>")
				continue
			}
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				rend.Notice("card index must be a number")
				continue
			}
			msg = client.ChooseDiscardCard{CardIdx: idx}
		case "quit", "exit":
			msg = client.Shutdown{}
		default:
			rend.Notice("commands: create, join, start, hit, stay, freeze, flip3, target, pick, quit")
			continue
		}

		select {
		case inbox <- msg:
		case <-ctx.Done():
			return
		}
	}
}
