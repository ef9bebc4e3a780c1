package game

import (
	"context"

	"github.com/looplab/fsm"
)

// Phase is the coarse state of a run.
type Phase string

const (
	PhaseTitle      Phase = "title"
	PhasePlaying    Phase = "playing"
	PhaseClearing   Phase = "clearing"
	PhasePaused     Phase = "paused"
	PhaseStageClear Phase = "stageclear"
	PhaseGameOver   Phase = "gameover"
	PhaseGameClear  Phase = "gameclear"
)

// Phase machine events.
const (
	evStart   = "start"   // title, gameover, gameclear -> playing
	evClear   = "clear"   // playing -> clearing
	evSettle  = "settle"  // clearing -> playing
	evTarget  = "target"  // playing -> stageclear
	evAdvance = "advance" // stageclear -> playing
	evFinish  = "finish"  // stageclear -> gameclear
	evLose    = "lose"    // playing -> gameover
	evPause   = "pause"   // playing -> paused
	evResume  = "resume"  // paused -> playing
	evTitle   = "title"   // gameover, gameclear -> title
)

func newPhaseMachine(onEnter func(from, to Phase)) *fsm.FSM {
	return fsm.NewFSM(
		string(PhaseTitle),
		fsm.Events{
			{Name: evStart, Src: []string{string(PhaseTitle), string(PhaseGameOver), string(PhaseGameClear)}, Dst: string(PhasePlaying)},
			{Name: evClear, Src: []string{string(PhasePlaying)}, Dst: string(PhaseClearing)},
			{Name: evSettle, Src: []string{string(PhaseClearing)}, Dst: string(PhasePlaying)},
			{Name: evTarget, Src: []string{string(PhasePlaying)}, Dst: string(PhaseStageClear)},
			{Name: evAdvance, Src: []string{string(PhaseStageClear)}, Dst: string(PhasePlaying)},
			{Name: evFinish, Src: []string{string(PhaseStageClear)}, Dst: string(PhaseGameClear)},
			{Name: evLose, Src: []string{string(PhasePlaying)}, Dst: string(PhaseGameOver)},
			{Name: evPause, Src: []string{string(PhasePlaying)}, Dst: string(PhasePaused)},
			{Name: evResume, Src: []string{string(PhasePaused)}, Dst: string(PhasePlaying)},
			{Name: evTitle, Src: []string{string(PhaseGameOver), string(PhaseGameClear)}, Dst: string(PhaseTitle)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				if onEnter != nil {
					onEnter(Phase(e.Src), Phase(e.Dst))
				}
			},
		},
	)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return Phase(g.phase.Current())
}

// fire triggers a phase transition. Returns false when the event is not
// allowed from the current phase.
func (g *Game) fire(event string) bool {
	if !g.phase.Can(event) {
		return false
	}
	if err := g.phase.Event(context.Background(), event); err != nil {
		g.log.Debug("phase transition failed", "event", event, "err", err)
		return false
	}
	return true
}
