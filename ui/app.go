// Package ui is the interactive terminal frontend.
package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-names/model"
	"github.com/sheikhrachel/go-gol-names/sim"
)

const helpLine = "Space/Enter start-stop | click toggle | Ctrl+L clear | Ctrl+R random | type + Enter place name | Esc quit"

var (
	aliveStyle = tcell.StyleDefault.Background(tcell.ColorWhite)
	deadStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	textStyle  = tcell.StyleDefault
)

// App draws a session on a tcell screen and feeds it keyboard and mouse input
type App struct {
	screen  tcell.Screen
	session *sim.Session

	// buttons held during the previous mouse event, so a drag toggles once
	buttons tcell.ButtonMask
}

// New creates an App. The screen is initialised by Run.
func New(screen tcell.Screen, session *sim.Session) *App {
	return &App{screen: screen, session: session}
}

// Run takes over the terminal until the user quits or ctx is done
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return errors.Wrap(err, "[Run] failed to initialise screen")
	}
	defer a.screen.Fini()

	a.screen.EnableMouse()
	a.screen.HideCursor()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	for {
		a.draw()

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || a.handleEvent(ev) {
				return nil
			}
		case <-a.session.Updates():
		}
	}
}

// handleEvent applies one input event and reports whether the user quit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		if a.session.Status().Name != "" {
			a.session.PlaceName()
		} else {
			a.session.ToggleRunning()
		}
	case tcell.KeyCtrlL:
		a.session.Clear()
	case tcell.KeyCtrlR:
		a.session.Randomize()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.session.Backspace()
	case tcell.KeyRune:
		if ev.Rune() == ' ' && a.session.Status().Name == "" {
			a.session.ToggleRunning()
			return false
		}
		a.session.AppendName(ev.Rune())
	}
	return false
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	a.buttons = buttons
	if !pressed {
		return
	}

	// each cell is two terminal columns wide
	x, y := ev.Position()
	a.session.ToggleCell(y, x/2)
}

func (a *App) draw() {
	a.screen.Clear()
	a.session.View(func(g *model.Grid, st sim.Status) {
		for r := range g.Rows() {
			for c := range g.Cols() {
				style := deadStyle
				if g.Alive(r, c) {
					style = aliveStyle
				}
				a.screen.SetContent(2*c, r, ' ', nil, style)
				a.screen.SetContent(2*c+1, r, ' ', nil, style)
			}
		}

		a.drawText(g.Rows()+1, statusLine(st))
		a.drawText(g.Rows()+2, "Name: "+st.Name)
		a.drawText(g.Rows()+3, helpLine)
	})
	a.screen.Show()
}

func (a *App) drawText(row int, text string) {
	col := 0
	for _, r := range text {
		a.screen.SetContent(col, row, r, nil, textStyle)
		col++
	}
}

func statusLine(st sim.Status) string {
	state := "Stopped"
	switch {
	case st.Running && st.Stagnant:
		state = "Stagnant"
	case st.Running:
		state = "Running"
	}
	if st.Living == 0 && st.Generation > 0 {
		state = "Extinct"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Status: %s", st.Generation, st.Living, state)
}
