package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model for a full game session: welcome dialog,
// playing loop, and the end-of-round dialogs.
type Model struct {
	session *game.Session
	screen  *core.Screen
	layout  layout
	store   *storage.Store
	keymap  *KeyMapper
	config  core.RuntimeConfig
	delays  game.Delays
	rng     *rand.Rand
	doodle  *doodle

	pending    game.Action // latest buffered input, applied on the next tick
	scoreSaved bool        // whether the current round's score reached storage
	quitting   bool
}

// NewModel creates a model sized to the given terminal dimensions.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, delays game.Delays, difficulty game.Difficulty) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	l := newLayout(cfg.ScreenW, cfg.ScreenH)
	bx, by := l.dialogOrigin()

	return Model{
		session: game.NewSession(l.mapW, l.mapH, delays, difficulty, rng),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		layout:  l,
		store:   store,
		keymap:  NewKeyMapper(),
		config:  cfg,
		delays:  delays,
		rng:     rng,
		doodle:  newDoodle(bx, by),
	}
}

// Init starts the welcome animation. The simulation tick loop only starts
// once the player confirms the welcome dialog.
func (m Model) Init() tea.Cmd {
	return doodleTickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case doodleTickMsg:
		if m.session.State() == game.StateWelcome {
			m.doodle.step()
			return m, doodleTickCmd()
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. While playing, direction keys are
// buffered and take effect on the next tick (latest press wins); in the
// dialogs, keys act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.session.State() == game.StatePlaying {
		if a := m.keymap.MapPlayingKey(msg); a != game.ActionNone {
			m.pending = a
		}
		return m, nil
	}

	a := m.keymap.MapDialogKey(msg)
	// On a terminal too small for a playable field, only quitting is
	// meaningful; confirming would start a round nobody can see.
	if m.layout.tooSmall() && a != game.ActionQuit {
		return m, nil
	}
	m.session.HandleDialogAction(a)

	switch m.session.State() {
	case game.StateQuit:
		m.quitting = true
		return m, tea.Quit
	case game.StatePlaying:
		// Round confirmed: reset per-round flags and start the tick loop.
		m.pending = game.ActionNone
		m.scoreSaved = false
		return m, tickCmd(m.session.Delay())
	}

	return m, nil
}

// handleResize processes window resize events. The playing field is sized
// at round start, so an ongoing round keeps its dimensions and its layout;
// on the welcome screen both are rebuilt for the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.session.State() == game.StateWelcome {
		m.layout = newLayout(msg.Width, msg.Height)
		m.session = game.NewSession(m.layout.mapW, m.layout.mapH, m.delays, m.session.Difficulty(), m.rng)
		bx, by := m.layout.dialogOrigin()
		m.doodle = newDoodle(bx, by)
	}

	return m, nil
}

// handleTick runs one simulation step and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.State() != game.StatePlaying {
		// Stale tick from a round that already ended.
		return m, nil
	}

	m.session.Tick(m.pending)
	m.pending = game.ActionNone

	switch m.session.State() {
	case game.StatePlaying:
		return m, tickCmd(m.session.Delay())
	case game.StateQuit:
		m.quitting = true
		return m, tea.Quit
	case game.StateGameOver, game.StateWin:
		m.saveScore()
	}

	return m, nil
}

// saveScore records the finished round once, best effort.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the dialog shows the score regardless
	m.store.SaveScore(m.session.Score(), m.session.Difficulty().String(), m.session.State().String())
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()

	if m.layout.tooSmall() {
		m.screen.DrawTextCentered(m.config.ScreenH/2, "Terminal too small", core.ColorDefault)
		return RenderScreen(m.screen)
	}

	switch m.session.State() {
	case game.StateWelcome:
		m.layout.drawDialog(m.screen, dialogWelcome, 0, m.session.Difficulty())
		m.doodle.draw(m.screen)
	case game.StatePlaying:
		m.layout.drawBoard(m.screen, m.session)
	case game.StateGameOver:
		m.layout.drawBoard(m.screen, m.session)
		m.layout.drawDialog(m.screen, dialogOver, m.session.Score(), m.session.Difficulty())
	case game.StateWin:
		m.layout.drawBoard(m.screen, m.session)
		m.layout.drawDialog(m.screen, dialogWin, m.session.Score(), m.session.Difficulty())
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(store *storage.Store, cfg core.RuntimeConfig, delays game.Delays, difficulty game.Difficulty) error {
	model := NewModel(store, cfg, delays, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
