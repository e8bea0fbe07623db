package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"postview/internal/config"
	"postview/internal/domain"
	"postview/internal/eventbus"
	"postview/internal/location"
	"postview/internal/ui/state"
	"postview/internal/ui/views"
)

// minViewportHeight keeps a few card lines visible on tiny terminals
const minViewportHeight = 3

// Loader performs the single posts fetch of the view
type Loader interface {
	Load(ctx context.Context) domain.DomainEvent
}

// FilterObserver is told about every recomputation of the visible posts
type FilterObserver interface {
	ObserveFilter()
}

// Options configure a Model. Loader is required; the rest may be zero.
type Options struct {
	Context  context.Context
	Loader   Loader
	Bus      eventbus.EventBus
	Config   *config.Config
	Initial  location.Location
	Observer FilterObserver
}

// Model represents the UI state
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	ready       bool // a window size has been received
	quitting    bool
	inPagerMode bool
	loadIssued  bool
	visible     []domain.Post // cached filter result

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	loader   Loader
	observer FilterObserver
	renderer *views.Renderer
	pager    *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	appState := state.NewAppState(opts.Initial)

	ti := textinput.New()
	ti.Placeholder = views.Placeholder
	ti.Prompt = "> "
	ti.SetValue(appState.SearchTerm())
	ti.Focus()
	// The input drops control characters; the location follows what it shows
	appState.ReplaceSearchTerm(ti.Value())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:      ctx,
		bus:      opts.Bus,
		config:   cfg,
		state:    appState,
		input:    ti,
		spinner:  sp,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     newKeyMap(),
		loader:   opts.Loader,
		observer: opts.Observer,
		renderer: views.NewRenderer(),
		pager:    NewPagerOps(),
	}
	m.spinner.Style = m.renderer.Styles().Loader

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State returns the centralized state
func (m *Model) State() *state.AppState {
	return m.state
}

// Location returns the current location, e.g. to print it on exit
func (m *Model) Location() location.Location {
	return m.state.Location()
}

// Init starts the spinner, the cursor blink and the single posts load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, m.loadPosts())
}

// loadPosts returns the load command. It is handed out once per model so
// nothing else can trigger a second fetch.
func (m *Model) loadPosts() tea.Cmd {
	if m.loadIssued || m.loader == nil {
		return nil
	}
	m.loadIssued = true

	ctx := m.ctx
	loader := m.loader
	return func() tea.Msg {
		return postsLoadedMsg{event: loader.Load(ctx)}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.resizeViewport()
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case postsLoadedMsg:
		m.applyLoadEvent(msg.event)
		return m, nil

	case EventMsg:
		m.applyLoadEvent(msg.Event)
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once the fetch has settled
		if m.state.Display() != state.DisplayLoader {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			return m, m.setStatus("pager failed: " + msg.err.Error())
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// Cursor blink and other input internals
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if loc, ok := m.state.History.Back(); ok {
			m.navigated(loc)
		}
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		if loc, ok := m.state.History.Forward(); ok {
			m.navigated(loc)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Pager):
		return m, m.openPager()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.searchChanged(after)
	}
	return m, cmd
}

// searchChanged writes the raw input value into the location
func (m *Model) searchChanged(term string) {
	if !m.state.SetSearchTerm(term) {
		return
	}
	loc := m.state.Location()
	if m.bus != nil {
		m.bus.Publish(eventbus.SearchChangedEvent{Term: term, Location: loc.String()})
	}
	m.viewport.GotoTop()
	m.refreshContent()
}

// navigated restores the input from a location reached through history
func (m *Model) navigated(loc location.Location) {
	log.Printf("Navigated to %s", loc)
	m.input.SetValue(loc.Search())
	m.input.CursorEnd()
	m.state.ReplaceSearchTerm(m.input.Value())
	if m.bus != nil {
		m.bus.Publish(eventbus.NavigatedEvent{Location: m.state.Location().String()})
	}
	m.viewport.GotoTop()
	m.refreshContent()
}

func (m *Model) applyLoadEvent(event eventbus.DomainEvent) {
	next, ok := domain.StateFromEvent(event)
	if !ok {
		return
	}
	if m.state.ApplyLoad(next) {
		log.Printf("Load state is now %s", m.state.Load.Status)
		m.refreshContent()
	}
}

// refreshContent recomputes the visible posts and the viewport content
func (m *Model) refreshContent() {
	m.visible = m.state.VisiblePosts()
	if m.observer != nil {
		m.observer.ObserveFilter()
	}
	if m.ready {
		m.viewport.SetContent(m.renderer.RenderCards(m.visible, m.renderer.CardWidth(m.baseViewState())))
	}
}

func (m *Model) resizeViewport() {
	vs := m.baseViewState()
	h := m.height - m.renderer.ChromeHeight(vs)
	if h < minViewportHeight {
		h = minViewportHeight
	}
	m.viewport.Width = m.renderer.CardWidth(vs)
	m.viewport.Height = h
}

func (m *Model) openPager() tea.Cmd {
	if m.state.Display() != state.DisplayCards {
		return nil
	}
	if m.program == nil {
		return m.setStatus("pager unavailable")
	}

	content := views.PlainCards(m.visible)
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.state.StatusMessage = message
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// baseViewState holds the fields that do not depend on the load state
func (m *Model) baseViewState() views.ViewState {
	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Input:         m.input.View(),
		Location:      m.state.Location().String(),
		StatusMessage: m.state.StatusMessage,
		CardWidth:     m.config.UISettings.CardWidth,
	}
	if m.config.UISettings.ShowHelp {
		vs.Help = m.help.View(m.keys)
	}
	return vs
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting || m.inPagerMode {
		return ""
	}

	vs := m.baseViewState()
	vs.Display = m.state.Display()

	switch vs.Display {
	case state.DisplayLoader:
		vs.Spinner = m.spinner.View()
	case state.DisplayError:
		vs.ErrorMessage = m.state.Load.Message
	case state.DisplayCards:
		vs.Posts = m.visible
		if m.ready && len(m.visible) > 0 {
			vs.Body = m.viewport.View()
			vs.Scrollable = m.viewport.TotalLineCount() > m.viewport.Height
			vs.ScrollPercent = m.viewport.ScrollPercent()
		}
	}

	return m.renderer.Render(vs)
}
