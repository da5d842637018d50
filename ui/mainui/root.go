package mainui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/julez-dev/pinotui/pinot"
	"github.com/julez-dev/pinotui/save"
	"github.com/julez-dev/pinotui/ui/tableview"
	"github.com/rs/zerolog"
)

type activeScreen int

const (
	mainScreen activeScreen = iota
	helpScreen
)

type viewDefinition struct {
	name     string
	title    string
	resource pinot.Resource
}

var viewDefinitions = []viewDefinition{
	{name: save.ViewTables, title: "Tables", resource: pinot.ResourceTables},
	{name: save.ViewSchemas, title: "Schemas", resource: pinot.ResourceSchemas},
	{name: save.ViewDatabases, title: "Databases", resource: pinot.ResourceDatabases},
	{name: save.ViewInstances, title: "Instances", resource: pinot.ResourceInstances},
}

type persistedDataLoadedMessage struct {
	err   error
	state save.AppState
}

type browserOpenedMessage struct {
	url string
	err error
}

type Root struct {
	logger zerolog.Logger
	deps   *DependencyContainer

	width, height int
	keymap        save.KeyMap

	hasLoadedSession bool
	screenType       activeScreen
	initErr          error
	database         string

	// components
	header *horizontalTabHeader
	help   *help

	viewCursor int
	views      []*tableview.View
}

func NewUI(logger zerolog.Logger, deps *DependencyContainer) *Root {
	return &Root{
		logger: logger,
		deps:   deps,
		width:  10,
		height: 10,
		keymap: deps.Keymap,

		header: newHorizontalTabHeader(10, deps.UserConfig),
		help:   newHelp(10, 10, deps.Keymap),
	}
}

func (r *Root) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("pinotui"),
		func() tea.Msg {
			state, err := r.deps.AppStateManager.LoadAppState()
			if err != nil {
				return persistedDataLoadedMessage{
					err: fmt.Errorf("failed to load save state: %w", err),
				}
			}

			return persistedDataLoadedMessage{state: state}
		},
	)
}

func (r *Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case persistedDataLoadedMessage:
		return r, r.handlePersistedDataLoaded(msg)
	case tableview.DatabaseSelectedMessage:
		return r, r.switchDatabase(msg.Database)
	case browserOpenedMessage:
		if msg.err != nil {
			r.logger.Err(msg.err).Str("url", msg.url).Msg("failed to open browser")
		}
		return r, nil
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.handleResize()
		return r, nil
	case tea.KeyMsg:
		return r, r.handleKey(msg)
	case tea.MouseMsg:
		if r.screenType == helpScreen {
			r.help, cmd = r.help.Update(msg)
			return r, cmd
		}

		if active := r.activeView(); active != nil {
			_, cmd = active.Update(msg)
		}
		return r, cmd
	}

	// listings and spinner ticks are routed by the views themselves
	for _, v := range r.views {
		_, cmd = v.Update(msg)
		cmds = append(cmds, cmd)
	}

	return r, tea.Batch(cmds...)
}

func (r *Root) handleKey(msg tea.KeyMsg) tea.Cmd {
	active := r.activeView()
	inputFocused := active != nil && active.InputFocused()

	// while searching only ctrl+c quits, everything else is text
	if key.Matches(msg, r.keymap.Quit) && (!inputFocused || msg.Type == tea.KeyCtrlC) {
		return tea.Quit
	}

	if !r.hasLoadedSession {
		return nil
	}

	if inputFocused {
		_, cmd := active.Update(msg)
		return cmd
	}

	if r.screenType == helpScreen {
		if key.Matches(msg, r.keymap.Escape) || key.Matches(msg, r.keymap.Help) {
			r.screenType = mainScreen
			if active != nil {
				active.Focus()
			}
			return nil
		}

		var cmd tea.Cmd
		r.help, cmd = r.help.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, r.keymap.Help):
		r.screenType = helpScreen
		if active != nil {
			active.Blur()
		}
		return nil
	case key.Matches(msg, r.keymap.Next):
		r.selectView(r.viewCursor + 1)
		return nil
	case key.Matches(msg, r.keymap.Previous):
		r.selectView(r.viewCursor - 1)
		return nil
	case key.Matches(msg, r.keymap.OpenBrowser):
		return r.openBrowser()
	}

	if active == nil {
		return nil
	}

	_, cmd := active.Update(msg)
	return cmd
}

func (r *Root) View() string {
	if !r.hasLoadedSession {
		return ""
	}

	if r.initErr != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(r.deps.UserConfig.Theme.ErrorColor)).
			Render(r.initErr.Error())
	}

	switch r.screenType {
	case mainScreen:
		active := r.activeView()
		if active == nil {
			return r.header.View()
		}

		return r.header.View() + "\n" + active.View()
	case helpScreen:
		return r.help.View()
	}

	return ""
}

func (r *Root) TakeStateSnapshot() save.AppState {
	appState := save.AppState{
		Database: r.database,
	}

	for i, v := range r.views {
		name := viewDefinitions[i].name
		if i == r.viewCursor {
			appState.ActiveView = name
		}

		appState.Views = append(appState.Views, save.ViewState{
			Name:        name,
			SearchValue: v.SearchValue(),
		})
	}

	return appState
}

func (r *Root) handlePersistedDataLoaded(msg persistedDataLoadedMessage) tea.Cmd {
	r.hasLoadedSession = true

	if msg.err != nil {
		// a broken state file must not lock the user out
		r.logger.Err(msg.err).Msg("starting without saved state")
	}

	database := msg.state.Database
	if r.deps.Database != "" {
		database = r.deps.Database
	}

	searches := make(map[string]string, len(viewDefinitions))
	for _, def := range viewDefinitions {
		searches[def.name] = msg.state.SearchValueFor(def.name)
	}

	cmd := r.buildViews(database, searches)

	for i, def := range viewDefinitions {
		if def.name == msg.state.ActiveView {
			r.selectView(i)
		}
	}

	return cmd
}

// switchDatabase rebuilds all views against the new database, search values are kept.
func (r *Root) switchDatabase(database string) tea.Cmd {
	if database == r.database {
		return nil
	}

	r.logger.Info().Str("database", database).Msg("switching database")

	searches := make(map[string]string, len(r.views))
	for i, v := range r.views {
		searches[viewDefinitions[i].name] = v.SearchValue()
	}

	cursor := r.viewCursor
	cmd := r.buildViews(database, searches)
	r.selectView(cursor)

	return cmd
}

func (r *Root) buildViews(database string, searches map[string]string) tea.Cmd {
	source := r.deps.SourceFor(database)

	views := make([]*tableview.View, 0, len(viewDefinitions))
	cmds := make([]tea.Cmd, 0, len(viewDefinitions))

	for _, def := range viewDefinitions {
		v, err := tableview.New(r.logger, source, tableview.Options{
			Resource:       def.resource,
			Title:          def.title,
			Settings:       r.deps.UserConfig.Settings.View(def.name),
			Theme:          r.deps.UserConfig.Theme,
			Keymap:         r.keymap,
			RequestTimeout: r.deps.UserConfig.Settings.Controller.RequestTimeout,
			ActiveDatabase: database,
		})
		if err != nil {
			r.initErr = fmt.Errorf("failed to create %s view: %w", def.name, err)
			return nil
		}

		v.SetSearch(searches[def.name])
		views = append(views, v)
		cmds = append(cmds, v.Init())
	}

	r.database = database
	r.views = views
	r.viewCursor = 0

	r.header.Reset()
	r.header.SetDatabase(database)
	for _, v := range views {
		r.header.AddTab(v.ID(), v.Title())
	}

	r.selectView(0)
	r.handleResize()

	return tea.Batch(cmds...)
}

func (r *Root) openBrowser() tea.Cmd {
	url := r.deps.UserConfig.Settings.Controller.URL
	open := r.deps.OpenURL

	if open == nil {
		return nil
	}

	return func() tea.Msg {
		return browserOpenedMessage{url: url, err: open(url)}
	}
}

func (r *Root) activeView() *tableview.View {
	if len(r.views) > r.viewCursor {
		return r.views[r.viewCursor]
	}

	return nil
}

// selectView focuses the view at index, wrapping around at both ends.
func (r *Root) selectView(index int) {
	if len(r.views) == 0 {
		return
	}

	if active := r.activeView(); active != nil {
		active.Blur()
	}

	index %= len(r.views)
	if index < 0 {
		index += len(r.views)
	}

	r.viewCursor = index
	r.views[index].Focus()
	r.header.SelectTab(r.views[index].ID())
}

func (r *Root) getHeaderHeight() int {
	headerView := r.header.View()
	return lipgloss.Height(headerView)
}

func (r *Root) handleResize() {
	r.header.Resize(r.width)
	r.help.handleResize(r.width, r.height)

	headerHeight := r.getHeaderHeight()

	for _, v := range r.views {
		v.SetSize(r.width, r.height-headerHeight)
		v.SetOrigin(0, headerHeight)
	}
}
