package tableview

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/julez-dev/pinotui/pinot"
	"github.com/julez-dev/pinotui/save"
	"github.com/julez-dev/pinotui/ui/component"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
)

const (
	maxErrorWidth     = 48
	maxColumnWidth    = 64
	activeDatabaseTag = "active"
	unknownSize       = "-"
)

var loadingSpinner = spinner.Spinner{
	Frames: []string{"   ", "  .", " ..", "..."},
	FPS:    time.Second / 3, //nolint:mnd
}

// Source is the cached view on the controller a table view reads from.
type Source interface {
	List(ctx context.Context, resource pinot.Resource) ([]string, error)
	FetchedAt(resource pinot.Resource) time.Time
	Invalidate(resource pinot.Resource)
	TableSizes(ctx context.Context, tables []string) map[string]pinot.TableSize
}

// DatabaseSelectedMessage is emitted when a database was confirmed in the databases view.
type DatabaseSelectedMessage struct {
	Database string
}

type loadedMessage struct {
	viewID    string
	rows      []table.Row
	fetchedAt time.Time
	err       error
}

type Options struct {
	Resource       pinot.Resource
	Title          string
	Settings       save.ViewSettings
	Theme          save.Theme
	Keymap         save.KeyMap
	RequestTimeout time.Duration
	ActiveDatabase string
}

type styles struct {
	err    lipgloss.Style
	dimmed lipgloss.Style
}

// View lists one controller resource below a toolbar. It owns the rows and the
// search value and rebuilds the toolbar props from them on every update.
type View struct {
	id     string
	logger zerolog.Logger
	source Source
	opts   Options
	styles styles

	toolbar *component.Toolbar
	table   table.Model
	spinner spinner.Model

	rows      []table.Row // nil until the first successful load
	search    string
	loading   bool
	err       error
	fetchedAt time.Time

	focused       bool
	width, height int
}

func New(logger zerolog.Logger, source Source, opts Options) (*View, error) {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = time.Second * 10
	}

	v := &View{
		id:     uuid.New().String(),
		logger: logger.With().Str("view", string(opts.Resource)).Logger(),
		source: source,
		opts:   opts,
		styles: styles{
			err:    lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Theme.ErrorColor)),
			dimmed: lipgloss.NewStyle().Foreground(lipgloss.Color(opts.Theme.DimmedTextColor)),
		},
		spinner: spinner.New(spinner.WithSpinner(loadingSpinner)),
		table:   newTable(opts.Resource, opts.Theme, opts.Keymap),
	}

	toolbar, err := component.NewToolbar(opts.Theme, v.toolbarProps())
	if err != nil {
		return nil, fmt.Errorf("failed to create toolbar for %s: %w", opts.Resource, err)
	}
	v.toolbar = toolbar

	return v, nil
}

func newTable(resource pinot.Resource, theme save.Theme, keymap save.KeyMap) table.Model {
	km := table.DefaultKeyMap()
	km.LineUp = keymap.Up
	km.LineDown = keymap.Down

	t := table.New(
		table.WithColumns(columnsFor(resource)),
		table.WithKeyMap(km),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.TableBorderColor)).
		Foreground(lipgloss.Color(theme.TableHeaderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(theme.TableSelectedColor)).
		Background(lipgloss.Color(theme.TableSelectedBackgroundColor)).
		Bold(false)
	t.SetStyles(s)

	return t
}

func columnsFor(resource pinot.Resource) []table.Column {
	switch resource {
	case pinot.ResourceTables:
		return []table.Column{{Title: "Name"}, {Title: "Type"}, {Title: "Size"}}
	case pinot.ResourceDatabases:
		return []table.Column{{Title: "Name"}, {Title: "Status"}}
	case pinot.ResourceInstances:
		return []table.Column{{Title: "Name"}, {Title: "Role"}}
	default:
		return []table.Column{{Title: "Name"}}
	}
}

func (v *View) Init() tea.Cmd {
	return v.load()
}

// Refresh drops the cached listing and loads it again.
func (v *View) Refresh() tea.Cmd {
	v.source.Invalidate(v.opts.Resource)
	return v.load()
}

func (v *View) load() tea.Cmd {
	v.loading = true

	var (
		id       = v.id
		source   = v.source
		resource = v.opts.Resource
		timeout  = v.opts.RequestTimeout
		database = v.opts.ActiveDatabase
	)

	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		names, err := source.List(ctx, resource)
		if err != nil {
			return loadedMessage{viewID: id, err: err}
		}

		return loadedMessage{
			viewID:    id,
			rows:      buildRows(ctx, source, resource, database, names),
			fetchedAt: source.FetchedAt(resource),
		}
	}

	v.syncToolbar()

	return tea.Batch(fetch, v.spinner.Tick)
}

func buildRows(ctx context.Context, source Source, resource pinot.Resource, activeDatabase string, names []string) []table.Row {
	names = slices.Clone(names)
	slices.Sort(names)

	rows := make([]table.Row, 0, len(names))

	switch resource {
	case pinot.ResourceTables:
		sizes := source.TableSizes(ctx, names)
		for _, name := range names {
			size := unknownSize
			if s, ok := sizes[name]; ok && s.ReportedSizeInBytes >= 0 {
				size = humanize.Bytes(uint64(s.ReportedSizeInBytes))
			}
			rows = append(rows, table.Row{name, pinot.TableType(name), size})
		}
	case pinot.ResourceDatabases:
		for _, name := range names {
			var status string
			if name == activeDatabase {
				status = activeDatabaseTag
			}
			rows = append(rows, table.Row{name, status})
		}
	case pinot.ResourceInstances:
		for _, name := range names {
			rows = append(rows, table.Row{name, pinot.InstanceRole(name)})
		}
	default:
		for _, name := range names {
			rows = append(rows, table.Row{name})
		}
	}

	return rows
}

func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case loadedMessage:
		if msg.viewID != v.id {
			return v, nil
		}

		v.loading = false
		v.err = msg.err

		if msg.err != nil {
			v.logger.Err(msg.err).Msg("failed to load listing")
		} else {
			v.rows = msg.rows
			v.fetchedAt = msg.fetchedAt
			v.applyFilter()
		}
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}

		v.spinner, cmd = v.spinner.Update(msg)
	case tea.MouseMsg:
		v.toolbar, cmd = v.toolbar.Update(msg)
	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}

		cmd = v.handleKey(msg)
	}

	v.syncToolbar()

	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	if v.toolbar.SearchFocused() {
		switch {
		case key.Matches(msg, v.opts.Keymap.Escape):
			v.toolbar.Blur()
		case key.Matches(msg, v.opts.Keymap.Confirm):
			// enter keeps the query in the search history
			v.toolbar, cmd = v.toolbar.Update(msg)
			v.toolbar.Blur()
		default:
			v.toolbar, cmd = v.toolbar.Update(msg)
		}

		return cmd
	}

	switch {
	case key.Matches(msg, v.opts.Keymap.SearchMode):
		return v.toolbar.FocusSearch()
	case key.Matches(msg, v.opts.Keymap.Tooltip):
		v.toolbar.ToggleTooltip()
	case key.Matches(msg, v.opts.Keymap.Escape):
		v.toolbar.Blur()
	case key.Matches(msg, v.opts.Keymap.Refresh):
		return v.Refresh()
	case key.Matches(msg, v.opts.Keymap.Confirm):
		if v.opts.Resource != pinot.ResourceDatabases {
			return nil
		}

		row := v.table.SelectedRow()
		if row == nil {
			return nil
		}

		return func() tea.Msg {
			return DatabaseSelectedMessage{Database: row[0]}
		}
	default:
		v.table, cmd = v.table.Update(msg)
	}

	return cmd
}

func (v *View) toolbarProps() component.ToolbarProps {
	props := component.ToolbarProps{
		Name:               v.opts.Title,
		ShowTooltip:        v.opts.Settings.ShowTooltip,
		TooltipText:        v.opts.Settings.TooltipText,
		AdditionalControls: component.StaticView(v.controls()),
	}

	if v.opts.Settings.ShowSearchBox {
		props.Mode = component.SearchMode{
			Value:    v.search,
			OnSearch: v.setSearch,
		}

		return props
	}

	var count *int
	if v.rows != nil {
		n := len(v.rows)
		count = &n
	}
	props.Mode = component.CountMode{Count: count}

	return props
}

func (v *View) controls() string {
	switch {
	case v.loading:
		return v.spinner.View() + " loading"
	case v.err != nil:
		return v.styles.err.Render(runewidth.Truncate("error: "+v.err.Error(), maxErrorWidth, "…"))
	case !v.fetchedAt.IsZero():
		return v.styles.dimmed.Render("updated " + humanize.Time(v.fetchedAt))
	}

	return ""
}

func (v *View) syncToolbar() {
	if err := v.toolbar.SetProps(v.toolbarProps()); err != nil {
		v.logger.Err(err).Msg("failed to update toolbar")
	}

	v.toolbar.SetWidth(v.width)
	v.table.SetHeight(max(1, v.height-v.toolbar.Height()))
}

func (v *View) setSearch(value string) {
	v.search = value
	v.applyFilter()
}

func (v *View) applyFilter() {
	rows := v.rows
	if v.opts.Settings.ShowSearchBox {
		rows = Filter(v.rows, v.search)
	}

	v.table.SetRows(rows)
	v.fitColumns()

	if v.table.Cursor() >= len(rows) {
		v.table.SetCursor(max(0, len(rows)-1))
	}
}

// fitColumns sizes every column to its widest cell, the first column takes the remaining width.
func (v *View) fitColumns() {
	columns := columnsFor(v.opts.Resource)

	for i := range columns {
		columns[i].Width = runewidth.StringWidth(columns[i].Title)
		for _, row := range v.table.Rows() {
			columns[i].Width = max(columns[i].Width, runewidth.StringWidth(row[i]))
		}
		columns[i].Width = min(columns[i].Width, maxColumnWidth)
	}

	if v.width > 0 {
		// each cell has one cell of padding on both sides
		used := 0
		for _, c := range columns[1:] {
			used += c.Width + 2
		}
		columns[0].Width = max(columns[0].Width, v.width-used-2)
	}

	v.table.SetColumns(columns)
}

func (v *View) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, v.toolbar.View(), v.table.View())
}

func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.table.SetWidth(width)
	v.fitColumns()
	v.syncToolbar()
}

// SetOrigin tells the view where its top left cell is drawn.
func (v *View) SetOrigin(x, y int) {
	v.toolbar.SetOrigin(x, y)
}

func (v *View) Focus() {
	v.focused = true
	v.table.Focus()
}

func (v *View) Blur() {
	v.focused = false
	v.toolbar.Blur()
	v.table.Blur()
	v.syncToolbar()
}

func (v *View) Focused() bool {
	return v.focused
}

// InputFocused reports whether key input is currently consumed as text.
func (v *View) InputFocused() bool {
	return v.toolbar.SearchFocused()
}

func (v *View) ID() string {
	return v.id
}

func (v *View) Title() string {
	return v.opts.Title
}

func (v *View) Resource() pinot.Resource {
	return v.opts.Resource
}

func (v *View) SearchValue() string {
	return v.search
}

// SetSearch restores a search value, it is ignored for views without search box.
func (v *View) SetSearch(value string) {
	if !v.opts.Settings.ShowSearchBox {
		return
	}

	v.setSearch(value)
	v.syncToolbar()
}

// Rows returns the rows currently shown in the table.
func (v *View) Rows() []table.Row {
	return v.table.Rows()
}
