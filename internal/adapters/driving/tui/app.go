package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/databolaget/databolaget/internal/adapters/driving/tui/components/input"
	"github.com/databolaget/databolaget/internal/adapters/driving/tui/components/status"
	"github.com/databolaget/databolaget/internal/adapters/driving/tui/components/table"
	"github.com/databolaget/databolaget/internal/adapters/driving/tui/keymap"
	"github.com/databolaget/databolaget/internal/adapters/driving/tui/messages"
	"github.com/databolaget/databolaget/internal/adapters/driving/tui/styles"
	"github.com/databolaget/databolaget/internal/core/domain"
)

// SearchDebounce is how long the search field must be idle before the
// list is filtered again.
const SearchDebounce = 300 * time.Millisecond

// chromeHeight is the number of lines around the table rows: title,
// search field, table borders and header, status bar.
const chromeHeight = 10

// App is the product browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	input  *input.SearchInput
	status *status.Bar

	// query is the active filter. Search lags the input by the debounce.
	query       domain.ProductQuery
	sorts       []domain.SortKey
	assortments []string

	products []domain.Product
	selected int
	offset   int

	// searchSeq numbers edits of the search field.
	searchSeq int

	updated time.Time
	err     error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the browser with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keymap: km,
		input:  input.NewSearchInput(s),
		status: status.NewBar(s, km),
		sorts:  append([]domain.SortKey{domain.SortNone}, domain.SortKeys()...),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithQuery sets the initial query.
func (a *App) WithQuery(query domain.ProductQuery) *App {
	a.query = query
	a.input.SetValue(query.Search)
	return a
}

// WithUpdated sets the time shown as the catalog's last update.
func (a *App) WithUpdated(t time.Time) *App {
	a.updated = t
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("databolaget"),
		a.load(true),
		a.input.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.ProductsLoaded:
		a.err = msg.Err
		if msg.Err != nil {
			a.status.SetState(status.StateError)
			a.status.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.products = msg.Products
		if msg.Assortments != nil {
			a.assortments = msg.Assortments
		}
		a.selected = 0
		a.offset = 0
		a.status.SetState(status.StateReady)
		a.status.SetMessage("")
		a.syncStatus()
		return a, nil

	case messages.SearchTick:
		if msg.Seq != a.searchSeq {
			return a, nil
		}
		a.query.Search = a.input.Value()
		return a, a.load(false)

	case messages.ActionCompleted:
		if msg.Err != nil {
			a.status.SetMessage(msg.Err.Error())
		} else {
			a.status.SetMessage(msg.Message)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(key, a.keymap.Clear):
		if a.input.Value() == "" {
			return a, tea.Quit
		}
		a.input.Reset()
		a.searchSeq++
		a.query.Search = ""
		return a, a.load(false)

	case keymap.Matches(key, a.keymap.Up):
		a.move(-1)
		return a, nil

	case keymap.Matches(key, a.keymap.Down):
		a.move(1)
		return a, nil

	case keymap.Matches(key, a.keymap.PageUp):
		a.move(-a.visibleRows())
		return a, nil

	case keymap.Matches(key, a.keymap.PageDown):
		a.move(a.visibleRows())
		return a, nil

	case keymap.Matches(key, a.keymap.NextSort):
		a.query.Sort = a.nextSort(1)
		return a, a.load(false)

	case keymap.Matches(key, a.keymap.PrevSort):
		a.query.Sort = a.nextSort(-1)
		return a, a.load(false)

	case keymap.Matches(key, a.keymap.Assortment):
		a.query.Assortment = a.nextAssortment()
		return a, a.load(false)

	case keymap.Matches(key, a.keymap.Open):
		return a, a.act(false)

	case keymap.Matches(key, a.keymap.Copy):
		return a, a.act(true)
	}

	var cmd tea.Cmd
	var changed bool
	a.input, cmd, changed = a.input.Update(msg)
	if !changed {
		return a, cmd
	}
	a.searchSeq++
	seq := a.searchSeq
	return a, tea.Batch(cmd, tea.Tick(SearchDebounce, func(time.Time) tea.Msg {
		return messages.SearchTick{Seq: seq}
	}))
}

// load queries the catalog with the current query. withAssortments also
// fetches the assortment codes.
func (a *App) load(withAssortments bool) tea.Cmd {
	ctx := a.ctx
	catalog := a.ports.Catalog
	query := a.query

	return func() tea.Msg {
		products, err := catalog.List(ctx, query)
		if err != nil {
			return messages.ProductsLoaded{Err: err}
		}
		msg := messages.ProductsLoaded{Products: products}
		if withAssortments {
			assortments, err := catalog.Assortments(ctx)
			if err != nil {
				return messages.ProductsLoaded{Err: err}
			}
			if assortments == nil {
				assortments = []string{}
			}
			msg.Assortments = assortments
		}
		return msg
	}
}

// act opens or copies the selected product's link.
func (a *App) act(copyURL bool) tea.Cmd {
	product := a.SelectedProduct()
	if product == nil {
		return nil
	}
	if a.ports.Actions == nil {
		return func() tea.Msg { return messages.ActionCompleted{Err: ErrNoActions} }
	}

	ctx := a.ctx
	actions := a.ports.Actions
	return func() tea.Msg {
		if copyURL {
			if err := actions.CopyURL(ctx, product); err != nil {
				return messages.ActionCompleted{Err: err}
			}
			return messages.ActionCompleted{Message: "Link copied"}
		}
		if err := actions.OpenProduct(ctx, product); err != nil {
			return messages.ActionCompleted{Err: err}
		}
		return messages.ActionCompleted{Message: "Opened " + product.ListName()}
	}
}

func (a *App) nextSort(step int) domain.SortKey {
	current := 0
	for i, s := range a.sorts {
		if s == a.query.Sort {
			current = i
			break
		}
	}
	n := len(a.sorts)
	return a.sorts[((current+step)%n+n)%n]
}

// nextAssortment cycles through "" (all) and each known assortment.
func (a *App) nextAssortment() string {
	options := append([]string{""}, a.assortments...)
	for i, opt := range options {
		if opt == a.query.Assortment {
			return options[(i+1)%len(options)]
		}
	}
	return ""
}

func (a *App) move(delta int) {
	if len(a.products) == 0 {
		return
	}
	a.selected += delta
	if a.selected < 0 {
		a.selected = 0
	}
	if a.selected >= len(a.products) {
		a.selected = len(a.products) - 1
	}

	rows := a.visibleRows()
	if a.selected < a.offset {
		a.offset = a.selected
	}
	if a.selected >= a.offset+rows {
		a.offset = a.selected - rows + 1
	}
}

func (a *App) visibleRows() int {
	rows := a.height - chromeHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (a *App) syncStatus() {
	a.status.SetQuery(len(a.products), string(a.query.Sort), a.query.Assortment)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	title := a.styles.Title.Render("Databolaget") + " " + a.styles.Muted.Render("APK, ethanol ml per SEK")
	if !a.updated.IsZero() {
		title += a.styles.Muted.Render(" · updated " + a.updated.Format("2006-01-02 15:04"))
	}

	var body string
	if a.err != nil {
		body = a.styles.Error.Render("Error loading data: " + a.err.Error())
	} else {
		end := a.offset + a.visibleRows()
		if end > len(a.products) {
			end = len(a.products)
		}
		body = table.Render(a.products[a.offset:end], table.Options{
			Styles:   a.styles,
			Selected: a.selected - a.offset,
			Width:    a.width,
		})
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, a.input.View(), body, a.status.View())
}

// Run starts the browser in the alternate screen.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Query returns the active query.
func (a *App) Query() domain.ProductQuery {
	return a.query
}

// Products returns the products currently listed.
func (a *App) Products() []domain.Product {
	return a.products
}

// SelectedIndex returns the selected row in Products.
func (a *App) SelectedIndex() int {
	return a.selected
}

// SelectedProduct returns the selected product, or nil if none.
func (a *App) SelectedProduct() domain.Product {
	if a.selected < 0 || a.selected >= len(a.products) {
		return nil
	}
	return a.products[a.selected]
}

// Err returns the last load error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// StatusMessage returns the status bar message.
func (a *App) StatusMessage() string {
	return a.status.Message()
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width)
	a.status.SetWidth(width)
	a.move(0)
}
