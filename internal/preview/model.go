package preview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/chartkit/internal/dataset"
	"github.com/rileyhilliard/chartkit/internal/errors"
	"github.com/rileyhilliard/chartkit/internal/logger"
	"github.com/rileyhilliard/chartkit/internal/ui"
	"github.com/rileyhilliard/chartkit/pkg/anim"
	"github.com/rileyhilliard/chartkit/pkg/chart"
	"github.com/rileyhilliard/chartkit/pkg/data"
	"github.com/rileyhilliard/chartkit/pkg/palette"
)

// Screen rows around the raster: a title above, and legend, status and
// help lines below.
const (
	headerLines = 1
	footerLines = 3
)

// Default terminal size used until the first WindowSizeMsg.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Loader reloads the chart data after the watched file changed.
type Loader func() ([]data.Point, error)

type settings struct {
	width, height int
	title         string
	watchPath     string
	load          Loader
	log           logger.Logger
	driverOpts    []anim.Option
}

// Option configures a Model.
type Option func(*settings)

// WithSize sets the terminal size used before the first resize event.
func WithSize(width, height int) Option {
	return func(s *settings) {
		if width > 0 && height > 0 {
			s.width, s.height = width, height
		}
	}
}

// WithTitle sets the title line.
func WithTitle(title string) Option {
	return func(s *settings) { s.title = title }
}

// WithWatch reloads the data through load whenever path changes.
func WithWatch(path string, load Loader) Option {
	return func(s *settings) { s.watchPath, s.load = path, load }
}

// WithLogger sets the logger for watcher and reload events. Events are
// logged at debug level since the preview owns the screen.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithAnimation passes options to the chart's animation driver.
func WithAnimation(opts ...anim.Option) Option {
	return func(s *settings) { s.driverOpts = append(s.driverOpts, opts...) }
}

// Model is the Bubble Tea model of a chart preview.
type Model struct {
	chart  *chart.Chart
	styles palette.StyleSet
	keys   KeyMap
	help   help.Model
	log    logger.Logger
	title  string

	width, height int
	cols, rows    int

	showHelp bool
	quitting bool
	err      error
	frame    int

	// pointer is the last pointer position over the raster, in chart
	// pixels.
	pointer struct {
		x, y float64
		ok   bool
	}

	watchPath string
	load      Loader
	changes   chan struct{}
	ctx       context.Context
	cancel    context.CancelFunc
}

// frameMsg advances the entrance animation. Ticks from an earlier
// generation are dropped so a replay never runs two tick chains.
type frameMsg struct {
	at  time.Time
	gen int
}

// dataMsg carries reloaded data.
type dataMsg struct {
	points []data.Point
	err    error
}

// watchErrMsg reports that the watcher stopped with an error.
type watchErrMsg struct{ err error }

// New returns a preview of items drawn with o. Axis labels and the legend
// are drawn as text around the raster, so the chart itself is computed
// without them.
func New(o chart.Options, items []data.Point, opts ...Option) Model {
	s := settings{width: DefaultCols, height: DefaultRows, log: logger.Noop()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.title == "" {
		s.title = o.Kind.String()
	}

	o.ShowLegend = chart.LegendOff
	o.ShowXAxis, o.ShowYAxis = false, false
	o.Interactive = true

	m := Model{
		chart:     chart.New(o, items, s.driverOpts...),
		styles:    palette.Resolve(o.Color),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		log:       s.log,
		title:     s.title,
		watchPath: s.watchPath,
		load:      s.load,
	}
	if m.load != nil {
		m.changes = make(chan struct{}, 1)
		m.ctx, m.cancel = context.WithCancel(context.Background())
	}
	m.resize(s.width, s.height)
	return m
}

// Chart returns the previewed chart.
func (m Model) Chart() *chart.Chart { return m.chart }

// Init starts the entrance animation and the file watcher.
func (m Model) Init() tea.Cmd {
	m.chart.Start()
	cmds := []tea.Cmd{m.frameCmd()}
	if m.load != nil {
		cmds = append(cmds, m.watchCmd(), m.waitForChangeCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case frameMsg:
		if msg.gen != m.frame {
			return m, nil
		}
		if _, more := m.chart.Advance(msg.at); more {
			return m, m.frameCmd()
		}

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case dataMsg:
		if msg.err != nil {
			m.err = msg.err
			m.log.Debug("reload of %s failed: %v", m.watchPath, msg.err)
			return m, m.waitForChangeCmd()
		}
		m.err = nil
		m.chart.SetData(msg.points)
		m.log.Debug("reloaded %d records from %s", len(msg.points), m.watchPath)
		m.frame++
		return m, tea.Batch(m.frameCmd(), m.waitForChangeCmd())

	case watchErrMsg:
		m.err = msg.err
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Replay):
		m.chart.Start()
		m.frame++
		return m, m.frameCmd()

	case key.Matches(msg, m.keys.Toggle):
		if len(msg.Runes) == 1 {
			m.chart.Toggle(int(msg.Runes[0] - '1'))
		}

	case key.Matches(msg, m.keys.Clear):
		m.pointer.ok = false
		m.chart.PointerLeave()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionMotion:
		px, py, ok := m.toPixel(msg.X, msg.Y)
		m.pointer.x, m.pointer.y, m.pointer.ok = px, py, ok
		if ok {
			m.chart.PointerMove(px, py)
		} else {
			m.chart.PointerLeave()
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != m.legendRow() {
			return
		}
		if i := m.legendAt(msg.X); i >= 0 {
			m.chart.Toggle(i)
		}
	}
}

// resize fits the raster to a width x height terminal.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.cols = max(width, 8)
	m.rows = max(height-headerLines-footerLines, 2)
	m.help.Width = width
	m.chart.SetSize(float64(m.cols*2), float64(m.rows*4))
}

// toPixel maps a terminal cell to the centre of its dot matrix in chart
// pixels.
func (m Model) toPixel(x, y int) (float64, float64, bool) {
	row := y - headerLines
	if x < 0 || x >= m.cols || row < 0 || row >= m.rows {
		return 0, 0, false
	}
	return float64(x*2 + 1), float64(row*4 + 2), true
}

func (m Model) legendRow() int { return headerLines + m.rows }

// legendSpan is the column range of one legend entry.
type legendSpan struct {
	index      int
	start, end int
	text       string
}

const legendSep = "  "

func (m Model) legendSpans() []legendSpan {
	var spans []legendSpan
	col := 0
	for i, e := range m.chart.Legend() {
		symbol := ui.SymbolShown
		if e.Hidden {
			symbol = ui.SymbolHidden
		}
		text := fmt.Sprintf("%d %s %s", i+1, symbol, e.Name)
		if i >= 9 {
			text = fmt.Sprintf("  %s %s", symbol, e.Name)
		}
		w := lipgloss.Width(text)
		spans = append(spans, legendSpan{index: i, start: col, end: col + w, text: text})
		col += w + len(legendSep)
	}
	return spans
}

// legendAt returns the legend entry under column x, or -1.
func (m Model) legendAt(x int) int {
	for _, s := range m.legendSpans() {
		if x >= s.start && x < s.end {
			return s.index
		}
	}
	return -1
}

func (m Model) frameCmd() tea.Cmd {
	gen := m.frame
	return tea.Tick(anim.DefaultFrameInterval, func(t time.Time) tea.Msg {
		return frameMsg{at: t, gen: gen}
	})
}

// watchCmd runs the file watcher until the preview quits.
func (m Model) watchCmd() tea.Cmd {
	ctx, changes, path, log := m.ctx, m.changes, m.watchPath, m.log
	return func() tea.Msg {
		err := dataset.Watch(ctx, path, func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		}, dataset.WatchOptions{Logger: log})
		if err != nil {
			return watchErrMsg{err: err}
		}
		return nil
	}
}

// waitForChangeCmd blocks until the watcher reports a change, then reloads.
func (m Model) waitForChangeCmd() tea.Cmd {
	if m.load == nil {
		return nil
	}
	ctx, changes, load := m.ctx, m.changes, m.load
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
		}
		points, err := load()
		return dataMsg{points: points, err: err}
	}
}

// Run starts the preview full screen with mouse motion tracking.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	if m.cancel != nil {
		m.cancel()
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrPreview,
			"Preview stopped unexpectedly",
			"Run in a terminal that supports the alternate screen, or use 'chartkit render'")
	}
	return nil
}

// firstLine trims multi-line structured errors to their headline.
func firstLine(err error) string {
	s := strings.TrimSpace(err.Error())
	s = strings.TrimPrefix(s, ui.SymbolFail+" ")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
