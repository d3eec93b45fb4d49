package notes

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-stickies/internal/tui/notes/components/confirm"
	"github.com/mattsolo1/grove-stickies/pkg/board"
	"github.com/mattsolo1/grove-stickies/pkg/models"
)

const (
	composeBodyHeight = 3
	modalBodyHeight   = 6
	minCardWidth      = 20
	defaultCardWidth  = 40
	cardBodyMaxLines  = 6
	quitTag           = "quit"
)

// Options configures the board TUI.
type Options struct {
	CardWidth int
	// Mouse enables hover tracking for the color picker. Clicks work either
	// way when the terminal reports them.
	Mouse bool
}

// Model is the bubbletea host for a board.Store. It owns the input widgets
// and forwards every user action to the router; everything it draws comes
// from the store's render model.
type Model struct {
	router *board.Router
	store  *board.Store
	log    logrus.FieldLogger

	keys      KeyMap
	help      help.Model
	width     int
	height    int
	cardWidth int
	mouse     bool

	// Compose form inputs, mirrored into the store's draft.
	titleInput   textinput.Model
	bodyInput    textarea.Model
	composeField int

	// Editor modal inputs, mirrored into the store's modal fields.
	modalTitle textinput.Model
	modalBody  textarea.Model
	modalField int

	cursor    int
	scrollRow int

	confirm       confirm.Model
	statusMessage string
	statusIsError bool
}

// PaletteChangedMsg replaces the palette of a running board, typically
// after the config file changed.
type PaletteChangedMsg struct {
	Palette models.Palette
}

// clipboardResultMsg reports the outcome of a copy to the clipboard.
type clipboardResultMsg struct {
	id  models.ID
	err error
}

// New creates a new TUI model driving router. A nil logger discards output.
func New(router *board.Router, log logrus.FieldLogger, opts Options) Model {
	if opts.CardWidth < minCardWidth {
		opts.CardWidth = defaultCardWidth
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = 200
	titleInput.Prompt = ""

	bodyInput := textarea.New()
	bodyInput.Placeholder = "Take a note..."
	bodyInput.ShowLineNumbers = false
	bodyInput.Prompt = ""
	bodyInput.CharLimit = 2000
	bodyInput.SetHeight(composeBodyHeight)

	modalTitle := textinput.New()
	modalTitle.Placeholder = "Title"
	modalTitle.CharLimit = 200
	modalTitle.Prompt = ""

	modalBody := textarea.New()
	modalBody.Placeholder = "Note"
	modalBody.ShowLineNumbers = false
	modalBody.Prompt = ""
	modalBody.CharLimit = 2000
	modalBody.SetHeight(modalBodyHeight)

	m := Model{
		router:     router,
		store:      router.Store(),
		log:        log,
		keys:       keys,
		help:       help.New(),
		cardWidth:  opts.CardWidth,
		mouse:      opts.Mouse,
		titleInput: titleInput,
		bodyInput:  bodyInput,
		modalTitle: modalTitle,
		modalBody:  modalBody,
		confirm:    confirm.New(),
	}
	m.resizeInputs()
	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ProgramOptions returns the bubbletea options matching the model's
// configuration.
func (m Model) ProgramOptions() []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	} else {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

func (m *Model) formWidth() int {
	w := m.cardWidth + 20
	if m.width > 0 && w > m.width-2 {
		w = m.width - 2
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

func (m *Model) modalWidth() int {
	w := 60
	if m.width > 0 && w > m.width-4 {
		w = m.width - 4
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// resizeInputs fits the inputs inside their bordered, padded boxes.
func (m *Model) resizeInputs() {
	inner := m.formWidth() - 4
	m.titleInput.Width = inner - 1
	m.bodyInput.SetWidth(inner)

	modalInner := m.modalWidth() - 4
	m.modalTitle.Width = modalInner - 1
	m.modalBody.SetWidth(modalInner)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMessage = msg
	m.statusIsError = isErr
}
