package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2112121/accounting-book-sub002/internal/calc"
	"github.com/2112121/accounting-book-sub002/internal/clipboard"
	"github.com/2112121/accounting-book-sub002/internal/consts"
)

const displayWidth = 29

// Timing controls the keypad's artificial delays.
type Timing struct {
	Settle      time.Duration
	Shake       time.Duration
	CopyConfirm time.Duration
}

// DefaultTiming returns the standard keypad timings.
func DefaultTiming() Timing {
	return Timing{
		Settle:      consts.SettleDelay,
		Shake:       consts.ShakeDuration,
		CopyConfirm: consts.CopyConfirmDuration,
	}
}

// Options configures a keypad.
type Options struct {
	Calculator *calc.Calculator
	Clipboard  clipboard.Writer
	Timing     Timing
}

type settleMsg struct{ id uint64 }

type shakeDoneMsg struct{ id uint64 }

type copyHideMsg struct{ id uint64 }

// ClipboardCopyMsg is sent when a clipboard write finished
type ClipboardCopyMsg struct {
	Content string
	Success bool
	Error   string
}

// Keypad is the bubbletea model around a calc.Calculator.
type Keypad struct {
	calc    *calc.Calculator
	clip    clipboard.Writer
	timing  Timing
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	styles  styles
}

// NewKeypad creates the keypad model. A nil clipboard falls back to the
// system clipboard.
func NewKeypad(opts Options) Keypad {
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewSystem()
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	k := Keypad{
		calc:    opts.Calculator,
		clip:    clip,
		timing:  opts.Timing,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: s,
		styles:  defaultStyles(),
	}
	k.syncBindings()
	return k
}

func (k Keypad) Init() tea.Cmd {
	return nil
}

func (k Keypad) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		k.help.Width = msg.Width
		return k, nil

	case tea.KeyMsg:
		return k.handleKey(msg)

	case settleMsg:
		if !k.calc.Settle(msg.id) {
			return k, nil
		}
		k.syncBindings()
		if k.calc.State() == calc.SettledError {
			return k, after(k.timing.Shake, shakeDoneMsg{id: k.calc.ShakeID()})
		}
		return k, nil

	case shakeDoneMsg:
		k.calc.EndShake(msg.id)
		return k, nil

	case ClipboardCopyMsg:
		if !msg.Success {
			k.calc.CopyFailed(errors.New(msg.Error))
			return k, nil
		}
		id := k.calc.ConfirmCopy()
		return k, after(k.timing.CopyConfirm, copyHideMsg{id: id})

	case copyHideMsg:
		k.calc.HideCopyConfirmation(msg.id)
		return k, nil

	case spinner.TickMsg:
		if k.calc.State() != calc.Pending {
			return k, nil
		}
		var cmd tea.Cmd
		k.spinner, cmd = k.spinner.Update(msg)
		return k, cmd
	}

	return k, nil
}

func (k Keypad) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, k.keys.Quit):
		k.calc.Dismiss()
		return k, tea.Quit

	case key.Matches(msg, k.keys.Help):
		k.help.ShowAll = !k.help.ShowAll
		return k, nil

	case key.Matches(msg, k.keys.Use):
		if _, ok := k.calc.UseResult(); ok {
			return k, tea.Quit
		}
		return k, nil

	case key.Matches(msg, k.keys.Copy):
		if text, ok := k.calc.CopyText(); ok {
			return k, copyToClipboard(k.clip, text)
		}
		return k, nil

	case key.Matches(msg, k.keys.Evaluate):
		return k.press(calc.TokenEvaluate)

	case key.Matches(msg, k.keys.Backspace):
		return k.press(calc.TokenBackspace)

	case key.Matches(msg, k.keys.Clear):
		return k.press(calc.TokenClear)
	}

	tok, err := calc.ParseToken(msg.String())
	if err != nil || !tok.IsEdit() {
		return k, nil
	}
	return k.press(tok)
}

func (k Keypad) press(tok calc.Token) (tea.Model, tea.Cmd) {
	id := k.calc.Press(tok)
	k.syncBindings()
	if id == 0 {
		return k, nil
	}
	return k, tea.Batch(k.spinner.Tick, after(k.timing.Settle, settleMsg{id: id}))
}

// syncBindings greys out the export actions in the help line when they are
// unavailable.
func (k *Keypad) syncBindings() {
	k.keys.Use.SetEnabled(k.calc.UseResultOffered())
	k.keys.Copy.SetEnabled(k.calc.CanCopy())
}

// copyToClipboard copies content to the clipboard off the update loop
func copyToClipboard(w clipboard.Writer, content string) tea.Cmd {
	return func() tea.Msg {
		if err := w.WriteText(content); err != nil {
			return ClipboardCopyMsg{Success: false, Error: err.Error()}
		}
		return ClipboardCopyMsg{Content: content, Success: true}
	}
}

func after(d time.Duration, msg tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

var keypadRows = [][]calc.Token{
	{'7', '8', '9', calc.TokenDivide},
	{'4', '5', '6', calc.TokenMultiply},
	{'1', '2', '3', calc.TokenSubtract},
	{'0', calc.TokenDecimal, calc.TokenEvaluate, calc.TokenAdd},
	{calc.TokenOpen, calc.TokenClose, calc.TokenBackspace, calc.TokenClear},
}

func (k Keypad) View() string {
	if k.calc.Done() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(k.renderPanel())
	sb.WriteString("\n")
	sb.WriteString(k.renderKeys())
	sb.WriteString("\n")
	sb.WriteString(k.renderActions())
	sb.WriteString("\n")
	sb.WriteString(k.help.View(k.keys))
	return sb.String() + "\n"
}

func (k Keypad) renderPanel() string {
	expr := displayGlyphs(k.calc.Expression())
	exprStyle := k.styles.expression
	if !k.calc.Valid() {
		exprStyle = k.styles.invalid
	}
	inner := displayWidth - 2

	var result string
	switch k.calc.State() {
	case calc.Pending:
		result = k.styles.pending.Render(k.spinner.View())
	case calc.SettledError:
		result = k.styles.errDisplay.Render(k.calc.Display())
	default:
		result = k.styles.display.Render(displayGlyphs(k.calc.Display()))
	}

	status := ""
	if k.calc.CopyConfirmed() {
		status = k.styles.confirm.Render("✓ copied")
	}

	body := lipgloss.JoinVertical(lipgloss.Right,
		exprStyle.Width(inner).Align(lipgloss.Right).Render(expr),
		lipgloss.NewStyle().Width(inner).Align(lipgloss.Right).Render(result),
		lipgloss.NewStyle().Width(inner).Render(status),
	)

	panel := k.styles.panel
	if k.calc.Shaking() {
		panel = panel.BorderForeground(lipgloss.Color("203")).MarginLeft(2)
	}
	return panel.Render(body)
}

func (k Keypad) renderKeys() string {
	rows := make([]string, 0, len(keypadRows))
	for _, row := range keypadRows {
		caps := make([]string, 0, len(row))
		for _, tok := range row {
			caps = append(caps, k.renderCap(tok))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, caps...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (k Keypad) renderCap(tok calc.Token) string {
	switch tok {
	case calc.TokenEvaluate:
		return k.styles.operator.Render("=")
	case calc.TokenBackspace:
		return k.styles.control.Render("⌫")
	case calc.TokenClear:
		return k.styles.control.Render("C")
	}
	if tok.IsOperator() {
		return k.styles.operator.Render(tok.String())
	}
	return k.styles.key.Render(tok.String())
}

func (k Keypad) renderActions() string {
	var parts []string
	if k.calc.UseResultOffered() {
		parts = append(parts, k.actionLabel("u use result", k.calc.CanUseResult()))
	}
	parts = append(parts, k.actionLabel("y copy", k.calc.CanCopy()))
	return strings.Join(parts, "   ")
}

func (k Keypad) actionLabel(label string, enabled bool) string {
	if enabled {
		return k.styles.action.Render(label)
	}
	return k.styles.disabled.Render(label)
}

// displayGlyphs renders the ASCII minus stored in the buffer as "−".
func displayGlyphs(s string) string {
	return strings.ReplaceAll(s, "-", "−")
}
