package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/athenc-client/internal/logger"
	"github.com/MKhiriev/athenc-client/internal/service"
	"github.com/MKhiriev/athenc-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusMode focusArea = iota
	focusFile
	focusPassword
)

// transferModel is the Bubble Tea model for the transfer screen. It owns the
// whole UI state: active mode, selected file, input widgets, busy flag, and
// the single notification slot.
type transferModel struct {
	ctx      context.Context
	transfer service.TransferService
	logger   *logger.Logger

	mode models.Mode
	file models.FileRef

	pathInput     textinput.Model
	passwordInput textinput.Model
	focus         focusArea

	submitting bool
	spin       spinner.Model

	notification    models.Notification
	notificationGen int

	lastSaved string
}

func newTransferModel(ctx context.Context, transfer service.TransferService, log *logger.Logger) transferModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "путь к файлу"
	pathInput.Width = 50

	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 50
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return transferModel{
		ctx:           ctx,
		transfer:      transfer,
		logger:        log,
		mode:          models.Encrypt,
		pathInput:     pathInput,
		passwordInput: passwordInput,
		spin:          spin,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m transferModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [transformDoneMsg]      — leaves the busy state, clears the password,
//     and reports the outcome as a notification.
//   - [clearNotificationMsg]  — auto-dismisses the notification when the
//     generation counter still matches.
//   - [copiedMsg]             — reports the clipboard copy outcome.
//   - key events              — focus movement, mode toggling, file
//     confirmation, guarded submission.
//
// All other messages are forwarded to the focused widget and the spinner.
func (m transferModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transformDoneMsg:
		return m.handleTransformDone(msg)
	case clearNotificationMsg:
		if msg.gen == m.notificationGen {
			m.notification = models.Notification{}
		}
		return m, nil
	case copiedMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			cmd = m.notify("Не удалось скопировать путь", models.SeverityError)
		} else {
			cmd = m.notify("Путь сохранённого файла скопирован", models.SeverityInfo)
		}
		return m, cmd
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.reveal):
		m.toggleReveal()
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.lastSaved == "" {
			return m, nil
		}
		return m, cmdCopyPath(m.lastSaved)
	case key.Matches(keyMsg, keys.tab):
		m.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		return m.handleEnter()
	}

	if m.focus == focusMode {
		switch {
		case key.Matches(keyMsg, keys.left):
			m.selectMode(models.Encrypt)
			return m, nil
		case key.Matches(keyMsg, keys.right):
			m.selectMode(models.Decrypt)
			return m, nil
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// selectMode activates mode, clears any previously selected file, and
// thereby disables submission until a new file is confirmed. The selection
// is cleared even when the active mode is re-selected, matching the
// behaviour of the athenc web page.
func (m *transferModel) selectMode(mode models.Mode) {
	m.mode = mode
	m.file = models.FileRef{}
	m.pathInput.SetValue("")
}

// confirmFile validates the entered path and stores the selection. Only one
// file can be selected at a time; confirming again replaces the previous
// selection.
func (m *transferModel) confirmFile() tea.Cmd {
	path := strings.TrimSpace(m.pathInput.Value())
	if path == "" {
		m.file = models.FileRef{}
		return m.notify("Укажите путь к файлу", models.SeverityError)
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		m.file = models.FileRef{}
		return m.notify("Файл не найден: "+path, models.SeverityError)
	}

	m.file = models.NewFileRef(path, info.Size())
	m.focusPassword()
	return nil
}

func (m transferModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	if m.focus == focusFile {
		cmd := m.confirmFile()
		return m, cmd
	}

	return m.submit()
}

// submit runs the pre-flight guard and dispatches the async transform
// command. A failed guard reports a validation notification and issues no
// request.
func (m transferModel) submit() (tea.Model, tea.Cmd) {
	if !m.file.IsSelected() {
		cmd := m.notify(service.ErrNoFileSelected.Error(), models.SeverityError)
		return m, cmd
	}
	if m.passwordInput.Value() == "" {
		cmd := m.notify(service.ErrEmptyPassword.Error(), models.SeverityError)
		return m, cmd
	}

	m.submitting = true
	return m, tea.Batch(m.spin.Tick, m.cmdTransform())
}

func (m transferModel) handleTransformDone(msg transformDoneMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	m.passwordInput.SetValue("")

	if msg.err != nil {
		m.logger.Error().Err(msg.err).Str("mode", m.mode.String()).Msg("transform failed")
		cmd := m.notify(fmt.Sprintf("%s не выполнено: %v", m.mode.Action(), msg.err), models.SeverityError)
		return m, cmd
	}

	m.lastSaved = msg.result.SavedPath
	m.logger.Info().Str("mode", m.mode.String()).Str("saved", m.lastSaved).Msg("transform completed")
	cmd := m.notify(
		fmt.Sprintf("%s завершено: %s", m.mode.Action(), msg.result.Filename),
		models.SeveritySuccess,
	)
	return m, cmd
}

func (m transferModel) cmdTransform() tea.Cmd {
	ctx := m.ctx
	transfer := m.transfer
	mode := m.mode
	file := m.file
	password := m.passwordInput.Value()

	return func() tea.Msg {
		result, err := transfer.Transform(ctx, mode, file, password)
		return transformDoneMsg{result: result, err: err}
	}
}

func cmdCopyPath(path string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(path)}
	}
}

// notify fills the single notification slot and restarts the auto-dismiss
// timer. An outdated timer is recognised by its generation counter and
// ignored, so overwriting a notification always grants it a full display
// period.
func (m *transferModel) notify(message string, severity models.Severity) tea.Cmd {
	m.notification = models.Notification{Message: message, Severity: severity}
	m.notificationGen++
	gen := m.notificationGen

	return tea.Tick(models.NotificationTTL, func(time.Time) tea.Msg {
		return clearNotificationMsg{gen: gen}
	})
}

func (m *transferModel) toggleReveal() {
	if m.passwordInput.EchoMode == textinput.EchoPassword {
		m.passwordInput.EchoMode = textinput.EchoNormal
	} else {
		m.passwordInput.EchoMode = textinput.EchoPassword
	}
}

func (m transferModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusFile:
		before := m.pathInput.Value()
		m.pathInput, cmd = m.pathInput.Update(msg)
		if m.pathInput.Value() != before {
			// изменённый путь означает новый, ещё не подтверждённый выбор
			m.file = models.FileRef{}
		}
	case focusPassword:
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}

	return m, cmd
}

func (m *transferModel) focusNext() {
	switch m.focus {
	case focusMode:
		m.focusFile()
	case focusFile:
		m.focusPassword()
	case focusPassword:
		m.focusModeRow()
	}
}

func (m *transferModel) focusPrev() {
	switch m.focus {
	case focusMode:
		m.focusPassword()
	case focusFile:
		m.focusModeRow()
	case focusPassword:
		m.focusFile()
	}
}

func (m *transferModel) focusModeRow() {
	m.focus = focusMode
	m.pathInput.Blur()
	m.passwordInput.Blur()
}

func (m *transferModel) focusFile() {
	m.focus = focusFile
	m.passwordInput.Blur()
	m.pathInput.Focus()
}

func (m *transferModel) focusPassword() {
	m.focus = focusPassword
	m.pathInput.Blur()
	m.passwordInput.Focus()
}

// View implements [tea.Model].
func (m transferModel) View() string {
	var b strings.Builder

	b.WriteString("Поле     │ Значение\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")

	b.WriteString("Режим    │ ")
	b.WriteString(m.renderModeRow())
	b.WriteString("\n")

	b.WriteString("Файл     │ [")
	b.WriteString(m.pathInput.View())
	b.WriteString("]\n")
	b.WriteString("         │ ")
	b.WriteString(m.renderFileLabel())
	b.WriteString("\n")

	b.WriteString("Пароль   │ [")
	b.WriteString(m.passwordInput.View())
	b.WriteString("]\n\n")

	b.WriteString(m.renderSubmitRow())

	if !m.notification.IsZero() {
		b.WriteString("\n\n")
		b.WriteString(notificationStyle(m.notification.Severity).Render(m.notification.Message))
	}

	hotKeys := "tab: след. поле │ enter: подтвердить │ ctrl+r: показать пароль"
	if m.lastSaved != "" {
		hotKeys += " │ ctrl+p: копировать путь"
	}

	return renderPage("ATHENC — "+m.mode.Title(), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m transferModel) renderModeRow() string {
	encryptMark, decryptMark := "(x)", "( )"
	if m.mode == models.Decrypt {
		encryptMark, decryptMark = "( )", "(x)"
	}

	row := fmt.Sprintf("%s Зашифровать   %s Расшифровать", encryptMark, decryptMark)
	if m.focus == focusMode {
		return row + "  ←/→"
	}
	return row
}

func (m transferModel) renderFileLabel() string {
	if !m.file.IsSelected() {
		return disabledStyle.Render("файл не выбран")
	}
	return fmt.Sprintf("%s (%s)", fitText(m.file.Name, 40), formatSize(m.file.Size))
}

func (m transferModel) renderSubmitRow() string {
	if m.submitting {
		return m.spin.View() + " Отправка на сервер..."
	}

	label := fmt.Sprintf("[%s]", m.mode.Action())
	if !m.file.IsSelected() {
		return disabledStyle.Render(label)
	}
	return label
}
