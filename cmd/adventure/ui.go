package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/adventure-engine/pkg/engine"
)

const (
	PlaceHolderText = "What do you do? (try 'help')"
	copyNoticeTTL   = 2 * time.Second
)

type entryRole int

const (
	roleGame entryRole = iota
	rolePlayer
	roleHelp
	roleNotice
)

type logEntry struct {
	role entryRole
	text string
}

// ConsoleUI is the BubbleTea model that runs the game.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	ctx            context.Context
	engine         *engine.Engine
	narrationReady bool

	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	loading      bool

	entries      []logEntry
	lastResponse string
	notice       string

	showQuitModal bool
	progressTick  int
}

type commandResultMsg struct {
	result engine.Result
}

type progressTickMsg struct{}

type clearNoticeMsg struct{}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(ctx context.Context, eng *engine.Engine, narrationReady bool) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	m := ConsoleUI{
		ctx:            ctx,
		engine:         eng,
		narrationReady: narrationReady,
		textarea:       ta,
		chatViewport:   chatVp,
		metaViewport:   metaVp,
	}
	if !narrationReady {
		m.entries = append(m.entries, logEntry{role: roleNotice, text: "⚠️  Narrator offline: fights will use simple responses"})
	}
	m.entries = append(m.entries, logEntry{role: roleGame, text: eng.Look()})
	m.metaViewport.SetContent(writeStatus(eng))
	return m
}

// writeStatus renders the side panel. It reads engine state, so it is only
// called from Update while no command is running.
func writeStatus(eng *engine.Engine) string {
	s := eng.Player().Status()
	room := eng.CurrentRoom()

	var content strings.Builder
	content.WriteString(titleStyle.Render("ADVENTURER") + "\n\n")

	content.WriteString("Location:\n")
	content.WriteString(room.Name + "\n\n")

	content.WriteString("Health:\n")
	content.WriteString(fmt.Sprintf("%s %d/%d\n\n", healthBar(s.Health, s.MaxHealth, 10), s.Health, s.MaxHealth))

	content.WriteString(fmt.Sprintf("Level: %d\nXP: %d\n\n", s.Level, s.Experience))

	content.WriteString("Inventory:\n")
	inventory := eng.Player().Inventory()
	if len(inventory) == 0 {
		content.WriteString("Empty\n")
	}
	for _, name := range inventory {
		content.WriteString("• " + name + "\n")
	}

	content.WriteString("\nExits:\n")
	exits := room.ExitDirections()
	if len(exits) == 0 {
		content.WriteString("None\n")
	}
	for _, d := range exits {
		content.WriteString("• " + string(d) + "\n")
	}

	content.WriteString("\n")
	content.WriteString("Keys:\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• Ctrl+Y: Copy reply\n")
	content.WriteString("• Ctrl+C: Quit\n")

	return content.String()
}

func healthBar(health, max, width int) string {
	if max <= 0 {
		return ""
	}
	filled := health * width / max
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// writeChatContent rebuilds the log for the current viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6 // left(3) + right(3) padding
	if chatWidth < 20 {
		chatWidth = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(strings.TrimSpace(banner)) + "\n\n")
	content.WriteString("Type commands below. Abbreviations work: 'm n' moves north.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", chatWidth)) + "\n\n")

	for _, e := range m.entries {
		content.WriteString(formatEntry(e, chatWidth) + "\n\n")
	}

	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

func formatEntry(e logEntry, width int) string {
	switch e.role {
	case rolePlayer:
		return playerStyle.Render("You: ") + wordwrap.String(e.text, width-5)
	case roleHelp:
		return helpStyle.Render(e.text)
	case roleNotice:
		return warnStyle.Render(wordwrap.String(e.text, width))
	default:
		return gameStyle.Render(wordwrap.String(e.text, width))
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// results land even while the quit modal is open
	if res, ok := msg.(commandResultMsg); ok {
		return m.applyResult(res.result)
	}
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.7) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.writeChatContent()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			return m.copyLastResponse()
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}

			m.loading = true
			m.progressTick = 0
			m.entries = append(m.entries, logEntry{role: rolePlayer, text: input})
			m.writeChatContent()

			return m, tea.Batch(m.processCommand(input), progressTick())
		}

	case clearNoticeMsg:
		m.notice = ""

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeChatContent()
			return m, progressTick()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// processCommand runs the engine off the UI goroutine. Input is refused
// while loading, so only one command is ever in flight.
func (m ConsoleUI) processCommand(input string) tea.Cmd {
	eng := m.engine
	ctx := m.ctx
	return func() tea.Msg {
		return commandResultMsg{result: eng.Process(ctx, input)}
	}
}

func (m ConsoleUI) applyResult(res engine.Result) (tea.Model, tea.Cmd) {
	m.loading = false
	switch res.Kind {
	case engine.ResultQuit:
		return m, tea.Quit
	case engine.ResultHelp:
		m.entries = append(m.entries, logEntry{role: roleHelp, text: res.Text})
	default:
		m.entries = append(m.entries, logEntry{role: roleGame, text: res.Text})
		m.lastResponse = res.Text
	}
	m.writeChatContent()
	m.metaViewport.SetContent(writeStatus(m.engine))
	return m, nil
}

func (m ConsoleUI) copyLastResponse() (tea.Model, tea.Cmd) {
	if m.lastResponse == "" {
		m.notice = "Nothing to copy yet"
	} else if err := clipboard.WriteAll(m.lastResponse); err != nil {
		m.notice = "Copy failed: " + err.Error()
	} else {
		m.notice = "Copied last reply"
	}
	return m, tea.Tick(copyNoticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			return m, progressTick()
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to leave the forest?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - chatWidth - 6

	footer := separatorStyle.Render(strings.Repeat("─", chatWidth-4))
	if m.notice != "" {
		footer = warnStyle.Render(m.notice)
	}

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			footer,
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}

// renderProgressBar draws an animated bar while a command, usually a fight,
// is waiting on the narrator.
func (m ConsoleUI) renderProgressBar() string {
	usable := m.chatViewport.Width - 6
	if usable <= 0 {
		usable = 30
	}
	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓")
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
