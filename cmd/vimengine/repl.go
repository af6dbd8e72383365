package main

import (
	"fmt"
	"strings"

	"github.com/loamwood/vimengine/internal/demomodes"
	"github.com/loamwood/vimengine/internal/vimconfig"
	"github.com/loamwood/vimengine/internal/vimcore"
	"github.com/loamwood/vimengine/internal/vimlog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive Bubble Tea TUI for exercising the engine live",
	Long:  `Launches a small Bubble Tea program backed by an InputEngine wired to the demo modes, vimconfig settings/remap table, and vimlog logging, so key sequences and ex-commands can be tried out interactively.`,
	RunE:  runRepl,
}

// replKeys holds the chrome keybindings for the repl harness itself
// (only force-quit, which is not active in Insert mode) — distinct from
// anything the InputEngine dispatches, which sees every other keystroke.
var replKeys = struct {
	ForceQuit key.Binding
}{
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "force quit"),
	),
}

func runRepl(cmd *cobra.Command, args []string) error {
	cleanup, err := vimlog.InitWithTeaLog("vimengine-repl.log", "vimengine")
	if err != nil {
		return fmt.Errorf("initializing log: %w", err)
	}
	defer cleanup()

	cfg, err := loadConfig()
	if err != nil {
		vimlog.ErrorErr(vimlog.CatCLI, "config load failed, using defaults", err)
		cfg = vimconfig.Defaults()
	}
	settings := vimconfig.NewSettings(cfg)
	table, err := vimconfig.BuildKeyMapTable(cfg)
	if err != nil {
		vimlog.ErrorErr(vimlog.CatCLI, "config mappings invalid, starting with none", err)
		table = vimcore.NewStaticKeyMapTable()
	}
	live := vimconfig.NewLiveKeyMapTable(table)

	h, err := demomodes.New([]string{"Welcome to vimengine.", "Press i to insert, Esc to go back, : for commands, ZZ has no special meaning here."},
		vimcore.Config{
			Settings: settings,
			Table:    live,
			Sink:     vimlog.EngineSink{Name: "repl"},
		})
	if err != nil {
		return fmt.Errorf("building harness: %w", err)
	}

	p := tea.NewProgram(&replModel{harness: h}, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type replModel struct {
	harness *demomodes.Harness
	width   int
	height  int
	quit    bool
}

func (m *replModel) Init() tea.Cmd { return nil }

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, replKeys.ForceQuit) && m.harness.Registry.Current().Kind() != vimcore.ModeInsert {
			m.quit = true
			return m, tea.Quit
		}
		m.harness.Engine.Process(translateKey(msg))

		if cmdMode, ok := m.commandMode(); ok && cmdMode.Quit() {
			m.quit = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *replModel) commandMode() (*demomodes.Command, bool) {
	raw, ok := m.harness.Registry.Get(vimcore.ModeCommand)
	if !ok {
		return nil, false
	}
	cmdMode, ok := raw.(*demomodes.Command)
	return cmdMode, ok
}

// translateKey maps a Bubble Tea key event onto vimcore's own KeyInput,
// the boundary perles' vimtextarea.keyToString draws between bubbletea
// and its own vim dispatch, generalized to cover vimcore's fuller set of
// named keys and modifiers.
func translateKey(msg tea.KeyMsg) vimcore.KeyInput {
	switch msg.Type {
	case tea.KeyEsc:
		return vimcore.Escape()
	case tea.KeyEnter:
		return vimcore.Enter()
	case tea.KeyBackspace:
		return vimcore.Backspace()
	case tea.KeyDelete:
		return vimcore.Delete()
	case tea.KeyTab:
		return vimcore.Tab()
	case tea.KeyUp:
		return vimcore.Up()
	case tea.KeyDown:
		return vimcore.Down()
	case tea.KeyLeft:
		return vimcore.Left()
	case tea.KeyRight:
		return vimcore.Right()
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			return vimcore.Key(msg.Runes[0])
		}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return vimcore.KeyWithMods(r, vimcore.ModCtrl)
	}
	return vimcore.Nop()
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cmdStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func (m *replModel) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	line, col := m.harness.Buffer.Cursor()
	for i, l := range m.harness.Buffer.Lines() {
		if i == line {
			runes := []rune(l)
			cursorCol := col
			if cursorCol > len(runes) {
				cursorCol = len(runes)
			}
			before, after := string(runes[:cursorCol]), ""
			if cursorCol < len(runes) {
				after = string(runes[cursorCol+1:])
			}
			cursorRune := " "
			if cursorCol < len(runes) {
				cursorRune = string(runes[cursorCol])
			}
			b.WriteString(before)
			b.WriteString(lipgloss.NewStyle().Reverse(true).Render(cursorRune))
			b.WriteString(after)
		} else {
			b.WriteString(l)
		}
		b.WriteString("\n")
	}

	mode := m.harness.Registry.Current().Kind()
	status := statusStyle.Render(fmt.Sprintf("-- %s --", strings.ToUpper(mode.String())))

	if cmdMode, ok := m.commandMode(); ok && mode == vimcore.ModeCommand {
		status = cmdStyle.Render(cmdMode.Text())
	}

	b.WriteString("\n")
	b.WriteString(status)
	return b.String()
}
