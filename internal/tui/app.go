package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/linkman/internal/browser"
	"github.com/user/linkman/internal/config"
	"github.com/user/linkman/internal/db"
	"github.com/user/linkman/internal/importer"
	"github.com/user/linkman/internal/links"
)

type linkItem struct {
	url string
}

func (l linkItem) Title() string       { return l.url }
func (l linkItem) Description() string { return "" }
func (l linkItem) FilterValue() string { return l.url }

// panel is one of the two independent link lists. Each has its own folder,
// its own filter box, and its own view of the stored links.
type panel struct {
	name   string // db.PanelLeft or db.PanelRight
	title  string
	folder string
	all    links.Collection
	filter textinput.Model
	list   list.Model
}

func newPanel(name, title string) panel {
	ti := textinput.New()
	ti.Placeholder = "Search links..."
	ti.CharLimit = 256
	ti.Width = 40

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return panel{name: name, title: title, filter: ti, list: l}
}

// visible applies the panel's filter box to its collection. Display-only;
// the collection itself is never mutated.
func (p *panel) visible() []string {
	return p.all.Filter(p.filter.Value())
}

func (p *panel) refresh() {
	vis := p.visible()
	items := make([]list.Item, 0, len(vis))
	for _, u := range vis {
		items = append(items, linkItem{url: u})
	}
	p.list.SetItems(items)
	if p.folder != "" {
		p.list.Title = fmt.Sprintf("%s (%s)", p.title, p.folder)
	} else {
		p.list.Title = p.title
	}
}

type model struct {
	cfg    *config.Config
	store  *db.Store
	panels [2]panel
	active int

	prompt    textinput.Model
	prompting bool
	filtering bool

	// watching is true while a watcher command is outstanding; watchGen
	// identifies the current watcher so messages from retired ones can be
	// discarded after the folder set changes.
	watching bool
	watchGen int

	openLink func(string) error
	openAll  func([]string) int

	status string
	width  int
	height int
	err    error
}

type initMsg struct {
	store *db.Store
	left  links.Collection
	right links.Collection
	err   error
}

type importMsg struct {
	panel  int
	folder string
	links  links.Collection
	err    error
}

type folderChangedMsg struct {
	panel int
	gen   int
}

type watchErrorMsg struct {
	err error
	gen int
}

func initialModel(cfg *config.Config) model {
	prompt := textinput.New()
	prompt.Placeholder = "Folder path..."
	prompt.CharLimit = 512
	prompt.Width = 60

	m := model{
		cfg:      cfg,
		prompt:   prompt,
		openLink: browser.Open,
		openAll:  browser.OpenAll,
	}
	m.panels[0] = newPanel(db.PanelLeft, "Linklist 1")
	m.panels[1] = newPanel(db.PanelRight, "Linklist 2")
	m.panels[0].folder = cfg.Panels.Left.Folder
	m.panels[1].folder = cfg.Panels.Right.Folder
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initStore)
}

func (m model) initStore() tea.Msg {
	store, err := db.NewStore(m.cfg.DBPath())
	if err != nil {
		return initMsg{err: err}
	}

	left, err := store.List(db.PanelLeft)
	if err != nil {
		return initMsg{store: store, err: err}
	}
	right, err := store.List(db.PanelRight)
	if err != nil {
		return initMsg{store: store, err: err}
	}

	return initMsg{store: store, left: left, right: right}
}

// startWatch retires any running watcher and issues a fresh one for the
// current folder set. Pending messages from retired watchers carry an old
// generation and are discarded by Update.
func (m *model) startWatch() tea.Cmd {
	m.watchGen++
	c := m.watchFolders()
	m.watching = c != nil
	return c
}

func (m model) doImport(panelIdx int, folder string) tea.Cmd {
	return func() tea.Msg {
		collected, err := importer.Import(folder, m.cfg.Import.Pattern)
		if err != nil {
			return importMsg{panel: panelIdx, folder: folder, err: err}
		}
		return importMsg{panel: panelIdx, folder: folder, links: collected}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.active = 1 - m.active
			return m, nil
		case "/":
			m.filtering = true
			m.panels[m.active].filter.Focus()
			return m, textinput.Blink
		case "i":
			m.prompting = true
			m.prompt.SetValue("")
			m.prompt.Focus()
			return m, textinput.Blink
		case "r":
			p := &m.panels[m.active]
			if p.folder == "" {
				m.status = "No folder configured for this panel; press i to import"
				return m, nil
			}
			m.status = fmt.Sprintf("Re-importing %s...", p.folder)
			return m, m.doImport(m.active, p.folder)
		case "enter", "o":
			p := &m.panels[m.active]
			if item, ok := p.list.SelectedItem().(linkItem); ok {
				if err := m.openLink(item.url); err != nil {
					m.status = fmt.Sprintf("Could not open %s: %v", item.url, err)
				} else {
					m.status = fmt.Sprintf("Opened %s", item.url)
				}
			}
			return m, nil
		case "O":
			// Opens the whole collection; the filter box only narrows
			// the display, as in the original tool.
			p := &m.panels[m.active]
			opened := m.openAll(p.all)
			m.status = fmt.Sprintf("Opened %d of %d links", opened, len(p.all))
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case initMsg:
		// Keep the store even on error so Run's deferred close reaches it.
		m.store = msg.store
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.panels[0].all = msg.left
		m.panels[1].all = msg.right
		m.panels[0].refresh()
		m.panels[1].refresh()

		// Auto-import configured folders that have nothing stored yet.
		for i := range m.panels {
			if m.panels[i].folder != "" && len(m.panels[i].all) == 0 {
				cmds = append(cmds, m.doImport(i, m.panels[i].folder))
			}
		}
		if m.cfg.Import.Watch {
			if c := m.startWatch(); c != nil {
				cmds = append(cmds, c)
			}
		}
		return m, tea.Batch(cmds...)

	case importMsg:
		p := &m.panels[msg.panel]
		if msg.err != nil {
			m.status = fmt.Sprintf("Import failed: %v", msg.err)
			return m, nil
		}
		folderChanged := p.folder != msg.folder
		p.folder = msg.folder
		p.all = msg.links
		p.refresh()
		switch msg.panel {
		case 0:
			m.cfg.Panels.Left.Folder = msg.folder
		case 1:
			m.cfg.Panels.Right.Folder = msg.folder
		}
		if m.store != nil {
			if err := m.store.Replace(p.name, msg.folder, msg.links); err != nil {
				m.status = fmt.Sprintf("Imported %d links (save failed: %v)", len(msg.links), err)
				return m, nil
			}
		}
		m.status = fmt.Sprintf("Imported %d links from %s", len(msg.links), msg.folder)
		// A running watcher still holds the previous folder set, so any
		// re-point needs a fresh one; same when no watcher ran because no
		// folder was configured yet.
		if m.cfg.Import.Watch && (folderChanged || !m.watching) {
			if c := m.startWatch(); c != nil {
				return m, c
			}
		}
		return m, nil

	case folderChangedMsg:
		if msg.gen != m.watchGen {
			return m, nil
		}
		p := &m.panels[msg.panel]
		if p.folder == "" {
			return m, m.watchFolders()
		}
		m.status = fmt.Sprintf("Folder changed, re-importing %s...", p.folder)
		return m, tea.Batch(m.doImport(msg.panel, p.folder), m.watchFolders())

	case watchErrorMsg:
		if msg.gen != m.watchGen {
			return m, nil
		}
		m.status = fmt.Sprintf("Watch error: %v", msg.err)
		return m, nil
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		cmds = append(cmds, cmd)
	} else if m.filtering {
		var cmd tea.Cmd
		m.panels[m.active].filter, cmd = m.panels[m.active].filter.Update(msg)
		m.panels[m.active].refresh()
		cmds = append(cmds, cmd)
	} else {
		var cmd tea.Cmd
		m.panels[m.active].list, cmd = m.panels[m.active].list.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompting = false
		m.prompt.Blur()
		return m, nil
	case "enter":
		folder := strings.TrimSpace(m.prompt.Value())
		m.prompting = false
		m.prompt.Blur()
		if folder == "" {
			return m, nil
		}
		m.status = fmt.Sprintf("Importing %s...", folder)
		return m, m.doImport(m.active, folder)
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.filtering = false
		m.panels[m.active].filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.panels[m.active].filter, cmd = m.panels[m.active].filter.Update(msg)
	m.panels[m.active].refresh()
	return m, cmd
}

func (m *model) resize() {
	panelWidth := m.width/2 - 2
	listHeight := m.height - 8
	if listHeight < 3 {
		listHeight = 3
	}
	for i := range m.panels {
		m.panels[i].list.SetSize(panelWidth-2, listHeight)
		m.panels[i].filter.Width = panelWidth - 6
	}
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	activeBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)

	inactiveBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var rendered [2]string
	for i := range m.panels {
		p := &m.panels[i]
		content := p.filter.View() + "\n\n" + p.list.View()
		if i == m.active {
			rendered[i] = activeBorder.Render(content)
		} else {
			rendered[i] = inactiveBorder.Render(content)
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered[0], " ", rendered[1]))
	b.WriteString("\n")

	if m.prompting {
		promptStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("86")).
			Padding(0, 1)
		b.WriteString(promptStyle.Render("Import folder: " + m.prompt.View()))
		b.WriteString("\n")
	}

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	help := "[tab]panel [/]filter [i]mport [r]escan [enter/o]pen [O]pen all [q]uit"
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// Run starts the TUI and persists configuration when it exits. A config
// write failure is reported as a warning, not an error.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(model); ok {
		if m.store != nil {
			defer m.store.Close()
		}
		if m.width > 0 {
			cfg.Window.Width = m.width
			cfg.Window.Height = m.height
		}
		if err := config.Save(cfg); err != nil {
			fmt.Printf("Warning: could not save config: %v\n", err)
		}
	}
	return nil
}
