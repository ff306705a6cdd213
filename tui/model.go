package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/liberta-cli/liberta/provider/icl"
	"github.com/liberta-cli/liberta/query"
	"github.com/liberta-cli/liberta/source"
)

type model struct {
	state state
	keys  keyMap

	src source.Source

	input   textinput.Model
	spin    spinner.Model
	results list.Model

	details *source.VideoDetails
	err     error

	width  int
	height int

	startQuery string
	startHome  bool
}

func newModel(options *Options) *model {
	input := textinput.New()
	input.Placeholder = "Buscar conteúdo..."
	input.Focus()
	input.SetValue(options.Query)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	results := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	results.Title = icl.PlatformName
	results.SetShowStatusBar(false)

	src := icl.New()

	return &model{
		state:      stateSearch,
		keys:       keys,
		src:        src,
		input:      input,
		spin:       spin,
		results:    results,
		startQuery: options.Query,
		startHome:  options.Home,
	}
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spin.Tick, enableCmd(m.src)}

	switch {
	case m.startHome:
		m.state = stateLoading
		cmds = append(cmds, homeCmd(m.src))
	case m.startQuery != "":
		m.state = stateLoading
		cmds = append(cmds, searchCmd(m.src, m.startQuery))
	}

	return tea.Batch(cmds...)
}

// Messages produced by the asynchronous commands.

type resultsMsg struct {
	items []*source.VideoSummary
}

type detailsMsg struct {
	details *source.VideoDetails
}

type errMsg struct {
	err error
}

func enableCmd(src source.Source) tea.Cmd {
	return func() tea.Msg {
		if err := src.Enable(nil, nil, ""); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func homeCmd(src source.Source) tea.Cmd {
	return func() tea.Msg {
		pager, err := src.Home()
		if err != nil {
			return errMsg{err}
		}
		return resultsMsg{pager.Items}
	}
}

func searchCmd(src source.Source, q string) tea.Cmd {
	return func() tea.Msg {
		_ = query.Remember(q, 1)

		pager, err := src.Search(q)
		if err != nil {
			return errMsg{err}
		}
		return resultsMsg{pager.Items}
	}
}

func detailsCmd(src source.Source, url string) tea.Cmd {
	return func() tea.Msg {
		details, err := src.ContentDetails(url)
		if err != nil {
			return errMsg{err}
		}
		return detailsMsg{details}
	}
}
