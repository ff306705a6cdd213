package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/liberta-cli/liberta/history"
	appkey "github.com/liberta-cli/liberta/key"
	"github.com/liberta-cli/liberta/open"
	"github.com/liberta-cli/liberta/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.results.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = stateError
		return m, nil

	case resultsMsg:
		items := lo.Map(msg.items, func(s *source.VideoSummary, _ int) list.Item {
			return listItem{s}
		})
		cmd := m.results.SetItems(items)
		m.state = stateBrowse
		return m, cmd

	case detailsMsg:
		m.details = msg.details
		m.state = stateDetails

		if viper.GetBool(appkey.HistorySaveOnView) {
			_ = history.Save(msg.details)
		}

		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && m.state != stateSearch {
			return m, tea.Quit
		}

		return m.handleKey(msg)
	}

	return m.updateChildren(msg)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateSearch:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			q := m.input.Value()
			if q == "" {
				return m, nil
			}

			m.state = stateLoading
			return m, searchCmd(m.src, q)
		case key.Matches(msg, m.keys.Home):
			m.state = stateLoading
			return m, homeCmd(m.src)
		}

	case stateBrowse:
		// Let the list swallow keys while its filter input is active.
		if m.results.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Confirm):
			if item, ok := m.results.SelectedItem().(listItem); ok {
				m.state = stateLoading
				return m, detailsCmd(m.src, item.summary.URL)
			}
		case key.Matches(msg, m.keys.Back):
			m.state = stateSearch
			return m, nil
		case key.Matches(msg, m.keys.Home):
			m.state = stateLoading
			return m, homeCmd(m.src)
		}

	case stateDetails:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.state = stateBrowse
			return m, nil
		case key.Matches(msg, m.keys.Open):
			_ = open.Start(m.details.URL)
			return m, nil
		case key.Matches(msg, m.keys.Confirm):
			// A series drills down into its lessons.
			if m.details.IsSeries() {
				m.state = stateLoading
				episodes := m.details.Episodes
				return m, func() tea.Msg { return resultsMsg{episodes} }
			}
		}

	case stateError:
		if key.Matches(msg, m.keys.Back) {
			m.state = stateSearch
			return m, nil
		}
	}

	return m.updateChildren(msg)
}

func (m *model) updateChildren(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch m.state {
	case stateSearch:
		input, cmd := m.input.Update(msg)
		m.input = input
		cmds = append(cmds, cmd)
	case stateLoading:
		spin, cmd := m.spin.Update(msg)
		m.spin = spin
		cmds = append(cmds, cmd)
	case stateBrowse:
		results, cmd := m.results.Update(msg)
		m.results = results
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
