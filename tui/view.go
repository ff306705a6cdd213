package tui

import (
	"fmt"
	"strings"

	"github.com/liberta-cli/liberta/color"
	"github.com/liberta-cli/liberta/icon"
	"github.com/liberta-cli/liberta/source"
	"github.com/liberta-cli/liberta/style"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
)

func (m *model) View() string {
	switch m.state {
	case stateSearch:
		return fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			style.Title("Buscar"),
			m.input.View(),
			style.Faint("enter buscar • ctrl+h destaques • ctrl+c sair"),
		)

	case stateLoading:
		return fmt.Sprintf("%s Carregando...", m.spin.View())

	case stateBrowse:
		return m.results.View()

	case stateDetails:
		return m.detailsView()

	case stateError:
		return fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			style.ErrorTitle("Erro"),
			wordwrap.String(m.err.Error(), max(m.width-2, 20)),
			style.Faint("esc voltar • q sair"),
		)
	}

	return ""
}

func (m *model) detailsView() string {
	d := m.details
	width := max(m.width-4, 20)

	var b strings.Builder

	b.WriteString(style.Title(d.Title))
	b.WriteString("\n\n")

	if d.Description != "" {
		b.WriteString(wordwrap.String(d.Description, width))
		b.WriteString("\n\n")
	}

	if d.IsSeries() {
		b.WriteString(fmt.Sprintf("%s %d aulas\n\n", icon.Get(icon.Course), len(d.Episodes)))
		b.WriteString(style.Faint("enter ver aulas • o abrir no navegador • esc voltar"))
		return b.String()
	}

	if len(d.Sources) > 0 {
		b.WriteString(style.Bold("Fontes") + "\n")

		labels := lo.Map(d.Sources, func(s source.VideoSource, _ int) string {
			return s.Label()
		})
		for _, label := range labels {
			b.WriteString(fmt.Sprintf("  %s %s\n", style.Fg(color.Green)("•"), label))
		}
		b.WriteString("\n")
	}

	b.WriteString(style.Faint("o abrir no navegador • esc voltar"))
	return b.String()
}
