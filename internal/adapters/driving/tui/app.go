package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/creational/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/creational/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/creational/internal/core/domain"
	"github.com/custodia-labs/creational/internal/core/ports/driven"
)

// App is the drink picker following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	styles *styles.Styles
	keys   *keymap.KeyMap

	// drinks is the menu, captured once in discovery order.
	drinks   []string
	selected int

	// last is the most recently made drink, nil until one is made.
	last   driven.HotDrink
	served int

	status string
	err    error

	// width is the terminal width; the view is clipped to it.
	width int
}

// NewApp creates a new drink picker.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	return &App{
		ports:  ports,
		styles: styles.DefaultStyles(),
		keys:   keymap.DefaultKeyMap(),
		drinks: ports.Machine.Available(),
		width:  80,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Up):
			if a.selected > 0 {
				a.selected--
			}

		case key.Matches(msg, a.keys.Down):
			if a.selected < len(a.drinks)-1 {
				a.selected++
			}

		case key.Matches(msg, a.keys.Make):
			a.makeSelected()

		case key.Matches(msg, a.keys.Consume):
			a.consumeLast()
		}
	}

	return a, nil
}

func (a *App) makeSelected() {
	if len(a.drinks) == 0 {
		return
	}

	drink, err := a.ports.Machine.MakeDrink(a.drinks[a.selected])
	if err != nil {
		a.err = err
		a.status = ""
		return
	}

	a.err = nil
	a.last = drink
	a.served++
	a.status = fmt.Sprintf("Your %s is ready (%d ml)", drink.Kind(), domain.DefaultServingML)
}

func (a *App) consumeLast() {
	if a.last == nil {
		a.status = "Nothing to drink yet"
		return
	}

	a.last.Consume()
	a.status = fmt.Sprintf("You finished your %s", a.last.Kind())
	a.last = nil
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Hot Drink Machine"))
	b.WriteString("\n\n")

	if len(a.drinks) == 0 {
		b.WriteString(a.styles.Muted.Render("No drinks available."))
		b.WriteString("\n")
	}

	for i, name := range a.drinks {
		if i == a.selected {
			b.WriteString("> " + a.styles.Selected.Render(name))
		} else {
			b.WriteString("  " + a.styles.Normal.Render(name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	case a.status != "":
		b.WriteString(a.styles.Success.Render(a.status))
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Muted.Render(fmt.Sprintf("Served: %d", a.served)))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render(a.helpLine()))

	return lipgloss.NewStyle().MaxWidth(a.width).Render(b.String())
}

// Selected returns the name under the cursor, or "" if the menu is empty.
func (a *App) Selected() string {
	if len(a.drinks) == 0 {
		return ""
	}
	return a.drinks[a.selected]
}

// LastDrink returns the drink made most recently and not yet consumed.
func (a *App) LastDrink() driven.HotDrink {
	return a.last
}

func (a *App) helpLine() string {
	bindings := a.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}
