package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bladefall/internal/games/bladefall"
	"github.com/vovakirdan/bladefall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games on the console",
	Long:  `Shows every registered game. The one marked with * starts when play gets no argument.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games registered.")
		return
	}

	ids := make([]string, 0, len(games)+1)
	titles := make([]string, 0, len(games)+1)
	ids = append(ids, listHeaderStyle.Render("ID"))
	titles = append(titles, listHeaderStyle.Render("Title"))
	for _, g := range games {
		mark := "  "
		if g.ID == bladefall.GameID {
			mark = "* "
		}
		ids = append(ids, mark+g.ID)
		titles = append(titles, g.Title)
	}

	idColumn := lipgloss.NewStyle().PaddingRight(3).Render(strings.Join(ids, "\n"))
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, idColumn, strings.Join(titles, "\n")))
	fmt.Println()
	fmt.Println("Run 'bladefall play <id>' to start one.")
}
