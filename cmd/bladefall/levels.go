package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bladefall/internal/config"
	"github.com/vovakirdan/bladefall/internal/games/bladefall"
)

var (
	flagFrom  int
	flagCount int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print obstacle layouts",
	Long: `Prints the starting field of each level side by side.
'#' is a hard tile, 'o' a soft tile and '.' an empty cell. Lane 0 holds the
obstacles, lane 1 is the wall.

Examples:
  bladefall levels
  bladefall levels --from 6 --count 4
  bladefall levels --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var (
	levelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	levelFieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	levelColumnStyle = lipgloss.NewStyle().
				MarginRight(2)
)

func init() {
	levelsCmd.Flags().IntVar(&flagFrom, "from", 0, "First level to print")
	levelsCmd.Flags().IntVar(&flagCount, "count", 6, "Number of levels to print")
}

func runLevels(cmd *cobra.Command, args []string) error {
	if flagFrom < 0 || flagCount <= 0 {
		return fmt.Errorf("invalid range: --from %d --count %d", flagFrom, flagCount)
	}

	cfg, err := config.LoadBladefall(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load levels: %w", err)
	}
	rules := bladefall.RulesFromConfig(cfg)

	columns := make([]string, 0, flagCount)
	for level := flagFrom; level < flagFrom+flagCount; level++ {
		columns = append(columns, levelColumnStyle.Render(renderLevel(rules, level)))
	}
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	return nil
}

func renderLevel(rules bladefall.Rules, level int) string {
	layout := rules.LayoutFor(level)
	game := bladefall.NewGame(level, rules)
	game.ApplyLayout(layout)
	field := game.Field()

	name := layout.Name
	if name == "" {
		name = "-"
	}
	title := levelTitleStyle.Render(fmt.Sprintf("%d %s", level, name))
	info := fmt.Sprintf("%d obstacles", field.Obstacles())
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		levelFieldStyle.Render(strings.Join(field.Rows(), "\n")),
		info,
	)
}
