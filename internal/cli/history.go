package cli

import (
	"github.com/spf13/cobra"

	"github.com/rclogistics/rc-dwgen/internal/datagen"
	"github.com/rclogistics/rc-dwgen/internal/gitsim"
)

var (
	historyOutput    string
	historyChangelog string
	historySeed      uint64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Write a script that fabricates the project git history",
	Long: `Write a shell script that recreates the project's multi-year
commit history with backdated commits attributed to the fictional
development team. Run the script in an empty directory to produce the
repository.

Example:
  rc-dwgen history --output setup_git_history.sh`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyOutput, "output", "setup_git_history.sh",
		"path for the generated script")
	historyCmd.Flags().StringVar(&historyChangelog, "changelog", "CHANGELOG.md",
		"path for the generated changelog (empty to skip)")
	historyCmd.Flags().Uint64Var(&historySeed, "seed", 0,
		"random seed for author assignment (0 = time-based)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	f := datagen.NewFaker()
	if historySeed > 0 {
		f = datagen.NewFakerWithSeed(historySeed)
	}

	commits := gitsim.BuildPlan(f)
	if err := gitsim.WriteScript(historyOutput, commits); err != nil {
		return err
	}
	if historyChangelog != "" {
		return gitsim.WriteChangelog(historyChangelog, commits)
	}
	return nil
}
