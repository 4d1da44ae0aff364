package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/nxcube/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent reduction sessions",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of sessions to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	sessions, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println(dimStyle.Render("no sessions recorded yet"))
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-36s  %-5s  %-19s  %-7s  %-6s  %-6s  %s",
		"ID", "SIZE", "STARTED", "MOVES", "PARITY", "TIME", "RESULT")))
	for _, s := range sessions {
		fmt.Println(formatSession(s))
	}
	return nil
}

func formatSession(s storage.Session) string {
	result := dimStyle.Render("running")
	if s.EndedAt != nil {
		if s.Reduced {
			result = "reduced"
			if s.FinalPhase != nil {
				result = *s.FinalPhase
			}
		} else {
			result = "failed"
		}
	}

	elapsed := "-"
	if s.DurationMs != nil {
		elapsed = (time.Duration(*s.DurationMs) * time.Millisecond).String()
	}

	return fmt.Sprintf("%-36s  %-5s  %-19s  %-7d  %-6d  %-6s  %s",
		s.SessionID,
		fmt.Sprintf("%dx%d", s.Size, s.Size),
		s.StartedAt.Local().Format("2006-01-02 15:04:05"),
		s.MoveCount,
		s.ParityEvents,
		elapsed,
		result)
}
