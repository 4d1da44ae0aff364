package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	nxcube "github.com/seamusw/nxcube"
	"github.com/seamusw/nxcube/internal/storage"
)

var (
	reduceSize    int
	reduceSeed    int64
	reduceMoves   int
	reduceNoStore bool
	reduceShow    bool
)

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Scramble a cube and reduce it to a 3x3",
	Long: `Scramble a cube of the given size, then run the full reduction:
centers first, then edge pairing, with parity fix-ups as needed.
The session outcome is recorded in the history database.`,
	RunE: runReduce,
}

func init() {
	reduceCmd.Flags().IntVarP(&reduceSize, "size", "n", 4, "Cube size (4 or larger does real work)")
	reduceCmd.Flags().Int64Var(&reduceSeed, "seed", 0, "Scramble seed (0: derive from current time)")
	reduceCmd.Flags().IntVar(&reduceMoves, "moves", 0, "Scramble length (0: 20 per layer of size)")
	reduceCmd.Flags().BoolVar(&reduceNoStore, "no-store", false, "Skip recording the session")
	reduceCmd.Flags().BoolVar(&reduceShow, "show", false, "Print the reduced cube state")
	rootCmd.AddCommand(reduceCmd)
}

func runReduce(cmd *cobra.Command, args []string) error {
	if reduceSize < 2 {
		return fmt.Errorf("cube size must be at least 2, got %d", reduceSize)
	}
	seed := reduceSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	moves := reduceMoves
	if moves <= 0 {
		moves = nxcube.DefaultScrambleLength(reduceSize)
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	c := nxcube.New(reduceSize)
	scramble := nxcube.Scramble(c, seed, moves)
	c.ResetMoveCount()

	var sessionID string
	var repo *storage.SessionRepository
	if !reduceNoStore {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		repo = storage.NewSessionRepository(db)
		sessionID, err = repo.Create(reduceSize, seed, nxcube.FormatMoves(scramble))
		if err != nil {
			return err
		}
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("reducing %dx%d (seed %d)", reduceSize, reduceSize, seed)))
	start := time.Now()

	r := nxcube.NewReducer(c,
		nxcube.WithLogger(log),
		nxcube.WithPhaseCallback(func(p nxcube.ReductionPhase) {
			fmt.Printf("  %s\n", p.DisplayName())
		}))
	err = r.Solve()
	elapsed := time.Since(start)
	events := r.ParityEvents

	phase := nxcube.DetectPhase(c)
	if repo != nil {
		if ferr := repo.Finish(sessionID, err == nil, events, c.MoveCount(), phase.String()); ferr != nil {
			return ferr
		}
	}
	if err != nil {
		return err
	}

	fmt.Printf("reduced in %d moves, %d parity fix-ups, %s\n", c.MoveCount(), events, elapsed.Round(time.Millisecond))
	if reduceShow {
		fmt.Println()
		fmt.Print(renderNet(c))
	}
	return nil
}

// openDB opens the configured history database and applies migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
