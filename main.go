package main

import (
	"context"
	"corners/config"
	"corners/console"
	"corners/gamemaster"
	"corners/logging"
	"corners/metrics"
	"corners/scoreboard"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configDir := flag.String("config", ".", "Directory containing "+config.FileName)
	red := flag.String("red", "", "Name of the RED player (moves first)")
	blue := flag.String("blue", "", "Name of the BLUE player")
	scoresOnly := flag.Bool("scores", false, "Print the leaderboard and exit")
	totals := flag.Bool("totals", false, "Sum the leaderboard per player name")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *red != "" {
		config.Set("players.red", *red)
	}
	if *blue != "" {
		config.Set("players.blue", *blue)
	}

	logger := logging.Setup(config.GetString("logLevel"), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, logger, *scoresOnly, *totals)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("corners failed")
	}
}

func run(ctx context.Context, logger zerolog.Logger, scoresOnly, totals bool) error {
	store, err := scoreboard.Open(config.GetString("scoreboard.path"), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	var writer *metrics.Writer
	if dir := config.GetString("metrics.dir"); dir != "" {
		if writer, err = metrics.NewWriter(dir); err != nil {
			return err
		}
	}

	if !scoresOnly {
		s := gamemaster.NewSession(
			config.GetString("players.red"),
			config.GetString("players.blue"),
			gamemaster.WithMetrics(),
		)
		if err := playGame(ctx, s, store, writer, os.Stdin, os.Stdout); err != nil {
			return err
		}
	}

	// An interrupted game is still saved and listed.
	ctx = context.WithoutCancel(ctx)
	list := store.List
	if totals {
		list = store.Totals
	}
	records, err := list(ctx)
	if err != nil {
		return err
	}
	if writer != nil {
		if err := writer.WriteScores(records); err != nil {
			return err
		}
	}
	return printScores(os.Stdout, records)
}

// playGame runs the session on in and out and saves the result. Cancelling ctx
// abandons the game, which is then saved like a quit.
func playGame(ctx context.Context, s *gamemaster.Session, store *scoreboard.Store, writer *metrics.Writer, in io.Reader, out io.Writer) error {
	err := console.Run(ctx, s, in, out)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(out)
		log.Info().Msg("Game interrupted")
	case err != nil:
		return err
	}
	ctx = context.WithoutCancel(ctx)

	players, metric := s.Finish()
	if metric.TotalMoves == 0 {
		log.Info().Msg("No moves played, not saving scores")
		return nil
	}

	records := make([]scoreboard.Record, len(players))
	for i, p := range players {
		records[i] = scoreboard.Record{Name: p.Name, StepCount: p.StepCount, Score: p.Score}
	}
	if err := store.Save(ctx, records...); err != nil {
		return err
	}
	log.Info().Msg("Added players to the score database")

	if writer != nil {
		return writer.WriteGameRecords([]metrics.GameRecord{{
			RedPlayer:  players[0].Name,
			BluePlayer: players[1].Name,
			GameMetric: metric,
		}})
	}
	return nil
}

func printScores(w io.Writer, records []scoreboard.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSTEPS\tSCORE")
	for i, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", i+1, r.Name, r.StepCount, r.Score)
	}
	return tw.Flush()
}
