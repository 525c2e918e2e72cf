// Command oddsim plays every game many times against a seeded source and prints
// the observed win rate, return to player and distribution checks.
package main

import (
	"flag"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"wagerbot/games"
	"wagerbot/models"
	"wagerbot/service"
)

const bet = 1000

type tally struct {
	wins, losses, ties int
	staked, returned   int64
}

func (t tally) rounds() int { return t.wins + t.losses + t.ties }

func (t tally) rtp() float64 {
	if t.staked == 0 {
		return 0
	}
	return float64(t.returned) / float64(t.staked)
}

func main() {
	trials := flag.Int("trials", 1_000_000, "rounds per game")
	seed := flag.Uint64("seed", 1, "source seed")
	bonus := flag.String("bonus", "1", "gambling multiplier applied to flip, dice and slots")
	flag.Parse()

	multiplier, err := decimal.NewFromString(*bonus)
	if err != nil {
		log.WithError(err).WithField("bonus", *bonus).Fatal("Invalid bonus")
	}

	engine := service.NewWagerEngine(games.NewSeededSource(*seed))

	fmt.Printf("Simulating %d rounds per game (seed %d, bonus %s)\n", *trials, *seed, multiplier)
	fmt.Println(strings.Repeat("=", 64))

	for _, game := range models.AllGames {
		t, faces := simulate(engine, game, *trials, multiplier)
		report(game, t, multiplier)
		if game == models.GameDice {
			reportUniformity("die faces", faces[1:], 11.07, 5)
		}
	}

	fmt.Println()
	reportSourceUniformity(games.NewSeededSource(*seed+1), *trials)
}

func simulate(engine *service.WagerEngine, game models.GameType, trials int, bonus decimal.Decimal) (tally, []int) {
	var t tally
	faces := make([]int, 7)
	req := models.WagerRequest{UserID: 1, Game: game}
	if game.RequiresBet() {
		req.Amount = bet
	}

	for i := range trials {
		if choices := game.Choices(); choices != nil {
			req.Choice = choices[i%len(choices)]
		}
		outcome, err := engine.Resolve(req, bonus)
		if err != nil {
			log.WithError(err).WithField("game", game).Fatal("Resolve failed")
		}

		switch outcome.Result {
		case models.ResultWin:
			t.wins++
		case models.ResultTie:
			t.ties++
		default:
			t.losses++
		}
		t.staked += outcome.Bet
		t.returned += outcome.GrossWinnings
		if game == models.GameDice {
			faces[outcome.Detail.DieFace]++
		}
	}
	return t, faces
}

func report(game models.GameType, t tally, bonus decimal.Decimal) {
	n := float64(t.rounds())
	fmt.Printf("\n%s\n", strings.ToUpper(string(game)))
	fmt.Printf("  Wins:   %8d (%.4f%%)\n", t.wins, float64(t.wins)/n*100)
	fmt.Printf("  Losses: %8d (%.4f%%)\n", t.losses, float64(t.losses)/n*100)
	if t.ties > 0 {
		fmt.Printf("  Ties:   %8d (%.4f%%)\n", t.ties, float64(t.ties)/n*100)
	}

	switch game {
	case models.GameBeg:
		fmt.Printf("  Mean grant: %.2f\n", float64(t.returned)/n)
	case models.GameFlip:
		expected := games.FlipWinChance(games.NormalizeBonus(bonus))
		expected = expected*0.5 + expected*0.5*0.3
		fmt.Printf("  Expected win rate: %.4f%%\n", expected*100)
		fallthrough
	default:
		fmt.Printf("  RTP:    %.4f%%\n", t.rtp()*100)
		fmt.Printf("  Net per %d staked: %+.2f\n", bet, float64(t.returned-t.staked)/n)
	}
}

// reportUniformity prints a chi-squared statistic against a flat expectation
func reportUniformity(label string, counts []int, critical float64, df int) {
	total := 0
	for _, c := range counts {
		total += c
	}
	expected := float64(total) / float64(len(counts))

	chi := 0.0
	for _, c := range counts {
		chi += math.Pow(float64(c)-expected, 2) / expected
	}

	verdict := "✓ uniform"
	if chi >= critical {
		verdict = "✗ skewed"
	}
	fmt.Printf("  χ² (%s): %.2f, critical %.2f at 95%% with %d df: %s\n", label, chi, critical, df, verdict)
}

func reportSourceUniformity(src games.Source, trials int) {
	buckets := make([]int, 10)
	for range trials {
		b := int(src.Float64() * 10)
		if b >= 10 {
			b = 9
		}
		buckets[b]++
	}

	fmt.Println("SOURCE")
	expected := float64(trials) / 10
	for i, c := range buckets {
		bar := strings.Repeat("█", int(float64(c)/expected*20))
		fmt.Printf("  [%.1f-%.1f): %8d (%+5.2f%%) %s\n", float64(i)/10, float64(i+1)/10, c, (float64(c)-expected)/expected*100, bar)
	}
	reportUniformity("Float64 deciles", buckets, 16.92, 9)
}
