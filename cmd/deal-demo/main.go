// deal-demo deals a random table to showdown and resolves it, printing the
// engine's analysis. Handy for eyeballing evaluator and side-pot behavior.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"holdem-resolver/internal/config"
	"holdem-resolver/internal/game"
	"holdem-resolver/internal/logging"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)

	players := envInt("PLAYERS", 4)
	if players < 2 || players > 9 {
		log.Fatal().Int("players", players).Msg("PLAYERS must be between 2 and 9")
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	deck := game.NewDeck()
	deck.Shuffle()

	in := game.HandInput{
		HandID:     fmt.Sprintf("demo-%d", time.Now().Unix()),
		IsShowdown: true,
	}
	for i := 0; i < players; i++ {
		id := fmt.Sprintf("player-%d", i+1)
		// Random stacks make short all-ins and side pots common.
		bet := int64(rnd.Intn(191) + 10)
		in.Players = append(in.Players, game.PlayerContribution{
			PlayerID: id,
			Name:     id,
			TotalBet: bet,
			AllIn:    true,
			Hole:     []game.Card{deck.Deal(), deck.Deal()},
		})
	}
	for i := 0; i < 5; i++ {
		in.Community = append(in.Community, deck.Deal())
	}
	in.HeroID = in.Players[0].PlayerID

	res, err := game.ResolveHand(in)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve failed")
	}

	board := ""
	for _, c := range in.Community {
		board += c.String() + " "
	}
	log.Info().Str("board", board).Int64("pot", res.TotalPot).Str("winner", res.WinnerID).Msg("hand resolved")
	for _, p := range in.Players {
		fmt.Printf("%s: %s%s bet %d\n", p.PlayerID, p.Hole[0], p.Hole[1], p.TotalBet)
	}
	fmt.Println()
	fmt.Println(res.Analysis)
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
