package results

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"holdem-resolver/internal/game"
	"holdem-resolver/internal/store"
)

// Service resolves terminal hands and, when a store is attached, archives
// the outcomes. A nil store runs the resolver stateless.
type Service struct {
	store     *store.Store
	pageLimit int
}

func NewService(st *store.Store, pageLimit int) *Service {
	if pageLimit <= 0 {
		pageLimit = 50
	}
	return &Service{store: st, pageLimit: pageLimit}
}

func (s *Service) Resolve(ctx context.Context, req ResolveRequest) (*ResolveResponse, error) {
	in, err := toHandInput(req)
	if err != nil {
		return nil, err
	}
	res, err := game.ResolveHand(in)
	if err != nil {
		// Every resolution failure is a bad terminal-hand snapshot from the
		// caller; the computation itself is deterministic.
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}

	resp := toResolveResponse(res)
	if s.store != nil {
		id, err := s.store.SaveResult(ctx, toResultRecord(res, req.IsShowdown))
		if err != nil {
			log.Warn().Err(err).Str("hand_id", res.HandID).Msg("archive hand result failed")
		} else {
			resp.ResultID = id
		}
	}
	return resp, nil
}

func (s *Service) Recent(ctx context.Context, limit, offset int) (*ResultsResponse, error) {
	if s.store == nil {
		return nil, ErrArchiveDisabled
	}
	if limit <= 0 || limit > s.pageLimit {
		limit = s.pageLimit
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.store.ListResults(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]ResultSummary, 0, len(items))
	for _, it := range items {
		out = append(out, toResultSummary(it))
	}
	return &ResultsResponse{Items: out, Limit: limit, Offset: offset}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*ResultDetailResponse, error) {
	if s.store == nil {
		return nil, ErrArchiveDisabled
	}
	if id == "" {
		return nil, ErrInvalidRequest
	}
	rec, err := s.store.GetResult(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}

	detail := &ResultDetailResponse{
		ResultSummary: toResultSummary(rec),
		Analysis:      rec.Analysis,
	}
	for _, r := range rec.Rankings {
		item := RankingItem{
			PlayerID: r.PlayerID,
			Rank:     r.Rank,
			IsWinner: r.IsWinner,
			Category: r.Category,
		}
		if r.BestFive != "" {
			item.BestFive = strings.Fields(r.BestFive)
		}
		detail.Rankings = append(detail.Rankings, item)
	}
	for _, d := range rec.Distributions {
		detail.Distributions = append(detail.Distributions, DistributionItem{
			PotID:    d.PotID,
			PlayerID: d.PlayerID,
			Amount:   d.Amount,
			IsWinner: d.IsWinner,
			IsTied:   d.IsTied,
		})
	}
	return detail, nil
}

func toHandInput(req ResolveRequest) (game.HandInput, error) {
	if len(req.Players) == 0 {
		return game.HandInput{}, fmt.Errorf("%w: no players", ErrInvalidRequest)
	}
	community, err := game.ParseCards(req.Community)
	if err != nil {
		return game.HandInput{}, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}

	// The core only checks duplicates within one evaluation; a card appearing
	// in two hands or in a hand and on the board is caught here.
	seenCards := map[game.Card]bool{}
	for _, c := range community {
		if seenCards[c] {
			return game.HandInput{}, fmt.Errorf("%w: duplicate card %s", ErrInvalidRequest, c)
		}
		seenCards[c] = true
	}

	players := make([]game.PlayerContribution, 0, len(req.Players))
	seen := map[string]bool{}
	for _, p := range req.Players {
		if p.ID == "" {
			return game.HandInput{}, fmt.Errorf("%w: player without id", ErrInvalidRequest)
		}
		if seen[p.ID] {
			return game.HandInput{}, fmt.Errorf("%w: duplicate player id %q", ErrInvalidRequest, p.ID)
		}
		seen[p.ID] = true
		if p.TotalBet < 0 {
			return game.HandInput{}, fmt.Errorf("%w: negative bet for %q", ErrInvalidRequest, p.ID)
		}
		hole, err := game.ParseCards(p.HoleCards)
		if err != nil {
			return game.HandInput{}, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
		}
		for _, c := range hole {
			if seenCards[c] {
				return game.HandInput{}, fmt.Errorf("%w: duplicate card %s", ErrInvalidRequest, c)
			}
			seenCards[c] = true
		}
		players = append(players, game.PlayerContribution{
			PlayerID: p.ID,
			Name:     p.Name,
			TotalBet: p.TotalBet,
			Folded:   p.Folded,
			AllIn:    p.AllIn,
			Hole:     hole,
		})
	}
	return game.HandInput{
		HandID:     req.HandID,
		HeroID:     req.HeroID,
		IsShowdown: req.IsShowdown,
		Players:    players,
		Community:  community,
	}, nil
}

func toResolveResponse(res game.HandResult) *ResolveResponse {
	resp := &ResolveResponse{
		HandID:      res.HandID,
		WinnerID:    res.WinnerID,
		WinnerName:  res.WinnerName,
		Tied:        res.Tied,
		HeroOutcome: string(res.HeroOutcome),
		TotalPot:    res.TotalPot,
		Analysis:    res.Analysis,
	}
	for _, r := range res.Rankings {
		item := RankingItem{PlayerID: r.PlayerID, Rank: r.Rank, IsWinner: r.IsWinner}
		if r.Evaluation != nil {
			item.Category = r.Evaluation.Category.String()
			item.Description = game.DescribeEvaluation(*r.Evaluation)
			item.BestFive = cardStrings(r.Evaluation.BestFive[:])
		}
		resp.Rankings = append(resp.Rankings, item)
	}
	for _, p := range res.Pots {
		resp.Pots = append(resp.Pots, PotItem{
			ID:        p.ID,
			Amount:    p.Amount,
			Eligible:  p.Eligible,
			Threshold: p.Threshold,
		})
	}
	for _, d := range res.Distributions {
		resp.Distributions = append(resp.Distributions, DistributionItem{
			PotID:    d.PotID,
			PlayerID: d.PlayerID,
			Amount:   d.Amount,
			IsWinner: d.IsWinner,
			IsTied:   d.IsTied,
		})
	}
	return resp
}

func toResultRecord(res game.HandResult, isShowdown bool) store.ResultRecord {
	rec := store.ResultRecord{
		HandID:      res.HandID,
		WinnerID:    res.WinnerID,
		WinnerName:  res.WinnerName,
		Tied:        res.Tied,
		HeroOutcome: string(res.HeroOutcome),
		IsShowdown:  isShowdown,
		TotalPot:    res.TotalPot,
		Analysis:    res.Analysis,
	}
	for _, r := range res.Rankings {
		rr := store.RankingRecord{PlayerID: r.PlayerID, Rank: r.Rank, IsWinner: r.IsWinner}
		if r.Evaluation != nil {
			rr.Category = r.Evaluation.Category.String()
			rr.Strength = r.Evaluation.Strength
			rr.BestFive = strings.Join(cardStrings(r.Evaluation.BestFive[:]), " ")
		}
		rec.Rankings = append(rec.Rankings, rr)
	}
	for _, d := range res.Distributions {
		rec.Distributions = append(rec.Distributions, store.DistributionRecord{
			PotID:    d.PotID,
			PlayerID: d.PlayerID,
			Amount:   d.Amount,
			IsWinner: d.IsWinner,
			IsTied:   d.IsTied,
		})
	}
	return rec
}

func toResultSummary(rec store.ResultRecord) ResultSummary {
	return ResultSummary{
		ResultID:    rec.ID,
		HandID:      rec.HandID,
		WinnerID:    rec.WinnerID,
		WinnerName:  rec.WinnerName,
		Tied:        rec.Tied,
		HeroOutcome: rec.HeroOutcome,
		IsShowdown:  rec.IsShowdown,
		TotalPot:    rec.TotalPot,
		CreatedAt:   rec.CreatedAt,
	}
}

func cardStrings(cards []game.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}
