package simulation

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/dustin/go-humanize"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"golang.org/x/exp/slices"
)

type BatchConfig struct {
	Game    GameConfig
	Games   int
	Workers int
	// Seed of the first game. Game i is played with Seed+i.
	Seed int64
}

type PlayerWins struct {
	Name string
	Wins int
}

type BatchStats struct {
	Games           int
	Completed       int
	Errors          int
	AverageTurns    float64
	MedianTurns     int
	TotalReshuffles int
	Duration        time.Duration
	// Leaders is sorted by wins, most first, then by name.
	Leaders []PlayerWins
	// Results are ordered by game index.
	Results []GameResult
}

// RunBatch plays cfg.Games independent games over cfg.Workers goroutines.
// The stats only depend on the config, never on scheduling.
func RunBatch(cfg BatchConfig) BatchStats {
	start := time.Now()
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > cfg.Games {
		workers = cfg.Games
	}

	completed := hashmap.New()
	indexes := make(chan int, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		indexes <- i
	}
	close(indexes)

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		async.Async(func() {
			defer wg.Done()
			for index := range indexes {
				result := RunSingleGame(cfg.Game, cfg.Seed+int64(index))
				if result.Err != nil {
					log.Errorf("game %s (seed %d) failed: %v\n", result.GameID, result.Seed, result.Err)
				}
				completed.Set(int64(index), result)
			}
		})
	}
	wg.Wait()

	results := make([]GameResult, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		if v, ok := completed.Get(int64(i)); ok {
			results = append(results, v.(GameResult))
		}
	}
	stats := aggregate(results)
	stats.Games = cfg.Games
	stats.Duration = time.Since(start)
	return stats
}

func aggregate(results []GameResult) BatchStats {
	stats := BatchStats{Results: results}
	wins := map[string]*PlayerWins{}
	turns := make([]int, 0, len(results))

	for _, result := range results {
		stats.TotalReshuffles += result.Reshuffles
		if result.Err != nil {
			stats.Errors++
			continue
		}
		stats.Completed++
		turns = append(turns, result.Turns)
		if leader, ok := wins[result.Winner]; ok {
			leader.Wins++
		} else {
			wins[result.Winner] = &PlayerWins{Name: result.Winner, Wins: 1}
		}
	}

	for _, leader := range wins {
		stats.Leaders = append(stats.Leaders, *leader)
	}
	slices.SortFunc(stats.Leaders, func(a, b PlayerWins) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		return strings.Compare(a.Name, b.Name)
	})

	if len(turns) > 0 {
		total := 0
		for _, t := range turns {
			total += t
		}
		stats.AverageTurns = float64(total) / float64(len(turns))
		slices.Sort(turns)
		stats.MedianTurns = turns[len(turns)/2]
	}
	return stats
}

func (s BatchStats) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Played %s games in %s: %s finished, %s failed",
		humanize.Comma(int64(s.Games)), s.Duration.Round(time.Millisecond),
		humanize.Comma(int64(s.Completed)), humanize.Comma(int64(s.Errors))))
	lines = append(lines, fmt.Sprintf("Turns: %s average, %s median",
		humanize.CommafWithDigits(s.AverageTurns, 1), humanize.Comma(int64(s.MedianTurns))))
	lines = append(lines, fmt.Sprintf("Reshuffles: %s", humanize.Comma(int64(s.TotalReshuffles))))
	for _, leader := range s.Leaders {
		lines = append(lines, fmt.Sprintf("  %s: %s win(s)", leader.Name, humanize.Comma(int64(leader.Wins))))
	}
	return strings.Join(lines, "\n")
}
