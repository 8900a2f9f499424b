package player

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/ratel-online/unosim/consts"
	"github.com/ratel-online/unosim/uno/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats the named players first, in order, and fills the
// remaining seats with bots drawn from rng. Positions follow seat order.
func CreatePlayers(numberOfPlayers int, names []string, rng game.RandomSource) ([]*game.Player, error) {
	if numberOfPlayers < consts.MinPlayers || numberOfPlayers > consts.MaxPlayers || len(names) > numberOfPlayers {
		return nil, fmt.Errorf("%w(%d players, %d names)", consts.ErrorsConfigInvalid, numberOfPlayers, len(names))
	}
	for i, name := range names {
		if name == "" || slices.Contains(names[:i], name) {
			return nil, fmt.Errorf("%w(player name %q)", consts.ErrorsConfigInvalid, name)
		}
	}

	seated := slices.Clone(names)
	seated = append(seated, generateBotNames(numberOfPlayers-len(names), names, rng)...)

	players := make([]*game.Player, 0, numberOfPlayers)
	for position, name := range seated {
		players = append(players, game.NewPlayer(name, position))
	}
	return players, nil
}

func generateBotNames(amount int, taken []string, rng game.RandomSource) []string {
	candidates := make([]string, 0, len(botNames))
	for _, botName := range botNames {
		if !slices.Contains(taken, botName) {
			candidates = append(candidates, botName)
		}
	}
	rng.Shuffle(len(candidates), func(i int, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	return candidates[:amount]
}
