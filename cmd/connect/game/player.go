package game

import "fmt"

type playerSet struct {
	Blue Player
	Red  Player
}

// Players represents the set of players that can be used. Blue moves the
// positive pieces and Red the negative ones.
var Players = playerSet{
	Blue: newPlayer("Blue", 1),
	Red:  newPlayer("Red", -1),
}

// =============================================================================

// Set of known players.
var players = make(map[string]Player)

// Player represents a player in the system. The zero value represents an
// empty cell.
type Player struct {
	name string
	sign int8
}

func newPlayer(player string, sign int8) Player {
	p := Player{player, sign}
	players[player] = p
	return p
}

func playerFromSign(sign int8) Player {
	switch sign {
	case 1:
		return Players.Blue
	case -1:
		return Players.Red
	}

	return Player{}
}

// IsZero checks of the player is set to its zero value.
func (p Player) IsZero() bool {
	return p.sign == 0
}

// Opponent returns the other player. The zero value has no opponent.
func (p Player) Opponent() Player {
	return playerFromSign(-p.sign)
}

// Sign returns +1 for Blue, -1 for Red and 0 for the zero value.
func (p Player) Sign() int {
	return int(p.sign)
}

// String returns the name of the player.
func (p Player) String() string {
	return p.name
}

// Equal provides support for the go-cmp package and testing.
func (p Player) Equal(p2 Player) bool {
	return p.sign == p2.sign
}

// MarshalText provides support for encoding the player by name.
func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.name), nil
}

// UnmarshalText provides support for decoding the player by name. An empty
// name decodes to the zero Player.
func (p *Player) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*p = Player{}
		return nil
	}

	player, err := ParsePlayer(string(data))
	if err != nil {
		return err
	}

	*p = player
	return nil
}

// =============================================================================

// ParsePlayer parses the string value and returns a player if one exists.
func ParsePlayer(value string) (Player, error) {
	player, exists := players[value]
	if !exists {
		return Player{}, fmt.Errorf("invalid player %q", value)
	}

	return player, nil
}

// MustParsePlayer parses the string value and returns a player if one exists. If
// an error occurs the function panics.
func MustParsePlayer(value string) Player {
	role, err := ParsePlayer(value)
	if err != nil {
		panic(err)
	}

	return role
}
