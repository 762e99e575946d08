package gemhunt

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gem-hunters/internal/core"
)

// MaxTurns is the number of accepted moves, shared by both players, after which the game ends.
const MaxTurns = 30

// ErrGameOver is returned when a move is attempted after the game has ended.
var ErrGameOver = errors.New("game is over")

// Status lines sent to the Output by Run.
const (
	PromptMove          = "Enter move (U/D/L/R): "
	MessageUnrecognized = "Wrong statement!"
	MessageBadMove      = "That's a bad move! Do it once more.."
)

// TurnResult describes a single move attempt.
type TurnResult struct {
	Player    PlayerID
	Direction core.Direction
	From      core.Position
	To        core.Position
	Accepted  bool
	Collected bool  // A gem was picked up at To
	Err       error // Why the attempt was rejected
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for move and lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game runs the turn loop for two players on one board.
type Game struct {
	board    *Board
	players  [2]*Player
	current  int // Index into players
	turns    int // Accepted moves
	rejected int
	state    State
	seed     int64
	logger   *log.Logger
}

// New creates a game and sets up the first board from cfg.Seed.
func New(cfg core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(cfg)
	return g
}

// Reset discards the current game and starts a new one with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.board = NewBoard(rand.New(rand.NewSource(cfg.Seed)))
	g.players = [2]*Player{
		NewPlayer(Player1, "P1", Player1Start),
		NewPlayer(Player2, "P2", Player2Start),
	}
	g.current = 0
	g.turns = 0
	g.rejected = 0
	g.state = StateInProgress

	g.logger.Debug("board seeded",
		"seed", cfg.Seed,
		"gems", g.board.Count(Gem),
		"obstacles", g.board.Count(Obstacle),
	)
}

// Board returns the game board.
func (g *Game) Board() *Board {
	return g.board
}

// Player returns the player in the given seat.
func (g *Game) Player(id PlayerID) *Player {
	if id == Player2 {
		return g.players[1]
	}
	return g.players[0]
}

// Current returns the player whose turn it is.
func (g *Game) Current() *Player {
	return g.players[g.current]
}

// Turns returns the number of accepted moves so far.
func (g *Game) Turns() int {
	return g.turns
}

// Rejected returns the number of rejected attempts so far.
func (g *Game) Rejected() int {
	return g.rejected
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// IsGameOver reports whether the turn cap has been reached.
func (g *Game) IsGameOver() bool {
	return g.state == StateGameOver
}

// Attempt parses a U/D/L/R token and plays it for the current player.
func (g *Game) Attempt(token rune) TurnResult {
	if g.IsGameOver() {
		return g.Play(core.DirNone)
	}

	dir, err := core.ParseDirection(token)
	if err != nil {
		cur := g.Current()
		g.reject(cur, err)
		return TurnResult{
			Player: cur.ID(),
			From:   cur.Position(),
			To:     cur.Position(),
			Err:    err,
		}
	}
	return g.Play(dir)
}

// Play moves the current player in dir if the board allows it.
// An accepted move collects any gem, advances the turn counter and passes
// the turn. A rejected move changes nothing and the same player goes again.
func (g *Game) Play(dir core.Direction) TurnResult {
	cur := g.Current()
	res := TurnResult{
		Player:    cur.ID(),
		Direction: dir,
		From:      cur.Position(),
		To:        cur.Position(),
	}

	if g.IsGameOver() {
		res.Err = ErrGameOver
		return res
	}

	if err := g.board.CheckMove(cur, dir); err != nil {
		g.reject(cur, err)
		res.Err = err
		return res
	}

	if err := cur.Move(dir); err != nil {
		g.logger.Error("move contract violated", "player", cur.Name(), "error", err)
		res.Err = err
		return res
	}

	res.To = cur.Position()
	res.Collected = g.board.CollectGem(cur)
	res.Accepted = true

	g.turns++
	g.current = 1 - g.current

	g.logger.Debug("move accepted",
		"player", cur.Name(),
		"from", res.From,
		"to", res.To,
		"gem", res.Collected,
		"turn", g.turns,
	)

	if g.turns >= MaxTurns {
		g.state = StateGameOver
		r := g.Result()
		g.logger.Info("game over",
			"p1_gems", r.Gems1,
			"p2_gems", r.Gems2,
			"outcome", r.Outcome,
			"rejected", r.Rejected,
		)
	}

	return res
}

func (g *Game) reject(p *Player, err error) {
	g.rejected++
	g.logger.Warn("move rejected", "player", p.Name(), "error", err)
}

// Result returns the current tally and verdict.
// It is final once IsGameOver is true.
func (g *Game) Result() Result {
	g1, g2 := g.players[0].Gems(), g.players[1].Gems()
	return Result{
		Gems1:    g1,
		Gems2:    g2,
		Outcome:  Decide(g1, g2),
		Turns:    g.turns,
		Rejected: g.rejected,
		Seed:     g.seed,
	}
}

// Run plays the game to completion, reading one token per attempt from in
// and reporting every step to out. It returns only when the game is over or
// the input fails.
func (g *Game) Run(in Input, out Output) error {
	for !g.IsGameOver() {
		cur := g.Current()
		out.Message(fmt.Sprintf("Turn %d: %s's turn", g.turns+1, cur.Name()))
		out.Board(g.Snapshot())
		out.Message(PromptMove)

		token, err := in.ReadMove()
		if err != nil {
			return fmt.Errorf("gemhunt: read move: %w", err)
		}

		res := g.Attempt(token)
		if res.Accepted {
			continue
		}
		if errors.Is(res.Err, ErrUnrecognizedDirection) {
			out.Message(MessageUnrecognized)
		}
		out.Message(MessageBadMove)
	}

	for _, line := range g.Result().Summary() {
		out.Message(line)
	}
	return nil
}
