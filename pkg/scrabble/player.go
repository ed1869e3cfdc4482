package scrabble

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoMoves = errors.New("no legal move for the rack")
	ErrStuck   = errors.New("every attempted move was rejected")
)

// Submitter is the authority a move is played against, usually a remote
// game server. Submit returns false when the move is refused; an error
// means the move could not be submitted at all.
type Submitter interface {
	Submit(ctx context.Context, m Move) (bool, error)
}

// SubmitterFunc adapts a function to the Submitter interface
type SubmitterFunc func(ctx context.Context, m Move) (bool, error)

func (f SubmitterFunc) Submit(ctx context.Context, m Move) (bool, error) {
	return f(ctx, m)
}

type Player struct {
	ID       uuid.UUID
	Username string
	Rack     *Rack
	Score    int
	Strategy Strategy
}

func NewPlayer(username string, rack *Rack, s Strategy) *Player {
	if s == nil {
		s = &HighScore{}
	}
	return &Player{
		ID:       uuid.New(),
		Username: username,
		Rack:     rack,
		Strategy: s,
	}
}

// Play generates the moves of the player's rack and submits them in
// strategy order, at most maxAttempts of them (0 for no limit). Each
// move is applied to the board before it is submitted and reverted
// when it is refused, so the board mirrors what the authority accepted.
// The accepted move's score is added to the player's.
func (p *Player) Play(ctx context.Context, gen *Generator, b *Board, sub Submitter, maxAttempts int) (Move, error) {
	moves := p.Strategy.Order(gen.Generate(b, p.Rack))
	if len(moves) == 0 {
		return Move{}, ErrNoMoves
	}
	if maxAttempts <= 0 || maxAttempts > len(moves) {
		maxAttempts = len(moves)
	}

	logger := log.With().Str("player-id", p.ID.String()).Str("username", p.Username).Logger()
	for i, m := range moves[:maxAttempts] {
		if err := ctx.Err(); err != nil {
			return Move{}, err
		}
		if err := b.ApplyMove(m); err != nil {
			return Move{}, fmt.Errorf("applying %v: %w", m, err)
		}
		accepted, err := sub.Submit(ctx, m)
		if err == nil && accepted {
			p.Score += m.Score()
			logger.Debug().Int("attempt", i+1).Str("move", m.String()).Msg("move-accepted")
			return m, nil
		}
		if rerr := b.RevertMove(m); rerr != nil {
			return Move{}, fmt.Errorf("reverting %v: %w", m, rerr)
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Move{}, ctxErr
			}
			logger.Debug().Err(err).Str("move", m.String()).Msg("submit-failed")
			continue
		}
		logger.Debug().Int("attempt", i+1).Str("move", m.String()).Msg("move-rejected")
	}
	return Move{}, ErrStuck
}
