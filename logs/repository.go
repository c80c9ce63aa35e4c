// Package logs stores finished games in a sqlite database.
package logs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

const (
	WinnerPlayer1 = "player1"
	WinnerPlayer2 = "player2"
	WinnerNone    = ""
)

type Repository struct {
	db *sqlx.DB
}

type Game struct {
	ID        int64     `db:"id"`
	Match     string    `db:"match_id"`
	Timestamp time.Time `db:"time"`
	Size      int       `db:"size"`
	Player1   string    `db:"player1"`
	Player2   string    `db:"player2"`
	Result    string    `db:"result"`
	Winner    string    `db:"winner"`
	Moves     int       `db:"moves"`
	Stones    []Stone   `db:"-"`
}

// Stone is one placement. Player is 1 or 2, matching Game.Player1
// and Game.Player2.
type Stone struct {
	Game   int64 `db:"game"`
	Ply    int   `db:"ply"`
	X      int   `db:"x"`
	Y      int   `db:"y"`
	Player int   `db:"player"`
}

type Standing struct {
	Player   string  `db:"player"`
	Games    int     `db:"games"`
	Wins     int     `db:"wins"`
	Losses   int     `db:"losses"`
	Ties     int     `db:"ties"`
	AvgMoves float64 `db:"avg_moves"`
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)
	for _, s := range []struct {
		what, stmt string
	}{
		{"games table", createGameTable},
		{"moves table", createMoveTable},
		{"player_games view", createPlayerView},
	} {
		if _, err := db.Exec(s.stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create %s: %v", s.what, err)
		}
	}
	return &Repository{db: db}, nil
}

// NewMatch returns a fresh identifier for grouping the games of one
// session or self-play run.
func NewMatch() string {
	return uuid.NewString()
}

// InsertGame stores g and its stones, and sets g.ID.
func (r *Repository) InsertGame(g *Game) error {
	return r.InsertGames([]*Game{g})
}

func (r *Repository) InsertGames(gs []*Game) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for _, g := range gs {
		if err := insertGame(tx, g); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertGame(tx *sqlx.Tx, g *Game) error {
	if g.Timestamp.IsZero() {
		g.Timestamp = time.Now()
	}
	if g.Moves == 0 {
		g.Moves = len(g.Stones)
	}
	res, err := tx.NamedExec(insertGameStmt, g)
	if err != nil {
		return fmt.Errorf("insert game: %v", err)
	}
	if g.ID, err = res.LastInsertId(); err != nil {
		return err
	}
	for i := range g.Stones {
		s := &g.Stones[i]
		s.Game = g.ID
		s.Ply = i
		if _, err := tx.NamedExec(insertMoveStmt, s); err != nil {
			return fmt.Errorf("insert move %d: %v", i, err)
		}
	}
	return nil
}

// Game loads a game and its stones by id.
func (r *Repository) Game(id int64) (*Game, error) {
	var g Game
	if err := r.db.Get(&g, selectGame, id); err != nil {
		return nil, err
	}
	if err := r.db.Select(&g.Stones, selectMoves, id); err != nil {
		return nil, err
	}
	return &g, nil
}

// Match lists the games recorded under a match identifier, without
// their stones.
func (r *Repository) Match(match string) ([]Game, error) {
	var out []Game
	if err := r.db.Select(&out, selectMatch, match); err != nil {
		return nil, err
	}
	return out, nil
}

// Standings summarizes results per player, best first.
func (r *Repository) Standings() ([]Standing, error) {
	var out []Standing
	rows, err := r.db.Queryx(selectStandings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s Standing
		if err := rows.StructScan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) Close() {
	r.db.Close()
}
