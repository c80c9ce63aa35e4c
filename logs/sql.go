package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key autoincrement,
  match_id varchar,
  time datetime,
  size int,
  player1 varchar,
  player2 varchar,
  result string,
  winner string,
  moves int
)`

const createMoveTable = `
CREATE TABLE IF NOT EXISTS moves (
  game integer not null references games(id),
  ply int not null,
  x int not null,
  y int not null,
  player int not null,
  primary key (game, ply)
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  id, player, opponent, seat, win, result, size, moves
) AS
SELECT id, player1, player2, 1,
       CASE winner WHEN 'player1' THEN 'win' WHEN 'player2' THEN 'lose' ELSE 'tie' END,
       result, size, moves
 FROM games
UNION ALL
SELECT id, player2, player1, 2,
       CASE winner WHEN 'player2' THEN 'win' WHEN 'player1' THEN 'lose' ELSE 'tie' END,
       result, size, moves
 FROM games
`

const insertGameStmt = `
INSERT INTO games (match_id, time, size, player1, player2, result, winner, moves)
VALUES (:match_id, :time, :size, :player1, :player2, :result, :winner, :moves)
`

const insertMoveStmt = `
INSERT INTO moves (game, ply, x, y, player)
VALUES (:game, :ply, :x, :y, :player)
`

const selectGame = `
SELECT id, match_id, time, size, player1, player2, result, winner, moves
 FROM games WHERE id = ?
`

const selectMatch = `
SELECT id, match_id, time, size, player1, player2, result, winner, moves
 FROM games WHERE match_id = ? ORDER BY id
`

const selectMoves = `
SELECT game, ply, x, y, player FROM moves WHERE game = ? ORDER BY ply
`

const selectStandings = `
SELECT player,
       count(*) AS games,
       sum(CASE win WHEN 'win' THEN 1 ELSE 0 END) AS wins,
       sum(CASE win WHEN 'lose' THEN 1 ELSE 0 END) AS losses,
       sum(CASE win WHEN 'tie' THEN 1 ELSE 0 END) AS ties,
       avg(moves) AS avg_moves
 FROM player_games
 GROUP BY player
 ORDER BY wins DESC, player
`
