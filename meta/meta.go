// meta/meta.go
package meta

// ITERATIONS defines the default number of MCTS iterations per move.
const ITERATIONS = 1000

// GAMES defines the default number of games per match up.
const GAMES = 1

// DOT_DEPTH defines how deep a rendered search tree goes.
const DOT_DEPTH = 2

// SEED defines the default random seed; 0 picks one from the clock.
const SEED = 0
