// Package searcher implements Monte Carlo tree search over Othello positions.
//
// Rewards are kept from black's point of view (+1 black win, -1 white win,
// 0 draw). Black selects the child maximising the UCB1 score, white the child
// minimising mean reward minus the exploration bonus.
package searcher

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant
