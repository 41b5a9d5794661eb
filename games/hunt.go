// Package hunt documents the scavenger hunt game flow.
package hunt

// An organizer creates a game with a list of questions (clues), a
// location, and a timeline in days, and receives a 4-character game key
// to share with players.
//
// Players join with the game key, a display name, a team name, and a
// personal rejoin code of their choosing. The rejoin code is the player's
// secret for reclaiming their identity after a dropped connection: any
// number of rejoins with a valid code re-point the same logical player.
//
// Players roam the location hunting for answers, submitting text or a
// photo per question. The organizer reviews each submission as correct or
// incorrect and then assigns it a 1-5 score.
//
// Flow:
// - Organizer connects, sends createGame, shares the key (or the QR page)
// - Players connect, send joinGame; everyone else sees playerJoined
// - A player who drops and reconnects sends rejoinGame; everyone else
//   sees playerRejoined with both the old and new ids
// - Players send submitAnswer; the organizer sees the full answer set,
//   the submitting team sees its own subset
// - Organizer sends reviewAnswer then saveScore per submission
// - The game ends when the organizer deletes it or disconnects; everyone
//   receives gameEnded
