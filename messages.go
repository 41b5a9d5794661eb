package main

// Messages coming from clients. A single flat struct covers every request
// type; unused fields are simply omitted on the wire.
type ClientMessage struct {
	Type      string `json:"type"`                // "createGame", "saveGame", "deleteGame", "joinGame", "rejoinGame", "submitAnswer", "reviewAnswer", "saveScore"
	RequestID int    `json:"requestId,omitempty"` // echoed back in the ack so clients can correlate

	GameKey  string `json:"gameKey,omitempty"`
	Password string `json:"password,omitempty"` // createGame, when --create-password is set

	// createGame
	TimelineDays int        `json:"timelineDays,omitempty"`
	Location     string     `json:"location,omitempty"`
	Questions    []Question `json:"questions,omitempty"`

	// joinGame / rejoinGame
	PlayerName string `json:"playerName,omitempty"`
	RejoinCode string `json:"rejoinCode,omitempty"`
	TeamName   string `json:"teamName,omitempty"`

	// submitAnswer
	QuestionID          int    `json:"questionId,omitempty"`
	SubmittedTextAnswer string `json:"submittedTextAnswer,omitempty"`
	SubmittedImageURI   string `json:"submittedImageUri,omitempty"`

	// reviewAnswer / saveScore
	AnswerID string `json:"answerId,omitempty"`
	Status   string `json:"status,omitempty"` // "correct" or "incorrect"
	Score    int    `json:"score,omitempty"`  // 1-5
}

// AckMessage answers a request-style ClientMessage.
type AckMessage struct {
	Type      string `json:"type"` // "ack"
	RequestID int    `json:"requestId,omitempty"`
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`

	GameKey    string `json:"gameKey,omitempty"`
	PlayerID   string `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
}

// PlayerJoinedMessage notifies the organizer and peers about a new player.
type PlayerJoinedMessage struct {
	Type string `json:"type"` // "playerJoined"
	ID   string `json:"id"`   // player's current connection id
	Name string `json:"name"`
}

// PlayerLeftMessage notifies the organizer and peers about a disconnect.
type PlayerLeftMessage struct {
	Type string `json:"type"` // "playerLeft"
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlayerRejoinedMessage carries both identifiers so receivers can
// reconcile any locally cached membership list.
type PlayerRejoinedMessage struct {
	Type  string `json:"type"` // "playerRejoined"
	ID    string `json:"id"`   // new connection id
	Name  string `json:"name"`
	OldID string `json:"oldId"` // connection id being replaced
}

// GameEndedMessage is a termination notice, sent to the entire audience
// including the organizer.
type GameEndedMessage struct {
	Type    string `json:"type"` // "gameEnded"
	GameKey string `json:"gameKey"`
	Message string `json:"message"`
}

// AnswerView is the client-facing shape of a submitted answer. Question
// text and expected answer are denormalized in so review dashboards can
// render without a second lookup.
type AnswerView struct {
	ID                  string `json:"id"`
	QuestionID          int    `json:"questionId"`
	QuestionText        string `json:"questionText"`
	ExpectedAnswer      string `json:"expectedAnswer,omitempty"`
	PlayerName          string `json:"playerName"`
	TeamName            string `json:"teamName"`
	SubmittedTextAnswer string `json:"submittedTextAnswer,omitempty"`
	SubmittedImageURI   string `json:"submittedImageUri,omitempty"`
	Status              string `json:"status"`
	Score               int    `json:"score,omitempty"`
}

// AnswersUpdateMessage rebroadcasts a full answer set. Review dashboards
// re-render from the full set, not deltas.
type AnswersUpdateMessage struct {
	Type    string       `json:"type"` // "submittedAnswersUpdate" or "teamAnswersUpdate"
	Answers []AnswerView `json:"answers"`
}
