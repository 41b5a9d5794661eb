package main

// Answer review workflow. Each submitted answer moves through
// pending -> correct/incorrect -> scored; review and scoring are
// organizer-only. After every mutation the full answer set is resent to
// the organizer, and the submitting team gets its own subset, because
// review dashboards re-render from the full view rather than deltas.

// submitAnswer records a pending answer for review. At least one of text
// or image content is required.
func (r *Registry) submitAnswer(key string, playerName, teamName string, questionID int, text, imageURI string) error {
	if text == "" && imageURI == "" {
		return errEmptyAnswer
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if !ok {
		return errGameNotFound
	}

	var q *Question
	for i := range s.questions {
		if s.questions[i].ID == questionID {
			q = &s.questions[i]
			break
		}
	}
	if q == nil {
		return errUnknownQuestion
	}

	s.answers = append(s.answers, &answer{
		id:             randomID(),
		questionID:     q.ID,
		questionText:   q.Text,
		expectedAnswer: q.ExpectedAnswer,
		playerName:     playerName,
		teamName:       teamName,
		text:           text,
		imageURI:       imageURI,
		status:         answerPending,
	})

	s.broadcastAnswers(teamName)

	logf(r.cfg, "GAMES: Player %q submitted an answer for question %d in game %s", playerName, questionID, key)

	return nil
}

// reviewAnswer marks a pending answer correct or incorrect. An already
// scored answer is final.
func (r *Registry) reviewAnswer(key string, c *client, answerID, status string) error {
	if status != answerCorrect && status != answerIncorrect {
		return errBadReviewStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if !ok {
		return errGameNotFound
	}
	if s.organizer != c {
		return errNotAuthorized
	}

	a := s.findAnswer(answerID)
	if a == nil {
		return errUnknownAnswer
	}
	if a.score != 0 {
		return errAlreadyScored
	}

	a.status = status

	s.broadcastAnswers(a.teamName)

	logf(r.cfg, "GAMES: Answer %s in game %s marked %s", answerID, key, status)

	return nil
}

// saveScore assigns a 1-5 score to a reviewed answer, completing its
// workflow. The submitting player's running score is credited as well.
func (r *Registry) saveScore(key string, c *client, answerID string, score int) error {
	if score < 1 || score > 5 {
		return errBadScore
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if !ok {
		return errGameNotFound
	}
	if s.organizer != c {
		return errNotAuthorized
	}

	a := s.findAnswer(answerID)
	if a == nil {
		return errUnknownAnswer
	}
	if a.status == answerPending {
		return errNotReviewed
	}
	if a.score != 0 {
		return errAlreadyScored
	}

	a.score = score

	for _, p := range s.players {
		if p.name == a.playerName {
			p.score += score
			break
		}
	}

	s.broadcastAnswers(a.teamName)

	logf(r.cfg, "GAMES: Answer %s in game %s scored %d", answerID, key, score)

	return nil
}

func (s *session) findAnswer(id string) *answer {
	for _, a := range s.answers {
		if a.id == id {
			return a
		}
	}
	return nil
}

func (a *answer) view() AnswerView {
	return AnswerView{
		ID:                  a.id,
		QuestionID:          a.questionID,
		QuestionText:        a.questionText,
		ExpectedAnswer:      a.expectedAnswer,
		PlayerName:          a.playerName,
		TeamName:            a.teamName,
		SubmittedTextAnswer: a.text,
		SubmittedImageURI:   a.imageURI,
		Status:              a.status,
		Score:               a.score,
	}
}

// broadcastAnswers resends the complete answer set to the organizer and
// the named team's subset to that team's connected members.
func (s *session) broadcastAnswers(teamName string) {
	all := make([]AnswerView, 0, len(s.answers))
	team := make([]AnswerView, 0, len(s.answers))
	for _, a := range s.answers {
		all = append(all, a.view())
		if a.teamName == teamName {
			team = append(team, a.view())
		}
	}

	s.notifyOrganizer(AnswersUpdateMessage{
		Type:    "submittedAnswersUpdate",
		Answers: all,
	})

	s.notifyTeam(teamName, AnswersUpdateMessage{
		Type:    "teamAnswersUpdate",
		Answers: team,
	})
}
