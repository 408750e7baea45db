package models

// Message is a single turn of a demo chat transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// QuizQuestion is one generated multiple-choice question. Immutable once
// returned from the generation call.
type QuizQuestion struct {
	ID            string `json:"id"`
	QuestionText  string `json:"question_text"`
	ChoiceA       string `json:"choice_a"`
	ChoiceB       string `json:"choice_b"`
	ChoiceC       string `json:"choice_c"`
	ChoiceD       string `json:"choice_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
	Topic         string `json:"topic,omitempty"`
	BlockName     string `json:"block_name,omitempty"`
}

// Choice returns the choice text for a letter A-D, or "" for anything else.
func (q QuizQuestion) Choice(letter string) string {
	switch letter {
	case "A":
		return q.ChoiceA
	case "B":
		return q.ChoiceB
	case "C":
		return q.ChoiceC
	case "D":
		return q.ChoiceD
	}
	return ""
}

// QuizProgress is the progress snapshot embedded in answer feedback.
type QuizProgress struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
	Score    int `json:"score"`
}

// AnswerFeedback is produced once per submitted answer and shown until the
// user moves to the next question.
type AnswerFeedback struct {
	IsCorrect     bool         `json:"is_correct"`
	Explanation   string       `json:"explanation"`
	CorrectAnswer string       `json:"correct_answer"`
	Progress      QuizProgress `json:"progress"`
}
