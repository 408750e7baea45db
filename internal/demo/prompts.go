package demo

import (
	"fmt"
	"strings"

	"redseal-waitlist/internal/models"
)

const chatSystemPrompt = `You are RED AI, an expert study partner for Red Seal trade certification.

You're giving a FREE DEMO to a potential student on the landing page. Your goals:
1. Give a REAL, helpful answer to show the value of the platform
2. Keep responses concise (2-3 paragraphs) but ALWAYS complete your thoughts
3. Be engaging and make them want to sign up
4. End with a brief call-to-action like "Want to dive deeper? Sign up to continue!"

## YOUR KNOWLEDGE
You have deep knowledge of all 54 Red Seal trades including:
- Heavy Equipment Technician (421A)
- Automotive Service Technician
- Electrician (Construction & Industrial)
- Plumber, Welder, Millwright, Tool and Die Maker, and all others

## RESPONSE STYLE
- Start with the answer right away (no fluff)
- Use practical, real-world examples
- Reference Red Seal exam structure when relevant
- Keep it conversational and encouraging
- IMPORTANT: Always finish your sentences - never leave a thought incomplete

Remember: This is their first taste of RED AI. Make it count!`

// buildChatSystemPrompt appends the selected trade to the base prompt.
func buildChatSystemPrompt(trade string) string {
	if trade == "" {
		return chatSystemPrompt
	}
	return chatSystemPrompt + "\n\nThe user is studying for: " + trade
}

// buildQuizPrompt asks for exactly n questions grounded in the transcript.
// The response must be a single JSON object so it can be parsed in JSON mode.
func buildQuizPrompt(messages []models.Message, trade string, n int) string {
	if trade == "" {
		trade = "trades"
	}

	var context strings.Builder
	for _, m := range messages {
		context.WriteString(m.Role)
		context.WriteString(": ")
		context.WriteString(m.Content)
		context.WriteString("\n")
	}

	return fmt.Sprintf(`You are creating Red Seal certification exam questions for a %s student.

Based on this conversation that just happened:
---
%s---

Generate exactly %d multiple-choice exam questions that:
1. Test the knowledge discussed in the conversation above
2. Are directly relevant to what was asked/answered
3. Are at Red Seal exam difficulty level
4. Each has 4 plausible answer choices (only one correct)
5. Each has a clear, educational explanation
6. Progress from easier to harder (question 1 = foundational, the last = more challenging)

The questions should feel like natural follow-up quizzes to test if the student understood what was just explained.

IMPORTANT: Vary the correct answers - don't make them all the same letter. Distribute A, B, C, D across the questions.

Respond with a single JSON object of this exact shape and nothing else:
{"questions": [{"question_text": "...", "choice_a": "...", "choice_b": "...", "choice_c": "...", "choice_d": "...", "correct_answer": "A", "explanation": "...", "topic": "..."}]}`,
		trade, context.String(), n)
}
