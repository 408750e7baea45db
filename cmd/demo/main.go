// Command demo is a terminal client for the landing-page demo: it drives a
// chat/quiz session against a running server, streaming tokens as they
// arrive. Useful for exercising the demo endpoints without a browser.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"redseal-waitlist/internal/session"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "server base URL")
	trade := flag.String("trade", "", "trade to study for")
	limit := flag.Int("limit", 5, "local demo exchange limit (0 = server-side only)")
	flag.Parse()

	client := session.NewClient(*serverURL)
	sess := session.New(client, session.NewLocalOrchestrator(client), *limit)
	sess.SelectTopic(*trade)

	fmt.Println("RED AI demo. Type a question, or /quiz, /answer <A-D>, /next, /topic <name>, /quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/quit":
			return

		case strings.HasPrefix(line, "/topic "):
			topic := strings.TrimSpace(strings.TrimPrefix(line, "/topic "))
			sess.SelectTopic(topic)
			fmt.Printf("Now studying: %s (chat and quiz reset)\n", topic)

		case line == "/quiz":
			if !sess.CanStartQuiz() {
				fmt.Println("Chat with the AI first, then try a quiz.")
				continue
			}
			fmt.Println("Generating quiz...")
			if err := sess.StartQuiz(context.Background()); err != nil {
				fmt.Println("Quiz generation failed. Try again.")
				continue
			}
			printQuestion(sess)

		case strings.HasPrefix(line, "/answer "):
			letter := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, "/answer ")))
			feedback := sess.Quiz().SubmitAnswer(letter)
			if feedback == nil {
				fmt.Println("No question to answer.")
				continue
			}
			if feedback.IsCorrect {
				fmt.Println("Correct!")
			} else if question := sess.Quiz().Quiz().CurrentQuestion(); question != nil {
				fmt.Printf("Wrong - the answer was %s) %s.\n", feedback.CorrectAnswer, question.Choice(feedback.CorrectAnswer))
			}
			fmt.Println(feedback.Explanation)
			fmt.Printf("Score: %d (%d/%d answered)\n", feedback.Progress.Score, feedback.Progress.Answered, feedback.Progress.Total)

		case line == "/next":
			sess.Quiz().Next()
			quiz := sess.Quiz().Quiz()
			if quiz == nil {
				fmt.Println("No quiz in progress.")
				continue
			}
			if quiz.Status == session.StatusCompleted {
				fmt.Printf("Quiz complete! Final score: %d\n", quiz.Score)
				sess.Quiz().Reset()
				continue
			}
			printQuestion(sess)

		default:
			err := sess.Send(context.Background(), line, func(chunk string) {
				fmt.Print(chunk)
			})
			fmt.Println()
			if errors.Is(err, session.ErrLimitReached) {
				fmt.Println("Demo limit reached - sign up at redsealhub.com to keep going!")
			} else if err != nil {
				fmt.Printf("Chat failed: %v\n", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin: %v", err)
	}
}

func printQuestion(sess *session.Session) {
	quiz := sess.Quiz().Quiz()
	question := quiz.CurrentQuestion()
	if question == nil {
		return
	}
	fmt.Printf("\nQuestion %d of %d: %s\n", quiz.Current+1, len(quiz.Questions), question.QuestionText)
	fmt.Printf("  A) %s\n  B) %s\n  C) %s\n  D) %s\n", question.ChoiceA, question.ChoiceB, question.ChoiceC, question.ChoiceD)
}
