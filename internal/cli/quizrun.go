package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/uniaodigital/learnhub/internal/quiz"
	"github.com/uniaodigital/learnhub/internal/stats"
)

// now is a test seam for wall-clock measurement.
var now = time.Now

// runQuiz asks every question of q in order, measures wall-clock time from
// the first question to the last answer, and merges the result into the
// statistics ledger for the logged-in user.
func (a *App) runQuiz(ctx context.Context, q quiz.Quiz) {
	result, err := a.askQuestions(q)
	if err != nil {
		a.log.Error(ctx, "quiz aborted", "quiz", q.ID, "error", err)
		return
	}

	a.printCentered(fmt.Sprintf("You answered %d of %d questions correctly.", result.CorrectCount, result.TotalQuestions))
	a.printCentered(fmt.Sprintf("Total time: %.2f seconds.", result.Elapsed.Seconds()))

	entry, err := a.session.RecordAttempt(ctx, q.ID, result)
	if err != nil {
		a.log.Error(ctx, "record attempt", "quiz", q.ID, "error", err)
		return
	}

	a.printCentered(fmt.Sprintf("Average time for this quiz: %.2f seconds.", entry.AverageTimeSeconds))
	a.pause()
}

func (a *App) askQuestions(q quiz.Quiz) (stats.AttemptResult, error) {
	correct := 0
	start := now()

	for i, question := range q.Questions {
		fmt.Fprintln(a.out)
		a.printCentered(fmt.Sprintf("%d. %s", i+1, question.Prompt))
		for _, option := range question.Options {
			a.printCentered(fmt.Sprintf("%s) %s", option.Label, option.Text))
		}

		var answer quiz.Label
		for {
			raw, err := GetSimpleText(a.reader, "Your answer", a.out)
			if err != nil {
				return stats.AttemptResult{}, err
			}
			label, ok := quiz.ParseLabel(raw)
			if ok {
				answer = label
				break
			}
			a.printCentered("Invalid option! Please choose A, B, C, or D.")
		}

		if answer == question.Correct {
			a.printCentered("Correct answer!")
			correct++
		} else {
			a.printCentered(fmt.Sprintf("Incorrect! The correct answer was: %s", question.Correct))
		}
	}

	return stats.AttemptResult{
		CorrectCount:   correct,
		TotalQuestions: len(q.Questions),
		Elapsed:        now().Sub(start),
	}, nil
}
