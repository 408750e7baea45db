package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizQuestionChoice(t *testing.T) {
	q := QuizQuestion{
		ChoiceA: "first",
		ChoiceB: "second",
		ChoiceC: "third",
		ChoiceD: "fourth",
	}

	assert.Equal(t, "first", q.Choice("A"))
	assert.Equal(t, "second", q.Choice("B"))
	assert.Equal(t, "third", q.Choice("C"))
	assert.Equal(t, "fourth", q.Choice("D"))
	assert.Equal(t, "", q.Choice("E"))
	assert.Equal(t, "", q.Choice("a"))
}
