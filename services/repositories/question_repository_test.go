package repositories

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurs-wjo/wjo_api/model"
)

func bankQuestion(id, category string) *model.Question {
	return &model.Question{
		ID:            id,
		Text:          "Pytanie " + id,
		Options:       json.RawMessage(`{"A":"tak","B":"nie"}`),
		CorrectOption: "A",
		Category:      category,
	}
}

func TestQuestionUpsertConverges(t *testing.T) {
	repo := NewQuestionRepository(testDB(t))

	require.NoError(t, repo.Upsert(bankQuestion("q1", "Napęd i Zasilanie")))

	// Re-import with changed payload overwrites in place.
	updated := bankQuestion("q1", "Napęd i Zasilanie")
	updated.Text = "Poprawione pytanie"
	updated.CorrectOption = "B"
	require.NoError(t, repo.Upsert(updated))

	got, err := repo.GetByID("q1")
	require.NoError(t, err)
	assert.Equal(t, "Poprawione pytanie", got.Text)
	assert.Equal(t, "B", got.CorrectOption)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestQuestionGetByIDs(t *testing.T) {
	repo := NewQuestionRepository(testDB(t))
	require.NoError(t, repo.Create(bankQuestion("q1", "Napęd i Zasilanie")))
	require.NoError(t, repo.Create(bankQuestion("q2", "Napęd i Zasilanie")))

	questions, err := repo.GetByIDs([]string{"q2", "missing"})
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "q2", questions[0].ID)

	questions, err = repo.GetByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestQuestionListOrdersByCategoryThenID(t *testing.T) {
	repo := NewQuestionRepository(testDB(t))
	require.NoError(t, repo.Create(bankQuestion("q2", "Wyposażenie i Kontrolki")))
	require.NoError(t, repo.Create(bankQuestion("q3", "Napęd i Zasilanie")))
	require.NoError(t, repo.Create(bankQuestion("q1", "Napęd i Zasilanie")))

	questions, err := repo.List(0, 10)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "q3", questions[1].ID)
	assert.Equal(t, "q2", questions[2].ID)

	page, err := repo.List(1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "q3", page[0].ID)
}

func TestQuestionDelete(t *testing.T) {
	repo := NewQuestionRepository(testDB(t))
	require.NoError(t, repo.Create(bankQuestion("q1", "Napęd i Zasilanie")))
	require.NoError(t, repo.Delete("q1"))

	_, err := repo.GetByID("q1")
	require.Error(t, err)
}
