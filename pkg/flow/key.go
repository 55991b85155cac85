package flow

import (
	"strings"

	"github.com/google/uuid"
)

// Raw answer keys carry the question id as the token after the last separator,
// e.g. "question_5f2b...". This is the wire shape submitted by clients.
const answerKeyPrefix = "question_"

// AnswerKey builds the raw answer key for a question id.
func AnswerKey(id uuid.UUID) string {
	return answerKeyPrefix + id.String()
}

// ParseAnswerKey extracts the question id embedded in a raw answer key.
// Returns false if the trailing token is not a valid id.
func ParseAnswerKey(key string) (uuid.UUID, bool) {
	idx := strings.LastIndex(key, "_")
	if idx < 0 || idx == len(key)-1 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(key[idx+1:])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
