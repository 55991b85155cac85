package flow

import (
	"testing"

	"onboarding-survey-be/internal/entity"

	"github.com/google/uuid"
)

func TestMissingRequired(t *testing.T) {
	required := &entity.Question{Id: uuid.New(), Text: "Your name?", Kind: entity.KindText, Required: true}
	optional := &entity.Question{Id: uuid.New(), Text: "Nickname?", Kind: entity.KindText}
	questions := []*entity.Question{required, optional}

	tests := []struct {
		name        string
		answers     map[string]string
		wantMissing int
	}{
		{
			name:        "required answered",
			answers:     map[string]string{AnswerKey(required.Id): "Ada"},
			wantMissing: 0,
		},
		{
			name:        "required missing despite other answers",
			answers:     map[string]string{AnswerKey(optional.Id): "Lady A"},
			wantMissing: 1,
		},
		{
			name:        "empty value still counts as present",
			answers:     map[string]string{AnswerKey(required.Id): ""},
			wantMissing: 0,
		},
		{
			name:        "no answers at all",
			answers:     map[string]string{},
			wantMissing: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing := MissingRequired(questions, tt.answers)
			if len(missing) != tt.wantMissing {
				t.Errorf("missing = %d, want %d", len(missing), tt.wantMissing)
			}
			if tt.wantMissing == 1 && missing[0] != required.Id {
				t.Errorf("missing id = %s, want %s", missing[0], required.Id)
			}
		})
	}
}

func TestMissingRequiredNoRequiredQuestions(t *testing.T) {
	questions := []*entity.Question{
		{Id: uuid.New(), Text: "Optional one", Kind: entity.KindText},
		{Id: uuid.New(), Text: "Optional two", Kind: entity.KindText},
	}
	if missing := MissingRequired(questions, map[string]string{}); len(missing) != 0 {
		t.Errorf("missing = %v, want empty", missing)
	}
}
