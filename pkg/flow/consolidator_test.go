package flow

import (
	"context"
	"testing"

	"onboarding-survey-be/internal/entity"

	"github.com/google/uuid"
)

func TestConsolidateKeysByQuestionText(t *testing.T) {
	catalog := newFakeCatalog()
	section := catalog.addSection("About you")
	name := catalog.addQuestion(section, "Your name?", entity.KindText, nil, true)
	team := catalog.addQuestion(section, "Your team?", entity.KindText, nil, false)

	responses := map[string]map[string]string{
		"About you": {
			AnswerKey(name.Id): "Ada",
			AnswerKey(team.Id): "Platform",
		},
	}

	c := NewConsolidator(catalog)
	got, err := c.Consolidate(context.Background(), responses)
	if err != nil {
		t.Fatalf("Consolidate failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got["Your name?"] != "Ada" {
		t.Errorf("name = %q, want %q", got["Your name?"], "Ada")
	}
	if got["Your team?"] != "Platform" {
		t.Errorf("team = %q, want %q", got["Your team?"], "Platform")
	}
}

func TestConsolidateDropsUnresolvableKeys(t *testing.T) {
	catalog := newFakeCatalog()
	section := catalog.addSection("About you")
	name := catalog.addQuestion(section, "Your name?", entity.KindText, nil, true)

	responses := map[string]map[string]string{
		"About you": {
			AnswerKey(name.Id):                 "Ada",
			AnswerKey(uuid.New()):              "orphaned value", // id not in catalog
			"question_not-a-uuid":              "garbage key",
			"no_separator_variant_nouuidhere!": "also dropped",
		},
	}

	c := NewConsolidator(catalog)
	got, err := c.Consolidate(context.Background(), responses)
	if err != nil {
		t.Fatalf("Consolidate failed: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (unresolvable keys must be dropped)", len(got))
	}
	if got["Your name?"] != "Ada" {
		t.Errorf("name = %q, want %q", got["Your name?"], "Ada")
	}
}

func TestConsolidateIsIdempotent(t *testing.T) {
	catalog := newFakeCatalog()
	first := catalog.addSection("First")
	second := catalog.addSection("Second")
	q1 := catalog.addQuestion(first, "Favourite colour?", entity.KindText, nil, false)
	q2 := catalog.addQuestion(second, "Favourite number?", entity.KindText, nil, false)

	responses := map[string]map[string]string{
		"First":  {AnswerKey(q1.Id): "green"},
		"Second": {AnswerKey(q2.Id): "7"},
	}

	c := NewConsolidator(catalog)
	once, err := c.Consolidate(context.Background(), responses)
	if err != nil {
		t.Fatalf("Consolidate failed: %v", err)
	}
	twice, err := c.Consolidate(context.Background(), responses)
	if err != nil {
		t.Fatalf("Consolidate failed: %v", err)
	}

	if len(once) != len(twice) {
		t.Fatalf("lengths differ: %d vs %d", len(once), len(twice))
	}
	for k, v := range once {
		if twice[k] != v {
			t.Errorf("key %q: %q vs %q", k, v, twice[k])
		}
	}
}

func TestConsolidateDuplicateTextLastWriteWins(t *testing.T) {
	catalog := newFakeCatalog()
	first := catalog.addSection("First")
	second := catalog.addSection("Second")
	// Two distinct questions sharing identical text.
	q1 := catalog.addQuestion(first, "Comments?", entity.KindText, nil, false)
	q2 := catalog.addQuestion(second, "Comments?", entity.KindText, nil, false)

	responses := map[string]map[string]string{
		"First":  {AnswerKey(q1.Id): "from first"},
		"Second": {AnswerKey(q2.Id): "from second"},
	}

	c := NewConsolidator(catalog)
	got, err := c.Consolidate(context.Background(), responses)
	if err != nil {
		t.Fatalf("Consolidate failed: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (duplicate text collapses)", len(got))
	}
	v := got["Comments?"]
	if v != "from first" && v != "from second" {
		t.Errorf("value = %q, want one of the submitted values", v)
	}
}

func TestParseAnswerKey(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name   string
		key    string
		wantID uuid.UUID
		wantOK bool
	}{
		{"standard key", AnswerKey(id), id, true},
		{"extra separators before id", "section_question_" + id.String(), id, true},
		{"trailing separator", "question_", uuid.Nil, false},
		{"no separator", "question", uuid.Nil, false},
		{"non-uuid suffix", "question_42", uuid.Nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAnswerKey(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.wantID {
				t.Errorf("id = %s, want %s", got, tt.wantID)
			}
		})
	}
}
