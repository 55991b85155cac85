package flow

import (
	"context"
	"strings"

	"onboarding-survey-be/internal/entity"
)

// Finish is the terminal navigation result: the survey has no further section.
const Finish = "Finish"

// Navigator decides which section a respondent sees next. A section's
// successor is either the target named by its choice answer (branch sections)
// or the next section by ascending order within the survey.
type Navigator struct {
	catalog Catalog
}

func NewNavigator(catalog Catalog) *Navigator {
	return &Navigator{catalog: catalog}
}

// Next resolves the section after current, given the answers just submitted.
// A missing membership edge ends the survey rather than erroring: an
// unresolvable position must not strand the respondent mid-flow. A branch
// answer naming an unknown section also ends the survey; a blank or absent
// branch answer falls back to static ordering.
func (n *Navigator) Next(ctx context.Context, survey *entity.Survey, current *entity.Section, answers map[string]string) (string, error) {
	edge, err := n.catalog.Membership(ctx, survey.Id, current.Id)
	if err != nil {
		return "", err
	}
	if edge == nil {
		return Finish, nil
	}

	if edge.HasChoice {
		target, done, err := n.branchTarget(ctx, current, answers)
		if err != nil {
			return "", err
		}
		if done {
			return target, nil
		}
	}

	return n.nextByOrder(ctx, survey, edge)
}

// branchTarget reads the first choice question's answer as a section title.
// done is false when the branch cannot decide and static ordering applies.
func (n *Navigator) branchTarget(ctx context.Context, current *entity.Section, answers map[string]string) (target string, done bool, err error) {
	questions, err := n.catalog.Questions(ctx, current.Id)
	if err != nil {
		return "", false, err
	}

	var choice *entity.Question
	for _, q := range questions {
		if q.Kind == entity.KindChoice {
			choice = q
			break
		}
	}
	if choice == nil {
		return "", false, nil
	}

	raw, ok := answers[AnswerKey(choice.Id)]
	if !ok || raw == "" {
		return "", false, nil
	}

	title := strings.TrimSpace(raw)
	section, err := n.catalog.Section(ctx, title)
	if err != nil {
		return "", false, err
	}
	if section == nil {
		// Dangling branch target: treated the same as a structurally
		// finished survey.
		return Finish, true, nil
	}
	return section.Title, true, nil
}

func (n *Navigator) nextByOrder(ctx context.Context, survey *entity.Survey, edge *entity.SurveySection) (string, error) {
	next, err := n.catalog.NextMembership(ctx, survey.Id, edge.Order)
	if err != nil {
		return "", err
	}
	if next == nil {
		return Finish, nil
	}

	section, err := n.catalog.SectionByID(ctx, next.SectionId)
	if err != nil {
		return "", err
	}
	if section == nil {
		return Finish, nil
	}
	return section.Title, nil
}
