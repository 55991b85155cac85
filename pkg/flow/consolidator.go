package flow

import (
	"context"
)

// Consolidator flattens the per-section raw answers accumulated in a session
// into one mapping keyed by question text.
type Consolidator struct {
	catalog Catalog
}

func NewConsolidator(catalog Catalog) *Consolidator {
	return &Consolidator{catalog: catalog}
}

// Consolidate resolves every raw answer key back to its question and records
// the value under the question's text. Keys whose embedded id does not resolve
// are dropped: partial output beats a hard failure at the end of a survey.
// Duplicate question text overwrites (last write wins); section processing
// order is unspecified.
func (c *Consolidator) Consolidate(ctx context.Context, responses map[string]map[string]string) (map[string]string, error) {
	consolidated := make(map[string]string)
	for _, answers := range responses {
		for key, value := range answers {
			id, ok := ParseAnswerKey(key)
			if !ok {
				continue
			}
			question, err := c.catalog.Question(ctx, id)
			if err != nil {
				return nil, err
			}
			if question == nil {
				continue
			}
			consolidated[question.Text] = value
		}
	}
	return consolidated, nil
}
