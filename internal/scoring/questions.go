package scoring

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/content"
)

// Question is one questionnaire item. Answers are rated 0–10.
type Question struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Category   string `json:"category"`
	FunctionID string `json:"function_id"`
}

//go:embed data/questions.json
var questionsJSON []byte

// ErrMissingMapping marks a malformed question catalog: a question
// without a category mapping, or one pointing at an unknown category.
// This is a configuration error and must abort startup, never a request.
var ErrMissingMapping = fmt.Errorf("question catalog: missing category mapping")

// Catalog is the validated question set plus the question→category index
// the engine scores against.
type Catalog struct {
	questions []Question
	byID      map[string]string
}

// NewCatalog decodes and validates the embedded question catalog.
func NewCatalog() (*Catalog, error) {
	return newCatalog(questionsJSON)
}

func newCatalog(raw []byte) (*Catalog, error) {
	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode question catalog: %w", err)
	}
	byID := make(map[string]string, len(questions))
	for _, q := range questions {
		if q.FunctionID == "" {
			return nil, fmt.Errorf("%w: question %s has no function_id", ErrMissingMapping, q.ID)
		}
		if _, ok := content.CategoryByID(q.FunctionID); !ok {
			return nil, fmt.Errorf("%w: question %s references unknown category %s", ErrMissingMapping, q.ID, q.FunctionID)
		}
		byID[q.ID] = q.FunctionID
	}
	return &Catalog{questions: questions, byID: byID}, nil
}

// Questions returns the catalog in file order, for the questionnaire form.
func (c *Catalog) Questions() []Question {
	return c.questions
}
