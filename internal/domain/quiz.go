package domain

import "time"

// QuizOption is one selectable answer. Trait is the single label recorded for
// the branching decision; Weights carries the richer multi-trait point vector
// used when scoring the finished session. A simple-tree bank may leave
// Weights nil, in which case the trait label alone scores a flat contribution.
type QuizOption struct {
	Label   string         `json:"label"`
	Trait   string         `json:"trait"`
	Weights map[string]int `json:"weights,omitempty"`
}

// QuizQuestion is immutable bank content: a prompt and up to four options.
type QuizQuestion struct {
	Text    string       `json:"text"`
	Options []QuizOption `json:"options"`
}

// HasTrait reports whether any option of the question carries the trait,
// either as its label or inside its weight vector.
func (q QuizQuestion) HasTrait(trait string) bool {
	for _, opt := range q.Options {
		if opt.Trait == trait {
			return true
		}
		if _, ok := opt.Weights[trait]; ok {
			return true
		}
	}
	return false
}

// QuizSession is the transient per-user questionnaire state. AskedQuestions
// and SelectedTraits grow in lockstep, one pair per answered turn (the asked
// list may run one ahead while a question is outstanding). Sessions live in a
// store with a TTL and are lost on restart.
type QuizSession struct {
	ID             string    `json:"id"`
	AskedQuestions []string  `json:"asked_questions"`
	SelectedTraits []string  `json:"selected_traits"`
	ProductType    string    `json:"product_type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// QuizResult is the personality summary generated at completion.
type QuizResult struct {
	PersonalityLabel string         `json:"personality_label"`
	Confidence       int            `json:"confidence"`
	DominantTraits   []string       `json:"dominant_traits"`
	TraitScores      map[string]int `json:"trait_scores"`
	ProductType      string         `json:"product_type,omitempty"`
}
