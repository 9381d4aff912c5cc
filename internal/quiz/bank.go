package quiz

import "persona-matcher/internal/domain"

// The full trait set scored by the default bank. The three core style axes
// come first; the rest refine the personality label. The engine itself never
// depends on this list — traits are open string keys.
const (
	TraitAdventure      = "adventure"
	TraitMinimalism     = "minimalism"
	TraitRomance        = "romance"
	TraitPlayfulness    = "playfulness"
	TraitSophistication = "sophistication"
	TraitCreativity     = "creativity"
	TraitTradition      = "tradition"
	TraitEdginess       = "edginess"
	TraitFreedom        = "freedom"
	TraitWarmth         = "warmth"
	TraitConfidence     = "confidence"
)

// DefaultBank is the static question bank for the handbag personality quiz.
// Option weights are 0-100 per trait; a trait's normalized score can never
// exceed 100 because each contributing question is averaged, not summed.
func DefaultBank() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			Text: "You walk into a gallery. Which wall pulls you in first?",
			Options: []domain.QuizOption{
				{Label: "A wall of vivid wildlife portraits", Trait: domain.TraitBoldness, Weights: map[string]int{domain.TraitBoldness: 85, TraitAdventure: 60}},
				{Label: "Soft botanical watercolors", Trait: domain.TraitElegance, Weights: map[string]int{domain.TraitElegance: 80, TraitRomance: 65}},
				{Label: "A playful mix of colors and shapes", Trait: domain.TraitWhimsy, Weights: map[string]int{domain.TraitWhimsy: 85, TraitPlayfulness: 70}},
				{Label: "Clean black-and-white photography", Trait: TraitMinimalism, Weights: map[string]int{TraitMinimalism: 90, TraitSophistication: 55}},
			},
		},
		{
			Text: "Your ideal Saturday looks like:",
			Options: []domain.QuizOption{
				{Label: "An unplanned road trip", Trait: TraitAdventure, Weights: map[string]int{TraitAdventure: 90, TraitFreedom: 70}},
				{Label: "Brunch with close friends", Trait: TraitWarmth, Weights: map[string]int{TraitWarmth: 85, TraitPlayfulness: 40}},
				{Label: "A museum and a long dinner", Trait: TraitSophistication, Weights: map[string]int{TraitSophistication: 85, domain.TraitElegance: 60}},
				{Label: "Painting, writing, making something", Trait: TraitCreativity, Weights: map[string]int{TraitCreativity: 90, domain.TraitWhimsy: 50}},
			},
		},
		{
			Text: "Pick the compliment that would make your day:",
			Options: []domain.QuizOption{
				{Label: "\"You're fearless\"", Trait: domain.TraitBoldness, Weights: map[string]int{domain.TraitBoldness: 90, TraitConfidence: 75}},
				{Label: "\"You have impeccable taste\"", Trait: domain.TraitElegance, Weights: map[string]int{domain.TraitElegance: 90, TraitSophistication: 70}},
				{Label: "\"You're so much fun\"", Trait: TraitPlayfulness, Weights: map[string]int{TraitPlayfulness: 90, domain.TraitWhimsy: 65}},
				{Label: "\"You're the real deal\"", Trait: TraitTradition, Weights: map[string]int{TraitTradition: 80, TraitWarmth: 55}},
			},
		},
		{
			Text: "Your wardrobe is mostly:",
			Options: []domain.QuizOption{
				{Label: "Statement pieces people remember", Trait: domain.TraitBoldness, Weights: map[string]int{domain.TraitBoldness: 80, TraitEdginess: 65}},
				{Label: "Timeless neutrals that always work", Trait: TraitTradition, Weights: map[string]int{TraitTradition: 85, TraitMinimalism: 60}},
				{Label: "Soft fabrics and romantic details", Trait: TraitRomance, Weights: map[string]int{TraitRomance: 85, domain.TraitElegance: 60}},
				{Label: "Whatever felt right that morning", Trait: TraitFreedom, Weights: map[string]int{TraitFreedom: 85, TraitCreativity: 55}},
			},
		},
		{
			Text: "At a party you are usually:",
			Options: []domain.QuizOption{
				{Label: "Telling the story everyone leans in for", Trait: TraitConfidence, Weights: map[string]int{TraitConfidence: 85, domain.TraitBoldness: 60}},
				{Label: "Finding the one person worth a deep talk", Trait: TraitWarmth, Weights: map[string]int{TraitWarmth: 80, TraitSophistication: 45}},
				{Label: "Starting the dancing", Trait: TraitPlayfulness, Weights: map[string]int{TraitPlayfulness: 85, TraitFreedom: 60}},
				{Label: "Admiring the host's art collection", Trait: domain.TraitElegance, Weights: map[string]int{domain.TraitElegance: 75, TraitCreativity: 55}},
			},
		},
		{
			Text: "Choose a place to live for a year:",
			Options: []domain.QuizOption{
				{Label: "A cabin deep in the mountains", Trait: TraitAdventure, Weights: map[string]int{TraitAdventure: 85, TraitFreedom: 65}},
				{Label: "A Paris apartment above a patisserie", Trait: TraitRomance, Weights: map[string]int{TraitRomance: 90, domain.TraitElegance: 70}},
				{Label: "A loft in a city that never sleeps", Trait: TraitEdginess, Weights: map[string]int{TraitEdginess: 85, domain.TraitBoldness: 60}},
				{Label: "A cottage with a wild garden", Trait: domain.TraitWhimsy, Weights: map[string]int{domain.TraitWhimsy: 85, TraitWarmth: 55}},
			},
		},
		{
			Text: "Your favorite artwork detail on a bag would be:",
			Options: []domain.QuizOption{
				{Label: "A hand-painted leopard", Trait: domain.TraitBoldness, Weights: map[string]int{domain.TraitBoldness: 85, TraitAdventure: 55}},
				{Label: "Embroidered roses", Trait: TraitRomance, Weights: map[string]int{TraitRomance: 85, domain.TraitElegance: 65}},
				{Label: "A hidden whimsical scene inside", Trait: domain.TraitWhimsy, Weights: map[string]int{domain.TraitWhimsy: 90, TraitPlayfulness: 60}},
				{Label: "One perfect, quiet emblem", Trait: TraitMinimalism, Weights: map[string]int{TraitMinimalism: 85, TraitSophistication: 60}},
			},
		},
		{
			Text: "When plans fall apart, you:",
			Options: []domain.QuizOption{
				{Label: "Love it — now anything can happen", Trait: TraitFreedom, Weights: map[string]int{TraitFreedom: 90, TraitAdventure: 70}},
				{Label: "Improvise something even better", Trait: TraitCreativity, Weights: map[string]int{TraitCreativity: 85, TraitConfidence: 60}},
				{Label: "Keep calm and re-plan", Trait: TraitTradition, Weights: map[string]int{TraitTradition: 80, TraitMinimalism: 50}},
				{Label: "Rally everyone's spirits", Trait: TraitWarmth, Weights: map[string]int{TraitWarmth: 85, TraitPlayfulness: 55}},
			},
		},
		{
			Text: "Pick a soundtrack for your week:",
			Options: []domain.QuizOption{
				{Label: "Loud, electric, a little reckless", Trait: TraitEdginess, Weights: map[string]int{TraitEdginess: 90, domain.TraitBoldness: 65}},
				{Label: "Strings and old jazz standards", Trait: TraitSophistication, Weights: map[string]int{TraitSophistication: 85, domain.TraitElegance: 70}},
				{Label: "Folk songs about open roads", Trait: TraitFreedom, Weights: map[string]int{TraitFreedom: 85, TraitAdventure: 60}},
				{Label: "Something sweet you can hum", Trait: domain.TraitWhimsy, Weights: map[string]int{domain.TraitWhimsy: 80, TraitWarmth: 55}},
			},
		},
		{
			Text: "The detail you notice first on a handbag:",
			Options: []domain.QuizOption{
				{Label: "How striking it looks across the room", Trait: TraitConfidence, Weights: map[string]int{TraitConfidence: 85, domain.TraitBoldness: 70}},
				{Label: "The stitching and finish", Trait: TraitSophistication, Weights: map[string]int{TraitSophistication: 85, TraitTradition: 60}},
				{Label: "The story the artwork tells", Trait: TraitCreativity, Weights: map[string]int{TraitCreativity: 85, domain.TraitWhimsy: 60}},
				{Label: "Whether it fits everything you carry", Trait: TraitMinimalism, Weights: map[string]int{TraitMinimalism: 75, TraitFreedom: 45}},
			},
		},
		{
			Text: "A gift you'd love to receive:",
			Options: []domain.QuizOption{
				{Label: "Tickets to somewhere you've never been", Trait: TraitAdventure, Weights: map[string]int{TraitAdventure: 90, domain.TraitBoldness: 55}},
				{Label: "A handwritten letter", Trait: TraitRomance, Weights: map[string]int{TraitRomance: 90, TraitWarmth: 65}},
				{Label: "Something one-of-a-kind and handmade", Trait: TraitCreativity, Weights: map[string]int{TraitCreativity: 85, domain.TraitWhimsy: 55}},
				{Label: "A classic that lasts decades", Trait: TraitTradition, Weights: map[string]int{TraitTradition: 85, domain.TraitElegance: 60}},
			},
		},
		{
			Text: "Which motto fits you best?",
			Options: []domain.QuizOption{
				{Label: "Fortune favors the bold", Trait: domain.TraitBoldness, Weights: map[string]int{domain.TraitBoldness: 90, TraitConfidence: 70}},
				{Label: "Less, but better", Trait: TraitMinimalism, Weights: map[string]int{TraitMinimalism: 90, TraitSophistication: 60}},
				{Label: "Not all who wander are lost", Trait: TraitFreedom, Weights: map[string]int{TraitFreedom: 90, TraitAdventure: 65}},
				{Label: "Leave people better than you found them", Trait: TraitWarmth, Weights: map[string]int{TraitWarmth: 90, TraitRomance: 50}},
			},
		},
	}
}
