package prediction

// Score bands and their fixed recommendation texts.
const (
	CategoryExcellent       = "Excellent"
	CategoryGood            = "Good"
	CategoryAverage         = "Average"
	CategoryNeedImprovement = "Need Improvement"
)

const (
	recommendExcellent       = "You're building excellent habits! Keep them up."
	recommendGood            = "Your habits are solid — keep pushing to improve."
	recommendAverage         = "Strengthen your discipline and time management."
	recommendNeedImprovement = "Significant changes needed. Focus on motivation and your environment."
)

// Interpret maps a raw regression score to its category and recommendation.
// Band edges belong to the upper band: exactly 80 is Excellent, exactly 60 is
// Good, exactly 40 is Average.
func Interpret(score float64) (category, recommendation string) {
	switch {
	case score >= 80:
		return CategoryExcellent, recommendExcellent
	case score >= 60:
		return CategoryGood, recommendGood
	case score >= 40:
		return CategoryAverage, recommendAverage
	default:
		return CategoryNeedImprovement, recommendNeedImprovement
	}
}
