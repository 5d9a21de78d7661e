// Package prediction builds model feature vectors from lifestyle inputs and
// interprets raw regression scores into categorized recommendations.
package prediction

// FeatureNames is the canonical feature order the model was trained on. The
// model consumes a positional vector, so this order is an external contract:
// reordering it silently corrupts every prediction.
var FeatureNames = []string{
	"age", "gender_encoded", "year", "gpa",
	"motivation_level", "self_discipline", "stress_level",
	"time_management_skill", "goal_clarity",
	"family_support", "family_income_encoded", "living_situation_encoded",
	"siblings_count", "study_environment_quality",
	"distance_to_school_km", "commute_time_minutes",
	"has_study_room", "friend_support", "mentor_availability",
	"week", "week_squared", "is_early_semester", "is_mid_semester", "is_late_semester",
	"study_hours_per_week", "exercise_sessions_per_week",
	"sleep_hours_per_day", "social_activities_per_week",
	"meditation_frequency", "reading_frequency", "exercise_frequency",
	"meal_planning_frequency", "journaling_frequency",
	"weekly_motivation", "weekly_stress", "weekly_energy_level",
	"study_distractions", "weather_quality", "noise_level",
	"has_exam", "has_deadline", "has_family_event",
	"total_habit_frequency", "avg_habit_frequency",
	"motivation_x_discipline", "stress_x_distractions", "support_score",
	"prev_week_performance", "rolling_avg_performance",
}

// NumFeatures is the expected vector length.
var NumFeatures = len(FeatureNames)

// Input is the typed prediction request body. Every field is optional; nil
// fields take the documented default. Fields that are model features map to
// one vector slot each, except Gender (encoded) and the derived features,
// which are computed here.
type Input struct {
	HabitID *int `json:"habit_id,omitempty"`

	Age    *float64 `json:"age,omitempty"`    // default 20
	Gender *string  `json:"gender,omitempty"` // "Male" → 1, anything else → 0
	Year   *float64 `json:"year,omitempty"`   // default 1
	GPA    *float64 `json:"gpa,omitempty"`    // default 3.0

	MotivationLevel     *float64 `json:"motivation_level,omitempty"`      // default 5
	SelfDiscipline      *float64 `json:"self_discipline,omitempty"`       // default 5
	StressLevel         *float64 `json:"stress_level,omitempty"`          // default 5
	TimeManagementSkill *float64 `json:"time_management_skill,omitempty"` // default 5
	GoalClarity         *float64 `json:"goal_clarity,omitempty"`          // default 5

	FamilySupport           *float64 `json:"family_support,omitempty"`            // default 5
	FamilyIncomeEncoded     *float64 `json:"family_income_encoded,omitempty"`     // default 1
	LivingSituationEncoded  *float64 `json:"living_situation_encoded,omitempty"`  // default 0
	SiblingsCount           *float64 `json:"siblings_count,omitempty"`            // default 1
	StudyEnvironmentQuality *float64 `json:"study_environment_quality,omitempty"` // default 5
	DistanceToSchoolKm      *float64 `json:"distance_to_school_km,omitempty"`     // default 10
	CommuteTimeMinutes      *float64 `json:"commute_time_minutes,omitempty"`      // default 30
	HasStudyRoom            *float64 `json:"has_study_room,omitempty"`            // default 0
	FriendSupport           *float64 `json:"friend_support,omitempty"`            // default 5
	MentorAvailability      *float64 `json:"mentor_availability,omitempty"`       // default 0

	Week *float64 `json:"week,omitempty"` // default 1

	StudyHoursPerWeek       *float64 `json:"study_hours_per_week,omitempty"`       // default 20
	ExerciseSessionsPerWeek *float64 `json:"exercise_sessions_per_week,omitempty"` // default 3
	SleepHoursPerDay        *float64 `json:"sleep_hours_per_day,omitempty"`        // default 7
	SocialActivitiesPerWeek *float64 `json:"social_activities_per_week,omitempty"` // default 3

	MeditationFrequency   *float64 `json:"meditation_frequency,omitempty"`    // default 0
	ReadingFrequency      *float64 `json:"reading_frequency,omitempty"`       // default 0
	ExerciseFrequency     *float64 `json:"exercise_frequency,omitempty"`      // default 0
	MealPlanningFrequency *float64 `json:"meal_planning_frequency,omitempty"` // default 0
	JournalingFrequency   *float64 `json:"journaling_frequency,omitempty"`    // default 0

	WeeklyMotivation  *float64 `json:"weekly_motivation,omitempty"`   // default 5
	WeeklyStress      *float64 `json:"weekly_stress,omitempty"`       // default 5
	WeeklyEnergyLevel *float64 `json:"weekly_energy_level,omitempty"` // default 5
	StudyDistractions *float64 `json:"study_distractions,omitempty"`  // default 5
	WeatherQuality    *float64 `json:"weather_quality,omitempty"`     // default 5
	NoiseLevel        *float64 `json:"noise_level,omitempty"`         // default 5

	HasExam        *float64 `json:"has_exam,omitempty"`         // default 0
	HasDeadline    *float64 `json:"has_deadline,omitempty"`     // default 0
	HasFamilyEvent *float64 `json:"has_family_event,omitempty"` // default 0

	PrevWeekPerformance   *float64 `json:"prev_week_performance,omitempty"`   // default 50
	RollingAvgPerformance *float64 `json:"rolling_avg_performance,omitempty"` // default 50
}

func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

// features resolves defaults and derived values into a name→value map.
func (in *Input) features() map[string]float64 {
	motivation := orDefault(in.MotivationLevel, 5)
	discipline := orDefault(in.SelfDiscipline, 5)
	weeklyStress := orDefault(in.WeeklyStress, 5)
	distractions := orDefault(in.StudyDistractions, 5)
	familySupport := orDefault(in.FamilySupport, 5)
	friendSupport := orDefault(in.FriendSupport, 5)

	meditation := orDefault(in.MeditationFrequency, 0)
	reading := orDefault(in.ReadingFrequency, 0)
	exercise := orDefault(in.ExerciseFrequency, 0)
	mealPlanning := orDefault(in.MealPlanningFrequency, 0)
	journaling := orDefault(in.JournalingFrequency, 0)
	totalHabitFreq := meditation + reading + exercise + mealPlanning + journaling

	week := orDefault(in.Week, 1)

	genderEncoded := 0.0
	if in.Gender != nil && *in.Gender == "Male" {
		genderEncoded = 1
	}

	// Semester flags are mutually exclusive; week 4 is still early, week 8
	// still mid.
	isEarly, isMid, isLate := 0.0, 0.0, 0.0
	switch {
	case week <= 4:
		isEarly = 1
	case week <= 8:
		isMid = 1
	default:
		isLate = 1
	}

	return map[string]float64{
		"age":                        orDefault(in.Age, 20),
		"gender_encoded":             genderEncoded,
		"year":                       orDefault(in.Year, 1),
		"gpa":                        orDefault(in.GPA, 3.0),
		"motivation_level":           motivation,
		"self_discipline":            discipline,
		"stress_level":               orDefault(in.StressLevel, 5),
		"time_management_skill":      orDefault(in.TimeManagementSkill, 5),
		"goal_clarity":               orDefault(in.GoalClarity, 5),
		"family_support":             familySupport,
		"family_income_encoded":      orDefault(in.FamilyIncomeEncoded, 1),
		"living_situation_encoded":   orDefault(in.LivingSituationEncoded, 0),
		"siblings_count":             orDefault(in.SiblingsCount, 1),
		"study_environment_quality":  orDefault(in.StudyEnvironmentQuality, 5),
		"distance_to_school_km":      orDefault(in.DistanceToSchoolKm, 10),
		"commute_time_minutes":       orDefault(in.CommuteTimeMinutes, 30),
		"has_study_room":             orDefault(in.HasStudyRoom, 0),
		"friend_support":             friendSupport,
		"mentor_availability":        orDefault(in.MentorAvailability, 0),
		"week":                       week,
		"week_squared":               week * week,
		"is_early_semester":          isEarly,
		"is_mid_semester":            isMid,
		"is_late_semester":           isLate,
		"study_hours_per_week":       orDefault(in.StudyHoursPerWeek, 20),
		"exercise_sessions_per_week": orDefault(in.ExerciseSessionsPerWeek, 3),
		"sleep_hours_per_day":        orDefault(in.SleepHoursPerDay, 7),
		"social_activities_per_week": orDefault(in.SocialActivitiesPerWeek, 3),
		"meditation_frequency":       meditation,
		"reading_frequency":          reading,
		"exercise_frequency":         exercise,
		"meal_planning_frequency":    mealPlanning,
		"journaling_frequency":       journaling,
		"weekly_motivation":          orDefault(in.WeeklyMotivation, 5),
		"weekly_stress":              weeklyStress,
		"weekly_energy_level":        orDefault(in.WeeklyEnergyLevel, 5),
		"study_distractions":         distractions,
		"weather_quality":            orDefault(in.WeatherQuality, 5),
		"noise_level":                orDefault(in.NoiseLevel, 5),
		"has_exam":                   orDefault(in.HasExam, 0),
		"has_deadline":               orDefault(in.HasDeadline, 0),
		"has_family_event":           orDefault(in.HasFamilyEvent, 0),
		"total_habit_frequency":      totalHabitFreq,
		"avg_habit_frequency":        totalHabitFreq / 5,
		"motivation_x_discipline":    motivation * discipline,
		"stress_x_distractions":      weeklyStress * distractions,
		"support_score":              (familySupport + friendSupport) / 2,
		"prev_week_performance":      orDefault(in.PrevWeekPerformance, 50),
		"rolling_avg_performance":    orDefault(in.RollingAvgPerformance, 50),
	}
}

// Vector builds the positional feature vector in canonical order.
func (in *Input) Vector() []float64 {
	features := in.features()
	vec := make([]float64, 0, NumFeatures)
	for _, name := range FeatureNames {
		vec = append(vec, features[name])
	}
	return vec
}
