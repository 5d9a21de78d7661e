package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func str(v string) *string { return &v }

func vectorByName(t *testing.T, in *Input) map[string]float64 {
	t.Helper()
	vec := in.Vector()
	require.Len(t, vec, NumFeatures)
	out := make(map[string]float64, NumFeatures)
	for i, name := range FeatureNames {
		out[name] = vec[i]
	}
	return out
}

func TestFeatureNames_Canonical(t *testing.T) {
	require.Equal(t, 49, NumFeatures)
	assert.Equal(t, "age", FeatureNames[0])
	assert.Equal(t, "week_squared", FeatureNames[20])
	assert.Equal(t, "rolling_avg_performance", FeatureNames[48])

	seen := map[string]bool{}
	for _, name := range FeatureNames {
		require.False(t, seen[name], "duplicate feature %q", name)
		seen[name] = true
	}
}

func TestVector_EmptyInputDefaults(t *testing.T) {
	got := vectorByName(t, &Input{})

	assert.Equal(t, 20.0, got["age"])
	assert.Equal(t, 0.0, got["gender_encoded"])
	assert.Equal(t, 1.0, got["year"])
	assert.Equal(t, 3.0, got["gpa"])
	assert.Equal(t, 5.0, got["motivation_level"])
	assert.Equal(t, 1.0, got["week"])
	assert.Equal(t, 1.0, got["week_squared"])
	assert.Equal(t, 1.0, got["is_early_semester"])
	assert.Equal(t, 0.0, got["is_mid_semester"])
	assert.Equal(t, 0.0, got["is_late_semester"])
	assert.Equal(t, 20.0, got["study_hours_per_week"])
	assert.Equal(t, 7.0, got["sleep_hours_per_day"])
	assert.Equal(t, 0.0, got["total_habit_frequency"])
	assert.Equal(t, 0.0, got["avg_habit_frequency"])
	assert.Equal(t, 25.0, got["motivation_x_discipline"])
	assert.Equal(t, 25.0, got["stress_x_distractions"])
	assert.Equal(t, 5.0, got["support_score"])
	assert.Equal(t, 50.0, got["prev_week_performance"])
	assert.Equal(t, 50.0, got["rolling_avg_performance"])
}

func TestVector_Deterministic(t *testing.T) {
	in := &Input{}
	assert.Equal(t, in.Vector(), in.Vector())
}

func TestVector_GenderEncoding(t *testing.T) {
	assert.Equal(t, 1.0, vectorByName(t, &Input{Gender: str("Male")})["gender_encoded"])
	assert.Equal(t, 0.0, vectorByName(t, &Input{Gender: str("Female")})["gender_encoded"])
	assert.Equal(t, 0.0, vectorByName(t, &Input{Gender: str("male")})["gender_encoded"])
	assert.Equal(t, 0.0, vectorByName(t, &Input{})["gender_encoded"])
}

func TestVector_SemesterFlags(t *testing.T) {
	cases := []struct {
		week             float64
		early, mid, late float64
	}{
		{1, 1, 0, 0},
		{4, 1, 0, 0},
		{5, 0, 1, 0},
		{8, 0, 1, 0},
		{9, 0, 0, 1},
		{16, 0, 0, 1},
	}

	for _, tc := range cases {
		got := vectorByName(t, &Input{Week: f(tc.week)})
		assert.Equal(t, tc.early, got["is_early_semester"], "week %v", tc.week)
		assert.Equal(t, tc.mid, got["is_mid_semester"], "week %v", tc.week)
		assert.Equal(t, tc.late, got["is_late_semester"], "week %v", tc.week)

		sum := got["is_early_semester"] + got["is_mid_semester"] + got["is_late_semester"]
		assert.Equal(t, 1.0, sum, "week %v flags must be exclusive", tc.week)
		assert.Equal(t, tc.week*tc.week, got["week_squared"])
	}
}

func TestVector_HabitFrequencyAggregates(t *testing.T) {
	in := &Input{
		MeditationFrequency: f(2),
		ReadingFrequency:    f(3),
		ExerciseFrequency:   f(4),
		// meal planning and journaling left at default 0
	}
	got := vectorByName(t, in)

	assert.Equal(t, 9.0, got["total_habit_frequency"])
	// Fixed divisor of 5 even with two fields defaulted.
	assert.Equal(t, 9.0/5, got["avg_habit_frequency"])
}

func TestVector_InteractionFeatures(t *testing.T) {
	in := &Input{
		MotivationLevel:   f(8),
		SelfDiscipline:    f(6),
		WeeklyStress:      f(3),
		StudyDistractions: f(7),
		FamilySupport:     f(9),
		FriendSupport:     f(4),
	}
	got := vectorByName(t, in)

	assert.Equal(t, 48.0, got["motivation_x_discipline"])
	assert.Equal(t, 21.0, got["stress_x_distractions"])
	assert.Equal(t, 6.5, got["support_score"])
}

func TestVector_DerivedUseDefaultedInputs(t *testing.T) {
	// Only motivation set: discipline defaults to 5.
	got := vectorByName(t, &Input{MotivationLevel: f(10)})
	assert.Equal(t, 50.0, got["motivation_x_discipline"])
}
