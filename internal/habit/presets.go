package habit

// Preset is a suggested habit offered during onboarding.
type Preset struct {
	Name     string  `json:"name"`
	Type     Type    `json:"type"`
	Unit     string  `json:"unit,omitempty"`
	Target   float64 `json:"target,omitempty"`
	Category string  `json:"category"`
}

// Presets is the built-in habit catalog shown on first run.
var Presets = []Preset{
	{Name: "Morning Run", Type: TypeMeasurable, Unit: "km", Target: 3, Category: "Fitness"},
	{Name: "Workout Session", Type: TypeMeasurable, Unit: "minutes", Target: 30, Category: "Fitness"},
	{Name: "Yoga/Stretching", Type: TypeMeasurable, Unit: "minutes", Target: 15, Category: "Fitness"},
	{Name: "Drink Water", Type: TypeMeasurable, Unit: "glasses", Target: 8, Category: "Health"},
	{Name: "Take Vitamins", Type: TypeBoolean, Category: "Health"},
	{Name: "No Sugar", Type: TypeBoolean, Category: "Nutrition"},
	{Name: "No Nicotine", Type: TypeBoolean, Category: "Nutrition"},
	{Name: "No Alcohol", Type: TypeBoolean, Category: "Nutrition"},
	{Name: "Eat Vegetables", Type: TypeMeasurable, Unit: "servings", Target: 3, Category: "Nutrition"},
	{Name: "Reading", Type: TypeMeasurable, Unit: "minutes", Target: 20, Category: "Learning"},
	{Name: "Study/Learn", Type: TypeMeasurable, Unit: "minutes", Target: 30, Category: "Learning"},
	{Name: "Meditation", Type: TypeMeasurable, Unit: "minutes", Target: 10, Category: "Mindfulness"},
	{Name: "Journal", Type: TypeBoolean, Category: "Mindfulness"},
	{Name: "Practice Gratitude", Type: TypeBoolean, Category: "Mindfulness"},
	{Name: "Sleep 8 Hours", Type: TypeBoolean, Category: "Sleep"},
	{Name: "No Screen Before Bed", Type: TypeBoolean, Category: "Sleep"},
}
