package mission

// Difficulty is the letter grade the model is asked to assign.
type Difficulty string

const (
	DifficultySuper        Difficulty = "S"
	DifficultyAdvanced     Difficulty = "A"
	DifficultyAboveAverage Difficulty = "B"
	DifficultyModerate     Difficulty = "C"
	DifficultyEasy         Difficulty = "D"
	DifficultyVeryEasy     Difficulty = "E"
	DifficultyFree         Difficulty = "F"
	DifficultyTrivial      Difficulty = "Z"
)

// Grade pairs a Difficulty with its label.
type Grade struct {
	Difficulty Difficulty
	Label      string
}

// Scale lists the difficulty grades from hardest to easiest.
var Scale = []Grade{
	{DifficultySuper, "Super"},
	{DifficultyAdvanced, "Advanced"},
	{DifficultyAboveAverage, "Above Average"},
	{DifficultyModerate, "Moderate"},
	{DifficultyEasy, "Easy/Beginner"},
	{DifficultyVeryEasy, "Very Easy"},
	{DifficultyFree, "Free"},
	{DifficultyTrivial, "Zero/Trivial"},
}
