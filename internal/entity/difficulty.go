package entity

type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

// IsDeterministic reports whether the same board always yields the same move.
func (that Difficulty) IsDeterministic() bool {
	return that == MediumDifficulty || that == HardDifficulty
}
