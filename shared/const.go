package shared

const (
	UserID   = "user_id"
	UserRole = "user_role"
	Username = "username"

	RoleStudent = "student"
	RoleParent  = "parent"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"

	BadgeBronze   = "bronze"
	BadgeSilver   = "silver"
	BadgeGold     = "gold"
	BadgePlatinum = "platinum"

	ContentStatusDraft     = "draft"
	ContentStatusPublished = "published"
	ContentStatusArchived  = "archived"

	GameCategoryQuiz     = "quiz"
	GameCategoryWordGame = "word-game"
	GameCategoryPuzzle   = "puzzle"
	GameCategoryMemory   = "memory"

	EventGameStart    = "game_start"
	EventGameComplete = "game_complete"
	EventFilmView     = "film_view"

	// A submitted score above this marks the game completed.
	CompletionScoreThreshold = 70
)

func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleParent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}
