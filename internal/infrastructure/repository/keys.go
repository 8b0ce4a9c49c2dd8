package repository

// Logical key layout, shared by the Redis backend and the in-memory shim.
const (
	usersSetKey     = "users:all"
	exercisesSetKey = "exercises:all"
)

func scoresKey(date string) string { return "scores:" + date }

func historyKey(participant string) string { return "history:" + participant }

func exerciseLogKey(participant string) string { return "exercises:" + participant }

func exerciseKey(date string) string { return "exercise:" + date }

func profileKey(participant string) string { return "profile:" + participant }

func emailIndexKey(email string) string { return "user:email:" + email }
