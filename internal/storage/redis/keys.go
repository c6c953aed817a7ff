package redis

const keyPrefix = "foot4ever"

func matchKey() string {
	return keyPrefix + ":match"
}

func ratingsKey() string {
	return keyPrefix + ":ratings"
}
