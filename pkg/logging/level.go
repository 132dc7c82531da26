package logging

import (
	"strings"

	"github.com/adamluzsi/strsplit/pkg/errorkit"
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

const ErrInvalidLevel errorkit.Error = "ErrInvalidLevel"

type Level string

func (ll Level) String() string { return string(ll) }

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,

	*new(Level): 1, // zero Level value is considered as LevelInfo
}

func isLevelEnabled(target, level Level) bool {
	return levelPriorityMapping[target] <= levelPriorityMapping[level]
}

var shortLevels = map[string]Level{
	"d": LevelDebug,
	"i": LevelInfo,
	"w": LevelWarn,
	"e": LevelError,
}

// ParseLevel accepts the level names and their first letter, case insensitive.
func ParseLevel(raw string) (Level, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if level, ok := shortLevels[raw]; ok {
		return level, nil
	}
	level := Level(raw)
	if _, ok := levelPriorityMapping[level]; !ok || level == "" {
		return "", ErrInvalidLevel.F("unknown logging level: %q", raw)
	}
	return level, nil
}
