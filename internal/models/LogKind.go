package models

import (
	"fmt"
	"strings"
)

type LogKind string

const (
	KindSleep    LogKind = "sleep"
	KindActivity LogKind = "activity"
)

func ParseKind(s string) (LogKind, error) {
	switch LogKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindSleep:
		return KindSleep, nil
	case KindActivity:
		return KindActivity, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

func (k LogKind) String() string {
	return string(k)
}
