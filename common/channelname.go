package common

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyChannelName   = errors.New("channel name cannot be empty")
	ErrInvalidChannelName = errors.New("channel name can only contain lowercase letters, numbers, and hyphens")

	channelNamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	whitespaceRun      = regexp.MustCompile(`\s+`)
)

// NormalizeChannelName lowercases the input and collapses internal
// whitespace runs to single hyphens. Unlike a slugifier it does not
// scrub other characters: a name that still contains anything outside
// [a-z0-9-] after normalization is rejected, not silently cleaned.
func NormalizeChannelName(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", ErrEmptyChannelName
	}
	name := whitespaceRun.ReplaceAllString(strings.ToLower(trimmed), "-")
	if !channelNamePattern.MatchString(name) {
		return "", ErrInvalidChannelName
	}
	return name, nil
}
