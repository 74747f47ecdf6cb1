package domain

import (
	"regexp"
	"strings"
)

const (
	ProjectTypeFullstack = "fullstack"
	ProjectTypeFrontend  = "frontend"
	ProjectTypeBackend   = "backend"
)

const (
	TimelineWeekend = "weekend"
	Timeline1Week   = "1week"
	Timeline2Weeks  = "2weeks"
	Timeline1Month  = "1month"
	Timeline3Months = "3months"
	TimelineOpen    = "open"
)

const defaultTimelineDays = 7

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
	DifficultyExpert       = "expert"
)

const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDatabase = "database"
	CategoryTools    = "tools"
)

const (
	DefaultTitle              = "Untitled Project"
	DefaultDescription        = "No description provided"
	DefaultDeploymentPlatform = "github"
	DefaultRepoName           = "my-project"
	DefaultGitHubUsername     = "yourusername"
)

var (
	ProjectTypes = []string{ProjectTypeFullstack, ProjectTypeFrontend, ProjectTypeBackend}
	Timelines    = []string{TimelineWeekend, Timeline1Week, Timeline2Weeks, Timeline1Month, Timeline3Months, TimelineOpen}
	Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert}
)

var timelineDays = map[string]int{
	TimelineWeekend: 3,
	Timeline1Week:   7,
	Timeline2Weeks:  14,
	Timeline1Month:  30,
	Timeline3Months: 90,
	TimelineOpen:    0,
}

// TimelineDays maps a timeline value to its day count. "open" is 0; unknown values fall back to a week.
func TimelineDays(timeline string) int {
	if d, ok := timelineDays[timeline]; ok {
		return d
	}
	return defaultTimelineDays
}

var repoNameStrip = regexp.MustCompile(`[^a-z0-9_-]`)

// SanitizeRepoName lower-cases name, maps spaces to hyphens and drops anything
// outside [a-z0-9_-]. An empty result becomes DefaultRepoName.
func SanitizeRepoName(name string) string {
	s := strings.ReplaceAll(strings.ToLower(name), " ", "-")
	s = repoNameStrip.ReplaceAllString(s, "")
	if s == "" {
		return DefaultRepoName
	}
	return s
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
