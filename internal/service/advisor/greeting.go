package advisor

import "strings"

// Canned replies returned without touching the backend.
const (
	ReplyIntro = "Hi! I'm Smart Match. Tell me about your daily life — commute, family, weekends, budget — and I'll find the vehicles that fit it best."

	ReplyUnavailable = "The recommendation service is unavailable right now. Please try again in a moment."

	ReplyApology = "Sorry, I couldn't fetch recommendations right now. Please try again."

	ReplyNoStrongMatch = "I couldn't find a strong match yet. Tell me a bit more about how you'd use the vehicle."
)

var greetingExact = []string{"hi", "hello", "hey"}

var greetingPrefixes = []string{"who are you", "what can you do"}

// isGreeting reports whether the input is small talk that should be answered
// locally instead of being sent to the recommender.
func isGreeting(input string) bool {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, g := range greetingExact {
		if lower == g {
			return true
		}
	}
	for _, p := range greetingPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}
