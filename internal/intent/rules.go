package intent

// Rule is one tier of the keyword cascade: an utterance containing any of the
// keywords as a substring resolves to the topic, unless a higher-priority
// rule matched first.
type Rule struct {
	Topic    Topic
	Keywords []string
	Priority int
}

// Keyword tiers, evaluated strictly in priority order. The lifestyle tier is
// a cascade: once one of its trigger words matches, the wellness and routine
// override sets are consulted before settling on lifestyle. The wellness and
// routine keywords appear again at lower priority for utterances that never
// hit a lifestyle trigger word. The duplication is intentional; flattening it
// changes the resolution of dual-match inputs like "daily stress routine".
var (
	dietKeywords        = []string{"diet", "food", "eat", "dosha"}
	preparationKeywords = []string{"before", "preparation", "prepare", "session"}
	aftercareKeywords   = []string{"after", "post", "care", "treatment"}
	lifestyleKeywords   = []string{"sleep", "lifestyle", "daily", "routine"}
	wellnessOverrides   = []string{"stress", "anxiety", "calm"}
	routineOverrides    = []string{"routine", "schedule", "time"}
	wellnessKeywords    = []string{"stress", "anxiety", "worry", "calm"}
	routineKeywords     = []string{"routine", "schedule", "day"}
)

var rules = []Rule{
	{Topic: TopicDiet, Keywords: dietKeywords, Priority: 1},
	{Topic: TopicPreparation, Keywords: preparationKeywords, Priority: 2},
	{Topic: TopicAftercare, Keywords: aftercareKeywords, Priority: 3},
	{Topic: TopicLifestyle, Keywords: lifestyleKeywords, Priority: 4},
	{Topic: TopicWellness, Keywords: wellnessKeywords, Priority: 5},
	{Topic: TopicRoutine, Keywords: routineKeywords, Priority: 6},
}

// Rules returns a copy of the ordered rule table for introspection.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{
			Topic:    r.Topic,
			Keywords: append([]string(nil), r.Keywords...),
			Priority: r.Priority,
		}
	}
	return out
}

// CascadeOverrides returns the override keyword sets consulted inside the
// lifestyle tier, in the order they are checked.
func CascadeOverrides() (wellness, routine []string) {
	return append([]string(nil), wellnessOverrides...),
		append([]string(nil), routineOverrides...)
}
