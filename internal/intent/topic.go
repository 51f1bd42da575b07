package intent

// Topic is a canned response category the matcher can resolve an utterance to.
type Topic string

const (
	TopicGreeting    Topic = "greeting"
	TopicDiet        Topic = "diet"
	TopicPreparation Topic = "preparation"
	TopicAftercare   Topic = "aftercare"
	TopicLifestyle   Topic = "lifestyle"
	TopicWellness    Topic = "wellness"
	TopicRoutine     Topic = "routine"
	TopicFallback    Topic = "fallback"
)

// Topics lists every topic in a stable order.
func Topics() []Topic {
	return []Topic{
		TopicGreeting,
		TopicDiet,
		TopicPreparation,
		TopicAftercare,
		TopicLifestyle,
		TopicWellness,
		TopicRoutine,
		TopicFallback,
	}
}

// Payload is the fixed response for a topic: the assistant's reply text plus
// follow-up suggestions the widget renders as quick-reply chips.
type Payload struct {
	Topic       Topic
	Text        string
	Suggestions []string
}

// payloads maps every topic to its fixed response. The table is total over
// the Topic enumeration; Respond can never miss.
var payloads = map[Topic]Payload{
	TopicGreeting: {
		Topic: TopicGreeting,
		Text: `Namaste! I'm your AyurSutra wellness assistant. I can help you with Panchakarma preparation, dosha-friendly diet guidance, post-treatment care and your daily routine. How can I support your healing journey today?`,
		Suggestions: []string{
			"What should I eat for my dosha?",
			"How do I prepare before my session?",
			"Post-treatment care tips",
		},
	},

	TopicDiet: {
		Topic: TopicDiet,
		Text: `During Panchakarma, favor warm, freshly cooked and easily digestible food. Kitchari (rice and mung dal) is the classic cleansing staple. Avoid cold drinks, raw salads, fried food and leftovers, and sip warm water through the day.

Your practitioner will fine-tune this to your dosha: Vata benefits from grounding, oily foods; Pitta from cooling, mildly spiced meals; Kapha from light, warming dishes.`,
		Suggestions: []string{
			"Foods to avoid during treatment",
			"What is kitchari?",
			"Tell me about my daily routine",
		},
	},

	TopicPreparation: {
		Topic: TopicPreparation,
		Text: `Before your session: eat only a light meal at least two hours beforehand, stay well hydrated with warm water, and avoid caffeine and strenuous exercise on the day. Arrive 15 minutes early so you can settle in, and wear comfortable clothing you don't mind getting oil on.

If your plan includes internal oleation (snehapana), follow the ghee schedule your practitioner gave you exactly.`,
		Suggestions: []string{
			"What happens during Abhyanga?",
			"Care after my treatment",
			"What should I eat beforehand?",
		},
	},

	TopicAftercare: {
		Topic: TopicAftercare,
		Text: `After treatment, rest is part of the therapy. Keep warm, avoid cold drafts and cold drinks, and skip strenuous activity for the rest of the day. Eat light, warm meals and go to bed early.

Some tiredness or mild emotional release is normal as toxins clear. If anything feels wrong, message your practitioner through the app.`,
		Suggestions: []string{
			"Is tiredness after treatment normal?",
			"What can I eat tonight?",
			"When is my next session?",
		},
	},

	TopicLifestyle: {
		Topic: TopicLifestyle,
		Text: `Ayurveda places daily rhythm (dinacharya) at the heart of healing. Aim for a consistent sleep schedule, meals at regular times with lunch as the main meal, gentle movement like walking or yoga, and a wind-down hour without screens before bed.

Small, steady habits support your treatment far more than occasional big efforts.`,
		Suggestions: []string{
			"Help me build a daily routine",
			"Tips for better sleep",
			"Managing stress",
		},
	},

	TopicWellness: {
		Topic: TopicWellness,
		Text: `For stress and anxious feelings, try this now: sit comfortably and take ten slow breaths, letting the exhale run longer than the inhale (anuloma viloma works beautifully). A warm oil self-massage before your shower and an earlier bedtime both calm the nervous system.

If stress is affecting your daily life, mention it at your next session; Shirodhara is often recommended specifically for this.`,
		Suggestions: []string{
			"Breathing exercises",
			"What is Shirodhara?",
			"Better sleep tips",
		},
	},

	TopicRoutine: {
		Topic: TopicRoutine,
		Text: `A simple Ayurvedic daily schedule: wake before sunrise, scrape the tongue and drink warm water, do gentle yoga or a short walk, then breakfast. Make lunch your largest meal around midday, keep dinner light and early, and be in bed by 10pm.

Consistency matters more than perfection; pick one anchor (like a fixed wake time) and build from there.`,
		Suggestions: []string{
			"Morning routine details",
			"Diet recommendations",
			"Tips for winding down at night",
		},
	},

	TopicFallback: {
		Topic: TopicFallback,
		Text: `I'm not sure I caught that. I can help with diet guidance, preparing for your sessions, post-treatment care, daily routine and stress management. You can also reach your practitioner directly from the schedule screen.`,
		Suggestions: []string{
			"What should I eat for my dosha?",
			"How do I prepare before my session?",
			"Managing stress",
		},
	},
}

// Respond returns the fixed payload for a topic. The lookup is total over the
// enumeration; unknown values resolve to the fallback payload so the caller
// always has something to render.
func Respond(topic Topic) Payload {
	if p, ok := payloads[topic]; ok {
		return p
	}
	return payloads[TopicFallback]
}

// Payloads returns a copy of the full response table for introspection.
func Payloads() map[Topic]Payload {
	out := make(map[Topic]Payload, len(payloads))
	for topic, p := range payloads {
		out[topic] = p
	}
	return out
}
