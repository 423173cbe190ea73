package domain

// Intent is the coarse conversational purpose assigned to one user utterance.
type Intent string

const (
	IntentGreeting      Intent = "GREETING"
	IntentFarewell      Intent = "FAREWELL"
	IntentQuestion      Intent = "QUESTION"
	IntentHelp          Intent = "HELP"
	IntentPersonal      Intent = "PERSONAL"
	IntentTime          Intent = "TIME"
	IntentWeather       Intent = "WEATHER"
	IntentTechnology    Intent = "TECHNOLOGY"
	IntentEducation     Intent = "EDUCATION"
	IntentEntertainment Intent = "ENTERTAINMENT"
	IntentUnknown       Intent = "UNKNOWN"
)

// AllIntents is the closed set of intents in canonical order. Topic
// frequency tables are initialized from this list so every intent has a
// zero entry from the first turn.
var AllIntents = []Intent{
	IntentGreeting,
	IntentFarewell,
	IntentQuestion,
	IntentHelp,
	IntentPersonal,
	IntentTime,
	IntentWeather,
	IntentTechnology,
	IntentEducation,
	IntentEntertainment,
	IntentUnknown,
}

// IsValidIntent reports whether s names a member of the closed intent set.
func IsValidIntent(s string) bool {
	for _, i := range AllIntents {
		if string(i) == s {
			return true
		}
	}
	return false
}

// Speaker identifies which side of the conversation produced a turn.
type Speaker string

const (
	SpeakerUser Speaker = "USER"
	SpeakerBot  Speaker = "BOT"
)
