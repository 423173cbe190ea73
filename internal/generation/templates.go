package generation

import "github.com/alexanderramin/codebot/internal/domain"

// responseTemplates maps each intent to its fixed, ordered template list.
// Templates may contain {name}, {time}, and {turn} placeholders. Loaded at
// startup, never mutated.
var responseTemplates = map[domain.Intent][]string{
	domain.IntentGreeting: {
		"Hello! How can I help you today?",
		"Hi there! Nice to meet you!",
		"Greetings! I'm {name}, your AI assistant.",
		"Hey! What's on your mind?",
		"Good to see you! How are you doing?",
		"Welcome! I'm here to chat and help.",
	},
	domain.IntentFarewell: {
		"Goodbye! It was great chatting with you!",
		"See you later! Have a wonderful day!",
		"Take care! Feel free to come back anytime!",
		"Farewell! Hope to chat with you again soon!",
		"Bye! Thanks for the conversation!",
		"Until next time! Stay awesome!",
	},
	domain.IntentQuestion: {
		"That's a great question! Let me think about that.",
		"Interesting question! I'll do my best to help.",
		"Good question! Could you be more specific?",
		"I'd be happy to help answer that!",
		"Let me see what I can tell you about that.",
		"That's something worth exploring!",
	},
	domain.IntentHelp: {
		"I'm here to help! What do you need assistance with?",
		"Of course! I'd be glad to help you out.",
		"No problem! Tell me what you need help with.",
		"I'm ready to assist you! What's the issue?",
		"Help is on the way! What can I do for you?",
		"Absolutely! I'm here to support you.",
	},
	domain.IntentPersonal: {
		"Thank you for sharing that with me!",
		"I appreciate you telling me about yourself.",
		"That's interesting! Tell me more.",
		"I enjoy getting to know you better.",
		"Thanks for opening up! I'm here to listen.",
		"It's nice to learn more about you!",
	},
	domain.IntentTechnology: {
		"Technology is fascinating! What aspect interests you?",
		"I love discussing tech topics! Tell me more.",
		"Technology is constantly evolving. What's your focus?",
		"Great topic! I enjoy talking about technology.",
		"Tech is amazing! What would you like to explore?",
		"Technology opens up so many possibilities!",
	},
	domain.IntentEducation: {
		"Learning is wonderful! What are you studying?",
		"Education is so important! Tell me more about your studies.",
		"I love discussing educational topics!",
		"Knowledge is power! What subject interests you?",
		"Learning never stops! What would you like to explore?",
		"Education opens doors to amazing opportunities!",
	},
	domain.IntentTime: {
		"Let me check the current time for you.",
		"Time flies! Let me get that information.",
		"Sure! I can tell you the current time.",
		"Of course! Here's the time information you requested.",
	},
	domain.IntentWeather: {
		"I'd love to help with weather info, but I don't have access to current weather data.",
		"For accurate weather information, I'd recommend checking a weather app or website.",
		"Weather can change quickly! Check your local weather service for updates.",
		"I wish I could give you weather updates, but I don't have that capability yet.",
	},
	domain.IntentEntertainment: {
		"Entertainment is great for relaxation! What do you enjoy?",
		"I love talking about fun stuff! What entertains you?",
		"Entertainment comes in so many forms! Tell me your favorites.",
		"Fun topic! What kind of entertainment do you prefer?",
		"Everyone needs some entertainment! What's your go-to?",
	},
	domain.IntentUnknown: {
		"I'm not quite sure I understand. Could you rephrase that?",
		"That's interesting! Could you tell me more about what you mean?",
		"I'd like to help, but I need more context. Can you explain further?",
		"Hmm, I'm not following. Could you be more specific?",
		"I want to give you a good response, but I need more information.",
		"Could you help me understand what you're looking for?",
		"I'm here to chat! What would you like to talk about?",
		"Let's explore that topic together! Tell me more.",
	},
}

// templatesFor returns the template list for an intent, falling back to the
// UNKNOWN list if the intent has no entry. The fallback keeps a turn from
// ever failing on a missing list.
func templatesFor(intent domain.Intent) []string {
	if templates, ok := responseTemplates[intent]; ok && len(templates) > 0 {
		return templates
	}
	return responseTemplates[domain.IntentUnknown]
}
