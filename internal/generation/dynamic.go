package generation

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/codebot/internal/domain"
)

// The per-intent dynamic generators. Each runs its own keyword-priority
// chain and ends in a generic fallback sentence.

func (g *Generator) timeResponse() string {
	return fmt.Sprintf("The current time is %s. Is there anything else I can help you with?",
		g.currentTime())
}

func (g *Generator) techResponse(input string) string {
	switch {
	case strings.Contains(input, "java"):
		return "Java is a fantastic programming language! It's object-oriented, platform-independent, and " +
			"widely used for enterprise applications. Are you learning Java programming?"
	case strings.Contains(input, "ai"), strings.Contains(input, "artificial intelligence"):
		return "Artificial Intelligence is fascinating! I'm a simple example of AI using pattern matching and " +
			"rule-based responses. AI can be used for many things like chatbots, recommendation systems, and automation."
	case strings.Contains(input, "programming"), strings.Contains(input, "code"):
		return "Programming is an amazing skill! It allows you to create software, solve problems, and bring " +
			"ideas to life. What programming languages are you interested in?"
	}
	return "Technology is constantly evolving! Whether it's programming, AI, web development, or mobile apps, " +
		"there's always something new to learn. What aspect of technology interests you most?"
}

func (g *Generator) educationResponse(input string) string {
	switch {
	case strings.Contains(input, "study"), strings.Contains(input, "learning"):
		return "Learning is a lifelong journey! Whether you're studying programming, mathematics, science, or " +
			"any other subject, consistency and practice are key. What are you currently studying?"
	case strings.Contains(input, "school"), strings.Contains(input, "university"):
		return "Education opens doors to new opportunities! It's great that you're focused on learning. " +
			"Remember, the most important thing is to stay curious and keep asking questions."
	}
	return "Education is the foundation of personal growth. Whether formal or self-directed learning, " +
		"every bit of knowledge you gain makes you more capable. What would you like to learn about?"
}

func (g *Generator) personalResponse(sentiment domain.SentimentScore) string {
	switch {
	case sentiment.Positive > 0.6:
		return "That's wonderful to hear! I'm glad you're feeling positive. " +
			"It's always great when people share good news or positive thoughts."
	case sentiment.Negative > 0.6:
		return "I'm sorry to hear that you're going through a tough time. " +
			"Remember that challenges are temporary, and talking about them can help. " +
			"Is there anything specific I can help you with?"
	}
	return "I appreciate you sharing that with me. Everyone has their own unique experiences and perspectives. " +
		"Feel free to tell me more if you'd like to chat about it!"
}

func (g *Generator) questionResponse(input string) string {
	switch {
	case strings.Contains(input, "what") && strings.Contains(input, "time"):
		return fmt.Sprintf("The current time is %s.", g.currentTime())
	case strings.Contains(input, "how") && strings.Contains(input, "are you"):
		return "I'm doing well, thank you for asking! I'm here and ready to chat. How are you doing today?"
	case strings.Contains(input, "why"):
		return "That's a thoughtful question! The 'why' behind things often reveals deeper understanding. " +
			"Could you provide more context so I can give you a better answer?"
	case strings.Contains(input, "how"):
		return "Great question! The 'how' of things is often just as important as the 'what'. " +
			"Let me know more details and I'll do my best to help explain!"
	}
	return "That's an interesting question! I'll do my best to help. Could you provide a bit more " +
		"context or be more specific about what you'd like to know?"
}
