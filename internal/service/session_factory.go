package service

import (
	"context"

	"github.com/alexanderramin/codebot/internal/session"
)

type sessionFactory struct {
	botName   string
	knowledge KnowledgeService
	observer  session.TurnObserver
}

// NewSessionFactory creates a SessionFactory. Sessions it builds use the
// given bot name, seed their pattern memory through the knowledge service,
// and report turn telemetry to the observer (nil for none).
func NewSessionFactory(botName string, knowledgeSvc KnowledgeService, observer session.TurnObserver) SessionFactory {
	return &sessionFactory{botName: botName, knowledge: knowledgeSvc, observer: observer}
}

func (f *sessionFactory) NewSession(ctx context.Context) (*session.Session, error) {
	mem, err := f.knowledge.Seed(ctx)
	if err != nil {
		return nil, err
	}
	return session.New(session.Config{
		BotName:  f.botName,
		Memory:   mem,
		Observer: f.observer,
	}), nil
}
