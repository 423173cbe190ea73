package service

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/codebot/internal/knowledge"
	"github.com/alexanderramin/codebot/internal/repository"
)

type knowledgeService struct {
	patterns repository.PatternRepo
}

// NewKnowledgeService creates a KnowledgeService over the pattern store.
func NewKnowledgeService(patterns repository.PatternRepo) KnowledgeService {
	return &knowledgeService{patterns: patterns}
}

func (s *knowledgeService) Entries(ctx context.Context) ([]knowledge.Entry, error) {
	return s.patterns.List(ctx)
}

func (s *knowledgeService) Add(ctx context.Context, key, response string) error {
	mem := knowledge.New()
	mem.Put(key, response)
	if mem.Len() == 0 {
		return fmt.Errorf("key and response must be non-empty")
	}
	return s.patterns.Upsert(ctx, mem.Snapshot())
}

func (s *knowledgeService) Remove(ctx context.Context, key string) error {
	return s.patterns.Delete(ctx, key)
}

func (s *knowledgeService) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening knowledge base: %w", err)
	}
	defer f.Close()

	mem := knowledge.New()
	if err := mem.Load(f); err != nil {
		return 0, err
	}
	entries := mem.Snapshot()
	if len(entries) == 0 {
		return 0, nil
	}
	if err := s.patterns.Upsert(ctx, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *knowledgeService) Seed(ctx context.Context) (*knowledge.PatternMemory, error) {
	mem := knowledge.NewWithDefaults()
	entries, err := s.patterns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("seeding pattern memory: %w", err)
	}
	for _, e := range entries {
		mem.Put(e.Key, e.Response)
	}
	return mem, nil
}
