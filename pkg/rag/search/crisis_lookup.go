package search

import (
	"context"
	"sort"
	"strings"

	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/pkg/logger"
	"mind-nest-be/internal/repository/contract"
	"mind-nest-be/internal/repository/memory"
	"mind-nest-be/internal/repository/specification"
	"mind-nest-be/pkg/rag/language"
)

// Substrings of available_hours that mark a round-the-clock service.
var aroundTheClockMarkers = []string{"24/7", "24 ชั่วโมง"}

type CrisisLookup struct {
	repo   contract.CrisisResourceRepository
	cache  *memory.CrisisResourceCache
	logger logger.ILogger
}

type LookupOption func(*CrisisLookup)

// WithCache serves repeated languages from memory instead of the store.
func WithCache(cache *memory.CrisisResourceCache) LookupOption {
	return func(l *CrisisLookup) {
		l.cache = cache
	}
}

func NewCrisisLookup(repo contract.CrisisResourceRepository, log logger.ILogger, opts ...LookupOption) *CrisisLookup {
	if log == nil {
		log = logger.NewNopLogger()
	}
	l := &CrisisLookup{repo: repo, logger: log}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lookup fetches the resources of one language, around-the-clock services first.
func (l *CrisisLookup) Lookup(ctx context.Context, lang language.Code) []*entity.CrisisResource {
	if l.cache != nil {
		if cached, ok := l.cache.Get(lang.String()); ok {
			return cached
		}
	}

	resources, err := l.repo.FindAll(ctx, specification.ByLanguage{Language: lang.String()})
	if err != nil {
		l.logger.Error("CRISIS", "Crisis resource lookup failed", map[string]interface{}{
			"error":    err.Error(),
			"language": lang.String(),
		})
		return []*entity.CrisisResource{}
	}
	SortAroundTheClockFirst(resources)
	// Empty results are not cached so a freshly seeded table shows up at once.
	if l.cache != nil && len(resources) > 0 {
		l.cache.Set(lang.String(), resources)
	}
	return resources
}

func IsAroundTheClock(hours string) bool {
	lowered := strings.ToLower(hours)
	for _, marker := range aroundTheClockMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// SortAroundTheClockFirst is stable: ties keep their retrieval order.
func SortAroundTheClockFirst(resources []*entity.CrisisResource) {
	sort.SliceStable(resources, func(i, j int) bool {
		return IsAroundTheClock(resources[i].AvailableHours) && !IsAroundTheClock(resources[j].AvailableHours)
	})
}
