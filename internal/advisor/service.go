package advisor

import (
	"context"

	logrus "github.com/sirupsen/logrus"

	"github.com/arohezay/backend/internal/aicache"
	"github.com/arohezay/backend/internal/catalog"
)

// Adviser is the generative fallback the resolver consults when the
// catalog and the cache both miss. Implementations are total: they always
// return a string, never an error.
type Adviser interface {
	Advise(ctx context.Context, fromLoc, toLoc string) string
}

// DownApology is the degenerate-path answer when the adviser somehow
// yields nothing at all. It is never written to the cache.
const DownApology = "معلش السيستم واقع، اسأل أقرب سواق."

// Service resolves free-text origin/destination queries with strict
// precedence: curated catalog routes, then cached AI answers, then a live
// AI call whose answer is persisted for next time.
type Service struct {
	catalog *catalog.Store
	cache   *aicache.Store
	chain   Adviser
}

func NewService(cat *catalog.Store, cache *aicache.Store, chain Adviser) *Service {
	return &Service{catalog: cat, cache: cache, chain: chain}
}

// Resolve answers one query. Catalog and cache faults propagate as errors;
// provider faults never do (the chain absorbs them).
func (s *Service) Resolve(ctx context.Context, fromArea, toArea string) ([]Result, error) {
	// 1) curated routes win outright; the AI path is never consulted when
	// structured data exists.
	routes, err := s.catalog.FindRoutes(ctx, fromArea, toArea)
	if err != nil {
		return nil, err
	}
	if len(routes) > 0 {
		results := make([]Result, 0, len(routes))
		for _, route := range routes {
			steps, err := s.catalog.FindSteps(ctx, route.ID)
			if err != nil {
				return nil, err
			}
			humanized := make([]string, 0, len(steps))
			for _, step := range steps {
				humanized = append(humanized, catalog.HumanizeStep(step))
			}
			results = append(results, DBResult{
				TotalPrice: route.TotalPrice,
				TotalTime:  route.TotalTime,
				Tag:        route.RouteTag,
				Steps:      humanized,
			})
		}
		return results, nil
	}

	// 2) exact-pair cache. Same spelling as a previous query hits here and
	// skips the providers entirely.
	if cached, ok, err := s.cache.Get(ctx, fromArea, toArea); err != nil {
		return nil, err
	} else if ok {
		return []Result{AIResult{Content: cached, Source: SourceCache}}, nil
	}

	// 3) live chain call; persist the answer for next time.
	msg := s.chain.Advise(ctx, fromArea, toArea)
	if msg == "" {
		// Defensive: the chain is total, but an empty answer must not be
		// cached or presented as one.
		return []Result{AIResult{Content: DownApology, Source: SourceLive}}, nil
	}

	if err := s.cache.Put(ctx, fromArea, toArea, msg); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"from": fromArea, "to": toArea}).Info("advisor: cached live answer")
	return []Result{AIResult{Content: msg, Source: SourceLive}}, nil
}

// Suggest returns catalog location names containing q. The presentation
// layer prepends the raw typed text as the first suggestion itself.
func (s *Service) Suggest(ctx context.Context, q string) ([]string, error) {
	return s.catalog.SearchLocationNames(ctx, q)
}
