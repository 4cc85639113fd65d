package routes

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/kofiantwi/airroutes/internal/detail"
	"github.com/kofiantwi/airroutes/internal/domain"
	"github.com/kofiantwi/airroutes/internal/kafka"
	"github.com/kofiantwi/airroutes/internal/search"
)

type RouteUseCase interface {
	Search(ctx context.Context, input SearchInput) (*domain.RoutePlan, error)
}

// Directory bundles the pre-indexed airport, route and airline lookups the
// search pipeline queries. dataset.Index satisfies it.
type Directory interface {
	CodeFor(city, country string) (domain.AirportCode, error)
	CoordinateOf(code domain.AirportCode) (domain.Coordinate, bool)
	ForwardNeighbors(code domain.AirportCode) []domain.AirportCode
	BackwardNeighbors(code domain.AirportCode) []domain.AirportCode
	EdgesBetween(from, to domain.AirportCode) []domain.RouteEdge
	ActiveLabel(airlineID int) (iata, icao string, ok bool)
}

type Cache interface {
	GetPlan(ctx context.Context, from, to domain.AirportCode, all bool) (*domain.RoutePlan, error)
	SetPlan(ctx context.Context, plan *domain.RoutePlan, all bool) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type SearchInput struct {
	FromCity    string `json:"from_city"`
	FromCountry string `json:"from_country"`
	ToCity      string `json:"to_city"`
	ToCountry   string `json:"to_country"`
	All         bool   `json:"all"`
}

type RouteService struct {
	dir         Directory
	finder      *search.Finder
	selector    *search.Selector
	resolver    *detail.Resolver
	cache       Cache
	producer    Producer
	searchTopic string
}

type RouteServiceOption func(*routeServiceConfig)

type routeServiceConfig struct {
	maxDepth int
	rng      *rand.Rand
}

func WithMaxDepth(depth int) RouteServiceOption {
	return func(c *routeServiceConfig) {
		c.maxDepth = depth
	}
}

// WithRand fixes the randomness source used for carrier selection.
func WithRand(rng *rand.Rand) RouteServiceOption {
	return func(c *routeServiceConfig) {
		c.rng = rng
	}
}

// NewRouteService wires the search pipeline over dir. cache and producer may
// be nil; caching and event publishing are then skipped.
func NewRouteService(
	dir Directory,
	cache Cache,
	producer Producer,
	searchTopic string,
	opts ...RouteServiceOption,
) *RouteService {
	cfg := routeServiceConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RouteService{
		dir:         dir,
		finder:      search.NewFinder(dir, cfg.maxDepth),
		selector:    search.NewSelector(dir),
		resolver:    detail.NewResolver(dir, dir, cfg.rng),
		cache:       cache,
		producer:    producer,
		searchTopic: searchTopic,
	}
}

// Search resolves both places, finds every minimum-hop path, picks the one
// with smallest total distance, and resolves a carrier label and stop count
// for each segment of every reported path.
func (s *RouteService) Search(ctx context.Context, input SearchInput) (*domain.RoutePlan, error) {
	from, err := s.dir.CodeFor(input.FromCity, input.FromCountry)
	if err != nil {
		return nil, err
	}
	to, err := s.dir.CodeFor(input.ToCity, input.ToCountry)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.GetPlan(ctx, from, to, input.All); err == nil && cached != nil {
			return cached, nil
		}
	}

	candidates, err := s.finder.Find(from, to)
	if err != nil {
		return nil, err
	}

	optimal, distance, err := s.selector.Pick(candidates)
	if err != nil {
		return nil, err
	}

	plan := &domain.RoutePlan{
		From:       from,
		To:         to,
		DistanceKM: distance,
	}
	plan.Optimal, err = s.summarize(optimal)
	if err != nil {
		return nil, err
	}
	if input.All {
		plan.All = make([]domain.RouteSummary, 0, len(candidates))
		for _, path := range candidates {
			summary, err := s.summarize(path)
			if err != nil {
				return nil, err
			}
			plan.All = append(plan.All, summary)
		}
	}

	if s.cache != nil {
		_ = s.cache.SetPlan(ctx, plan, input.All)
	}
	s.publish(ctx, plan, input.All)

	return plan, nil
}

// summarize resolves per-segment details for one path.
func (s *RouteService) summarize(path domain.Path) (domain.RouteSummary, error) {
	summary := domain.RouteSummary{
		Path:    path,
		Flights: path.Flights(),
	}
	for i := 0; i+1 < len(path); i++ {
		segment, err := s.resolver.Resolve(path[i], path[i+1])
		if err != nil {
			return domain.RouteSummary{}, err
		}
		summary.Segments = append(summary.Segments, segment)
		summary.ExtraStops += segment.Stops
	}
	return summary, nil
}

// publish emits a search event, best effort.
func (s *RouteService) publish(ctx context.Context, plan *domain.RoutePlan, all bool) {
	if s.producer == nil || s.searchTopic == "" {
		return
	}
	event := kafka.SearchEvent{
		ID:         uuid.NewString(),
		FromCode:   string(plan.From),
		ToCode:     string(plan.To),
		Flights:    plan.Optimal.Flights,
		DistanceKM: plan.DistanceKM,
		All:        all,
		At:         time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.searchTopic, event.FromCode+":"+event.ToCode, event); err != nil {
		log.Printf("publish search event: %v", err)
	}
}

var _ RouteUseCase = (*RouteService)(nil)
