package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-planner/internal/dataset"
	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

// Blend weights. They sum to 1.0: model score and travel-type affinity
// dominate, the budget match nudges.
const (
	modelWeight    = 0.4
	affinityWeight = 0.4
	budgetWeight   = 0.2
)

// missingAffinitySignal is slightly pessimistic on purpose: it marks "no
// matching affinity dimension found", which is weaker evidence than a
// genuinely absent-but-expected column (0.5).
const missingAffinitySignal = 0.3

const defaultTopN = 5

// budgetOrdinals maps budget labels onto the numeric tiers some datasets
// use instead of text labels.
var budgetOrdinals = map[string]float64{"low": 1, "medium": 2, "high": 3}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for destination ranking.
type Service interface {
	Recommend(ctx context.Context, travelType, budgetLevel string, topN int) ([]types.RankedDestination, error)
}

// ServiceImpl scores and ranks the city table. The table is injected,
// immutable, and shared; every pass works on derived slices.
type ServiceImpl struct {
	logger *slog.Logger
	table  *dataset.CityTable
	cache  *cache.Cache
}

// NewService creates a new recommendation service instance.
func NewService(table *dataset.CityTable, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		table:  table,
		cache:  cache.New(10*time.Minute, 30*time.Minute),
	}
}

type scoredRow struct {
	record *types.CityRecord
	score  float64
}

// Recommend returns the top-N destinations for a travel type and budget
// label. Empty inputs fail with a ValidationError; every other fault
// degrades along the fallback ladder, so a non-empty table always yields a
// non-empty result.
func (s *ServiceImpl) Recommend(ctx context.Context, travelType, budgetLevel string, topN int) ([]types.RankedDestination, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "Recommend", trace.WithAttributes(
		attribute.String("travel.type", travelType),
		attribute.String("budget.level", budgetLevel),
		attribute.Int("top.n", topN),
	))
	defer span.End()

	travelType = strings.ToLower(strings.TrimSpace(travelType))
	budgetLevel = strings.ToLower(strings.TrimSpace(budgetLevel))
	if topN <= 0 {
		topN = defaultTopN
	}

	l := s.logger.With(
		slog.String("method", "Recommend"),
		slog.String("travel_type", travelType),
		slog.String("budget_level", budgetLevel),
		slog.Int("top_n", topN),
	)
	l.DebugContext(ctx, "Computing destination recommendations")

	if travelType == "" {
		span.SetStatus(codes.Error, "Missing travel type")
		return nil, types.NewValidationError("travel_type", "travel type is required")
	}
	if budgetLevel == "" {
		span.SetStatus(codes.Error, "Missing budget level")
		return nil, types.NewValidationError("budget_level", "budget level is required")
	}

	// The only empty result: an entirely empty backing table.
	if s.table.Len() == 0 {
		l.WarnContext(ctx, "City table is empty, no recommendations possible")
		span.SetStatus(codes.Ok, "Empty table")
		return []types.RankedDestination{}, nil
	}

	cacheKey := fmt.Sprintf("%s|%s|%d", travelType, budgetLevel, topN)
	if cached, found := s.cache.Get(cacheKey); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.([]types.RankedDestination), nil
	}

	var results []types.RankedDestination
	ranked, err := s.scoredRanking(travelType, budgetLevel, topN)
	switch {
	case err == nil && len(ranked) > 0:
		results = s.annotate(ranked, travelType, true)
	case s.table.HasModelScore:
		// Scoring failed or produced nothing: rank by the raw model score.
		if err != nil {
			l.WarnContext(ctx, "Scoring failed, ranking by raw model score", slog.Any("error", err))
			span.RecordError(err)
		}
		results = s.annotate(s.rankByModelScore(topN), travelType, false)
	default:
		// No model score column either: random sample at a neutral score.
		if err != nil {
			l.WarnContext(ctx, "Scoring failed and no model score column, sampling", slog.Any("error", err))
			span.RecordError(err)
		}
		results = s.annotate(s.randomSample(topN), travelType, false)
	}

	s.cache.Set(cacheKey, results, cache.DefaultExpiration)
	l.InfoContext(ctx, "Recommendations computed", slog.Int("count", len(results)))
	span.SetStatus(codes.Ok, "Recommendations computed")
	return results, nil
}

// scoredRanking is the normal path: blend the three signals, sort, dedup,
// truncate.
func (s *ServiceImpl) scoredRanking(travelType, budgetLevel string, topN int) ([]scoredRow, error) {
	rows, err := s.blendScores(travelType, budgetLevel)
	if err != nil {
		return nil, err
	}
	return s.rank(rows, topN), nil
}

// blendScores gives every row a final score: a convex combination of the
// normalized model score, the normalized travel-type affinity, and the
// budget match.
func (s *ServiceImpl) blendScores(travelType, budgetLevel string) ([]scoredRow, error) {
	t := s.table
	if !t.HasCity || !t.HasCountry {
		return nil, types.NewValidationError("dataset", "dataset must contain city and country columns")
	}
	n := t.Len()

	var modelSignal []float64
	if t.HasModelScore {
		modelSignal = minMaxNormalize(t.ModelScores())
	} else {
		modelSignal = constantColumn(n, neutralMidpoint)
	}

	var affinitySignal []float64
	if col, ok := t.ResolveAffinityColumn(travelType); ok {
		affinitySignal = minMaxNormalize(t.AffinityValues(col))
	} else {
		affinitySignal = constantColumn(n, missingAffinitySignal)
	}

	budgetSignal := s.budgetSignal(budgetLevel)

	rows := make([]scoredRow, n)
	for i := range t.Records {
		rows[i] = scoredRow{
			record: &t.Records[i],
			score:  modelWeight*modelSignal[i] + affinityWeight*affinitySignal[i] + budgetWeight*budgetSignal[i],
		}
	}
	return rows, nil
}

// budgetSignal scores each row against the requested budget label. Text
// columns match exactly (case-insensitive); numeric columns degrade
// gracefully with tier distance; a missing column is neutral.
func (s *ServiceImpl) budgetSignal(budgetLevel string) []float64 {
	t := s.table
	n := t.Len()
	if t.BudgetColumn == "" {
		return constantColumn(n, neutralMidpoint)
	}

	out := make([]float64, n)
	if !t.BudgetNumeric {
		for i := range t.Records {
			if strings.EqualFold(strings.TrimSpace(t.Records[i].BudgetLevel), budgetLevel) {
				out[i] = 1.0
			}
		}
		return out
	}

	requested, ok := budgetOrdinals[budgetLevel]
	if !ok {
		requested = budgetOrdinals["medium"]
	}
	for i := range t.Records {
		v, err := strconv.ParseFloat(strings.TrimSpace(t.Records[i].BudgetLevel), 64)
		if err != nil {
			v = budgetOrdinals["medium"]
		}
		out[i] = clamp(1-math.Abs(v-requested)/2, 0, 1)
	}
	return out
}

// rank sorts descending (stable, so ties keep table order), deduplicates
// by city+country keeping the first and therefore highest-scored
// occurrence, and truncates to topN. When the table has no country column
// at all, the city alone is the dedup key.
func (s *ServiceImpl) rank(rows []scoredRow, topN int) []scoredRow {
	sorted := make([]scoredRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].score > sorted[j].score })

	seen := make(map[string]struct{}, len(sorted))
	out := make([]scoredRow, 0, topN)
	for _, row := range sorted {
		key := row.record.City
		if s.table.HasCountry {
			key += "\x00" + row.record.Country
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
		if len(out) == topN {
			break
		}
	}
	return out
}

// rankByModelScore is fallback ladder step (b): raw model score only.
func (s *ServiceImpl) rankByModelScore(topN int) []scoredRow {
	t := s.table
	rows := make([]scoredRow, t.Len())
	for i := range t.Records {
		rows[i] = scoredRow{record: &t.Records[i], score: t.Records[i].ModelScore}
	}
	return s.rank(rows, topN)
}

// randomSample is fallback ladder step (c): up to topN random rows at a
// neutral placeholder score.
func (s *ServiceImpl) randomSample(topN int) []scoredRow {
	t := s.table
	count := topN
	if t.Len() < count {
		count = t.Len()
	}
	out := make([]scoredRow, 0, count)
	for _, i := range rand.Perm(t.Len())[:count] {
		out = append(out, scoredRow{record: &t.Records[i], score: neutralMidpoint})
	}
	return out
}

// annotate attaches descriptions and season recommendations to the
// surviving rows. Fallback rankings skip per-region season resolution and
// use the short generic label instead.
func (s *ServiceImpl) annotate(rows []scoredRow, travelType string, resolveSeasons bool) []types.RankedDestination {
	out := make([]types.RankedDestination, 0, len(rows))
	for _, row := range rows {
		desc := row.record.ShortDescription
		if desc == "" {
			desc = descriptionFor(travelType)
		}
		ideal := "Best time: Spring and Autumn"
		if resolveSeasons {
			ideal = IdealVisitTime(row.record.Region)
		}
		out = append(out, types.RankedDestination{
			City:        row.record.City,
			Country:     row.record.Country,
			FinalScore:  row.score,
			Description: desc,
			IdealTime:   ideal,
		})
	}
	return out
}
