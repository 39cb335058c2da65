package assistant

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

// Service answers free-form traveller questions with rule-based replies.
type Service interface {
	Reply(ctx context.Context, message string) string
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

const defaultReply = "I can help with destinations, food, transport, weather, currency conversion, and travel planning."

// replyRule routes a message to a canned answer when any keyword matches.
type replyRule struct {
	keywords []string
	reply    string
}

var replyRules = []replyRule{
	{
		keywords: []string{"destination", "place"},
		reply:    "Go to Destinations and select your travel type and budget.",
	},
	{
		keywords: []string{"food"},
		reply:    "Open the Food page to explore local cuisines.",
	},
	{
		keywords: []string{"transport"},
		reply:    "Check the Transport page for metro, bus and taxi options.",
	},
	{
		keywords: []string{"itinerary"},
		reply:    "Use the Destinations page to generate your travel itinerary.",
	},
	{
		keywords: []string{"budget"},
		reply:    "Select your budget while choosing destinations.",
	},
	{
		keywords: []string{"currency", "exchange", "convert"},
		reply:    "Use the Currency Converter page to convert between different currencies with real-time exchange rates.",
	},
	{
		keywords: []string{"weather", "climate", "temperature"},
		reply:    "Use the Weather page to check current weather conditions and forecasts for any city worldwide.",
	},
}

// Reply picks the first rule whose keyword appears in the message. Rules are
// evaluated in declaration order, so "destination" wins over "budget" when a
// message mentions both.
func (s *ServiceImpl) Reply(ctx context.Context, message string) string {
	ctx, span := otel.Tracer("AssistantService").Start(ctx, "Reply")
	defer span.End()

	l := s.logger.With(slog.String("method", "Reply"))

	lower := strings.ToLower(message)
	for _, rule := range replyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				l.DebugContext(ctx, "Matched assistant rule", slog.String("keyword", kw))
				span.SetStatus(codes.Ok, "Rule matched")
				return rule.reply
			}
		}
	}

	l.DebugContext(ctx, "No assistant rule matched")
	span.SetStatus(codes.Ok, "Default reply")
	return defaultReply
}
