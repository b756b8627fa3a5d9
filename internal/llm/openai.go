// Package llm generates the optional natural-language activity summary shown
// above the dashboard charts.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/jdalain/teq-dashboard/internal/catalog"
	"github.com/jdalain/teq-dashboard/internal/logger"
)

const systemPrompt = "You are a seismologist writing for a general audience. " +
	"Given summary statistics of recent earthquake activity in Türkiye, write a short " +
	"markdown briefing (3 to 5 sentences) describing the activity level, the strongest " +
	"event and any notable trend in the aftershock sequence. Do not speculate about " +
	"future earthquakes. Do not include a title heading."

// SummaryClient generates activity summaries through the OpenAI chat API.
type SummaryClient struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

// NewSummaryClient creates a summary client. Returns nil when no API key is
// configured; callers treat a nil client as "summaries disabled".
func NewSummaryClient(apiKey, model string) *SummaryClient {
	if apiKey == "" {
		return nil
	}
	return &SummaryClient{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    logger.For("llm"),
	}
}

// GenerateSummary produces a markdown briefing for one dashboard view.
func (c *SummaryClient) GenerateSummary(ctx context.Context, view *catalog.View) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("summary client not configured")
	}

	prompt, err := c.buildPrompt(view)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   600,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	summary := resp.Choices[0].Message.Content
	c.log.Debug().Int("chars", len(summary)).Msg("Generated activity summary")
	return summary, nil
}

// buildPrompt serialises the view's headline numbers and series for the model.
// Raw event lists stay out of the prompt; the series carry enough signal.
func (c *SummaryClient) buildPrompt(view *catalog.View) (string, error) {
	input := struct {
		WindowStart     string                `json:"window_start"`
		WindowEnd       string                `json:"window_end"`
		Total           int                   `json:"total_events"`
		SinceMainshock  int                   `json:"events_since_mainshock"`
		MeanInterval24h string                `json:"mean_interval_last_24h"`
		Strongest       string                `json:"strongest_event"`
		DailyMax        []catalog.SeriesPoint `json:"daily_max_magnitude"`
		Intervals       []catalog.SeriesPoint `json:"daily_mean_interval_minutes"`
	}{
		WindowStart:     view.Window.Start.Format("2006-01-02"),
		WindowEnd:       view.Window.End.Format("2006-01-02"),
		Total:           view.Summary.Total,
		SinceMainshock:  view.Summary.SinceMainshock,
		MeanInterval24h: view.Summary.MeanInterval24h.String(),
		DailyMax:        view.DailyMax,
		Intervals:       view.Intervals,
	}
	if view.Summary.Strongest != nil {
		input.Strongest = fmt.Sprintf("M%.1f %s at %s UTC",
			view.Summary.Strongest.Magnitude,
			view.Summary.Strongest.Location,
			view.Summary.Strongest.Time.Format("2006-01-02 15:04"))
	}

	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary input: %w", err)
	}

	return fmt.Sprintf("## Earthquake activity statistics for Türkiye\n\n```json\n%s\n```\n\nWrite the briefing.", data), nil
}
