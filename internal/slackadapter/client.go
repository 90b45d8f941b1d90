// Package slackadapter is the workspace source adapter: it fetches raw
// messages from one configured Slack workspace and maps failures onto the
// typed error set the ingestion pipeline expects.
package slackadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/slack-go/slack"

	"github.com/slack-schedule-collector/internal/domain"
	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/internal/domain/entity"
	"github.com/slack-schedule-collector/pkg/logger"
)

// Source implements contract.MessageSource against the Slack Web API.
type Source struct {
	log *logger.Logger

	// newClient is swappable for tests.
	newClient func(token string) slackAPI
}

type slackAPI interface {
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
}

func New(log *logger.Logger) *Source {
	return &Source{
		log: log.WithComponent("slack"),
		newClient: func(token string) slackAPI {
			return slack.New(token)
		},
	}
}

// FetchMessages returns well-formed, user-authored messages in the configured
// channel at or after oldest. System and bot messages are excluded.
func (s *Source) FetchMessages(ctx context.Context, ws *entity.WorkspaceConfig, oldest time.Time) ([]entity.RawMessage, error) {
	api := s.newClient(ws.Token)

	resp, err := api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: ws.ChannelID,
		Oldest:    formatSlackTS(oldest),
		Limit:     domain.FetchLimit,
	})
	if err != nil {
		return nil, classifyError(err)
	}

	var messages []entity.RawMessage
	for _, msg := range resp.Messages {
		if !isUserMessage(msg) {
			continue
		}
		messages = append(messages, entity.RawMessage{
			User: msg.User,
			Text: msg.Text,
			TS:   msg.Timestamp,
		})
	}

	s.log.Debug().
		Str("channel_id", ws.ChannelID).
		Int("fetched", len(messages)).
		Msg("fetched workspace messages")

	return messages, nil
}

// CheckAuth validates a token against auth.test.
func (s *Source) CheckAuth(ctx context.Context, token string) error {
	api := s.newClient(token)
	if _, err := api.AuthTestContext(ctx); err != nil {
		return classifyError(err)
	}
	return nil
}

// isUserMessage keeps only plain user-authored messages: no subtype (joins,
// topic changes, edits), no bot author, and a non-empty user id.
func isUserMessage(msg slack.Message) bool {
	return msg.Type == "message" &&
		msg.SubType == "" &&
		msg.BotID == "" &&
		msg.User != ""
}

// classifyError maps a slack-go error onto the pipeline's taxonomy. An
// ok=false envelope is an API error; a body that fails to decode is a decode
// error; everything else is transport.
func classifyError(err error) error {
	var apiErr slack.SlackErrorResponse
	if errors.As(err, &apiErr) {
		return &contract.APIError{Message: apiErr.Error()}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &contract.DecodeError{Err: err}
	}

	return &contract.TransportError{Err: err}
}

// formatSlackTS renders a time as a Slack "oldest" cutoff timestamp.
func formatSlackTS(t time.Time) string {
	return fmt.Sprintf("%d.000000", t.Unix())
}
