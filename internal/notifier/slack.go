package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/slack-go/slack"
)

// SlackNotifier posts events to every Slack channel the bot is a member of.
type SlackNotifier struct {
	Logger *slog.Logger
	SlackSender
	userID string
	lock   sync.Mutex
}

//go:generate mockery --name SlackSender --with-expecter
type SlackSender interface {
	PostMessageContext(context.Context, string, ...slack.MsgOption) (string, string, error)
	GetConversationsContext(context.Context, *slack.GetConversationsParameters) ([]slack.Channel, string, error)
	AuthTestContext(context.Context) (*slack.AuthTestResponse, error)
}

var _ Notifier = &SlackNotifier{}

func (s *SlackNotifier) Notify(ctx context.Context, event Event) {
	channels, err := s.getChannels(ctx)
	if err != nil {
		s.Logger.Error("notifier failed to retrieve channels", "err", err)
		return
	}
	for _, channel := range channels {
		s.Logger.Debug("notifying on slack", "channel", channel.Name)
		_, _, err = s.SlackSender.PostMessageContext(ctx, channel.ID, slack.MsgOptionAttachments(slack.Attachment{
			Color: "good",
			Title: event.Message(),
			Text:  fmt.Sprintf("%s (%s): %s", event.UniqueID, event.Kind, event.Raw),
		}))
		if err != nil {
			s.Logger.Error("notifier failed to post message", "err", err)
		}
	}
}

func (s *SlackNotifier) getChannels(ctx context.Context) ([]slack.Channel, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.userID == "" {
		authResp, err := s.SlackSender.AuthTestContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("AuthTest: %w", err)
		}
		s.userID = authResp.UserID
	}

	var joinedChannels []slack.Channel
	var cursor string
	for {
		channels, nextCursor, err := s.SlackSender.GetConversationsContext(ctx, &slack.GetConversationsParameters{Cursor: cursor, Limit: 100, ExcludeArchived: true})
		if err != nil {
			return nil, err
		}
		for _, channel := range channels {
			if channel.IsMember && !channel.IsArchived {
				joinedChannels = append(joinedChannels, channel)
			}
		}
		if cursor = nextCursor; cursor == "" {
			break
		}
	}
	return joinedChannels, nil
}
