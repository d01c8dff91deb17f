package communication

import (
	"fmt"

	"github.com/slack-go/slack"
)

type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

// NewSlack returns a notifier posting as the bot owning token. clientOptions
// are passed through to the slack client.
func NewSlack(token string, options SlackOption, clientOptions ...slack.Option) *Slack {
	client := slack.New(token, clientOptions...)
	return &Slack{client: client, options: options}
}

// postMessage is a no-op for an unconfigured channel.
func (s *Slack) postMessage(channelID, message string) error {
	if channelID == "" {
		return nil
	}
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	return s.postMessage(s.options.InfoChannelID, message)
}

func (s *Slack) Error(message string) error {
	return s.postMessage(s.options.ErrorChannelID, message)
}
