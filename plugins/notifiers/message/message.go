package message

import (
	"bytes"
	"fmt"
	"text/template"

	defaults "github.com/mcuadros/go-defaults"

	"github.com/goto/discuss/domain"
)

// Parse renders the notification with the configured template for its type,
// falling back to the built-in default when none is configured.
func Parse(message domain.NotificationMessage, templates domain.NotificationMessages) (string, error) {
	var fallback domain.NotificationMessages
	defaults.SetDefaults(&fallback)

	messageTypeTemplateMap := map[string][2]string{
		domain.NotificationTypeCommentFlagged:          {templates.CommentFlagged, fallback.CommentFlagged},
		domain.NotificationTypeFlaggedCommentsReminder: {templates.FlaggedCommentsReminder, fallback.FlaggedCommentsReminder},
	}

	candidates, ok := messageTypeTemplateMap[message.Type]
	if !ok {
		return "", fmt.Errorf("template not found for message type %s", message.Type)
	}
	text := candidates[0]
	if text == "" {
		text = candidates[1]
	}

	t, err := template.New(message.Type).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template for message type %s: %w", message.Type, err)
	}

	var buff bytes.Buffer
	if err := t.Execute(&buff, message.Variables); err != nil {
		return "", err
	}
	return buff.String(), nil
}
