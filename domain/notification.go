package domain

const (
	NotificationTypeCommentFlagged          = "CommentFlagged"
	NotificationTypeFlaggedCommentsReminder = "FlaggedCommentsReminder"
)

type NotificationMessages struct {
	CommentFlagged          string `mapstructure:"comment_flagged" default:"Comment {{.comment_id}} by {{.author}} was flagged {{.flag_count}} times and is waiting for review."`
	FlaggedCommentsReminder string `mapstructure:"flagged_comments_reminder" default:"{{.flagged_count}} flagged comments are waiting for review."`
}

type NotificationMessage struct {
	Type      string
	Variables map[string]interface{}
}

type Notification struct {
	User    string
	Message NotificationMessage
}
