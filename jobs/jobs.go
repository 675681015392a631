package jobs

import (
	"github.com/mitchellh/mapstructure"
)

type Type string

const (
	TypeReconcileCounters       Type = "reconcile_counters"
	TypeFlaggedCommentsReminder Type = "flagged_comments_reminder"
)

type Job struct {
	Type     Type   `mapstructure:"type"`
	Interval string `mapstructure:"interval"`
	Enabled  bool   `mapstructure:"enabled"`
	Config   Config `mapstructure:"config"`
}

type Config map[string]interface{}

// Decode fills v from the raw job config, accepting durations as strings.
func (c Config) Decode(v interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(c)
}
