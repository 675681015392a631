package comment

type options struct {
	skipNotification bool
	skipAuditLog     bool
}

type Option func(*options)

func SkipNotifications() Option {
	return func(opts *options) {
		opts.skipNotification = true
	}
}

func SkipAuditLog() Option {
	return func(opts *options) {
		opts.skipAuditLog = true
	}
}

func (s *Service) getOptions(opts ...Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
