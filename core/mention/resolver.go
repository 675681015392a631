package mention

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/goto/discuss/domain"
	"github.com/goto/discuss/pkg/log"
	"github.com/goto/discuss/pkg/slices"
)

// handlePattern matches @handle tokens that are not part of an email address
var handlePattern = regexp.MustCompile(`(?:^|[^\w@])@(\w[\w.-]*)`)

//go:generate mockery --name=identityService --exported --with-expecter
type identityService interface {
	ResolveHandles(ctx context.Context, handles []string) (map[string]*domain.Identity, error)
}

type Config struct {
	// CacheTTL keeps resolved handles across calls. Zero resolves every call
	// against the identity service.
	CacheTTL      time.Duration `mapstructure:"cache_ttl" default:"0s"`
	MaxMentions   int           `mapstructure:"max_mentions" default:"20"`
	NegativeCache bool          `mapstructure:"negative_cache" default:"false"`
	CleanupPeriod time.Duration `mapstructure:"cleanup_period" default:"10m"`
}

type Resolver struct {
	identities identityService
	cache      *cache.Cache
	config     Config
	logger     log.Logger
}

func NewResolver(identities identityService, cfg Config, logger log.Logger) *Resolver {
	r := &Resolver{
		identities: identities,
		config:     cfg,
		logger:     logger,
	}
	if cfg.CacheTTL > 0 {
		r.cache = cache.New(cfg.CacheTTL, cfg.CleanupPeriod)
	}
	return r
}

// ExtractHandles returns the distinct handles mentioned in content in order of
// first appearance
func ExtractHandles(content string) []string {
	matches := handlePattern.FindAllStringSubmatch(content, -1)
	handles := make([]string, 0, len(matches))
	for _, m := range matches {
		h := strings.TrimRight(m[1], ".-")
		if h == "" {
			continue
		}
		handles = append(handles, strings.ToLower(h))
	}
	return slices.GenericsUniqueSliceValues(handles)
}

// Resolve returns the user ids of the identities mentioned in content.
// Unknown handles are dropped.
func (r *Resolver) Resolve(ctx context.Context, content string) ([]string, error) {
	handles := ExtractHandles(content)
	if r.config.MaxMentions > 0 && len(handles) > r.config.MaxMentions {
		handles = handles[:r.config.MaxMentions]
	}
	if len(handles) == 0 {
		return nil, nil
	}

	resolved := make(map[string]*domain.Identity, len(handles))
	var missing []string
	for _, h := range handles {
		if r.cache == nil {
			missing = append(missing, h)
			continue
		}
		if cached, found := r.cache.Get(h); found {
			if identity, ok := cached.(*domain.Identity); ok {
				resolved[h] = identity
			}
			continue
		}
		missing = append(missing, h)
	}

	if len(missing) > 0 {
		identities, err := r.identities.ResolveHandles(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("resolving mentioned handles: %w", err)
		}
		for _, h := range missing {
			identity, ok := identities[h]
			if ok && identity != nil {
				resolved[h] = identity
			}
			if r.cache == nil {
				continue
			}
			if ok && identity != nil {
				r.cache.SetDefault(h, identity)
			} else if r.config.NegativeCache {
				r.cache.SetDefault(h, nil)
			}
		}
		r.logger.Debug(ctx, "resolved mentioned handles", "requested", len(missing), "found", len(identities))
	}

	userIDs := make([]string, 0, len(resolved))
	for _, h := range handles {
		if identity, ok := resolved[h]; ok {
			userIDs = append(userIDs, identity.ID)
		}
	}
	return slices.GenericsUniqueSliceValues(userIDs), nil
}
