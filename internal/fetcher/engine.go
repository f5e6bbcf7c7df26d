package fetcher

import (
	"context"

	"github.com/famomatic/ytcap/internal/innertube"
	"github.com/famomatic/ytcap/internal/policy"
	"github.com/famomatic/ytcap/internal/transport"
	"github.com/famomatic/ytcap/internal/types"
)

// Logger receives non-fatal diagnostics from the fallback runner.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}

// Engine runs acquisition strategies in order until one yields usable video
// data. The player API is tried once per impersonation profile, then the
// watch-page scrape, then the embed metadata call.
type Engine struct {
	selector policy.Selector
	session  *transport.Session
	resolver *innertube.APIKeyResolver
	logger   Logger
}

func NewEngine(selector policy.Selector, session *transport.Session, resolver *innertube.APIKeyResolver, logger Logger) *Engine {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Engine{
		selector: selector,
		session:  session,
		resolver: resolver,
		logger:   logger,
	}
}

// Session exposes the engine's transport for follow-up payload fetches.
func (e *Engine) Session() *transport.Session {
	return e.session
}

// Resolver exposes the shared credential resolver.
func (e *Engine) Resolver() *innertube.APIKeyResolver {
	return e.resolver
}

// Fetch walks strategies and profiles in order.
//
// Per attempt: a request error means continue without retaining anything; a
// thin-but-successful payload is retained as a last-resort candidate; a
// payload with identifiable data short-circuits the walk. When everything is
// exhausted the best retained candidate wins, else an aggregate error naming
// every attempt is returned.
func (e *Engine) Fetch(ctx context.Context, videoID, hl string) (*VideoData, error) {
	return e.run(ctx, videoID, hl, e.buildStrategies(videoID))
}

func (e *Engine) run(ctx context.Context, videoID, hl string, strategies []Strategy) (*VideoData, error) {
	if len(strategies) == 0 {
		return nil, types.ErrNoProfilesAvailable
	}

	var retained *VideoData
	var attempts []AttemptError

	for _, strategy := range strategies {
		if ctx.Err() != nil {
			break
		}
		data, err := strategy.TryFetch(ctx, videoID, hl)
		if err != nil {
			e.logger.Debugf("strategy %s/%s failed for video=%s: %v",
				strategy.Name(), strategy.Profile(), videoID, err)
			attempts = append(attempts, AttemptError{
				Strategy: strategy.Name(),
				Profile:  strategy.Profile(),
				Err:      err,
			})
			continue
		}
		switch classify(data) {
		case classValid:
			return data, nil
		case classInsufficient:
			e.logger.Debugf("strategy %s/%s insufficient for video=%s",
				strategy.Name(), strategy.Profile(), videoID)
			if candidateRank(data) > candidateRank(retained) {
				retained = data
			}
			attempts = append(attempts, AttemptError{
				Strategy: strategy.Name(),
				Profile:  strategy.Profile(),
			})
		}
	}

	if retained != nil {
		e.logger.Warnf("returning retained candidate from %s for video=%s", retained.Source, videoID)
		return retained, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, &ExhaustedError{Attempts: attempts}
}

func (e *Engine) buildStrategies(videoID string) []Strategy {
	profiles := e.selector.Select(videoID)

	strategies := make([]Strategy, 0, len(profiles)+2)
	for _, p := range profiles {
		strategies = append(strategies, newPlayerAPIStrategy(e.session, e.resolver, p))
	}
	strategies = append(strategies, newWatchPageStrategy(e.session, innertube.WebClient))
	strategies = append(strategies, newEmbedStrategy(e.session))
	return strategies
}
