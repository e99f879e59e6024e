package voronoi

import "github.com/vorolib/voronoi/pkg/logger"

// defaultULPTolerance is the max-ulps window within which siteBeforeCircle
// treats a site's x and a circle event's LowerX as the same sweep position
// (the circle event is then processed first).
const defaultULPTolerance = 128

// Option configures a Voronoi engine built with New.
type Option func(*Voronoi)

// WithLogger attaches a logger the engine reports each site event through,
// at Debug level. A nil logger (the default) disables logging.
func WithLogger(l *logger.Logger) Option {
	return func(v *Voronoi) {
		v.log = l
	}
}

// WithULPTolerance overrides the ulp window siteBeforeCircle uses; zero
// makes only exactly equal sweep positions count as simultaneous.
func WithULPTolerance(ulps uint64) Option {
	return func(v *Voronoi) {
		v.ulpTolerance = ulps
	}
}
