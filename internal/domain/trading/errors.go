package trading

import "errors"

// ErrNotExplored is returned by Statistics when the explored-state table
// is empty, i.e. Explore has not run yet.
var ErrNotExplored = errors.New("no combinations explored")

// ErrRouteUnreachable is returned by FindOptimalRoute when no explored
// state covers the target basket. It is an expected outcome, not a
// failure of the exploration itself.
var ErrRouteUnreachable = errors.New("no explored state covers the target basket")
