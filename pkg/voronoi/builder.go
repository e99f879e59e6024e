package voronoi

// EdgeHandle is opaque to the core: whatever an OutputBuilder returns from
// InsertNewEdge/InsertNewEdgeFromCircle, the engine only ever stores it on a
// beach-line arc and hands it back unchanged in later calls.
type EdgeHandle any

// OutputBuilder is the external collaborator the engine drives through a
// fixed call sequence during Construct. It is responsible for assembling
// cells, half-edges and vertices out of the notifications it receives.
// pkg/builder supplies one concrete implementation; callers may supply
// their own.
type OutputBuilder interface {
	// Reserve is a hint of how many sites will be processed, called once
	// before any other method.
	Reserve(n int)

	// ProcessSingleSite is called exactly once, only when the entire input
	// is a single site with no others to bound its cell.
	ProcessSingleSite(site *SiteEvent)

	// InsertNewEdge is called when a new site splits an existing arc,
	// creating one bisector between site and the arc it split. It returns
	// a pair of twin edge handles, one for each side of the bisector.
	InsertNewEdge(splitBy, newSite *SiteEvent) (EdgeHandle, EdgeHandle)

	// InsertNewEdgeFromCircle is called when a circle event fires,
	// terminating the edges bounding the collapsing arc (prevEdge and
	// nextEdge) at the circle's vertex and starting a new bisector between
	// the two sites left adjacent by the collapse.
	InsertNewEdgeFromCircle(left, right *SiteEvent, at *CircleEvent, prevEdge, nextEdge EdgeHandle) EdgeHandle

	// Build finalizes the diagram after the sweep completes.
	Build()
}
