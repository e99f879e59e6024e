package voronoi

import "container/heap"

// bridgeEntry pairs a segment's still-outstanding end point with the
// temporary beach-line node insertNewArc planted for it.
type bridgeEntry struct {
	endpoint Point
	node     *bnode
	index    int
}

// endpointBridge is a priority queue of pending segment endpoints, drained
// whenever the sweep reaches a site whose Point0 matches an outstanding
// bridge. Ordered smallest point first (pointLess), so drain only ever needs
// to look at the top.
type endpointBridge struct {
	items []*bridgeEntry
}

func newEndpointBridge() *endpointBridge {
	return &endpointBridge{}
}

func (b *endpointBridge) Len() int { return len(b.items) }

func (b *endpointBridge) Less(i, j int) bool {
	return pointLess(b.items[i].endpoint, b.items[j].endpoint)
}

func (b *endpointBridge) Swap(i, j int) {
	b.items[i], b.items[j] = b.items[j], b.items[i]
	b.items[i].index = i
	b.items[j].index = j
}

func (b *endpointBridge) Push(x any) {
	e := x.(*bridgeEntry)
	e.index = len(b.items)
	b.items = append(b.items, e)
}

func (b *endpointBridge) Pop() any {
	old := b.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	b.items = old[:n-1]
	return e
}

func (b *endpointBridge) push(endpoint Point, node *bnode) {
	heap.Push(b, &bridgeEntry{endpoint: endpoint, node: node})
}

// drain pops and returns every bridge node whose endpoint equals p.
func (b *endpointBridge) drain(p Point) []*bnode {
	var out []*bnode
	for b.Len() > 0 && pointEqual(b.items[0].endpoint, p) {
		e := heap.Pop(b).(*bridgeEntry)
		out = append(out, e.node)
	}
	return out
}
