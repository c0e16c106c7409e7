package clustering

// UnionFind is a disjoint-set forest over item identifiers with path
// compression and union by rank. Two ids share a root iff they were unioned
// directly or transitively, so membership is a transitive closure: it does
// NOT guarantee every pair inside a set is similar. The validator catches
// chained merges afterwards.
//
// The structure is local to one clustering call and must never be shared
// across calls.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
}

// NewUnionFind creates a forest where every id starts in its own set.
func NewUnionFind(ids []string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

// Find returns the root of id's set, compressing the path on the way up.
// Unknown ids are treated as their own singleton root.
func (uf *UnionFind) Find(id string) string {
	root, ok := uf.parent[id]
	if !ok {
		uf.parent[id] = id
		return id
	}
	if root != id {
		root = uf.Find(root)
		uf.parent[id] = root
	}
	return root
}

// Union merges the sets containing a and b.
func (uf *UnionFind) Union(a, b string) {
	rootA := uf.Find(a)
	rootB := uf.Find(b)
	if rootA == rootB {
		return
	}

	switch {
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}
}
