package structure

// nilNode marks an absent child.
const nilNode = -1

type bstNode[V any] struct {
	key   int
	value V
	left  int
	right int
}

// BST is an unbalanced binary search tree keyed by int. Nodes live in a
// slice arena and refer to their children by index. There is no delete and
// no rebalancing: sorted insertion order degrades it to a linked list.
type BST[V any] struct {
	nodes []bstNode[V]
	root  int
}

func NewBST[V any]() *BST[V] {
	return &BST[V]{root: nilNode}
}

// Insert adds key or, if present, overwrites its value in place.
func (t *BST[V]) Insert(key int, value V) {
	t.root = t.insert(t.root, key, value)
}

// insert returns the root of the subtree after insertion; callers
// reattach it to their child slot.
func (t *BST[V]) insert(idx, key int, value V) int {
	if idx == nilNode {
		t.nodes = append(t.nodes, bstNode[V]{key: key, value: value, left: nilNode, right: nilNode})
		return len(t.nodes) - 1
	}

	switch n := &t.nodes[idx]; {
	case key < n.key:
		left := t.insert(n.left, key, value)
		// append may have moved the arena
		t.nodes[idx].left = left
	case key > n.key:
		right := t.insert(n.right, key, value)
		t.nodes[idx].right = right
	default:
		n.value = value
	}
	return idx
}

// Search walks down from the root without recursion.
func (t *BST[V]) Search(key int) (V, bool) {
	idx := t.root
	for idx != nilNode {
		n := &t.nodes[idx]
		if key == n.key {
			return n.value, true
		}
		if key < n.key {
			idx = n.left
		} else {
			idx = n.right
		}
	}
	var zero V
	return zero, false
}

// Len is the number of distinct keys.
func (t *BST[V]) Len() int {
	return len(t.nodes)
}

// Height counts nodes on the longest root-to-leaf path; empty is 0.
func (t *BST[V]) Height() int {
	if t.root == nilNode {
		return 0
	}
	type frame struct{ idx, depth int }
	best := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > best {
			best = f.depth
		}
		n := t.nodes[f.idx]
		if n.left != nilNode {
			stack = append(stack, frame{n.left, f.depth + 1})
		}
		if n.right != nilNode {
			stack = append(stack, frame{n.right, f.depth + 1})
		}
	}
	return best
}

// InOrder visits keys in ascending order until fn returns false.
func (t *BST[V]) InOrder(fn func(key int, value V) bool) {
	var stack []int
	idx := t.root
	for idx != nilNode || len(stack) > 0 {
		for idx != nilNode {
			stack = append(stack, idx)
			idx = t.nodes[idx].left
		}
		idx = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[idx]
		if !fn(n.key, n.value) {
			return
		}
		idx = n.right
	}
}
