package parser

import "errors"

// Node is a CST node in left-child/right-sibling form. The children of a node
// are Child and the sibling chain that follows it.
type Node struct {
	Token   Token
	Child   *Node
	Sibling *Node
}

// Chain returns n followed by all of its siblings.
func (n *Node) Chain() []*Node {
	var nodes []*Node
	for ; n != nil; n = n.Sibling {
		nodes = append(nodes, n)
	}
	return nodes
}

// Children returns the semantic children of n.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.Child.Chain()
}

// Last returns the final node of the sibling chain starting at n.
func (n *Node) Last() *Node {
	for n != nil && n.Sibling != nil {
		n = n.Sibling
	}
	return n
}

// Texts returns the token text of every node in the chain starting at n.
func (n *Node) Texts() []string {
	var texts []string
	for _, node := range n.Chain() {
		texts = append(texts, node.Token.Text)
	}
	return texts
}

var errLinkTaken = errors.New("tree node link already taken")

// treeBuilder owns the tree root. The attachment point is always passed in by
// the caller, and every insertion returns the node it created.
type treeBuilder struct {
	root *Node
}

// open starts a new subtree: the first node becomes the root, every later one
// the first child of at.
func (b *treeBuilder) open(at *Node, tok Token) *Node {
	n := &Node{Token: tok}
	if b.root == nil {
		b.root = n
		return n
	}
	if at.Child != nil {
		panic(errLinkTaken)
	}
	at.Child = n
	return n
}

// append attaches a new node as the next sibling of at.
func (b *treeBuilder) append(at *Node, tok Token) *Node {
	n := &Node{Token: tok}
	if at.Sibling != nil {
		panic(errLinkTaken)
	}
	at.Sibling = n
	return n
}

// graft attaches an independently built chain as the first child of at.
func (b *treeBuilder) graft(at *Node, chain *Node) {
	if at.Child != nil {
		panic(errLinkTaken)
	}
	at.Child = chain
}
