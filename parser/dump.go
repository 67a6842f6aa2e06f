package parser

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fprint writes the tree rooted at root to w. Every sibling chain is printed
// on one line; the children of a node follow on their own lines, indented
// one level deeper than the chain of their parent.
func Fprint(w io.Writer, root *Node) error {
	_, err := io.WriteString(w, Sprint(root))
	return err
}

// Sprint returns the output of Fprint as a string.
func Sprint(root *Node) string {
	var buf strings.Builder
	printChain(&buf, root, 0)
	return buf.String()
}

func printChain(buf *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}

	buf.WriteString(strings.Repeat("  ", depth))
	buf.WriteString(strings.Join(n.Texts(), " "))
	buf.WriteByte('\n')

	for _, node := range n.Chain() {
		printChain(buf, node.Child, depth+1)
	}
}

type yamlNode struct {
	Type     string  `yaml:"type"`
	Text     string  `yaml:"text"`
	Line     int     `yaml:"line"`
	Children []*Node `yaml:"children,omitempty"`
}

// MarshalYAML renders n with its semantic children nested below it.
func (n *Node) MarshalYAML() (interface{}, error) {
	return &yamlNode{
		Type:     n.Token.Type.String(),
		Text:     n.Token.Text,
		Line:     n.Token.Line,
		Children: n.Children(),
	}, nil
}

// EncodeYAML encodes the tree rooted at root as a YAML sequence holding the
// root and its siblings.
func EncodeYAML(root *Node) ([]byte, error) {
	return yaml.Marshal(root.Chain())
}
