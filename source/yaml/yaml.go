// Package yaml converts YAML documents to and from treema value trees via
// gopkg.in/yaml.v3 nodes, preserving mapping key order.
package yaml

import (
	"fmt"
	"strconv"

	yamlv3 "gopkg.in/yaml.v3"

	treema "github.com/reoring/treema"
)

// Parse decodes one YAML document into a node.
func Parse(data []byte) (*treema.Node, error) {
	var doc yamlv3.Node
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return nil, treema.Issues{treema.Issue{Path: "/", Code: treema.CodeParseError, Message: err.Error(), Cause: err}}
	}
	y := &doc
	if y.Kind == yamlv3.DocumentNode {
		if len(y.Content) == 0 {
			return nil, treema.Issues{treema.Root().Issue(treema.CodeParseError, "empty input")}
		}
		y = y.Content[0]
	}
	return fromYAML(y, treema.Root())
}

func fromYAML(y *yamlv3.Node, at treema.PathRef) (*treema.Node, error) {
	switch y.Kind {
	case yamlv3.AliasNode:
		return fromYAML(y.Alias, at)
	case yamlv3.MappingNode:
		obj := treema.NewObject()
		for i := 0; i+1 < len(y.Content); i += 2 {
			k := y.Content[i]
			if _, dup := obj.Get(k.Value); dup {
				return nil, treema.Issues{at.Field(k.Value).Issue(treema.CodeDuplicateKey, "duplicate key", "key", k.Value)}
			}
			v, err := fromYAML(y.Content[i+1], at.Field(k.Value))
			if err != nil {
				return nil, err
			}
			obj.Set(k.Value, v)
		}
		return obj, nil
	case yamlv3.SequenceNode:
		arr := treema.NewArray()
		for i, e := range y.Content {
			v, err := fromYAML(e, at.Index(i))
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
		return arr, nil
	case yamlv3.ScalarNode:
		return scalarFromYAML(y, at)
	}
	return nil, treema.Issues{at.Issue(treema.CodeParseError, "unsupported yaml node")}
}

func scalarFromYAML(y *yamlv3.Node, at treema.PathRef) (*treema.Node, error) {
	switch y.Tag {
	case "!!null":
		return treema.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(y.Value)
		if err != nil {
			return nil, treema.Issues{at.Issue(treema.CodeParseError, "invalid bool "+y.Value)}
		}
		return treema.FromBool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(y.Value, 0, 64)
		if err != nil {
			return nil, treema.Issues{at.Issue(treema.CodeParseError, "invalid int "+y.Value)}
		}
		return treema.FromInt(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(y.Value, 64)
		if err != nil {
			return nil, treema.Issues{at.Issue(treema.CodeParseError, "invalid float "+y.Value)}
		}
		return treema.FromDouble(f), nil
	default:
		return treema.FromString(y.Value), nil
	}
}

// Encode renders the node as a YAML document, emitting mapping keys in node
// order.
func Encode(n *treema.Node) ([]byte, error) {
	y, err := toYAML(n)
	if err != nil {
		return nil, err
	}
	return yamlv3.Marshal(y)
}

func toYAML(n *treema.Node) (*yamlv3.Node, error) {
	switch n.Type {
	case treema.NullType:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case treema.BoolType:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(n.Bool)}, nil
	case treema.IntType:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(n.Int, 10)}, nil
	case treema.DoubleType:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(n.Double, 'g', -1, 64)}, nil
	case treema.StringType:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: n.Str}, nil
	case treema.ArrayType:
		y := &yamlv3.Node{Kind: yamlv3.SequenceNode, Tag: "!!seq"}
		for _, e := range n.Elems {
			ey, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			y.Content = append(y.Content, ey)
		}
		return y, nil
	case treema.ObjectType:
		y := &yamlv3.Node{Kind: yamlv3.MappingNode, Tag: "!!map"}
		for i, k := range n.Keys {
			vy, err := toYAML(n.Values[i])
			if err != nil {
				return nil, err
			}
			y.Content = append(y.Content,
				&yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: k}, vy)
		}
		return y, nil
	}
	return nil, fmt.Errorf("yaml: invalid node type %v", n.Type)
}
