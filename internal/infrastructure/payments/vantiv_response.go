package payments

import (
	"encoding/xml"
	"fmt"
	"strings"

	"vantivpay/internal/domain/entities"
)

// responseNode is a generic one-shot DOM for the reply. The decoder must
// tolerate fields it has never seen, so nothing here enumerates the schema.
type responseNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr     `xml:",any,attr"`
	Text     string         `xml:",chardata"`
	Children []responseNode `xml:",any"`
}

func (n *responseNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// find walks the tree for the first element with the given local name.
// Namespace prefixes are ignored, matching only the local part.
func (n *responseNode) find(name string) *responseNode {
	if n.XMLName.Local == name {
		return n
	}
	for i := range n.Children {
		if found := n.Children[i].find(name); found != nil {
			return found
		}
	}
	return nil
}

// parseResponse flattens the reply subtree for the given operation kind
// into a key/value map. Childless elements map name -> text; elements with
// children fold one nesting level into parent_child keys. When the subtree
// is absent the degenerate reply shape is handled by reading the message
// and response attributes off the response root; if those are missing too
// the reply is malformed.
func parseResponse(kind entities.TransactionType, raw string) (map[string]string, error) {
	var doc responseNode
	if err := xml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	root := doc.find(responseRoot)
	if root == nil {
		return nil, fmt.Errorf("%w: missing %s element", ErrMalformedResponse, responseRoot)
	}

	parsed := map[string]string{}
	if sub := root.find(responseElementName(kind)); sub != nil {
		for i := range sub.Children {
			child := &sub.Children[i]
			if len(child.Children) == 0 {
				parsed[child.XMLName.Local] = strings.TrimSpace(child.Text)
				continue
			}
			for j := range child.Children {
				grand := &child.Children[j]
				parsed[child.XMLName.Local+"_"+grand.XMLName.Local] = strings.TrimSpace(grand.Text)
			}
		}
	}

	if len(parsed) == 0 {
		message, okMessage := root.attr("message")
		code, okCode := root.attr("response")
		if !okMessage && !okCode {
			return nil, fmt.Errorf("%w: no %s subtree and no status attributes", ErrMalformedResponse, responseElementName(kind))
		}
		parsed["message"] = message
		parsed["response"] = code
	}

	return parsed, nil
}
