package payments

import (
	"encoding/xml"
	"strings"
)

// xmlElement is a declarative request tree serialized in one pass. The
// builders append children conditionally up front, so element ordering and
// the "absent, never empty" rule are decided before any bytes are written.
type xmlElement struct {
	name     string
	attrs    []xml.Attr
	text     string
	children []*xmlElement
}

func newElement(name string) *xmlElement {
	return &xmlElement{name: name}
}

func (e *xmlElement) setAttr(name, value string) *xmlElement {
	e.attrs = append(e.attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	return e
}

func (e *xmlElement) addChild(child *xmlElement) *xmlElement {
	e.children = append(e.children, child)
	return child
}

// addText appends a text child unconditionally, even when blank. Reserved
// for elements the schema treats as structural (orderId, billToAddress).
func (e *xmlElement) addText(name, value string) {
	e.children = append(e.children, &xmlElement{name: name, text: value})
}

// addTextIf appends a text child only when the value is non-blank. The
// remote schema distinguishes an empty element from an absent one, so
// optional fields must go through here.
func (e *xmlElement) addTextIf(name, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	e.addText(name, value)
}

func (e *xmlElement) render() (string, error) {
	var b strings.Builder
	enc := xml.NewEncoder(&b)
	if err := e.encode(enc); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (e *xmlElement) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.name}, Attr: e.attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.text != "" {
		if err := enc.EncodeToken(xml.CharData(e.text)); err != nil {
			return err
		}
	}
	for _, child := range e.children {
		if err := child.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
