package bpmn

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

func getAttr(attrs []etree.Attr, name string) (string, bool) {
	for _, attr := range attrs {
		if attr.FullKey() == name {
			return attr.Value, true
		}
	}
	return "", false
}

// GetAttr returns the value of the attribute with the given full key.
func GetAttr(elem *etree.Element, name string) (string, bool) {
	return getAttr(elem.Attr, name)
}

// ChildElements returns the direct children of elem in the BPMN model namespace with the given tag.
func ChildElements(elem *etree.Element, tag string) []*etree.Element {
	out := make([]*etree.Element, 0)
	for _, child := range elem.ChildElements() {
		if child.Tag == tag && IsModel(child) {
			out = append(out, child)
		}
	}
	return out
}

// ChildElement returns the first direct model child with the given tag, or nil.
func ChildElement(elem *etree.Element, tag string) *etree.Element {
	for _, child := range elem.ChildElements() {
		if child.Tag == tag && IsModel(child) {
			return child
		}
	}
	return nil
}

// formatAttrs renders the attributes of elem deterministically for error details.
func formatAttrs(elem *etree.Element) string {
	parts := make([]string, 0, len(elem.Attr))
	for _, attr := range elem.Attr {
		parts = append(parts, fmt.Sprintf("%s=%q", attr.FullKey(), attr.Value))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}
