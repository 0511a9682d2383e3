package bpmn

import "github.com/beevik/etree"

const (
	NSModel  = "http://www.omg.org/spec/BPMN/20100524/MODEL"
	NSBpmnDI = "http://www.omg.org/spec/BPMN/20100524/DI"
	NSDC     = "http://www.omg.org/spec/DD/20100524/DC"
	NSDI     = "http://www.omg.org/spec/DD/20100524/DI"
)

// diPrefixes are the prefixes seen for NSDI when the namespace cannot be resolved.
var diPrefixes = []string{"omgdi", "di"}

// dcPrefixes are the prefixes seen for NSDC when the namespace cannot be resolved.
var dcPrefixes = []string{"omgdc", "dc"}

// Namespace returns the namespace URI of elem, falling back to the default
// namespace for unprefixed tags.
func Namespace(elem *etree.Element) string {
	return elem.NamespaceURI()
}

func IsModel(elem *etree.Element) bool {
	return Namespace(elem) == NSModel
}

func isBpmnDI(elem *etree.Element, tag string) bool {
	return elem.Tag == tag && (Namespace(elem) == NSBpmnDI || elem.Space == "bpmndi")
}

func isDC(elem *etree.Element, tag string) bool {
	return elem.Tag == tag && inNamespace(elem, NSDC, dcPrefixes)
}

func isDI(elem *etree.Element, tag string) bool {
	return elem.Tag == tag && inNamespace(elem, NSDI, diPrefixes)
}

func inNamespace(elem *etree.Element, uri string, prefixes []string) bool {
	if ns := Namespace(elem); ns != "" {
		return ns == uri
	}
	for _, prefix := range prefixes {
		if elem.Space == prefix {
			return true
		}
	}
	return false
}

// DIPrefix returns the prefix bound to the DI namespace in the scope of elem,
// "omgdi" or "di" for most modelers.
func DIPrefix(elem *etree.Element) (string, bool) {
	for e := elem; e != nil; e = e.Parent() {
		for _, attr := range e.Attr {
			if attr.Space == "xmlns" && attr.Value == NSDI {
				return attr.Key, true
			}
		}
	}
	for _, prefix := range diPrefixes {
		for e := elem; e != nil; e = e.Parent() {
			if _, ok := getAttr(e.Attr, "xmlns:"+prefix); ok {
				return prefix, true
			}
		}
	}
	return "", false
}
