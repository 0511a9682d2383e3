package bpmn

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

const definitionsOpen = `<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL" ` +
	`xmlns:bpmndi="http://www.omg.org/spec/BPMN/20100524/DI" ` +
	`xmlns:dc="http://www.omg.org/spec/DD/20100524/DC" ` +
	`xmlns:di="http://www.omg.org/spec/DD/20100524/DI" ` +
	`xmlns:camunda="http://camunda.org/schema/1.0/bpmn" id="Definitions_1">`

func definitions(body string) string {
	return definitionsOpen + body + `</bpmn:definitions>`
}

// modelElement parses body inside bpmn:definitions and returns its first child.
func modelElement(t *testing.T, body string) *etree.Element {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(definitions(body)))
	children := doc.Root().ChildElements()
	require.NotEmpty(t, children)
	return children[0]
}
