package bpmn

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/vine-io/hdbpmn/api"
	"github.com/vine-io/hdbpmn/syntax"
)

// events that may not carry more than one event definition
var singleDefinitionEvents = map[string]struct{}{
	"intermediateThrowEvent": {},
	syntax.EndEvent:          {},
	"boundaryEvent":          {},
}

var categoryRenames = map[string]string{
	"intermediateThrowEvent":      syntax.IntermediateEvent,
	"timerIntermediateCatchEvent": syntax.TimerIntermediateEvent,
	"participant":                 syntax.Pool,
	"dataInputAssociation":        syntax.DataAssociation,
	"dataOutputAssociation":       syntax.DataAssociation,
	"dataObjectReference":         syntax.DataObject,
	"dataStoreReference":          syntax.DataStore,
}

// Classify maps a model element and its diagram element to a taxonomy category.
func Classify(di DiagramElement, model *etree.Element) (string, error) {
	tag := model.Tag
	category := tag

	if strings.HasSuffix(tag, "Event") {
		types := EventDefinitions(model)
		switch {
		case len(types) == 1:
			category = types[0] + syntax.CapitalizeFirst(tag)
		case len(types) > 1:
			if _, ok := singleDefinitionEvents[tag]; ok {
				return "", api.InvalidBpmnCategory("invalid %s with multiple event definitions: %s", tag, strings.Join(types, ","))
			}
			category = syntax.ParallelMultiplePrefix + syntax.CapitalizeFirst(tag)
		}
	}

	if v, ok := categoryRenames[category]; ok {
		category = v
	}

	if category == "subProcess" {
		category = syntax.SubProcessCollapsed
		if di != nil && di.Expanded() {
			category = syntax.SubProcessExpanded
		}
	}

	if !syntax.IsCategory(category) {
		return "", api.UnknownCategory("%s %s unknown category: %s", tag, formatAttrs(model), category)
	}
	return category, nil
}

// EventDefinitions returns the event types declared by *EventDefinition
// children, in taxonomy order.
func EventDefinitions(model *etree.Element) []string {
	out := make([]string, 0)
	for _, t := range syntax.EventDefinitionPrefixes {
		if ChildElement(model, t+"EventDefinition") != nil {
			out = append(out, t)
		}
	}
	return out
}
