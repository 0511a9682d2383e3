package syntax

import "fmt"

const (
	Pool = "pool"
	Lane = "lane"
)

var CollaborationCategories = []string{Pool, Lane}

var TaskTypes = []string{"send", "receive", "user", "manual", "businessRule", "service", "script"}

const (
	Task                = "task"
	SubProcessCollapsed = "subProcessCollapsed"
	SubProcessExpanded  = "subProcessExpanded"
	CallActivity        = "callActivity"
	AdHocSubProcess     = "adHocSubProcess"
	Transaction         = "transaction"
)

// TaskTypeCategories are the typed tasks, e.g. userTask, serviceTask.
var TaskTypeCategories = withSuffix(TaskTypes, Task)

var ActivityCategories = append([]string{
	Task, SubProcessCollapsed, SubProcessExpanded, CallActivity, AdHocSubProcess, Transaction,
}, TaskTypeCategories...)

// ActivitiesWithChildShapes may contain other shapes, so their labels are
// not located inside the symbol itself.
var ActivitiesWithChildShapes = []string{SubProcessExpanded, AdHocSubProcess, Transaction}

const (
	StartEvent             = "startEvent"
	IntermediateEvent      = "intermediateEvent"
	EndEvent               = "endEvent"
	TerminateEndEvent      = "terminateEndEvent"
	TimerStartEvent        = "timerStartEvent"
	TimerIntermediateEvent = "timerIntermediateEvent"

	intermediateCatchEvent = "intermediateCatchEvent"
	intermediateThrowEvent = "intermediateThrowEvent"

	// ParallelMultiplePrefix marks catch events with more than one event definition.
	ParallelMultiplePrefix = "parallelMultiple"
)

var UntypedEvents = []string{StartEvent, IntermediateEvent, EndEvent}

var (
	MessageEvents           = withPrefix("message", StartEvent, intermediateCatchEvent, intermediateThrowEvent, EndEvent)
	TimerEvents             = []string{TimerStartEvent, TimerIntermediateEvent}
	EscalationEvents        = withPrefix("escalation", StartEvent, intermediateCatchEvent, intermediateThrowEvent, EndEvent)
	ConditionalEvents       = withPrefix("conditional", StartEvent, intermediateCatchEvent)
	ErrorEvents             = withPrefix("error", StartEvent, intermediateCatchEvent, EndEvent)
	SignalEvents            = withPrefix("signal", StartEvent, intermediateCatchEvent, intermediateThrowEvent, EndEvent)
	MultipleEvents          = withPrefix("multiple", StartEvent, intermediateCatchEvent, intermediateThrowEvent, EndEvent)
	ParallelMultipleEvents  = withPrefix(ParallelMultiplePrefix, StartEvent, intermediateCatchEvent)
	LinkEvents              = withPrefix("link", intermediateCatchEvent, intermediateThrowEvent)
	CancelEvents            = withPrefix("cancel", intermediateCatchEvent, EndEvent)
	CompensationEvents      = withPrefix("compensate", StartEvent, intermediateCatchEvent, intermediateThrowEvent, EndEvent)
	BoundaryEventTypes      = []string{"message", "timer", "conditional", "signal", "escalation", "error", "compensate", "cancel"}
	BoundaryEvents          = withSuffix(BoundaryEventTypes, "BoundaryEvent")
	EventDefinitionPrefixes = append(append([]string{}, BoundaryEventTypes...), "link", "terminate")
)

var EventCategories = concat(
	UntypedEvents,
	[]string{TerminateEndEvent},
	MessageEvents,
	TimerEvents,
	EscalationEvents,
	ConditionalEvents,
	ErrorEvents,
	SignalEvents,
	MultipleEvents,
	ParallelMultipleEvents,
	LinkEvents,
	CancelEvents,
	CompensationEvents,
	BoundaryEvents,
)

const (
	ExclusiveGateway  = "exclusiveGateway"
	ParallelGateway   = "parallelGateway"
	InclusiveGateway  = "inclusiveGateway"
	EventBasedGateway = "eventBasedGateway"
	ComplexGateway    = "complexGateway"
)

var GatewayCategories = []string{
	ExclusiveGateway,
	ParallelGateway,
	InclusiveGateway,
	EventBasedGateway,
	ComplexGateway,
}

const (
	DataObject = "dataObject"
	DataStore  = "dataStore"
	DataInput  = "dataInput"
	DataOutput = "dataOutput"
)

var BusinessObjectCategories = []string{DataObject, DataStore, DataInput, DataOutput}

const (
	TextAnnotation = "textAnnotation"
	Group          = "group"
)

var AnnotationShapeCategories = []string{TextAnnotation, Group}

// ShapeCategories are drawn as bpmndi:BPMNShape.
var ShapeCategories = concat(
	ActivityCategories,
	EventCategories,
	GatewayCategories,
	CollaborationCategories,
	BusinessObjectCategories,
	AnnotationShapeCategories,
)

const (
	// DataAssociation collapses dataInputAssociation and dataOutputAssociation.
	DataAssociation = "dataAssociation"
	MessageFlow     = "messageFlow"
	SequenceFlow    = "sequenceFlow"
	Association     = "association"
)

// EdgeCategories are drawn as bpmndi:BPMNEdge and carry head/tail keypoints.
var EdgeCategories = []string{SequenceFlow, MessageFlow, DataAssociation, Association}

const Label = "label"

var LabelCategories = []string{Label}

// CategoryGroup is a named supercategory with its member categories.
type CategoryGroup struct {
	Name       string
	Categories []string
}

// Groups lists every supercategory in the order categories are enumerated.
var Groups = []CategoryGroup{
	{Name: "activity", Categories: ActivityCategories},
	{Name: "event", Categories: EventCategories},
	{Name: "gateway", Categories: GatewayCategories},
	{Name: "collaboration", Categories: CollaborationCategories},
	{Name: "business_object", Categories: BusinessObjectCategories},
	{Name: "annotation", Categories: AnnotationShapeCategories},
	{Name: "label", Categories: LabelCategories},
	{Name: "edge", Categories: EdgeCategories},
}

var (
	all        []string
	membership = map[string]string{}
	edges      = map[string]struct{}{}
	shapes     = map[string]struct{}{}
)

func init() {
	for _, g := range Groups {
		for _, c := range g.Categories {
			all = append(all, c)
			membership[c] = g.Name
		}
	}
	for _, c := range EdgeCategories {
		edges[c] = struct{}{}
	}
	for _, c := range ShapeCategories {
		shapes[c] = struct{}{}
	}

	if err := check(); err != nil {
		panic(err)
	}
}

// check asserts that shape, edge and label categories partition the taxonomy
// and that every category has a long name.
func check() error {
	n := len(ShapeCategories) + len(EdgeCategories) + len(LabelCategories)
	if n != len(membership) {
		return fmt.Errorf("inconsistent category taxonomy: %d shape/edge/label categories, %d distinct", n, len(membership))
	}
	for _, c := range all {
		if _, ok := longNames[c]; !ok {
			return fmt.Errorf("category %s has no long name", c)
		}
	}
	return nil
}

// All returns every category in group order.
func All() []string {
	out := make([]string, len(all))
	copy(out, all)
	return out
}

func IsCategory(category string) bool {
	_, ok := membership[category]
	return ok
}

// Supercategory returns the group the category belongs to.
func Supercategory(category string) (string, bool) {
	g, ok := membership[category]
	return g, ok
}

func IsEdge(category string) bool {
	_, ok := edges[category]
	return ok
}

func IsShape(category string) bool {
	_, ok := shapes[category]
	return ok
}

func withPrefix(prefix string, names ...string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = prefix + CapitalizeFirst(name)
	}
	return out
}

func withSuffix(names []string, suffix string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = name + CapitalizeFirst(suffix)
	}
	return out
}

func concat(groups ...[]string) []string {
	out := make([]string, 0)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
