package bpmn

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vine-io/hdbpmn/api"
)

func TestBuildIndex(t *testing.T) {
	process := modelElement(t, `<bpmn:process id="Process_1">
  <bpmn:userTask id="Task_1">
    <bpmn:extensionElements>
      <camunda:properties id="Props_1"><camunda:property id="Prop_1"/></camunda:properties>
    </bpmn:extensionElements>
    <bpmn:multiInstanceLoopCharacteristics id="Task_1"/>
  </bpmn:userTask>
  <bpmn:subProcess id="Sub_1">
    <bpmn:task id="Task_2"/>
  </bpmn:subProcess>
  <bpmn:dataObjectReference id="Ref_1"/>
  <bpmn:dataObjectReference id="Ref_1"/>
  <bpmn:sequenceFlow id="Flow_1" sourceRef="Task_1" targetRef="Sub_1"/>
</bpmn:process>`)

	x, err := BuildIndex(process)
	require.NoError(t, err)

	assert.Equal(t, 5, x.Len())

	task, ok := x.Get("Task_1")
	require.True(t, ok)
	assert.Equal(t, "userTask", task.Tag)

	nested, ok := x.Get("Task_2")
	require.True(t, ok)
	assert.Equal(t, "task", nested.Tag)

	_, ok = x.Get("Props_1")
	assert.False(t, ok)
	tag, ok := x.Foreign("Props_1")
	assert.True(t, ok)
	assert.Equal(t, "camunda:properties", tag)
	_, ok = x.Foreign("Prop_1")
	assert.False(t, ok, "foreign subtrees are not descended into")

	ids := make([]string, 0)
	x.Scan(func(id string, elem *etree.Element) bool {
		ids = append(ids, id)
		return true
	})
	assert.Equal(t, []string{"Flow_1", "Ref_1", "Sub_1", "Task_1", "Task_2"}, ids)
}

func TestBuildIndexDuplicate(t *testing.T) {
	process := modelElement(t, `<bpmn:process id="Process_1">
  <bpmn:task id="Task_1"/>
  <bpmn:subProcess id="Sub_1"><bpmn:userTask id="Task_1"/></bpmn:subProcess>
</bpmn:process>`)

	_, err := BuildIndex(process)
	require.Error(t, err)
	assert.Equal(t, api.ErrDuplicateModelElementId, api.TypeOf(err))
	assert.Contains(t, err.Error(), "Task_1 (existing=task, new=userTask)")
}

func TestBuildIndexLoopOutsideOwner(t *testing.T) {
	process := modelElement(t, `<bpmn:process id="Process_1">
  <bpmn:task id="Task_1"/>
  <bpmn:task id="Task_2"><bpmn:standardLoopCharacteristics id="Task_1"/></bpmn:task>
</bpmn:process>`)

	_, err := BuildIndex(process)
	assert.Equal(t, api.ErrDuplicateModelElementId, api.TypeOf(err))
}

func TestBuildIndexForest(t *testing.T) {
	doc, err := ReadFile("../testdata/collaboration.bpmn")
	require.NoError(t, err)

	roots := append(doc.Collaborations(), doc.Processes()...)
	x, err := BuildIndex(roots...)
	require.NoError(t, err)

	for _, id := range []string{"Participant_1", "MessageFlow_1", "Lane_2", "Property_1", "DataInputAssociation_1", "Task_Sub"} {
		_, ok := x.Get(id)
		assert.True(t, ok, id)
	}
	_, ok := x.Foreign("Properties_1")
	assert.True(t, ok)
}
