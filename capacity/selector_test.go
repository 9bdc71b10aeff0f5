package capacity

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azure/fabric-medallion-deployer/deployerr"
	"github.com/azure/fabric-medallion-deployer/types"
)

type mockLister struct {
	Capacities []types.Capacity
	Err        error
	Called     bool
}

func (m *mockLister) ListCapacities() ([]types.Capacity, error) {
	m.Called = true
	return m.Capacities, m.Err
}

type mockPrompter struct {
	Index   int
	Err     error
	Called  bool
	Options []string
}

func (m *mockPrompter) Select(message string, options []string) (int, error) {
	m.Called = true
	m.Options = options
	return m.Index, m.Err
}

func newSelectorClient(lister *mockLister, prompter *mockPrompter) *SelectorClient {
	return NewSelectorClient(lister, prompter, logrus.New())
}

func TestResolveCapacity_AutoSelectsSingleCandidate(t *testing.T) {
	lister := &mockLister{Capacities: []types.Capacity{{Name: "Cap1", SKU: "F64"}}}
	prompter := &mockPrompter{}
	selectorClient := newSelectorClient(lister, prompter)

	selected, err := selectorClient.ResolveCapacity("")

	require.NoError(t, err)
	assert.Equal(t, "Cap1", selected.Name)
	assert.False(t, prompter.Called)
}

func TestResolveCapacity_ReservedCapacitiesAreFiltered(t *testing.T) {
	lister := &mockLister{Capacities: []types.Capacity{
		{Name: "Cap1"},
		{Name: "Reserved_Cap"},
	}}
	prompter := &mockPrompter{}
	selectorClient := newSelectorClient(lister, prompter)

	selected, err := selectorClient.ResolveCapacity("")

	require.NoError(t, err)
	assert.Equal(t, "Cap1", selected.Name)
	assert.False(t, prompter.Called)
}

func TestResolveCapacity_ReservedOnlyListIsTerminal(t *testing.T) {
	lister := &mockLister{Capacities: []types.Capacity{{Name: "Reserved_Cap"}}}
	selectorClient := newSelectorClient(lister, &mockPrompter{})

	_, err := selectorClient.ResolveCapacity("")

	assert.ErrorIs(t, err, deployerr.ErrNoCapacityAvailable)
}

func TestResolveCapacity_ListFailureIsTerminal(t *testing.T) {
	lister := &mockLister{Err: fmt.Errorf("api unavailable")}
	selectorClient := newSelectorClient(lister, &mockPrompter{})

	_, err := selectorClient.ResolveCapacity("")

	assert.ErrorIs(t, err, deployerr.ErrNoCapacityAvailable)
}

func TestResolveCapacity_EmptyListIsTerminal(t *testing.T) {
	lister := &mockLister{}
	selectorClient := newSelectorClient(lister, &mockPrompter{})

	_, err := selectorClient.ResolveCapacity("")

	assert.ErrorIs(t, err, deployerr.ErrNoCapacityAvailable)
}

func TestResolveCapacity_ExplicitNameMatches(t *testing.T) {
	lister := &mockLister{Capacities: []types.Capacity{{Name: "Cap1"}, {Name: "Cap2"}}}
	prompter := &mockPrompter{}
	selectorClient := newSelectorClient(lister, prompter)

	selected, err := selectorClient.ResolveCapacity("Cap2")

	require.NoError(t, err)
	assert.Equal(t, "Cap2", selected.Name)
	assert.False(t, prompter.Called)
}

func TestResolveCapacity_ExplicitNameSuffixIsStripped(t *testing.T) {
	lister := &mockLister{Capacities: []types.Capacity{{Name: "Cap1"}, {Name: "Cap2"}}}
	prompter := &mockPrompter{}
	selectorClient := newSelectorClient(lister, prompter)

	selected, err := selectorClient.ResolveCapacity("Cap2.Capacity")

	require.NoError(t, err)
	assert.Equal(t, "Cap2", selected.Name)
	assert.False(t, prompter.Called)
}

func TestResolveCapacity_UnmatchedNameFallsBackToPrompt(t *testing.T) {
	lister := &mockLister{Capacities: []types.Capacity{{Name: "Cap1"}, {Name: "Cap2"}}}
	prompter := &mockPrompter{Index: 1}
	selectorClient := newSelectorClient(lister, prompter)

	selected, err := selectorClient.ResolveCapacity("Cap9")

	require.NoError(t, err)
	assert.True(t, prompter.Called)
	assert.Len(t, prompter.Options, 2)
	assert.Equal(t, "Cap2", selected.Name)
}

func TestResolveCapacity_UnmatchedNameAgainstSingleCandidatePrompts(t *testing.T) {
	// A requested name that matches nothing is never silently replaced, even
	// when only one candidate remains.
	lister := &mockLister{Capacities: []types.Capacity{{Name: "Cap1"}}}
	prompter := &mockPrompter{Index: 0}
	selectorClient := newSelectorClient(lister, prompter)

	selected, err := selectorClient.ResolveCapacity("Cap9")

	require.NoError(t, err)
	assert.True(t, prompter.Called)
	assert.Equal(t, "Cap1", selected.Name)
}

func TestResolveCapacity_MultipleCandidatesPrompt(t *testing.T) {
	lister := &mockLister{Capacities: []types.Capacity{{Name: "Cap1"}, {Name: "Cap2"}, {Name: "Cap3"}}}
	prompter := &mockPrompter{Index: 2}
	selectorClient := newSelectorClient(lister, prompter)

	selected, err := selectorClient.ResolveCapacity("")

	require.NoError(t, err)
	assert.True(t, prompter.Called)
	assert.Equal(t, "Cap3", selected.Name)
}

func TestResolveCapacity_PrompterFailureIsTerminal(t *testing.T) {
	lister := &mockLister{Capacities: []types.Capacity{{Name: "Cap1"}, {Name: "Cap2"}}}
	prompter := &mockPrompter{Err: fmt.Errorf("input closed")}
	selectorClient := newSelectorClient(lister, prompter)

	_, err := selectorClient.ResolveCapacity("")

	assert.ErrorIs(t, err, deployerr.ErrCapacitySelectionRequired)
}

func TestDescribeCapacity(t *testing.T) {
	assert.Equal(t, "Cap1", describeCapacity(types.Capacity{Name: "Cap1"}))
	assert.Equal(t, "Cap1 (F64, westeurope, Active)", describeCapacity(types.Capacity{
		Name: "Cap1", SKU: "F64", Region: "westeurope", State: "Active",
	}))
}
