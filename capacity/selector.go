package capacity

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/azure/fabric-medallion-deployer/deployerr"
	"github.com/azure/fabric-medallion-deployer/prompt"
	"github.com/azure/fabric-medallion-deployer/types"
)

// ICapacityLister is satisfied by both the fab cli client and the Azure
// Resource Graph client, so the selection flow is source-agnostic.
type ICapacityLister interface {
	ListCapacities() ([]types.Capacity, error)
}

type ISelectorClient interface {
	ResolveCapacity(requestedName string) (types.Capacity, error)
}

type SelectorClient struct {
	Lister   ICapacityLister
	Prompter prompt.Prompter
	Logger   *logrus.Logger
}

func NewSelectorClient(lister ICapacityLister, prompter prompt.Prompter, logger *logrus.Logger) *SelectorClient {
	return &SelectorClient{
		Lister:   lister,
		Prompter: prompter,
		Logger:   logger,
	}
}

// ResolveCapacity narrows the available capacities down to exactly one.
// An explicitly requested name is honored first; a request that matches no
// candidate falls back to interactive selection rather than being silently
// replaced. Without a request, a single remaining candidate is auto-selected
// and anything else goes to the prompt.
func (selector *SelectorClient) ResolveCapacity(requestedName string) (types.Capacity, error) {
	capacities, err := selector.Lister.ListCapacities()
	if err != nil {
		return types.Capacity{}, fmt.Errorf("%w: %w", deployerr.ErrNoCapacityAvailable, err)
	}

	candidates := selector.filterReserved(capacities)
	if len(candidates) == 0 {
		return types.Capacity{}, deployerr.ErrNoCapacityAvailable
	}

	if requestedName != "" {
		name := strings.TrimSuffix(requestedName, types.CapacitySuffix)
		for _, candidate := range candidates {
			if candidate.Name == name {
				selector.Logger.Infof("Using requested capacity: %s", candidate.Name)
				return candidate, nil
			}
		}
		selector.Logger.Warnf("Requested capacity %q was not found, choose one from the list instead", requestedName)
		return selector.selectInteractively(candidates)
	}

	if len(candidates) == 1 {
		selector.Logger.Infof("Auto-selecting the only available capacity: %s", candidates[0].Name)
		return candidates[0], nil
	}

	return selector.selectInteractively(candidates)
}

func (selector *SelectorClient) filterReserved(capacities []types.Capacity) []types.Capacity {
	candidates := []types.Capacity{}
	for _, capacity := range capacities {
		if strings.Contains(capacity.Name, types.ReservedCapacityMarker) {
			selector.Logger.Debugf("Excluding reserved capacity: %s", capacity.Name)
			continue
		}
		candidates = append(candidates, capacity)
	}
	return candidates
}

func (selector *SelectorClient) selectInteractively(candidates []types.Capacity) (types.Capacity, error) {
	options := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		options = append(options, describeCapacity(candidate))
	}

	index, err := selector.Prompter.Select("Select a capacity to attach the workspace to", options)
	if err != nil {
		return types.Capacity{}, fmt.Errorf("%w: %w", deployerr.ErrCapacitySelectionRequired, err)
	}
	return candidates[index], nil
}

func describeCapacity(capacity types.Capacity) string {
	details := []string{}
	for _, detail := range []string{capacity.SKU, capacity.Region, capacity.State} {
		if detail != "" {
			details = append(details, detail)
		}
	}
	if len(details) == 0 {
		return capacity.Name
	}
	return fmt.Sprintf("%s (%s)", capacity.Name, strings.Join(details, ", "))
}
