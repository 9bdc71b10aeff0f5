package azure

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"

	"github.com/azure/fabric-medallion-deployer/types"
)

type ICapacityGraphClient interface {
	ListCapacities() ([]types.Capacity, error)
}

// capacityQuery enumerates Fabric capacities visible to the signed-in
// principal across the configured subscriptions.
const capacityQuery = `resources
| where type =~ 'microsoft.fabric/capacities'
| project id, name, sku = tostring(sku.name), location, state = tostring(properties.state)`

// CapacityGraphClient lists Fabric capacities through Azure Resource Graph
// instead of the fab cli. Useful when the cli identity cannot enumerate
// capacities but an Azure credential can.
type CapacityGraphClient struct {
	SubscriptionIDs []*string
	Logger          *logrus.Logger
}

func NewCapacityGraphClient(subscriptionIDs []string, logger *logrus.Logger) *CapacityGraphClient {
	// Convert string slice to pointer slice
	subscriptionIDsPtr := make([]*string, len(subscriptionIDs))
	for i := range subscriptionIDs {
		subscriptionIDsPtr[i] = &subscriptionIDs[i]
	}

	return &CapacityGraphClient{
		SubscriptionIDs: subscriptionIDsPtr,
		Logger:          logger,
	}
}

func (graph *CapacityGraphClient) ListCapacities() ([]types.Capacity, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("creating azure credential: %w", err)
	}

	resourcesClient, err := armresourcegraph.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("creating resource graph client: %w", err)
	}

	queryRequest := armresourcegraph.QueryRequest{
		Options: &armresourcegraph.QueryRequestOptions{
			AuthorizationScopeFilter: to.Ptr(armresourcegraph.AuthorizationScopeFilterAtScopeAndBelow),
		},
		Subscriptions: graph.SubscriptionIDs,
		Query:         to.Ptr(capacityQuery),
	}

	graph.Logger.Info("Running Resource Graph query for Fabric capacities")
	graph.Logger.Tracef("Query: %s", capacityQuery)

	res, err := resourcesClient.Resources(context.Background(), queryRequest, nil)
	if err != nil {
		return nil, fmt.Errorf("querying resource graph: %w", err)
	}

	results, ok := res.QueryResponse.Data.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected resource graph response shape %T", res.QueryResponse.Data)
	}

	capacities := []types.Capacity{}
	for _, result := range results {
		row, ok := result.(map[string]any)
		if !ok {
			graph.Logger.Debugf("Skipping resource graph row of type %T", result)
			continue
		}
		capacity := CapacityFromRow(row)
		graph.Logger.Tracef("Adding Capacity: %s", capacity.Name)
		capacities = append(capacities, capacity)
	}
	return capacities, nil
}

func CapacityFromRow(row map[string]any) types.Capacity {
	return types.Capacity{
		ID:     stringField(row, "id"),
		Name:   stringField(row, "name"),
		SKU:    stringField(row, "sku"),
		Region: stringField(row, "location"),
		State:  stringField(row, "state"),
	}
}

func stringField(row map[string]any, key string) string {
	if val, ok := row[key].(string); ok {
		return val
	}
	return ""
}
