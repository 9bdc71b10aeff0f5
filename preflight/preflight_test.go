package preflight

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/azure/fabric-medallion-deployer/deployerr"
	"github.com/azure/fabric-medallion-deployer/types"
)

type mockFabricClient struct {
	VersionErr  error
	ListErr     error
	VersionHit  bool
	TopLevelHit bool
}

func (m *mockFabricClient) Version() (string, error) {
	m.VersionHit = true
	return "fab version 1.0.0", m.VersionErr
}

func (m *mockFabricClient) ListTopLevel() ([]string, error) {
	m.TopLevelHit = true
	return []string{"WS.Workspace"}, m.ListErr
}

func (m *mockFabricClient) ListCapacities() ([]types.Capacity, error) {
	return nil, nil
}

func (m *mockFabricClient) ListChildren(parentPath string) ([]string, error) {
	return nil, nil
}

func (m *mockFabricClient) CreateWorkspace(name string, capacityName string) error {
	return nil
}

func (m *mockFabricClient) CreateLakehouse(workspaceName string, name string) error {
	return nil
}

func (m *mockFabricClient) CreateFolder(workspaceName string, lakehouseName string, folder string) error {
	return nil
}

func TestVerifyReady_Succeeds(t *testing.T) {
	fabricClient := &mockFabricClient{}
	logger := logrus.New()
	var logOutput bytes.Buffer
	logger.SetOutput(&logOutput)
	logger.SetLevel(logrus.DebugLevel)
	preflightClient := NewPreflightClient(fabricClient, logger)

	err := preflightClient.VerifyReady()

	assert.NoError(t, err)
	assert.True(t, fabricClient.VersionHit)
	assert.True(t, fabricClient.TopLevelHit)
	assert.Contains(t, logOutput.String(), "fab version 1.0.0")
	assert.Contains(t, logOutput.String(), "authenticated")
}

func TestVerifyReady_MissingClient(t *testing.T) {
	fabricClient := &mockFabricClient{VersionErr: fmt.Errorf("executable file not found")}
	preflightClient := NewPreflightClient(fabricClient, logrus.New())

	err := preflightClient.VerifyReady()

	assert.ErrorIs(t, err, deployerr.ErrClientNotInstalled)
	// The auth check is never reached if the client is missing.
	assert.False(t, fabricClient.TopLevelHit)
}

func TestVerifyReady_NotAuthenticated(t *testing.T) {
	fabricClient := &mockFabricClient{ListErr: fmt.Errorf("token expired")}
	preflightClient := NewPreflightClient(fabricClient, logrus.New())

	err := preflightClient.VerifyReady()

	assert.ErrorIs(t, err, deployerr.ErrNotAuthenticated)
}
