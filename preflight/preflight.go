package preflight

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/azure/fabric-medallion-deployer/deployerr"
	"github.com/azure/fabric-medallion-deployer/fabric"
)

type IPreflightClient interface {
	VerifyReady() error
}

type PreflightClient struct {
	FabricClient fabric.IFabricClient
	Logger       *logrus.Logger
}

func NewPreflightClient(fabricClient fabric.IFabricClient, logger *logrus.Logger) *PreflightClient {
	return &PreflightClient{
		FabricClient: fabricClient,
		Logger:       logger,
	}
}

// VerifyReady confirms the fab executable runs and is authenticated before
// any mutation is attempted. Any error returned is guaranteed to include
// ErrClientNotInstalled or ErrNotAuthenticated in the error chain.
func (preflightClient *PreflightClient) VerifyReady() error {
	version, err := preflightClient.FabricClient.Version()
	if err != nil {
		pterm.Error.Println("Could not run the Fabric CLI")
		return fmt.Errorf("%w: %w", deployerr.ErrClientNotInstalled, err)
	}
	preflightClient.Logger.Debugf("Fabric CLI version: %s", version)
	pterm.Success.Println(fmt.Sprintf("Found Fabric CLI installation: %s", version))

	if _, err := preflightClient.FabricClient.ListTopLevel(); err != nil {
		pterm.Error.Println("Could not list workspaces with the Fabric CLI")
		return fmt.Errorf("%w: %w", deployerr.ErrNotAuthenticated, err)
	}
	preflightClient.Logger.Debug("Fabric CLI is authenticated")
	pterm.Success.Println("Fabric CLI is authenticated")

	return nil
}
