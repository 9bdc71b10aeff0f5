package reconciler

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/azure/fabric-medallion-deployer/deployerr"
	"github.com/azure/fabric-medallion-deployer/fabric"
	"github.com/azure/fabric-medallion-deployer/types"
)

type IReconcilerClient interface {
	Reconcile(workspaceName string, capacity types.Capacity, tree types.DesiredTree, force bool) (*types.DeploymentReport, error)
}

type ReconcilerClient struct {
	FabricClient fabric.IFabricClient
	Logger       *logrus.Logger
	// SettleDelay is waited after an actual workspace creation before any
	// lakehouse call, to absorb eventual consistency in the service.
	SettleDelay time.Duration
}

func NewReconcilerClient(fabricClient fabric.IFabricClient, settleDelay time.Duration, logger *logrus.Logger) *ReconcilerClient {
	return &ReconcilerClient{
		FabricClient: fabricClient,
		Logger:       logger,
		SettleDelay:  settleDelay,
	}
}

// Reconcile converges the remote workspace to the desired tree, creating only
// what is missing. The workspace level is fatal on failure; lakehouses fail
// independently of each other; folder failures are warnings only.
func (reconcilerClient *ReconcilerClient) Reconcile(workspaceName string, capacity types.Capacity, tree types.DesiredTree, force bool) (*types.DeploymentReport, error) {
	report := types.NewDeploymentReport(workspaceName, capacity.Name)

	if err := reconcilerClient.ensureWorkspace(report, capacity, force); err != nil {
		return report, err
	}

	children, err := reconcilerClient.FabricClient.ListChildren(fabric.WorkspacePath(workspaceName))
	if err != nil {
		reconcilerClient.Logger.Warnf("Listing workspace children failed, assuming empty workspace: %v", err)
		children = nil
	}

	for _, lakehouse := range tree.Lakehouses {
		reconcilerClient.ensureLakehouse(report, lakehouse, children, force)
	}

	return report, nil
}

func (reconcilerClient *ReconcilerClient) ensureWorkspace(report *types.DeploymentReport, capacity types.Capacity, force bool) error {
	workspacePath := fabric.WorkspacePath(report.WorkspaceName)

	topLevel, err := reconcilerClient.FabricClient.ListTopLevel()
	if err != nil {
		reconcilerClient.Logger.Warnf("Listing workspaces failed, assuming workspace %s is missing: %v", report.WorkspaceName, err)
		topLevel = nil
	}

	if containsName(topLevel, workspacePath) {
		report.WorkspaceOutcome = existingOutcome(force)
		if force {
			reconcilerClient.Logger.Warnf("Recreation of workspace %s was requested but is not supported, reusing it", report.WorkspaceName)
		}
		pterm.Success.Printfln("Workspace %s already exists", report.WorkspaceName)
		return nil
	}

	if capacity.Name == "" {
		return deployerr.ErrCapacityRequired
	}

	if err := reconcilerClient.FabricClient.CreateWorkspace(report.WorkspaceName, capacity.Name); err != nil {
		pterm.Error.Printfln("Workspace %s could not be created", report.WorkspaceName)
		return fmt.Errorf("%w: %w", deployerr.ErrWorkspaceCreationFailed, err)
	}

	report.WorkspaceOutcome = types.OutcomeCreated
	pterm.Success.Printfln("Created workspace %s on capacity %s", report.WorkspaceName, capacity.Name)

	if reconcilerClient.SettleDelay > 0 {
		reconcilerClient.Logger.Infof("Waiting %s for the new workspace to settle", reconcilerClient.SettleDelay)
		time.Sleep(reconcilerClient.SettleDelay)
	}
	return nil
}

func (reconcilerClient *ReconcilerClient) ensureLakehouse(report *types.DeploymentReport, lakehouse types.DesiredLakehouse, children []string, force bool) {
	if containsName(children, lakehouse.Name+types.LakehouseSuffix) {
		report.Existing[lakehouse.Name] = existingOutcome(force)
		if force {
			reconcilerClient.Logger.Warnf("Recreation of lakehouse %s was requested but is not supported, reusing it", lakehouse.Name)
		}
		pterm.Success.Printfln("Lakehouse %s already exists", lakehouse.Name)
		reconcilerClient.ensureFolders(report, lakehouse)
		return
	}

	if err := reconcilerClient.FabricClient.CreateLakehouse(report.WorkspaceName, lakehouse.Name); err != nil {
		report.Failed[lakehouse.Name] = types.OutcomeFailed
		reconcilerClient.Logger.Warnf("Creating lakehouse %s failed: %v", lakehouse.Name, err)
		pterm.Error.Printfln("Lakehouse %s could not be created", lakehouse.Name)
		return
	}

	report.Created[lakehouse.Name] = types.OutcomeCreated
	pterm.Success.Printfln("Created lakehouse %s", lakehouse.Name)
	reconcilerClient.ensureFolders(report, lakehouse)
}

// ensureFolders creates the missing folders of a lakehouse. Failures here are
// warnings: they never change the lakehouse outcome and never stop siblings.
func (reconcilerClient *ReconcilerClient) ensureFolders(report *types.DeploymentReport, lakehouse types.DesiredLakehouse) {
	existing, err := reconcilerClient.FabricClient.ListChildren(fabric.FilesPath(report.WorkspaceName, lakehouse.Name))
	if err != nil {
		reconcilerClient.Logger.Debugf("Listing folders of %s failed, assuming none exist: %v", lakehouse.Name, err)
		existing = nil
	}

	for _, folder := range lakehouse.Folders {
		if containsName(existing, folder) {
			reconcilerClient.Logger.Debugf("Folder %s/%s already exists", lakehouse.Name, folder)
			continue
		}
		if err := reconcilerClient.FabricClient.CreateFolder(report.WorkspaceName, lakehouse.Name, folder); err != nil {
			report.FolderWarnings++
			reconcilerClient.Logger.Warnf("Creating folder %s/%s failed: %v", lakehouse.Name, folder, err)
			continue
		}
		reconcilerClient.Logger.Infof("Created folder %s/%s", lakehouse.Name, folder)
	}
}

func existingOutcome(force bool) types.Outcome {
	if force {
		return types.OutcomeForceSkipped
	}
	return types.OutcomeAlreadyExisted
}

func containsName(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}
