package deployerr

var _ error = (*DeployError)(nil)

// DeployError adds a user-friendly remediation message to specific errors.
type DeployError struct {
	help string
	msg  string
}

// Help is displayed to the operator if this specific error halts the run.
func (e *DeployError) Help() string {
	return e.help
}

// Error returns the error message.
func (e *DeployError) Error() string {
	return e.msg
}

var (
	// ErrClientNotInstalled is returned when the fab executable cannot be run.
	ErrClientNotInstalled = &DeployError{
		msg: "fabric cli not found",
		help: `The fab executable could not be run.
Install the Microsoft Fabric CLI with "pip install ms-fabric-cli" and
ensure fab is on your PATH, then run this command again.`,
	}

	// ErrNotAuthenticated is returned when fab is installed but cannot list resources.
	ErrNotAuthenticated = &DeployError{
		msg: "fabric cli is not authenticated",
		help: `The Fabric CLI could not list your workspaces.
Authenticate with "fab auth login" and run this command again.`,
	}

	// ErrNoCapacityAvailable is returned when no attachable capacity exists.
	ErrNoCapacityAvailable = &DeployError{
		msg: "no capacity available",
		help: `No non-reserved Fabric capacity was found.
A workspace can only be created against an existing capacity. Create or
resume a capacity in the Azure portal, or verify your account can see one
with "fab ls -l .capacities".`,
	}

	// ErrCapacitySelectionRequired is returned when no capacity could be resolved.
	ErrCapacitySelectionRequired = &DeployError{
		msg: "capacity selection required",
		help: `A capacity could not be selected.
Re-run with --capacityName <name>, or run interactively and pick one from
the list.`,
	}

	// ErrCapacityRequired is returned when workspace creation is attempted
	// without a resolved capacity.
	ErrCapacityRequired = &DeployError{
		msg: "capacity required for workspace creation",
		help: `Creating a workspace requires a capacity to attach it to.
Re-run with --capacityName <name>.`,
	}

	// ErrWorkspaceCreationFailed is returned when the workspace could not be created.
	ErrWorkspaceCreationFailed = &DeployError{
		msg: "workspace creation failed",
		help: `The workspace could not be created.
Verify that your account has contributor rights on the selected capacity
and that the workspace name is not taken in another capacity region.`,
	}
)
