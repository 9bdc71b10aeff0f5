package types

type Outcome string

const (
	OutcomeCreated        Outcome = "Created"
	OutcomeAlreadyExisted Outcome = "AlreadyExisted"
	// OutcomeForceSkipped marks a resource that already existed while a forced
	// recreation was requested. Recreation is not implemented; the existing
	// resource is reused and the request is acknowledged with this outcome.
	OutcomeForceSkipped Outcome = "ForceSkipped"
	OutcomeFailed       Outcome = "Failed"
)

type DeploymentReport struct {
	WorkspaceName    string
	CapacityName     string
	WorkspaceOutcome Outcome

	Created  map[string]Outcome
	Existing map[string]Outcome
	Failed   map[string]Outcome

	FolderWarnings int
}

func NewDeploymentReport(workspaceName string, capacityName string) *DeploymentReport {
	return &DeploymentReport{
		WorkspaceName: workspaceName,
		CapacityName:  capacityName,
		Created:       map[string]Outcome{},
		Existing:      map[string]Outcome{},
		Failed:        map[string]Outcome{},
	}
}

func (report *DeploymentReport) SucceededCount() int {
	return len(report.Created) + len(report.Existing)
}

func (report *DeploymentReport) TargetCount() int {
	return report.SucceededCount() + len(report.Failed)
}

func (report *DeploymentReport) FullyProvisioned() bool {
	return len(report.Failed) == 0
}

// OutcomeFor returns the recorded outcome for a lakehouse name, searching the
// three buckets in created, existing, failed order.
func (report *DeploymentReport) OutcomeFor(name string) (Outcome, bool) {
	if outcome, ok := report.Created[name]; ok {
		return outcome, true
	}
	if outcome, ok := report.Existing[name]; ok {
		return outcome, true
	}
	if outcome, ok := report.Failed[name]; ok {
		return outcome, true
	}
	return "", false
}
