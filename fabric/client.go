package fabric

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/azure/fabric-medallion-deployer/tableparser"
	"github.com/azure/fabric-medallion-deployer/types"
)

type IFabricClient interface {
	Version() (string, error)
	ListTopLevel() ([]string, error)
	ListCapacities() ([]types.Capacity, error)
	ListChildren(parentPath string) ([]string, error)
	CreateWorkspace(name string, capacityName string) error
	CreateLakehouse(workspaceName string, name string) error
	CreateFolder(workspaceName string, lakehouseName string, folder string) error
}

// ICommandRunner runs the fab executable and returns its stdout.
type ICommandRunner interface {
	Run(name string, args ...string) (string, error)
}

type FabricClient struct {
	Executable string
	Runner     ICommandRunner
	Logger     *logrus.Logger
}

func NewFabricClient(executable string, logger *logrus.Logger) *FabricClient {
	if executable == "" {
		executable = "fab"
	}
	return &FabricClient{
		Executable: executable,
		Runner:     &execRunner{},
		Logger:     logger,
	}
}

func (client *FabricClient) Version() (string, error) {
	output, err := client.run("--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

func (client *FabricClient) ListTopLevel() ([]string, error) {
	output, err := client.run("ls")
	if err != nil {
		return nil, err
	}
	return readNames(output), nil
}

func (client *FabricClient) ListCapacities() ([]types.Capacity, error) {
	output, err := client.run("ls", "-l", ".capacities")
	if err != nil {
		return nil, err
	}

	capacities := []types.Capacity{}
	for _, row := range tableparser.ParseTable(output) {
		name := strings.TrimSuffix(row["name"], types.CapacitySuffix)
		if name == "" {
			continue
		}
		capacities = append(capacities, types.Capacity{
			Name:   name,
			ID:     row["id"],
			SKU:    row["sku"],
			Region: row["region"],
			State:  row["state"],
		})
	}
	return capacities, nil
}

func (client *FabricClient) ListChildren(parentPath string) ([]string, error) {
	output, err := client.run("ls", parentPath)
	if err != nil {
		return nil, err
	}
	return readNames(output), nil
}

func (client *FabricClient) CreateWorkspace(name string, capacityName string) error {
	_, err := client.run("mkdir", WorkspacePath(name), "-P", fmt.Sprintf("capacityname=%s", capacityName))
	return err
}

func (client *FabricClient) CreateLakehouse(workspaceName string, name string) error {
	_, err := client.run("mkdir", LakehousePath(workspaceName, name))
	return err
}

func (client *FabricClient) CreateFolder(workspaceName string, lakehouseName string, folder string) error {
	_, err := client.run("mkdir", FolderPath(workspaceName, lakehouseName, folder))
	return err
}

func (client *FabricClient) run(args ...string) (string, error) {
	client.Logger.Debugf("Running fab cli: %s %s", client.Executable, strings.Join(args, " "))
	output, err := client.Runner.Run(client.Executable, args...)
	if err != nil {
		client.Logger.Debugf("fab cli failed: %v", err)
		return output, fmt.Errorf("running %s %s: %w", client.Executable, strings.Join(args, " "), err)
	}
	return output, nil
}

// readNames splits listing output into one trimmed name per line.
func readNames(output string) []string {
	names := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(output, "\r", ""), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

type execRunner struct{}

func (runner *execRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	return stdout.String(), err
}
