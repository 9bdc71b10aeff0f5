/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/azure/fabric-medallion-deployer/azure"
	"github.com/azure/fabric-medallion-deployer/capacity"
	"github.com/azure/fabric-medallion-deployer/deployerr"
	"github.com/azure/fabric-medallion-deployer/fabric"
	"github.com/azure/fabric-medallion-deployer/preflight"
	"github.com/azure/fabric-medallion-deployer/prompt"
	"github.com/azure/fabric-medallion-deployer/reconciler"
	"github.com/azure/fabric-medallion-deployer/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

// workspaceSettleDelay is waited after creating a workspace before lakehouse
// calls, the service needs a moment before new workspaces accept children.
const workspaceSettleDelay = 30 * time.Second

// deployCmd represents the deploy command
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the Bronze/Silver/Gold medallion layout",
	Long: `The deploy command provisions the medallion layout end to end:

1. Verifies the fab cli is installed and authenticated
2. Resolves the capacity to attach the workspace to
3. Creates the workspace if it does not exist
4. Creates the Bronze, Silver and Gold lakehouses if they do not exist
5. Creates the fixed folder set inside each lakehouse
6. Prints a summary of what was created, reused and failed

Examples:
  # Deploy with the default workspace name, picking a capacity interactively
  fabric-medallion-deployer deploy

  # Deploy against a specific capacity without prompting
  fabric-medallion-deployer deploy --workspaceName Sales_Lakehouse --capacityName fabcap01 --assumeYes

  # List capacities through Azure Resource Graph instead of the fab cli
  fabric-medallion-deployer deploy --capacitySource graph --subscriptionIDs 00000000-0000-0000-0000-000000000001`,
	Run: func(cmd *cobra.Command, args []string) {
		logVerbosity, _ := cmd.Flags().GetString("verbosity")
		logLevel, err := logrus.ParseLevel(logVerbosity)
		if err != nil {
			log.Fatalf("Invalid log level: %s", logVerbosity)
		}
		log.SetLevel(logLevel)
		log.SetFormatter(&logrus.TextFormatter{})
		if viper.GetBool("structuredLogs") {
			log.SetFormatter(&logrus.JSONFormatter{})
		}

		for key, value := range viper.GetViper().AllSettings() {
			log.Debugf("Command Flag: %s = %s", key, value)
		}

		fabricClient := fabric.NewFabricClient("fab", log)

		preflightClient := preflight.NewPreflightClient(fabricClient, log)
		if err := preflightClient.VerifyReady(); err != nil {
			failWith(err)
		}

		var prompter prompt.Prompter = prompt.NewPTermPrompter()
		if viper.GetBool("assumeYes") {
			prompter = prompt.NewAutoFailPrompter()
		}

		var lister capacity.ICapacityLister = fabricClient
		if viper.GetString("capacitySource") == "graph" {
			lister = azure.NewCapacityGraphClient(viper.GetStringSlice("subscriptionIDs"), log)
		}

		selectorClient := capacity.NewSelectorClient(lister, prompter, log)
		selected, err := selectorClient.ResolveCapacity(viper.GetString("capacityName"))
		if err != nil {
			failWith(err)
		}

		desiredTree := types.DefaultTree()
		reconcilerClient := reconciler.NewReconcilerClient(fabricClient, workspaceSettleDelay, log)
		report, err := reconcilerClient.Reconcile(viper.GetString("workspaceName"), selected, desiredTree, viper.GetBool("force"))
		if err != nil {
			failWith(err)
		}

		printSummary(report, desiredTree)
	},
}

// failWith prints the remediation hint attached to the error, if any, and
// exits non-zero.
func failWith(err error) {
	var deployError *deployerr.DeployError
	if errors.As(err, &deployError) {
		pterm.Println()
		pterm.Info.Println(deployError.Help())
	}
	log.Fatalf("Error: %s", err)
}

func printSummary(report *types.DeploymentReport, desiredTree types.DesiredTree) {
	pterm.Println()
	pterm.Info.Printfln("Workspace %s (capacity %s): %s", report.WorkspaceName, report.CapacityName, report.WorkspaceOutcome)

	data := pterm.TableData{{"Lakehouse", "Outcome"}}
	for _, lakehouse := range desiredTree.Lakehouses {
		outcome, ok := report.OutcomeFor(lakehouse.Name)
		if !ok {
			continue
		}
		data = append(data, []string{lakehouse.Name, string(outcome)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if report.FolderWarnings > 0 {
		pterm.Warning.Printfln("%d folder operations failed, see the log above", report.FolderWarnings)
	}

	if report.FullyProvisioned() {
		pterm.Success.Printfln("%d/%d lakehouses provisioned", report.SucceededCount(), report.TargetCount())
	} else {
		pterm.Warning.Printfln("%d/%d lakehouses provisioned", report.SucceededCount(), report.TargetCount())
	}
}

func init() {
	rootCmd.AddCommand(deployCmd)

	deployCmd.PersistentFlags().StringP("workspaceName", "w", "Medallion_Architecture", "Workspace to create or reuse")
	viper.BindPFlag("workspaceName", deployCmd.PersistentFlags().Lookup("workspaceName"))
	deployCmd.PersistentFlags().StringP("capacityName", "c", "", "Capacity to attach a new workspace to")
	viper.BindPFlag("capacityName", deployCmd.PersistentFlags().Lookup("capacityName"))
	deployCmd.PersistentFlags().BoolP("force", "f", false, "Request recreation of existing resources (acknowledged, not performed)")
	viper.BindPFlag("force", deployCmd.PersistentFlags().Lookup("force"))
	deployCmd.PersistentFlags().String("capacitySource", "cli", "Capacity listing source to use (cli or graph)")
	viper.BindPFlag("capacitySource", deployCmd.PersistentFlags().Lookup("capacitySource"))
	deployCmd.PersistentFlags().StringSlice("subscriptionIDs", nil, "Subscription IDs to search when using --capacitySource graph")
	viper.BindPFlag("subscriptionIDs", deployCmd.PersistentFlags().Lookup("subscriptionIDs"))
	deployCmd.PersistentFlags().BoolP("assumeYes", "y", false, "Never prompt, fail instead of waiting for input")
	viper.BindPFlag("assumeYes", deployCmd.PersistentFlags().Lookup("assumeYes"))
}
