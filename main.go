/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/azure/fabric-medallion-deployer/cmd"

func main() {
	cmd.Execute()
}
