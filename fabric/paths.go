package fabric

import (
	"fmt"

	"github.com/azure/fabric-medallion-deployer/types"
)

// Path helpers for the fab item namespace. Every item reference carries its
// type suffix; folders live under the fixed Files subtree of a lakehouse.

func WorkspacePath(workspaceName string) string {
	return workspaceName + types.WorkspaceSuffix
}

func LakehousePath(workspaceName string, lakehouseName string) string {
	return fmt.Sprintf("%s/%s%s", WorkspacePath(workspaceName), lakehouseName, types.LakehouseSuffix)
}

func FilesPath(workspaceName string, lakehouseName string) string {
	return fmt.Sprintf("%s/%s", LakehousePath(workspaceName, lakehouseName), types.FilesRoot)
}

func FolderPath(workspaceName string, lakehouseName string, folder string) string {
	return fmt.Sprintf("%s/%s", FilesPath(workspaceName, lakehouseName), folder)
}
