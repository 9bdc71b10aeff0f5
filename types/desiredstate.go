package types

// Resource name suffixes used by the fab item namespace.
const (
	WorkspaceSuffix = ".Workspace"
	LakehouseSuffix = ".Lakehouse"
	CapacitySuffix  = ".Capacity"

	// FilesRoot is the fixed subtree of a lakehouse that holds folders.
	FilesRoot = "Files"
)

type DesiredLakehouse struct {
	Name    string
	Folders []string
}

type DesiredTree struct {
	Lakehouses []DesiredLakehouse
}

// DefaultTree returns the medallion layout: Bronze, Silver and Gold
// lakehouses, each with a fixed folder set. The tree is hard-coded and
// deliberately not derived from any file.
func DefaultTree() DesiredTree {
	return DesiredTree{
		Lakehouses: []DesiredLakehouse{
			{Name: "LH_Bronze", Folders: []string{"landing", "raw", "quarantine"}},
			{Name: "LH_Silver", Folders: []string{"cleansed", "conformed", "rejected"}},
			{Name: "LH_Gold", Folders: []string{"curated", "aggregates", "exports"}},
		},
	}
}
