// pkg/nix/constants.go
package nix

const (
	// DefaultStoreDir is where Nix keeps realised store paths
	DefaultStoreDir = "/nix/store"

	// DefaultOutput is the output whose store name carries no suffix
	DefaultOutput = "out"

	// IndexExtXZ marks an xz-compressed attribute index
	IndexExtXZ = ".xz"
)
