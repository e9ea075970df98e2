// pkg/nix/types.go
package nix

import (
	"log"
)

// IndexEntry is one record of the attribute index JSON
type IndexEntry struct {
	Attribute   string `json:"Attribute"`
	NameVersion string `json:"NameVersion"`
	StorePath   string `json:"StorePath"`
}

// Config configures the store resolvers
type Config struct {
	StoreDir string      // Default: /nix/store
	Relocate string      // Optional directory store objects were copied into
	Debug    bool        // Enable debug logging
	Logger   *log.Logger // Custom logger (optional)
}

// object is a parsed store directory entry
type object struct {
	Path    string
	Pname   string
	Version string
	Output  string
}
