package idgen

import (
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init sets up the process-wide snowflake node. nodeID must be unique per
// running instance (0-1023).
func Init(nodeID int64) {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		log.Fatalf("snowflake init failed: %v", err)
	}
	node = n
}

// New returns the next globally unique ID.
func New() uint64 {
	if node == nil {
		panic("idgen: not initialized")
	}
	return uint64(node.Generate().Int64())
}
