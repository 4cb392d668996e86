package id

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates an opaque string ID with an entity-type prefix, e.g.
// "ws-1849301928374001664". The snowflake payload is time-ordered and
// unique across distributed instances.
func New(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, node.Generate().String())
}
