package service

import (
	"github.com/bwmarrin/snowflake"
)

const orderNumberPrefix = "ORD-"

type OrderNumberGenerator interface {
	Next() string
}

// SnowflakeOrderNumbers issues time-ordered order numbers that stay unique
// across instances as long as each instance runs with its own node id.
type SnowflakeOrderNumbers struct {
	node *snowflake.Node
}

func NewSnowflakeOrderNumbers(nodeID int64) (*SnowflakeOrderNumbers, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &SnowflakeOrderNumbers{node: node}, nil
}

func (g *SnowflakeOrderNumbers) Next() string {
	return orderNumberPrefix + g.node.Generate().String()
}
