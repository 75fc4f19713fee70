package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/graph"
)

// KnowledgeRepository is the load/save boundary of the CPU's knowledge graph.
// Load returns apperror.ErrKnowledgeNotFound when nothing was saved yet.
type KnowledgeRepository interface {
	Load(ctx context.Context) (*graph.Graph, error)
	Save(ctx context.Context, knowledge *graph.Graph) error
}

// dbKnowledge keeps a graph in one redis hash: field = node key, value = JSON edge list.
type dbKnowledge struct {
	client *redis.Client
	key    string
}

func NewRedisKnowledgeRepository(client *redis.Client, name string) KnowledgeRepository {
	return &dbKnowledge{
		client: client,
		key:    "knowledge:" + name,
	}
}

func (that *dbKnowledge) Load(ctx context.Context) (*graph.Graph, error) {
	fields, err := that.client.HGetAll(ctx, that.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get knowledge: %w", err)
	}

	if len(fields) == 0 {
		return nil, apperror.ErrKnowledgeNotFound
	}

	knowledge := graph.New()
	for name, value := range fields {
		var edges []graph.Edge
		if err = json.Unmarshal([]byte(value), &edges); err != nil {
			return nil, fmt.Errorf("failed to unmarshal edges of %s: %w", name, err)
		}

		knowledge.AddNode(name, edges...)
	}

	return knowledge, nil
}

// Save - replaces the stored graph in a single transaction.
func (that *dbKnowledge) Save(ctx context.Context, knowledge *graph.Graph) error {
	values := make(map[string]interface{}, knowledge.Len())
	for _, name := range knowledge.Names() {
		node, _ := knowledge.Node(name)

		edgesJSON, err := json.Marshal(node.Edges())
		if err != nil {
			return fmt.Errorf("failed to marshal edges of %s: %w", name, err)
		}

		values[name] = edgesJSON
	}

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, that.key)
		if len(values) > 0 {
			pipe.HSet(ctx, that.key, values)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save knowledge: %w", err)
	}

	return nil
}
