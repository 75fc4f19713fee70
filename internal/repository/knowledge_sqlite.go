package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/graph"
)

type sqliteKnowledge struct {
	conn *sql.DB
	name string
}

// NewSQLiteKnowledgeRepository - stores graphs in the tables created by storage.Storage.Init.
func NewSQLiteKnowledgeRepository(conn *sql.DB, name string) KnowledgeRepository {
	return &sqliteKnowledge{
		conn: conn,
		name: name,
	}
}

func (that *sqliteKnowledge) Load(ctx context.Context) (*graph.Graph, error) {
	names, err := that.loadNodes(ctx)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return nil, apperror.ErrKnowledgeNotFound
	}

	edges, err := that.loadEdges(ctx)
	if err != nil {
		return nil, err
	}

	knowledge := graph.New()
	for _, name := range names {
		knowledge.AddNode(name, edges[name]...)
	}

	return knowledge, nil
}

func (that *sqliteKnowledge) loadNodes(ctx context.Context) ([]string, error) {
	query := `SELECT node FROM knowledge_nodes WHERE graph = ? ORDER BY node`

	rows, err := that.conn.QueryContext(ctx, query, that.name)
	if err != nil {
		return nil, fmt.Errorf("can't query nodes: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("can't scan node: %w", err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read nodes: %w", err)
	}

	return names, nil
}

func (that *sqliteKnowledge) loadEdges(ctx context.Context) (map[string][]graph.Edge, error) {
	query := `SELECT node, dest, weight FROM knowledge_edges WHERE graph = ? ORDER BY node, seq`

	rows, err := that.conn.QueryContext(ctx, query, that.name)
	if err != nil {
		return nil, fmt.Errorf("can't query edges: %w", err)
	}
	defer rows.Close()

	edges := make(map[string][]graph.Edge)
	for rows.Next() {
		var node string
		var edge graph.Edge
		if err = rows.Scan(&node, &edge.To, &edge.Weight); err != nil {
			return nil, fmt.Errorf("can't scan edge: %w", err)
		}
		edges[node] = append(edges[node], edge)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read edges: %w", err)
	}

	return edges, nil
}

// Save - replaces the stored graph inside one transaction.
func (that *sqliteKnowledge) Save(ctx context.Context, knowledge *graph.Graph) (err error) {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM knowledge_edges WHERE graph = ?`, that.name); err != nil {
		return fmt.Errorf("can't clear edges: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM knowledge_nodes WHERE graph = ?`, that.name); err != nil {
		return fmt.Errorf("can't clear nodes: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, `INSERT INTO knowledge_nodes (graph, node) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("can't prepare node insert: %w", err)
	}
	defer nodeStmt.Close()

	edgeStmt, err := tx.PrepareContext(ctx, `INSERT INTO knowledge_edges (graph, node, dest, weight, seq) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("can't prepare edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, name := range knowledge.Names() {
		if _, err = nodeStmt.ExecContext(ctx, that.name, name); err != nil {
			return fmt.Errorf("can't save node %s: %w", name, err)
		}

		node, _ := knowledge.Node(name)
		for seq, edge := range node.Edges() {
			if _, err = edgeStmt.ExecContext(ctx, that.name, name, edge.To, edge.Weight, seq); err != nil {
				return fmt.Errorf("can't save edge %s -> %s: %w", name, edge.To, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit knowledge: %w", err)
	}

	return nil
}
