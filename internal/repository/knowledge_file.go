package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/graph"
)

type fileKnowledge struct {
	path string
}

// NewFileKnowledgeRepository - keeps the graph as a JSON document at path.
func NewFileKnowledgeRepository(path string) KnowledgeRepository {
	return &fileKnowledge{
		path: path,
	}
}

func (that *fileKnowledge) Load(_ context.Context) (*graph.Graph, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperror.ErrKnowledgeNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge file: %w", err)
	}

	knowledge := graph.New()
	if err = json.Unmarshal(data, knowledge); err != nil {
		return nil, fmt.Errorf("failed to decode knowledge file: %w", err)
	}

	return knowledge, nil
}

// Save - writes a temporary file next to path and renames it over path.
func (that *fileKnowledge) Save(_ context.Context, knowledge *graph.Graph) error {
	data, err := json.Marshal(knowledge)
	if err != nil {
		return fmt.Errorf("failed to encode knowledge: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(that.path), filepath.Base(that.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write knowledge: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close knowledge file: %w", err)
	}

	if err = os.Rename(tmp.Name(), that.path); err != nil {
		return fmt.Errorf("failed to replace knowledge file: %w", err)
	}

	return nil
}
