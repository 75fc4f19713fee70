package handlers

import (
	"encoding/json"
	"net/http"
)

// KnowledgeSizer reports how much the CPU has learned.
type KnowledgeSizer interface {
	Len() int
	EdgeCount() int
}

type knowledgeStats struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

func PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// KnowledgeHandler - serves the size of the knowledge graph as JSON.
func KnowledgeHandler(knowledge KnowledgeSizer) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		stats := knowledgeStats{
			Nodes: knowledge.Len(),
			Edges: knowledge.EdgeCount(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
}
