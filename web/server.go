// Package web serves generated models for preview: a JSON index of the
// run's output plus GLB downloads straight from the output directory.
package web

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/itemforge/itemforge/logger"
)

// ModelInfo is one generated model as reported by the index endpoint.
type ModelInfo struct {
	Name      string `json:"name"`
	File      string `json:"file"`
	Vertices  int    `json:"vertices"`
	Triangles int    `json:"triangles"`
	Budget    int    `json:"budget"`
}

type Server struct {
	dir    string
	models []ModelInfo
}

// StartServer serves the model index and GLB files from dir on addr until
// the listener fails. Blocks.
func StartServer(addr, dir string, models []ModelInfo) error {
	s := &Server{dir: dir, models: models}

	r := mux.NewRouter()
	r.HandleFunc("/json/models", s.HandlerModels)
	r.HandleFunc("/model/{name}", s.HandlerModel)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(dir)))

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	logger.Info("starting preview server", zap.String("addr", addr), zap.String("dir", dir))

	return http.ListenAndServe(addr, h)
}
