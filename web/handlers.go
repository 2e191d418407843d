package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/itemforge/itemforge/webutils"
)

func (s *Server) HandlerModels(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, s.models)
}

func (s *Server) HandlerModel(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var found *ModelInfo
	for i := range s.models {
		if s.models[i].Name == name {
			found = &s.models[i]
			break
		}
	}
	if found == nil {
		webutils.WriteError(w, http.StatusNotFound, errors.Errorf("Unknown model %q", name))
		return
	}

	f, err := os.Open(filepath.Join(s.dir, filepath.Base(found.File)))
	if err != nil {
		webutils.WriteError(w, http.StatusInternalServerError, errors.Wrapf(err, "Failed to open %q", found.File))
		return
	}
	defer f.Close()

	webutils.WriteFile(w, f, name+".glb")
}
