package main

import (
	"flag"
	"log"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/itemforge/itemforge/config"
	"github.com/itemforge/itemforge/glbexport"
	"github.com/itemforge/itemforge/items"
	"github.com/itemforge/itemforge/logger"
	"github.com/itemforge/itemforge/utils"
	"github.com/itemforge/itemforge/web"
)

func main() {
	var confPath, out, addr, only string
	var dump, serve bool
	flag.StringVar(&confPath, "config", "", "Path to YAML manifest")
	flag.StringVar(&out, "out", "", "Output directory override")
	flag.StringVar(&addr, "i", "", "Address of preview server override")
	flag.StringVar(&only, "only", "", "Generate a single item by name")
	flag.BoolVar(&dump, "dump", false, "Dump buffers of generated meshes")
	flag.BoolVar(&serve, "serve", false, "Serve generated models after the run")
	flag.Parse()

	cfg, err := config.Load(confPath)
	if err != nil {
		log.Fatal(err)
	}
	if out != "" {
		cfg.OutputDir = out
	}
	if addr != "" {
		cfg.ListenAddr = addr
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	all := items.All()
	if only != "" {
		item, ok := items.Find(only)
		if !ok {
			logger.Fatal("unknown item", zap.String("item", only))
		}
		all = []items.Item{item}
	}

	var generated []web.ModelInfo
	failed := 0
	for _, item := range all {
		mesh := item.Build()
		path := filepath.Join(cfg.OutputDir, item.Name+".glb")

		tris, err := glbexport.Write(&mesh, item.Name, path)
		if err != nil {
			// fatal for this asset only, the rest of the batch continues
			logger.Error("failed to write model", zap.String("item", item.Name), zap.Error(err))
			failed++
			continue
		}

		budget := cfg.Budget(item.Name, item.TriangleBudget)
		status := "OK"
		if tris > budget {
			status = "OVER LIMIT"
		}
		logger.Info("generated model",
			zap.String("item", item.Name),
			zap.String("file", path),
			zap.Int("vertices", mesh.VertexCount()),
			zap.Int("triangles", tris),
			zap.Int("budget", budget),
			zap.String("status", status))

		if dump {
			utils.Dump(item.Name, mesh)
		}

		generated = append(generated, web.ModelInfo{
			Name:      item.Name,
			File:      path,
			Vertices:  mesh.VertexCount(),
			Triangles: tris,
			Budget:    budget,
		})
	}

	if failed > 0 {
		logger.Warn("some models failed", zap.Int("failed", failed))
	}

	if serve {
		if err := web.StartServer(cfg.ListenAddr, cfg.OutputDir, generated); err != nil {
			logger.Fatal("preview server", zap.Error(err))
		}
	}
}
