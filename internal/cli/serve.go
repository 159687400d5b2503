package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/img2swipes/img2swipes/pkg/plan"
)

// serveCommand creates the serve command: a small HTTP inspector for
// the artifacts directory.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the artifacts directory over HTTP",
		Long: `Serve starts an HTTP server exposing generated artifacts for inspection
in a browser: plan documents under /plans/{id} and raw files (previews
included) under /artifacts/.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			return c.serveArtifacts(cmd.Context(), addr, cfg.ArtifactsDir)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.toml")
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	return cmd
}

// artifactsRouter builds the inspector routes over one artifacts
// directory.
func artifactsRouter(dir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/plans", func(w http.ResponseWriter, req *http.Request) {
		ids, err := listPlanIDs(dir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"plans": ids})
	})
	r.Get("/plans/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		p, err := plan.Read(filepath.Join(dir, id+".json"))
		if err != nil {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		writeJSON(w, p)
	})
	r.Handle("/artifacts/*", http.StripPrefix("/artifacts/",
		http.FileServer(http.Dir(dir))))
	return r
}

func (c *CLI) serveArtifacts(ctx context.Context, addr, dir string) error {
	srv := &http.Server{Addr: addr, Handler: artifactsRouter(dir)}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	c.Logger.Info("serving artifacts", "addr", addr, "dir", dir)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// listPlanIDs finds the plan documents in dir, skipping preview files.
func listPlanIDs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
