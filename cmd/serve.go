package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/minedu-grd/encuesta-cli/internal/dataset"
	"github.com/minedu-grd/encuesta-cli/internal/export"
	"github.com/minedu-grd/encuesta-cli/internal/report"
	"github.com/minedu-grd/encuesta-cli/internal/survey"
)

var servePort int

// errBadQuestionIndex marks an out-of-range {index} path parameter.
var errBadQuestionIndex = eris.New("question index out of range")

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard computations as a JSON API",
	Long: `Starts an HTTP server exposing the report computations: question list,
regional summary, per-question frequency tables with chart series, and CSV
downloads. Filters are query parameters (region, tier); each request is one
synchronous recomputation over the cached dataset.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		b := newBuilder()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(b),
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			zap.L().Info("starting server", zap.Int("port", port))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func newRouter(b *report.Builder) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/questions", func(w http.ResponseWriter, _ *http.Request) {
		questions, err := b.Questions()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
	})

	r.Get("/api/report", func(w http.ResponseWriter, req *http.Request) {
		rep, err := b.Build(filterFrom(req), req.URL.Query()["q"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	})

	r.Get("/api/summary", func(w http.ResponseWriter, req *http.Request) {
		ds, err := b.Filtered(filterFrom(req))
		if err != nil {
			writeError(w, err)
			return
		}
		table, err := survey.RegionSummary(ds, cfg.Columns.Region)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"kpi":     survey.Headline(ds, cfg.Columns.Region, cfg.Columns.Normalized),
			"summary": table,
		})
	})

	r.Get("/api/questions/{index}/table", func(w http.ResponseWriter, req *http.Request) {
		question, ds, err := questionFrom(b, req)
		if err != nil {
			writeError(w, err)
			return
		}
		table, err := b.QuestionTable(ds, question)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"question": question, "table": table})
	})

	r.Get("/api/questions/{index}/export", func(w http.ResponseWriter, req *http.Request) {
		question, ds, err := questionFrom(b, req)
		if err != nil {
			writeError(w, err)
			return
		}
		table, err := b.QuestionTable(ds, question)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(question)))
		if err := export.WriteFreqCSV(w, table); err != nil {
			zap.L().Error("csv export failed", zap.String("question", question), zap.Error(err))
		}
	})

	r.Get("/api/rows", func(w http.ResponseWriter, req *http.Request) {
		ds, err := b.Filtered(filterFrom(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ds)
	})

	return r
}

func filterFrom(req *http.Request) survey.Filter {
	return survey.Filter{
		Region: req.URL.Query().Get("region"),
		Tier:   req.URL.Query().Get("tier"),
	}
}

// questionFrom resolves the {index} path parameter (1-based, matching the
// dashboard's Q1..Qn tabs) against the filtered dataset's question list.
func questionFrom(b *report.Builder, req *http.Request) (string, *dataset.Dataset, error) {
	ds, err := b.Filtered(filterFrom(req))
	if err != nil {
		return "", nil, err
	}

	questions := survey.Questions(ds, cfg.Columns.Exclude)
	idx, err := strconv.Atoi(chi.URLParam(req, "index"))
	if err != nil || idx < 1 || idx > len(questions) {
		return "", nil, eris.Wrapf(errBadQuestionIndex, "index %q of %d questions", chi.URLParam(req, "index"), len(questions))
	}
	return questions[idx-1], ds, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

// writeError maps the core's error kinds onto HTTP statuses. An empty filter
// result is a valid terminal state, not a failure: 200 with an empty flag so
// the frontend shows its "no data" message.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, survey.ErrEmptyFilterResult):
		writeJSON(w, http.StatusOK, map[string]any{
			"empty":   true,
			"message": "No hay datos para la combinación seleccionada de filtros.",
		})
	case errors.Is(err, dataset.ErrSourceNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, dataset.ErrUnsupportedFormat),
		errors.Is(err, dataset.ErrMalformedSource),
		errors.Is(err, dataset.ErrMissingColumn),
		errors.Is(err, survey.ErrNoQuestions),
		errors.Is(err, errBadQuestionIndex):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		zap.L().Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
