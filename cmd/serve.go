package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hayleefay/biomusic/config"
	"github.com/hayleefay/biomusic/midi"
	"github.com/hayleefay/biomusic/model"
	"github.com/hayleefay/biomusic/protein"
	"github.com/hayleefay/biomusic/song"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves the JSON API`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return serve(cfg)
	},
}

type ProteinFetcher interface {
	Fetch(ctx context.Context, accession string) (*model.Protein, error)
}

type Server struct {
	fetcher  ProteinFetcher
	validate *validator.Validate
}

func NewServer(fetcher ProteinFetcher) *Server {
	return &Server{fetcher: fetcher, validate: validator.New()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logWriteError(w, err)
	}
}

// logWriteError reports a response that could not be sent. The status line
// has already gone out, so the error can only be logged.
func logWriteError(w http.ResponseWriter, err error) {
	log.Printf("%v write failed: %v", w.Header().Get("X-Request-Id"), err)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Error: detail})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrInputTooShort),
		errors.Is(err, model.ErrInvalidRegion),
		errors.Is(err, model.ErrUnknownKey):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func formatValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		e := validationErrors[0]
		return fmt.Sprintf("%v failed on %v", e.Namespace(), e.Tag())
	}
	return err.Error()
}

func (s *Server) HandleCompose(w http.ResponseWriter, r *http.Request) {
	var input model.ComposeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not read request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&input); err != nil {
		writeError(w, http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	res, err := song.Compose(input.Title, strings.ToUpper(input.Sequence), input.Regions)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// songFor fetches a record and composes it. Every retrieval failure is
// reported with the same message; the cause only goes to the log.
func (s *Server) songFor(w http.ResponseWriter, r *http.Request, accession string) (*model.Song, bool) {
	p, err := s.fetcher.Fetch(r.Context(), accession)
	if err != nil {
		log.Printf("fetch %v: %v", accession, err)
		writeError(w, http.StatusBadGateway, "Could not retrieve protein "+accession)
		return nil, false
	}
	res, err := song.FromProtein(p)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return nil, false
	}
	return res, true
}

func (s *Server) HandleSong(w http.ResponseWriter, r *http.Request) {
	var input model.SongRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not read request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&input); err != nil {
		writeError(w, http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	res, ok := s.songFor(w, r, input.Accession)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) HandleMidi(w http.ResponseWriter, r *http.Request) {
	accession := mux.Vars(r)["accession"]
	res, ok := s.songFor(w, r, accession)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := midi.Write(&buf, res); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", accession+".mid"))
	if _, err := w.Write(buf.Bytes()); err != nil {
		logWriteError(w, err)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%v %v %v %v", id, r.Method, r.URL.Path, time.Since(start))
	})
}

func NewRouter(fetcher ProteinFetcher, allowedOrigins []string) http.Handler {
	s := NewServer(fetcher)

	router := mux.NewRouter().StrictSlash(true)
	router.Use(logRequests)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	router.HandleFunc("/compose", s.HandleCompose).Methods("POST")
	router.HandleFunc("/song", s.HandleSong).Methods("POST")
	router.HandleFunc("/song/{accession}/midi", s.HandleMidi).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Request-Id", "Content-Disposition"},
	})
	return c.Handler(router)
}

func serve(cfg *config.Config) error {
	handler := NewRouter(protein.NewClient(&cfg.NCBI), cfg.CORS.AllowedOrigins)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("Listening on %v", srv.Addr)
	return srv.ListenAndServe()
}
