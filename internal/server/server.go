package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/geofabric/geofabric/pkg/config"
	"github.com/geofabric/geofabric/pkg/feature"
	"github.com/geofabric/geofabric/pkg/proj"
	"github.com/geofabric/geofabric/pkg/sdb"
)

// Server exposes a structural database over a local HTTP API for
// interactive stereonet viewers.
type Server struct {
	db   *sdb.DB
	cfg  config.Config
	port int
}

// New creates a server over an open database.
func New(db *sdb.DB, cfg config.Config, port int) *Server {
	return &Server{db: db, cfg: cfg, port: port}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/structures", s.handleStructures)
	mux.HandleFunc("GET /api/sites", s.handleSites)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/projection", s.handleProjection)
	mux.HandleFunc("GET /api/rose", s.handleRose)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("geofabric server starting on http://localhost%s", addr)

	return http.ListenAndServe(addr, mux)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, sdb.ErrUnknownStructure) {
		code = http.StatusNotFound
	}
	if errors.Is(err, sdb.ErrWrongKind) || errors.Is(err, feature.ErrEmptySet) {
		code = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// lookup loads the named structure as the matching set kind. The
// returned pole set drives statistics for planar structures.
func (s *Server) lookup(name string) (vecs feature.Vector3Set, planar bool, err error) {
	ls, err := s.db.Lineations(name)
	if err == nil {
		return ls.Vector3Set(), false, nil
	}
	if !errors.Is(err, sdb.ErrWrongKind) {
		return feature.Vector3Set{}, false, err
	}
	fs, err := s.db.Foliations(name)
	if err != nil {
		return feature.Vector3Set{}, false, err
	}
	return fs.Vector3Set(), true, nil
}

func (s *Server) handleStructures(w http.ResponseWriter, _ *http.Request) {
	out, err := s.db.Structures()
	if err != nil {
		writeError(w, err)
		return
	}
	type structure struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Planar      bool   `json:"planar"`
	}
	resp := make([]structure, len(out))
	for i, st := range out {
		resp[i] = structure{Name: st.Name, Description: st.Description, Planar: st.Planar != 0}
	}
	writeJSON(w, resp)
}

func (s *Server) handleSites(w http.ResponseWriter, _ *http.Request) {
	out, err := s.db.Sites()
	if err != nil {
		writeError(w, err)
		return
	}
	type site struct {
		Name string  `json:"name"`
		X    float64 `json:"x"`
		Y    float64 `json:"y"`
	}
	resp := make([]site, len(out))
	for i, st := range out {
		resp[i] = site{Name: st.Name, X: st.X, Y: st.Y}
	}
	writeJSON(w, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("structure")
	set, planar, err := s.lookup(name)
	if err != nil {
		writeError(w, err)
		return
	}
	var azis, incs []float64
	var fisher feature.FisherStats
	var variance, delta, rdeg float64
	if planar {
		fs, _ := s.db.Foliations(name)
		res, err := fs.R(false)
		if err != nil {
			writeError(w, err)
			return
		}
		azi, inc := res.Geo()
		azis, incs = []float64{azi}, []float64{inc}
		fisher, _ = fs.FisherStatistics()
		variance, _ = fs.Var()
		delta, _ = fs.Delta()
		rdeg, _ = fs.RDegree()
	} else {
		ls, _ := s.db.Lineations(name)
		res, err := ls.R(false)
		if err != nil {
			writeError(w, err)
			return
		}
		azi, inc := res.Geo()
		azis, incs = []float64{azi}, []float64{inc}
		fisher, _ = ls.FisherStatistics()
		variance, _ = ls.Var()
		delta, _ = ls.Delta()
		rdeg, _ = ls.RDegree()
	}
	ot := set.Ortensor()
	e1, e2, e3 := ot.Eigenvalues()
	n := ot.Norm()
	writeJSON(w, map[string]any{
		"structure":   name,
		"planar":      planar,
		"n":           set.Len(),
		"resultant":   map[string]float64{"azi": azis[0], "inc": incs[0]},
		"fisher":      fisher,
		"variance":    variance,
		"delta":       delta,
		"rdegree":     rdeg,
		"eigenvalues": []float64{e1 / n, e2 / n, e3 / n},
		"shape":       ot.Shape(),
		"strength":    ot.Strength(),
		"vollmer":     map[string]float64{"p": ot.P(), "g": ot.G(), "r": ot.R(), "b": ot.B()},
		"intensity":   ot.Intensity(),
	})
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("structure")
	p := proj.ByName(r.URL.Query().Get("net"))
	set, planar, err := s.lookup(name)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := map[string]any{
		"structure": name,
		"net":       p.Name(),
		"points":    proj.ProjectVecs(p, set.Vecs()),
	}
	if planar {
		fs, _ := s.db.Foliations(name)
		circles := make([][]proj.Point, fs.Len())
		for i := 0; i < fs.Len(); i++ {
			circles[i] = proj.GreatCircle(p, fs.At(i), 91)
		}
		resp["circles"] = circles
	}
	writeJSON(w, resp)
}

func (s *Server) handleRose(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("structure")
	bins := s.cfg.RoseBins
	if b, err := strconv.Atoi(r.URL.Query().Get("bins")); err == nil && b > 0 {
		bins = b
	}
	_, planar, err := s.lookup(name)
	if err != nil {
		writeError(w, err)
		return
	}
	var dirs []float64
	if planar {
		fs, _ := s.db.Foliations(name)
		dirs, _ = fs.Geo()
	} else {
		ls, _ := s.db.Lineations(name)
		dirs, _ = ls.Geo()
	}
	writeJSON(w, map[string]any{
		"structure": name,
		"bins":      proj.Rose(dirs, bins, true),
	})
}
