// Package httpapi is the engine's mux-routed inspection/control
// surface: a small REST API for starting coroutine events, reading
// property snapshots, reading/writing Base Provider channels, and
// advancing the song clock.
package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bsq-ports/tracks-rs/internal/coroutine"
	"github.com/bsq-ports/tracks-rs/internal/enginectx"
	"github.com/bsq-ports/tracks-rs/internal/livefeed"
	"github.com/bsq-ports/tracks-rs/internal/pointdef"
	"github.com/bsq-ports/tracks-rs/internal/shard"
	"github.com/bsq-ports/tracks-rs/internal/snapshot"
	"github.com/bsq-ports/tracks-rs/pkg/trackstypes"
)

const defaultSnapshotExpiry = 24 * time.Hour

// Server wires a Tracks Context to an HTTP router.
type Server struct {
	engine     *enginectx.Context
	defaultBPM float32
	hub        *livefeed.Hub   // nil if the host never called SetBroadcaster
	shards     *shard.Router   // nil if the host never called SetShardRouter
	snapshots  *snapshot.Store // nil if the host never called SetSnapshotStore
	lastTick   time.Time
}

// New builds a Server over engine, using defaultBPM for every event
// (EventRequest carries no BPM of its own); the engine itself has no
// notion of BPM, it is purely a unit conversion the host supplies.
func New(engine *enginectx.Context, defaultBPM float32) *Server {
	return &Server{engine: engine, defaultBPM: defaultBPM}
}

// SetBroadcaster attaches hub so every successful /tick call also
// fans the set of changed property slots out over the debug websocket
// feed. Optional: a Server with no broadcaster just skips the fan-out.
func (s *Server) SetBroadcaster(hub *livefeed.Hub) { s.hub = hub }

// SetShardRouter attaches router so GET /shard/{contextID} can report
// which worker shard a multi-instance host should run a given tracks
// context id on. This single Server only ever runs one context, so
// the endpoint is purely advisory for a host that runs many.
func (s *Server) SetShardRouter(router *shard.Router) { s.shards = router }

// SetSnapshotStore attaches store so /sessions/{id}/snapshot can
// persist and restore the base provider context. Optional: without a
// store, the snapshot routes report 501.
func (s *Server) SetSnapshotStore(store *snapshot.Store) { s.snapshots = store }

// RegisterRoutes installs every endpoint on router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/tracks/{name}/events", s.handlePostEvent).Methods("POST")
	router.HandleFunc("/tracks/{name}", s.handleGetTrack).Methods("GET")
	router.HandleFunc("/channels/{name}", s.handleGetChannel).Methods("GET")
	router.HandleFunc("/channels/{name}", s.handlePutChannel).Methods("PUT")
	router.HandleFunc("/tick", s.handlePostTick).Methods("POST")
	router.HandleFunc("/shard/{contextID}", s.handleGetShard).Methods("GET")
	router.HandleFunc("/sessions/{id}/snapshot", s.handlePostSnapshot).Methods("POST")
	router.HandleFunc("/sessions/{id}/snapshot", s.handleGetSnapshot).Methods("GET")
	router.HandleFunc("/health", s.handleHealth).Methods("GET")

	log.Println("[httpapi] routes registered")
}

// handlePostEvent starts a coroutine event on the named track,
// accepting a parsed-tree point definition.
func (s *Server) handlePostEvent(w http.ResponseWriter, r *http.Request) {
	trackName := mux.Vars(r)["name"]
	key, ok := s.engine.Tracks().KeyByName(trackName)
	if !ok {
		sendError(w, http.StatusNotFound, "TRACK_NOT_FOUND", "no such track: "+trackName)
		return
	}

	var req trackstypes.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	kind, ok := trackstypes.ParseKind(req.ValueKind)
	if !ok {
		sendError(w, http.StatusBadRequest, "INVALID_REQUEST", "unknown value_kind "+req.ValueKind)
		return
	}

	eventKind, ok := parseEventKind(req.Kind)
	if !ok {
		sendError(w, http.StatusBadRequest, "INVALID_REQUEST", "unknown event kind "+req.Kind)
		return
	}

	var pointData *pointdef.Definition
	if len(req.Points) > 0 {
		def, err := pointdef.Parse(kind, req.Points, s.engine.Providers())
		if err != nil {
			sendError(w, http.StatusBadRequest, "INVALID_POINT_DATA", err.Error())
			return
		}
		pointData = def
	}

	bpm := s.defaultBPM
	data := coroutine.EventData{
		Kind:         eventKind,
		TrackKey:     key,
		PropertyName: req.Property,
		PointData:    pointData,
		RawDuration:  req.RawDuration,
		StartTime:    req.StartTime,
		Easing:       req.Easing,
		Repeat:       req.Repeat,
	}

	if err := s.engine.StartEvent(bpm, req.StartTime, data); err != nil {
		sendError(w, http.StatusUnprocessableEntity, "EVENT_FAILED", err.Error())
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// handleGetTrack returns a snapshot of every value property on a
// track.
func (s *Server) handleGetTrack(w http.ResponseWriter, r *http.Request) {
	trackName := mux.Vars(r)["name"]
	tr, ok := s.engine.Tracks().ByName(trackName)
	if !ok {
		sendError(w, http.StatusNotFound, "TRACK_NOT_FOUND", "no such track: "+trackName)
		return
	}

	snapshot := trackstypes.TrackSnapshot{Name: trackName}
	for id, prop := range tr.Properties.All() {
		dto := trackstypes.PropertyDTO{Name: id, LastUpdated: prop.LastUpdated().UnixMilli()}
		if v, ok := prop.Get(); ok {
			vd := trackstypes.FromValue(v)
			dto.Value = &vd
		}
		snapshot.Properties = append(snapshot.Properties, dto)
	}

	sendJSON(w, http.StatusOK, snapshot)
}

// handleGetChannel reads one base provider channel.
func (s *Server) handleGetChannel(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	v, err := s.engine.Providers().Get(name)
	if err != nil {
		sendError(w, http.StatusNotFound, "UNKNOWN_CHANNEL", err.Error())
		return
	}
	sendJSON(w, http.StatusOK, trackstypes.ChannelDTO{Name: name, Value: trackstypes.FromValue(v)})
}

// handlePutChannel writes one base provider channel. The host must
// not call this while a tick is in flight; this handler makes no
// attempt to enforce that beyond the happens-before ordering HTTP
// request handling already gives it.
func (s *Server) handlePutChannel(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var dto trackstypes.ChannelDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	v, err := dto.Value.ToValue()
	if err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := s.engine.Providers().Set(name, v); err != nil {
		sendError(w, http.StatusUnprocessableEntity, "KIND_MISMATCH", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handlePostTick advances every live coroutine task by one pulse.
func (s *Server) handlePostTick(w http.ResponseWriter, r *http.Request) {
	var req trackstypes.TickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	since := s.lastTick
	if err := s.engine.Tick(req.SongTime); err != nil {
		sendError(w, http.StatusInternalServerError, "TICK_FAILED", err.Error())
		return
	}
	s.lastTick = time.Now()

	if s.hub != nil {
		diffs := livefeed.CollectDiffs(s.engine.Tracks(), since)
		if err := s.hub.BroadcastTick(livefeed.TickMessage{SongTime: req.SongTime, Diffs: diffs}); err != nil {
			log.Printf("[httpapi] tick broadcast failed: %v", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePostSnapshot persists the current base provider context under
// the path's session id, so a restarted host can resume mid-song via
// handleGetSnapshot.
func (s *Server) handlePostSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.snapshots == nil {
		sendError(w, http.StatusNotImplemented, "SNAPSHOTS_DISABLED", "no snapshot store configured")
		return
	}
	sessionID := mux.Vars(r)["id"]

	var req trackstypes.TickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := s.snapshots.Save(sessionID, s.engine.Providers(), req.SongTime, defaultSnapshotExpiry); err != nil {
		sendError(w, http.StatusInternalServerError, "SNAPSHOT_SAVE_FAILED", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetSnapshot restores a previously saved Base Provider Context
// snapshot into the live engine, reporting the song time it was saved
// at so the host can resume ticking from there.
func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.snapshots == nil {
		sendError(w, http.StatusNotImplemented, "SNAPSHOTS_DISABLED", "no snapshot store configured")
		return
	}
	sessionID := mux.Vars(r)["id"]

	songTime, ok, err := s.snapshots.Load(sessionID, s.engine.Providers())
	if err != nil {
		sendError(w, http.StatusInternalServerError, "SNAPSHOT_LOAD_FAILED", err.Error())
		return
	}
	if !ok {
		sendError(w, http.StatusNotFound, "SNAPSHOT_NOT_FOUND", "no snapshot for session "+sessionID)
		return
	}
	sendJSON(w, http.StatusOK, trackstypes.TickRequest{SongTime: songTime})
}

// handleGetShard reports the worker shard a multi-instance host
// should route a tracks context id to.
func (s *Server) handleGetShard(w http.ResponseWriter, r *http.Request) {
	if s.shards == nil {
		sendError(w, http.StatusNotImplemented, "SHARDING_DISABLED", "no shard router configured")
		return
	}
	contextID := mux.Vars(r)["contextID"]
	sendJSON(w, http.StatusOK, map[string]any{
		"context_id":  contextID,
		"shard":       s.shards.ShardFor(contextID),
		"shard_index": s.shards.ShardIndexFor(contextID),
		"shard_count": s.shards.Count(),
	})
}

func parseEventKind(s string) (coroutine.EventKind, bool) {
	switch s {
	case "animate_value":
		return coroutine.AnimateValue, true
	case "assign_path":
		return coroutine.AssignPath, true
	default:
		return 0, false
	}
}

func sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func sendError(w http.ResponseWriter, status int, code, message string) {
	sendJSON(w, status, trackstypes.ErrorResponse{Code: code, Message: message})
}
