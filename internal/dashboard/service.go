package dashboard

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/metrics"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/repositories"
)

const maxMessageSize = 4096

// Store provides the read models the dashboard serves. Implementations
// return repositories.ErrInterviewNotFound, repositories.ErrCandidateNotFound
// and services.ErrForbidden for the cases the router maps to wire errors.
type Store interface {
	InterviewByID(ctx context.Context, id string) (*models.Interview, error)
	CandidatesByInterview(ctx context.Context, interviewID string) ([]models.Candidate, error)
	SubmittedCounts(ctx context.Context, interviewID string, candidateIDs []string) (map[string]int, error)
	CandidateTranscript(ctx context.Context, interviewID, candidateID, interviewerID string) (*models.CandidateDetails, error)
}

// TokenVerifier maps a bearer token to an interviewer identity.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// TokenVerifierFunc adapts a function to the TokenVerifier interface.
type TokenVerifierFunc func(token string) (string, error)

func (f TokenVerifierFunc) VerifyToken(token string) (string, error) { return f(token) }

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Service owns the live dashboard: admission, the room registry, snapshot
// push, message routing, and the liveness sweep. One instance is constructed
// in main and injected into the router.
type Service struct {
	store    Store
	verifier TokenVerifier
	registry *Registry
	log      *zap.Logger

	pingInterval time.Duration
	done         chan struct{}
	stopOnce     sync.Once
}

func NewService(store Store, verifier TokenVerifier, logger *zap.Logger, pingInterval time.Duration) *Service {
	return &Service{
		store:        store,
		verifier:     verifier,
		registry:     NewRegistry(),
		log:          logger,
		pingInterval: pingInterval,
		done:         make(chan struct{}),
	}
}

// Start launches the liveness sweep.
func (s *Service) Start() {
	go s.sweepLoop()
}

// HandleWS upgrades GET /ws/dashboard?token=...&interviewId=... and runs the
// connection until the peer goes away or the server shuts down.
func (s *Service) HandleWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	interviewID := r.URL.Query().Get("interviewId")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	if token == "" || interviewID == "" {
		s.reject(conn, websocket.ClosePolicyViolation, ReasonMissingParams)
		return
	}

	interviewerID, err := s.verifier.VerifyToken(token)
	if err != nil {
		s.reject(conn, websocket.ClosePolicyViolation, ReasonInvalidToken)
		return
	}

	interview, err := s.store.InterviewByID(r.Context(), interviewID)
	if errors.Is(err, repositories.ErrInterviewNotFound) {
		s.reject(conn, websocket.ClosePolicyViolation, ReasonInterviewMissing)
		return
	}
	if err != nil {
		s.log.Error("Dashboard handshake failed",
			zap.Error(err),
			zap.String("interview_id", interviewID))
		s.reject(conn, websocket.CloseInternalServerErr, ReasonHandshakeError)
		return
	}
	if interview.InterviewerID != interviewerID {
		s.reject(conn, websocket.ClosePolicyViolation, ReasonNotOwner)
		return
	}

	client := NewClient(conn, interviewerID, interviewID)
	s.registry.Join(interviewID, client)
	metrics.DashboardConnections.Inc()
	metrics.DashboardRooms.Set(float64(s.registry.RoomCount()))
	defer func() {
		s.registry.Leave(interviewID, client)
		metrics.DashboardConnections.Dec()
		metrics.DashboardRooms.Set(float64(s.registry.RoomCount()))
	}()

	conn.SetPongHandler(func(string) error {
		client.MarkAlive()
		return nil
	})

	s.log.Info("Dashboard connected",
		zap.String("interview_id", interviewID),
		zap.String("interviewer_id", interviewerID))

	s.sendSnapshot(r.Context(), client, interview)

	// Event loop. Raw reads, not ReadJSON: a malformed frame answers with an
	// error event and must not drop the connection.
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		client.MarkAlive()
		s.route(client, raw)
	}
}

// reject closes the handshake with a policy close frame. The peer never
// joins the registry.
func (s *Service) reject(conn *websocket.Conn, code int, reason string) {
	s.log.Warn("Dashboard connection rejected", zap.Int("code", code), zap.String("reason", reason))
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}

func (s *Service) sweepLoop() {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep force-closes connections that stayed silent through a full interval,
// then clears the flag on the rest and pings them.
func (s *Service) sweep() {
	for _, c := range s.registry.Connections() {
		if !c.Alive() {
			s.log.Warn("Closing unresponsive dashboard connection",
				zap.String("interview_id", c.InterviewID),
				zap.String("interviewer_id", c.InterviewerID))
			c.Close()
			continue
		}
		c.ResetAlive()
		if err := c.Ping(); err != nil {
			c.Close()
		}
	}
}

// Shutdown stops the sweep, closes every connection with 1001 and clears the
// registry. The HTTP server hosting the endpoint is shut down by the caller
// afterwards.
func (s *Service) Shutdown() {
	s.stopOnce.Do(func() { close(s.done) })
	for _, c := range s.registry.Connections() {
		c.CloseWithReason(websocket.CloseGoingAway, ReasonShuttingDown)
	}
	s.registry.Clear()
	metrics.DashboardRooms.Set(0)
	s.log.Info("Dashboard drained")
}
