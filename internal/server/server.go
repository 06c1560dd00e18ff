package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"sealpost/internal/domain"
	"sealpost/internal/mailbox"
	"sealpost/internal/registry"
)

// Server wires the registry and mailbox router to HTTP handlers.
type Server struct {
	log      *zap.Logger
	registry *registry.Registry
	router   *mailbox.Router
}

// New returns a server over the given registry and router.
func New(log *zap.Logger, reg *registry.Registry, router *mailbox.Router) *Server {
	return &Server{log: log, registry: reg, router: router}
}

// Routes builds the HTTP handler tree.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.accessLog)

	r.HandleFunc("/v1/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/v1/messages", s.handleSend).Methods(http.MethodPost)
	r.HandleFunc("/v1/inbox/{client_id}", s.handleInbox).Methods(http.MethodGet)
	r.HandleFunc("/v1/clients", s.handleClients).Methods(http.MethodGet)
	r.HandleFunc("/v1/clients/{client_id}", s.handleClientKey).Methods(http.MethodGet)
	return r
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.reject(w, http.StatusBadRequest, domain.CodeMalformedKey, "invalid register payload")
		return
	}
	if err := s.registry.Register(r.Context(), req.ClientID, req.SigningKey); err != nil {
		s.rejectErr(w, err)
		return
	}
	s.log.Info("client registered", zap.String("client_id", req.ClientID))
	s.respond(w, http.StatusOK, domain.RegisterResponse{ClientID: req.ClientID})
}

func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	var env domain.Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		s.reject(w, http.StatusBadRequest, domain.CodeMalformedEnvelope, "invalid envelope payload")
		return
	}
	if err := s.router.Deliver(r.Context(), env); err != nil {
		s.log.Warn("envelope rejected",
			zap.String("sender_id", env.SenderID),
			zap.String("recipient_id", env.RecipientID),
			zap.Error(err))
		s.rejectErr(w, err)
		return
	}
	s.log.Info("envelope queued",
		zap.String("sender_id", env.SenderID),
		zap.String("recipient_id", env.RecipientID),
		zap.String("message_id", env.MessageID))
	s.respond(w, http.StatusOK, domain.SendResponse{MessageID: env.MessageID})
}

func (s *Server) handleInbox(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["client_id"]
	envs, err := s.router.Fetch(r.Context(), clientID)
	if err != nil {
		s.rejectErr(w, err)
		return
	}
	if envs == nil {
		envs = []domain.Envelope{}
	}
	s.respond(w, http.StatusOK, domain.InboxResponse{Envelopes: envs})
}

func (s *Server) handleClientKey(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["client_id"]
	key, err := s.registry.Lookup(r.Context(), clientID)
	if err != nil {
		s.rejectErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, domain.ClientKeyResponse{ClientID: clientID, SigningKey: key})
}

func (s *Server) handleClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.registry.List(r.Context())
	if err != nil {
		s.rejectErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, domain.ClientListResponse{Clients: clients})
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("write response", zap.Error(err))
	}
}

func (s *Server) reject(w http.ResponseWriter, status int, code, msg string) {
	s.respond(w, status, domain.ErrorResponse{Code: code, Message: msg})
}

// rejectErr maps the domain taxonomy onto wire codes. Signature and
// decryption failures collapse into one generic code; registry and
// precondition errors stay precise so the sender can correct them.
func (s *Server) rejectErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSignature), errors.Is(err, domain.ErrDecryptionFailed):
		s.reject(w, http.StatusForbidden, domain.CodeInvalidEnvelope, "envelope failed verification")
	case errors.Is(err, domain.ErrMalformedEnvelope):
		s.reject(w, http.StatusBadRequest, domain.CodeMalformedEnvelope, err.Error())
	case errors.Is(err, domain.ErrMalformedKey):
		s.reject(w, http.StatusBadRequest, domain.CodeMalformedKey, err.Error())
	case errors.Is(err, domain.ErrUnknownSender):
		s.reject(w, http.StatusNotFound, domain.CodeUnknownSender, err.Error())
	case errors.Is(err, domain.ErrUnknownRecipient):
		s.reject(w, http.StatusNotFound, domain.CodeUnknownRecipient, err.Error())
	case errors.Is(err, domain.ErrUnknownClient):
		s.reject(w, http.StatusNotFound, domain.CodeUnknownClient, err.Error())
	case errors.Is(err, domain.ErrAlreadyRegistered):
		s.reject(w, http.StatusConflict, domain.CodeAlreadyRegistered, err.Error())
	case errors.Is(err, domain.ErrDuplicateMessage):
		s.reject(w, http.StatusConflict, domain.CodeDuplicateMessage, err.Error())
	default:
		s.log.Error("internal error", zap.Error(err))
		s.reject(w, http.StatusInternalServerError, domain.CodeInternal, "internal error")
	}
}
