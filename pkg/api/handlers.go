package api

import (
	"encoding/json"
	"errors"
	"net/http"

	sferrors "github.com/matzehuels/spanforge/pkg/errors"
	"github.com/matzehuels/spanforge/pkg/geo"
	"github.com/matzehuels/spanforge/pkg/msf"
	"github.com/matzehuels/spanforge/pkg/pipeline"
)

// maxRequestBody caps construction request bodies at 16 MiB. Point files
// are a few megabytes at the very most.
const maxRequestBody = 16 << 20

// constructRequest is the body shared by /v1/cluster and /v1/connect.
type constructRequest struct {
	Points  string `json:"points,omitempty"`
	URL     string `json:"url,omitempty"`
	K       int    `json:"k,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`
}

// errorPayload is the JSON shape of all error responses.
type errorPayload struct {
	Error struct {
		Code    sferrors.Code `json:"code"`
		Message string        `json:"message"`
	} `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCluster(w http.ResponseWriter, r *http.Request) {
	s.handleConstruct(w, r, pipeline.ModeCluster)
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	s.handleConstruct(w, r, pipeline.ModeConnect)
}

func (s *Server) handleConstruct(w http.ResponseWriter, r *http.Request, mode string) {
	var req constructRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.writeError(w, sferrors.New(sferrors.ErrCodeInvalidInput, "decode request: %v", err))
		return
	}

	if req.K < 0 {
		s.writeError(w, sferrors.New(sferrors.ErrCodeInvalidK, "invalid k: %d (must be positive)", req.K))
		return
	}

	input, err := s.resolveInput(r, &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.runner.Run(r.Context(), input, pipeline.Options{
		Mode:    mode,
		K:       req.K,
		Refresh: req.Refresh,
	})
	if err != nil {
		s.writeError(w, classify(err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// resolveInput returns the raw point bytes from the request, fetching the
// remote file when a URL is given instead of inline points.
func (s *Server) resolveInput(r *http.Request, req *constructRequest) ([]byte, error) {
	switch {
	case req.Points != "" && req.URL != "":
		return nil, sferrors.New(sferrors.ErrCodeInvalidInput, "points and url are mutually exclusive")
	case req.Points != "":
		return []byte(req.Points), nil
	case req.URL != "":
		if s.fetcher == nil {
			return nil, sferrors.New(sferrors.ErrCodeInvalidInput, "url input is disabled")
		}
		data, err := s.fetcher.Fetch(r.Context(), req.URL)
		if err != nil {
			return nil, sferrors.Wrap(sferrors.ErrCodeNetwork, err, "fetch %s", req.URL)
		}
		return data, nil
	default:
		return nil, sferrors.New(sferrors.ErrCodeInvalidInput, "points or url is required")
	}
}

// classify maps pipeline sentinel errors onto structured codes. Anything
// unrecognized stays an internal error.
func classify(err error) error {
	var sfe *sferrors.Error
	if errors.As(err, &sfe) {
		return sfe
	}

	switch {
	case errors.Is(err, pipeline.ErrTooManyPoints):
		return sferrors.Wrap(sferrors.ErrCodeInvalidInput, err, "%s", sferrors.UserMessage(err))
	case errors.Is(err, geo.ErrMalformedPoint), errors.Is(err, geo.ErrTooFewPoints):
		return sferrors.Wrap(sferrors.ErrCodeInvalidPoint, err, "%s", sferrors.UserMessage(err))
	case errors.Is(err, msf.ErrInvalidEdge):
		return sferrors.Wrap(sferrors.ErrCodeInvalidEdge, err, "%s", sferrors.UserMessage(err))
	case errors.Is(err, msf.ErrDisconnected):
		return sferrors.Wrap(sferrors.ErrCodeDisconnected, err, "graph never fully connects")
	case errors.Is(err, msf.ErrTooFewComponents):
		return sferrors.Wrap(sferrors.ErrCodeTooFewComponents, err, "%s", sferrors.UserMessage(err))
	default:
		return sferrors.Wrap(sferrors.ErrCodeInternal, err, "construction failed")
	}
}

// statusFor translates error codes into HTTP statuses. Expected domain
// outcomes are 422: the request was well-formed, the math just said no.
func statusFor(code sferrors.Code) int {
	switch code {
	case sferrors.ErrCodeInvalidInput, sferrors.ErrCodeInvalidPoint,
		sferrors.ErrCodeInvalidEdge, sferrors.ErrCodeInvalidK:
		return http.StatusBadRequest
	case sferrors.ErrCodeDisconnected, sferrors.ErrCodeTooFewComponents:
		return http.StatusUnprocessableEntity
	case sferrors.ErrCodeNotFound, sferrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case sferrors.ErrCodeNetwork, sferrors.ErrCodeTimeout:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := sferrors.GetCode(err)
	if code == "" {
		code = sferrors.ErrCodeInternal
	}

	status := statusFor(code)
	if status >= 500 {
		s.logger.Error("request failed", "code", code, "err", err)
	}

	var payload errorPayload
	payload.Error.Code = code
	payload.Error.Message = sferrors.UserMessage(err)
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
