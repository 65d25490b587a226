package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/playperu/wordballoon/internal/game"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse maps each checked dependency to its status.
type HealthResponse map[string]struct {
	Status string `json:"status"`
}

type speakItemPath struct {
	ItemID string `path:"itemID"`
}

// intent describes a POST that returns the new snapshot or a rejection.
type intent struct {
	path        string
	summary     string
	description string
	req         any
}

var intents = []intent{
	{"/api/quiz/start", "Start quiz", "Starts a five-question session from the menu or the result screen.", nil},
	{"/api/quiz/answer", "Answer", "Pops the balloon with the given option id. Only the first answer per question counts.", AnswerRequest{}},
	{"/api/quiz/replay", "Replay prompt", "Speaks the current target word again.", nil},
	{"/api/navigate", "Navigate", "Moves between menu, gacha shop, collection and result.", NavigateRequest{}},
	{"/api/gacha/spin", "Spin gacha", "Pays 100 coins for a draw. The result follows as a state event.", nil},
	{"/api/gacha/dismiss", "Dismiss draw", "Closes the draw result and speaks the word.", nil},
	{"/api/profile/reset", "Reset profile", "Restores 100 coins and an empty collection. Needs confirm and, when configured, the PIN.", ResetRequest{}},
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Word Balloon API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Word Balloon vocabulary game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/state")
	getState.SetSummary("Get game state")
	getState.SetDescription("Returns the current screen, profile, quiz session and gacha draw.")
	getState.AddRespStructure(game.State{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getState)

	// GET /api/collection
	getCollection, _ := r.NewOperationContext(http.MethodGet, "/api/collection")
	getCollection.SetSummary("Get collection")
	getCollection.SetDescription("Lists every catalog item, rarest first, with locked items masked.")
	getCollection.AddRespStructure(game.CollectionView{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCollection)

	// GET /api/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events: state snapshots, speak cues and tone cues.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	for _, in := range intents {
		op, _ := r.NewOperationContext(http.MethodPost, in.path)
		op.SetSummary(in.summary)
		op.SetDescription(in.description)
		if in.req != nil {
			op.AddReqStructure(in.req)
			op.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
		}
		op.AddRespStructure(game.State{}, openapi.WithHTTPStatus(http.StatusOK))
		op.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
		_ = r.AddOperation(op)
	}

	// POST /api/collection/{itemID}/speak
	speak, _ := r.NewOperationContext(http.MethodPost, "/api/collection/{itemID}/speak")
	speak.SetSummary("Speak item")
	speak.SetDescription("Pronounces an unlocked collectible.")
	speak.AddReqStructure(speakItemPath{})
	speak.AddRespStructure(game.State{}, openapi.WithHTTPStatus(http.StatusOK))
	speak.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(speak)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
