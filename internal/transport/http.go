package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/raedalharbi/muqawil/internal/domain/activity"
	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/domain/application"
	"github.com/raedalharbi/muqawil/internal/domain/assist"
	"github.com/raedalharbi/muqawil/internal/domain/project"
	"github.com/raedalharbi/muqawil/internal/domain/session"
)

// Services bundles the domain services the HTTP surface exposes.
type Services struct {
	Actors       *actor.Service
	Projects     *project.Service
	Applications *application.Service
	Sessions     *session.Service
	Activity     *activity.Service
	Assist       *assist.Service
}

// Server wires HTTP handlers.
type Server struct {
	svc Services
}

// NewServer creates the HTTP router. Browsing projects and the
// directory is public; everything that acts on behalf of an actor
// requires a session.
func NewServer(svc Services) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	srv := &Server{svc: svc}

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", srv.handleLogin)

		r.Get("/projects", srv.handleSearchProjects)
		r.Get("/projects/{projectID}", srv.handleGetProject)
		r.Get("/directory", srv.handleDirectory)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(svc.Sessions))

			r.Post("/auth/logout", srv.handleLogout)

			r.Get("/actors/{actorID}", srv.handleGetActor)
			r.Put("/actors/{actorID}", srv.handleUpdateActor)
			r.Get("/actors/{actorID}/applications", srv.handleActorApplications)

			r.Post("/projects", srv.handleCreateProject)
			r.Post("/projects/{projectID}/applications", srv.handleSubmitApplication)
			r.Get("/projects/{projectID}/applications", srv.handleProjectApplications)

			r.Post("/applications/{applicationID}/decision", srv.handleDecideApplication)

			r.Post("/assist/description", srv.handleAssistDescription)

			r.Get("/activity", srv.handleActivity)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type loginRequest struct {
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Role       actor.Role            `json:"role"`
	Trade      actor.TradeCategory   `json:"trade,omitempty"`
	Experience actor.ExperienceLevel `json:"experienceLevel,omitempty"`
	Location   string                `json:"location,omitempty"`
}

type loginResponse struct {
	SessionID string       `json:"sessionId"`
	Actor     *actor.Actor `json:"actor"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	act, err := s.svc.Actors.Register(r.Context(), actor.RegisterRequest{
		Name:       req.Name,
		Role:       req.Role,
		Email:      req.Email,
		Trade:      req.Trade,
		Experience: req.Experience,
		Location:   req.Location,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	sess, err := s.svc.Sessions.Start(r.Context(), act.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{SessionID: sess.ID, Actor: act})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := SessionIDFromContext(r.Context())
	if err := s.svc.Sessions.End(r.Context(), sessionID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetActor(w http.ResponseWriter, r *http.Request) {
	act, err := s.svc.Actors.Get(r.Context(), chi.URLParam(r, "actorID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, act)
}

type updateActorRequest struct {
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone,omitempty"`
	Bio            string                `json:"bio,omitempty"`
	CompanyReg     string                `json:"companyReg,omitempty"`
	Trade          actor.TradeCategory   `json:"trade,omitempty"`
	Experience     actor.ExperienceLevel `json:"experienceLevel,omitempty"`
	Certifications []string              `json:"certifications,omitempty"`
	Location       string                `json:"location,omitempty"`
	Address        string                `json:"address,omitempty"`
}

func (s *Server) handleUpdateActor(w http.ResponseWriter, r *http.Request) {
	current, _ := ActorFromContext(r.Context())
	actorID := chi.URLParam(r, "actorID")
	if current == nil || current.ID != actorID {
		respondError(w, http.StatusForbidden, "profiles may only be edited by their owner")
		return
	}

	var req updateActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	act, err := s.svc.Actors.UpdateProfile(r.Context(), actorID, actor.UpdateRequest{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Bio:            req.Bio,
		CompanyReg:     req.CompanyReg,
		Trade:          req.Trade,
		Experience:     req.Experience,
		Certifications: req.Certifications,
		Location:       req.Location,
		Address:        req.Address,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, act)
}

func (s *Server) handleDirectory(w http.ResponseWriter, r *http.Request) {
	filter := actor.DirectoryFilter{
		Query: r.URL.Query().Get("q"),
		Trade: actor.TradeCategory(r.URL.Query().Get("trade")),
	}

	actors, err := s.svc.Actors.SearchDirectory(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if actors == nil {
		actors = []actor.Actor{}
	}
	respondJSON(w, http.StatusOK, actors)
}

type createProjectRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	// Budget arrives as the raw form string; parsing happens in the
	// domain so a bad value is a validation error, not a decode error.
	Budget   string              `json:"budget"`
	Location string              `json:"location"`
	Deadline string              `json:"deadline"`
	Category actor.TradeCategory `json:"category"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	current, _ := ActorFromContext(r.Context())

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	proj, err := s.svc.Projects.Create(r.Context(), project.CreateRequest{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Location:    req.Location,
		Deadline:    req.Deadline,
		Category:    req.Category,
		PostedBy:    current.ID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, proj)
}

func (s *Server) handleSearchProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := project.SearchFilter{
		Query:    q.Get("q"),
		Category: actor.TradeCategory(q.Get("category")),
		Location: q.Get("location"),
	}
	if raw := q.Get("max_budget"); raw != "" {
		maxBudget, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid max_budget")
			return
		}
		filter.MaxBudget = maxBudget
	}

	projects, err := s.svc.Projects.Search(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	respondJSON(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.svc.Projects.Get(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, proj)
}

type submitApplicationRequest struct {
	BidAmount float64 `json:"bidAmount"`
	Proposal  string  `json:"proposal"`
}

func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	current, _ := ActorFromContext(r.Context())

	var req submitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	app, err := s.svc.Applications.Submit(r.Context(), current, application.SubmitRequest{
		ProjectID: chi.URLParam(r, "projectID"),
		BidAmount: req.BidAmount,
		Proposal:  req.Proposal,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, app)
}

func (s *Server) handleProjectApplications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := application.ListFilter{
		Trade:      actor.TradeCategory(q.Get("trade")),
		Experience: actor.ExperienceLevel(q.Get("experience")),
	}

	apps, err := s.svc.Applications.ListForProject(r.Context(), chi.URLParam(r, "projectID"), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if apps == nil {
		apps = []application.Application{}
	}
	respondJSON(w, http.StatusOK, apps)
}

func (s *Server) handleActorApplications(w http.ResponseWriter, r *http.Request) {
	current, _ := ActorFromContext(r.Context())
	actorID := chi.URLParam(r, "actorID")
	if current == nil || current.ID != actorID {
		respondError(w, http.StatusForbidden, "applications may only be listed by their submitter")
		return
	}

	apps, err := s.svc.Applications.ListForActor(r.Context(), actorID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if apps == nil {
		apps = []application.Application{}
	}
	respondJSON(w, http.StatusOK, apps)
}

type decisionRequest struct {
	Decision application.Decision `json:"decision"`
}

func (s *Server) handleDecideApplication(w http.ResponseWriter, r *http.Request) {
	current, _ := ActorFromContext(r.Context())

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	app, err := s.svc.Applications.Decide(r.Context(), current.ID, chi.URLParam(r, "applicationID"), req.Decision)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

type assistRequest struct {
	Title string `json:"title"`
}

type assistResponse struct {
	Description string `json:"description"`
}

func (s *Server) handleAssistDescription(w http.ResponseWriter, r *http.Request) {
	var req assistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Never an error: the gateway degrades to a placeholder string. A
	// caller that navigates away has its response discarded here; the
	// upstream flight keeps running for anyone coalesced onto it.
	text := s.svc.Assist.GenerateDescription(r.Context(), req.Title)
	respondJSON(w, http.StatusOK, assistResponse{Description: text})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := activity.ListOptions{
		ProjectID: q.Get("project_id"),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opts.Limit = limit
	}

	entries, err := s.svc.Activity.Recent(r.Context(), opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []activity.Entry{}
	}
	respondJSON(w, http.StatusOK, entries)
}
