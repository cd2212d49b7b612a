package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

type ProjectHandler interface {
	CreateProject(w http.ResponseWriter, r *http.Request)
	ListEmployeeProjects(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{
		projectService: projectService,
	}
}

// CreateProject implements ProjectHandler
func (h *projectHandlerImpl) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", result)
}

// ListEmployeeProjects implements ProjectHandler
func (h *projectHandlerImpl) ListEmployeeProjects(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := uuidParam(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	values := r.URL.Query()
	filter := query.BuildFilterFromQuery(values, project.AllowedFilters)

	page, err := h.projectService.ListByEmployee(r.Context(), employeeID, filter, pagination.FromQuery(values))
	if err != nil {
		slog.Error("ListEmployeeProjects service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Paginated(w, page)
}
