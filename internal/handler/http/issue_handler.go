package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lkohler/citysignal/internal/handler/http/dto"
	usecasecontract "github.com/lkohler/citysignal/internal/usecase/contract"
)

// IssueHandlerInterface defines the methods for the issue handler to allow
// interface-based dependency injection (for testing/mocking)
type IssueHandlerInterface interface {
	Create(*gin.Context)
	List(*gin.Context)
	Get(*gin.Context)
	Patch(*gin.Context)
	Delete(*gin.Context)
}

// Ensure IssueHandler implements IssueHandlerInterface
var _ IssueHandlerInterface = (*IssueHandler)(nil)

type IssueHandler struct {
	issueUsecase usecasecontract.IIssueUseCase
	baseURL      string
}

func NewIssueHandler(issueUsecase usecasecontract.IIssueUseCase, baseURL string) *IssueHandler {
	return &IssueHandler{
		issueUsecase: issueUsecase,
		baseURL:      baseURL,
	}
}

// Create handles POST /issues
func (h *IssueHandler) Create(c *gin.Context) {
	if !RequireJSON(c) {
		return
	}
	var req dto.CreateIssueRequest
	if !BindJSON(c, &req) {
		return
	}

	created, err := h.issueUsecase.Create(c.Request.Context(), req.ToEntity(), req.CreatorRef())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/issues/%s", h.baseURL, created.ID.Hex()))
	SuccessHandler(c, http.StatusCreated, dto.ToIssueResponse(created))
}

// List handles GET /issues with creator and statement filtering, pagination
// and optional creator population via "?include=creator".
func (h *IssueHandler) List(c *gin.Context) {
	params := ParsePageParams(c)
	opts := usecasecontract.IssueListOptions{
		Creators:  c.QueryArray("creator"),
		Statement: c.Query("statement"),
		Skip:      params.Skip(),
		Limit:     params.Limit(),
		Populate:  shouldInclude(c, "creator"),
	}

	issues, total, err := h.issueUsecase.List(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}

	SetPageHeaders(c, "/issues", params, total)
	SuccessHandler(c, http.StatusOK, dto.ToIssueResponses(issues))
}

// Get handles GET /issues/:id, populating the creator when
// "?include=creator" is given.
func (h *IssueHandler) Get(c *gin.Context) {
	issue, err := h.issueUsecase.GetByID(c.Request.Context(), c.Param("id"), shouldInclude(c, "creator"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToIssueResponse(issue))
}

// Patch handles PATCH /issues/:id; only fields present in the body change.
func (h *IssueHandler) Patch(c *gin.Context) {
	if !RequireJSON(c) {
		return
	}
	var req dto.UpdateIssueRequest
	if !BindJSON(c, &req) {
		return
	}

	updated, err := h.issueUsecase.Update(c.Request.Context(), c.Param("id"), req.ToUpdates(), req.CreatorRef())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToIssueResponse(updated))
}

// Delete handles DELETE /issues/:id; issues are deletable unconditionally.
func (h *IssueHandler) Delete(c *gin.Context) {
	if err := h.issueUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
