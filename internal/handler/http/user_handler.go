package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lkohler/citysignal/internal/handler/http/dto"
	usecasecontract "github.com/lkohler/citysignal/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for the user handler to allow
// interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Create(*gin.Context)
	List(*gin.Context)
	Get(*gin.Context)
	Patch(*gin.Context)
	Put(*gin.Context)
	Delete(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	baseURL     string
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, baseURL string) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		baseURL:     baseURL,
	}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	if !RequireJSON(c) {
		return
	}
	var req dto.CreateUserRequest
	if !BindJSON(c, &req) {
		return
	}

	created, err := h.userUsecase.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/users/%s", h.baseURL, created.ID.Hex()))
	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(created, nil))
}

// List handles GET /users with honorific filtering, pagination and the
// created-issue count aggregation.
func (h *UserHandler) List(c *gin.Context) {
	params := ParsePageParams(c)

	users, counts, total, err := h.userUsecase.List(c.Request.Context(), c.Query("honorific"), params.Skip(), params.Limit())
	if err != nil {
		RespondError(c, err)
		return
	}

	SetPageHeaders(c, "/users", params, total)
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(users, counts))
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, count, err := h.userUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(user, &count))
}

// Patch handles PATCH /users/:id; only fields present in the body change.
func (h *UserHandler) Patch(c *gin.Context) {
	if !RequireJSON(c) {
		return
	}
	var req dto.UpdateUserRequest
	if !BindJSON(c, &req) {
		return
	}

	updated, err := h.userUsecase.Update(c.Request.Context(), c.Param("id"), req.ToUpdates())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(updated, nil))
}

// Put handles PUT /users/:id; every mutable field is overwritten from the
// body, optional fields absent from it are cleared.
func (h *UserHandler) Put(c *gin.Context) {
	if !RequireJSON(c) {
		return
	}
	var req dto.CreateUserRequest
	if !BindJSON(c, &req) {
		return
	}

	replaced, err := h.userUsecase.Replace(c.Request.Context(), c.Param("id"), req.ToEntity())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(replaced, nil))
}

// Delete handles DELETE /users/:id; refused with 409 while issues still
// reference the user.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
