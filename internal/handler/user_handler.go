package handler

import (
	"context"
	"net/http"

	"restaurant-inventory/internal/model"
)

type userService interface {
	Get(ctx context.Context, id int64) (model.User, error)
	Create(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	Update(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error)
	Delete(ctx context.Context, id int64) error
}

type UserHandler struct {
	service   userService
	validator *requestValidator
}

func NewUserHandler(service userService) *UserHandler {
	return &UserHandler{service: service, validator: newRequestValidator()}
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, h.service.Get)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	createFrom(w, r, h.validator, h.service.Create)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	updateFrom(w, r, h.validator, h.service.Update)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, func(ctx context.Context, id int64) (model.DeleteResult, error) {
		if err := h.service.Delete(ctx, id); err != nil {
			return model.DeleteResult{}, err
		}
		return model.DeleteResult{Mensaje: "Usuario eliminado exitosamente"}, nil
	})
}
