package handler

import (
	"net/http"

	"romaneio/internal/delivery/http/response"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClientHandler holds dependencies for client and address handlers.
type ClientHandler struct {
	uc usecase.ClientUsecase
}

// NewClientHandler is the constructor for ClientHandler, injected by Fx.
func NewClientHandler(uc usecase.ClientUsecase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// RegisterClient handles the client registration request.
func (h *ClientHandler) RegisterClient(c echo.Context) error {
	var input *usecase.RegisterClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cliente inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	client, err := h.uc.RegisterClient(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, client, "Cliente cadastrado")
}

// GetClient handles the single client lookup request.
func (h *ClientHandler) GetClient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de cliente inválido")
	}

	client, err := h.uc.GetClient(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "")
}

// SearchClients handles the client search request.
func (h *ClientHandler) SearchClients(c echo.Context) error {
	clients, err := h.uc.SearchClients(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, clients, "")
}

// UpdateClient handles the client update request.
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de cliente inválido")
	}

	var input *usecase.UpdateClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cliente inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateClient(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cliente atualizado")
}

// RemoveClient handles the client removal request.
func (h *ClientHandler) RemoveClient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de cliente inválido")
	}

	if err := h.uc.RemoveClient(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cliente removido")
}

// AddAddress handles the address creation request.
func (h *ClientHandler) AddAddress(c echo.Context) error {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de cliente inválido")
	}

	var input *usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de endereço inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.AddAddress(c.Request().Context(), clientID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Endereço cadastrado")
}

// SetPrimaryAddress marks one address as the client's primary.
func (h *ClientHandler) SetPrimaryAddress(c echo.Context) error {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de cliente inválido")
	}
	addressID, err := uuid.Parse(c.Param("enderecoId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de endereço inválido")
	}

	if err := h.uc.SetPrimaryAddress(c.Request().Context(), clientID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Endereço principal atualizado")
}

// RemoveAddress handles the address removal request.
func (h *ClientHandler) RemoveAddress(c echo.Context) error {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de cliente inválido")
	}
	addressID, err := uuid.Parse(c.Param("enderecoId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de endereço inválido")
	}

	if err := h.uc.RemoveAddress(c.Request().Context(), clientID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Endereço removido")
}
