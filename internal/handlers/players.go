// Package handlers contains HTTP route handler functions for the Players API.
// This file handles the /players routes: the five CRUD operations on the Player resource.
//
// Every handler runs its checks in the same order:
//
//  1. id format (routes with :id). A malformed id is rejected before anything else.
//  2. body decoding and validation (create/update). Bad input never reaches the store.
//  3. store access.
//
// Every failure is answered here with a JSON body; nothing is left for Fiber's
// default error page. Store errors are logged in full and returned as a generic 500.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/trentd187/players-api/internal/database"
	"github.com/trentd187/players-api/internal/validation"
)

// Response messages.
const (
	MsgInvalidID      = "Invalid ID."
	MsgInvalidBody    = "Invalid JSON body."
	MsgPlayerNotFound = "Player not found."
	MsgPlayerCreated  = "Player created successfully."
	MsgPlayerUpdated  = "Player updated successfully."
	MsgPlayerDeleted  = "Player deleted successfully."
	MsgListFailed     = "Error retrieving players."
	MsgGetFailed      = "Error retrieving the player."
	MsgCreateFailed   = "Error creating the player."
	MsgUpdateFailed   = "Error updating the player."
	MsgDeleteFailed   = "Error deleting the player."
)

// MessageResponse is the body of successful writes.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"` // Only set on create
}

// ErrorResponse is the body of single-error failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every violated field constraint.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// Players holds what the /players handlers need: the store and a logger.
// Build it with NewPlayers after the database is connected.
type Players struct {
	store database.Store
	log   zerolog.Logger
}

// NewPlayers returns the handler set for the /players routes.
// It panics when store is nil: handlers must never be built before the database
// connection exists, and that is a programming error rather than a runtime condition.
func NewPlayers(store database.Store, log zerolog.Logger) *Players {
	if store == nil {
		panic("handlers: database is not initialized")
	}
	return &Players{
		store: store,
		log:   log.With().Str("resource", "players").Logger(),
	}
}

// List handles GET /players.
//
//	@Summary	List players
//	@Tags		players
//	@Produce	json
//	@Success	200	{array}		models.Player
//	@Failure	500	{object}	ErrorResponse
//	@Router		/players [get]
func (h *Players) List(c *fiber.Ctx) error {
	players, err := h.store.List(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Str("operation", "list").Msg("Failed to list players")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: MsgListFailed})
	}

	return c.Status(fiber.StatusOK).JSON(players)
}

// Get handles GET /players/:id.
//
//	@Summary	Get a player by id
//	@Tags		players
//	@Produce	json
//	@Param		id	path		string	true	"Player id"
//	@Success	200	{object}	models.Player
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/players/{id} [get]
func (h *Players) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.store.ValidID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: MsgInvalidID})
	}

	player, err := h.store.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: MsgPlayerNotFound})
		}
		h.log.Error().Err(err).Str("operation", "get").Str("player_id", id).Msg("Failed to get player")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: MsgGetFailed})
	}

	return c.Status(fiber.StatusOK).JSON(player)
}

// Create handles POST /players.
//
//	@Summary	Create a player
//	@Tags		players
//	@Accept		json
//	@Produce	json
//	@Param		player	body		models.Player	true	"Player fields (no _id)"
//	@Success	201		{object}	MessageResponse
//	@Failure	400		{object}	ValidationErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/players [post]
func (h *Players) Create(c *fiber.Ctx) error {
	data, err := parseBody(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: MsgInvalidBody})
	}

	if errs := validation.ValidatePlayer(data); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{Errors: errs})
	}

	player := validation.DecodePlayer(data)
	id, err := h.store.Create(c.UserContext(), &player)
	if err != nil {
		h.log.Error().Err(err).Str("operation", "create").Msg("Failed to create player")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: MsgCreateFailed})
	}

	return c.Status(fiber.StatusCreated).JSON(MessageResponse{Message: MsgPlayerCreated, ID: id})
}

// Update handles PUT /players/:id. The whole record is replaced, so every field
// must be resubmitted; there is no partial update.
//
//	@Summary	Replace a player
//	@Tags		players
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Player id"
//	@Param		player	body		models.Player	true	"All player fields"
//	@Success	200		{object}	MessageResponse
//	@Failure	400		{object}	ValidationErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/players/{id} [put]
func (h *Players) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.store.ValidID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: MsgInvalidID})
	}

	data, err := parseBody(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: MsgInvalidBody})
	}

	if errs := validation.ValidatePlayer(data); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{Errors: errs})
	}

	player := validation.DecodePlayer(data)
	if err := h.store.Update(c.UserContext(), id, &player); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: MsgPlayerNotFound})
		}
		h.log.Error().Err(err).Str("operation", "update").Str("player_id", id).Msg("Failed to update player")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: MsgUpdateFailed})
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: MsgPlayerUpdated})
}

// Delete handles DELETE /players/:id.
//
//	@Summary	Delete a player
//	@Tags		players
//	@Produce	json
//	@Param		id	path		string	true	"Player id"
//	@Success	200	{object}	MessageResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/players/{id} [delete]
func (h *Players) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.store.ValidID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: MsgInvalidID})
	}

	if err := h.store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: MsgPlayerNotFound})
		}
		h.log.Error().Err(err).Str("operation", "delete").Str("player_id", id).Msg("Failed to delete player")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: MsgDeleteFailed})
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: MsgPlayerDeleted})
}

// parseBody decodes the request body into an untyped record.
//
// A body is only decoded when it is non-empty and declared as JSON; anything else yields
// an empty record, which validation then rejects field by field. A JSON body that is
// malformed or not an object is an error.
func parseBody(c *fiber.Ctx) (map[string]any, error) {
	data := map[string]any{}
	if len(c.Body()) == 0 || !c.Is("json") {
		return data, nil
	}
	// Use the app's configured decoder so a swapped JSON library applies here too.
	if err := c.App().Config().JSONDecoder(c.Body(), &data); err != nil {
		return nil, err
	}
	return data, nil
}
