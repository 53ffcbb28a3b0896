package iohttp

import (
	"strconv"

	"github.com/gnames/pokedb/pkg/pokedex"
	"github.com/gofiber/fiber/v2"
)

// Handler translates HTTP requests into calls of a Store.
type Handler struct {
	store   pokedex.Store
	perPage int
}

// NewHandler creates a Handler. perPage is used when a list request
// has no per_page parameter.
func NewHandler(store pokedex.Store, perPage int) *Handler {
	if perPage == 0 {
		perPage = pokedex.DefaultPerPage
	}
	return &Handler{store: store, perPage: perPage}
}

// Health pings the database.
func (h *Handler) Health(c *fiber.Ctx) error {
	if err := h.store.Ping(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "database is unreachable",
			Code:    ErrUnavailable,
			Details: err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// List returns a page of pokemon ordered by id.
func (h *Handler) List(c *fiber.Ctx) error {
	number, err := queryInt(c, "page", pokedex.DefaultPage)
	if err != nil {
		return err
	}
	size, err := queryInt(c, "per_page", h.perPage)
	if err != nil {
		return err
	}

	res, err := h.store.List(c.UserContext(), pokedex.Page{Number: number, Size: size})
	observe("list", err)
	if err != nil {
		return err
	}
	if res == nil {
		res = []pokedex.Pokemon{}
	}
	return c.JSON(res)
}

// Get returns one pokemon.
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	res, err := h.store.Get(c.UserContext(), id)
	observe("get", err)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Create stores a new pokemon and returns it with generated ids.
func (h *Handler) Create(c *fiber.Ctx) error {
	p, _ := c.Locals(localPokemon).(pokedex.Pokemon)

	res, err := h.store.Create(c.UserContext(), p)
	observe("create", err)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Update replaces a pokemon.
func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	p, _ := c.Locals(localPokemon).(pokedex.Pokemon)

	res, err := h.store.Update(c.UserContext(), id, p)
	observe("update", err)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Delete removes a pokemon.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	err = h.store.Delete(c.UserContext(), id)
	observe("delete", err)
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func paramID(c *fiber.Ctx) (int, error) {
	s := c.Params("id")
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, badRequest("invalid pokemon id", "id must be an integer, got "+strconv.Quote(s))
	}
	return id, nil
}

// queryInt returns def when the parameter is absent. Present values are
// not range-checked.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, badRequest("invalid query parameter",
			key+" must be an integer, got "+strconv.Quote(s))
	}
	return i, nil
}
