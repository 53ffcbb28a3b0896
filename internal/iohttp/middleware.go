package iohttp

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gnames/pokedb/pkg/pokedex"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	localRequestID  = "requestid"
	localPokemon    = "pokemon"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requestIDMiddleware keeps a valid incoming X-Request-ID or creates one.
func requestIDMiddleware(c *fiber.Ctx) error {
	id := c.Get(headerRequestID)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	c.Locals(localRequestID, id)
	c.Set(headerRequestID, id)
	return c.Next()
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}

// pokemonBody parses and validates the JSON body of create and update
// requests. The id fields of the body are ignored.
func pokemonBody(c *fiber.Ctx) error {
	var p pokedex.Pokemon
	if err := c.BodyParser(&p); err != nil {
		return badRequest("invalid request body", err.Error())
	}
	p.ID = 0
	p.SpeciesID = 0

	if err := validate.Struct(&p); err != nil {
		return badRequest("validation failed", validationDetails(err))
	}

	c.Locals(localPokemon, p)
	return c.Next()
}

func validationDetails(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var details strings.Builder
	for _, e := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch e.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", e.Field()))
		default:
			details.WriteString(
				fmt.Sprintf("%s failed %s validation", e.Field(), e.Tag()))
		}
	}
	return details.String()
}
