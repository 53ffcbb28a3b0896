package ioseed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gnames/pokedb/pkg/schema"
)

// Names of the files in a data directory.
const (
	speciesFile = "pokemon_species.csv"
	pokemonFile = "pokemon.csv"
	typesFile   = "pokemon_types.csv"
)

// row gives access to the cells of a CSV record by column name.
type row struct {
	cols map[string]int
	rec  []string
	err  error
}

func (r *row) str(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.rec) {
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

// required returns a column that must be present, recording a failure
// otherwise.
func (r *row) required(name string) string {
	if _, ok := r.cols[name]; !ok && r.err == nil {
		r.err = fmt.Errorf("missing column %q", name)
	}
	return r.str(name)
}

// int parses a required integer column. Empty cells are rejected, use
// intPtr for nullable columns.
func (r *row) int(name string) int {
	s := r.required(name)
	if s == "" {
		if r.err == nil {
			r.err = fmt.Errorf("column %q: empty value", name)
		}
		return 0
	}
	i, err := strconv.Atoi(s)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("column %q: %w", name, err)
	}
	return i
}

// intPtr returns nil for an empty cell.
func (r *row) intPtr(name string) *int {
	s := r.str(name)
	if s == "" {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("column %q: %w", name, err)
		}
		return nil
	}
	return &i
}

func (r *row) bool(name string) bool {
	s := r.str(name)
	if s == "" {
		return false
	}
	b, err := strconv.ParseBool(s)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("column %q: %w", name, err)
	}
	return b
}

// readCSV decodes every record of a file with a header line using fn.
func readCSV[T any](path string, fn func(*row) T) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, FileNotFoundError(path, err)
	}
	defer f.Close()
	return decodeCSV(filepath.Base(path), f, fn)
}

func decodeCSV[T any](
	name string,
	rd io.Reader,
	fn func(*row) T,
) ([]T, error) {
	r := csv.NewReader(rd)

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, ParseError(name, 1, err)
	}

	cols := make(map[string]int, len(header))
	for i, v := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(v, "\ufeff"))] = i
	}

	var res []T
	for line := 2; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ParseError(name, line, err)
		}

		rw := row{cols: cols, rec: rec}
		item := fn(&rw)
		if rw.err != nil {
			return nil, ParseError(name, line, rw.err)
		}
		res = append(res, item)
	}
	return res, nil
}

func decodeSpecies(r *row) schema.Species {
	return schema.Species{
		ID:                   r.int("id"),
		Identifier:           r.required("identifier"),
		GenerationID:         r.int("generation_id"),
		EvolvesFromSpeciesID: r.intPtr("evolves_from_species_id"),
		EvolutionChainID:     r.int("evolution_chain_id"),
		ColorID:              r.intPtr("color_id"),
		ShapeID:              r.intPtr("shape_id"),
		HabitatID:            r.intPtr("habitat_id"),
		GenderRate:           r.int("gender_rate"),
		CaptureRate:          r.int("capture_rate"),
		BaseHappiness:        r.int("base_happiness"),
		IsBaby:               r.bool("is_baby"),
		HatchCounter:         r.int("hatch_counter"),
		HasGenderDifferences: r.bool("has_gender_differences"),
		GrowthRateID:         r.intPtr("growth_rate_id"),
		FormsSwitchable:      r.bool("forms_switchable"),
		Order:                r.int("order"),
		ConquestOrder:        r.intPtr("conquest_order"),
	}
}

func decodePokemon(r *row) schema.Pokemon {
	return schema.Pokemon{
		ID:             r.int("id"),
		Identifier:     r.required("identifier"),
		SpeciesID:      r.int("species_id"),
		Height:         r.int("height"),
		Weight:         r.int("weight"),
		BaseExperience: r.int("base_experience"),
		Order:          r.int("order"),
		IsDefault:      r.bool("is_default"),
	}
}

// decodeType accepts both "pokemon_id" of the data dump and "id" of
// the table.
func decodeType(r *row) schema.PokemonType {
	idCol := "pokemon_id"
	if _, ok := r.cols[idCol]; !ok {
		idCol = "id"
	}
	return schema.PokemonType{
		ID:     r.int(idCol),
		TypeID: r.int("type_id"),
		Slot:   r.int("slot"),
	}
}
