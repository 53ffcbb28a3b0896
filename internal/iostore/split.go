package iostore

import (
	"github.com/gnames/pokedb/pkg/pokedex"
	"github.com/gnames/pokedb/pkg/schema"
)

// speciesOf extracts the species half of a record.
func speciesOf(p pokedex.Pokemon) schema.Species {
	return schema.Species{
		Identifier:           p.Identifier,
		GenerationID:         p.GenerationID,
		EvolvesFromSpeciesID: p.EvolvesFromSpeciesID,
		EvolutionChainID:     p.EvolutionChainID,
		ColorID:              p.ColorID,
		ShapeID:              p.ShapeID,
		HabitatID:            p.HabitatID,
		GenderRate:           p.GenderRate,
		CaptureRate:          p.CaptureRate,
		BaseHappiness:        p.BaseHappiness,
		IsBaby:               p.IsBaby,
		HatchCounter:         p.HatchCounter,
		HasGenderDifferences: p.HasGenderDifferences,
		GrowthRateID:         p.GrowthRateID,
		FormsSwitchable:      p.FormsSwitchable,
		Order:                p.Order,
		ConquestOrder:        p.ConquestOrder,
	}
}

// creatureOf extracts the per-instance half of a record.
func creatureOf(p pokedex.Pokemon, speciesID int) schema.Pokemon {
	return schema.Pokemon{
		Identifier:     p.Identifier,
		SpeciesID:      speciesID,
		Height:         p.Height,
		Weight:         p.Weight,
		BaseExperience: p.BaseExperience,
		Order:          p.Order,
		IsDefault:      p.IsDefault,
	}
}
