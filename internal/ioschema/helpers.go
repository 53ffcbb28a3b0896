package ioschema

import (
	"fmt"

	"github.com/gnames/pokedb/pkg/schema"
	"github.com/jackc/pgx/v5"
)

// constraintSQL returns statements that replace a constraint.
func constraintSQL(c schema.Constraint) []string {
	table := pgx.Identifier{c.Table}.Sanitize()
	name := pgx.Identifier{c.Name}.Sanitize()
	return []string{
		fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s",
			table, name),
		fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s",
			table, name, c.Definition),
	}
}
