// Command gen writes type-safe gorm/gen query helpers for the persistence models.
package main

import (
	"gorm.io/gen"

	"cakehaven/internal/infra/persistence/model"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
