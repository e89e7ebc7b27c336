// Command gen generates type-safe gorm/gen query helpers for the maintenance models.
package main

import (
	"upkeep/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	owned := []any{
		model.MaintenanceTaskModel{},
		model.MaintenanceHistoryModel{},
		model.MaintenanceReminderModel{},
		model.NotificationModel{},
		model.PushTokenModel{},
	}

	// Read-only platform tables
	directory := []any{
		model.DeviceModel{},
		model.UserModel{},
		model.UserPreferenceModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(owned...)
	g.ApplyBasic(directory...)

	g.Execute()
}
