package postgres

import (
	"myfarm/internal/errors"
	"myfarm/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// ensureSchema creates the users, profiles and orders tables and any columns
// added after the initial release. AutoMigrate only adds what is missing, so
// running it on every boot is a no-op against an initialized store.
func ensureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ProfileModel{},
		&model.OrderModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}

	return nil
}
