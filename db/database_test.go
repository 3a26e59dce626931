package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beyazservis/servis-go/models"
)

// Every enum value the models use must appear in the DDL, or inserts fail at
// runtime with an invalid input value error.
func TestEnumDDLCoversModelValues(t *testing.T) {
	ddl := fmt.Sprint(enumDDL)

	islemDurumlari := []models.IslemDurumu{
		models.IslemDurumuAcik, models.IslemDurumuParcaBekliyor,
		models.IslemDurumuTamamlandi, models.IslemDurumuIptal,
	}
	for _, d := range islemDurumlari {
		assert.Contains(t, ddl, "'"+string(d)+"'")
	}

	teslimDurumlari := []models.TeslimDurumu{
		models.TeslimDurumuBekliyor, models.TeslimDurumuSiparisEdildi,
		models.TeslimDurumuTamamlandi, models.TeslimDurumuFabrikada,
		models.TeslimDurumuOdemeBekliyor, models.TeslimDurumuTeslimEdildi,
	}
	for _, d := range teslimDurumlari {
		assert.Contains(t, ddl, "'"+string(d)+"'")
	}

	roller := []models.UserRole{
		models.UserRoleUser, models.UserRoleAdmin, models.UserRoleBayi,
	}
	for _, r := range roller {
		assert.Contains(t, ddl, "'"+string(r)+"'")
	}
}
