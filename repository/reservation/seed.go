package reservation

import (
	"context"
	"time"

	"github.com/LuisGlezPruebas/BookingWeb-production/model"
)

// Seed inserts the recurring family blocks the house has carried for years:
// user 3 holds the May bank-holiday weekend and the closing fortnights of
// June, July and August through 2028. Seed data is admin-inserted, so it goes
// in already approved and skips the conflict gate.
func Seed(ctx context.Context, repo Repo) error {
	type block struct {
		start, end string
		notes      string
	}
	blocks := []block{
		{"2025-04-30", "2025-05-04", "Puente de mayo"},
		{"2026-04-30", "2026-05-03", "Puente de mayo"},
		{"2027-04-30", "2027-05-02", "Puente de mayo"},
		{"2028-04-30", "2028-05-03", "Puente de mayo"},

		{"2025-06-23", "2025-07-06", "Última quincena de Junio"},
		{"2026-06-22", "2026-07-05", "Última quincena de Junio"},
		{"2027-06-21", "2027-07-03", "Última quincena de Junio"},
		{"2028-06-20", "2028-07-02", "Última quincena de Junio"},

		{"2025-07-21", "2025-08-03", "Última quincena de Julio"},
		{"2026-07-20", "2026-08-02", "Última quincena de Julio"},
		{"2027-07-19", "2027-08-01", "Última quincena de Julio"},
		{"2028-07-18", "2028-07-31", "Última quincena de Julio"},

		{"2025-08-18", "2025-08-31", "Última quincena de Agosto"},
		{"2026-08-24", "2026-09-06", "Última quincena de Agosto"},
		{"2027-08-23", "2027-09-05", "Última quincena de Agosto"},
		{"2028-08-22", "2028-09-04", "Última quincena de Agosto"},
	}

	for _, b := range blocks {
		start, err := time.Parse("2006-01-02", b.start)
		if err != nil {
			return err
		}
		end, err := time.Parse("2006-01-02", b.end)
		if err != nil {
			return err
		}
		notes := b.notes
		if _, err := repo.Create(ctx, &model.Reservation{
			UserID:         3,
			StartDate:      start,
			EndDate:        end,
			NumberOfGuests: 4,
			Notes:          &notes,
			Status:         model.StatusApproved,
		}); err != nil {
			return err
		}
	}
	return nil
}
