package memory

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Seed is the TOML document loaded into a Store:
//
//	[[locations]]
//	id = 1
//	name = "Downtown"
//	timezone = "Europe/Berlin"
//
//	[[staff]]
//	id = 1
//	location_id = 1
//	name = "Mia"
//	[staff.weekly_hours]
//	monday = { start = "09:00", end = "17:30", breaks = [{ start = "12:00", end = "13:00" }] }
//	sunday = "off"
type Seed struct {
	Locations []struct {
		ID       int64  `toml:"id"`
		Name     string `toml:"name"`
		Timezone string `toml:"timezone"`
	} `toml:"locations"`
	Services []struct {
		ID              int64   `toml:"id"`
		LocationID      int64   `toml:"location_id"`
		Name            string  `toml:"name"`
		DurationMinutes int     `toml:"duration_minutes"`
		Price           float64 `toml:"price"`
	} `toml:"services"`
	Staff []struct {
		ID          int64              `toml:"id"`
		LocationID  int64              `toml:"location_id"`
		Name        string             `toml:"name"`
		WeeklyHours domain.WeeklyHours `toml:"weekly_hours"`
	} `toml:"staff"`
}

// LoadSeedFile decodes path and fills a new Store.
func LoadSeedFile(path string) (*Store, error) {
	var seed Seed
	if _, err := toml.DecodeFile(path, &seed); err != nil {
		return nil, fmt.Errorf("memory: decode seed %s: %w", path, err)
	}
	return NewStoreFromSeed(seed)
}

func NewStoreFromSeed(seed Seed) (*Store, error) {
	store := NewStore()

	for _, l := range seed.Locations {
		store.PutLocation(&domain.Location{ID: l.ID, Name: l.Name, Timezone: l.Timezone})
	}
	for _, s := range seed.Services {
		if _, ok := store.locations[s.LocationID]; !ok {
			return nil, fmt.Errorf("memory: service %d: unknown location %d", s.ID, s.LocationID)
		}
		if s.DurationMinutes < domain.MinServiceDurationMinutes || s.DurationMinutes > domain.MaxServiceDurationMinutes {
			return nil, fmt.Errorf("memory: service %d: duration %d out of range", s.ID, s.DurationMinutes)
		}
		store.PutService(&domain.Service{
			ID:              s.ID,
			LocationID:      s.LocationID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}
	for _, s := range seed.Staff {
		if _, ok := store.locations[s.LocationID]; !ok {
			return nil, fmt.Errorf("memory: staff %d: unknown location %d", s.ID, s.LocationID)
		}
		store.PutStaff(&domain.Staff{ID: s.ID, LocationID: s.LocationID, Name: s.Name, WeeklyHours: s.WeeklyHours})
	}

	return store, nil
}
