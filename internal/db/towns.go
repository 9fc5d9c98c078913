package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/scout2retire/town-match/internal/types"
)

// townColumns is the column list shared by every town query so scan order
// stays in one place.
const townColumns = `id, name, country, regions, geographic_features_actual,
	vegetation_type_actual, summer_climate_actual, winter_climate_actual,
	humidity_level_actual, sunshine_level_actual, precipitation_level_actual,
	english_proficiency_level, pace_of_life_actual, urban_rural_character,
	expat_community_size, activities_available, interests_supported,
	COALESCE(healthcare_score, 0), COALESCE(safety_score, 0),
	visa_on_arrival_countries, COALESCE(cost_of_living_usd, 0),
	COALESCE(typical_monthly_living_cost, 0), COALESCE(typical_rent_1bed, 0),
	COALESCE(healthcare_cost_monthly, 0)`

func scanTown(row pgx.Row) (*types.TownProfile, error) {
	var t types.TownProfile
	err := row.Scan(
		&t.ID, &t.Name, &t.Country, &t.Regions, &t.GeographicFeaturesActual,
		&t.VegetationTypeActual, &t.SummerClimateActual, &t.WinterClimateActual,
		&t.HumidityLevelActual, &t.SunshineLevelActual, &t.PrecipitationLevelActual,
		&t.EnglishProficiencyLevel, &t.PaceOfLifeActual, &t.UrbanRuralCharacter,
		&t.ExpatCommunitySize, &t.ActivitiesAvailable, &t.InterestsSupported,
		&t.HealthcareScore, &t.SafetyScore,
		&t.VisaOnArrivalCountries, &t.CostOfLivingUSD,
		&t.TypicalMonthlyLivingCost, &t.TypicalRent1Bed,
		&t.HealthcareCostMonthly,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTown retrieves a single town profile by ID. Returns nil when the town
// does not exist.
func (db *DB) GetTown(ctx context.Context, townID uuid.UUID) (*types.TownProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+townColumns+` FROM towns WHERE id = $1`, townID)
	town, err := scanTown(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get town: %w", err)
	}
	return town, nil
}

// TownFilters holds optional pre-filters for listing towns. Filtering in SQL
// keeps the scoring batch small when hard minimums are known up front.
type TownFilters struct {
	Country            string
	MinHealthcareScore float64
	MinSafetyScore     float64
	Limit              int
}

// buildTownsQuery assembles the filtered list query and its arguments.
func buildTownsQuery(filters TownFilters) (string, []any) {
	query := `SELECT ` + townColumns + ` FROM towns WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Country != "" {
		query += fmt.Sprintf(" AND country ILIKE $%d", argNum)
		args = append(args, filters.Country)
		argNum++
	}
	if filters.MinHealthcareScore > 0 {
		query += fmt.Sprintf(" AND healthcare_score >= $%d", argNum)
		args = append(args, filters.MinHealthcareScore)
		argNum++
	}
	if filters.MinSafetyScore > 0 {
		query += fmt.Sprintf(" AND safety_score >= $%d", argNum)
		args = append(args, filters.MinSafetyScore)
		argNum++
	}

	query += " ORDER BY name ASC"
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, filters.Limit)
	}

	return query, args
}

// ListTowns retrieves town profiles with optional filters
func (db *DB) ListTowns(ctx context.Context, filters TownFilters) ([]types.TownProfile, error) {
	query, args := buildTownsQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list towns: %w", err)
	}
	defer rows.Close()

	var towns []types.TownProfile
	for rows.Next() {
		town, err := scanTown(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan town: %w", err)
		}
		towns = append(towns, *town)
	}
	return towns, nil
}
