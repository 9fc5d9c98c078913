package scoring

import "github.com/scout2retire/town-match/internal/types"

// cultureAxisPoints is the equal share each of the four culture axes
// (language, pace of life, urban/rural, expat community) carries of the
// category's 100 internal points.
const cultureAxisPoints = 25

// scoreCulture compares language comfort against the town's English
// proficiency plus three lifestyle axes with one-step partial credit.
func scoreCulture(prefs *types.UserPreferences, town *types.TownProfile) categoryResult {
	var r categoryResult
	cat := types.CategoryCulture

	if !prefs.HasCulturePreferences() {
		r.add(cat, "Open to any culture", 100)
		return r
	}

	scoreLanguageAxis(&r, prefs.LanguageComfort, town.EnglishProficiencyLevel)
	scoreOrderedAxis(&r, cat, "pace of life", paceScale,
		prefs.PaceOfLife, town.PaceOfLifeActual, cultureAxisPoints)
	scoreOrderedAxis(&r, cat, "living environment", urbanRuralScale,
		prefs.UrbanRural, town.UrbanRuralCharacter, cultureAxisPoints)
	scoreOrderedAxis(&r, cat, "expat community", expatScale,
		prefs.ExpatCommunitySize, town.ExpatCommunitySize, cultureAxisPoints)

	r.score = clampScore(r.score)
	return r
}

// scoreLanguageAxis scores the user's language comfort against the town's
// English proficiency level:
//   - english_only needs high or better town English for full credit,
//     moderate earns half, low earns nothing
//   - willing_to_learn is satisfied by moderate or better, half for low
//   - comfortable speakers get full credit anywhere
func scoreLanguageAxis(r *categoryResult, comfort, proficiency string) {
	cat := types.CategoryCulture
	pref := normalizeValue(comfort)
	if pref == "" {
		r.add(cat, "Open to any language situation", cultureAxisPoints)
		return
	}
	if pref == types.LanguageComfortable {
		r.add(cat, "Comfortable with the local language", cultureAxisPoints)
		return
	}

	level := scaleIndex(englishProficiencyScale, proficiency)
	if level < 0 {
		r.add(cat, "English proficiency data unavailable", 0)
		return
	}

	moderate := scaleIndex(englishProficiencyScale, "moderate")
	high := scaleIndex(englishProficiencyScale, "high")
	switch pref {
	case types.LanguageEnglishOnly:
		switch {
		case level >= high:
			r.add(cat, "English widely spoken", cultureAxisPoints)
		case level >= moderate:
			r.add(cat, "Moderate English proficiency", cultureAxisPoints/2)
		default:
			r.add(cat, "Little English spoken", 0)
		}
	case types.LanguageWillingToLearn:
		if level >= moderate {
			r.add(cat, "Enough English while you learn", cultureAxisPoints)
		} else {
			r.add(cat, "Limited English, immersion required", cultureAxisPoints/2)
		}
	default:
		// Unrecognized comfort level: treat as non-matching rather than raise.
		r.add(cat, "Unrecognized language preference", 0)
	}
}
