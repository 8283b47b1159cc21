package validate

import (
	"testing"

	"github.com/osmtools/speedlimits/model"
)

func TestRoadTypeFilters_UndefinedPlaceholder(t *testing.T) {
	roadTypes := map[string]model.RoadType{
		"trunk": {Filter: "highway={primary}"},
	}

	warnings := RoadTypeFilters(roadTypes)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if want := model.Warning("trunk: Unable to map 'primary'"); warnings[0] != want {
		t.Errorf("warning = %q, want %q", warnings[0], want)
	}
}

func TestRoadTypeFilters_DefinedPlaceholder(t *testing.T) {
	roadTypes := map[string]model.RoadType{
		"trunk":   {Filter: "highway={primary}"},
		"primary": {Filter: "highway=primary"},
	}

	if warnings := RoadTypeFilters(roadTypes); len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestRoadTypeFilters_AllExpressionsScanned(t *testing.T) {
	roadTypes := map[string]model.RoadType{
		"trunk": {
			Filter:         "highway={a}",
			FuzzyFilter:    "ref~{b}",
			RelationFilter: "type={c}",
		},
	}

	warnings := RoadTypeFilters(roadTypes)
	if len(warnings) != 3 {
		t.Fatalf("warnings = %v, want three", warnings)
	}
}

func TestRoadTypeFilters_NonGreedyTokens(t *testing.T) {
	// Two placeholders in one expression must be matched separately, not
	// as one greedy "{a} or {b}" token.
	roadTypes := map[string]model.RoadType{
		"trunk": {Filter: "{a} or {b}"},
		"a":     {},
	}

	warnings := RoadTypeFilters(roadTypes)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if want := model.Warning("trunk: Unable to map 'b'"); warnings[0] != want {
		t.Errorf("warning = %q, want %q", warnings[0], want)
	}
}

func TestRoadTypeFilters_OneHopOnly(t *testing.T) {
	// b is defined, so a's reference to b passes even though b itself
	// references something undefined; only b's own expression warns.
	roadTypes := map[string]model.RoadType{
		"a": {Filter: "{b}"},
		"b": {Filter: "{missing}"},
	}

	warnings := RoadTypeFilters(roadTypes)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if want := model.Warning("b: Unable to map 'missing'"); warnings[0] != want {
		t.Errorf("warning = %q, want %q", warnings[0], want)
	}
}

func TestSpeedTableRoadTypes(t *testing.T) {
	roadTypes := map[string]model.RoadType{
		"motorway": {},
	}
	speeds := map[string][]model.SpeedEntry{
		"NL": {
			{Name: "motorway", Tags: map[string]string{"maxspeed": "100"}},
			{Name: "expressway", Tags: map[string]string{"maxspeed": "100"}},
			{Tags: map[string]string{"maxspeed": "50"}}, // unqualified, never checked
		},
	}

	warnings := SpeedTableRoadTypes(speeds, roadTypes)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if want := model.Warning("NL: Unable to map 'expressway'"); warnings[0] != want {
		t.Errorf("warning = %q, want %q", warnings[0], want)
	}
}

func TestValidators_DoNotMutate(t *testing.T) {
	roadTypes := map[string]model.RoadType{
		"trunk": {Filter: "highway={primary}"},
	}
	speeds := map[string][]model.SpeedEntry{
		"NL": {{Name: "expressway", Tags: map[string]string{}}},
	}

	RoadTypeFilters(roadTypes)
	SpeedTableRoadTypes(speeds, roadTypes)

	if len(roadTypes) != 1 || len(speeds["NL"]) != 1 {
		t.Error("validators mutated their inputs")
	}
}
