package types

import "testing"

func TestNewWeather(t *testing.T) {
	tests := []struct {
		name          string
		code          int
		wantCondition Condition
		wantDesc      string
	}{
		{name: "clear sky", code: 0, wantCondition: ConditionClear, wantDesc: "Clear sky"},
		{name: "mainly clear", code: 1, wantCondition: ConditionClear, wantDesc: "Mainly clear"},
		{name: "overcast", code: 3, wantCondition: ConditionCloudy, wantDesc: "Overcast"},
		{name: "fog", code: 45, wantCondition: ConditionFog, wantDesc: "Fog"},
		{name: "freezing drizzle", code: 57, wantCondition: ConditionDrizzle, wantDesc: "Freezing Drizzle: Dense intensity"},
		{name: "heavy rain", code: 65, wantCondition: ConditionRain, wantDesc: "Rainfall: Heavy intensity"},
		{name: "rain showers", code: 81, wantCondition: ConditionRain, wantDesc: "Rainfall showers: Moderate"},
		{name: "snow grains", code: 77, wantCondition: ConditionSnow, wantDesc: "Snow grains"},
		{name: "thunderstorm with hail", code: 99, wantCondition: ConditionStorm, wantDesc: "Thunderstorm with heavy hail"},
		{name: "unrecognized code", code: 42, wantCondition: ConditionUnknown, wantDesc: "unknown conditions"},
		{name: "negative code", code: -1, wantCondition: ConditionUnknown, wantDesc: "unknown conditions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewWeather(tt.code)
			if got.Code != tt.code {
				t.Errorf("Code = %d, want %d", got.Code, tt.code)
			}
			if got.Condition != tt.wantCondition {
				t.Errorf("Condition = %q, want %q", got.Condition, tt.wantCondition)
			}
			if got.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", got.Description, tt.wantDesc)
			}
		})
	}
}

func TestEveryDescribedCodeHasCondition(t *testing.T) {
	for code := range weatherDescriptions {
		if GetCondition(code) == ConditionUnknown {
			t.Errorf("code %d has a description but no condition family", code)
		}
	}
}
