package serialize

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestString_And_URL_AreIdentity(t *testing.T) {
	inputs := []string{"", "plain", "  spaced  ", "ünïcödé", "https://aac.example/agents?id=1&x=<y>"}
	for _, s := range inputs {
		assert.Equal(t, s, String(s))
		assert.Equal(t, s, URL(s))
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"true", true, "yes"},
		{"false", false, "no"},
		{"one", 1, "yes"},
		{"zero", 0, "no"},
		{"float zero", 0.0, "no"},
		{"negative", -3, "yes"},
		{"NaN", math.NaN(), "no"},
		{"nil", nil, "no"},
		{"empty string", "", "no"},
		{"string zero", "0", "yes"},
		{"string false", "false", "yes"},
		{"json number zero", json.Number("0"), "no"},
		{"json number", json.Number("2.5"), "yes"},
		{"nil slice", []string(nil), "no"},
		{"empty map", map[string]any{}, "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bool(tt.value))
		})
	}
}

func TestTimestamp_UsesLocalTime(t *testing.T) {
	for _, secs := range []int64{0, 1, 1700000000, -86400} {
		want := time.UnixMilli(secs * 1000).In(time.Local).Format(DefaultTimeLayout)
		assert.Equal(t, want, Timestamp(secs))
	}
}

func TestTimestamp_Conversions(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"epoch", 0, "Thu Jan 01 1970 00:00:00 GMT+0000 (UTC)"},
		{"float seconds", 1.5, "Thu Jan 01 1970 00:00:01 GMT+0000 (UTC)"},
		{"numeric string", "86400", "Fri Jan 02 1970 00:00:00 GMT+0000 (UTC)"},
		{"json number", json.Number("1700000000"), "Tue Nov 14 2023 22:13:20 GMT+0000 (UTC)"},
		{"true is one second", true, "Thu Jan 01 1970 00:00:01 GMT+0000 (UTC)"},
		{"empty string is zero", "", "Thu Jan 01 1970 00:00:00 GMT+0000 (UTC)"},
		{"text", "yesterday", InvalidDate},
		{"nil", nil, InvalidDate},
		{"out of range", 1e13, InvalidDate},
		{"infinity", math.Inf(1), InvalidDate},
	}

	r := NewRegistry(WithLocation(time.UTC))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Format(TagTimestamp, tt.value)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuration_And_Number_Stringify(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{3600, "3600"},
		{int64(-7), "-7"},
		{1.5, "1.5"},
		{1700000000.0, "1700000000"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0.0000001"},
		{json.Number("1e21"), "1e21"},
		{float32(0.25), "0.25"},
		{"90s", "90s"},
		{true, "true"},
		{nil, ""},
		{json.Number("12.50"), "12.50"},
		{math.NaN(), "NaN"},
		{math.Inf(-1), "-Infinity"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.value))
			assert.Equal(t, tt.want, Number(tt.value))
			assert.Equal(t, tt.want, Var(tt.value))
		})
	}
}

func TestHashedSecret(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"abcd1234", "******1234"},
		{"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", "******b855"},
		{12345678, "******5678"},
		{"wxyz", "******wxyz"},
		{"ab", "******ab"},
		{"", "******"},
		{"пароль1234", "******1234"},
		{"секрет", "******крет"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, HashedSecret(tt.value))
		})
	}
}

func TestHashedSecret_KeepsLastFourCharacters(t *testing.T) {
	for _, v := range []any{"0123456789", "deadbeef", 987654321, 3.14159} {
		s := Stringify(v)
		assert.Equal(t, SecretMask+s[len(s)-4:], HashedSecret(v))
	}
}

func TestPassword_AlwaysMasked(t *testing.T) {
	for _, v := range []any{"hunter2", "", nil, 42, true, strings.Repeat("x", 100)} {
		got := Password(v)
		assert.Equal(t, "**********", got)
		assert.Len(t, got, 10)
	}
}

func TestTruthy_Pointers(t *testing.T) {
	var nilPtr *int
	n := 0
	assert.False(t, Truthy(nilPtr))
	assert.True(t, Truthy(&n))
	assert.True(t, Truthy(struct{}{}))
}
