package raw

import "testing"

func TestLookupAndPrefix(t *testing.T) {
	t.Setenv("CORE_API_ADDR", "  :4000 ")
	t.Setenv("CORE_API_EMPTY", "   ")

	c := New().Prefix("CORE_").Prefix("API_")
	if got := c.Key("ADDR"); got != "CORE_API_ADDR" {
		t.Fatalf("Key = %q", got)
	}
	if v, ok := c.Lookup("ADDR"); !ok || v != ":4000" {
		t.Fatalf("Lookup = %q, %v", v, ok)
	}
	if _, ok := c.Lookup("EMPTY"); ok {
		t.Fatalf("blank values should read as unset")
	}
	if got := c.Get("MISSING", "dflt"); got != "dflt" {
		t.Fatalf("Get default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"1", false, true},
		{"TRUE", false, true},
		{"yes", false, true},
		{"on", false, true},
		{"0", true, false},
		{"no", true, false},
		{"off", true, false},
		{"maybe", true, true},
	}
	for _, tc := range cases {
		t.Setenv("LOG_CALLER", tc.val)
		if got := New().Prefix("LOG_").GetBool("CALLER", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, %v) = %v", tc.val, tc.def, got)
		}
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("LOG_")

	t.Setenv("LOG_SAMPLE_EVERY", "5")
	if got := c.GetInt("SAMPLE_EVERY", 0); got != 5 {
		t.Fatalf("GetInt = %d", got)
	}
	t.Setenv("LOG_SAMPLE_EVERY", "-3")
	if got := c.GetInt("SAMPLE_EVERY", 0); got != -3 {
		t.Fatalf("GetInt negative = %d", got)
	}
	t.Setenv("LOG_SAMPLE_EVERY", "five")
	if got := c.GetInt("SAMPLE_EVERY", 7); got != 7 {
		t.Fatalf("GetInt invalid = %d", got)
	}
}
