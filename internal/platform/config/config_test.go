package config

import "testing"

func TestConf_MayString(t *testing.T) {
	c := New().Prefix("ACTEST_")
	if got := c.MayString("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("MayString = %q, want fallback", got)
	}
	t.Setenv("ACTEST_NAME", " value ")
	if got := c.MayString("NAME", "fallback"); got != "value" {
		t.Fatalf("MayString = %q, want value", got)
	}
}

func TestConf_MayBool(t *testing.T) {
	c := New().Prefix("ACTEST_")
	if got := c.MayBool("MISSING", true); !got {
		t.Fatalf("MayBool default = %v, want true", got)
	}
	t.Setenv("ACTEST_FLAG", "false")
	if got := c.MayBool("FLAG", true); got {
		t.Fatalf("MayBool = %v, want false", got)
	}
	t.Setenv("ACTEST_FLAG", "not-a-bool")
	if got := c.MayBool("FLAG", true); !got {
		t.Fatalf("MayBool invalid = %v, want default true", got)
	}
}

func TestConf_MayInt(t *testing.T) {
	c := New().Prefix("ACTEST_")
	if got := c.MayInt("MISSING", 7); got != 7 {
		t.Fatalf("MayInt default = %d, want 7", got)
	}
	t.Setenv("ACTEST_N", "42")
	if got := c.MayInt("N", 7); got != 42 {
		t.Fatalf("MayInt = %d, want 42", got)
	}
	t.Setenv("ACTEST_N", "nope")
	if got := c.MayInt("N", 7); got != 7 {
		t.Fatalf("MayInt invalid = %d, want default 7", got)
	}
}
